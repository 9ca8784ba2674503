package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/g-m-twostay/locality/Collections"
	"github.com/g-m-twostay/locality/Reports"
)

func TestDecodeSeed(t *testing.T) {
	requireT := require.New(t)
	seed, err := decodeSeed("0")
	requireT.NoError(err)
	requireT.Equal([seedBytes]byte{}, seed)

	seed, err = decodeSeed("1aF")
	requireT.NoError(err)
	requireT.Equal(byte(0xaf), seed[0])
	requireT.Equal(byte(0x01), seed[1])
	requireT.Zero(seed[2])

	full := bytes.Repeat([]byte("0123456789abcdef"), 4)
	seed, err = decodeSeed(string(full))
	requireT.NoError(err)
	requireT.Equal(byte(0xef), seed[0])
	requireT.Equal(byte(0x01), seed[seedBytes-1])

	for _, bad := range []string{"", "xyz", "12 3", string(full) + "0"} {
		_, err = decodeSeed(bad)
		requireT.ErrorIs(err, ErrBadSeed, bad)
	}
}

func TestSizes(t *testing.T) {
	requireT := require.New(t)
	requireT.Equal([]int{32, 512, 8192, 131072, 2097152, 33554432}, sizes(0))
	requireT.Equal([]int{32, 512}, sizes(8191))
	requireT.Empty(sizes(31))
}

func TestParseConfig(t *testing.T) {
	requireT := require.New(t)
	c, err := parseConfig([]string{"-output", "o.csv", "-mode", "m", "-truncate", "-variants", "linked-list"}, new(bytes.Buffer))
	requireT.NoError(err)
	requireT.Equal("o.csv", c.output)
	requireT.Equal("0", c.seed)
	requireT.True(c.truncate)
	requireT.True(c.verify)
	requireT.Equal(64, c.finds)

	_, err = parseConfig([]string{"-mode", "m"}, new(bytes.Buffer))
	requireT.Error(err)
	_, err = parseConfig([]string{"-output", "o", "-mode", "m", "-finds", "-1"}, new(bytes.Buffer))
	requireT.Error(err)
}

func TestMeasureAndQuery(t *testing.T) {
	requireT := require.New(t)
	out := filepath.Join(t.TempDir(), "rows.csv")
	args := []string{"-output", out, "-mode", "test", "-seed", "beef", "-max-size", "512", "-finds", "8",
		"-incs", "4", "-log-level", "warn"}
	requireT.NoError(run(args, new(bytes.Buffer), new(bytes.Buffer)))
	requireT.NoError(run(args, new(bytes.Buffer), new(bytes.Buffer)))

	f, err := os.Open(out)
	requireT.NoError(err)
	defer f.Close()
	rows, err := Reports.ReadRows(f)
	requireT.NoError(err)
	perRun := 2 * 3 * len(Collections.All[element]())
	requireT.Len(rows, 2*perRun) // appended
	requireT.ElementsMatch([]int{32, 512}, lo.Uniq(lo.Map(rows, func(r Reports.Row, _ int) int { return r.Size })))
	requireT.ElementsMatch([]string{Reports.Create, Reports.Find, Reports.IncLessThan},
		lo.Uniq(lo.Map(rows, func(r Reports.Row, _ int) string { return r.Operation })))

	stdout := new(bytes.Buffer)
	requireT.NoError(run([]string{"query", "-file", out, "-mode", "test", "-size", "512 B", "-operation", "find",
		"-collection", "linked-list"}, stdout, new(bytes.Buffer)))
	requireT.NotEmpty(stdout.String())

	err = run([]string{"query", "-file", out, "-mode", "other", "-size", "512", "-operation", "find",
		"-collection", "linked-list"}, stdout, new(bytes.Buffer))
	requireT.ErrorIs(err, Reports.ErrNotFound)

	requireT.NoError(run(append(args, "-truncate", "-variants", "sorted-array,radix-bag"), new(bytes.Buffer), new(bytes.Buffer)))
	f2, err := os.Open(out)
	requireT.NoError(err)
	defer f2.Close()
	rows, err = Reports.ReadRows(f2)
	requireT.NoError(err)
	requireT.Len(rows, 2*3*2)
}

func TestRunnerSameSeedSameElements(t *testing.T) {
	requireT := require.New(t)
	variants, err := Collections.Lookup[element]([]string{Collections.WithOrderTree, Collections.GoodLocalArray})
	requireT.NoError(err)
	_, err = Collections.Lookup[element]([]string{"no-such-collection"})
	requireT.ErrorIs(err, Collections.ErrUnknownVariant)
	out := new(bytes.Buffer)
	seed, err := decodeSeed("7")
	requireT.NoError(err)
	r := &runner{mode: "m", variants: variants, finds: 32, incs: 8, verify: true,
		out: Reports.NewWriter(out), log: zap.NewNop().Sugar()}
	r.rg = newRand(seed)
	a := r.targets(make([]element, 10), 4)
	r.rg = newRand(seed)
	b := r.targets(make([]element, 10), 4)
	requireT.Equal(a, b)
	requireT.Zero(a[0])
	requireT.NoError(r.run([]int{100, 1000}))
	requireT.NotEmpty(out.String())
}

func TestBitSet(t *testing.T) {
	requireT := require.New(t)
	a, b := newBitSet(70), newBitSet(70)
	requireT.Len(a.bits, 2)
	requireT.True(a.equal(b))
	a.up(0)
	a.up(69)
	requireT.True(a.get(0))
	requireT.True(a.get(69))
	requireT.False(a.get(68))
	requireT.False(a.equal(b))
	b.up(69)
	b.up(0)
	requireT.True(a.equal(b))
	requireT.Empty(newBitSet(0).bits)
}
