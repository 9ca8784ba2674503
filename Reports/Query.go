package Reports

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Key identifies a measurement. Size is either the plain element count or FormatSize of it.
type Key struct {
	Mode, Size, Operation, Collection string
}

func (k Key) matches(r Row) bool {
	return k.Mode == r.Mode && k.Operation == r.Operation && k.Collection == r.Collection &&
		(k.Size == strconv.Itoa(r.Size) || k.Size == FormatSize(r.Size))
}

// Query returns the formatted duration of the last row matching k, later rows overriding earlier
// ones as they do when a file is appended to by several runs.
func Query(rows []Row, k Key) (string, error) {
	r, _, found := lo.FindLastIndexOf(rows, k.matches)
	if !found {
		return "", errors.Wrapf(ErrNotFound, "%s/%s/%s/%s", k.Mode, k.Size, k.Operation, k.Collection)
	}
	return FormatTime(r.Duration), nil
}
