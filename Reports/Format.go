package Reports

import (
	"strconv"
	"strings"
	"time"
)

type unit struct {
	name string
	size float64
}

var (
	sizeUnits = []unit{{"B", 1}, {"KiB", 1 << 10}, {"MiB", 1 << 20}, {"GiB", 1 << 30}, {"TiB", 1 << 40}}
	timeUnits = []unit{{"ns", 1}, {"μs", 1e3}, {"ms", 1e6}, {"s", 1e9}, {"m", 60e9}, {"h", 3600e9}}
)

// formatFloat with at most 3 decimals, dropping trailing zeros.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', 3, 64)
	return strings.TrimSuffix(strings.TrimRight(s, "0"), ".")
}

// format n in the largest unit of us it reaches. The first unit is printed as an integer.
func format(n float64, us []unit) string {
	i := len(us) - 1
	for i > 0 && n < us[i].size {
		i--
	}
	if i == 0 {
		return strconv.FormatFloat(n, 'f', 0, 64) + " " + us[0].name
	}
	return formatFloat(n/us[i].size) + " " + us[i].name
}

// FormatSize of n bytes in binary units, e.g. "1.5 KiB".
func FormatSize(n int) string {
	return format(float64(n), sizeUnits)
}

// FormatTime of d in the largest of ns, μs, ms, s, m and h it reaches, e.g. "1.25 ms".
func FormatTime(d time.Duration) string {
	return format(float64(d.Nanoseconds()), timeUnits)
}
