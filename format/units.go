package format

import (
	"fmt"
	"strings"
)

const barLength = 10

const (
	barFilled = "█"
	barEmpty  = "░"
)

// Bar renders a fixed-width text gauge for a percentage. The filled glyph
// count is floor(length * percent / 100), clamped to [0, length].
func Bar(percent float64, length int) string {
	filled := int(float64(length) * percent / 100)
	if filled < 0 {
		filled = 0
	}
	if filled > length {
		filled = length
	}
	return strings.Repeat(barFilled, filled) + strings.Repeat(barEmpty, length-filled)
}

// toMB converts bytes to whole megabytes, truncating.
func toMB(b uint64) uint64 {
	return b / (1 << 20)
}

// toGB converts bytes to whole gigabytes, truncating.
func toGB(b uint64) uint64 {
	return b / (1 << 30)
}

func percentStr(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}

// gauge is the common "bar percent\nused / total" block used for RAM,
// swap and disk fields.
func gauge(percent float64, used, total uint64, unit string, conv func(uint64) uint64) string {
	return fmt.Sprintf("%s %s\n%d %s / %d %s",
		Bar(percent, barLength), percentStr(percent), conv(used), unit, conv(total), unit)
}
