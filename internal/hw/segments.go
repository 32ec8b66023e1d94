package hw

import "github.com/vovakirdan/flapboard/internal/core"

// segmentDigits maps a decimal digit to the segment pattern that lights it.
// Bit 0 is segment a, bit 6 is segment g.
var segmentDigits = [10]byte{
	0x3F, 0x06, 0x5B, 0x4F, 0x66, 0x6D, 0x7D, 0x07, 0x7F, 0x6F,
}

// MaxDisplayValue is the largest value a two-digit display can show.
const MaxDisplayValue = 99

// EncodeDisplay packs a value into a two-digit display register:
// tens pattern in the high byte, units pattern in the low byte.
// Values outside 0..99 are clamped.
func EncodeDisplay(value int) uint32 {
	value = core.Clamp(value, 0, MaxDisplayValue)
	tens := uint32(segmentDigits[value/10])
	units := uint32(segmentDigits[value%10])
	return tens<<8 | units
}

// DecodeDisplay reverses EncodeDisplay. It returns false when either byte
// is not a digit pattern, e.g. a blanked display.
func DecodeDisplay(code uint32) (int, bool) {
	tens, ok := segmentValue(byte(code >> 8))
	if !ok {
		return 0, false
	}
	units, ok := segmentValue(byte(code))
	if !ok {
		return 0, false
	}
	return tens*10 + units, true
}

func segmentValue(pattern byte) (int, bool) {
	for d, p := range segmentDigits {
		if p == pattern {
			return d, true
		}
	}
	return 0, false
}

// WriteScores shows one value on each player's display.
func WriteScores(p Peripherals, p1, p2 int) {
	p.WriteP1Display(EncodeDisplay(p1))
	p.WriteP2Display(EncodeDisplay(p2))
}
