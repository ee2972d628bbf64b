// Package timing classifies measured pulse durations and turns pulse pairs
// into bits and multi-bit values.
//
// Ownership boundary:
// - tolerance windows around multiples of the base unit
// - mark/space pair to bit decoding
// - MSB-first value reconstruction
package timing

const (
	// Unit is the base time unit of the protocol in microseconds.
	Unit = 480

	// TolerancePercent is applied symmetrically around every etalon.
	TolerancePercent = 25

	MarkMultiplier     = 1
	ShortGapMultiplier = 1 // bit 0
	LongGapMultiplier  = 3 // bit 1
)

// Timing is a pulse duration in microseconds.
type Timing uint32

// Bit is one decoded binary digit, 0 or 1.
type Bit uint8

// Unsigned is the set of result types DecodeValue can assemble.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// Etalon returns the exact expected duration for multiplier.
func Etalon(multiplier uint32) uint64 {
	return uint64(Unit) * uint64(multiplier)
}

// Window returns the inclusive bounds accepted for multiplier.
func Window(multiplier uint32) (lo, hi uint64) {
	etalon := Etalon(multiplier)
	tolerance := etalon * TolerancePercent / 100
	return etalon - tolerance, etalon + tolerance
}

// IsValid reports whether t lies within the tolerance window of multiplier.
// A zero multiplier never matches.
func IsValid(t Timing, multiplier uint32) bool {
	if multiplier == 0 {
		return false
	}
	lo, hi := Window(multiplier)
	v := uint64(t)
	return lo <= v && v <= hi
}

// DecodeBit decodes one mark/space pair.
func DecodeBit(on, off Timing) (Bit, error) {
	if !IsValid(on, MarkMultiplier) {
		return 0, AbnormalLedOnBitValue(on)
	}
	switch {
	case IsValid(off, ShortGapMultiplier):
		return 0, nil
	case IsValid(off, LongGapMultiplier):
		return 1, nil
	default:
		return 0, AbnormalLedOffBitValue(off)
	}
}

// DecodeValue assembles a bits-wide value from bits*2 timings, most
// significant bit first. The first failing pair aborts the decode.
func DecodeValue[T Unsigned](timings []Timing, bits int) (T, error) {
	expected := bits * 2
	if len(timings) != expected {
		return 0, WrongTimingsNumber(expected, len(timings))
	}

	var value T
	for i := 0; i < bits; i++ {
		pos := i * 2
		bit, err := DecodeBit(timings[pos], timings[pos+1])
		if err != nil {
			return 0, err
		}
		if bit == 1 {
			value |= T(1) << (bits - 1 - i)
		}
	}
	return value, nil
}
