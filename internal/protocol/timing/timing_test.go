package timing

import (
	"errors"
	"fmt"
	"testing"

	qt "github.com/frankban/quicktest"
)

// sample carries the first 16 data timings of a captured 0x0c10 transmission.
var sample = []Timing{
	402, 550, 467, 524, 489, 491, 580, 392, 454, 1700, 440, 1607, 475, 534, 501, 591,
	498, 443, 364, 574, 477, 591, 394, 1412, 452, 511, 382, 423, 448, 494, 539, 507,
}

// encode lays value out as bits mark/space pairs using exact etalons.
func encode(value uint64, bits int) []Timing {
	out := make([]Timing, 0, bits*2)
	for i := bits - 1; i >= 0; i-- {
		out = append(out, Timing(Etalon(MarkMultiplier)))
		if value>>i&1 == 1 {
			out = append(out, Timing(Etalon(LongGapMultiplier)))
		} else {
			out = append(out, Timing(Etalon(ShortGapMultiplier)))
		}
	}
	return out
}

func TestIsValid(t *testing.T) {
	c := qt.New(t)

	tests := []struct {
		name       string
		timing     Timing
		multiplier uint32
		want       bool
	}{
		{"etalon x1", 480, 1, true},
		{"etalon x3", 1440, 3, true},
		{"minimum x3", 1080, 3, true},
		{"maximum x3", 1800, 3, true},
		{"below minimum x3", 1079, 3, false},
		{"above maximum x3", 1801, 3, false},
		{"minimum x1", 360, 1, true},
		{"below minimum x1", 359, 1, false},
		{"maximum x1", 600, 1, true},
		{"above maximum x1", 601, 1, false},
		{"preamble mark", 8532, 18, true},
		{"preamble space", 3624, 8, true},
		{"zero multiplier", 480, 0, false},
		{"zero multiplier zero timing", 0, 0, false},
		{"huge multiplier does not wrap", 0, 1 << 31, false},
	}
	for _, tt := range tests {
		c.Run(tt.name, func(c *qt.C) {
			c.Assert(IsValid(tt.timing, tt.multiplier), qt.Equals, tt.want)
		})
	}
}

func TestIsValidWindowEdges(t *testing.T) {
	c := qt.New(t)

	for m := uint32(1); m <= 20; m++ {
		lo, hi := Window(m)
		c.Run(fmt.Sprintf("multiplier=%d", m), func(c *qt.C) {
			c.Assert(IsValid(Timing(lo), m), qt.IsTrue)
			c.Assert(IsValid(Timing(hi), m), qt.IsTrue)
			c.Assert(IsValid(Timing(Etalon(m)), m), qt.IsTrue)
			c.Assert(IsValid(Timing(lo-1), m), qt.IsFalse)
			c.Assert(IsValid(Timing(hi+1), m), qt.IsFalse)
		})
	}
}

func TestDecodeBit(t *testing.T) {
	c := qt.New(t)

	bit, err := DecodeBit(480, 480)
	c.Assert(err, qt.IsNil)
	c.Assert(bit, qt.Equals, Bit(0))

	bit, err = DecodeBit(480, 1440)
	c.Assert(err, qt.IsNil)
	c.Assert(bit, qt.Equals, Bit(1))
}

func TestDecodeBitAbnormalOn(t *testing.T) {
	c := qt.New(t)

	_, err := DecodeBit(359, 480)
	c.Assert(errors.Is(err, ErrAbnormalLedOn), qt.IsTrue)
	c.Assert(err, qt.ErrorMatches, "abnormal led on bit value: 359")

	var terr *Error
	c.Assert(errors.As(err, &terr), qt.IsTrue)
	c.Assert(terr.Timing, qt.Equals, Timing(359))
}

func TestDecodeBitAbnormalOff(t *testing.T) {
	c := qt.New(t)

	// 700 falls between the short and long gap windows.
	_, err := DecodeBit(480, 700)
	c.Assert(errors.Is(err, ErrAbnormalLedOff), qt.IsTrue)
	c.Assert(err, qt.ErrorMatches, "abnormal led off bit value: 700")
}

func TestDecodeBitOnCheckedFirst(t *testing.T) {
	c := qt.New(t)

	_, err := DecodeBit(100, 100)
	c.Assert(errors.Is(err, ErrAbnormalLedOn), qt.IsTrue)
}

func TestDecodeValue8Bit(t *testing.T) {
	c := qt.New(t)

	v, err := DecodeValue[uint8](sample[:16], 8)
	c.Assert(err, qt.IsNil)
	c.Assert(v, qt.Equals, uint8(12))
}

func TestDecodeValue16Bit(t *testing.T) {
	c := qt.New(t)

	v, err := DecodeValue[uint16](sample, 16)
	c.Assert(err, qt.IsNil)
	c.Assert(v, qt.Equals, uint16(3088))
}

func TestDecodeValueWrongLength(t *testing.T) {
	c := qt.New(t)

	_, err := DecodeValue[uint8](sample[:15], 8)
	c.Assert(errors.Is(err, ErrWrongTimingsNumber), qt.IsTrue)
	c.Assert(err, qt.ErrorMatches, "wrong timings number: expected '16', actual '15'")

	var terr *Error
	c.Assert(errors.As(err, &terr), qt.IsTrue)
	c.Assert(terr.Expected, qt.Equals, 16)
	c.Assert(terr.Actual, qt.Equals, 15)
}

func TestDecodeValueAbnormalPairs(t *testing.T) {
	c := qt.New(t)

	on := append([]Timing(nil), sample[:16]...)
	on[14] = 601
	_, err := DecodeValue[uint8](on, 8)
	c.Assert(err, qt.ErrorMatches, "abnormal led on bit value: 601")

	off := append([]Timing(nil), sample[:16]...)
	off[13] = 634
	_, err = DecodeValue[uint8](off, 8)
	c.Assert(err, qt.ErrorMatches, "abnormal led off bit value: 634")
}

func TestDecodeValueRoundTrip(t *testing.T) {
	c := qt.New(t)

	for _, want := range []uint16{0x0000, 0x0001, 0x8000, 0x0c10, 0xcafe, 0x42bc, 0xffff} {
		c.Run(fmt.Sprintf("%04x", want), func(c *qt.C) {
			got, err := DecodeValue[uint16](encode(uint64(want), 16), 16)
			c.Assert(err, qt.IsNil)
			c.Assert(got, qt.Equals, want)
		})
	}
	for want := uint8(0); want < 16; want++ {
		got, err := DecodeValue[uint8](encode(uint64(want), 4), 4)
		c.Assert(err, qt.IsNil)
		c.Assert(got, qt.Equals, want)
	}
}

func TestDecodeValueZeroBits(t *testing.T) {
	c := qt.New(t)

	v, err := DecodeValue[uint32](nil, 0)
	c.Assert(err, qt.IsNil)
	c.Assert(v, qt.Equals, uint32(0))
}
