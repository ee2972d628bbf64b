// Package checksum computes the 4-bit nibble-sum checksum carried after the
// data bits of every transmission.
package checksum

const (
	Bits = 4
	Mask = 0x0f

	nibbles = 4
)

// Calculate sums the four nibbles of data with 8-bit wraparound and returns
// the low nibble of the sum.
func Calculate(data uint16) uint8 {
	var sum uint8
	for i := 0; i < nibbles; i++ {
		shift := i * 4
		sum += uint8((data >> shift) & Mask)
	}
	return sum & Mask
}

// Verify reports whether expected matches the checksum of data. Values wider
// than Bits never match.
func Verify(data uint16, expected uint8) bool {
	return expected <= Mask && Calculate(data) == expected
}
