package protocol

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/danmuck/irdecode/internal/protocol/checksum"
	"github.com/danmuck/irdecode/internal/protocol/frame"
	"github.com/danmuck/irdecode/internal/protocol/timing"
)

// Decode decodes one transmission line into its 16-bit value rendered as four
// lowercase hex digits.
func Decode(sequence string) (string, error) {
	res, err := DecodeResult(sequence)
	if err != nil {
		return "", err
	}
	return res.Hex(), nil
}

// DecodeResult is Decode without the final rendering.
func DecodeResult(sequence string) (Result, error) {
	ts, err := Parse(sequence)
	if err != nil {
		return Result{}, err
	}
	return DecodeTimings(ts)
}

// Parse splits sequence on whitespace and converts every token to a timing.
func Parse(sequence string) ([]timing.Timing, error) {
	tokens := strings.Fields(sequence)
	if len(tokens) == 0 {
		return nil, newError(ErrEmptySequence)
	}

	ts := make([]timing.Timing, 0, len(tokens))
	for _, tok := range tokens {
		v, err := strconv.ParseUint(trimPlus(tok), 10, 32)
		if err != nil {
			return nil, FromParse(err)
		}
		ts = append(ts, timing.Timing(v))
	}
	return ts, nil
}

// trimPlus drops one leading '+' when a digit follows it.
func trimPlus(tok string) string {
	if len(tok) > 1 && tok[0] == '+' && tok[1] >= '0' && tok[1] <= '9' {
		return tok[1:]
	}
	return tok
}

// DecodeTimings validates the layout of ts, decodes both regions and checks
// the transmitted checksum against the decoded data.
func DecodeTimings(ts []timing.Timing) (Result, error) {
	f, err := frame.Split(ts)
	if err != nil {
		var terr *timing.Error
		if errors.As(err, &terr) && terr.Kind == timing.ErrWrongTimingsNumber {
			return Result{}, WrongTimingsNumber(terr.Expected, terr.Actual)
		}
		return Result{}, FromTimings(err)
	}

	if !f.ValidPreamble() {
		return Result{}, newError(ErrWrongPreamble)
	}
	if !f.ValidEpilogue() {
		return Result{}, newError(ErrWrongEpilogue)
	}

	expected, err := timing.DecodeValue[uint8](f.Checksum, checksum.Bits)
	if err != nil {
		return Result{}, FromTimings(err)
	}
	data, err := timing.DecodeValue[uint16](f.Data, frame.DataBits)
	if err != nil {
		return Result{}, FromTimings(err)
	}

	if !checksum.Verify(data, expected) {
		return Result{}, ChecksumMismatch(expected, checksum.Calculate(data))
	}
	return Result{Data: data, Checksum: expected}, nil
}

// Hex renders the decoded value as four lowercase hex digits.
func (r Result) Hex() string {
	return fmt.Sprintf("%04x", r.Data)
}
