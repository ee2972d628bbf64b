package protocol

import (
	"errors"
	"fmt"

	"github.com/danmuck/irdecode/internal/protocol/frame"
	"github.com/danmuck/irdecode/internal/protocol/timing"
)

var (
	ErrEmptySequence      = errors.New("the sequence is empty")
	ErrParseTiming        = errors.New("parse int error")
	ErrTimings            = errors.New("timings error")
	ErrWrongTimingsNumber = errors.New("wrong timings number")
	ErrWrongPreamble      = errors.New("wrong preamble")
	ErrWrongEpilogue      = errors.New("wrong epilogue")
	ErrChecksumMismatch   = errors.New("checksum mismatch")
)

// DecodeError is the single error type returned by the decoder. Kind is one
// of the package sentinels; Err, when set, is the underlying cause.
type DecodeError struct {
	Kind     error
	Expected int
	Actual   int
	Err      error
}

func (e *DecodeError) Error() string {
	switch e.Kind {
	case ErrWrongTimingsNumber, ErrChecksumMismatch:
		return fmt.Sprintf("%v: expected '%d', actual '%d'", e.Kind, e.Expected, e.Actual)
	case ErrParseTiming, ErrTimings:
		return fmt.Sprintf("%v: %v", e.Kind, e.Err)
	default:
		return e.Kind.Error()
	}
}

func (e *DecodeError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func newError(kind error) error {
	return &DecodeError{Kind: kind}
}

func WrongTimingsNumber(expected, actual int) error {
	return &DecodeError{Kind: ErrWrongTimingsNumber, Expected: expected, Actual: actual}
}

func ChecksumMismatch(expected, actual uint8) error {
	return &DecodeError{Kind: ErrChecksumMismatch, Expected: int(expected), Actual: int(actual)}
}

// FromParse wraps a token conversion failure.
func FromParse(err error) error {
	return &DecodeError{Kind: ErrParseTiming, Err: err}
}

// FromTimings wraps a failure raised while decoding a region.
func FromTimings(err error) error {
	return &DecodeError{Kind: ErrTimings, Err: err}
}

// Error codes reported to machine consumers.
const (
	CodeEmptySequence      = "empty_sequence"
	CodeParseTiming        = "parse_timing"
	CodeWrongTimingsNumber = "wrong_timings_number"
	CodeWrongPreamble      = "wrong_preamble"
	CodeWrongEpilogue      = "wrong_epilogue"
	CodeAbnormalLedOn      = "abnormal_led_on"
	CodeAbnormalLedOff     = "abnormal_led_off"
	CodeChecksumMismatch   = "checksum_mismatch"
	CodeLineTooLong        = "line_too_long"
	CodeNoInput            = "no_input"
	CodeInternal           = "internal"
)

// Codes lists every code Code can return.
func Codes() []string {
	return []string{
		CodeEmptySequence,
		CodeParseTiming,
		CodeWrongTimingsNumber,
		CodeWrongPreamble,
		CodeWrongEpilogue,
		CodeAbnormalLedOn,
		CodeAbnormalLedOff,
		CodeChecksumMismatch,
		CodeLineTooLong,
		CodeNoInput,
		CodeInternal,
	}
}

// Code maps err to a stable code. Timing failures report the innermost kind,
// so a bad mark inside the data region yields CodeAbnormalLedOn.
func Code(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, timing.ErrAbnormalLedOn):
		return CodeAbnormalLedOn
	case errors.Is(err, timing.ErrAbnormalLedOff):
		return CodeAbnormalLedOff
	case errors.Is(err, ErrWrongTimingsNumber), errors.Is(err, timing.ErrWrongTimingsNumber):
		return CodeWrongTimingsNumber
	case errors.Is(err, ErrEmptySequence):
		return CodeEmptySequence
	case errors.Is(err, ErrParseTiming):
		return CodeParseTiming
	case errors.Is(err, ErrWrongPreamble):
		return CodeWrongPreamble
	case errors.Is(err, ErrWrongEpilogue):
		return CodeWrongEpilogue
	case errors.Is(err, ErrChecksumMismatch):
		return CodeChecksumMismatch
	case errors.Is(err, frame.ErrLineTooLong):
		return CodeLineTooLong
	case errors.Is(err, frame.ErrNoInput):
		return CodeNoInput
	default:
		return CodeInternal
	}
}
