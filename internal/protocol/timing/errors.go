package timing

import (
	"errors"
	"fmt"
)

var (
	ErrAbnormalLedOn      = errors.New("abnormal led on bit value")
	ErrAbnormalLedOff     = errors.New("abnormal led off bit value")
	ErrWrongTimingsNumber = errors.New("wrong timings number")
)

// Error carries the offending values of a timing failure. Kind is one of the
// package sentinels and is what errors.Is matches against.
type Error struct {
	Kind     error
	Timing   Timing
	Expected int
	Actual   int
}

func (e *Error) Error() string {
	if e.Kind == ErrWrongTimingsNumber {
		return fmt.Sprintf("%v: expected '%d', actual '%d'", e.Kind, e.Expected, e.Actual)
	}
	return fmt.Sprintf("%v: %d", e.Kind, e.Timing)
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func AbnormalLedOnBitValue(t Timing) error {
	return &Error{Kind: ErrAbnormalLedOn, Timing: t}
}

func AbnormalLedOffBitValue(t Timing) error {
	return &Error{Kind: ErrAbnormalLedOff, Timing: t}
}

func WrongTimingsNumber(expected, actual int) error {
	return &Error{Kind: ErrWrongTimingsNumber, Expected: expected, Actual: actual}
}
