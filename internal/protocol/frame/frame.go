package frame

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/danmuck/irdecode/internal/protocol/checksum"
	"github.com/danmuck/irdecode/internal/protocol/timing"
)

// Region offsets of a transmission, half-open [start, end).
const (
	PreambleStart = 0
	PreambleEnd   = 2
	DataStart     = PreambleEnd
	DataEnd       = DataStart + DataBits*2
	ChecksumStart = DataEnd
	ChecksumEnd   = ChecksumStart + ChecksumBits*2
	EpilogueStart = ChecksumEnd
	EpilogueEnd   = EpilogueStart + 1

	// Len is the exact number of timings in one transmission.
	Len = EpilogueEnd

	DataBits     = 16
	ChecksumBits = checksum.Bits

	PreambleMarkMultiplier  = 18
	PreambleSpaceMultiplier = 8
	EpilogueMultiplier      = 1
)

var (
	ErrNoInput     = errors.New("frame: no input")
	ErrLineTooLong = errors.New("frame: line too long")
)

// Frame is one transmission sliced into its regions. The slices alias the
// sequence passed to Split.
type Frame struct {
	Preamble []timing.Timing
	Data     []timing.Timing
	Checksum []timing.Timing
	Epilogue timing.Timing
}

// Limits constrains how much input ReadLine will buffer.
type Limits struct {
	MaxLineBytes int
}

func DefaultLimits() Limits {
	return Limits{MaxLineBytes: 64 * 1024}
}

// Split slices ts into regions. ts must hold exactly Len timings.
func Split(ts []timing.Timing) (Frame, error) {
	if len(ts) != Len {
		return Frame{}, timing.WrongTimingsNumber(Len, len(ts))
	}
	return Frame{
		Preamble: ts[PreambleStart:PreambleEnd],
		Data:     ts[DataStart:DataEnd],
		Checksum: ts[ChecksumStart:ChecksumEnd],
		Epilogue: ts[EpilogueStart],
	}, nil
}

// ValidPreamble reports whether the lead-in mark and space fall in their windows.
func (f Frame) ValidPreamble() bool {
	return timing.IsValid(f.Preamble[0], PreambleMarkMultiplier) &&
		timing.IsValid(f.Preamble[1], PreambleSpaceMultiplier)
}

// ValidEpilogue reports whether the trailing mark falls in its window.
func (f Frame) ValidEpilogue() bool {
	return timing.IsValid(f.Epilogue, EpilogueMultiplier)
}

// ReadLine reads one line from r and returns it without its line terminator,
// along with the number of bytes consumed including the terminator. A final
// line without a newline is returned as is.
func ReadLine(r io.Reader, limits Limits) (string, int, error) {
	if limits.MaxLineBytes <= 0 {
		limits = DefaultLimits()
	}
	br := bufio.NewReaderSize(r, 4096)

	var sb strings.Builder
	for {
		chunk, err := br.ReadSlice('\n')
		if sb.Len()+len(chunk) > limits.MaxLineBytes+2 {
			return "", 0, ErrLineTooLong
		}
		sb.Write(chunk)
		if err == nil {
			break
		}
		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		if errors.Is(err, io.EOF) {
			if sb.Len() == 0 {
				return "", 0, ErrNoInput
			}
			break
		}
		return "", 0, err
	}

	raw := sb.String()
	line := strings.TrimSuffix(raw, "\n")
	line = strings.TrimSuffix(line, "\r")
	if len(line) > limits.MaxLineBytes {
		return "", 0, ErrLineTooLong
	}
	return line, len(raw), nil
}
