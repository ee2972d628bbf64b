package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/danmuck/irdecode/internal/logging"
	"github.com/danmuck/irdecode/internal/protocol"
	"github.com/danmuck/irdecode/internal/protocol/frame"
	"github.com/rs/zerolog/log"
)

const (
	exitOK     = 0
	exitDecode = 1
	exitUsage  = 2
)

type options struct {
	configPath string
	sequence   string
	format     string
	quiet      bool
}

func main() {
	logging.ConfigureRuntime()
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("irdecode", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "optional TOML config path")
	fs.StringVar(&opts.sequence, "sequence", "", "timing sequence to decode instead of reading stdin")
	fs.StringVar(&opts.format, "format", "", "output format: text|json")
	fs.BoolVar(&opts.quiet, "quiet", false, "print only the result")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	return opts, nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return exitUsage
	}

	cfg := defaultCLIConfig()
	if opts.configPath != "" {
		cfg, err = loadCLIConfig(opts.configPath)
		if err != nil {
			fmt.Fprintf(stderr, "irdecode: %v\n", err)
			return exitUsage
		}
	}
	if opts.format != "" {
		if cfg.Format, err = parseFormat(opts.format); err != nil {
			fmt.Fprintf(stderr, "irdecode: %v\n", err)
			return exitUsage
		}
	}
	if opts.quiet {
		cfg.Quiet = true
	}

	p := printer{out: stdout, format: cfg.Format, quiet: cfg.Quiet}

	sequence := opts.sequence
	if sequence == "" {
		p.prompt("Please, enter a sequence for decoding:")
		line, n, err := frame.ReadLine(stdin, cfg.Limits)
		if err != nil {
			log.Debug().Err(err).Msg("read sequence")
			p.inputError(err)
			return exitDecode
		}
		sequence = line
		p.prompt(fmt.Sprintf("Entered %d bytes, decoding...", n))
	}

	res, err := protocol.DecodeResult(sequence)
	if err != nil {
		log.Debug().Str("code", protocol.Code(err)).Err(err).Msg("decode failed")
		p.decodeError(err)
		return exitDecode
	}
	p.result(res)
	return exitOK
}

type printer struct {
	out    io.Writer
	format string
	quiet  bool
}

type jsonError struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func (p printer) prompt(msg string) {
	if p.quiet || p.format == formatJSON {
		return
	}
	fmt.Fprintln(p.out, msg)
}

func (p printer) result(res protocol.Result) {
	switch {
	case p.format == formatJSON:
		p.json(res)
	case p.quiet:
		fmt.Fprintln(p.out, res.Hex())
	default:
		fmt.Fprintf(p.out, "Decoded successfully, the result is: %s\n", res.Hex())
	}
}

func (p printer) decodeError(err error) {
	p.failure("An error occurred while decoding the sequence", err)
}

func (p printer) inputError(err error) {
	p.failure("An error occurred while entering the sequence", err)
}

func (p printer) failure(prefix string, err error) {
	switch {
	case p.format == formatJSON:
		p.json(jsonError{Error: err.Error(), Code: protocol.Code(err)})
	case p.quiet:
		fmt.Fprintln(p.out, err)
	default:
		fmt.Fprintf(p.out, "%s: %v\n", prefix, err)
	}
}

func (p printer) json(v any) {
	enc := json.NewEncoder(p.out)
	if err := enc.Encode(v); err != nil {
		log.Error().Err(err).Msg("write json output")
	}
}
