// Package cli is the interactive shell around the uuidv1 codec.
package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"

	"github.com/patrikavaz/uuidv1"
	"github.com/patrikavaz/uuidv1/internal/config"
)

const (
	modeDecode = "1"
	modeEncode = "2"

	exampleTimestamp = "2025-05-20T10:15:55.217000Z"
)

// Run is the main entry point. args includes the program name. Returns
// the exit code: 0 whenever the menu ran, including codec failures, and 1
// for unusable flags or unreadable input.
func Run(p Prompter, out io.Writer, errOut io.Writer, args []string) int {
	fs := config.NewFlagSet("uuidv1")
	fs.SetOutput(io.Discard)

	var rest []string
	if len(args) > 1 {
		rest = args[1:]
	}

	cfg, err := config.Load(fs, rest)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printUsage(out, fs)
			return 0
		}
		fprintln(errOut, "error:", err)
		printUsage(errOut, fs)
		return 1
	}

	s := &shell{
		prompter: p,
		out:      out,
		cfg:      cfg,
		log:      newLogger(errOut, cfg.LogLevel),
	}
	if err := s.run(); err != nil {
		s.log.WithError(err).Error("shell aborted")
		fprintln(errOut, "error:", err)
		return 1
	}
	return 0
}

type shell struct {
	prompter Prompter
	out      io.Writer
	cfg      config.Config
	log      *logrus.Logger
}

func (s *shell) run() error {
	mode := s.cfg.Mode
	if mode == "" {
		fprintln(s.out, "UUID v1 ↔ Timestamp Tool")
		fprintln(s.out, "1. UUID → Timestamp")
		fprintln(s.out, "2. Timestamp → UUID")

		var err error
		if mode, err = s.ask("Choose 1 or 2: "); err != nil {
			return err
		}
	}

	switch mode {
	case modeDecode:
		return s.decode()
	case modeEncode:
		return s.encode()
	default:
		s.log.WithField("choice", mode).Debug("rejected menu choice")
		fprintln(s.out, "Invalid choice. Please enter 1 or 2.")
		return nil
	}
}

func (s *shell) decode() error {
	input := s.cfg.UUID
	if input == "" {
		var err error
		if input, err = s.ask("Enter UUIDv1: "); err != nil {
			return err
		}
	}

	id, err := uuidv1.Parse(input)
	var t time.Time
	if err == nil {
		t, err = uuidv1.Decode(id)
	}
	if err != nil {
		s.log.WithError(err).WithFields(logrus.Fields{
			"input": input,
			"kind":  uuidv1.KindOf(err).String(),
		}).Debug("decode failed")
		fprintln(s.out, "Error:", err)
		return nil
	}

	fprintln(s.out, "Timestamp:", uuidv1.FormatCalendar(t))
	if s.cfg.Verbose {
		ts, _ := id.Timestamp()
		s.describe(id, ts)
	}
	return nil
}

func (s *shell) encode() error {
	input := s.cfg.Timestamp
	if input == "" {
		var err error
		if input, err = s.ask(fmt.Sprintf("Enter ISO timestamp (e.g. %s): ", exampleTimestamp)); err != nil {
			return err
		}
	}

	t, err := uuidv1.ParseCalendar(input)
	if err != nil {
		s.log.WithError(err).WithField("input", input).Debug("timestamp rejected")
		fprintln(s.out, "Invalid timestamp format. Use ISO format like", exampleTimestamp)
		return nil
	}

	enc := uuidv1.NewEncoder(s.cfg.EncoderOptions()...)
	id, err := enc.Encode(t)
	if err != nil {
		s.log.WithError(err).WithFields(logrus.Fields{
			"input": input,
			"kind":  uuidv1.KindOf(err).String(),
		}).Debug("encode failed")
		fprintln(s.out, "Error:", err)
		return nil
	}

	fprintln(s.out, "Generated UUIDv1:", id.Encode(s.cfg.Output))
	if s.cfg.Verbose {
		ts, _ := id.Timestamp()
		s.describe(id, ts)
	}
	return nil
}

func (s *shell) describe(id uuidv1.UUID, ts uuidv1.Timestamp) {
	fmt.Fprintf(s.out, "  uuid:      %s\n", id)
	fmt.Fprintf(s.out, "  version:   %d\n", id.Version())
	fmt.Fprintf(s.out, "  variant:   %s\n", id.Variant())
	fmt.Fprintf(s.out, "  ticks:     %d\n", uint64(ts))
	fmt.Fprintf(s.out, "  precise:   %s\n", ts.Time().Format("2006-01-02T15:04:05.0000000Z"))
	fmt.Fprintf(s.out, "  clock seq: %#04x\n", id.ClockSeq())
	fmt.Fprintf(s.out, "  node:      %s\n", formatNode(id.Node()))
}

// ask prompts once and trims the answer. End of input reads as an empty
// answer.
func (s *shell) ask(prompt string) (string, error) {
	line, err := s.prompter.Prompt(prompt)
	if err != nil {
		if errors.Is(err, io.EOF) {
			fprintln(s.out)
			return "", nil
		}
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func formatNode(node uint64) string {
	var b strings.Builder
	for shift := 40; shift >= 0; shift -= 8 {
		if b.Len() > 0 {
			b.WriteByte(':')
		}
		fmt.Fprintf(&b, "%02x", byte(node>>shift))
	}
	return b.String()
}

func newLogger(w io.Writer, level logrus.Level) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return log
}

func fprintln(w io.Writer, a ...any) {
	_, _ = fmt.Fprintln(w, a...)
}

func printUsage(w io.Writer, fs *flag.FlagSet) {
	fprintln(w, `uuidv1 - convert between UUIDv1 values and timestamps

Usage: uuidv1 [flags]

Without flags an interactive menu asks for the direction and the value.
Every flag can also be set as an environment variable, e.g. UUIDV1_NODE.

Flags:`)
	fprintln(w, fs.FlagUsages())
}
