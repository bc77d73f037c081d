// Package config resolves the shell's settings from command-line flags and
// UUIDV1_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/patrikavaz/uuidv1"
)

// EnvPrefix prefixes every environment variable, e.g. UUIDV1_NODE.
const EnvPrefix = "UUIDV1"

var (
	ErrInvalidClockSeq = errors.New("invalid clock sequence")
	ErrInvalidNode     = errors.New("invalid node")
	ErrConflict        = errors.New("conflicting options")
)

// Config is the resolved shell configuration. Zero values mean "ask
// interactively" for Mode, UUID and Timestamp, and "random" for ClockSeq
// and Node.
type Config struct {
	Mode         string
	UUID         string
	Timestamp    string
	ClockSeq     *uint16
	Node         *uint64
	HardwareNode bool
	Output       uuidv1.Encoding
	Verbose      bool
	LogLevel     logrus.Level
}

// NewFlagSet declares the shell's flags.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringP("mode", "m", "", "1 (UUID → timestamp) or 2 (timestamp → UUID); prompts when empty")
	fs.StringP("uuid", "u", "", "UUID to decode; prompts when empty")
	fs.StringP("timestamp", "t", "", "timestamp to encode, YYYY-MM-DDTHH:MM:SS.ffffffZ; prompts when empty")
	fs.String("clock-seq", "", "fixed 14-bit clock sequence (decimal or 0x hex); random when empty")
	fs.String("node", "", "fixed 48-bit node as 12 hex digits, colons allowed; random when empty")
	fs.Bool("hardware-node", false, "use this host's interface address as node")
	fs.StringP("output", "o", string(uuidv1.EncodingCanonical), "rendering of generated UUIDs: text, hex, base64, base64std")
	fs.BoolP("verbose", "v", false, "print the fields of the involved UUID")
	fs.String("log-level", logrus.WarnLevel.String(), "diagnostic log level on stderr")
	return fs
}

// Load parses args (without the program name) and overlays the environment.
// Flags given on the command line win over the environment. A --help
// request is returned as flag.ErrHelp.
func Load(fs *flag.FlagSet, args []string) (Config, error) {
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected argument: %s", fs.Arg(0))
	}

	vip := viper.New()
	vip.SetEnvPrefix(EnvPrefix)
	vip.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	vip.AutomaticEnv()
	if err := vip.BindPFlags(fs); err != nil {
		return Config{}, err
	}

	cfg := Config{
		Mode:         strings.TrimSpace(vip.GetString("mode")),
		UUID:         strings.TrimSpace(vip.GetString("uuid")),
		Timestamp:    strings.TrimSpace(vip.GetString("timestamp")),
		HardwareNode: vip.GetBool("hardware-node"),
		Verbose:      vip.GetBool("verbose"),
	}

	var err error
	if cfg.Output, err = uuidv1.ParseEncoding(vip.GetString("output")); err != nil {
		return Config{}, err
	}
	if cfg.LogLevel, err = logrus.ParseLevel(vip.GetString("log-level")); err != nil {
		return Config{}, err
	}
	if s := vip.GetString("clock-seq"); s != "" {
		seq, err := ParseClockSeq(s)
		if err != nil {
			return Config{}, err
		}
		cfg.ClockSeq = &seq
	}
	if s := vip.GetString("node"); s != "" {
		node, err := ParseNode(s)
		if err != nil {
			return Config{}, err
		}
		cfg.Node = &node
	}
	if cfg.Node != nil && cfg.HardwareNode {
		return Config{}, fmt.Errorf("%w: --node and --hardware-node", ErrConflict)
	}

	return cfg, nil
}

// EncoderOptions translates the fixed-field settings for uuidv1.NewEncoder.
func (c Config) EncoderOptions() []uuidv1.Option {
	var opts []uuidv1.Option
	if c.ClockSeq != nil {
		opts = append(opts, uuidv1.WithClockSeq(*c.ClockSeq))
	}
	switch {
	case c.Node != nil:
		opts = append(opts, uuidv1.WithNode(*c.Node))
	case c.HardwareNode:
		opts = append(opts, uuidv1.WithHardwareNode())
	}
	return opts
}

// ParseClockSeq parses a decimal, 0x-hex, 0o-octal or 0b-binary clock
// sequence below 1<<14.
func ParseClockSeq(s string) (uint16, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 0, 16)
	if err != nil || v >= 1<<14 {
		return 0, fmt.Errorf("%w: %q (want 0..16383)", ErrInvalidClockSeq, s)
	}
	return uint16(v), nil
}

// ParseNode parses a 48-bit node written as 12 hex digits, optionally
// 0x-prefixed or separated by colons or hyphens.
func ParseNode(s string) (uint64, error) {
	h := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "0x")
	h = strings.NewReplacer(":", "", "-", "").Replace(h)
	if len(h) != 12 {
		return 0, fmt.Errorf("%w: %q (want 12 hex digits)", ErrInvalidNode, s)
	}
	v, err := strconv.ParseUint(h, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q (want 12 hex digits)", ErrInvalidNode, s)
	}
	return v, nil
}
