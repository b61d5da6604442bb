package config

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Flag names shared by the command definition and FromCommand
const (
	FlagSeed     = "seed"
	FlagDebug    = "debug"
	FlagLogLevel = "log-level"
)

// DefaultLogLevel keeps stderr quiet during normal play
const DefaultLogLevel = "warn"

// Config holds the runtime settings of a game
type Config struct {
	Seed     uint64
	Debug    bool
	LogLevel string
}

// Default returns the settings of a plain interactive game
func Default() Config {
	return Config{
		LogLevel: DefaultLogLevel,
	}
}

// Flags returns the command-line flags that FromCommand reads
func Flags() []cli.Flag {
	def := Default()
	return []cli.Flag{
		&cli.Uint64Flag{
			Name:  FlagSeed,
			Usage: "seed for tile spawning; 0 picks a random seed",
			Value: def.Seed,
		},
		&cli.BoolFlag{
			Name:  FlagDebug,
			Usage: "enable debug logging on stderr",
			Value: def.Debug,
		},
		&cli.StringFlag{
			Name:  FlagLogLevel,
			Usage: "minimum log level (debug, info, warn, error)",
			Value: def.LogLevel,
		},
	}
}

// FromCommand builds a validated Config from parsed flags
func FromCommand(cmd *cli.Command) (Config, error) {
	cfg := Config{
		Seed:     cmd.Uint64(FlagSeed),
		Debug:    cmd.Bool(FlagDebug),
		LogLevel: cmd.String(FlagLogLevel),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the config for unusable values
func (c Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Level resolves the effective log level. Debug takes precedence over LogLevel.
func (c Config) Level() (zapcore.Level, error) {
	if c.Debug {
		return zapcore.DebugLevel, nil
	}
	if c.LogLevel == "" {
		return zapcore.WarnLevel, nil
	}
	return zapcore.ParseLevel(c.LogLevel)
}

// NewLogger builds a console-encoded logger writing to stderr, leaving stdout
// to the board.
func NewLogger(c Config) (*zap.Logger, error) {
	level, err := c.Level()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.Encoding = "console"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	zc.Sampling = nil
	if c.Debug {
		zc.Development = true
	}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}
