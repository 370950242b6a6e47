package config

import (
	"errors"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	// ErrLoadingEnvFile is returned when an explicitly requested env file cannot be read
	ErrLoadingEnvFile = errors.New("failed to load env file")

	// ErrParsingConfig is returned when environment variables cannot be parsed into the config struct
	ErrParsingConfig = errors.New("failed to parse environment variables into config")
)

// Config holds the settings of the ordercheck command.
type Config struct {
	MaxAmount float64 `env:"ORDERCHECK_MAX_AMOUNT" envDefault:"1000"`
	LogLevel  string  `env:"ORDERCHECK_LOG_LEVEL" envDefault:"info"`
	LogFormat string  `env:"ORDERCHECK_LOG_FORMAT" envDefault:"text"`
}

// Load reads envFiles into the process environment and parses Config from
// it. Variables already set in the environment win over file values. With no
// envFiles, a .env in the working directory is loaded if present.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		// a missing .env is fine
		_ = godotenv.Load()
	} else if err := godotenv.Load(envFiles...); err != nil {
		return Config{}, errors.Join(ErrLoadingEnvFile, err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// Level returns LogLevel as a slog level, falling back to info for
// unrecognised values.
func (c Config) Level() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return l
}
