package config

import (
	"errors"
	"fmt"
	"log/slog"
)

// Output format of the range printer
const (
	// DefaultPrompt is written to the output before the bound is read
	DefaultPrompt = "Enter a number: "

	// DefaultSeparator follows every printed number, including the last one
	DefaultSeparator = " "

	// DefaultTerminator ends the printed sequence
	DefaultTerminator = "\n"

	// DefaultBitSize limits the accepted bound to a signed 32-bit integer
	DefaultBitSize = 32
)

// Config represents the program configuration
type Config struct {
	// Prompt is written before reading the bound (may be empty)
	Prompt string

	// Separator is written after each number
	Separator string

	// Terminator is written once after the sequence
	Terminator string

	// BitSize is the width of the signed integer accepted as the bound (8-64)
	BitSize int

	// LogLevel is the minimum level of diagnostics written to stderr
	LogLevel slog.Level
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Prompt:     DefaultPrompt,
		Separator:  DefaultSeparator,
		Terminator: DefaultTerminator,
		BitSize:    DefaultBitSize,
		LogLevel:   slog.LevelWarn,
	}
}

// Validate reports whether the configuration can be used by the printer
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.BitSize < 8 || c.BitSize > 64 {
		return fmt.Errorf("bit size %d out of range [8, 64]", c.BitSize)
	}
	if c.Terminator == "" {
		return errors.New("terminator must not be empty")
	}
	return nil
}
