package config

import (
	"log/slog"
	"reflect"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg == nil {
		t.Fatal("DefaultConfig() returned nil")
	}

	if cfg.Prompt != "Enter a number: " {
		t.Errorf("Prompt = %q, want %q", cfg.Prompt, "Enter a number: ")
	}

	if cfg.Separator != " " {
		t.Errorf("Separator = %q, want %q", cfg.Separator, " ")
	}

	if cfg.Terminator != "\n" {
		t.Errorf("Terminator = %q, want %q", cfg.Terminator, "\n")
	}

	// Matches the range of the original integer type
	if cfg.BitSize != 32 {
		t.Errorf("BitSize = %v, want 32", cfg.BitSize)
	}

	if cfg.LogLevel != slog.LevelWarn {
		t.Errorf("LogLevel = %v, want %v", cfg.LogLevel, slog.LevelWarn)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "default is valid",
			modify:  func(*Config) {},
			wantErr: false,
		},
		{
			name:    "empty prompt is valid",
			modify:  func(c *Config) { c.Prompt = "" },
			wantErr: false,
		},
		{
			name:    "64-bit bound is valid",
			modify:  func(c *Config) { c.BitSize = 64 },
			wantErr: false,
		},
		{
			name:    "bit size too small",
			modify:  func(c *Config) { c.BitSize = 4 },
			wantErr: true,
		},
		{
			name:    "bit size too large",
			modify:  func(c *Config) { c.BitSize = 128 },
			wantErr: true,
		},
		{
			name:    "empty terminator",
			modify:  func(c *Config) { c.Terminator = "" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_ValidateNil(t *testing.T) {
	var cfg *Config
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() on nil config returned nil, want error")
	}
}

func TestConfigConstants(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{name: "DefaultPrompt", value: DefaultPrompt, want: "Enter a number: "},
		{name: "DefaultSeparator", value: DefaultSeparator, want: " "},
		{name: "DefaultTerminator", value: DefaultTerminator, want: "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != tt.want {
				t.Errorf("%s = %q, want %q", tt.name, tt.value, tt.want)
			}
		})
	}
}

func TestConfigHasNoStructTags(t *testing.T) {
	// Validation is done by Validate, not by tag-driven validators
	typ := reflect.TypeOf(Config{})
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if field.Tag != "" {
			t.Errorf("field %s has tag %q, want none", field.Name, field.Tag)
		}
	}
}
