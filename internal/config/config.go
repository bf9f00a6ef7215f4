// Package config handles layered YAML configuration with environment overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/smileynet/phonebook/internal/contact"
)

// ErrInvalid marks config values that fail validation or seeding.
// A bad seed phone matches both ErrInvalid and contact.ErrInvalidPhone.
var ErrInvalid = errors.New("config: invalid value")

// Config holds all phonebook configuration.
type Config struct {
	Display  Display   `yaml:"display"`
	Shell    Shell     `yaml:"shell"`
	Log      Log       `yaml:"log"`
	Contacts []Contact `yaml:"contacts"`
}

// Display holds output rendering settings.
type Display struct {
	Plain bool `yaml:"plain"` // Never style output, even on a TTY
}

// Shell holds interactive shell settings.
type Shell struct {
	Prompt string `yaml:"prompt"`
}

// Log holds logger settings.
type Log struct {
	Level string `yaml:"level"` // zap level name: debug, info, warn, error
}

// Contact is a seed entry loaded into the in-memory book at start-up.
type Contact struct {
	Name   string   `yaml:"name"`
	Phones []string `yaml:"phones"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Shell: Shell{
			Prompt: "> ",
		},
		Log: Log{
			Level: "warn",
		},
	}
}

// LoadLayered loads config from multiple paths with increasing priority.
// Later paths override earlier ones. Missing files are skipped.
// A layer that sets contacts replaces the seed list wholesale.
func LoadLayered(paths ...string) (*Config, error) {
	cfg := DefaultConfig()

	for _, path := range paths {
		layer, err := loadLayer(path)
		if err != nil {
			return nil, err
		}
		if layer == nil {
			continue
		}
		cfg.merge(layer)
	}

	return &cfg, nil
}

// Validate checks that config values are usable.
func (c *Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %w", ErrInvalid, err)
	}
	for i, ct := range c.Contacts {
		if ct.Name == "" {
			return fmt.Errorf("%w: contacts[%d].name cannot be empty", ErrInvalid, i)
		}
		for _, p := range ct.Phones {
			if _, err := contact.NewPhone(p); err != nil {
				return fmt.Errorf("%w: contacts[%d] (%s): %w", ErrInvalid, i, ct.Name, err)
			}
		}
	}
	return nil
}

// ApplyEnv applies environment variable overrides to the config.
// Supported variables: PHONEBOOK_PLAIN, PHONEBOOK_PROMPT, PHONEBOOK_LOG_LEVEL.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("PHONEBOOK_PLAIN"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: invalid PHONEBOOK_PLAIN %q: %w", v, err)
		}
		c.Display.Plain = b
	}
	if v := os.Getenv("PHONEBOOK_PROMPT"); v != "" {
		c.Shell.Prompt = v
	}
	if v := os.Getenv("PHONEBOOK_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	return nil
}

// Book builds an address book from the seed contacts.
// Seed entries sharing a name overwrite each other, last one wins.
func (c *Config) Book() (*contact.AddressBook, error) {
	book := contact.NewAddressBook()
	for _, ct := range c.Contacts {
		r := contact.NewRecord(ct.Name)
		for _, p := range ct.Phones {
			if err := r.AddPhone(p); err != nil {
				return nil, fmt.Errorf("%w: seeding %s: %w", ErrInvalid, ct.Name, err)
			}
		}
		book.AddRecord(r)
	}
	return book, nil
}

// rawConfig mirrors Config but uses pointers to distinguish set vs unset fields.
type rawConfig struct {
	Display  *rawDisplay `yaml:"display"`
	Shell    *rawShell   `yaml:"shell"`
	Log      *rawLog     `yaml:"log"`
	Contacts *[]Contact  `yaml:"contacts"`
}

type rawDisplay struct {
	Plain *bool `yaml:"plain"`
}

type rawShell struct {
	Prompt *string `yaml:"prompt"`
}

type rawLog struct {
	Level *string `yaml:"level"`
}

// loadLayer reads a single config file into a rawConfig for selective merging.
// Returns nil if the file does not exist. Rejects unknown fields.
func loadLayer(path string) (*rawConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if len(data) == 0 {
		return nil, nil
	}

	var raw rawConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return &raw, nil
}

// merge applies non-nil fields from a rawConfig layer onto this Config.
func (c *Config) merge(layer *rawConfig) {
	if layer.Display != nil && layer.Display.Plain != nil {
		c.Display.Plain = *layer.Display.Plain
	}
	if layer.Shell != nil && layer.Shell.Prompt != nil {
		c.Shell.Prompt = *layer.Shell.Prompt
	}
	if layer.Log != nil && layer.Log.Level != nil {
		c.Log.Level = *layer.Log.Level
	}
	if layer.Contacts != nil {
		c.Contacts = append([]Contact(nil), (*layer.Contacts)...)
	}
}
