package settings

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/pelletier/go-toml"
)

// Settings contains everything that can be configured for the mod.
type Settings struct {
	Records struct {
		// Remote is true when the world is a mirror of a world owned by a server, as on a client.
		Remote bool
		// AirRuntimeID is the runtime ID of air sent to clients when a block is removed.
		AirRuntimeID uint32
		// FirstRuntimeID is the runtime ID given to the first block state of the mod.
		FirstRuntimeID uint32
	}
	Log struct {
		// Level is one of debug, info, warn and error.
		Level string
	}
	Sentry struct {
		// DSN is the sentry project crashes are reported to. Reporting is disabled if empty.
		DSN string
	}
}

// DefaultSettings returns the default settings.
func DefaultSettings() Settings {
	s := Settings{}
	s.Records.FirstRuntimeID = 1 << 16
	s.Log.Level = "info"
	return s
}

// LogLevel parses the configured log level.
func (s Settings) LogLevel() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(s.Log.Level))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", s.Log.Level, err)
	}
	return l, nil
}

// SaveDefault will create and save the default settings file. If the file already exists, it will return an error.
func SaveDefault(path string) error {
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		return errors.New("settings file already exists")
	}
	data, err := toml.Marshal(DefaultSettings())
	if err != nil {
		return fmt.Errorf("failed encoding default settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed creating settings file: %w", err)
	}
	return nil
}

// Load will load the settings from your settings file, and return an error if the file does not exist.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Settings{}, errors.New("settings file doesn't exist")
		}
		return Settings{}, fmt.Errorf("error reading config: %w", err)
	}

	s := DefaultSettings()
	if err = toml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("error decoding config: %w", err)
	}
	return s, nil
}
