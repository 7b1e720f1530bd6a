package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/beka-birhanu/vinom-tilt/game"
	"gopkg.in/yaml.v3"
)

// LoadGame returns the game tuning. Values in the YAML file at path override
// game.DefaultConfig; an empty path yields the defaults. The result is validated.
func LoadGame(path string) (game.Config, error) {
	if path == "" {
		return game.DefaultConfig(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return game.Config{}, fmt.Errorf("opening game config: %w", err)
	}
	defer f.Close()

	return DecodeGame(f)
}

// DecodeGame decodes YAML game tuning over the defaults and validates it.
func DecodeGame(r io.Reader) (game.Config, error) {
	cfg := game.DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return game.Config{}, fmt.Errorf("decoding game config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return game.Config{}, fmt.Errorf("invalid game config: %w", err)
	}
	return cfg, nil
}
