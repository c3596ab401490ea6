package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gorilla/schema"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/vancomm/termsweeper/internal/mines"
)

const EnvPrefix = "MINES_"

// Options configures one run of the game. Values are layered: Default, then
// a config file, then MINES_* environment variables, then flags.
type Options struct {
	Width     int    `json:"width" yaml:"width" schema:"width"`
	Height    int    `json:"height" yaml:"height" schema:"height"`
	Mines     int    `json:"mines" yaml:"mines" schema:"mines"`
	Separator string `json:"separator" yaml:"separator" schema:"separator"`
	Seed      uint64 `json:"seed" yaml:"seed" schema:"seed"`
	LogFile   string `json:"log_file" yaml:"log_file" schema:"log_file"`
	Verbose   bool   `json:"verbose" yaml:"verbose" schema:"verbose"`
}

func Default() Options {
	return Options{
		Width:     20,
		Height:    20,
		Mines:     40,
		Separator: "\n\n\n\n",
		Verbose:   Development(),
	}
}

// Development is set through the DEVELOPMENT env variable, as for the server.
func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return false
	}
	return development != "0"
}

// LoadFile overlays the options found in a YAML (.yaml, .yml) or JSON file.
func (o *Options) LoadFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("unable to read config %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, o)
	default:
		err = json.Unmarshal(b, o)
	}
	if err != nil {
		return fmt.Errorf("unable to parse config %s: %w", path, err)
	}
	return nil
}

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

// LoadEnv overlays MINES_* variables from environ (as returned by
// os.Environ). MINES_LOG_FILE sets LogFile, and so on.
func (o *Options) LoadEnv(environ []string) error {
	values := map[string][]string{}
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(k, EnvPrefix) {
			continue
		}
		key := strings.ToLower(strings.TrimPrefix(k, EnvPrefix))
		values[key] = append(values[key], v)
	}
	if len(values) == 0 {
		return nil
	}
	if err := decoder.Decode(o, values); err != nil {
		return fmt.Errorf("invalid %s environment: %w", EnvPrefix+"*", err)
	}
	return nil
}

// Validate applies the command line limits. Mines may exceed the board area;
// GameParams clamps them.
func (o Options) Validate() error {
	switch {
	case o.Width < mines.MinWidth || o.Width > mines.MaxWidth:
		return &mines.ConfigError{Field: "width", Value: o.Width, Min: mines.MinWidth, Max: mines.MaxWidth}
	case o.Height < mines.MinHeight || o.Height > mines.MaxHeight:
		return &mines.ConfigError{Field: "height", Value: o.Height, Min: mines.MinHeight, Max: mines.MaxHeight}
	case o.Mines < mines.MinMines || o.Mines > mines.MaxMines:
		return &mines.ConfigError{Field: "mines", Value: o.Mines, Min: mines.MinMines, Max: mines.MaxMines}
	}
	return nil
}

func (o Options) GameParams() mines.GameParams {
	return mines.GameParams{
		Width:     o.Width,
		Height:    o.Height,
		MineCount: min(o.Mines, o.Width*o.Height),
	}
}

func (o Options) Fields() logrus.Fields {
	return map[string]any{
		"width":     o.Width,
		"height":    o.Height,
		"mines":     o.Mines,
		"separator": fmt.Sprintf("%q", o.Separator),
		"seed":      o.Seed,
		"log_file":  o.LogFile,
		"verbose":   o.Verbose,
	}
}
