// Package config loads minimalactions settings from a TOML file.
//
// Example:
//
//	[wellknown]
//	routing = "example.com/app/internal/web/routing"
//	bind = "example.com/app/internal/web/mvc.Bind"
//
// Keys left out keep their defaults from [wellknown.DefaultNames].
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/mpyw/minimalactions/internal/wellknown"
)

// ErrUnknownKey is returned when the file contains keys the analyzer does not know.
var ErrUnknownKey = errors.New("unknown configuration key")

// Config is the decoded configuration.
type Config struct {
	WellKnown WellKnown `toml:"wellknown"`
}

// WellKnown overrides the fully-qualified names of framework types.
type WellKnown struct {
	Routing               string `toml:"routing"`
	BinderTypeProvider    string `toml:"binder_type_provider"`
	Bind                  string `toml:"bind"`
	Result                string `toml:"result"`
	ActionResult          string `toml:"action_result"`
	ConvertToActionResult string `toml:"convert_to_action_result"`
}

// Load reads path and returns the well-known names it describes.
// An empty path yields the defaults.
func Load(path string) (wellknown.Names, error) {
	if path == "" {
		return wellknown.DefaultNames(), nil
	}

	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return wellknown.Names{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}

	return cfg.names(path, meta)
}

// Decode parses TOML from a string.
func Decode(data string) (wellknown.Names, error) {
	var cfg Config
	meta, err := toml.Decode(data, &cfg)
	if err != nil {
		return wellknown.Names{}, fmt.Errorf("failed to parse TOML: %w", err)
	}

	return cfg.names("config", meta)
}

func (c Config) names(source string, meta toml.MetaData) (wellknown.Names, error) {
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return wellknown.Names{}, fmt.Errorf("%s: %w: %s", source, ErrUnknownKey, strings.Join(keys, ", "))
	}

	names := c.WellKnown.apply(wellknown.DefaultNames())
	if err := names.Validate(); err != nil {
		return wellknown.Names{}, fmt.Errorf("%s: %w", source, err)
	}

	return names, nil
}

func (w WellKnown) apply(names wellknown.Names) wellknown.Names {
	override := func(dst *string, v string) {
		if v = strings.TrimSpace(v); v != "" {
			*dst = v
		}
	}

	override(&names.Routing, w.Routing)
	override(&names.BinderTypeProvider, w.BinderTypeProvider)
	override(&names.Bind, w.Bind)
	override(&names.Result, w.Result)
	override(&names.ActionResult, w.ActionResult)
	override(&names.ConvertToActionResult, w.ConvertToActionResult)

	return names
}
