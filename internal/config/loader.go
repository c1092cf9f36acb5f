package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a settings file. An empty path returns Defaults().
func Load(path string) (Settings, error) {
	if path == "" {
		return Defaults(), nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, &Error{
			Op:   "config.load",
			Kind: KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var dto YAMLSettings
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return Settings{}, &Error{
			Op:   "config.load",
			Kind: KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return MapSettings(path, dto)
}
