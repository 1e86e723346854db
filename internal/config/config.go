package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPath is looked up in the working directory when no path is given.
const DefaultPath = ".myclass.yaml"

const defaultPrompt = "> "

type Config struct {
	Debug  bool
	LogDir string
	Prompt string
	Color  bool
}

// yamlConfig mirrors the file; pointers tell "unset" from zero values.
type yamlConfig struct {
	Debug  *bool   `yaml:"debug"`
	LogDir *string `yaml:"log_dir"`
	Prompt *string `yaml:"prompt"`
	Color  *bool   `yaml:"color"`
}

func Default() Config {
	return Config{Prompt: defaultPrompt, Color: true}
}

// Load reads the YAML config at path. An empty path falls back to
// DefaultPath, whose absence yields Default() rather than an error.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}

		return Config{}, &Error{
			Op:   "config.load",
			Kind: KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	return Parse(path, b)
}

func Parse(path string, b []byte) (Config, error) {
	var dto yamlConfig
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return Config{}, &Error{
			Op:   "config.parse",
			Kind: KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return mapConfig(path, dto)
}

func mapConfig(path string, dto yamlConfig) (Config, error) {
	cfg := Default()
	if dto.Debug != nil {
		cfg.Debug = *dto.Debug
	}
	if dto.LogDir != nil {
		cfg.LogDir = strings.TrimSpace(*dto.LogDir)
	}
	if dto.Color != nil {
		cfg.Color = *dto.Color
	}
	if dto.Prompt != nil {
		if *dto.Prompt == "" {
			return Config{}, &Error{
				Op:   "config.parse",
				Kind: KindInvalidConfig,
				Path: path,
				Err:  errors.New("prompt must not be empty"),
			}
		}
		cfg.Prompt = *dto.Prompt
	}

	return cfg, nil
}
