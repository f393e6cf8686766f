package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "~/.textsteg.yaml"
	DefaultPort       = "8080"
)

// FileConfig holds defaults read from the YAML config file. Command line flags take precedence over it
type FileConfig struct {
	OutputFormat   string `yaml:"output-format"`
	PngCompression string `yaml:"png-compression"`
	Terminator     string `yaml:"terminator"`
	Port           string `yaml:"port"`
}

// LoadFileConfig reads the config file at path. A missing file is not an error, an empty config is returned instead
func LoadFileConfig(path string) (FileConfig, error) {
	var cfg FileConfig

	expandedPath, err := homedir.Expand(path)
	if err != nil {
		return cfg, fmt.Errorf("expand config path %s: %w", path, err)
	}

	raw, err := os.ReadFile(expandedPath)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	} else if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", expandedPath, err)
	}

	if err = yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", expandedPath, err)
	}
	return cfg, nil
}

func (fc FileConfig) EncodeConfig() (ImageEncodeConfig, error) {
	c := ImageEncodeConfig{PngCompressionLevel: ParsePngCompression(fc.PngCompression)}

	if fc.OutputFormat != "" {
		format, err := ParseOutputFormat(fc.OutputFormat)
		if err != nil {
			return c, err
		}
		c.OutputFormat = format
	}

	if fc.Terminator != "" {
		mode, err := ParseTerminatorMode(fc.Terminator)
		if err != nil {
			return c, err
		}
		c.Terminator = mode
	}

	c.PopulateUnsetConfigVars()
	return c, nil
}

func (fc FileConfig) DecodeConfig() (ImageDecodeConfig, error) {
	var c ImageDecodeConfig
	if fc.Terminator != "" {
		mode, err := ParseTerminatorMode(fc.Terminator)
		if err != nil {
			return c, err
		}
		c.Terminator = mode
	}
	c.PopulateUnsetConfigVars()
	return c, nil
}

func (fc FileConfig) ServerPort() string {
	if fc.Port == "" {
		return DefaultPort
	}
	return fc.Port
}
