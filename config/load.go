package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"

	"mommy/common"
	"mommy/generate"
)

// tomlConfigFile represents the config file as it is encoded in TOML
type tomlConfigFile struct {
	Build *tomlBuild `toml:"build"`
	Lang  *tomlLang  `toml:"lang"`
}

// tomlBuild represents the native build settings as they are encoded in TOML
type tomlBuild struct {
	CC        *string  `toml:"cc"`
	CCFlags   []string `toml:"cc-flags,omitempty"`
	OutputDir string   `toml:"output-dir,omitempty"`
	KeepC     *bool    `toml:"keep-c"`
}

// tomlLang represents the language limits as they are encoded in TOML
type tomlLang struct {
	MaxArraySize    *int `toml:"max-array-size"`
	InputBufferSize *int `toml:"input-buffer-size"`
}

// Config is the complete, validated configuration of a build.
type Config struct {
	// CC is the native C compiler to invoke.
	CC string

	// CCFlags are extra flags passed to the C compiler after the output path.
	CCFlags []string

	// OutputDir is the directory generated files are written to.  If it is
	// empty, files are written next to the source.
	OutputDir string

	// KeepC indicates whether the generated C file should be kept after a
	// successful native build.
	KeepC bool

	// Lang holds the limits passed to the statement compilers.
	Lang generate.Options
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		CC:   "gcc",
		Lang: generate.DefaultOptions(),
	}
}

// LoadConfig loads the config file in `dir` if one exists.  A missing file
// yields the default configuration.
func LoadConfig(dir string) (*Config, error) {
	conf, err := LoadConfigFile(filepath.Join(dir, common.ConfigFileName))
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}

	return conf, err
}

// LoadConfigFile loads and validates a specific config file.  Relative output
// directories are resolved against the directory of the config file.
func LoadConfigFile(path string) (*Config, error) {
	buff, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	tcf := &tomlConfigFile{}
	if err := toml.Unmarshal(buff, tcf); err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", path, err)
	}

	conf := Default()
	if err := applyBuild(conf, tcf.Build, filepath.Dir(path)); err != nil {
		return nil, err
	}

	if err := applyLang(conf, tcf.Lang); err != nil {
		return nil, err
	}

	return conf, nil
}

// applyBuild validates the `[build]` table and merges it into the config
func applyBuild(conf *Config, build *tomlBuild, root string) error {
	if build == nil {
		return nil
	}

	if build.CC != nil {
		if *build.CC == "" {
			return errors.New("cc must name a C compiler")
		}

		conf.CC = *build.CC
	}

	conf.CCFlags = build.CCFlags

	if build.OutputDir != "" {
		if filepath.IsAbs(build.OutputDir) {
			conf.OutputDir = build.OutputDir
		} else {
			conf.OutputDir = filepath.Join(root, build.OutputDir)
		}
	}

	if build.KeepC != nil {
		conf.KeepC = *build.KeepC
	}

	return nil
}

// applyLang validates the `[lang]` table and merges it into the config
func applyLang(conf *Config, lang *tomlLang) error {
	if lang == nil {
		return nil
	}

	if lang.MaxArraySize != nil {
		if *lang.MaxArraySize <= 0 {
			return errors.New("max-array-size must be positive")
		}

		conf.Lang.MaxArraySize = *lang.MaxArraySize
	}

	if lang.InputBufferSize != nil {
		if *lang.InputBufferSize <= 0 {
			return errors.New("input-buffer-size must be positive")
		}

		conf.Lang.InputBufferSize = *lang.InputBufferSize
	}

	return nil
}
