package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	kjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
)

const (
	envPrefix      = "AGENTSPEC_"
	configFileName = "agentspec.json"
)

// toolConfig holds the tool's own settings, as opposed to the agent
// documents it operates on. Settings layer from an optional
// agentspec.json in the working directory, then AGENTSPEC_ environment
// variables, then command line flags.
type toolConfig struct {
	LogLevel string `koanf:"log_level"`
	LogJSON  bool   `koanf:"log_json"`
	OutDir   string `koanf:"out_dir"`
}

func defaultToolConfig() toolConfig {
	return toolConfig{LogLevel: "info", OutDir: "."}
}

// registerToolFlags declares the settings flags every command accepts.
func registerToolFlags(flags *pflag.FlagSet) {
	defaults := defaultToolConfig()
	flags.String("log_level", defaults.LogLevel,
		"trace, debug, info, warn or error")
	flags.Bool("log_json", defaults.LogJSON,
		"log JSON lines instead of console lines")
	flags.String("out_dir", defaults.OutDir,
		"directory expanded documents are written to")
}

// loadToolConfig layers the tool settings. Flags the user set win over
// environment variables, which win over the configuration file.
func loadToolConfig(flags *pflag.FlagSet) (toolConfig, error) {
	k := koanf.New(".")

	if _, err := os.Stat(configFileName); err == nil {
		if err := k.Load(file.Provider(configFileName),
			kjson.Parser()); err != nil {
			return toolConfig{}, fmt.Errorf("load %v: %v", configFileName,
				err)
		}
	}

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil)
	if err != nil {
		return toolConfig{}, fmt.Errorf("load environment: %v", err)
	}

	if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
		return toolConfig{}, fmt.Errorf("load flags: %v", err)
	}

	config := defaultToolConfig()
	if err := k.Unmarshal("", &config); err != nil {
		return toolConfig{}, fmt.Errorf("tool configuration: %v", err)
	}
	return config, nil
}

// newLogger returns the tool's logger, writing to stderr so that
// command output on stdout stays clean.
func newLogger(config toolConfig) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(config.LogLevel)
	if err != nil {
		return zerolog.Logger{}, fmt.Errorf("log_level: %v", err)
	}

	var out io.Writer = zerolog.ConsoleWriter{Out: os.Stderr}
	if config.LogJSON {
		out = os.Stderr
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil
}
