package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"

	"github.com/agentspec/agentspec/agent"
)

func runExpand(args []string) error {
	flags := pflag.NewFlagSet("expand", pflag.ContinueOnError)
	registerToolFlags(flags)
	if err := flags.Parse(args); err != nil {
		return err
	}

	config, err := loadToolConfig(flags)
	if err != nil {
		return err
	}
	log, err := newLogger(config)
	if err != nil {
		return err
	}

	if flags.NArg() != 1 {
		return fmt.Errorf("expand: exactly one sweep document expected")
	}
	path := flags.Arg(0)

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("expand: %w", err)
	}
	sweep, err := agent.SweepFromJSON(data)
	if err != nil {
		return fmt.Errorf("expand %v: %w", path, err)
	}
	if err := sweep.Validate(); err != nil {
		return fmt.Errorf("expand %v: %w", path, err)
	}

	if err := os.MkdirAll(config.OutDir, 0o755); err != nil {
		return fmt.Errorf("expand: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	for i := 0; i < sweep.Len(); i++ {
		concrete, err := sweep.At(i)
		if err != nil {
			return fmt.Errorf("expand %v: %w", path, err)
		}
		document, err := agent.Marshal(concrete)
		if err != nil {
			return fmt.Errorf("expand %v: %w", path, err)
		}

		outPath := filepath.Join(config.OutDir,
			fmt.Sprintf("%v_%v.json", base, i))
		if err := os.WriteFile(outPath, document, 0o644); err != nil {
			return fmt.Errorf("expand: %w", err)
		}
		log.Debug().Str("document", outPath).Msg("wrote document")
	}

	log.Info().Int("documents", sweep.Len()).Str("dir", config.OutDir).
		Msg("expanded sweep")
	return nil
}
