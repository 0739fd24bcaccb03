package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/agentspec/agentspec/agent"
)

func runShow(args []string) error {
	flags := pflag.NewFlagSet("show", pflag.ContinueOnError)
	patches := flags.StringArray("patch", nil,
		"document merged over the base before decoding; repeatable")
	registerToolFlags(flags)
	if err := flags.Parse(args); err != nil {
		return err
	}

	if flags.NArg() != 1 {
		return fmt.Errorf("show: exactly one document expected")
	}

	data, err := os.ReadFile(flags.Arg(0))
	if err != nil {
		return fmt.Errorf("show: %w", err)
	}

	for _, patchPath := range *patches {
		patch, err := os.ReadFile(patchPath)
		if err != nil {
			return fmt.Errorf("show: %w", err)
		}
		if data, err = agent.Merge(data, patch); err != nil {
			return fmt.Errorf("show %v: %w", patchPath, err)
		}
	}

	// Decoding fills in the defaults of every field the document and
	// its patches leave unset
	config, err := agent.FromJSON(data)
	if err != nil {
		return fmt.Errorf("show %v: %w", flags.Arg(0), err)
	}

	document, err := agent.Marshal(config.Config)
	if err != nil {
		return fmt.Errorf("show %v: %w", flags.Arg(0), err)
	}

	fmt.Println(string(document))
	return nil
}
