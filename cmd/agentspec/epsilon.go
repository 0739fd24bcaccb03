package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/agentspec/agentspec/agent"
	"github.com/agentspec/agentspec/agent/apex"
	"github.com/agentspec/agentspec/exploration"
)

// explorationOf returns the exploration section of the agent
// configurations that carry one.
func explorationOf(c agent.Config) (exploration.Config, bool) {
	switch config := c.(type) {
	case apex.Config:
		return config.ExplorationSpec, true
	}
	return exploration.Config{}, false
}

func runEpsilon(args []string) error {
	flags := pflag.NewFlagSet("epsilon", pflag.ContinueOnError)
	registerToolFlags(flags)
	if err := flags.Parse(args); err != nil {
		return err
	}

	if flags.NArg() < 2 {
		return fmt.Errorf("epsilon: a document and at least one " +
			"timestep expected")
	}
	path := flags.Arg(0)

	config, err := agent.FromFile(path)
	if err != nil {
		return fmt.Errorf("epsilon: %w", err)
	}

	explore, ok := explorationOf(config.Config)
	if !ok || !explore.EpsilonGreedy() {
		return fmt.Errorf("epsilon %v: the document has no exploration "+
			"epsilon", path)
	}

	for _, arg := range flags.Args()[1:] {
		t, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return fmt.Errorf("epsilon: timestep %q: %v", arg, err)
		}
		value, err := explore.EpsilonAt(t)
		if err != nil {
			return fmt.Errorf("epsilon %v: %w", path, err)
		}
		fmt.Printf("%v\t%v\n", t, value)
	}
	return nil
}
