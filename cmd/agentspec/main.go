// Command agentspec inspects, validates and expands agent
// configuration documents.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	_ "github.com/agentspec/agentspec/agent/apex"
	_ "github.com/agentspec/agentspec/agent/ppo"
)

const usage = `usage: agentspec <command> [arguments] [documents]

Commands:
  validate   check documents against their schema
  show       print a document with its defaults filled in
  expand     write every document a sweep describes
  epsilon    evaluate a document's exploration epsilon
  plot       render a document's epsilon schedule to PNG

Common flags (also agentspec.json keys and AGENTSPEC_ variables):
  --log_level string   trace, debug, info, warn or error (default info)
  --log_json           log JSON lines instead of console lines
  --out_dir string     directory expanded documents are written to
`

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "agentspec: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		return errors.New("no command")
	}

	command, rest := args[0], args[1:]
	switch command {
	case "validate":
		return runValidate(rest)
	case "show":
		return runShow(rest)
	case "expand":
		return runExpand(rest)
	case "epsilon":
		return runEpsilon(rest)
	case "plot":
		return runPlot(rest)
	case "help", "-h", "--help":
		fmt.Print(usage)
		return nil
	}

	fmt.Fprint(os.Stderr, usage)
	return fmt.Errorf("unknown command %q", command)
}
