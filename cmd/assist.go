package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/bricar/minimarket/agent"
	"github.com/google/subcommands"
)

// assistCmd is the subcommand for the AI sales assistant.
type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "talk to the AI sales assistant" }
func (*assistCmd) Usage() string {
	return `mmb assist [<question>]

  With a question, answers it and exits. Without one, starts an
  interactive session. Needs a Gemini API key in GEMINI_API_KEY.
`
}

func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		return fail(err)
	}

	// One-shot question.
	if f.NArg() > 0 {
		fmt.Println(agent.AskOnce(ctx, store, strings.Join(f.Args(), " ")))
		return subcommands.ExitSuccess
	}

	if !agent.Configured() {
		fmt.Println(agent.NotConfiguredMsg)
		return subcommands.ExitFailure
	}
	client, err := agent.NewClient(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	a := agent.New(os.Stdout, os.Stdin, agent.NewShopkeeper(store))
	if err := a.Run(ctx, client); err != nil {
		fmt.Fprintln(os.Stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
