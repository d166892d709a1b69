package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/bricar/minimarket/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
)

func main() {
	// A .env next to the store carries the API key and local overrides.
	godotenv.Load()

	name := path.Base(os.Args[0])
	commander := subcommands.NewCommander(flag.CommandLine, name)

	sub := make(map[string]*complete.Command, len(cmd.Commands))
	for _, c := range cmd.Commands {
		commander.Register(c, "")
		sub[c.Name()] = &complete.Command{}
	}
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")

	// Shell completion: handles the request and exits when invoked by
	// the shell's completion hook, a no-op otherwise.
	completer := &complete.Command{Sub: sub, Flags: map[string]complete.Predictor{"store": nil}}
	completer.Complete(name)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
