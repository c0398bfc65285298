// Command tasa keeps a book of daily exchange rates and converts amounts with them.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/etnz/tasa/cmd"
	"github.com/google/subcommands"
)

func main() {
	cmd.RegisterFlags(flag.CommandLine)

	commander := subcommands.NewCommander(flag.CommandLine, "tasa")
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	// exits when invoked by the shell for completion.
	cmd.Completion(commander).Complete("tasa")

	flag.Parse()
	flush := cmd.InitLogger()

	if name := flag.Arg(0); name != "" && !cmd.IsCommand(commander, name) {
		if ok, code := cmd.RunExtension(name, flag.Args()[1:]); ok {
			flush()
			os.Exit(code)
		}
	}

	status := commander.Execute(context.Background())
	flush()
	os.Exit(int(status))
}
