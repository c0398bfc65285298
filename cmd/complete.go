package cmd

import (
	"flag"
	"strings"

	"github.com/etnz/tasa"
	"github.com/etnz/tasa/renderer"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion tree of the commands registered in c.
//
// Run the binary with COMP_INSTALL=1 to install it in the user's shell.
func Completion(c *subcommands.Commander) *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: flagPredictors(flag.CommandLine),
	}
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
		cmd.SetFlags(fs)
		root.Sub[cmd.Name()] = &complete.Command{Flags: flagPredictors(fs)}
	})
	return root
}

// flagPredictors predicts values of the flags of fs.
func flagPredictors(fs *flag.FlagSet) map[string]complete.Predictor {
	predictors := make(map[string]complete.Predictor)
	fs.VisitAll(func(f *flag.Flag) {
		switch {
		case isBoolFlag(f):
			predictors[f.Name] = predict.Nothing
		case f.Name == "s":
			predictors[f.Name] = complete.PredictFunc(predictLabels)
		case f.Name == "file":
			predictors[f.Name] = predict.Files("*.json")
		default:
			predictors[f.Name] = predict.Something
		}
	})
	return predictors
}

func isBoolFlag(f *flag.Flag) bool {
	b, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}

// predictLabels predicts rate labels from the rates file. It never creates the file.
func predictLabels(prefix string) []string {
	labels := renderer.NewOptions(tasa.NewStore(rateFile).ListAll()).Labels()
	var matches []string
	for _, l := range labels {
		if strings.HasPrefix(l, prefix) {
			matches = append(matches, l)
		}
	}
	return matches
}

// IsCommand reports whether name is a command registered in c.
func IsCommand(c *subcommands.Commander, name string) bool {
	found := false
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		found = found || cmd.Name() == name
	})
	return found
}
