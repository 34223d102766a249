// The ew command computes Indian Foreign Assets declarations and RSU
// tax figures from brokerage exports.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/basant-kumar/EquityWise/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion registers shell completion for the subcommands and exits
// when invoked by the shell's completion hook.
func completion() {
	files := predict.Files("*")
	ew := &complete.Command{
		Flags: map[string]complete.Predictor{
			"rates":     files,
			"prices":    files,
			"vestings":  files,
			"disposals": files,
		},
		Sub: map[string]*complete.Command{
			"fa": {Flags: map[string]complete.Predictor{
				"year":     predict.Something,
				"all":      predict.Nothing,
				"detailed": predict.Nothing,
			}},
			"rsu": {Flags: map[string]complete.Predictor{
				"fy": predict.Something,
			}},
			"holdings": {Flags: map[string]complete.Predictor{
				"d": predict.Something,
			}},
			"report": {Flags: map[string]complete.Predictor{
				"o":    predict.Dirs("*"),
				"year": predict.Something,
			}},
			"validate": {},
			"topic":    {Args: predict.Set{"fa-declaration", "rsu-taxation", "data-files", "*"}},
		},
	}
	ew.Complete("ew")
}
