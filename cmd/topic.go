package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/basant-kumar/EquityWise/docs"
	"github.com/google/subcommands"
)

type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show documentation" }
func (*topicCmd) Usage() string {
	return `ew topic [<topic>...]

  Shows documentation for the given topics. Without arguments it shows
  the topic index; '*' shows everything.

`
}

func (*topicCmd) SetFlags(f *flag.FlagSet) {}

func (*topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		index, err := docs.Index()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading doc: %v\n", err)
			return subcommands.ExitFailure
		}
		printMarkdown(index)
		return subcommands.ExitSuccess
	}

	var b strings.Builder
	for _, topic := range f.Args() {
		content, err := docs.Get(topic)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading doc: %v\n", err)
			return subcommands.ExitFailure
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
