// Package main provides the ndarray CLI: evaluate tensor operations on JSON
// nested-list operands and sample random tensors.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const version = "v0.1.0-dev"

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	os.Exit(run(os.Args[1:], os.Stdout))
}

// run dispatches a subcommand and returns the process exit code:
// 0 on success, 1 when the command fails and 2 on a usage error.
func run(args []string, out io.Writer) int {
	fs := flag.NewFlagSet("ndarray", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	verbose := fs.Bool("v", false, "Enable debug logging")
	if err := fs.Parse(args); err != nil {
		usage(out)
		return 2
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if fs.NArg() == 0 {
		usage(out)
		return 2
	}
	name, rest := fs.Arg(0), fs.Args()[1:]
	cmd, ok := commands[name]
	if !ok {
		log.Error().Str("command", name).Msg("Unknown command")
		usage(out)
		return 2
	}

	if err := cmd.run(rest, out); err != nil {
		log.Error().Err(err).Str("command", name).Msg("Command failed")
		if errors.Is(err, errUsage) {
			return 2
		}
		return 1
	}
	return 0
}

func usage(out io.Writer) {
	fmt.Fprintf(out, "ndarray %s\n\n", version)
	fmt.Fprintln(out, "Usage: ndarray [-v] <command> [flags] [operands]")
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "Commands:")
	for _, name := range commandOrder {
		fmt.Fprintf(out, "  %-9s %s\n", name, commands[name].usage)
	}
}
