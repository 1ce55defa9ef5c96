package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/n2code/touchat"
	"github.com/n2code/touchat/cmd/touchat/flags"
	"github.com/n2code/touchat/internal/output"
)

type CliRequest struct {
	verbose   bool
	quiet     bool
	plain     bool
	dryRun    bool
	tree      bool
	confirm   bool
	timestamp time.Time
	paths     []string
	choose    touchat.RequestChoice //only used if confirmation is requested
}

const usageLine = "Usage: touchat [FLAGS] YYYYMMDD|YYMMDD|MMDD PATH...\n"

const (
	exitOk     = 0
	exitFailed = 1 //some entries could not be updated
	exitUsage  = 2
)

func parseFlags(args []string, out io.Writer, errOut io.Writer) (request *CliRequest, exitCode int) {
	flagSet := flag.NewFlagSet("touchat", flag.ContinueOnError)
	flagSet.SetOutput(errOut)
	flagSet.Usage = func() {
		fmt.Fprint(flagSet.Output(), `
Usage:
   touchat [-v|-q] [-n] [-tree] [-confirm] [-strict] [-p] [-h] DATE PATH...

 Sets the modification time of all PATHs to midnight (local time) of DATE.
 Directories are processed recursively, including the directory itself.
 Every updated path is printed as an absolute path, one per line.

 DATE formats:  YYYYMMDD  (20230615)
                YYMMDD    (230615, years 00-68 are 20xx, 69-99 are 19xx)
                MMDD      (0615, current year)

`)
		flagSet.PrintDefaults()
		fmt.Fprint(flagSet.Output(), "\n")
	}

	request = &CliRequest{}
	var helpRequested, strict bool
	flagSet.BoolVar(&request.verbose, flags.Verbose, false, "Output details on skipped paths and previous modification times (verbose mode)")
	flagSet.BoolVar(&request.quiet, flags.Quiet, false, "Output only the updated paths and errors (quiet mode)")
	flagSet.BoolVar(&request.plain, flags.Plain, false, "Plain output, i.e. no terminal escape sequences")
	flagSet.BoolVar(&helpRequested, flags.Help, false, "Display usage help")
	flagSet.BoolVar(&request.dryRun, flags.DryRun, false, "Only list what would be updated, change nothing (dry run)")
	flagSet.BoolVar(&request.tree, flags.Tree, false, "List updated paths as a tree instead of one absolute path per line")
	flagSet.BoolVar(&request.confirm, flags.Confirm, false, "Ask for confirmation before changing anything")
	flagSet.BoolVar(&strict, flags.Strict, false, "Exit with failure status if DATE cannot be parsed\n(without this flag a bad DATE only prints the usage line)")

	var err error
	defer func() {
		if err != nil {
			fmt.Fprintf(errOut, "%s\nUsage help: touchat -h\n", err)
			exitCode = exitUsage
			request = nil
		}
	}()

	if parseErr := flagSet.Parse(args); parseErr != nil {
		if errors.Is(parseErr, flag.ErrHelp) {
			return nil, exitOk
		}
		return nil, exitUsage //flag package already reported the problem
	}

	if helpRequested {
		flagSet.SetOutput(out)
		flagSet.Usage()
		return nil, exitOk
	}
	if request.verbose && request.quiet {
		err = errors.New("quiet mode and verbose mode are mutually exclusive")
		return
	}
	if flagSet.NArg() < 2 {
		fmt.Fprint(errOut, usageLine)
		return nil, exitUsage
	}

	timestamp, dateErr := touchat.ParseDate(flagSet.Arg(0))
	if dateErr != nil {
		if request.verbose {
			fmt.Fprintln(errOut, dateErr)
		}
		fmt.Fprint(errOut, usageLine)
		if strict {
			return nil, exitUsage
		}
		return nil, exitOk //historic behavior: a bad date is not a failure
	}
	request.timestamp = timestamp
	request.paths = flagSet.Args()[1:]
	return
}

func (rq *CliRequest) execute(out io.Writer, errOut io.Writer, allowEscapes bool) error {
	config := touchat.CreateConfig{Escapes: allowEscapes, Out: out, ErrOut: errOut}
	switch {
	case rq.verbose:
		config.Verbosity = touchat.VerboseMode
	case rq.quiet:
		config.Verbosity = touchat.QuietMode
	}
	if rq.dryRun {
		config.Change = touchat.DryRun
	}
	if rq.tree {
		config.Listing = touchat.TreeListing
	}

	api := touchat.New(config)
	entries := api.Collect(rq.paths)

	if rq.confirm && entries.Len() > 0 {
		request := fmt.Sprintf("Set modification time of %s to %s?", output.Count(entries.Len(), "entry", "entries"), output.Date(rq.timestamp))
		if choice := rq.choose(request, []string{"Yes", "No"}); choice != "Yes" {
			if !rq.quiet {
				fmt.Fprintln(errOut, "Nothing changed.")
			}
			return nil
		}
	}

	touched, err := api.Apply(entries, rq.timestamp)
	if rq.tree {
		api.PrintTree(touched)
	}
	return err
}

func main() {
	rq, rc := parseFlags(os.Args[1:], os.Stdout, os.Stderr)
	if rc != exitOk || rq == nil {
		os.Exit(rc)
	}
	allowEscapes := !rq.plain && isTerminal(os.Stderr)
	rq.choose = PromptUser(os.Stdin, os.Stderr, allowEscapes)
	if err := rq.execute(os.Stdout, os.Stderr, allowEscapes); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitFailed)
	}
	os.Exit(exitOk)
}
