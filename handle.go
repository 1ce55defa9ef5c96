package touchat

import (
	"io"

	"github.com/n2code/touchat/internal/output"
)

type VerbosityLevel int
type ChangeMode int
type ListingStyle int

// CreateConfig holds a set of common configuration switches that concern all calls to the touchat API.
// The zero value is a sensible default.
type CreateConfig struct {
	Verbosity VerbosityLevel
	Change    ChangeMode
	Listing   ListingStyle
	Escapes   bool      //allow terminal escape sequences in diagnostic output
	Out       io.Writer //path listing, defaults to standard output
	ErrOut    io.Writer //errors, warnings and details, defaults to standard error
}

const (
	DefaultVerbosity VerbosityLevel = iota //warnings and errors besides the path listing
	VerboseMode                            //additionally skipped paths and previous modification times
	QuietMode                              //only the path listing and errors
)

const (
	ApplyChanges ChangeMode = iota
	DryRun                  //all checks are done but nothing is modified
)

const (
	FlatListing ListingStyle = iota //one absolute path per line, printed while processing
	TreeListing                     //printed at the end by PrintTree
)

// New creates a touchat handle with the given configuration.
func New(config CreateConfig) Touchat {
	return makeTouchat(config)
}

type touchat struct {
	printer output.Printer
	dryRun  bool
	listing ListingStyle
}

func makeTouchat(config CreateConfig) (instance *touchat) {
	classes := []output.Class{output.Required, output.Error}
	switch config.Verbosity {
	case VerboseMode:
		classes = append(classes, output.Verbose)
		fallthrough
	case DefaultVerbosity:
		classes = append(classes, output.Normal)
	}
	instance = &touchat{
		printer: output.NewPrinter(classes, config.Escapes).Redirect(config.Out, config.ErrOut),
		dryRun:  config.Change == DryRun,
		listing: config.Listing,
	}
	return
}

func (t *touchat) Print(class output.Class, format string, values ...interface{}) {
	t.printer.Out(class, format, values...)
}
