package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/1ean267/nexustack-sub001/internal/cliutil"
	"github.com/1ean267/nexustack-sub001/internal/naming"
	"github.com/1ean267/nexustack-sub001/internal/petstore"
	"github.com/1ean267/nexustack-sub001/openapi"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// TypesFlags contains flags for the types command
type TypesFlags struct {
	Format string
	Quiet  bool
}

// SetupTypesFlags creates and configures a FlagSet for the types command.
// Returns the FlagSet and a TypesFlags struct with bound flag variables.
func SetupTypesFlags() (*flag.FlagSet, *TypesFlags) {
	fs := flag.NewFlagSet("types", flag.ContinueOnError)
	flags := &TypesFlags{}

	fs.StringVar(&flags.Format, "f", FormatText, "output format: text, json or yaml")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json or yaml")
	fs.BoolVar(&flags.Quiet, "q", false, "text output without headers, tab-separated")
	fs.BoolVar(&flags.Quiet, "quiet", false, "text output without headers, tab-separated")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: nexusdoc types [flags]\n\n")
		cliutil.Writef(fs.Output(), "List the named types of the pet store catalog.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  nexusdoc types\n")
		cliutil.Writef(fs.Output(), "  nexusdoc types -f json\n")
		cliutil.Writef(fs.Output(), "  nexusdoc types -q | cut -f1\n")
	}

	return fs, flags
}

// HandleTypes executes the types command
func HandleTypes(args []string, stdout io.Writer) error {
	fs, flags := SetupTypesFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("types command takes no arguments")
	}

	types := petstore.New(naming.None).Types()

	if flags.Format == FormatText {
		rows := make([][]string, len(types))
		for i, t := range types {
			desc := t.Description
			if t.Recursive {
				desc += " (recursive)"
			}
			rows[i] = []string{t.Name, desc}
		}
		renderTable(stdout, []string{"NAME", "DESCRIPTION"}, rows, flags.Quiet)
		return nil
	}

	format, err := openapi.ParseFormat(flags.Format)
	if err != nil {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", flags.Format, FormatText, FormatJSON, FormatYAML)
	}
	tree, err := openapi.Normalize(types)
	if err != nil {
		return err
	}
	data, err := openapi.Encode(tree, format)
	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}
	return cliutil.WriteOutput(stdout, "", data)
}
