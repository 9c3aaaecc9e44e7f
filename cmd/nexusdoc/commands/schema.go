package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/1ean267/nexustack-sub001/internal/cliutil"
	"github.com/1ean267/nexustack-sub001/internal/petstore"
	"github.com/1ean267/nexustack-sub001/openapi"
)

// SchemaFlags contains flags for the schema command
type SchemaFlags struct {
	RenderFlags
}

// SetupSchemaFlags creates and configures a FlagSet for the schema command.
// Returns the FlagSet and a SchemaFlags struct with bound flag variables.
func SetupSchemaFlags() (*flag.FlagSet, *SchemaFlags) {
	fs := flag.NewFlagSet("schema", flag.ContinueOnError)
	flags := &SchemaFlags{}
	flags.bind(fs)

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: nexusdoc schema [flags] <type>\n\n")
		cliutil.Writef(fs.Output(), "Render one named type as a standalone schema.\n\n")
		cliutil.Writef(fs.Output(), "The output holds the schema and, unless -inline is set, the\n")
		cliutil.Writef(fs.Output(), "components it refers to. Run 'nexusdoc types' for the type names.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  nexusdoc schema Pet\n")
		cliutil.Writef(fs.Output(), "  nexusdoc schema -version 3.0 -inline Owner\n")
		cliutil.Writef(fs.Output(), "  nexusdoc schema -f yaml -rename kebab-case Payment\n")
	}

	return fs, flags
}

// HandleSchema executes the schema command
func HandleSchema(args []string, stdout io.Writer) error {
	fs, flags := SetupSchemaFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("schema command requires exactly one type name")
	}

	s, err := flags.resolve()
	if err != nil {
		return err
	}

	rendered, err := s.catalog.RenderType(fs.Arg(0), petstore.RenderOptions{Inline: flags.Inline, Logger: s.logger})
	if err != nil {
		return fmt.Errorf("rendering %s: %w", fs.Arg(0), err)
	}

	data, err := openapi.Encode(rendered.ToMap(s.version), s.format)
	if err != nil {
		return fmt.Errorf("encoding schema: %w", err)
	}
	return cliutil.WriteOutput(stdout, flags.Output, data)
}
