// Package commands provides CLI command handlers for nexusdoc.
package commands

import (
	"flag"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strings"

	"github.com/gorilla/schema"

	"github.com/1ean267/nexustack-sub001/internal/naming"
	"github.com/1ean267/nexustack-sub001/internal/petstore"
	"github.com/1ean267/nexustack-sub001/openapi"
)

// queryDecoder rejects unknown keys so typos in -info and -server fail.
var queryDecoder = schema.NewDecoder()

// RenderFlags are the flags shared by the document and schema commands.
type RenderFlags struct {
	Version string
	Format  string
	Rename  string
	Inline  bool
	Output  string
	Verbose bool
}

func (f *RenderFlags) bind(fs *flag.FlagSet) {
	fs.StringVar(&f.Version, "version", "3.1", "OpenAPI version: 3.0 or 3.1")
	fs.StringVar(&f.Format, "f", "json", "output format: json or yaml")
	fs.StringVar(&f.Format, "format", "json", "output format: json or yaml")
	fs.StringVar(&f.Rename, "rename", "camelCase", "rename rule for fields and variants: none, "+strings.Join(naming.Rules(), ", "))
	fs.BoolVar(&f.Inline, "inline", false, "render every schema in place instead of under components")
	fs.StringVar(&f.Output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&f.Output, "output", "", "output file path (default: stdout)")
	fs.BoolVar(&f.Verbose, "verbose", false, "log schema registration and document assembly to stderr")
}

// renderSettings are the parsed RenderFlags.
type renderSettings struct {
	version openapi.Version
	format  openapi.Format
	catalog *petstore.Catalog
	logger  openapi.Logger
}

func (f *RenderFlags) resolve() (*renderSettings, error) {
	version, err := openapi.ParseVersion(f.Version)
	if err != nil {
		return nil, err
	}
	format, err := openapi.ParseFormat(f.Format)
	if err != nil {
		return nil, err
	}
	rule, err := naming.ParseRenameRule(f.Rename)
	if err != nil {
		return nil, err
	}
	return &renderSettings{
		version: version,
		format:  format,
		catalog: petstore.New(rule),
		logger:  newLogger(f.Verbose),
	}, nil
}

// newLogger returns a debug logger on stderr when verbose is set and nil,
// which the library treats as a no-op, otherwise.
func newLogger(verbose bool) openapi.Logger {
	if !verbose {
		return nil
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
	return openapi.NewSlogAdapter(slog.New(handler))
}

// decodeQuery decodes a query-style flag value such as
// "title=Zoo&contact.email=zoo@example.com" into dst.
func decodeQuery(dst any, raw string) error {
	values, err := url.ParseQuery(raw)
	if err != nil {
		return fmt.Errorf("parsing %q: %w", raw, err)
	}
	if err := queryDecoder.Decode(dst, values); err != nil {
		return fmt.Errorf("decoding %q: %w", raw, err)
	}
	return nil
}
