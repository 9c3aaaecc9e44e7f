package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/1ean267/nexustack-sub001/internal/cliutil"
	"github.com/1ean267/nexustack-sub001/internal/petstore"
	"github.com/1ean267/nexustack-sub001/openapi"
	"github.com/1ean267/nexustack-sub001/validator"
)

// InfoQuery is the -info flag value.
type InfoQuery struct {
	Title          string       `schema:"title"`
	Version        string       `schema:"version"`
	Summary        string       `schema:"summary"`
	Description    string       `schema:"description"`
	TermsOfService string       `schema:"terms"`
	Contact        ContactQuery `schema:"contact"`
}

// ContactQuery is the contact part of InfoQuery.
type ContactQuery struct {
	Name  string `schema:"name"`
	URL   string `schema:"url"`
	Email string `schema:"email"`
}

func (q InfoQuery) info() *openapi.Info {
	info := &openapi.Info{
		Title:          q.Title,
		Version:        q.Version,
		Summary:        q.Summary,
		Description:    q.Description,
		TermsOfService: q.TermsOfService,
	}
	if q.Contact != (ContactQuery{}) {
		info.Contact = &openapi.Contact{Name: q.Contact.Name, URL: q.Contact.URL, Email: q.Contact.Email}
	}
	return info
}

// ServerQuery is one -server flag value.
type ServerQuery struct {
	URL         string `schema:"url,required"`
	Description string `schema:"description"`
}

// DocumentFlags contains flags for the document command
type DocumentFlags struct {
	RenderFlags
	Info     InfoQuery
	Servers  []ServerQuery
	Validate bool
	Strict   bool
}

// SetupDocumentFlags creates and configures a FlagSet for the document command.
// Returns the FlagSet and a DocumentFlags struct with bound flag variables.
func SetupDocumentFlags() (*flag.FlagSet, *DocumentFlags) {
	fs := flag.NewFlagSet("document", flag.ContinueOnError)
	flags := &DocumentFlags{}
	flags.bind(fs)

	fs.BoolVar(&flags.Validate, "validate", false, "check the generated document and report issues on stderr")
	fs.BoolVar(&flags.Strict, "strict", false, "with -validate, fail on warnings too")
	fs.Func("info", "info overrides as a query string (keys: title, version, summary, description, terms, contact.name, contact.url, contact.email)", func(s string) error {
		return decodeQuery(&flags.Info, s)
	})
	fs.Func("server", "server as a query string (keys: url, description); repeatable, replaces the default server", func(s string) error {
		var server ServerQuery
		if err := decodeQuery(&server, s); err != nil {
			return err
		}
		flags.Servers = append(flags.Servers, server)
		return nil
	})

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: nexusdoc document [flags]\n\n")
		cliutil.Writef(fs.Output(), "Generate the pet store OpenAPI document.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  nexusdoc document\n")
		cliutil.Writef(fs.Output(), "  nexusdoc document -version 3.0 -f yaml -o openapi.yaml\n")
		cliutil.Writef(fs.Output(), "  nexusdoc document -rename snake_case -inline\n")
		cliutil.Writef(fs.Output(), "  nexusdoc document -validate -strict\n")
		cliutil.Writef(fs.Output(), "  nexusdoc document -info 'title=Zoo&version=2.0.0' -server 'url=http://localhost:8080&description=local'\n")
		cliutil.Writef(fs.Output(), "\nNotes:\n")
		cliutil.Writef(fs.Output(), "  - With -inline, operations on recursive types are left out\n")
		cliutil.Writef(fs.Output(), "  - Output is deterministic: equal flags produce equal bytes\n")
	}

	return fs, flags
}

// HandleDocument executes the document command
func HandleDocument(args []string, stdout io.Writer) error {
	fs, flags := SetupDocumentFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("document command takes no arguments")
	}

	s, err := flags.resolve()
	if err != nil {
		return err
	}

	servers := make([]*openapi.Server, len(flags.Servers))
	for i, q := range flags.Servers {
		servers[i] = &openapi.Server{URL: q.URL, Description: q.Description}
	}

	doc, err := s.catalog.Document(petstore.DocumentOptions{
		Version: s.version,
		Inline:  flags.Inline,
		Logger:  s.logger,
		Info:    flags.Info.info(),
		Servers: servers,
	})
	if err != nil {
		return fmt.Errorf("building document: %w", err)
	}

	if flags.Validate {
		if err := reportValidation(doc, flags.Strict, os.Stderr); err != nil {
			return err
		}
	}

	data, err := openapi.EncodeDocument(doc, s.format)
	if err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}
	return cliutil.WriteOutput(stdout, flags.Output, data)
}

// reportValidation writes the issues found in doc to w and fails when the
// document is invalid, or has warnings in strict mode.
func reportValidation(doc *openapi.Document, strict bool, w io.Writer) error {
	result := validator.New().Validate(doc)
	for _, e := range result.Errors {
		cliutil.Writef(w, "%s\n", e.String())
	}
	for _, warn := range result.Warnings {
		cliutil.Writef(w, "%s\n", warn.String())
	}
	if !result.Valid {
		return fmt.Errorf("document has %d validation error(s)", result.ErrorCount)
	}
	if strict && result.WarningCount > 0 {
		return fmt.Errorf("document has %d validation warning(s)", result.WarningCount)
	}
	return nil
}
