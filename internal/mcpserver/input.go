package mcpserver

import (
	"log/slog"

	"github.com/1ean267/nexustack-sub001/internal/naming"
	"github.com/1ean267/nexustack-sub001/internal/petstore"
	"github.com/1ean267/nexustack-sub001/openapi"
)

// catalogInput holds the rendering settings shared by the tools. Empty
// fields fall back to the NEXUSDOC_* defaults.
type catalogInput struct {
	Version string
	Format  string
	Rename  string
	Inline  *bool
}

// settings are the resolved catalogInput.
type settings struct {
	version openapi.Version
	format  openapi.Format
	inline  bool
	catalog *petstore.Catalog
	logger  openapi.Logger
}

// resolve validates the input and builds a fresh catalog for one call.
func (in catalogInput) resolve() (*settings, error) {
	s := &settings{
		version: cfg.Version,
		format:  cfg.Format,
		inline:  cfg.Inline,
		logger:  openapi.NewSlogAdapter(slog.Default()),
	}
	if in.Version != "" {
		v, err := openapi.ParseVersion(in.Version)
		if err != nil {
			return nil, err
		}
		s.version = v
	}
	if in.Format != "" {
		f, err := openapi.ParseFormat(in.Format)
		if err != nil {
			return nil, err
		}
		s.format = f
	}
	if in.Inline != nil {
		s.inline = *in.Inline
	}
	rule := cfg.Rename
	if in.Rename != "" {
		r, err := naming.ParseRenameRule(in.Rename)
		if err != nil {
			return nil, err
		}
		rule = r
	}
	s.catalog = petstore.New(rule)
	return s, nil
}

func (in renderSchemaInput) catalog() catalogInput {
	return catalogInput{Version: in.Version, Format: in.Format, Rename: in.Rename, Inline: in.Inline}
}

func (in generateDocumentInput) catalog() catalogInput {
	return catalogInput{Version: in.Version, Format: in.Format, Rename: in.Rename, Inline: in.Inline}
}

func (in listOperationsInput) catalog() catalogInput {
	return catalogInput{Version: in.Version, Format: in.Format, Rename: in.Rename, Inline: in.Inline}
}
