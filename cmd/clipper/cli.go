package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/clipper"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Items     clipper.ItemService
	Parser    clipper.DocumentParser
	Extractor clipper.Extractor

	// Exporter overrides the directory exporter built by "export".
	Exporter clipper.ItemExporter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Extract ExtractCmd `cmd:"" help:"Extract structured content from saved HTML pages"`
	List    ListCmd    `cmd:"" help:"List saved items"`
	Show    ShowCmd    `cmd:"" help:"Show a saved item"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a saved item"`
	Export  ExportCmd  `cmd:"" help:"Export saved items as markdown files"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Files       []string `arg:"" help:"HTML files to extract (- reads stdin)"`
	URL         string   `short:"u" help:"Page URL; defaults to the page's canonical link"`
	Selection   string   `short:"s" help:"Selected text to merge into the result"`
	State       string   `type:"path" help:"JSON file of page state objects keyed by name"`
	Config      string   `type:"path" env:"CLIPPER_CONFIG" help:"YAML configuration file"`
	Distiller   string   `enum:"trafilatura,readability,none" default:"trafilatura" help:"Article text fallback (trafilatura, readability, none)"`
	Format      string   `short:"f" enum:"json,text" default:"json" help:"Output format (json, text)"`
	Save        bool     `help:"Save results to the database"`
	Concurrency int      `short:"c" default:"4" help:"Files extracted in parallel"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Category string `help:"Only list items of this category"`
	Limit    int    `short:"n" help:"Maximum number of items"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID  string `arg:"" help:"Item ID"`
	Raw bool   `help:"Print the stored body without re-parsing"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Item ID"`
	Force bool   `help:"Confirm deletion"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Dir      string `arg:"" type:"path" help:"Output directory (replaced on success)"`
	Category string `help:"Only export items of this category"`
}
