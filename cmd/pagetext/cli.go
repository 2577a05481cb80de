package main

import (
	"context"
	"io"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pagetext"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Scraper   pagetext.Scraper
	Converter pagetext.Converter
	Store     pagetext.ArtifactStore
	Scrapes   pagetext.ScrapeService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config   kong.ConfigFlag `help:"Load flag defaults from a YAML file"`
	LogLevel string          `name:"log-level" default:"warn" enum:"debug,info,warn,error" help:"Log level (debug, info, warn, error)"`
	LogFile  string          `name:"log-file" help:"Write logs to a rotating file instead of stderr"`

	Scrape  ScrapeCmd  `cmd:"" help:"Scrape text content from a web page"`
	History HistoryCmd `cmd:"" help:"List or show saved scrapes"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	URL string `arg:"" help:"Page URL (http or https)"`

	Tags        string        `help:"Comma-separated tag names to select"`
	IDs         string        `name:"ids" help:"Comma-separated element ids to select"`
	Terms       string        `help:"Comma-separated search terms filtering element text"`
	Match       string        `default:"contains" enum:"contains,starts_with,ends_with,exact" help:"How terms match element text"`
	MinLength   int           `name:"min-length" default:"10" help:"Drop elements with shorter text"`
	KeepScripts bool          `name:"keep-scripts" help:"Keep script, style and noscript content"`
	Headers     string        `help:"Custom request headers as a JSON object"`
	Timeout     time.Duration `default:"15s" help:"Timeout for each request attempt"`
	Rate        float64       `default:"0" help:"Maximum requests per second to the host, retries included (0 for no limit)"`

	Out          string   `short:"o" default:"." help:"Directory for exported files"`
	Format       []string `short:"f" name:"format" help:"Export format: text, markdown, json (repeatable; default all)"`
	PageMarkdown bool     `name:"page-markdown" help:"Also export the cleaned page body as Markdown"`
	NoExport     bool     `name:"no-export" help:"Do not write any files"`

	Show    bool   `help:"Print the extracted elements"`
	Sort    string `default:"order" enum:"order,length_desc,length_asc,tag_type" help:"Display order for --show"`
	PerPage int    `name:"per-page" default:"10" help:"Elements per page for --show (0 for all)"`
	Page    int    `default:"1" help:"Page to print for --show"`
	Debug   bool   `help:"Print id, interactive element and tag inventories"`

	Save bool `help:"Record the scrape in the history database"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	ID     string `arg:"" optional:"" help:"Scrape ID to print"`
	URL    string `name:"url" help:"Only list scrapes of this URL"`
	Limit  int    `default:"20" help:"Maximum number of scrapes to list"`
	Format string `short:"f" default:"text" enum:"text,markdown,json" help:"Output format when printing a scrape"`
	Delete bool   `help:"Delete the scrape with the given ID"`
}
