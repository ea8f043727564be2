package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/websoup/websoup"
	"github.com/websoup/websoup/fetch"
	"github.com/websoup/websoup/trafilatura"
)

// ProbeCmd is the "probe" subcommand.
type ProbeCmd struct {
	URL            string            `arg:"" help:"URL to classify"`
	Threshold      float64           `default:"1.2" help:"Rendered/static text ratio above which a page counts as dynamic"`
	StaticTimeout  time.Duration     `default:"10s" help:"Plain-HTTP fetch timeout"`
	BrowserTimeout time.Duration     `default:"20s" help:"Browser fetch timeout"`
	Insecure       bool              `short:"k" help:"Skip TLS certificate verification"`
	Header         map[string]string `short:"H" help:"Extra request header (repeatable)"`
	Content        bool              `help:"Compare extracted main content instead of whole-page text"`
	Verbose        bool              `short:"v" help:"Log fetches and the verdict to stderr"`
}

// Run executes the probe command.
func (c *ProbeCmd) Run(deps *Dependencies) error {
	var logger *slog.Logger
	if c.Verbose {
		logger = slog.New(slog.NewTextHandler(deps.Stderr, nil))
	}

	var extractor websoup.Extractor
	if c.Content {
		extractor = trafilatura.NewExtractor()
	}

	result, err := fetch.Classify(deps.Ctx, fetch.ProbeConfig{
		URL:            c.URL,
		Headers:        c.Header,
		Threshold:      c.Threshold,
		StaticTimeout:  c.StaticTimeout,
		BrowserTimeout: c.BrowserTimeout,
		InsecureTLS:    c.Insecure,
		Extractor:      extractor,
		Logger:         logger,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", websoup.ErrorMessage(err))
		return err
	}

	verdict := "static"
	if result.Dynamic {
		verdict = "dynamic"
	}
	fmt.Fprintf(deps.Stdout, "%s  ratio=%.2f  static=%d  rendered=%d  backend=%s\n",
		verdict, result.Ratio, result.StaticTextLen, result.RenderedTextLen, result.Backend())
	return nil
}
