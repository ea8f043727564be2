package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/websoup/websoup"
	"github.com/websoup/websoup/fetch"
	"github.com/websoup/websoup/rod"
)

// FetchCmd is the "fetch" subcommand.
type FetchCmd struct {
	URL      string            `arg:"" help:"URL to fetch"`
	Backend  string            `short:"b" default:"http" enum:"http,rendered,browser,auto" help:"Retrieval backend (auto probes the page first)"`
	Parser   string            `default:"html" enum:"html,xml" help:"Document parser"`
	Timeout  time.Duration     `short:"t" default:"10s" help:"Fetch timeout"`
	Insecure bool              `short:"k" help:"Skip TLS certificate verification"`
	Header   map[string]string `short:"H" help:"Extra request header (repeatable)"`
	Form     string            `short:"f" help:"Print the fields of the first form matching this selector instead of the document"`
	Text     bool              `help:"Print visible text instead of HTML"`
	Verbose  bool              `short:"v" help:"Log fetches and probe verdicts to stderr"`
}

// Run executes the fetch command.
func (c *FetchCmd) Run(deps *Dependencies) error {
	var logger *slog.Logger
	if c.Verbose {
		logger = slog.New(slog.NewTextHandler(deps.Stderr, nil))
	}

	cfg := fetch.Config{
		URL:         c.URL,
		Backend:     websoup.Backend(c.Backend),
		Parser:      websoup.ParserName(c.Parser),
		Timeout:     c.Timeout,
		Headers:     c.Header,
		InsecureTLS: c.Insecure,
		Logger:      logger,
	}

	if c.Backend == "auto" {
		// One browser serves both the probe and, for dynamic pages, the
		// fetch itself.
		manager, err := rod.NewManager()
		if err != nil {
			fmt.Fprintln(deps.Stderr, "Hint: Chrome or Chromium must be installed")
			return err
		}
		defer manager.Close()

		chosen, err := fetch.ChooseBackend(deps.Ctx, fetch.ProbeConfig{
			URL:            c.URL,
			Headers:        c.Header,
			StaticTimeout:  c.Timeout,
			BrowserTimeout: 2 * c.Timeout,
			InsecureTLS:    c.Insecure,
			Browser:        manager.Browser(),
			Logger:         logger,
		})
		manager.PageDone()
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", websoup.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stderr, "probe: using %s backend\n", chosen)

		cfg.Backend = chosen
		if chosen != websoup.BackendHTTP {
			cfg.Browser = manager.Browser()
			defer manager.PageDone()
		}
	}

	if c.Form != "" {
		form, err := fetch.FormFromURL(deps.Ctx, cfg, c.Form)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", websoup.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "action: %s\nmethod: %s\n", form.Action, form.Method)
		for name, value := range form.Fields {
			fmt.Fprintf(deps.Stdout, "%s=%s\n", name, value)
		}
		return nil
	}

	doc, err := fetch.Soup(deps.Ctx, cfg)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", websoup.ErrorMessage(err))
		return err
	}

	if c.Text {
		fmt.Fprintln(deps.Stdout, doc.Text())
		return nil
	}

	html, err := doc.HTML()
	if err != nil {
		return err
	}
	fmt.Fprintln(deps.Stdout, html)
	return nil
}
