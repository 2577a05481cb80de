package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/pagetext"
)

// previewLength is the number of characters of text shown per element
// by --show and --debug.
const previewLength = 100

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	headers, err := pagetext.ParseHeaders(c.Headers)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "warning: %s; using default headers\n", pagetext.ErrorMessage(err))
		headers = nil
	}

	for _, format := range c.Format {
		if !validFormat(format) {
			return errorf(deps, pagetext.Errorf(pagetext.EINVALID, "unknown export format %q (want text, markdown or json)", format))
		}
	}

	req := pagetext.ScrapeRequest{
		URL:     c.URL,
		Headers: headers,
		Filter: pagetext.FilterConfig{
			Tags:      pagetext.ParseList(c.Tags),
			IDs:       pagetext.ParseList(c.IDs),
			Terms:     pagetext.ParseList(c.Terms),
			Match:     pagetext.MatchMode(c.Match),
			MinLength: c.MinLength,
		},
		StripScripts: !c.KeepScripts,
	}

	result, err := deps.Scraper.Scrape(deps.Ctx, req)
	if err != nil {
		return errorf(deps, err)
	}

	if result.Empty() {
		fmt.Fprintln(deps.Stdout, "No elements matched the current filters. Try relaxing the tag, id or search filters or lowering --min-length.")
		return nil
	}

	c.printSummary(deps, result)

	if !c.NoExport {
		if err := c.export(deps, result); err != nil {
			return errorf(deps, err)
		}
	}

	if c.Save {
		scrape, err := pagetext.NewScrape(result)
		if err != nil {
			return errorf(deps, err)
		}
		if err := deps.Scrapes.CreateScrape(deps.Ctx, scrape); err != nil {
			return errorf(deps, err)
		}
		fmt.Fprintf(deps.Stdout, "Saved scrape %s\n", scrape.ID)
	}

	if c.Show {
		c.printRecords(deps, result.Records)
	}

	if c.Debug {
		printInventory(deps, pagetext.NewInventory(result.Records))
	}

	return nil
}

func validFormat(format string) bool {
	for _, f := range pagetext.Formats {
		if f == format {
			return true
		}
	}
	return false
}

func (c *ScrapeCmd) printSummary(deps *Dependencies, r *pagetext.Result) {
	s := pagetext.Summarize(r.Records)
	fmt.Fprintf(deps.Stdout, "Scraped %d elements from %s\n", s.TotalElements, r.URL)
	if r.Metadata.Title != "" {
		fmt.Fprintf(deps.Stdout, "Title: %s\n", r.Metadata.Title)
	}
	fmt.Fprintf(deps.Stdout, "Interactive elements: %d\n", s.InteractiveElements)
	fmt.Fprintf(deps.Stdout, "Total characters: %d\n", s.TotalCharacters)
	fmt.Fprintf(deps.Stdout, "Average length: %.1f\n", s.AverageLength)
}

// export writes every requested artifact through the store. Either all
// files appear in the output directory or none do.
func (c *ScrapeCmd) export(deps *Dependencies, r *pagetext.Result) (err error) {
	artifacts, err := pagetext.BuildArtifacts(r, c.Format...)
	if err != nil {
		return err
	}

	if c.PageMarkdown {
		page, err := c.pageArtifact(deps, r)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "warning: skipping page markdown: %s\n", pagetext.ErrorMessage(err))
		} else {
			artifacts = append(artifacts, page)
		}
	}

	defer func() {
		if err != nil {
			_ = deps.Store.Abort()
		}
	}()

	for _, a := range artifacts {
		if err := deps.Store.Save(deps.Ctx, a); err != nil {
			return err
		}
	}
	if err := deps.Store.Commit(); err != nil {
		return err
	}

	for _, a := range artifacts {
		fmt.Fprintf(deps.Stdout, "Wrote %s\n", filepath.Join(c.Out, a.Filename))
	}
	return nil
}

func (c *ScrapeCmd) pageArtifact(deps *Dependencies, r *pagetext.Result) (pagetext.Artifact, error) {
	md, err := deps.Converter.Convert(r.ContentHTML)
	if err != nil {
		return pagetext.Artifact{}, err
	}
	return pagetext.Artifact{
		Filename:    "scraped_page_" + r.Host() + ".md",
		ContentType: "text/markdown",
		Content:     []byte(md),
	}, nil
}

func (c *ScrapeCmd) printRecords(deps *Dependencies, records []pagetext.ElementRecord) {
	sorted := pagetext.SortRecords(records, pagetext.SortOrder(c.Sort))
	page, pages := pagetext.Paginate(sorted, c.PerPage, c.Page)
	current := max(1, min(c.Page, pages))

	fmt.Fprintf(deps.Stdout, "\nElements (page %d of %d, sorted by %s):\n", current, pages, c.Sort)
	for _, r := range page {
		fmt.Fprintf(deps.Stdout, "  %-20s %-8s %4d  %s\n", r.Name(), r.Tag, r.Length, preview(r.Text))
	}
}

func printInventory(deps *Dependencies, inv pagetext.Inventory) {
	fmt.Fprintf(deps.Stdout, "\nElements with IDs (%d):\n", len(inv.WithIDs))
	for _, r := range inv.WithIDs {
		fmt.Fprintf(deps.Stdout, "  #%s <%s> %s\n", r.ID, r.Tag, preview(r.Text))
	}

	fmt.Fprintf(deps.Stdout, "\nInteractive elements (%d):\n", len(inv.Interactive))
	for _, r := range inv.Interactive {
		line := fmt.Sprintf("  %s <%s>", r.Name(), r.Tag)
		if d := r.Detail(); d != "" {
			line += " " + d
		}
		fmt.Fprintln(deps.Stdout, line)
	}

	fmt.Fprintln(deps.Stdout, "\nTag frequency:")
	for _, tc := range inv.Tags {
		fmt.Fprintf(deps.Stdout, "  %-10s %d\n", tc.Tag, tc.Count)
	}
}

// preview truncates s to previewLength characters.
func preview(s string) string {
	if utf8.RuneCountInString(s) <= previewLength {
		return s
	}
	return strings.TrimSpace(string([]rune(s)[:previewLength])) + "..."
}
