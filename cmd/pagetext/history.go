package main

import (
	"fmt"

	"github.com/fwojciec/pagetext"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	if c.ID != "" {
		if c.Delete {
			return c.delete(deps)
		}
		return c.show(deps)
	}
	if c.Delete {
		return errorf(deps, pagetext.Errorf(pagetext.EINVALID, "--delete requires a scrape ID"))
	}

	filter := pagetext.ScrapeFilter{Limit: c.Limit}
	if c.URL != "" {
		filter.URL = &c.URL
	}

	scrapes, err := deps.Scrapes.FindScrapes(deps.Ctx, filter)
	if err != nil {
		return errorf(deps, err)
	}

	if len(scrapes) == 0 {
		fmt.Fprintln(deps.Stdout, "No saved scrapes. Use 'pagetext scrape --save' to record one.")
		return nil
	}

	for _, s := range scrapes {
		fmt.Fprintf(deps.Stdout, "%s  %s  %4d elements  %s",
			s.ID, s.ScrapedAt.Local().Format(pagetext.TimestampLayout), s.TotalElements, s.URL)
		if s.Title != "" {
			fmt.Fprintf(deps.Stdout, "  %s", s.Title)
		}
		fmt.Fprintln(deps.Stdout)
	}
	return nil
}

func (c *HistoryCmd) show(deps *Dependencies) error {
	scrape, err := deps.Scrapes.FindScrapeByID(deps.Ctx, c.ID)
	if err != nil {
		return errorf(deps, err)
	}

	if c.Format == pagetext.FormatJSON {
		fmt.Fprintln(deps.Stdout, scrape.Export)
		return nil
	}

	result, err := scrape.Result()
	if err != nil {
		return errorf(deps, err)
	}

	a, err := pagetext.BuildArtifact(result, c.Format)
	if err != nil {
		return errorf(deps, err)
	}
	fmt.Fprint(deps.Stdout, string(a.Content))
	return nil
}

func (c *HistoryCmd) delete(deps *Dependencies) error {
	if err := deps.Scrapes.DeleteScrape(deps.Ctx, c.ID); err != nil {
		return errorf(deps, err)
	}
	fmt.Fprintf(deps.Stdout, "Deleted scrape %s\n", c.ID)
	return nil
}
