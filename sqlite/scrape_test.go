package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/pagetext"
	"github.com/fwojciec/pagetext/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScrape(t *testing.T, url string, at time.Time) *pagetext.Scrape {
	t.Helper()
	s, err := pagetext.NewScrape(&pagetext.Result{
		URL:       url,
		Metadata:  pagetext.PageMetadata{Title: "Example"},
		ScrapedAt: at,
		Records: []pagetext.ElementRecord{
			{Text: "Hello world", Tag: "p", Length: 11, Position: 1},
		},
	})
	require.NoError(t, err)
	return s
}

func TestScrapeService_CreateScrape(t *testing.T) {
	t.Parallel()

	t.Run("assigns ID and content hash", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewScrapeService(setupTestDB(t))
		scrape := newTestScrape(t, "https://example.com/a", time.Now())

		err := svc.CreateScrape(context.Background(), scrape)

		require.NoError(t, err)
		assert.NotEmpty(t, scrape.ID)
		assert.Len(t, scrape.ContentHash, 16)
		assert.Equal(t, "example.com", scrape.Host)
		assert.Equal(t, 1, scrape.TotalElements)
	})

	t.Run("same export yields same hash", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewScrapeService(setupTestDB(t))
		at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.Local)
		a := newTestScrape(t, "https://example.com/a", at)
		b := newTestScrape(t, "https://example.com/a", at)

		require.NoError(t, svc.CreateScrape(context.Background(), a))
		require.NoError(t, svc.CreateScrape(context.Background(), b))

		assert.NotEqual(t, a.ID, b.ID)
		assert.Equal(t, a.ContentHash, b.ContentHash)
	})

	t.Run("returns validation error", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewScrapeService(setupTestDB(t))

		err := svc.CreateScrape(context.Background(), &pagetext.Scrape{})

		assert.Equal(t, pagetext.EINVALID, pagetext.ErrorCode(err))
	})
}

func TestScrapeService_FindScrapeByID(t *testing.T) {
	t.Parallel()

	t.Run("round-trips the stored export", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewScrapeService(setupTestDB(t))
		ctx := context.Background()
		at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.Local)
		created := newTestScrape(t, "https://example.com/a", at)
		require.NoError(t, svc.CreateScrape(ctx, created))

		found, err := svc.FindScrapeByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.Export, found.Export)
		assert.True(t, at.Equal(found.ScrapedAt))

		result, err := found.Result()
		require.NoError(t, err)
		assert.Equal(t, "Example", result.Metadata.Title)
		require.Len(t, result.Records, 1)
		assert.Equal(t, "Hello world", result.Records[0].Text)
	})

	t.Run("returns ENOTFOUND for missing scrape", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewScrapeService(setupTestDB(t))

		_, err := svc.FindScrapeByID(context.Background(), "missing")

		assert.Equal(t, pagetext.ENOTFOUND, pagetext.ErrorCode(err))
	})
}

func TestScrapeService_FindScrapes(t *testing.T) {
	t.Parallel()

	svc := sqlite.NewScrapeService(setupTestDB(t))
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, url := range []string{
		"https://example.com/a",
		"https://other.org/b",
		"https://example.com/a",
	} {
		require.NoError(t, svc.CreateScrape(ctx, newTestScrape(t, url, base.Add(time.Duration(i)*time.Hour))))
	}

	t.Run("returns newest first", func(t *testing.T) {
		t.Parallel()

		scrapes, err := svc.FindScrapes(ctx, pagetext.ScrapeFilter{})
		require.NoError(t, err)
		require.Len(t, scrapes, 3)
		assert.True(t, scrapes[0].ScrapedAt.After(scrapes[1].ScrapedAt))
		assert.True(t, scrapes[1].ScrapedAt.After(scrapes[2].ScrapedAt))
	})

	t.Run("filters by URL", func(t *testing.T) {
		t.Parallel()

		url := "https://example.com/a"
		scrapes, err := svc.FindScrapes(ctx, pagetext.ScrapeFilter{URL: &url})
		require.NoError(t, err)
		assert.Len(t, scrapes, 2)
	})

	t.Run("filters by host", func(t *testing.T) {
		t.Parallel()

		host := "other.org"
		scrapes, err := svc.FindScrapes(ctx, pagetext.ScrapeFilter{Host: &host})
		require.NoError(t, err)
		require.Len(t, scrapes, 1)
		assert.Equal(t, "https://other.org/b", scrapes[0].URL)
	})

	t.Run("applies limit and offset", func(t *testing.T) {
		t.Parallel()

		scrapes, err := svc.FindScrapes(ctx, pagetext.ScrapeFilter{Limit: 1, Offset: 1})
		require.NoError(t, err)
		require.Len(t, scrapes, 1)
		assert.Equal(t, "https://other.org/b", scrapes[0].URL)
	})
}

func TestScrapeService_DeleteScrape(t *testing.T) {
	t.Parallel()

	t.Run("removes the scrape", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewScrapeService(setupTestDB(t))
		ctx := context.Background()
		scrape := newTestScrape(t, "https://example.com", time.Now())
		require.NoError(t, svc.CreateScrape(ctx, scrape))

		require.NoError(t, svc.DeleteScrape(ctx, scrape.ID))

		_, err := svc.FindScrapeByID(ctx, scrape.ID)
		assert.Equal(t, pagetext.ENOTFOUND, pagetext.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND for missing scrape", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewScrapeService(setupTestDB(t))

		err := svc.DeleteScrape(context.Background(), "missing")

		assert.Equal(t, pagetext.ENOTFOUND, pagetext.ErrorCode(err))
	})
}
