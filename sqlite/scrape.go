package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/pagetext"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ pagetext.ScrapeService = (*ScrapeService)(nil)

// ScrapeService implements pagetext.ScrapeService using SQLite.
type ScrapeService struct {
	db *DB
}

// NewScrapeService creates a new ScrapeService.
func NewScrapeService(db *DB) *ScrapeService {
	return &ScrapeService{db: db}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, xxhash.Sum64String(content))
	return hex.EncodeToString(b)
}

const scrapeColumns = "id, url, host, title, total_elements, export, content_hash, scraped_at"

// CreateScrape saves a scrape. The ID and content hash are always
// assigned here; a zero ScrapedAt is set to the current time.
func (s *ScrapeService) CreateScrape(ctx context.Context, scrape *pagetext.Scrape) error {
	if err := scrape.Validate(); err != nil {
		return err
	}

	scrape.ID = uuid.New().String()
	scrape.ContentHash = hashContent(scrape.Export)
	if scrape.ScrapedAt.IsZero() {
		scrape.ScrapedAt = time.Now()
	}
	scrape.ScrapedAt = scrape.ScrapedAt.UTC().Truncate(time.Second)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO scrapes (`+scrapeColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, scrape.ID, scrape.URL, scrape.Host, scrape.Title, scrape.TotalElements,
		scrape.Export, scrape.ContentHash, scrape.ScrapedAt.Format(time.RFC3339))

	return err
}

// FindScrapeByID retrieves a scrape by ID.
func (s *ScrapeService) FindScrapeByID(ctx context.Context, id string) (*pagetext.Scrape, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+scrapeColumns+" FROM scrapes WHERE id = ?", id)

	scrape, err := scanScrape(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, pagetext.Errorf(pagetext.ENOTFOUND, "scrape not found")
	}
	if err != nil {
		return nil, err
	}
	return scrape, nil
}

// FindScrapes retrieves scrapes matching the filter, newest first.
func (s *ScrapeService) FindScrapes(ctx context.Context, filter pagetext.ScrapeFilter) ([]*pagetext.Scrape, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + scrapeColumns + " FROM scrapes WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}
	if filter.Host != nil {
		query.WriteString(" AND host = ?")
		args = append(args, *filter.Host)
	}

	query.WriteString(" ORDER BY scraped_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var scrapes []*pagetext.Scrape
	for rows.Next() {
		scrape, err := scanScrape(rows)
		if err != nil {
			return nil, err
		}
		scrapes = append(scrapes, scrape)
	}

	return scrapes, rows.Err()
}

// DeleteScrape permanently removes a scrape.
func (s *ScrapeService) DeleteScrape(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM scrapes WHERE id = ?", id)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return pagetext.Errorf(pagetext.ENOTFOUND, "scrape not found")
	}
	return nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanScrape(row scanner) (*pagetext.Scrape, error) {
	var scrape pagetext.Scrape
	var scrapedAt string

	if err := row.Scan(&scrape.ID, &scrape.URL, &scrape.Host, &scrape.Title,
		&scrape.TotalElements, &scrape.Export, &scrape.ContentHash, &scrapedAt); err != nil {
		return nil, err
	}

	var err error
	scrape.ScrapedAt, err = parseRFC3339(scrapedAt, "scraped_at")
	if err != nil {
		return nil, err
	}
	return &scrape, nil
}
