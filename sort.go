package pagetext

import (
	"cmp"
	"slices"
)

// SortOrder is a display ordering of records.
type SortOrder string

// SortOrder constants for SortRecords.
const (
	SortByOrder      SortOrder = "order"
	SortByLengthDesc SortOrder = "length_desc"
	SortByLengthAsc  SortOrder = "length_asc"
	SortByTagType    SortOrder = "tag_type"
)

// Valid reports whether o is a known sort order.
func (o SortOrder) Valid() bool {
	switch o {
	case SortByOrder, SortByLengthDesc, SortByLengthAsc, SortByTagType:
		return true
	}
	return false
}

// SortRecords returns a sorted copy of records. The input slice is not
// modified. Sorting is stable; SortByTagType orders by tag then length,
// both descending.
func SortRecords(records []ElementRecord, order SortOrder) []ElementRecord {
	sorted := slices.Clone(records)

	switch order {
	case SortByLengthDesc:
		slices.SortStableFunc(sorted, func(a, b ElementRecord) int {
			return cmp.Compare(b.Length, a.Length)
		})
	case SortByLengthAsc:
		slices.SortStableFunc(sorted, func(a, b ElementRecord) int {
			return cmp.Compare(a.Length, b.Length)
		})
	case SortByTagType:
		slices.SortStableFunc(sorted, func(a, b ElementRecord) int {
			if c := cmp.Compare(b.Tag, a.Tag); c != 0 {
				return c
			}
			return cmp.Compare(b.Length, a.Length)
		})
	}

	return sorted
}

// Paginate returns the 1-based page of records and the total page count.
// Pages out of range are clamped. A non-positive perPage returns all
// records as a single page.
func Paginate(records []ElementRecord, perPage, page int) ([]ElementRecord, int) {
	if perPage <= 0 || len(records) == 0 {
		return records, 1
	}

	pages := (len(records)-1)/perPage + 1
	page = max(1, min(page, pages))

	start := (page - 1) * perPage
	end := min(start+perPage, len(records))
	return records[start:end], pages
}
