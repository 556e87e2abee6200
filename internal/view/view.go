// Package view derives read-side projections from a records snapshot.
// Everything here is pure: no I/O, no snapshot mutation, fresh allocations.
package view

import (
	"strings"

	"github.com/wxycd4448755reginafisher/EndangeredLangFHE/internal/corpus"
)

// Filter returns the records whose language, region, or status contains
// term, case-insensitively. An empty term returns all records.
func Filter(records []corpus.Record, term string) []corpus.Record {
	out := make([]corpus.Record, 0, len(records))
	if term == "" {
		return append(out, records...)
	}
	needle := strings.ToLower(term)
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.Language), needle) ||
			strings.Contains(strings.ToLower(r.Region), needle) ||
			strings.Contains(strings.ToLower(string(r.Status)), needle) {
			out = append(out, r)
		}
	}
	return out
}

// Paginate returns the pageIndex-th fixed-size window of records. Pages are
// 1-based. An out-of-range page index or a non-positive page size yields an
// empty page, never an error.
func Paginate(records []corpus.Record, pageSize, pageIndex int) []corpus.Record {
	if pageSize <= 0 || pageIndex <= 0 {
		return []corpus.Record{}
	}
	start := (pageIndex - 1) * pageSize
	if start >= len(records) {
		return []corpus.Record{}
	}
	end := start + pageSize
	if end > len(records) {
		end = len(records)
	}
	out := make([]corpus.Record, end-start)
	copy(out, records[start:end])
	return out
}

// TotalPages reports how many pages of the given size records fill.
func TotalPages(total, pageSize int) int {
	if pageSize <= 0 || total <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

// StatusCounts is the per-status aggregation shown on the dashboard.
type StatusCounts struct {
	Pending  int
	Verified int
	Rejected int
}

// Total is the snapshot size the counts were taken over.
func (c StatusCounts) Total() int { return c.Pending + c.Verified + c.Rejected }

// CountByStatus tallies records per review status in one pass.
func CountByStatus(records []corpus.Record) StatusCounts {
	var c StatusCounts
	for _, r := range records {
		switch r.Status {
		case corpus.StatusVerified:
			c.Verified++
		case corpus.StatusRejected:
			c.Rejected++
		default:
			c.Pending++
		}
	}
	return c
}

// CountByLanguage tallies records per language in one pass.
func CountByLanguage(records []corpus.Record) map[string]int {
	counts := make(map[string]int, len(records))
	for _, r := range records {
		counts[r.Language]++
	}
	return counts
}
