package service

import (
	"cmp"
	"slices"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/noah-isme/syntaxscout-api/internal/models"
)

// DefaultPageSize is used when a screen is configured without one.
const DefaultPageSize = 10

// Page is one page of a filtered and sorted collection.
type Page[T any] struct {
	Items      []T
	Page       int
	PageSize   int
	TotalCount int
	TotalPages int
	Empty      bool
}

// Pagination converts the page into response metadata.
func (p Page[T]) Pagination() *models.Pagination {
	return &models.Pagination{
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalCount: p.TotalCount,
		TotalPages: p.TotalPages,
	}
}

// SortSpec maps sort keys to three-way comparators.
type SortSpec[T any] map[string]func(a, b T) int

// Query describes one projection of a collection.
type Query[T any] struct {
	Search       string
	SearchFields []func(T) string
	Filter       func(T) bool
	Sort         string
	Page         int
	PageSize     int
}

// Filter keeps items for which keep returns true. A nil predicate keeps all.
func Filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if keep == nil || keep(item) {
			out = append(out, item)
		}
	}
	return out
}

// Search keeps items where the trimmed text is a case-insensitive substring
// of at least one field. Empty text keeps everything.
func Search[T any](items []T, text string, fields ...func(T) string) []T {
	needle := strings.ToLower(strings.TrimSpace(text))
	if needle == "" {
		return slices.Clone(items)
	}
	return Filter(items, func(item T) bool {
		for _, field := range fields {
			if strings.Contains(strings.ToLower(field(item)), needle) {
				return true
			}
		}
		return false
	})
}

// SortBy returns a stably sorted copy. Unknown keys keep the input order.
func SortBy[T any](items []T, key string, sorts SortSpec[T]) []T {
	out := slices.Clone(items)
	if compare, ok := sorts[key]; ok && compare != nil {
		slices.SortStableFunc(out, compare)
	}
	return out
}

// TotalPages is max(1, ceil(count/size)).
func TotalPages(count, size int) int {
	if size <= 0 {
		size = DefaultPageSize
	}
	pages := (count + size - 1) / size
	if pages < 1 {
		return 1
	}
	return pages
}

// ClampPage bounds page to [1, TotalPages(count, size)].
func ClampPage(page, count, size int) int {
	if page < 1 {
		return 1
	}
	if last := TotalPages(count, size); page > last {
		return last
	}
	return page
}

// Paginate returns items[(page-1)*size : page*size], clipped to the slice.
func Paginate[T any](items []T, page, size int) []T {
	if size <= 0 {
		size = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * size
	if start >= len(items) {
		return []T{}
	}
	end := min(start+size, len(items))
	return slices.Clone(items[start:end])
}

// Project filters then sorts, without paginating. Exports use it directly.
func Project[T any](items []T, q Query[T], sorts SortSpec[T]) []T {
	filtered := Search(Filter(items, q.Filter), q.Search, q.SearchFields...)
	return SortBy(filtered, q.Sort, sorts)
}

// View composes filter, sort and paginate. The requested page is clamped to
// the last page of the filtered result before slicing.
func View[T any](items []T, q Query[T], sorts SortSpec[T]) Page[T] {
	size := q.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}
	sorted := Project(items, q, sorts)
	page := ClampPage(q.Page, len(sorted), size)
	return Page[T]{
		Items:      Paginate(sorted, page, size),
		Page:       page,
		PageSize:   size,
		TotalCount: len(sorted),
		TotalPages: TotalPages(len(sorted), size),
		Empty:      len(sorted) == 0,
	}
}

// Collators are not safe for concurrent use.
var collators = sync.Pool{New: func() any { return collate.New(language.English) }}

// CompareText orders strings by English collation.
func CompareText(a, b string) int {
	c := collators.Get().(*collate.Collator)
	defer collators.Put(c)
	return c.CompareString(a, b)
}

// CompareDate orders YYYY-MM-DD or RFC3339 strings chronologically.
// Unparseable values sort before every valid date.
func CompareDate(a, b string) int {
	return parseDate(a).Compare(parseDate(b))
}

// CompareNumber orders numbers ascending.
func CompareNumber[N cmp.Ordered](a, b N) int {
	return cmp.Compare(a, b)
}

// Descending reverses a comparator.
func Descending[T any](compare func(a, b T) int) func(a, b T) int {
	return func(a, b T) int { return compare(b, a) }
}

func parseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	for _, layout := range []string{time.RFC3339, "2006-01-02", "02/01/2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
