// Package tableview implements the query composition behind the admin list
// screens: free-text search, multi-value filters, single-column sort and
// pagination over an already-fetched collection. The computation is pure and
// recomputed in full from the current query state — acceptable because admin
// collections stay in the tens to low thousands of rows.
package tableview

import (
	"sort"
	"strings"
	"time"
)

// Sort directions.
const (
	Asc  = "asc"
	Desc = "desc"
)

// DefaultPageSize is used when a query carries no explicit page size.
const DefaultPageSize = 10

// Sort selects the single active sort column.
type Sort struct {
	Column    string `json:"column"`
	Direction string `json:"direction"`
}

// Query is the full view state applied to a collection.
type Query struct {
	Search   string
	Filters  map[string][]string
	Sort     *Sort
	Page     int
	PageSize int
}

// Page is one visible slice of the matched collection.
type Page[T any] struct {
	Items        []T `json:"items"`
	TotalMatched int `json:"total_matched"`
	TotalPages   int `json:"total_pages"`
	Page         int `json:"page"`
}

// Descriptor tells the engine how to read one record kind.
type Descriptor[T any] struct {
	// SearchFields extract the text the substring search runs over.
	// A record matches if any field contains the query (case-insensitive).
	SearchFields []func(T) string
	// FilterFields extract the value compared against a filter group's
	// accepted set. Groups are ANDed; an empty or unknown group is a no-op.
	FilterFields map[string]func(T) string
	// SortKeys extract the ordering key per sortable column. Supported key
	// kinds: string, int, int64, float64, time.Time. nil keys and zero
	// times sort last regardless of direction.
	SortKeys map[string]func(T) any
}

// Apply runs search, filters, sort and pagination over items and returns the
// visible page. items is never mutated.
func Apply[T any](items []T, desc Descriptor[T], q Query) Page[T] {
	search := strings.ToLower(strings.TrimSpace(q.Search))

	matched := make([]T, 0, len(items))
	for _, it := range items {
		if matchesSearch(it, desc, search) && matchesFilters(it, desc, q.Filters) {
			matched = append(matched, it)
		}
	}

	if q.Sort != nil && q.Sort.Column != "" {
		if key, ok := desc.SortKeys[q.Sort.Column]; ok {
			sortItems(matched, key, q.Sort.Direction == Desc)
		}
	}

	pageSize := q.PageSize
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	total := len(matched)
	totalPages := (total + pageSize - 1) / pageSize

	page := q.Page
	if page < 1 {
		page = 1
	}
	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return Page[T]{
		Items:        matched[start:end],
		TotalMatched: total,
		TotalPages:   totalPages,
		Page:         page,
	}
}

func matchesSearch[T any](it T, desc Descriptor[T], search string) bool {
	if search == "" {
		return true
	}
	for _, field := range desc.SearchFields {
		if strings.Contains(strings.ToLower(field(it)), search) {
			return true
		}
	}
	return false
}

func matchesFilters[T any](it T, desc Descriptor[T], filters map[string][]string) bool {
	for group, accepted := range filters {
		if len(accepted) == 0 {
			continue
		}
		field, ok := desc.FilterFields[group]
		if !ok {
			continue
		}
		value := field(it)
		found := false
		for _, v := range accepted {
			if v == value {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func sortItems[T any](items []T, key func(T) any, descending bool) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := key(items[i]), key(items[j])
		aNull, bNull := isNullKey(a), isNullKey(b)
		if aNull || bNull {
			// nulls last regardless of direction
			return !aNull && bNull
		}
		c := compareKeys(a, b)
		if descending {
			return c > 0
		}
		return c < 0
	})
}

func isNullKey(v any) bool {
	if v == nil {
		return true
	}
	if t, ok := v.(time.Time); ok {
		return t.IsZero()
	}
	return false
}

// compareKeys orders two keys of the same kind; mismatched kinds compare equal.
func compareKeys(a, b any) int {
	switch av := a.(type) {
	case string:
		if bv, ok := b.(string); ok {
			return strings.Compare(strings.ToLower(av), strings.ToLower(bv))
		}
	case int:
		if bv, ok := b.(int); ok {
			return cmpOrdered(av, bv)
		}
	case int64:
		if bv, ok := b.(int64); ok {
			return cmpOrdered(av, bv)
		}
	case float64:
		if bv, ok := b.(float64); ok {
			return cmpOrdered(av, bv)
		}
	case time.Time:
		if bv, ok := b.(time.Time); ok {
			return av.Compare(bv)
		}
	}
	return 0
}

func cmpOrdered[T int | int64 | float64](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
