package tableview

// State carries the interactive view state of one admin table and owns the
// reset rules between interactions: changing the search text, any filter set
// or the page size snaps back to page 1; toggling the sort keeps the page.
type State struct {
	q Query
}

// NewState creates a State starting at page 1 with the given page size.
func NewState(pageSize int) *State {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return &State{q: Query{
		Filters:  make(map[string][]string),
		Page:     1,
		PageSize: pageSize,
	}}
}

// Query returns a copy of the current query state.
func (s *State) Query() Query {
	q := s.q
	q.Filters = make(map[string][]string, len(s.q.Filters))
	for g, vs := range s.q.Filters {
		q.Filters[g] = append([]string(nil), vs...)
	}
	if s.q.Sort != nil {
		sorted := *s.q.Sort
		q.Sort = &sorted
	}
	return q
}

// SetSearch replaces the search text and resets to page 1.
func (s *State) SetSearch(text string) {
	s.q.Search = text
	s.q.Page = 1
}

// SetFilter replaces one filter group's accepted values and resets to page 1.
// An empty values slice clears the group.
func (s *State) SetFilter(group string, values []string) {
	if len(values) == 0 {
		delete(s.q.Filters, group)
	} else {
		s.q.Filters[group] = append([]string(nil), values...)
	}
	s.q.Page = 1
}

// SetPageSize changes the page size and resets to page 1.
func (s *State) SetPageSize(n int) {
	if n < 1 {
		n = DefaultPageSize
	}
	s.q.PageSize = n
	s.q.Page = 1
}

// SetPage moves to the given page (minimum 1).
func (s *State) SetPage(n int) {
	if n < 1 {
		n = 1
	}
	s.q.Page = n
}

// ToggleSort cycles the sort on a column: a new column starts ascending,
// repeated toggles flip asc/desc. The current page is kept.
func (s *State) ToggleSort(column string) {
	if s.q.Sort == nil || s.q.Sort.Column != column {
		s.q.Sort = &Sort{Column: column, Direction: Asc}
		return
	}
	if s.q.Sort.Direction == Asc {
		s.q.Sort.Direction = Desc
	} else {
		s.q.Sort.Direction = Asc
	}
}
