package handler

import (
	"net/http"
	"strconv"

	"github.com/codeward/backend/internal/tableview"
)

const maxPageSize = 100

// parseTableQuery reads the shared admin list parameters from the URL:
// search, sort, dir, page, page_size, plus one repeatable query parameter
// per named filter group (e.g. ?status=new&status=read).
func parseTableQuery(r *http.Request, filterGroups ...string) tableview.Query {
	params := r.URL.Query()

	q := tableview.Query{
		Search:   params.Get("search"),
		Page:     1,
		PageSize: tableview.DefaultPageSize,
	}

	for _, group := range filterGroups {
		if values := params[group]; len(values) > 0 {
			if q.Filters == nil {
				q.Filters = map[string][]string{}
			}
			q.Filters[group] = values
		}
	}

	if col := params.Get("sort"); col != "" {
		dir := params.Get("dir")
		if dir != tableview.Desc {
			dir = tableview.Asc
		}
		q.Sort = &tableview.Sort{Column: col, Direction: dir}
	}

	if p := params.Get("page"); p != "" {
		if n, err := strconv.Atoi(p); err == nil && n > 0 {
			q.Page = n
		}
	}
	if ps := params.Get("page_size"); ps != "" {
		if n, err := strconv.Atoi(ps); err == nil && n > 0 && n <= maxPageSize {
			q.PageSize = n
		}
	}

	return q
}
