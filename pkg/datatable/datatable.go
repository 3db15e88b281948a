// Package datatable implements the server-side processing contract of
// the DataTables grid widget: free-text filtering, single-column
// sorting, and offset/length paging over an in-memory row set. Every
// entity grid in the admin UI goes through this one engine with its own
// column list.
package datatable

import (
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// Request carries the tabular query parameters sent by the grid widget.
type Request struct {
	Draw        string
	Start       int
	Length      int
	Search      string
	OrderColumn int
	OrderDir    string
}

// ParseRequest extracts the form-encoded DataTables parameters from the
// request body. Unparsable integers fall back to 0 and the search term
// is trimmed, matching the widget's defaults.
func ParseRequest(c *gin.Context) Request {
	start, _ := strconv.Atoi(c.PostForm("start"))
	length, _ := strconv.Atoi(c.PostForm("length"))
	orderColumn, _ := strconv.Atoi(c.PostForm("order[0][column]"))

	return Request{
		Draw:        c.PostForm("draw"),
		Start:       start,
		Length:      length,
		Search:      strings.TrimSpace(c.PostForm("search[value]")),
		OrderColumn: orderColumn,
		OrderDir:    c.PostForm("order[0][dir]"),
	}
}

// Column describes one grid column of a row type T. Value produces the
// string the search filter matches against and the default sort key.
// Less, when set, overrides ordering (numeric and date columns sort by
// value, not lexicographically). Searchable marks the column as part of
// the free-text filter set.
type Column[T any] struct {
	Name       string
	Value      func(T) string
	Less       func(a, b T) bool
	Searchable bool
}

// Response is the JSON shape the grid widget consumes.
type Response[T any] struct {
	Draw            string `json:"draw"`
	RecordsTotal    int64  `json:"recordsTotal"`
	RecordsFiltered int64  `json:"recordsFiltered"`
	Data            []T    `json:"data"`
}

// Apply runs filter → sort → page over rows and reports the pre- and
// post-filter counts. The sort is stable so ties keep their original
// order and pagination stays deterministic across pages. An
// out-of-range order column falls back to the first column ascending.
func Apply[T any](rows []T, req Request, cols []Column[T]) Response[T] {
	res := Response[T]{
		Draw:         req.Draw,
		RecordsTotal: int64(len(rows)),
	}

	filtered := filter(rows, req.Search, cols)
	res.RecordsFiltered = int64(len(filtered))

	col := req.OrderColumn
	// An empty dir is the widget's initial draw and sorts ascending;
	// any other value that is not "asc" sorts descending.
	ascending := req.OrderDir == "" || strings.EqualFold(req.OrderDir, "asc")
	if col < 0 || col >= len(cols) {
		col = 0
		ascending = true
	}
	if len(cols) > 0 {
		sortRows(filtered, cols[col], ascending)
	}

	res.Data = page(filtered, req.Start, req.Length)
	return res
}

func filter[T any](rows []T, search string, cols []Column[T]) []T {
	if search == "" {
		// Still copy so the caller's slice is never reordered in place.
		out := make([]T, len(rows))
		copy(out, rows)
		return out
	}

	needle := strings.ToLower(search)
	out := make([]T, 0, len(rows))
	for _, row := range rows {
		for _, col := range cols {
			if !col.Searchable {
				continue
			}
			if strings.Contains(strings.ToLower(col.Value(row)), needle) {
				out = append(out, row)
				break
			}
		}
	}
	return out
}

func sortRows[T any](rows []T, col Column[T], ascending bool) {
	less := col.Less
	if less == nil {
		less = func(a, b T) bool { return col.Value(a) < col.Value(b) }
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if ascending {
			return less(rows[i], rows[j])
		}
		return less(rows[j], rows[i])
	})
}

func page[T any](rows []T, start, length int) []T {
	if start < 0 {
		start = 0
	}
	if length < 0 {
		length = 0
	}
	if start >= len(rows) {
		return []T{}
	}
	end := start + length
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end]
}
