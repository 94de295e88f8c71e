package find

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/go-querystring/query"
)

// Protocol header names. Request and response sides share X-Page and
// X-Page-Size; the remaining three only appear on responses.
const (
	HeaderPage           = "X-Page"
	HeaderPageSize       = "X-Page-Size"
	HeaderPageCount      = "X-Page-Count"
	HeaderPageTotalCount = "X-Page-Total-Count"
	HeaderTotalCount     = "X-Total-Count"
)

// wireParams is the query-parameter shape of the collection protocol.
type wireParams struct {
	Query string `url:"q,omitempty"`
	Sort  string `url:"s,omitempty"`
}

// Request is the encoded form of a find request: the header set and query
// parameters to hand to the transport. Both are freshly built per call and
// never shared.
type Request struct {
	Header http.Header
	Params url.Values
}

// Encode translates find options into the wire protocol's headers and query
// parameters. It is a pure function of its input: Accept is always set,
// pagination headers appear only when a page size is requested, and the q/s
// parameters are omitted entirely when no well-formed filter or sort survives.
func Encode(opts *FindOptions) (Request, error) {
	header := http.Header{}
	header.Set("Accept", "application/json")

	var p wireParams
	if opts != nil {
		if opts.Page != nil && opts.Page.Size > 0 {
			index := opts.Page.Index
			if index < 0 {
				index = 0
			}
			header.Set(HeaderPageSize, strconv.Itoa(opts.Page.Size))
			header.Set(HeaderPage, strconv.Itoa(index))
		}
		p.Query = filterClause(opts.Filters)
		p.Sort = sortClause(opts.Sort)
	}

	params, err := query.Values(p)
	if err != nil {
		return Request{}, fmt.Errorf("encode query params: %w", err)
	}

	return Request{Header: header, Params: params}, nil
}

// filterClause renders the well-formed filters, in caller order, as a single
// comma-joined clause list. Ill-formed filters are dropped, not reported.
func filterClause(filters []Filter) string {
	clauses := make([]string, 0, len(filters))
	for _, f := range filters {
		if !f.wellFormed() {
			continue
		}
		clauses = append(clauses, f.Field+string(f.Type)+f.Value)
	}
	return strings.Join(clauses, ",")
}

// sortClause renders field and direction back to back, e.g. "nameASC".
func sortClause(s *Sort) string {
	if s == nil || s.Field == "" {
		return ""
	}
	dir := s.Direction
	if dir == "" {
		dir = SortAsc
	}
	return s.Field + string(dir)
}
