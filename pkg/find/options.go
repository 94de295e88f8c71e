package find

// SortDirection selects the ordering of a sorted list request.
type SortDirection string

const (
	// SortAsc sorts ascending. This is the default when no direction is given.
	SortAsc SortDirection = "ASC"

	// SortDesc sorts descending.
	SortDesc SortDirection = "DESC"
)

// FilterType is the comparison operator of a filter clause. Its value is the
// wire token placed between field and value in the q parameter.
type FilterType string

const (
	// FilterNone is the sentinel for "no comparison". A filter carrying it is
	// never encoded.
	FilterNone FilterType = ""

	// FilterEquals matches values equal to the filter value.
	FilterEquals FilterType = "="

	// FilterNotEquals matches values different from the filter value.
	FilterNotEquals FilterType = "!="

	// FilterGreaterThan matches values strictly greater than the filter value.
	FilterGreaterThan FilterType = ">"

	// FilterGreaterOrEqual matches values greater than or equal to the filter value.
	FilterGreaterOrEqual FilterType = ">="

	// FilterLessThan matches values strictly less than the filter value.
	FilterLessThan FilterType = "<"

	// FilterLessOrEqual matches values less than or equal to the filter value.
	FilterLessOrEqual FilterType = "<="

	// FilterContains matches values containing the filter value.
	FilterContains FilterType = "~"
)

// PageRequest describes the page window of a list request. Size is what opts
// in to pagination: without a positive Size no pagination headers are sent,
// regardless of Index. Index is the zero-based page number.
type PageRequest struct {
	Index int
	Size  int
}

// Sort describes the requested ordering. Field is required for the sort to
// take effect; an empty Direction renders as ASC.
type Sort struct {
	Field     string
	Direction SortDirection
}

// Filter is a single field/operator/value comparison condition. It is only
// encoded when Field and Value are non-empty and Type is not FilterNone.
type Filter struct {
	Field string
	Type  FilterType
	Value string
}

// wellFormed reports whether the filter qualifies for encoding.
func (f Filter) wellFormed() bool {
	return f.Field != "" && f.Value != "" && f.Type != FilterNone
}

// FindOptions bundles the caller's pagination, sorting and filtering intent
// for a list query. Every field is optional; a nil field means "use the
// server default". A nil *FindOptions is valid and encodes to a bare request.
type FindOptions struct {
	Page    *PageRequest
	Sort    *Sort
	Filters []Filter
}
