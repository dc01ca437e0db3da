// Package listing holds the client side of the advocate directory: the view
// state machine shared by the listing clients and the HTTP client they fetch with.
package listing

import (
	"github.com/JaimeStill/advocates/internal/advocates"
	"github.com/JaimeStill/advocates/pkg/pagination"
)

// Status is the phase of the listing view.
type Status int

const (
	StatusLoading Status = iota
	StatusError
	StatusReady
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusError:
		return "error"
	case StatusReady:
		return "ready"
	default:
		return "unknown"
	}
}

// Request is a fetch the model asks its owner to perform.
// Seq identifies the request when its result is handed back to Resolve.
type Request struct {
	Seq    uint64
	Params pagination.PageRequest
}

// Model is the listing view state. It is not safe for concurrent use; the
// owning event loop performs the fetches and feeds results back through Resolve.
type Model struct {
	status     Status
	params     pagination.PageRequest
	rows       []advocates.Advocate
	total      int
	totalPages int
	message    string
	seq        uint64
}

// NewModel creates a model on page 1 with the given page size and no search term.
func NewModel(pageSize int) *Model {
	if pageSize < 1 {
		pageSize = 1
	}
	return &Model{
		status: StatusLoading,
		params: pagination.PageRequest{Page: 1, PageSize: pageSize},
	}
}

// Init issues the initial request.
func (m *Model) Init() Request {
	return m.issue()
}

// SetPage moves to page. The second result is false when nothing changed.
func (m *Model) SetPage(page int) (Request, bool) {
	next := m.params
	next.Page = max(page, 1)
	return m.update(next)
}

// SetPageSize changes the page size, keeping the current page unless it would
// fall past the last page of the known total. Total and rows are kept until
// the response arrives.
func (m *Model) SetPageSize(size int) (Request, bool) {
	next := m.params
	next.PageSize = max(size, 1)

	last := max((m.total+next.PageSize-1)/next.PageSize, 1)
	next.Page = min(next.Page, last)

	return m.update(next)
}

// CommitSearch applies a debounced search term and returns to page 1.
func (m *Model) CommitSearch(term string) (Request, bool) {
	next := m.params
	next.SearchTerm = term
	next.Page = 1
	return m.update(next)
}

// ResetSearch clears the search term and returns to page 1.
func (m *Model) ResetSearch() (Request, bool) {
	return m.CommitSearch("")
}

// Resolve applies the outcome of req. Results for any request other than the
// most recently issued one are discarded and Resolve reports false.
func (m *Model) Resolve(req Request, result *pagination.PageResult[advocates.Advocate], err error) bool {
	if req.Seq != m.seq {
		return false
	}

	if err != nil || result == nil {
		m.status = StatusError
		m.message = advocates.FetchFailedMessage
		return true
	}

	m.status = StatusReady
	m.message = ""
	m.rows = result.Data
	m.total = result.Total
	m.totalPages = result.TotalPages
	m.params.Page = result.Page
	m.params.PageSize = result.PageSize
	return true
}

func (m *Model) Status() Status                 { return m.status }
func (m *Model) Params() pagination.PageRequest { return m.params }
func (m *Model) Rows() []advocates.Advocate     { return m.rows }
func (m *Model) Total() int                     { return m.total }
func (m *Model) TotalPages() int                { return m.totalPages }

// Message returns the error text shown in the error state.
func (m *Model) Message() string { return m.message }

// Seq returns the sequence number of the most recently issued request.
func (m *Model) Seq() uint64 { return m.seq }

func (m *Model) update(next pagination.PageRequest) (Request, bool) {
	if next.Page == m.params.Page &&
		next.PageSize == m.params.PageSize &&
		next.SearchTerm == m.params.SearchTerm {
		return Request{}, false
	}
	m.params = next
	return m.issue(), true
}

func (m *Model) issue() Request {
	m.seq++
	m.status = StatusLoading
	return Request{Seq: m.seq, Params: m.params}
}
