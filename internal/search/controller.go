package search

import (
	"github.com/ncarv/balcao/internal/empresas"
)

// Phase is the fetch lifecycle state of the current search session.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseSuccess
	PhaseFailure
)

// PageSizes is the fixed set of selectable page sizes.
var PageSizes = []int{10, 20, 50}

// DefaultPageSize is used when no valid size is configured.
const DefaultPageSize = 10

// Request describes one fetch the caller must dispatch. Seq increases
// monotonically per dispatched request; Resolve uses it to discard
// responses that raced with a newer request, so the last request dispatched
// wins regardless of completion order.
type Request struct {
	Seq   uint64
	Query empresas.SearchQuery
}

// Controller owns the filter criteria, the pagination state and the fetch
// lifecycle. It performs no I/O itself: mutating operations hand back a
// Request when a fetch must happen, and the caller reports the outcome via
// Resolve. Filter edits never produce a Request — criteria only take effect
// on Submit.
type Controller struct {
	filters empresas.Filters
	page    int
	size    int

	phase     Phase
	lastError string

	results []empresas.Empresa
	total   int

	seq uint64
}

// New builds a Controller with the given page size. Sizes outside PageSizes
// fall back to DefaultPageSize.
func New(size int) *Controller {
	if !ValidPageSize(size) {
		size = DefaultPageSize
	}
	return &Controller{size: size}
}

// ValidPageSize reports whether size is one of the selectable page sizes.
func ValidPageSize(size int) bool {
	for _, s := range PageSizes {
		if s == size {
			return true
		}
	}
	return false
}

// SetFilter replaces one criterion. It never triggers a fetch.
func (c *Controller) SetFilter(name, value string) bool {
	return c.filters.Set(name, value)
}

// ResetFilters clears every criterion in one step. Like SetFilter, it does
// not trigger a fetch.
func (c *Controller) ResetFilters() {
	c.filters.Reset()
}

// Filters returns a snapshot of the current criteria. The copy keeps
// queries insulated from edits made while a fetch is in flight.
func (c *Controller) Filters() empresas.Filters {
	return c.filters
}

// Submit starts a new search: the page index is forced back to 0 and a
// fetch Request for the current criteria is returned.
func (c *Controller) Submit() Request {
	c.page = 0
	return c.dispatch()
}

// SetPage moves to the given 0-based page and returns the fetch Request for
// it. Out-of-range and no-op moves return false.
func (c *Controller) SetPage(page int) (Request, bool) {
	if page < 0 || page == c.page {
		return Request{}, false
	}
	if last := c.lastPage(); page > last {
		return Request{}, false
	}
	c.page = page
	return c.dispatch(), true
}

// NextPage advances one page when there is one.
func (c *Controller) NextPage() (Request, bool) {
	return c.SetPage(c.page + 1)
}

// PrevPage goes back one page when there is one.
func (c *Controller) PrevPage() (Request, bool) {
	return c.SetPage(c.page - 1)
}

// SetPageSize switches the page size, resets the page index to 0 and
// returns the fetch Request for the refreshed first page. Invalid sizes and
// no-op changes return false.
func (c *Controller) SetPageSize(size int) (Request, bool) {
	if !ValidPageSize(size) || size == c.size {
		return Request{}, false
	}
	c.size = size
	c.page = 0
	return c.dispatch(), true
}

// CyclePageSize switches to the next size in PageSizes.
func (c *Controller) CyclePageSize() (Request, bool) {
	for i, s := range PageSizes {
		if s == c.size {
			return c.SetPageSize(PageSizes[(i+1)%len(PageSizes)])
		}
	}
	return c.SetPageSize(DefaultPageSize)
}

func (c *Controller) dispatch() Request {
	c.seq++
	c.phase = PhaseLoading
	return Request{
		Seq: c.seq,
		Query: empresas.SearchQuery{
			Filters: c.filters,
			Page:    c.page,
			Size:    c.size,
		},
	}
}

// Resolve reports the outcome of a dispatched Request. Responses for
// anything but the latest dispatched request are stale and ignored. On
// failure the previous results and total stay visible; only the error
// message and phase change.
func (c *Controller) Resolve(seq uint64, result empresas.SearchResult, err error) bool {
	if seq != c.seq {
		return false
	}
	if err != nil {
		c.phase = PhaseFailure
		c.lastError = err.Error()
		return true
	}
	c.phase = PhaseSuccess
	c.lastError = ""
	c.results = result.Empresas
	c.total = result.Total
	return true
}

// ClearError dismisses the failure banner, keeping whatever results were on
// screen.
func (c *Controller) ClearError() {
	if c.phase != PhaseFailure {
		return
	}
	c.lastError = ""
	if c.results != nil || c.total > 0 {
		c.phase = PhaseSuccess
	} else {
		c.phase = PhaseIdle
	}
}

// Phase returns the current lifecycle state.
func (c *Controller) Phase() Phase {
	return c.phase
}

// LastError returns the failure message for the banner, empty outside
// PhaseFailure.
func (c *Controller) LastError() string {
	return c.lastError
}

// Results returns the current page of records. Callers must not mutate the
// returned slice.
func (c *Controller) Results() []empresas.Empresa {
	return c.results
}

// Total returns the match count from the last successful fetch, 0 before
// the first one.
func (c *Controller) Total() int {
	return c.total
}

// Page returns the 0-based page index.
func (c *Controller) Page() int {
	return c.page
}

// PageSize returns the current page size.
func (c *Controller) PageSize() int {
	return c.size
}

// PageCount returns how many pages the current total spans, at least 1.
func (c *Controller) PageCount() int {
	if c.total <= 0 {
		return 1
	}
	return (c.total + c.size - 1) / c.size
}

func (c *Controller) lastPage() int {
	return c.PageCount() - 1
}

// HasNext reports whether a later page exists.
func (c *Controller) HasNext() bool {
	return c.page < c.lastPage()
}

// HasPrev reports whether an earlier page exists.
func (c *Controller) HasPrev() bool {
	return c.page > 0
}
