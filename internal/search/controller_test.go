package search

import (
	"errors"
	"testing"

	"github.com/ncarv/balcao/internal/empresas"
)

func TestNew_NormalizesPageSize(t *testing.T) {
	if got := New(25).PageSize(); got != DefaultPageSize {
		t.Fatalf("PageSize = %d, want %d for invalid size", got, DefaultPageSize)
	}
	if got := New(50).PageSize(); got != 50 {
		t.Fatalf("PageSize = %d, want 50", got)
	}
}

func TestSetFilter_NeverDispatches(t *testing.T) {
	c := New(10)

	if !c.SetFilter(empresas.FieldNome, "acme") {
		t.Fatal("SetFilter returned false for a known field")
	}
	if c.SetFilter("bogus", "x") {
		t.Fatal("SetFilter returned true for an unknown field")
	}
	if c.Phase() != PhaseIdle {
		t.Fatalf("Phase = %v, want PhaseIdle after filter edits", c.Phase())
	}
}

func TestSubmit_ResetsPageAndEntersLoading(t *testing.T) {
	c := New(10)
	c.SetFilter(empresas.FieldUF, "SP")

	// Land on page 3 first.
	c.Submit()
	c.Resolve(1, empresas.SearchResult{Total: 100}, nil)
	if _, ok := c.SetPage(3); !ok {
		t.Fatal("SetPage(3) rejected with total=100 size=10")
	}
	c.Resolve(2, empresas.SearchResult{Total: 100}, nil)

	req := c.Submit()
	if c.Page() != 0 {
		t.Fatalf("Page = %d after Submit, want 0", c.Page())
	}
	if req.Query.Page != 0 {
		t.Fatalf("Request page = %d, want 0", req.Query.Page)
	}
	if req.Query.Filters.UF != "SP" {
		t.Fatalf("Request filters = %#v, want UF snapshot", req.Query.Filters)
	}
	if c.Phase() != PhaseLoading {
		t.Fatalf("Phase = %v, want PhaseLoading", c.Phase())
	}
}

func TestRequestSnapshotInsulatedFromLaterEdits(t *testing.T) {
	c := New(10)
	c.SetFilter(empresas.FieldNome, "acme")
	req := c.Submit()

	c.SetFilter(empresas.FieldNome, "beta")
	if req.Query.Filters.Nome != "acme" {
		t.Fatalf("dispatched snapshot mutated: %q", req.Query.Filters.Nome)
	}
}

func TestSetPageSize_ResetsPageAndDispatchesOnce(t *testing.T) {
	c := New(10)
	c.Submit()
	c.Resolve(1, empresas.SearchResult{Total: 200}, nil)
	c.SetPage(4)
	c.Resolve(2, empresas.SearchResult{Total: 200}, nil)

	req, ok := c.SetPageSize(50)
	if !ok {
		t.Fatal("SetPageSize(50) = false, want a dispatched request")
	}
	if c.Page() != 0 || req.Query.Page != 0 {
		t.Fatalf("page = %d / request page = %d, want 0 after size change", c.Page(), req.Query.Page)
	}
	if req.Query.Size != 50 {
		t.Fatalf("request size = %d, want 50", req.Query.Size)
	}

	if _, ok := c.SetPageSize(50); ok {
		t.Fatal("SetPageSize(same) dispatched, want no-op")
	}
	if _, ok := c.SetPageSize(33); ok {
		t.Fatal("SetPageSize(33) dispatched, want rejection")
	}
}

func TestSetPage_BoundsAndNoOps(t *testing.T) {
	c := New(10)
	c.Submit()
	c.Resolve(1, empresas.SearchResult{Total: 25}, nil)

	if c.PageCount() != 3 {
		t.Fatalf("PageCount = %d, want 3 for total 25 size 10", c.PageCount())
	}
	if _, ok := c.SetPage(-1); ok {
		t.Fatal("SetPage(-1) accepted")
	}
	if _, ok := c.SetPage(3); ok {
		t.Fatal("SetPage(3) accepted beyond last page")
	}
	if _, ok := c.SetPage(0); ok {
		t.Fatal("SetPage(current) dispatched, want no-op")
	}

	req, ok := c.NextPage()
	if !ok || req.Query.Page != 1 {
		t.Fatalf("NextPage = (%#v, %v), want page 1 request", req, ok)
	}
	if !c.HasPrev() {
		t.Fatal("HasPrev = false on page 1")
	}
}

func TestResolve_FailureKeepsStaleResults(t *testing.T) {
	c := New(10)
	c.Submit()
	page := []empresas.Empresa{{ID: "1", RazaoSocial: "ACME"}}
	c.Resolve(1, empresas.SearchResult{Empresas: page, Total: 1}, nil)

	c.Submit()
	if !c.Resolve(2, empresas.SearchResult{}, errors.New("execute request: connection refused")) {
		t.Fatal("Resolve returned false for current seq")
	}
	if c.Phase() != PhaseFailure {
		t.Fatalf("Phase = %v, want PhaseFailure", c.Phase())
	}
	if c.LastError() == "" {
		t.Fatal("LastError empty after failure")
	}
	if len(c.Results()) != 1 || c.Total() != 1 {
		t.Fatalf("stale data dropped: results=%d total=%d", len(c.Results()), c.Total())
	}

	c.ClearError()
	if c.Phase() != PhaseSuccess || c.LastError() != "" {
		t.Fatalf("after ClearError: phase=%v err=%q, want success with no error", c.Phase(), c.LastError())
	}
}

func TestResolve_StaleResponseDiscarded(t *testing.T) {
	c := New(10)
	first := c.Submit()
	second := c.Submit()

	// The second-dispatched request resolves first.
	if !c.Resolve(second.Seq, empresas.SearchResult{Empresas: []empresas.Empresa{{ID: "new"}}, Total: 5}, nil) {
		t.Fatal("Resolve rejected the latest request")
	}
	// The older response arrives late and must be ignored.
	if c.Resolve(first.Seq, empresas.SearchResult{Empresas: []empresas.Empresa{{ID: "old"}}, Total: 99}, nil) {
		t.Fatal("Resolve accepted a stale response")
	}
	if c.Total() != 5 || c.Results()[0].ID != "new" {
		t.Fatalf("stale response overwrote state: total=%d", c.Total())
	}
}

func TestResolve_EmptySuccessfulPage(t *testing.T) {
	c := New(10)
	c.Submit()
	c.Resolve(1, empresas.SearchResult{}, nil)

	if c.Phase() != PhaseSuccess {
		t.Fatalf("Phase = %v, want PhaseSuccess for an empty page", c.Phase())
	}
	if c.Total() != 0 || len(c.Results()) != 0 {
		t.Fatalf("want empty state, got total=%d results=%d", c.Total(), len(c.Results()))
	}
	if c.PageCount() != 1 {
		t.Fatalf("PageCount = %d, want 1 with zero total", c.PageCount())
	}
}

func TestResetFilters_ClearsEverything(t *testing.T) {
	c := New(10)
	for _, name := range empresas.FieldNames {
		c.SetFilter(name, "x")
	}
	c.ResetFilters()
	if !c.Filters().IsZero() {
		t.Fatalf("filters after reset = %#v, want zero", c.Filters())
	}
	if c.Phase() != PhaseIdle {
		t.Fatalf("Phase = %v, want PhaseIdle (reset must not fetch)", c.Phase())
	}
}
