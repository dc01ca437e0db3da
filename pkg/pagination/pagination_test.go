package pagination_test

import (
	"math"
	"net/url"
	"strings"
	"testing"

	"github.com/JaimeStill/advocates/pkg/pagination"
	"github.com/JaimeStill/advocates/pkg/query"
)

func defaultConfig() pagination.Config {
	return pagination.Config{DefaultPageSize: 10, MaxPageSize: 100}
}

func TestConfigFinalizeDefaults(t *testing.T) {
	cfg := pagination.Config{}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	if cfg.DefaultPageSize != 10 {
		t.Errorf("DefaultPageSize = %d, want 10", cfg.DefaultPageSize)
	}
	if cfg.MaxPageSize != 100 {
		t.Errorf("MaxPageSize = %d, want 100", cfg.MaxPageSize)
	}
}

func TestConfigFinalizeEnvOverrides(t *testing.T) {
	t.Setenv("TEST_PAGE_SIZE", "50")
	t.Setenv("TEST_MAX_PAGE", "200")

	env := &pagination.ConfigEnv{
		DefaultPageSize: "TEST_PAGE_SIZE",
		MaxPageSize:     "TEST_MAX_PAGE",
	}

	cfg := pagination.Config{}
	if err := cfg.Finalize(env); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	if cfg.DefaultPageSize != 50 {
		t.Errorf("DefaultPageSize = %d, want 50", cfg.DefaultPageSize)
	}
	if cfg.MaxPageSize != 200 {
		t.Errorf("MaxPageSize = %d, want 200", cfg.MaxPageSize)
	}
}

func TestConfigFinalizeValidation(t *testing.T) {
	cfg := pagination.Config{DefaultPageSize: 200, MaxPageSize: 100}
	err := cfg.Finalize(nil)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "default_page_size cannot exceed max_page_size") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestConfigMerge(t *testing.T) {
	base := pagination.Config{DefaultPageSize: 10, MaxPageSize: 100}
	overlay := pagination.Config{DefaultPageSize: 50}
	base.Merge(&overlay)

	if base.DefaultPageSize != 50 {
		t.Errorf("DefaultPageSize = %d, want 50", base.DefaultPageSize)
	}
	if base.MaxPageSize != 100 {
		t.Errorf("MaxPageSize = %d, want 100 (unchanged)", base.MaxPageSize)
	}
}

func TestPageRequestNormalize(t *testing.T) {
	cfg := defaultConfig()

	tests := []struct {
		name         string
		req          pagination.PageRequest
		wantPage     int
		wantPageSize int
	}{
		{
			name:         "zero values get defaults",
			req:          pagination.PageRequest{},
			wantPage:     1,
			wantPageSize: 10,
		},
		{
			name:         "negative page corrected",
			req:          pagination.PageRequest{Page: -1, PageSize: 10},
			wantPage:     1,
			wantPageSize: 10,
		},
		{
			name:         "page size clamped to max",
			req:          pagination.PageRequest{Page: 1, PageSize: 500},
			wantPage:     1,
			wantPageSize: 100,
		},
		{
			name:         "page capped so offset fits in int",
			req:          pagination.PageRequest{Page: math.MaxInt, PageSize: 10},
			wantPage:     math.MaxInt/10 + 1,
			wantPageSize: 10,
		},
		{
			name:         "valid values preserved",
			req:          pagination.PageRequest{Page: 3, PageSize: 25},
			wantPage:     3,
			wantPageSize: 25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.req.Normalize(cfg)
			if tt.req.Page != tt.wantPage {
				t.Errorf("Page = %d, want %d", tt.req.Page, tt.wantPage)
			}
			if tt.req.PageSize != tt.wantPageSize {
				t.Errorf("PageSize = %d, want %d", tt.req.PageSize, tt.wantPageSize)
			}
		})
	}
}

func TestPageRequestOffset(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		pageSize   int
		wantOffset int
	}{
		{"page 1", 1, 10, 0},
		{"page 2", 2, 10, 10},
		{"page 3 size 20", 3, 20, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := pagination.PageRequest{Page: tt.page, PageSize: tt.pageSize}
			if got := req.Offset(); got != tt.wantOffset {
				t.Errorf("Offset() = %d, want %d", got, tt.wantOffset)
			}
		})
	}
}

func TestPageRequestOffsetLargePage(t *testing.T) {
	values := url.Values{"page": {"9223372036854775807"}, "pageSize": {"10"}}
	req := pagination.PageRequestFromQuery(values, defaultConfig())

	offset := req.Offset()
	if offset < 0 {
		t.Fatalf("Offset() = %d, want non-negative", offset)
	}
	if offset != (req.Page-1)*req.PageSize {
		t.Errorf("Offset() = %d, want (page-1)*pageSize", offset)
	}
}

func TestPageRequestFromQuery(t *testing.T) {
	cfg := defaultConfig()

	t.Run("all params present", func(t *testing.T) {
		values := url.Values{
			"page":       {"2"},
			"pageSize":   {"15"},
			"searchTerm": {"card"},
			"sort":       {"lastName,-yearsOfExperience"},
		}

		req := pagination.PageRequestFromQuery(values, cfg)

		if req.Page != 2 {
			t.Errorf("Page = %d, want 2", req.Page)
		}
		if req.PageSize != 15 {
			t.Errorf("PageSize = %d, want 15", req.PageSize)
		}
		if req.SearchTerm != "card" {
			t.Errorf("SearchTerm = %q, want card", req.SearchTerm)
		}
		if len(req.Sort) != 2 {
			t.Fatalf("Sort length = %d, want 2", len(req.Sort))
		}
		if req.Sort[1] != (query.SortField{Field: "yearsOfExperience", Descending: true}) {
			t.Errorf("Sort[1] = %v, want {yearsOfExperience true}", req.Sort[1])
		}
	})

	t.Run("empty params get defaults", func(t *testing.T) {
		req := pagination.PageRequestFromQuery(url.Values{}, cfg)

		if req.Page != 1 {
			t.Errorf("Page = %d, want 1", req.Page)
		}
		if req.PageSize != 10 {
			t.Errorf("PageSize = %d, want 10", req.PageSize)
		}
		if req.SearchTerm != "" {
			t.Errorf("SearchTerm = %q, want empty", req.SearchTerm)
		}
	})

	t.Run("malformed numbers coerce to defaults", func(t *testing.T) {
		values := url.Values{
			"page":     {"abc"},
			"pageSize": {"1.5"},
		}
		req := pagination.PageRequestFromQuery(values, cfg)

		if req.Page != 1 {
			t.Errorf("Page = %d, want 1", req.Page)
		}
		if req.PageSize != 10 {
			t.Errorf("PageSize = %d, want 10", req.PageSize)
		}
	})

	t.Run("oversized page size clamped", func(t *testing.T) {
		req := pagination.PageRequestFromQuery(url.Values{"pageSize": {"1000"}}, cfg)
		if req.PageSize != 100 {
			t.Errorf("PageSize = %d, want 100", req.PageSize)
		}
	})
}

func TestPageRequestValuesRoundTrip(t *testing.T) {
	req := pagination.PageRequest{
		Page:       3,
		PageSize:   20,
		SearchTerm: "card",
		Sort:       []query.SortField{{Field: "lastName"}, {Field: "id", Descending: true}},
	}

	values := req.Values()
	if got := values.Get("sort"); got != "lastName,-id" {
		t.Errorf("sort = %q, want lastName,-id", got)
	}

	parsed := pagination.PageRequestFromQuery(values, defaultConfig())
	if parsed.Page != 3 || parsed.PageSize != 20 || parsed.SearchTerm != "card" {
		t.Errorf("parsed = %+v, want page 3 size 20 term card", parsed)
	}
}

func TestPageRequestValuesOmitsEmptySearch(t *testing.T) {
	req := pagination.PageRequest{Page: 1, PageSize: 10}
	values := req.Values()

	if values.Has("searchTerm") {
		t.Error("searchTerm should be omitted when empty")
	}
	if values.Has("sort") {
		t.Error("sort should be omitted when empty")
	}
}

func TestNewPageResult(t *testing.T) {
	tests := []struct {
		name           string
		total          int
		page           int
		pageSize       int
		wantTotalPages int
	}{
		{"exact division", 100, 1, 20, 5},
		{"remainder", 25, 2, 10, 3},
		{"single page", 5, 1, 20, 1},
		{"empty result", 0, 1, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := pagination.NewPageResult([]string{"a"}, tt.total, tt.page, tt.pageSize)
			if result.TotalPages != tt.wantTotalPages {
				t.Errorf("TotalPages = %d, want %d", result.TotalPages, tt.wantTotalPages)
			}
			if result.Total != tt.total {
				t.Errorf("Total = %d, want %d", result.Total, tt.total)
			}
			if result.Page != tt.page {
				t.Errorf("Page = %d, want %d", result.Page, tt.page)
			}
			if result.PageSize != tt.pageSize {
				t.Errorf("PageSize = %d, want %d", result.PageSize, tt.pageSize)
			}
		})
	}
}

func TestNewPageResultNilDataBecomesEmpty(t *testing.T) {
	result := pagination.NewPageResult[string](nil, 0, 1, 10)
	if result.Data == nil {
		t.Error("Data should be empty slice, not nil")
	}
	if len(result.Data) != 0 {
		t.Errorf("Data length = %d, want 0", len(result.Data))
	}
}
