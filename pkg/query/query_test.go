package query_test

import (
	"testing"

	"github.com/JaimeStill/advocates/pkg/query"
)

func testProjection() *query.ProjectionMap {
	return query.NewProjectionMap("public", "advocates", "a").
		Project("id", "id").
		Project("first_name", "firstName").
		Project("specialties", "specialties")
}

func ptr(s string) *string { return &s }

func TestProjectionMapTable(t *testing.T) {
	p := testProjection()
	got := p.Table()
	want := "public.advocates a"
	if got != want {
		t.Errorf("Table() = %q, want %q", got, want)
	}
}

func TestProjectionMapColumns(t *testing.T) {
	p := testProjection()
	got := p.Columns()
	want := "a.id, a.first_name, a.specialties"
	if got != want {
		t.Errorf("Columns() = %q, want %q", got, want)
	}
}

func TestProjectionMapColumnLookup(t *testing.T) {
	p := testProjection()

	tests := []struct {
		name     string
		viewName string
		want     string
	}{
		{"mapped field", "id", "a.id"},
		{"mapped camel", "firstName", "a.first_name"},
		{"unmapped passthrough", "unknown", "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Column(tt.viewName); got != tt.want {
				t.Errorf("Column(%q) = %q, want %q", tt.viewName, got, tt.want)
			}
		})
	}
}

func TestProjectionMapHas(t *testing.T) {
	p := testProjection()
	if !p.Has("firstName") {
		t.Error("Has(firstName) = false, want true")
	}
	if p.Has("first_name") {
		t.Error("Has(first_name) = true, want false")
	}
}

func TestProjectionMapCast(t *testing.T) {
	p := testProjection()
	if got := p.Cast("specialties", "text"); got != "a.specialties::text" {
		t.Errorf("Cast() = %q, want %q", got, "a.specialties::text")
	}
}

func TestParseSortFields(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []query.SortField
	}{
		{
			name:  "empty string",
			input: "",
			want:  nil,
		},
		{
			name:  "single ascending",
			input: "lastName",
			want:  []query.SortField{{Field: "lastName", Descending: false}},
		},
		{
			name:  "single descending",
			input: "-yearsOfExperience",
			want:  []query.SortField{{Field: "yearsOfExperience", Descending: true}},
		},
		{
			name:  "multiple mixed",
			input: "lastName,-yearsOfExperience",
			want: []query.SortField{
				{Field: "lastName", Descending: false},
				{Field: "yearsOfExperience", Descending: true},
			},
		},
		{
			name:  "with spaces",
			input: " lastName , -id ",
			want: []query.SortField{
				{Field: "lastName", Descending: false},
				{Field: "id", Descending: true},
			},
		},
		{
			name:  "empty parts skipped",
			input: "lastName,,id",
			want: []query.SortField{
				{Field: "lastName", Descending: false},
				{Field: "id", Descending: false},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := query.ParseSortFields(tt.input)
			if tt.want == nil {
				if got != nil {
					t.Errorf("ParseSortFields(%q) = %v, want nil", tt.input, got)
				}
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ParseSortFields(%q) length = %d, want %d", tt.input, len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ParseSortFields(%q)[%d] = %v, want %v", tt.input, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestEscapeLike(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"card", "card"},
		{"100%", `100\%`},
		{"a_b", `a\_b`},
		{`back\slash`, `back\\slash`},
	}

	for _, tt := range tests {
		if got := query.EscapeLike(tt.input); got != tt.want {
			t.Errorf("EscapeLike(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestBuilderBuildCount(t *testing.T) {
	p := testProjection()
	b := query.NewBuilder(p)
	sql, args := b.BuildCount()

	wantSQL := "SELECT COUNT(*) FROM public.advocates a"
	if sql != wantSQL {
		t.Errorf("BuildCount() sql = %q, want %q", sql, wantSQL)
	}
	if len(args) != 0 {
		t.Errorf("BuildCount() args = %v, want empty", args)
	}
}

func TestBuilderBuildSlice(t *testing.T) {
	p := testProjection()
	b := query.NewBuilder(p)
	sql, _ := b.BuildSlice(0, 25)

	wantSQL := "SELECT a.id, a.first_name, a.specialties FROM public.advocates a LIMIT 25 OFFSET 0"
	if sql != wantSQL {
		t.Errorf("BuildSlice() sql = %q, want %q", sql, wantSQL)
	}
}

func TestBuilderWhereSearch(t *testing.T) {
	p := testProjection()
	b := query.NewBuilder(p)
	b.WhereSearch(ptr("card"), "firstName", p.Cast("specialties", "text"))
	sql, args := b.BuildCount()

	wantSQL := "SELECT COUNT(*) FROM public.advocates a WHERE (a.first_name ILIKE $1 OR a.specialties::text ILIKE $2)"
	if sql != wantSQL {
		t.Errorf("sql = %q, want %q", sql, wantSQL)
	}
	if len(args) != 2 || args[0] != "%card%" || args[1] != "%card%" {
		t.Errorf("args = %v, want [%%card%% %%card%%]", args)
	}
}

func TestBuilderWhereSearchEscapesWildcards(t *testing.T) {
	p := testProjection()
	b := query.NewBuilder(p)
	b.WhereSearch(ptr("50%_"), "firstName")
	_, args := b.BuildCount()

	if len(args) != 1 || args[0] != `%50\%\_%` {
		t.Errorf("args = %v, want [%%50\\%%\\_%%]", args)
	}
}

func TestBuilderWhereSearchSkipped(t *testing.T) {
	tests := []struct {
		name   string
		search *string
		fields []string
	}{
		{"nil search", nil, []string{"firstName"}},
		{"empty search", ptr(""), []string{"firstName"}},
		{"no fields", ptr("card"), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := query.NewBuilder(testProjection())
			b.WhereSearch(tt.search, tt.fields...)
			sql, args := b.BuildCount()

			if sql != "SELECT COUNT(*) FROM public.advocates a" {
				t.Errorf("sql = %q, want no WHERE clause", sql)
			}
			if len(args) != 0 {
				t.Errorf("args = %v, want empty", args)
			}
		})
	}
}

func TestBuilderSharedConditions(t *testing.T) {
	p := testProjection()
	b := query.NewBuilder(p, query.SortField{Field: "id"})
	b.WhereSearch(ptr("ann"), "firstName")

	countSQL, countArgs := b.BuildCount()
	pageSQL, pageArgs := b.BuildSlice(20, 10)

	wantCount := "SELECT COUNT(*) FROM public.advocates a WHERE (a.first_name ILIKE $1)"
	wantPage := "SELECT a.id, a.first_name, a.specialties FROM public.advocates a WHERE (a.first_name ILIKE $1) ORDER BY a.id ASC LIMIT 10 OFFSET 20"

	if countSQL != wantCount {
		t.Errorf("count sql = %q, want %q", countSQL, wantCount)
	}
	if pageSQL != wantPage {
		t.Errorf("page sql = %q, want %q", pageSQL, wantPage)
	}
	if len(countArgs) != 1 || len(pageArgs) != 1 || countArgs[0] != pageArgs[0] {
		t.Errorf("args differ: count %v, page %v", countArgs, pageArgs)
	}
}

func TestBuilderOrderByFields(t *testing.T) {
	p := testProjection()
	b := query.NewBuilder(p, query.SortField{Field: "id", Descending: false})
	b.OrderByFields([]query.SortField{
		{Field: "firstName", Descending: true},
		{Field: "id", Descending: false},
	})
	sql, _ := b.BuildSlice(0, 10)

	wantSQL := "SELECT a.id, a.first_name, a.specialties FROM public.advocates a ORDER BY a.first_name DESC, a.id ASC LIMIT 10 OFFSET 0"
	if sql != wantSQL {
		t.Errorf("sql = %q, want %q", sql, wantSQL)
	}
}

func TestBuilderOrderByUnknownFieldsDropped(t *testing.T) {
	p := testProjection()
	b := query.NewBuilder(p, query.SortField{Field: "id"})
	b.OrderByFields([]query.SortField{
		{Field: "1; DROP TABLE advocates"},
	})
	sql, _ := b.BuildSlice(0, 10)

	wantSQL := "SELECT a.id, a.first_name, a.specialties FROM public.advocates a ORDER BY a.id ASC LIMIT 10 OFFSET 0"
	if sql != wantSQL {
		t.Errorf("sql = %q, want %q", sql, wantSQL)
	}
}

func TestBuilderOrderByKeepsDefaultTiebreak(t *testing.T) {
	tests := []struct {
		name string
		sort string
		want string
	}{
		{"user field then id", "firstName", "ORDER BY a.first_name ASC, a.id ASC"},
		{"descending user field", "-firstName", "ORDER BY a.first_name DESC, a.id ASC"},
		{"default already named", "-id,firstName", "ORDER BY a.id DESC, a.first_name ASC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := query.NewBuilder(testProjection(), query.SortField{Field: "id"})
			b.OrderByFields(query.ParseSortFields(tt.sort))
			sql, _ := b.BuildSlice(0, 10)

			want := "SELECT a.id, a.first_name, a.specialties FROM public.advocates a " + tt.want + " LIMIT 10 OFFSET 0"
			if sql != want {
				t.Errorf("sql = %q, want %q", sql, want)
			}
		})
	}
}
