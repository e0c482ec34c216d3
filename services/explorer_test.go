package services

import (
	"testing"
	"time"

	"Streamsphere/models"
)

func TestPlanIdleDiscover(t *testing.T) {
	e := NewExplorer()
	plan := e.Plan()

	if plan.Mode != BrowseIdleDiscover {
		t.Errorf("expected idle-discover mode, got %s", plan.Mode)
	}
	if plan.Source != SourceCatalog {
		t.Errorf("expected catalog source, got %s", plan.Source)
	}
	if !plan.TrendingVisible {
		t.Error("trending should be visible in idle mode")
	}
	if plan.ClearVisible {
		t.Error("clear control should be hidden in idle mode")
	}
	if plan.SectionTitle != "Discover Movies" {
		t.Errorf("unexpected section title %q", plan.SectionTitle)
	}
	if plan.Discover.Page < 1 || plan.Discover.Page > 10 {
		t.Errorf("discover page %d outside [1,10]", plan.Discover.Page)
	}
}

func TestPlanPinnedPage(t *testing.T) {
	e := NewExplorer()
	e.PinPage(7)

	for i := 0; i < 5; i++ {
		if got := e.Plan().Discover.Page; got != 7 {
			t.Fatalf("expected pinned page 7, got %d", got)
		}
	}
}

func TestPlanSearchWinsOverFilters(t *testing.T) {
	e := NewExplorer()
	e.SetFilters(models.FilterState{
		Genre: "28",
		Year:  "2020",
		Sort:  SortLatest,
		Query: "  inception  ",
	})

	plan := e.Plan()
	if plan.Mode != BrowseSearching {
		t.Fatalf("expected searching mode, got %s", plan.Mode)
	}
	if plan.Query != "inception" {
		t.Errorf("expected trimmed query, got %q", plan.Query)
	}
	if plan.SectionTitle != `Search Results for "inception"` {
		t.Errorf("unexpected section title %q", plan.SectionTitle)
	}
	if plan.TrendingVisible {
		t.Error("trending should be hidden while searching")
	}
	if !plan.ClearVisible {
		t.Error("clear control should be visible while searching")
	}
}

func TestPlanWhitespaceQueryIsIdle(t *testing.T) {
	e := NewExplorer()
	e.SetQuery("   ")

	if got := e.Plan().Mode; got != BrowseIdleDiscover {
		t.Errorf("whitespace-only query should stay idle, got %s", got)
	}
}

func TestPlanFiltered(t *testing.T) {
	tests := []struct {
		name  string
		state models.FilterState
	}{
		{"genre only", models.FilterState{Genre: "35"}},
		{"year only", models.FilterState{Year: "1999"}},
		{"sort only", models.FilterState{Sort: SortHighestRating}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewExplorer()
			e.SetFilters(tt.state)

			plan := e.Plan()
			if plan.Mode != BrowseFiltered {
				t.Fatalf("expected filtered mode, got %s", plan.Mode)
			}
			if plan.Discover.Page != 1 {
				t.Errorf("filtered browse should pin page 1, got %d", plan.Discover.Page)
			}
			if plan.TrendingVisible {
				t.Error("trending should be hidden while filtered")
			}
			if !plan.ClearVisible {
				t.Error("clear control should be visible while filtered")
			}
		})
	}
}

func TestPlanFilteredMapsSortKey(t *testing.T) {
	e := NewExplorer()
	e.SetSort(SortHighestRating)

	plan := e.Plan()
	if plan.Discover.SortBy != "vote_average.desc" {
		t.Errorf("expected vote_average.desc, got %q", plan.Discover.SortBy)
	}
}

func TestPlanSports(t *testing.T) {
	e := NewExplorer()
	e.SetGenre(SportsGenre)
	e.SetSort(SortAlphabetical)

	plan := e.Plan()
	if plan.Mode != BrowseSports {
		t.Fatalf("expected sports mode, got %s", plan.Mode)
	}
	if plan.Source != SourceCreator {
		t.Errorf("expected creator source, got %s", plan.Source)
	}
	if plan.Category != models.CategorySports {
		t.Errorf("expected sports category, got %q", plan.Category)
	}
	if plan.SortKey != SortAlphabetical {
		t.Errorf("sort key should carry through, got %q", plan.SortKey)
	}
}

func TestClearFiltersResetsToIdle(t *testing.T) {
	e := NewExplorer()
	e.SetFilters(models.FilterState{Genre: "28", Year: "2020", Sort: SortLatest, Query: "batman"})
	e.ClearFilters()

	if !e.State().IsZero() {
		t.Error("state should be zero after clearing")
	}
	plan := e.Plan()
	if plan.Mode != BrowseIdleDiscover {
		t.Errorf("expected idle-discover after clearing, got %s", plan.Mode)
	}
	if !plan.TrendingVisible {
		t.Error("trending should return after clearing")
	}
}

func TestMapSortKey(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{SortAlphabetical, "original_title.asc"},
		{SortLatest, "primary_release_date.desc"},
		{SortHighestRating, "vote_average.desc"},
		{"", ""},
		{"bogus", ""},
	}

	for _, tt := range tests {
		if got := MapSortKey(tt.key); got != tt.want {
			t.Errorf("MapSortKey(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestSortTitles(t *testing.T) {
	base := []models.Title{
		{Title: "Zed", ReleaseDate: "2001-01-01", VoteAverage: 5.0},
		{Title: "Alpha", ReleaseDate: "2020-06-15", VoteAverage: 9.1},
		{Title: "Mid", ReleaseDate: "2010-03-03", VoteAverage: 7.2},
	}

	clone := func() []models.Title {
		out := make([]models.Title, len(base))
		copy(out, base)
		return out
	}

	got := SortTitles(clone(), SortAlphabetical)
	if got[0].Title != "Alpha" || got[2].Title != "Zed" {
		t.Errorf("alphabetical sort wrong: %v", got)
	}

	got = SortTitles(clone(), SortLatest)
	if got[0].ReleaseDate != "2020-06-15" {
		t.Errorf("latest sort wrong: %v", got)
	}

	got = SortTitles(clone(), SortHighestRating)
	if got[0].VoteAverage != 9.1 {
		t.Errorf("rating sort wrong: %v", got)
	}

	got = SortTitles(clone(), "unknown")
	if got[0].Title != "Zed" {
		t.Errorf("unknown key should not reorder: %v", got)
	}
}

func TestSortUploads(t *testing.T) {
	uploads := []models.CreatorUpload{
		{Title: "Wrestling Night"},
		{Title: "Boxing Finals"},
	}

	got := SortUploads(uploads, SortAlphabetical)
	if got[0].Title != "Boxing Finals" {
		t.Errorf("alphabetical upload sort wrong: %v", got)
	}

	unsorted := []models.CreatorUpload{{Title: "B"}, {Title: "A"}}
	got = SortUploads(unsorted, SortLatest)
	if got[0].Title != "B" {
		t.Errorf("non-alphabetical key should not reorder uploads: %v", got)
	}
}

func TestYearOptions(t *testing.T) {
	now := time.Date(2026, time.August, 29, 0, 0, 0, 0, time.UTC)
	years := YearOptions(now)

	if len(years) != 2026-1990+1 {
		t.Fatalf("expected %d years, got %d", 2026-1990+1, len(years))
	}
	if years[0] != 2026 {
		t.Errorf("first year should be current, got %d", years[0])
	}
	if years[len(years)-1] != 1990 {
		t.Errorf("last year should be 1990, got %d", years[len(years)-1])
	}
}
