package services

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"
	"time"

	"Streamsphere/models"
)

type BrowseMode string

const (
	BrowseIdleDiscover BrowseMode = "idle-discover"
	BrowseFiltered     BrowseMode = "filtered"
	BrowseSearching    BrowseMode = "searching"
	BrowseSports       BrowseMode = "sports"
)

// SportsGenre is the sentinel genre value that switches browsing to the
// creator sports catalog instead of the metadata API.
const SportsGenre = "Sports"

const (
	SourceCatalog = "catalog"
	SourceCreator = "creator"
)

// Sort keys recognized by the explorer. Anything else passes through
// unsorted.
const (
	SortAlphabetical  = "Alphabetical"
	SortLatest        = "Latest"
	SortHighestRating = "Highest Rating"
)

const (
	firstFilterYear = 1990
	maxDiscoverPage = 10
)

// BrowsePlan is the pure outcome of the filter/search state machine: which
// source to hit with which parameters, and what the surrounding sections
// should show.
type BrowsePlan struct {
	Mode            BrowseMode
	Source          string
	Query           string         // trimmed search text, searching mode only
	Discover        DiscoverParams // catalog source, filtered/idle modes
	Category        string         // creator source
	SortKey         string
	SectionTitle    string
	TrendingVisible bool
	ClearVisible    bool
}

// Explorer holds the current filter/search selection. At most one of
// filtered browse, search, and the sports view is active at a time; Plan
// derives which from the state alone.
type Explorer struct {
	state      models.FilterState
	pinnedPage int
}

func NewExplorer() *Explorer {
	return &Explorer{}
}

func (e *Explorer) State() models.FilterState {
	return e.state
}

func (e *Explorer) SetQuery(q string) {
	e.state.Query = q
}

func (e *Explorer) SetGenre(genre string) {
	e.state.Genre = genre
}

func (e *Explorer) SetYear(year string) {
	e.state.Year = year
}

func (e *Explorer) SetSort(sortKey string) {
	e.state.Sort = sortKey
}

// SetFilters applies a whole selection at once.
func (e *Explorer) SetFilters(f models.FilterState) {
	e.state = f
}

// ClearFilters resets every control to its default and returns browsing to
// idle discovery.
func (e *Explorer) ClearFilters() {
	e.state = models.FilterState{}
}

// PinPage fixes the idle-discover page instead of randomizing it. Zero
// restores random selection.
func (e *Explorer) PinPage(page int) {
	e.pinnedPage = page
}

// Plan decides the browse request for the current state.
func (e *Explorer) Plan() BrowsePlan {
	query := strings.TrimSpace(e.state.Query)

	if query != "" {
		return BrowsePlan{
			Mode:            BrowseSearching,
			Source:          SourceCatalog,
			Query:           query,
			SectionTitle:    fmt.Sprintf("Search Results for %q", query),
			TrendingVisible: false,
			ClearVisible:    true,
		}
	}

	if e.state.Genre == SportsGenre {
		return BrowsePlan{
			Mode:            BrowseSports,
			Source:          SourceCreator,
			Category:        models.CategorySports,
			SortKey:         e.state.Sort,
			SectionTitle:    "Sports",
			TrendingVisible: false,
			ClearVisible:    true,
		}
	}

	if e.state.Genre != "" || e.state.Year != "" || e.state.Sort != "" {
		return BrowsePlan{
			Mode:   BrowseFiltered,
			Source: SourceCatalog,
			Discover: DiscoverParams{
				Page:   1,
				Genre:  e.state.Genre,
				Year:   e.state.Year,
				SortBy: MapSortKey(e.state.Sort),
			},
			SortKey:         e.state.Sort,
			SectionTitle:    "Filtered Movies",
			TrendingVisible: false,
			ClearVisible:    true,
		}
	}

	return BrowsePlan{
		Mode:            BrowseIdleDiscover,
		Source:          SourceCatalog,
		Discover:        DiscoverParams{Page: e.discoverPage()},
		SectionTitle:    "Discover Movies",
		TrendingVisible: true,
		ClearVisible:    false,
	}
}

func (e *Explorer) discoverPage() int {
	if e.pinnedPage > 0 {
		return e.pinnedPage
	}
	return rand.IntN(maxDiscoverPage) + 1
}

// MapSortKey translates an explorer sort key to the discovery endpoint's
// sort_by parameter. Unrecognized keys map to empty (endpoint default).
func MapSortKey(key string) string {
	switch key {
	case SortAlphabetical:
		return "original_title.asc"
	case SortLatest:
		return "primary_release_date.desc"
	case SortHighestRating:
		return "vote_average.desc"
	}
	return ""
}

// SortTitles orders titles by the given sort key, in place. Unrecognized or
// empty keys are a pass-through.
func SortTitles(titles []models.Title, key string) []models.Title {
	switch key {
	case SortAlphabetical:
		sort.SliceStable(titles, func(i, j int) bool {
			return titles[i].Title < titles[j].Title
		})
	case SortLatest:
		sort.SliceStable(titles, func(i, j int) bool {
			return titles[i].ReleaseDate > titles[j].ReleaseDate
		})
	case SortHighestRating:
		sort.SliceStable(titles, func(i, j int) bool {
			return titles[i].VoteAverage > titles[j].VoteAverage
		})
	}
	return titles
}

// SortUploads orders creator uploads for the sports view. Only alphabetical
// ordering is offered there.
func SortUploads(uploads []models.CreatorUpload, key string) []models.CreatorUpload {
	if key == SortAlphabetical {
		sort.SliceStable(uploads, func(i, j int) bool {
			return uploads[i].Title < uploads[j].Title
		})
	}
	return uploads
}

// YearOptions lists the selectable filter years, current year down to 1990.
func YearOptions(now time.Time) []int {
	current := now.Year()
	years := make([]int, 0, current-firstFilterYear+1)
	for y := current; y >= firstFilterYear; y-- {
		years = append(years, y)
	}
	return years
}
