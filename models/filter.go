package models

// FilterState is the active genre/year/sort/query combination governing which
// titles are displayed. Genre holds a genre id as text, or the "Sports"
// sentinel for the creator sports view.
type FilterState struct {
	Genre string `json:"genre"`
	Year  string `json:"year"`
	Sort  string `json:"sort"`
	Query string `json:"query"`
}

// IsZero reports whether no filter and no query is set.
func (f FilterState) IsZero() bool {
	return f.Genre == "" && f.Year == "" && f.Sort == "" && f.Query == ""
}
