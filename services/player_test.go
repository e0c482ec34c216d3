package services

import (
	"testing"

	"Streamsphere/models"
)

func TestExtractEmbedKey(t *testing.T) {
	tests := []struct {
		url     string
		wantKey string
		wantOK  bool
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"https://youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"https://www.youtube.com/watch?v=abc123_-XYZ&t=30s", "abc123_-XYZ", true},
		{"https://vimeo.com/12345678", "", false},
		{"/uploads/match.mp4", "", false},
		{"", "", false},
		{"https://youtu.be/abc", "", false}, // too short to be an id
	}

	for _, tt := range tests {
		key, ok := ExtractEmbedKey(tt.url)
		if ok != tt.wantOK || key != tt.wantKey {
			t.Errorf("ExtractEmbedKey(%q) = (%q, %v), want (%q, %v)",
				tt.url, key, ok, tt.wantKey, tt.wantOK)
		}
	}
}

func TestEmbedURL(t *testing.T) {
	got := EmbedURL("dQw4w9WgXcQ")
	want := "https://www.youtube.com/embed/dQw4w9WgXcQ?autoplay=1&rel=0"
	if got != want {
		t.Errorf("EmbedURL = %q, want %q", got, want)
	}
}

func TestPickTrailerKey(t *testing.T) {
	tests := []struct {
		name    string
		videos  []models.Video
		wantKey string
		wantOK  bool
	}{
		{
			"trailer preferred over teaser",
			[]models.Video{
				{Key: "teaser1", Site: "YouTube", Type: "Teaser"},
				{Key: "trailer1", Site: "YouTube", Type: "Trailer"},
			},
			"trailer1", true,
		},
		{
			"falls back to any youtube video",
			[]models.Video{
				{Key: "clip1", Site: "YouTube", Type: "Clip"},
			},
			"clip1", true,
		},
		{
			"non-youtube entries are skipped",
			[]models.Video{
				{Key: "v1", Site: "Vimeo", Type: "Trailer"},
			},
			"", false,
		},
		{"empty list", nil, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, ok := pickTrailerKey(tt.videos)
			if ok != tt.wantOK || key != tt.wantKey {
				t.Errorf("got (%q, %v), want (%q, %v)", key, ok, tt.wantKey, tt.wantOK)
			}
		})
	}
}

func TestResolveUpload(t *testing.T) {
	r := NewResolver(nil, true)

	tests := []struct {
		name       string
		payload    models.PlayerPayload
		wantMode   models.PlayerMode
		wantSource string
		wantKey    string
	}{
		{
			"file upload plays natively",
			models.PlayerPayload{Title: "Match", SourceType: models.SourceFile, VideoPath: "/uploads/match.mp4"},
			models.PlayerNativeFile, "/uploads/match.mp4", "",
		},
		{
			"plain url plays natively",
			models.PlayerPayload{Title: "Stream", SourceType: models.SourceURL, VideoURL: "https://cdn.example.com/v.m3u8"},
			models.PlayerNativeFile, "https://cdn.example.com/v.m3u8", "",
		},
		{
			"hosted-video url switches to embed",
			models.PlayerPayload{Title: "Clip", SourceType: models.SourceURL, VideoURL: "https://youtu.be/dQw4w9WgXcQ"},
			models.PlayerEmbedded, "", "dQw4w9WgXcQ",
		},
		{
			"hosted-video path declared as file also switches",
			models.PlayerPayload{Title: "Clip", SourceType: models.SourceFile, VideoPath: "https://www.youtube.com/watch?v=dQw4w9WgXcQ"},
			models.PlayerEmbedded, "", "dQw4w9WgXcQ",
		},
		{
			"empty candidate is unavailable",
			models.PlayerPayload{Title: "Broken", SourceType: models.SourceURL},
			models.PlayerUnavailable, "", "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := r.ResolveUpload(&tt.payload)
			if state.Mode != tt.wantMode {
				t.Fatalf("mode = %s, want %s", state.Mode, tt.wantMode)
			}
			if state.SourceURL != tt.wantSource {
				t.Errorf("sourceUrl = %q, want %q", state.SourceURL, tt.wantSource)
			}
			if state.EmbedKey != tt.wantKey {
				t.Errorf("embedKey = %q, want %q", state.EmbedKey, tt.wantKey)
			}
			if !state.ScrollLocked {
				t.Error("open player should lock scroll")
			}
			if state.Meta == nil || state.Meta.Title != tt.payload.Title {
				t.Error("upload meta should carry the payload title")
			}
		})
	}
}

func TestResolveUploadOverrideDisabled(t *testing.T) {
	r := NewResolver(nil, false)
	payload := models.PlayerPayload{
		Title:      "Clip",
		SourceType: models.SourceURL,
		VideoURL:   "https://youtu.be/dQw4w9WgXcQ",
	}

	state := r.ResolveUpload(&payload)
	if state.Mode != models.PlayerNativeFile {
		t.Errorf("with override off the declared type should win, got %s", state.Mode)
	}
	if state.SourceURL != payload.VideoURL {
		t.Errorf("sourceUrl = %q, want %q", state.SourceURL, payload.VideoURL)
	}
}

func TestUploadMetaPlaceholders(t *testing.T) {
	r := NewResolver(nil, true)
	state := r.ResolveUpload(&models.PlayerPayload{
		Title:      "Match",
		SourceType: models.SourceFile,
		VideoPath:  "/uploads/match.mp4",
	})

	if len(state.Meta.Cast) != 1 || state.Meta.Cast[0].Name != "Not available" {
		t.Errorf("upload cast should be a single placeholder, got %v", state.Meta.Cast)
	}
	if len(state.Meta.Crew) != 1 || state.Meta.Crew[0].Name != "Not available" {
		t.Errorf("upload crew should be a single placeholder, got %v", state.Meta.Crew)
	}
}

func TestPlayerStateCloseIsIdempotent(t *testing.T) {
	state := &models.PlayerState{
		Mode:         models.PlayerEmbedded,
		EmbedKey:     "dQw4w9WgXcQ",
		EmbedURL:     EmbedURL("dQw4w9WgXcQ"),
		ScrollLocked: true,
		Meta:         &models.MetaPanel{Title: "x"},
	}

	state.Close()
	state.Close()

	if state.Mode != models.PlayerClosed {
		t.Errorf("mode = %s, want closed", state.Mode)
	}
	if state.EmbedKey != "" || state.EmbedURL != "" || state.SourceURL != "" {
		t.Error("close should clear every playback source")
	}
	if state.ScrollLocked {
		t.Error("close should restore scroll")
	}
	if state.Meta != nil {
		t.Error("close should drop the meta panel")
	}
}

func TestSetMetaDroppedAfterClose(t *testing.T) {
	state := &models.PlayerState{Mode: models.PlayerEmbedded, ScrollLocked: true}

	gen := state.Generation()
	state.Close()

	if state.SetMeta(gen, &models.MetaPanel{Title: "late"}) {
		t.Error("meta arriving after close should be dropped")
	}
	if state.Meta != nil {
		t.Error("dropped meta must not attach")
	}
}

func TestSetMetaCurrentGeneration(t *testing.T) {
	state := &models.PlayerState{Mode: models.PlayerEmbedded}

	gen := state.Generation()
	if !state.SetMeta(gen, &models.MetaPanel{Title: "ok"}) {
		t.Fatal("meta for the current generation should attach")
	}
	if state.Meta == nil || state.Meta.Title != "ok" {
		t.Error("attached meta missing")
	}
}

func TestCastItemsCapsAndFallbacks(t *testing.T) {
	cast := make([]models.CastMember, 12)
	for i := range cast {
		cast[i] = models.CastMember{Name: "Actor", Character: "Role"}
	}
	if got := castItems(cast); len(got) != 8 {
		t.Errorf("cast should cap at 8, got %d", len(got))
	}

	got := castItems([]models.CastMember{{OriginalName: "原名", Character: "Lead"}})
	if got[0].Name != "原名" {
		t.Errorf("should fall back to original name, got %q", got[0].Name)
	}

	got = castItems([]models.CastMember{{Character: "Lead"}})
	if got[0].Name != "Unknown" {
		t.Errorf("nameless member should render Unknown, got %q", got[0].Name)
	}

	got = castItems(nil)
	if len(got) != 1 || got[0].Name != "Not available" {
		t.Errorf("empty cast should yield placeholder, got %v", got)
	}
}

func TestCrewItemsCapsAndFallbacks(t *testing.T) {
	crew := make([]models.CrewMember, 9)
	for i := range crew {
		crew[i] = models.CrewMember{Name: "Crew", Job: "Grip"}
	}
	if got := crewItems(crew); len(got) != 8 {
		t.Errorf("crew should cap at 8, got %d", len(got))
	}

	got := crewItems(nil)
	if len(got) != 1 || got[0].Name != "Not available" {
		t.Errorf("empty crew should yield placeholder, got %v", got)
	}
}
