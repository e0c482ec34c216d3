package models

import "testing"

func TestNormalizeCategory(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"movie", CategoryMovie},
		{"webseries", CategoryWebseries},
		{"sports", CategorySports},
		{"", CategoryMovie},
		{"Sports", CategoryMovie}, // case sensitive, unknown falls back
		{"documentary", CategoryMovie},
	}

	for _, tt := range tests {
		if got := NormalizeCategory(tt.in); got != tt.want {
			t.Errorf("NormalizeCategory(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPlayerPayloadValidate(t *testing.T) {
	tests := []struct {
		name    string
		payload PlayerPayload
		wantErr bool
	}{
		{"valid file", PlayerPayload{Title: "T", SourceType: SourceFile, VideoPath: "/v.mp4"}, false},
		{"valid url", PlayerPayload{Title: "T", SourceType: SourceURL, VideoURL: "https://x/v"}, false},
		{"missing title", PlayerPayload{SourceType: SourceFile}, true},
		{"bad source type", PlayerPayload{Title: "T", SourceType: "stream"}, true},
		{"empty source type", PlayerPayload{Title: "T"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.payload.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCandidateURL(t *testing.T) {
	p := PlayerPayload{SourceType: SourceFile, VideoPath: "/v.mp4", VideoURL: "https://x/v"}
	if got := p.CandidateURL(); got != "/v.mp4" {
		t.Errorf("file source should pick VideoPath, got %q", got)
	}

	p.SourceType = SourceURL
	if got := p.CandidateURL(); got != "https://x/v" {
		t.Errorf("url source should pick VideoURL, got %q", got)
	}
}

func TestParsePlayerPayload(t *testing.T) {
	data := []byte(`{"title":"Match","description":"d","sourceType":"url","videoUrl":"https://youtu.be/dQw4w9WgXcQ"}`)
	p, err := ParsePlayerPayload(data)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if p.Title != "Match" || p.VideoURL != "https://youtu.be/dQw4w9WgXcQ" {
		t.Errorf("unexpected payload: %+v", p)
	}

	if _, err := ParsePlayerPayload([]byte(`not json`)); err == nil {
		t.Error("malformed JSON should fail")
	}
	if _, err := ParsePlayerPayload([]byte(`{"title":"x","sourceType":"bogus"}`)); err == nil {
		t.Error("invalid sourceType should fail validation")
	}
}

func TestUploadPayloadRoundTrip(t *testing.T) {
	u := CreatorUpload{
		ID:          "mv_1",
		Title:       "Final",
		Description: "desc",
		SourceType:  SourceFile,
		VideoPath:   "/uploads/final.mp4",
	}

	p := u.Payload()
	data, err := p.Encode()
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	back, err := ParsePlayerPayload(data)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if *back != p {
		t.Errorf("round-trip mismatch: %+v != %+v", *back, p)
	}
}
