package models

import "sync/atomic"

type PlayerMode string

const (
	PlayerClosed      PlayerMode = "closed"
	PlayerEmbedded    PlayerMode = "embedded-video"
	PlayerNativeFile  PlayerMode = "native-file"
	PlayerUnavailable PlayerMode = "unavailable"
)

// MetaItem is one cast or crew line in the player meta panel.
type MetaItem struct {
	Name string `json:"name"`
	Role string `json:"role,omitempty"`
}

// MetaPanel holds the title/description/cast/crew shown next to the player.
// Unavailable is set when the detail fetches failed; the lists then carry no
// entries and the client shows "Details unavailable." instead of a spinner.
type MetaPanel struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Cast        []MetaItem `json:"cast"`
	Crew        []MetaItem `json:"crew"`
	Unavailable bool       `json:"unavailable,omitempty"`
}

// PlayerState is the resolved playback state for one open player. Created on
// open, torn down via Close.
type PlayerState struct {
	Mode         PlayerMode `json:"mode"`
	EmbedKey     string     `json:"embedKey,omitempty"`
	EmbedURL     string     `json:"embedUrl,omitempty"`
	SourceURL    string     `json:"sourceUrl,omitempty"`
	ScrollLocked bool       `json:"scrollLocked"`
	Meta         *MetaPanel `json:"meta,omitempty"`

	generation atomic.Uint64
}

// Generation returns the current open/close generation. Slow meta loads
// compare it before attaching results so completions after a Close are
// dropped.
func (p *PlayerState) Generation() uint64 {
	return p.generation.Load()
}

// SetMeta attaches the meta panel if the player has not been closed since gen
// was observed.
func (p *PlayerState) SetMeta(gen uint64, meta *MetaPanel) bool {
	if p.generation.Load() != gen {
		return false
	}
	p.Meta = meta
	return true
}

// Close tears the player down: playback stops, both the native and the
// embedded source are cleared so no network or audio activity continues, and
// document scroll is restored. Safe to call repeatedly.
func (p *PlayerState) Close() {
	p.generation.Add(1)
	p.Mode = PlayerClosed
	p.EmbedKey = ""
	p.EmbedURL = ""
	p.SourceURL = ""
	p.ScrollLocked = false
	p.Meta = nil
}

// ResetCode is a pending password-reset OTP.
type ResetCode struct {
	Email     string
	Code      string
	ExpiresAt int64 // unix millis
}

// PresignResult is the response of a presigned-upload request.
type PresignResult struct {
	URL       string `json:"url"`
	Key       string `json:"key"`
	PublicURL string `json:"publicUrl"`
}
