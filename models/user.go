package models

const (
	RoleUser    = "user"
	RoleCreator = "creator"
)

type User struct {
	Email                  string `json:"email"`
	PasswordHash           string `json:"-"`
	Role                   string `json:"role"`
	CreatorSubscribed      bool   `json:"creatorSubscribed"`
	CreatorSubscribedUntil int64  `json:"creatorSubscribedUntil,omitempty"` // unix millis, 0 when never subscribed
	CreatedAt              int64  `json:"createdAt"`
}

// Session is the client-visible proof of authentication. It is loaded once
// from the cookie store per request and passed explicitly to anything that
// needs it.
type Session struct {
	Email                  string `json:"email"`
	Role                   string `json:"role"`
	CreatorSubscribed      bool   `json:"creatorSubscribed"`
	CreatorSubscribedUntil int64  `json:"creatorSubscribedUntil,omitempty"`
}

func (s *Session) IsCreator() bool {
	return s != nil && s.Role == RoleCreator
}
