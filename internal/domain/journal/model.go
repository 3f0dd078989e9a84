// internal/domain/journal/model.go

package journal

import (
	"time"
)

// Location holds the optional geodata attached to a post. Latitude and
// Longitude are pointers because operator-entered posts frequently carry a
// place name without coordinates.
type Location struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	City      string   `json:"city,omitempty"`
	Country   string   `json:"country,omitempty"`
	Address   string   `json:"address,omitempty"`
}

// HasCoordinates reports whether both coordinates are present.
func (l *Location) HasCoordinates() bool {
	return l != nil && l.Latitude != nil && l.Longitude != nil
}

// Post represents a single journal entry as stored in the backend.
type Post struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Caption      string    `json:"caption"`
	Category     string    `json:"category,omitempty"`
	LocationName string    `json:"location_name,omitempty"`
	Location     *Location `json:"location,omitempty"`
	Images       []string  `json:"images"`
	LikesCount   int       `json:"likes_count"`
	CreatedAt    time.Time `json:"created_at"`
	Author       *Profile  `json:"author,omitempty"`
}

// Profile represents a user profile record.
type Profile struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	FullName  string    `json:"full_name,omitempty"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	Bio       string    `json:"bio,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// LocationSummary is a per-location aggregate produced by a location search.
type LocationSummary struct {
	Name      string   `json:"name"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	PostCount int      `json:"post_count"`
}
