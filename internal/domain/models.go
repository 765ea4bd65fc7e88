// Package domain defines the persistence models for users, profiles, swipes,
// matches, and messages. These types are mapped with GORM and form the core
// data layer of the SynthHearts backend.
//
// JSON field names follow the public wire format (camelCase), which clients
// of the original demo front end depend on.
package domain

import (
	"strings"
	"time"
)

// SeedIDPrefix marks user ids created by the demo seed process. The public
// featured feed selects profiles by this prefix.
const SeedIDPrefix = "agent_"

// Swipe directions. Any other value is rejected at the service layer.
const (
	SwipeLeft  = "left"
	SwipeRight = "right"
)

// User holds a credential record. Usernames are stored lowercase and are
// unique case-insensitively; records are immutable after registration.
type User struct {
	ID           string    `json:"id"       gorm:"type:char(36);primaryKey"`
	Username     string    `json:"username" gorm:"type:varchar(64);not null;uniqueIndex:ux_users_username"`
	PasswordHash string    `json:"-"        gorm:"type:varchar(128);not null"`
	CreatedAt    time.Time `json:"-"`
}

// TableName returns the database table name for User.
func (User) TableName() string { return "users" }

// IsSeeded reports whether the user was created by the demo seed process.
func (u User) IsSeeded() bool { return strings.HasPrefix(u.ID, SeedIDPrefix) }

// Avatar is the decorative rendering hint stored inside a profile.
type Avatar struct {
	Bg     string `json:"bg"`
	Shape  string `json:"shape"`
	Accent string `json:"accent"`
}

// Profile is the public persona of a user, keyed by the owning user id.
// It is created or replaced wholesale by the owner; never partially patched.
// List and struct fields are stored as JSON columns via the GORM serializer.
type Profile struct {
	OwnerID         string    `json:"id"              gorm:"type:char(36);primaryKey"`
	Name            string    `json:"name"            gorm:"type:varchar(128)"`
	Tagline         string    `json:"tagline"         gorm:"type:varchar(255)"`
	Bio             string    `json:"bio"             gorm:"type:text"`
	Personality     []string  `json:"personality"     gorm:"serializer:json"`
	Interests       []string  `json:"interests"       gorm:"serializer:json"`
	Avatar          Avatar    `json:"avatar"          gorm:"serializer:json"`
	ModelType       string    `json:"modelType"       gorm:"type:varchar(64)"`
	ProcessingStyle string    `json:"processingStyle" gorm:"type:varchar(64)"`
	UpdatedAt       time.Time `json:"-"`
}

// TableName returns the database table name for Profile.
func (Profile) TableName() string { return "profiles" }

// Swipe records one directional decision by SwiperID about SwipedID. The
// composite primary key makes a repeat swipe on the same target an overwrite
// rather than an append.
type Swipe struct {
	SwiperID  string    `json:"swiperId"  gorm:"type:char(36);primaryKey"`
	SwipedID  string    `json:"swipedId"  gorm:"type:char(36);primaryKey"`
	Direction string    `json:"direction" gorm:"type:varchar(8);not null;check:direction IN ('left','right')"`
	UpdatedAt time.Time `json:"-"`
}

// TableName returns the database table name for Swipe.
func (Swipe) TableName() string { return "swipes" }

// Match is a mutual right-swipe between two users. PairKey is the ordered
// "low|high" concatenation of the two user ids; its unique index guarantees
// at most one match per pair even when both right-swipes race.
type Match struct {
	ID        string    `json:"id"        gorm:"type:char(36);primaryKey"`
	User1ID   string    `json:"user1Id"   gorm:"type:char(36);not null;index"`
	User2ID   string    `json:"user2Id"   gorm:"type:char(36);not null;index"`
	PairKey   string    `json:"-"         gorm:"type:varchar(80);not null;uniqueIndex:ux_matches_pair"`
	IsPublic  bool      `json:"isPublic"  gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the database table name for Match.
func (Match) TableName() string { return "matches" }

// PairKeyFor builds the order-independent pair identity for two user ids.
func PairKeyFor(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return a + "|" + b
}

// HasParticipant reports whether userID is one of the match's two sides.
func (m Match) HasParticipant(userID string) bool {
	return m.User1ID == userID || m.User2ID == userID
}

// PartnerOf returns the other participant's id, and false when userID is not
// part of the match.
func (m Match) PartnerOf(userID string) (string, bool) {
	switch userID {
	case m.User1ID:
		return m.User2ID, true
	case m.User2ID:
		return m.User1ID, true
	}
	return "", false
}

// Message is a single utterance within a match. Messages are append-only and
// ordered by creation time; the sender is always one of the match's two
// participants (scripted replies are attributed to the partner).
type Message struct {
	ID        string    `json:"id"        gorm:"type:char(36);primaryKey"`
	MatchID   string    `json:"matchId"   gorm:"type:char(36);not null;index:idx_match_msgs,priority:1"`
	SenderID  string    `json:"senderId"  gorm:"type:char(36);not null"`
	Content   string    `json:"content"   gorm:"type:text;not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"index:idx_match_msgs,priority:2"`
}

// TableName returns the database table name for Message.
func (Message) TableName() string { return "messages" }
