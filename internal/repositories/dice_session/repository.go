// Package dicesession stores dice rolls grouped by who rolled them and why
package dicesession

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=dicesessionmock github.com/KirkDiggler/rpg-spellbook/internal/repositories/dice_session Repository

// DiceSession is the rolls one entity made in one context, such as the damage
// rolls cast for "fireball"
type DiceSession struct {
	EntityID  string     `json:"entity_id"`
	Context   string     `json:"context"`
	Rolls     []DiceRoll `json:"rolls"`
	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt time.Time  `json:"expires_at"`
}

// DiceRoll is a single roll result
type DiceRoll struct {
	RollID   string `json:"roll_id"`
	Notation string `json:"notation"`

	// Dice holds the kept dice; Dropped the discarded ones
	Dice    []int32 `json:"dice"`
	Dropped []int32 `json:"dropped,omitempty"`

	// Total is DiceTotal plus Modifier
	Total     int32 `json:"total"`
	DiceTotal int32 `json:"dice_total"`
	Modifier  int32 `json:"modifier"`

	Description string `json:"description,omitempty"`
}

// CreateInput contains parameters for creating a dice session
type CreateInput struct {
	EntityID string
	Context  string
	Rolls    []DiceRoll
	TTL      time.Duration // zero uses the repository default
}

// CreateOutput contains the result of creating a dice session
type CreateOutput struct {
	Session *DiceSession
}

// GetInput contains parameters for retrieving a dice session
type GetInput struct {
	EntityID string
	Context  string
}

// GetOutput contains the result of retrieving a dice session
type GetOutput struct {
	Session *DiceSession
}

// DeleteInput contains parameters for deleting a dice session
type DeleteInput struct {
	EntityID string
	Context  string
}

// DeleteOutput contains the result of deleting a dice session
type DeleteOutput struct {
	RollsDeleted int32
}

// Repository defines the interface for dice session storage operations
type Repository interface {
	// Create stores a new dice session with the specified TTL
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a dice session by entity ID and context
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Delete removes a dice session
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// Update replaces an existing session, keeping its expiry
	Update(ctx context.Context, session *DiceSession) error
}
