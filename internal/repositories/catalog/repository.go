// Package catalog stores the card set so every process at the table plays
// with the same races, classes and decks.
package catalog

//go:generate mockgen -destination=mock/mock_repository.go -package=catalogmock github.com/KirkDiggler/chaos-room/internal/repositories/catalog Repository

import (
	"context"
	"time"

	cardset "github.com/KirkDiggler/chaos-room/internal/catalog"
	"github.com/KirkDiggler/chaos-room/internal/entities/chaosroom"
)

// Repository defines the interface for card set persistence
type Repository interface {
	// Store replaces the stored card set
	// Returns errors.InvalidArgument when the definitions do not validate
	// Returns errors.Internal for storage failures
	Store(ctx context.Context, input StoreInput) (*StoreOutput, error)

	// Load returns the stored card set, built and ready to play
	// Returns errors.NotFound if nothing has been stored
	// Returns errors.DataLoss if stored data no longer validates
	// Returns errors.Internal for storage failures
	Load(ctx context.Context, input LoadInput) (*LoadOutput, error)

	// GetMonster retrieves one monster card by ID
	// Returns errors.InvalidArgument for an empty ID
	// Returns errors.NotFound if the monster doesn't exist
	// Returns errors.Internal for storage failures
	GetMonster(ctx context.Context, input GetMonsterInput) (*GetMonsterOutput, error)
}

// StoreInput defines the input for storing a card set
type StoreInput struct {
	Definitions *cardset.Definitions
}

// StoreOutput defines the output for storing a card set
type StoreOutput struct {
	StoredAt time.Time
}

// LoadInput defines the input for loading the card set
type LoadInput struct{}

// LoadOutput defines the output for loading the card set
type LoadOutput struct {
	Catalog  *cardset.Catalog
	StoredAt time.Time
}

// GetMonsterInput defines the input for getting a monster
type GetMonsterInput struct {
	ID string
}

// GetMonsterOutput defines the output for getting a monster
type GetMonsterOutput struct {
	Monster *chaosroom.Monster
}
