// Package fightlog stores the outcome of finished fights per player for a
// limited time
package fightlog

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=fightlogmock github.com/KirkDiggler/chaos-room/internal/repositories/fightlog Repository

// Entry is one finished fight
type Entry struct {
	EncounterID string `json:"encounterId"`
	PlayerID    string `json:"playerId"`
	PlayerName  string `json:"playerName"`
	MonsterName string `json:"monsterName"`

	// Result is the session result name, e.g. "victory" or "failed_escape"
	Result string `json:"result"`

	LevelsGained int    `json:"levelsGained,omitempty"`
	LevelsLost   int    `json:"levelsLost,omitempty"`
	PlayerLevel  int    `json:"playerLevel"`
	HelperName   string `json:"helperName,omitempty"`

	EndedAt   time.Time `json:"endedAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// RecordInput contains parameters for recording a fight
type RecordInput struct {
	Entry *Entry
	TTL   time.Duration // How long the player's log should live
}

// RecordOutput contains the stored entry with its timestamps set
type RecordOutput struct {
	Entry *Entry
}

// ListInput contains parameters for listing a player's fights
type ListInput struct {
	PlayerID string
	Limit    int // newest first; 0 lists everything kept
}

// ListOutput contains a player's fights, newest first
type ListOutput struct {
	Entries []*Entry
}

// DeleteInput contains parameters for clearing a player's log
type DeleteInput struct {
	PlayerID string
}

// DeleteOutput contains the result of clearing a player's log
type DeleteOutput struct {
	EntriesDeleted int
}

// Repository defines the interface for fight log storage
type Repository interface {
	// Record appends a finished fight to the player's log and refreshes its TTL
	Record(ctx context.Context, input RecordInput) (*RecordOutput, error)

	// List returns a player's fights, newest first
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Delete clears a player's log
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}
