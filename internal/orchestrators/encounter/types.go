package encounter

import (
	"github.com/KirkDiggler/chaos-room/internal/engine/combat"
	"github.com/KirkDiggler/chaos-room/internal/entities/chaosroom"
)

// StartCombatInput defines the request for starting a fight. When MonsterID
// is empty a monster is drawn from the door deck.
type StartCombatInput struct {
	Player    *chaosroom.Player
	MonsterID string
}

// StartCombatOutput defines the response for starting a fight
type StartCombatOutput struct {
	EncounterID string
	Monster     *chaosroom.Monster
	Summary     combat.Summary
}

// AddHelperInput defines the request for adding a helper
type AddHelperInput struct {
	EncounterID string
	Helper      *chaosroom.Player
}

// AddHelperOutput defines the response for adding a helper. Accepted is false
// when the monster refuses help.
type AddHelperOutput struct {
	Accepted bool
	Summary  combat.Summary
}

// PlayCardInput defines the request for spending a card from the hand
type PlayCardInput struct {
	EncounterID string
	CardID      string
}

// PlayCardOutput defines the response for spending a card
type PlayCardOutput struct {
	Card    *chaosroom.Card
	Summary combat.Summary
}

// FightInput defines the request for resolving the fight
type FightInput struct {
	EncounterID string
}

// FightOutput defines the response for resolving the fight. TreasureDrawn
// holds the cards added to the hand after a win.
type FightOutput struct {
	Result        combat.Result
	Victory       combat.VictoryOutcome
	TreasureDrawn []*chaosroom.Card
	Summary       combat.Summary
}

// EscapeInput defines the request for an escape attempt
type EscapeInput struct {
	EncounterID string
}

// EscapeOutput defines the response for an escape attempt
type EscapeOutput struct {
	Escape combat.EscapeOutcome
	Result combat.Result

	// SecondAttemptAvailable is set when AttemptSecondEscape may be called
	SecondAttemptAvailable bool
}

// ApplyDefeatInput defines the request for taking the bad stuff
type ApplyDefeatInput struct {
	EncounterID       string
	LowestPlayerLevel int
}

// ApplyDefeatOutput defines the response for taking the bad stuff
type ApplyDefeatOutput struct {
	Defeat combat.DefeatOutcome
	Player *chaosroom.Player
}

// EndCombatInput defines the request for closing a finished fight
type EndCombatInput struct {
	EncounterID string
}

// EndCombatOutput defines the response for closing a fight
type EndCombatOutput struct {
	Summary combat.Summary
}

// GetCombatInput defines the request for looking at a live fight
type GetCombatInput struct {
	EncounterID string
}

// GetCombatOutput defines the response for looking at a live fight
type GetCombatOutput struct {
	EncounterID string
	PlayerID    string
	Summary     combat.Summary
}

// DrawMonsterInput defines the request for drawing from the door deck
type DrawMonsterInput struct{}

// DrawMonsterOutput defines the response for drawing from the door deck
type DrawMonsterOutput struct {
	Monster *chaosroom.Monster
}
