package combat

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"
)

// Event types published on the session's event bus
const (
	EventHelperJoined    = "chaosroom.combat.helper_joined"
	EventCardUsed        = "chaosroom.combat.card_used"
	EventCombatResolved  = "chaosroom.combat.resolved"
	EventEscapeAttempted = "chaosroom.combat.escape_attempted"
	EventDefeatApplied   = "chaosroom.combat.defeat_applied"
)

// AllEvents lists every event type a session publishes
var AllEvents = []string{
	EventHelperJoined,
	EventCardUsed,
	EventCombatResolved,
	EventEscapeAttempted,
	EventDefeatApplied,
}

// Event context keys
const (
	KeySessionID    = "session_id"
	KeyMessage      = "message"
	KeyResult       = "result"
	KeyCard         = "card"
	KeyStrength     = "strength"
	KeyMonsterLevel = "monster_level"
	KeyLevelsGained = "levels_gained"
	KeyLevelsLost   = "levels_lost"
	KeyTreasure     = "treasure"
	KeyNastyEffect  = "nasty_effect"
	KeyRoll         = "roll"
	KeyTotal        = "total"
	KeySuccess      = "success"
)

// Message returns the human readable text attached to a combat event
func Message(e events.Event) string {
	v, ok := e.Context().Get(KeyMessage)
	if !ok {
		return ""
	}
	msg, _ := v.(string)
	return msg
}

// publish sends an event from source to the monster. Bus errors are logged
// and otherwise ignored; events only report what already happened.
func (s *Session) publish(ctx context.Context, eventType string, source core.Entity, data map[string]any) {
	if s.eventBus == nil {
		return
	}

	e := events.NewGameEvent(eventType, source, s.fight.Monster)
	e.Context().Set(KeySessionID, s.id)
	for k, v := range data {
		e.Context().Set(k, v)
	}

	if err := s.eventBus.Publish(ctx, e); err != nil {
		slog.Warn("Failed to publish combat event",
			"session_id", s.id,
			"event_type", eventType,
			"error", err)
	}
}

func levelsLostMessage(name string, levels int) string {
	switch levels {
	case 0:
		return name + " loses no levels"
	case 1:
		return name + " loses 1 level"
	default:
		return fmt.Sprintf("%s loses %d levels", name, levels)
	}
}
