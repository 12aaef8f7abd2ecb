package rules

import "github.com/KirkDiggler/chaos-room/internal/entities/chaosroom"

// Context is the state of one fight that abilities read. It is owned by the
// combat session and thrown away when the fight ends.
type Context struct {
	Player  *chaosroom.Player
	Monster *chaosroom.Monster

	// Helper is nil when fighting alone. The rules allow at most one.
	Helper *chaosroom.Player

	CardsDiscarded    int
	EscapePhase       bool
	FirstEscapeFailed bool
}

func (c *Context) discards() int {
	if c == nil || c.CardsDiscarded < 0 {
		return 0
	}
	return c.CardsDiscarded
}

func (c *Context) monster() *chaosroom.Monster {
	if c == nil {
		return nil
	}
	return c.Monster
}
