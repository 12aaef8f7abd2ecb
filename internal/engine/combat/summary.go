package combat

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/chaos-room/internal/engine/rules"
)

// Summary is a snapshot of a fight for display
type Summary struct {
	SessionID        string
	PlayerName       string
	PlayerLevel      int
	HelperName       string
	HelperLevel      int
	Strength         int
	MonsterName      string
	MonsterBaseLevel int
	MonsterLevel     int
	CardsDiscarded   int
	Warnings         []string
	Result           Result
}

// Summary captures the current state of the fight
func (s *Session) Summary() Summary {
	p, m := s.fight.Player, s.fight.Monster

	sum := Summary{
		SessionID:        s.id,
		PlayerName:       p.Name,
		PlayerLevel:      p.Level(),
		Strength:         s.PlayerStrength(),
		MonsterName:      m.Name,
		MonsterBaseLevel: m.Level,
		MonsterLevel:     s.MonsterLevel(),
		CardsDiscarded:   s.fight.CardsDiscarded,
		Result:           s.result,
	}
	if h := s.fight.Helper; h != nil {
		sum.HelperName = h.Name
		sum.HelperLevel = h.Level()
	}

	if rules.PreventsEscape(m) {
		sum.Warnings = append(sum.Warnings, "no escape possible")
	}
	if rules.PreventsHelp(m) {
		sum.Warnings = append(sum.Warnings, "no help allowed")
	}
	if rules.IsUndead(m) {
		sum.Warnings = append(sum.Warnings, "undead")
	}
	if rules.IsMagicResistant(m) {
		sum.Warnings = append(sum.Warnings, "magic resistant: only levels count")
	}
	return sum
}

func (s Summary) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s (level %d)", s.PlayerName, s.PlayerLevel)
	if s.HelperName != "" {
		fmt.Fprintf(&sb, " + %s (level %d)", s.HelperName, s.HelperLevel)
	}
	fmt.Fprintf(&sb, " strength %d vs %s level %d", s.Strength, s.MonsterName, s.MonsterLevel)
	if s.MonsterLevel != s.MonsterBaseLevel {
		fmt.Fprintf(&sb, " (base %d)", s.MonsterBaseLevel)
	}
	if s.CardsDiscarded > 0 {
		fmt.Fprintf(&sb, ", %d cards used", s.CardsDiscarded)
	}
	for _, w := range s.Warnings {
		fmt.Fprintf(&sb, "\n  ! %s", w)
	}
	fmt.Fprintf(&sb, "\n  result: %s", s.Result)
	return sb.String()
}

func (s *Session) String() string {
	return s.Summary().String()
}
