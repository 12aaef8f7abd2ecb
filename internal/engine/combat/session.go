// Package combat runs one fight between a player, an optional helper and a
// monster. A Session is not safe for concurrent use; one turn controller
// drives it step by step.
package combat

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/google/uuid"

	"github.com/KirkDiggler/chaos-room/internal/engine/rules"
	"github.com/KirkDiggler/chaos-room/internal/entities/chaosroom"
	"github.com/KirkDiggler/chaos-room/internal/errors"
)

// SessionConfig configures a combat session
type SessionConfig struct {
	ID      string
	Player  *chaosroom.Player
	Monster *chaosroom.Monster

	// Roller defaults to dice.DefaultRoller
	Roller dice.Roller

	// EventBus receives outcome events when set
	EventBus events.EventBus
}

// Validate validates the config
func (c *SessionConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Player == nil {
		vb.RequiredField("Player")
	}
	if c.Monster == nil {
		vb.RequiredField("Monster")
	}

	return vb.Build()
}

// Session is one fight
type Session struct {
	id       string
	fight    *rules.Context
	roller   dice.Roller
	eventBus events.EventBus

	result     Result
	usedCards  []*chaosroom.Card
	cardBonus  int
	victory    VictoryOutcome
	defeat     DefeatOutcome
	lastEscape EscapeOutcome
}

// NewSession starts a fight
func NewSession(cfg *SessionConfig) (*Session, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	id := cfg.ID
	if id == "" {
		id = uuid.NewString()
	}

	roller := cfg.Roller
	if roller == nil {
		roller = dice.DefaultRoller
	}

	return &Session{
		id:       id,
		fight:    &rules.Context{Player: cfg.Player, Monster: cfg.Monster},
		roller:   roller,
		eventBus: cfg.EventBus,
		result:   ResultInProgress,
	}, nil
}

// ID returns the session ID
func (s *Session) ID() string {
	return s.id
}

// Player returns the fighting player
func (s *Session) Player() *chaosroom.Player {
	return s.fight.Player
}

// Monster returns the monster being fought
func (s *Session) Monster() *chaosroom.Monster {
	return s.fight.Monster
}

// Helper returns the helper, or nil when fighting alone
func (s *Session) Helper() *chaosroom.Player {
	return s.fight.Helper
}

// Result returns the current state of the fight
func (s *Session) Result() Result {
	return s.result
}

// CardsDiscarded is how many cards were used so far
func (s *Session) CardsDiscarded() int {
	return s.fight.CardsDiscarded
}

// UsedCards returns the cards played into this fight
func (s *Session) UsedCards() []*chaosroom.Card {
	return s.usedCards
}

// Victory returns what the win gave out. Zero unless Result is ResultVictory.
func (s *Session) Victory() VictoryOutcome {
	return s.victory
}

// Defeat returns what the loss cost once ApplyDefeat has run
func (s *Session) Defeat() DefeatOutcome {
	return s.defeat
}

// LastEscape returns the most recent escape attempt
func (s *Session) LastEscape() EscapeOutcome {
	return s.lastEscape
}

// SetHelper attaches a helper. It fails when the monster refuses help, a
// helper is already attached, or the fight has been resolved.
func (s *Session) SetHelper(ctx context.Context, helper *chaosroom.Player) bool {
	if helper == nil || helper == s.fight.Player {
		return false
	}
	if s.result != ResultInProgress || s.fight.Helper != nil {
		return false
	}
	if rules.PreventsHelp(s.fight.Monster) {
		slog.Debug("Helper rejected",
			"session_id", s.id,
			"monster", s.fight.Monster.Name,
			"helper", helper.Name)
		return false
	}

	s.fight.Helper = helper
	s.publish(ctx, EventHelperJoined, helper, map[string]any{
		KeyMessage: helper.Name + " joins the fight",
	})
	return true
}

// UseCard records a card spent on the fight. Removing it from the hand is up
// to the caller. One-shot bonus cards add their battle bonus until the fight ends.
// Cards stay playable after a lost fight so discards can feed an escape; a
// finished fight or an applied defeat rejects them.
func (s *Session) UseCard(ctx context.Context, card *chaosroom.Card) bool {
	if card == nil || s.result.IsTerminal() || s.defeat.Applied {
		return false
	}

	s.usedCards = append(s.usedCards, card)
	s.fight.CardsDiscarded++
	if card.Type == chaosroom.CardTypeBonus {
		s.cardBonus += card.BattleBonus
	}

	s.publish(ctx, EventCardUsed, s.fight.Player, map[string]any{
		KeyCard:     card.Name,
		KeyStrength: s.PlayerStrength(),
		KeyMessage:  s.fight.Player.Name + " uses " + card.Name,
	})
	return true
}

// PlayerStrength is the player's side of the comparison, helper included.
// Against a magic resistant monster only raw levels count.
func (s *Session) PlayerStrength() int {
	p, h := s.fight.Player, s.fight.Helper

	if rules.IsMagicResistant(s.fight.Monster) {
		total := p.Level()
		if h != nil {
			total += h.Level()
		}
		return total
	}

	total := p.Strength() +
		rules.TotalCombatBonus(p.Race(), s.fight) +
		rules.TotalCombatBonus(p.Class(), s.fight) +
		rules.TotalBonusAgainstMonster(p.Class(), s.fight.Monster) +
		s.cardBonus
	if h != nil {
		total += h.Strength() +
			rules.TotalCombatBonus(h.Race(), s.fight) +
			rules.TotalCombatBonus(h.Class(), s.fight)
	}
	return total
}

// MonsterLevel is the monster's side of the comparison
func (s *Session) MonsterLevel() int {
	p, m := s.fight.Player, s.fight.Monster
	return m.Level +
		rules.BonusVsRace(m, p.Race()) +
		rules.BonusVsClass(m, p.Class()) +
		rules.TotalPenaltyFromMonster(p.Class(), m)
}

// PlayerWins compares both sides. A tie only wins with a class that wins ties.
func (s *Session) PlayerWins() bool {
	strength, level := s.PlayerStrength(), s.MonsterLevel()
	if strength > level {
		return true
	}
	return strength == level && rules.HasWinOnTie(s.fight.Player.Class())
}

// ResolveCombat settles the fight. A win hands out levels immediately; a loss
// leaves the player in Defeat to run or take the bad stuff. Calling it again
// returns the existing result.
func (s *Session) ResolveCombat(ctx context.Context) Result {
	if s.result != ResultInProgress {
		return s.result
	}

	strength, level := s.PlayerStrength(), s.MonsterLevel()
	if !s.PlayerWins() {
		s.result = ResultDefeat
		slog.Info("Combat lost",
			"session_id", s.id,
			"player", s.fight.Player.Name,
			"monster", s.fight.Monster.Name,
			"strength", strength,
			"monster_level", level)
		s.publish(ctx, EventCombatResolved, s.fight.Player, map[string]any{
			KeyResult:       s.result.String(),
			KeyStrength:     strength,
			KeyMonsterLevel: level,
			KeyMessage:      s.fight.Monster.Name + " is too strong",
		})
		return s.result
	}

	s.result = ResultVictory
	s.victory = VictoryOutcome{
		LevelsGained: s.fight.Player.AddLevel(s.fight.Monster.LevelsGained),
		Treasure:     s.fight.Monster.Treasure,
	}
	if h := s.fight.Helper; h != nil && rules.HasLevelForHelping(h.Race()) {
		h.AddLevel(1)
		s.victory.HelperRewarded = true
	}

	slog.Info("Combat won",
		"session_id", s.id,
		"player", s.fight.Player.Name,
		"monster", s.fight.Monster.Name,
		"strength", strength,
		"monster_level", level,
		"levels_gained", s.victory.LevelsGained)
	s.publish(ctx, EventCombatResolved, s.fight.Player, map[string]any{
		KeyResult:       s.result.String(),
		KeyStrength:     strength,
		KeyMonsterLevel: level,
		KeyLevelsGained: s.victory.LevelsGained,
		KeyTreasure:     s.victory.Treasure,
		KeyMessage:      s.fight.Player.Name + " defeats " + s.fight.Monster.Name,
	})
	return s.result
}

// AttemptEscape rolls to run away. It is allowed before or after resolving a
// lost fight. A monster that prevents escape fails the attempt without a
// roll. When the first roll fails and the player's race grants another try,
// the session waits in Escaping for AttemptSecondEscape.
func (s *Session) AttemptEscape(ctx context.Context) EscapeOutcome {
	if s.result != ResultInProgress && s.result != ResultDefeat {
		return EscapeOutcome{}
	}

	s.fight.EscapePhase = true
	if rules.PreventsEscape(s.fight.Monster) {
		s.result = ResultFailedEscape
		s.lastEscape = EscapeOutcome{}
		s.publish(ctx, EventEscapeAttempted, s.fight.Player, map[string]any{
			KeyResult:  s.result.String(),
			KeyMessage: "there is no escaping " + s.fight.Monster.Name,
		})
		return s.lastEscape
	}

	outcome := s.rollEscape()
	switch {
	case outcome.Success:
		s.result = ResultEscaped
	case rules.HasSecondEscapeAttempt(s.fight.Player.Race()):
		s.fight.FirstEscapeFailed = true
		s.result = ResultEscaping
	default:
		s.fight.FirstEscapeFailed = true
		s.result = ResultFailedEscape
	}

	s.finishEscape(ctx, outcome)
	return outcome
}

// AttemptSecondEscape rolls once more after a failed first attempt. It does
// nothing unless the session is waiting in Escaping. Whatever the roll, the
// fight is over afterwards.
func (s *Session) AttemptSecondEscape(ctx context.Context) EscapeOutcome {
	if s.result != ResultEscaping || !s.fight.FirstEscapeFailed {
		return EscapeOutcome{}
	}

	outcome := s.rollEscape()
	if outcome.Success {
		s.result = ResultEscaped
	} else {
		s.result = ResultFailedEscape
	}

	s.finishEscape(ctx, outcome)
	return outcome
}

// ApplyDefeat takes the bad stuff after a lost fight. lowestLevel is the
// lowest level at the table, used by dynamic level loss. Declining a pending
// second escape counts as failing it. It does nothing after a win, a
// successful escape, before the fight is resolved, or when already applied.
func (s *Session) ApplyDefeat(ctx context.Context, lowestLevel int) DefeatOutcome {
	if s.defeat.Applied {
		return s.defeat
	}
	switch s.result {
	case ResultDefeat, ResultFailedEscape:
	case ResultEscaping:
		s.result = ResultFailedEscape
	default:
		return DefeatOutcome{}
	}

	p, m := s.fight.Player, s.fight.Monster
	loss := rules.CalculateLevelsLost(m, lowestLevel, p.Level())

	outcome := DefeatOutcome{Applied: true, NastyEffect: m.NastyEffect}
	levels := loss.Levels
	if loss.RollRequired {
		outcome.Rolled = true
		outcome.Roll = s.roll(loss.MaxRoll)
		levels = outcome.Roll
	}
	outcome.LevelsLost = p.LoseLevel(levels)
	s.defeat = outcome

	slog.Info("Defeat applied",
		"session_id", s.id,
		"player", p.Name,
		"monster", m.Name,
		"levels_lost", outcome.LevelsLost,
		"rolled", outcome.Rolled,
		"level", p.Level())
	s.publish(ctx, EventDefeatApplied, p, map[string]any{
		KeyLevelsLost:  outcome.LevelsLost,
		KeyNastyEffect: outcome.NastyEffect,
		KeyMessage:     levelsLostMessage(p.Name, outcome.LevelsLost),
	})
	return outcome
}

func (s *Session) rollEscape() EscapeOutcome {
	p := s.fight.Player
	bonus := rules.TotalEscapeBonus(p.Race(), s.fight) +
		rules.TotalEscapeBonus(p.Class(), s.fight) +
		rules.EscapeModifier(s.fight.Monster)
	roll := s.roll(chaosroom.DieSides)
	total := roll + bonus

	return EscapeOutcome{
		Success: total >= chaosroom.EscapeSuccessThreshold,
		Rolled:  true,
		Roll:    roll,
		Bonus:   bonus,
		Total:   total,
	}
}

func (s *Session) finishEscape(ctx context.Context, outcome EscapeOutcome) {
	s.lastEscape = outcome

	slog.Info("Escape attempted",
		"session_id", s.id,
		"player", s.fight.Player.Name,
		"roll", outcome.Roll,
		"bonus", outcome.Bonus,
		"success", outcome.Success,
		"result", s.result.String())

	msg := s.fight.Player.Name + " fails to escape"
	if outcome.Success {
		msg = s.fight.Player.Name + " escapes"
	}
	s.publish(ctx, EventEscapeAttempted, s.fight.Player, map[string]any{
		KeyResult:  s.result.String(),
		KeyRoll:    outcome.Roll,
		KeyTotal:   outcome.Total,
		KeySuccess: outcome.Success,
		KeyMessage: msg,
	})
}

// roll throws one die. A failing roller counts as the lowest face so the
// fight still reaches an outcome.
func (s *Session) roll(sides int) int {
	n, err := s.roller.Roll(sides)
	if err != nil || n < 1 || n > sides {
		slog.Warn("Dice roll failed, using 1",
			"session_id", s.id,
			"sides", sides,
			"value", n,
			"error", err)
		return 1
	}
	slog.Debug("Dice rolled", "session_id", s.id, "sides", sides, "value", n)
	return n
}
