package rules

import "github.com/KirkDiggler/chaos-room/internal/entities/chaosroom"

// IsUsableInCombat reports whether the ability counts toward combat strength.
// Abilities without a usableIn condition are combat abilities.
func IsUsableInCombat(a *chaosroom.Ability) bool {
	if a == nil {
		return false
	}
	return a.Conditions.UsableIn == "" || a.Conditions.UsableIn == chaosroom.PhaseCombat
}

// IsUsableInEscape reports whether the ability is an escape-only ability
func IsUsableInEscape(a *chaosroom.Ability) bool {
	if a == nil {
		return false
	}
	return a.Conditions.UsableIn == chaosroom.PhaseEscape
}

// CombatBonus is what one ability adds to combat strength in this context.
// Phase gating is left to the caller.
func CombatBonus(a *chaosroom.Ability, ctx *Context) int {
	if a == nil {
		return 0
	}
	total := 0
	for _, e := range a.Effects {
		switch effect := e.(type) {
		case chaosroom.CombatBonusPerDiscard:
			total += perDiscard(effect.Amount, a, ctx)
		case chaosroom.BonusPerDiscardVsUndead:
			if IsUndead(ctx.monster()) {
				total += perDiscard(effect.Amount, a, ctx)
			}
		}
	}
	return total
}

// EscapeBonus is what one ability adds to an escape roll in this context.
// requiresFirstFail only labels second-attempt abilities and never gates it.
func EscapeBonus(a *chaosroom.Ability, ctx *Context) int {
	if a == nil {
		return 0
	}
	total := 0
	for _, e := range a.Effects {
		switch effect := e.(type) {
		case chaosroom.EscapeBonus:
			total += effect.Amount
		case chaosroom.EscapeBonusPerDiscard:
			total += perDiscard(effect.Amount, a, ctx)
		}
	}
	return total
}

// WinsOnTie reports whether the ability declares winOnTie
func WinsOnTie(a *chaosroom.Ability) bool {
	return hasEffect[chaosroom.WinOnTie](a)
}

// AllowsSecondEscape reports whether the ability declares secondEscapeAttempt
func AllowsSecondEscape(a *chaosroom.Ability) bool {
	return hasEffect[chaosroom.SecondEscapeAttempt](a)
}

// GrantsLevelForHelping reports whether the ability rewards helping with a level
func GrantsLevelForHelping(a *chaosroom.Ability) bool {
	return hasEffect[chaosroom.LevelForHelping](a)
}

// HandLimit returns the ability's hand limit override, if any
func HandLimit(a *chaosroom.Ability) (int, bool) {
	if a == nil {
		return 0, false
	}
	for _, e := range a.Effects {
		if h, ok := e.(chaosroom.HandLimit); ok {
			return h.Limit, true
		}
	}
	return 0, false
}

// BonusAgainstMonster is what the ability adds to the player when the monster
// carries the tag named by its vsTag condition
func BonusAgainstMonster(a *chaosroom.Ability, m *chaosroom.Monster) int {
	if a == nil || !matchesVsTag(a, m) {
		return 0
	}
	total := 0
	for _, e := range a.Effects {
		if b, ok := e.(chaosroom.BonusVsMonsterTag); ok {
			total += b.Amount
		}
	}
	return total
}

// PenaltyFromMonster is what the ability adds to the monster when it carries
// the tag named by the ability's vsTag condition
func PenaltyFromMonster(a *chaosroom.Ability, m *chaosroom.Monster) int {
	if a == nil || !matchesVsTag(a, m) {
		return 0
	}
	total := 0
	for _, e := range a.Effects {
		if p, ok := e.(chaosroom.MonsterPenaltyVsTag); ok {
			total += p.Amount
		}
	}
	return total
}

// perDiscard scales amount by discards, capped by maxDiscards. No cap means no bonus.
func perDiscard(amount int, a *chaosroom.Ability, ctx *Context) int {
	limit := a.Conditions.MaxDiscards
	if limit <= 0 {
		return 0
	}
	return amount * min(ctx.discards(), limit)
}

func matchesVsTag(a *chaosroom.Ability, m *chaosroom.Monster) bool {
	if m == nil || a.Conditions.VsTag == "" {
		return false
	}
	return m.Tags.IsTrue(a.Conditions.VsTag)
}

func hasEffect[T chaosroom.Effect](a *chaosroom.Ability) bool {
	if a == nil {
		return false
	}
	for _, e := range a.Effects {
		if _, ok := e.(T); ok {
			return true
		}
	}
	return false
}
