package rules

import "github.com/KirkDiggler/chaos-room/internal/entities/chaosroom"

// TotalCombatBonus sums the combat bonus of every combat-usable ability
func TotalCombatBonus(c *chaosroom.CharacterComponent, ctx *Context) int {
	if c == nil {
		return 0
	}
	total := 0
	for _, a := range c.Abilities {
		if IsUsableInCombat(a) {
			total += CombatBonus(a, ctx)
		}
	}
	return total
}

// TotalEscapeBonus sums the escape bonus of every ability. Escape bonuses are
// not phase gated.
func TotalEscapeBonus(c *chaosroom.CharacterComponent, ctx *Context) int {
	if c == nil {
		return 0
	}
	total := 0
	for _, a := range c.Abilities {
		total += EscapeBonus(a, ctx)
	}
	return total
}

// HasWinOnTie reports whether any ability wins ties
func HasWinOnTie(c *chaosroom.CharacterComponent) bool {
	return anyAbility(c, WinsOnTie)
}

// HasSecondEscapeAttempt reports whether any ability grants a second escape roll
func HasSecondEscapeAttempt(c *chaosroom.CharacterComponent) bool {
	return anyAbility(c, AllowsSecondEscape)
}

// HasLevelForHelping reports whether any ability rewards helping
func HasLevelForHelping(c *chaosroom.CharacterComponent) bool {
	return anyAbility(c, GrantsLevelForHelping)
}

// HandLimitModifier is the first declared hand limit, or 0 for the default
func HandLimitModifier(c *chaosroom.CharacterComponent) int {
	return c.HandLimitModifier()
}

// TotalBonusAgainstMonster sums the tag-conditional bonuses of combat-usable abilities
func TotalBonusAgainstMonster(c *chaosroom.CharacterComponent, m *chaosroom.Monster) int {
	if c == nil {
		return 0
	}
	total := 0
	for _, a := range c.Abilities {
		if IsUsableInCombat(a) {
			total += BonusAgainstMonster(a, m)
		}
	}
	return total
}

// TotalPenaltyFromMonster sums what combat-usable abilities add to the monster
func TotalPenaltyFromMonster(c *chaosroom.CharacterComponent, m *chaosroom.Monster) int {
	if c == nil {
		return 0
	}
	total := 0
	for _, a := range c.Abilities {
		if IsUsableInCombat(a) {
			total += PenaltyFromMonster(a, m)
		}
	}
	return total
}

func anyAbility(c *chaosroom.CharacterComponent, pred func(*chaosroom.Ability) bool) bool {
	if c == nil {
		return false
	}
	for _, a := range c.Abilities {
		if pred(a) {
			return true
		}
	}
	return false
}
