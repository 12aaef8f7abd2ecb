package chaosroom

import (
	"sort"
)

// Effect is one typed capability granted by an ability. The set of variants
// is closed; keys the game does not know become Unknown and every resolver
// treats Unknown as a no-op.
type Effect interface {
	// Key returns the data key the effect was declared under
	Key() string
	isEffect()
}

// CombatBonusPerDiscard adds Amount per card discarded, up to maxDiscards
type CombatBonusPerDiscard struct{ Amount int }

// BonusPerDiscardVsUndead is CombatBonusPerDiscard that only applies against undead
type BonusPerDiscardVsUndead struct{ Amount int }

// EscapeBonus adds Amount to every escape roll
type EscapeBonus struct{ Amount int }

// EscapeBonusPerDiscard adds Amount to escape rolls per card discarded, up to maxDiscards
type EscapeBonusPerDiscard struct{ Amount int }

// WinOnTie turns a tied fight into a win
type WinOnTie struct{}

// SecondEscapeAttempt allows one more escape roll after the first fails
type SecondEscapeAttempt struct{}

// HandLimit overrides the number of cards a player may hold
type HandLimit struct{ Limit int }

// LevelForHelping grants the helper a level when the fight is won
type LevelForHelping struct{}

// BonusVsMonsterTag adds Amount to the player when the monster carries the vsTag condition's tag
type BonusVsMonsterTag struct{ Amount int }

// MonsterPenaltyVsTag adds Amount to the monster when it carries the vsTag condition's tag
type MonsterPenaltyVsTag struct{ Amount int }

// Unknown keeps an effect the game does not understand
type Unknown struct {
	RawKey string
	Value  Value
}

func (CombatBonusPerDiscard) Key() string   { return EffectKeyCombatBonusPerDiscard }
func (BonusPerDiscardVsUndead) Key() string { return EffectKeyBonusPerDiscardVsUndead }
func (EscapeBonus) Key() string             { return EffectKeyEscapeBonus }
func (EscapeBonusPerDiscard) Key() string   { return EffectKeyEscapeBonusPerDiscard }
func (WinOnTie) Key() string                { return EffectKeyWinOnTie }
func (SecondEscapeAttempt) Key() string     { return EffectKeySecondEscapeAttempt }
func (HandLimit) Key() string               { return EffectKeyHandLimit }
func (LevelForHelping) Key() string         { return EffectKeyLevelForHelping }
func (BonusVsMonsterTag) Key() string       { return EffectKeyBonusVsMonsterTag }
func (MonsterPenaltyVsTag) Key() string     { return EffectKeyMonsterPenaltyVsTag }
func (u Unknown) Key() string               { return u.RawKey }

func (CombatBonusPerDiscard) isEffect()   {}
func (BonusPerDiscardVsUndead) isEffect() {}
func (EscapeBonus) isEffect()             {}
func (EscapeBonusPerDiscard) isEffect()   {}
func (WinOnTie) isEffect()                {}
func (SecondEscapeAttempt) isEffect()     {}
func (HandLimit) isEffect()               {}
func (LevelForHelping) isEffect()         {}
func (BonusVsMonsterTag) isEffect()       {}
func (MonsterPenaltyVsTag) isEffect()     {}
func (Unknown) isEffect()                 {}

// ParseEffect converts one raw effect entry into its variant. A flag declared
// false yields ok=false: the ability simply does not have it. A known key with
// a value of the wrong type becomes Unknown.
func ParseEffect(key string, value Value) (effect Effect, ok bool) {
	unknown := Unknown{RawKey: key, Value: value}

	amount, isInt := value.Int()
	flag, isBool := value.Bool()

	switch key {
	case EffectKeyCombatBonusPerDiscard:
		if isInt {
			return CombatBonusPerDiscard{Amount: amount}, true
		}
	case EffectKeyBonusPerDiscardVsUndead:
		if isInt {
			return BonusPerDiscardVsUndead{Amount: amount}, true
		}
	case EffectKeyEscapeBonus:
		if isInt {
			return EscapeBonus{Amount: amount}, true
		}
	case EffectKeyEscapeBonusPerDiscard:
		if isInt {
			return EscapeBonusPerDiscard{Amount: amount}, true
		}
	case EffectKeyHandLimit:
		if isInt {
			return HandLimit{Limit: amount}, true
		}
	case EffectKeyBonusVsMonsterTag:
		if isInt {
			return BonusVsMonsterTag{Amount: amount}, true
		}
	case EffectKeyMonsterPenaltyVsTag:
		if isInt {
			return MonsterPenaltyVsTag{Amount: amount}, true
		}
	case EffectKeyWinOnTie:
		if isBool {
			return WinOnTie{}, flag
		}
	case EffectKeySecondEscapeAttempt:
		if isBool {
			return SecondEscapeAttempt{}, flag
		}
	case EffectKeyLevelForHelping:
		if isBool {
			return LevelForHelping{}, flag
		}
		// older card data stores the number of levels granted
		if isInt {
			return LevelForHelping{}, amount > 0
		}
	}

	return unknown, true
}

// ParseEffects converts a raw effect map in sorted key order so the result
// does not depend on map iteration.
func ParseEffects(raw map[string]Value) []Effect {
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	effects := make([]Effect, 0, len(keys))
	for _, k := range keys {
		if e, ok := ParseEffect(k, raw[k]); ok {
			effects = append(effects, e)
		}
	}
	return effects
}
