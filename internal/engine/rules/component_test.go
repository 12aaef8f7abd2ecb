package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/chaos-room/internal/engine/rules"
	"github.com/KirkDiggler/chaos-room/internal/entities/chaosroom"
)

func TestComponentAggregation(t *testing.T) {
	berserk := chaosroom.NewAbility("a1", "Berserk", "",
		values{chaosroom.EffectKeyCombatBonusPerDiscard: chaosroom.IntValue(1)},
		values{chaosroom.ConditionKeyMaxDiscards: chaosroom.IntValue(3)})
	sprint := chaosroom.NewAbility("a2", "Sprint", "",
		values{
			chaosroom.EffectKeyEscapeBonus:           chaosroom.IntValue(1),
			chaosroom.EffectKeyCombatBonusPerDiscard: chaosroom.IntValue(5),
		},
		values{
			chaosroom.ConditionKeyUsableIn:    chaosroom.StringValue("escape"),
			chaosroom.ConditionKeyMaxDiscards: chaosroom.IntValue(3),
		})
	tie := chaosroom.NewAbility("a3", "Stubborn", "",
		values{chaosroom.EffectKeyWinOnTie: chaosroom.BoolValue(true)}, nil)

	warrior := chaosroom.NewClass("warrior", "Warrior", "").
		AddAbility(berserk).
		AddAbility(sprint).
		AddAbility(tie)

	ctx := &rules.Context{CardsDiscarded: 2}

	assert.Equal(t, 2, rules.TotalCombatBonus(warrior, ctx), "escape-only abilities do not add combat bonus")
	assert.Equal(t, 1, rules.TotalEscapeBonus(warrior, ctx))
	assert.True(t, rules.HasWinOnTie(warrior))
	assert.False(t, rules.HasSecondEscapeAttempt(warrior))
	assert.False(t, rules.HasLevelForHelping(warrior))
	assert.Equal(t, 0, rules.HandLimitModifier(warrior))
}

func TestComponentEscapeBonusIsNotPhaseGated(t *testing.T) {
	combatOnly := chaosroom.NewAbility("a1", "Nimble", "",
		values{chaosroom.EffectKeyEscapeBonus: chaosroom.IntValue(2)},
		values{chaosroom.ConditionKeyUsableIn: chaosroom.StringValue("combat")})
	elf := chaosroom.NewRace("elf", "Elf", "").AddAbility(combatOnly)

	assert.Equal(t, 2, rules.TotalEscapeBonus(elf, &rules.Context{}))
}

func TestNilComponent(t *testing.T) {
	ctx := &rules.Context{CardsDiscarded: 3}

	assert.Equal(t, 0, rules.TotalCombatBonus(nil, ctx))
	assert.Equal(t, 0, rules.TotalEscapeBonus(nil, ctx))
	assert.False(t, rules.HasWinOnTie(nil))
	assert.False(t, rules.HasSecondEscapeAttempt(nil))
	assert.Equal(t, 0, rules.HandLimitModifier(nil))
	assert.Equal(t, 0, rules.TotalBonusAgainstMonster(nil, &chaosroom.Monster{}))
	assert.Equal(t, 0, rules.TotalPenaltyFromMonster(nil, nil))
}

func TestHandLimitModifierFirstMatch(t *testing.T) {
	dwarf := chaosroom.NewRace("dwarf", "Dwarf", "").
		AddAbility(chaosroom.NewAbility("a1", "Packer", "", values{chaosroom.EffectKeyHandLimit: chaosroom.IntValue(6)}, nil)).
		AddAbility(chaosroom.NewAbility("a2", "Hoarder", "", values{chaosroom.EffectKeyHandLimit: chaosroom.IntValue(8)}, nil))

	assert.Equal(t, 6, rules.HandLimitModifier(dwarf))
}
