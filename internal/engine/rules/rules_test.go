package rules_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/chaos-room/internal/engine/rules"
	"github.com/KirkDiggler/chaos-room/internal/entities/chaosroom"
)

type values = map[string]chaosroom.Value

type ResolverTestSuite struct {
	suite.Suite
	zombie *chaosroom.Monster
	troll  *chaosroom.Monster
}

func TestResolverTestSuite(t *testing.T) {
	suite.Run(t, new(ResolverTestSuite))
}

func (s *ResolverTestSuite) SetupTest() {
	s.zombie = &chaosroom.Monster{
		ID:    "m1",
		Name:  "Zombie",
		Level: 4,
		Tags:  chaosroom.Tags{chaosroom.TagUndead: chaosroom.BoolValue(true)},
	}
	s.troll = &chaosroom.Monster{ID: "m2", Name: "Troll", Level: 10}
}

func (s *ResolverTestSuite) TestUsability() {
	combat := chaosroom.NewAbility("a", "A", "", nil, nil)
	explicit := chaosroom.NewAbility("b", "B", "", nil, values{chaosroom.ConditionKeyUsableIn: chaosroom.StringValue("combat")})
	escape := chaosroom.NewAbility("c", "C", "", nil, values{chaosroom.ConditionKeyUsableIn: chaosroom.StringValue("escape")})

	s.True(rules.IsUsableInCombat(combat))
	s.False(rules.IsUsableInEscape(combat))
	s.True(rules.IsUsableInCombat(explicit))
	s.False(rules.IsUsableInCombat(escape))
	s.True(rules.IsUsableInEscape(escape))
	s.False(rules.IsUsableInCombat(nil))
}

func (s *ResolverTestSuite) TestCombatBonusPerDiscardIsCapped() {
	berserk := chaosroom.NewAbility("a", "Berserk", "",
		values{chaosroom.EffectKeyCombatBonusPerDiscard: chaosroom.IntValue(2)},
		values{chaosroom.ConditionKeyMaxDiscards: chaosroom.IntValue(3)})

	prev := 0
	for discards := 0; discards <= 6; discards++ {
		ctx := &rules.Context{Monster: s.troll, CardsDiscarded: discards}
		bonus := rules.CombatBonus(berserk, ctx)
		s.GreaterOrEqual(bonus, prev)
		s.LessOrEqual(bonus, 6)
		if discards >= 3 {
			s.Equal(6, bonus)
		}
		prev = bonus
	}
}

func (s *ResolverTestSuite) TestPerDiscardWithoutCapIsInert() {
	berserk := chaosroom.NewAbility("a", "Berserk", "",
		values{chaosroom.EffectKeyCombatBonusPerDiscard: chaosroom.IntValue(2)}, nil)

	s.Equal(0, rules.CombatBonus(berserk, &rules.Context{CardsDiscarded: 3}))
}

func (s *ResolverTestSuite) TestBonusVsUndead() {
	turning := chaosroom.NewAbility("a", "Turning", "",
		values{chaosroom.EffectKeyBonusPerDiscardVsUndead: chaosroom.IntValue(3)},
		values{chaosroom.ConditionKeyMaxDiscards: chaosroom.IntValue(3)})

	s.Equal(6, rules.CombatBonus(turning, &rules.Context{Monster: s.zombie, CardsDiscarded: 2}))
	s.Equal(0, rules.CombatBonus(turning, &rules.Context{Monster: s.troll, CardsDiscarded: 2}))
	s.Equal(0, rules.CombatBonus(turning, nil))
}

func (s *ResolverTestSuite) TestEscapeBonus() {
	flee := chaosroom.NewAbility("a", "Flee", "", values{
		chaosroom.EffectKeyEscapeBonus:          chaosroom.IntValue(1),
		chaosroom.EffectKeyEscapeBonusPerDiscard: chaosroom.IntValue(1),
	}, values{
		chaosroom.ConditionKeyUsableIn:    chaosroom.StringValue("escape"),
		chaosroom.ConditionKeyMaxDiscards: chaosroom.IntValue(2),
	})

	s.Equal(1, rules.EscapeBonus(flee, &rules.Context{}))
	s.Equal(3, rules.EscapeBonus(flee, &rules.Context{CardsDiscarded: 5}))
	s.Equal(0, rules.CombatBonus(flee, &rules.Context{CardsDiscarded: 5}))
}

func (s *ResolverTestSuite) TestEscapeBonusIgnoresRequiresFirstFail() {
	lucky := chaosroom.NewAbility("a", "Lucky", "",
		values{chaosroom.EffectKeyEscapeBonus: chaosroom.IntValue(2)},
		values{chaosroom.ConditionKeyRequiresFirstFail: chaosroom.BoolValue(true)})

	s.True(lucky.Conditions.RequiresFirstFail)
	s.Equal(2, rules.EscapeBonus(lucky, &rules.Context{}))
	s.Equal(2, rules.EscapeBonus(lucky, &rules.Context{FirstEscapeFailed: true}))
	s.Equal(2, rules.EscapeBonus(lucky, nil))
}

func (s *ResolverTestSuite) TestUnknownEffectsAreIgnored() {
	odd := chaosroom.NewAbility("a", "Odd", "", values{
		"summonDragon":                 chaosroom.IntValue(99),
		chaosroom.EffectKeyEscapeBonus: chaosroom.StringValue("lots"),
	}, nil)

	ctx := &rules.Context{Monster: s.zombie, CardsDiscarded: 3}
	s.Equal(0, rules.CombatBonus(odd, ctx))
	s.Equal(0, rules.EscapeBonus(odd, ctx))
	s.False(rules.WinsOnTie(odd))
	_, ok := rules.HandLimit(odd)
	s.False(ok)
}

func (s *ResolverTestSuite) TestFlags() {
	ability := chaosroom.NewAbility("a", "All", "", values{
		chaosroom.EffectKeyWinOnTie:            chaosroom.BoolValue(true),
		chaosroom.EffectKeySecondEscapeAttempt: chaosroom.BoolValue(true),
		chaosroom.EffectKeyLevelForHelping:     chaosroom.BoolValue(true),
		chaosroom.EffectKeyHandLimit:           chaosroom.IntValue(7),
	}, nil)

	s.True(rules.WinsOnTie(ability))
	s.True(rules.AllowsSecondEscape(ability))
	s.True(rules.GrantsLevelForHelping(ability))
	limit, ok := rules.HandLimit(ability)
	s.True(ok)
	s.Equal(7, limit)
}

func (s *ResolverTestSuite) TestBonusAgainstTaggedMonster() {
	slayer := chaosroom.NewAbility("a", "Slayer", "",
		values{
			chaosroom.EffectKeyBonusVsMonsterTag:   chaosroom.IntValue(3),
			chaosroom.EffectKeyMonsterPenaltyVsTag: chaosroom.IntValue(1),
		},
		values{chaosroom.ConditionKeyVsTag: chaosroom.StringValue(chaosroom.TagUndead)})

	s.Equal(3, rules.BonusAgainstMonster(slayer, s.zombie))
	s.Equal(1, rules.PenaltyFromMonster(slayer, s.zombie))
	s.Equal(0, rules.BonusAgainstMonster(slayer, s.troll))
	s.Equal(0, rules.PenaltyFromMonster(slayer, nil))
}
