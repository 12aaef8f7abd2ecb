package chaosroom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/chaos-room/internal/entities/chaosroom"
)

func TestParseEffect(t *testing.T) {
	tests := []struct {
		name   string
		key    string
		value  chaosroom.Value
		want   chaosroom.Effect
		wantOK bool
	}{
		{
			name:   "combat bonus per discard",
			key:    chaosroom.EffectKeyCombatBonusPerDiscard,
			value:  chaosroom.IntValue(2),
			want:   chaosroom.CombatBonusPerDiscard{Amount: 2},
			wantOK: true,
		},
		{
			name:   "flat escape bonus",
			key:    chaosroom.EffectKeyEscapeBonus,
			value:  chaosroom.IntValue(1),
			want:   chaosroom.EscapeBonus{Amount: 1},
			wantOK: true,
		},
		{
			name:   "win on tie",
			key:    chaosroom.EffectKeyWinOnTie,
			value:  chaosroom.BoolValue(true),
			want:   chaosroom.WinOnTie{},
			wantOK: true,
		},
		{
			name:   "flag declared false is absent",
			key:    chaosroom.EffectKeySecondEscapeAttempt,
			value:  chaosroom.BoolValue(false),
			want:   chaosroom.SecondEscapeAttempt{},
			wantOK: false,
		},
		{
			name:   "level for helping as a number",
			key:    chaosroom.EffectKeyLevelForHelping,
			value:  chaosroom.IntValue(1),
			want:   chaosroom.LevelForHelping{},
			wantOK: true,
		},
		{
			name:   "wrong value type",
			key:    chaosroom.EffectKeyHandLimit,
			value:  chaosroom.StringValue("lots"),
			want:   chaosroom.Unknown{RawKey: chaosroom.EffectKeyHandLimit, Value: chaosroom.StringValue("lots")},
			wantOK: true,
		},
		{
			name:   "unknown key",
			key:    "teleport",
			value:  chaosroom.BoolValue(true),
			want:   chaosroom.Unknown{RawKey: "teleport", Value: chaosroom.BoolValue(true)},
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := chaosroom.ParseEffect(tt.key, tt.value)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.key, got.Key())
		})
	}
}

func TestParseEffectsSorted(t *testing.T) {
	effects := chaosroom.ParseEffects(map[string]chaosroom.Value{
		chaosroom.EffectKeyWinOnTie:        chaosroom.BoolValue(true),
		chaosroom.EffectKeyEscapeBonus:     chaosroom.IntValue(1),
		chaosroom.EffectKeyHandLimit:       chaosroom.IntValue(6),
		chaosroom.EffectKeyLevelForHelping: chaosroom.BoolValue(false),
	})

	require.Len(t, effects, 3)
	assert.Equal(t, chaosroom.EscapeBonus{Amount: 1}, effects[0])
	assert.Equal(t, chaosroom.HandLimit{Limit: 6}, effects[1])
	assert.Equal(t, chaosroom.WinOnTie{}, effects[2])
}

func TestParseConditions(t *testing.T) {
	c := chaosroom.ParseConditions(map[string]chaosroom.Value{
		chaosroom.ConditionKeyUsableIn:    chaosroom.StringValue("escape"),
		chaosroom.ConditionKeyMaxDiscards: chaosroom.IntValue(3),
		chaosroom.ConditionKeyVsTag:       chaosroom.StringValue("undead"),
		"moonPhase":                       chaosroom.StringValue("full"),
	})

	assert.Equal(t, chaosroom.PhaseEscape, c.UsableIn)
	assert.Equal(t, 3, c.MaxDiscards)
	assert.Equal(t, "undead", c.VsTag)
	assert.False(t, c.RequiresFirstFail)
	assert.Equal(t, map[string]chaosroom.Value{"moonPhase": chaosroom.StringValue("full")}, c.Unknown)
}

func TestValueOf(t *testing.T) {
	v, ok := chaosroom.ValueOf(3.0)
	require.True(t, ok)
	n, isInt := v.Int()
	assert.True(t, isInt)
	assert.Equal(t, 3, n)

	_, ok = chaosroom.ValueOf(2.5)
	assert.False(t, ok)

	_, ok = chaosroom.ValueOf([]int{1})
	assert.False(t, ok)

	v, ok = chaosroom.ValueOf("dynamic")
	require.True(t, ok)
	assert.False(t, v.IsTrue())
	assert.Equal(t, "dynamic", v.Interface())
}
