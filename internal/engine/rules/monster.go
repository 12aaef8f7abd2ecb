package rules

import (
	"sort"
	"strings"
	"unicode"

	"github.com/KirkDiggler/chaos-room/internal/entities/chaosroom"
)

// IsUndead reports the undead tag
func IsUndead(m *chaosroom.Monster) bool {
	return m != nil && m.Tags.IsTrue(chaosroom.TagUndead)
}

// PreventsEscape reports the noEscape tag
func PreventsEscape(m *chaosroom.Monster) bool {
	return m != nil && m.Tags.IsTrue(chaosroom.TagNoEscape)
}

// PreventsHelp reports the noHelp tag
func PreventsHelp(m *chaosroom.Monster) bool {
	return m != nil && m.Tags.IsTrue(chaosroom.TagNoHelp)
}

// IsMagicResistant reports the magicResist tag
func IsMagicResistant(m *chaosroom.Monster) bool {
	return m != nil && m.Tags.IsTrue(chaosroom.TagMagicResist)
}

// EscapeModifier is added to every escape roll against the monster.
// Negative values make escape harder.
func EscapeModifier(m *chaosroom.Monster) int {
	if m == nil {
		return 0
	}
	return tagInt(m.Tags, chaosroom.TagEscapeBonus)
}

// BonusVs is the monster's level bonus against a race or class name. The
// exact key ("vsElf" for "elf") is tried first, then any vs key whose name
// contains the given one, ignoring case.
func BonusVs(m *chaosroom.Monster, name string) int {
	if m == nil || name == "" || len(m.Tags) == 0 {
		return 0
	}

	if v, ok := m.Tags.Get(chaosroom.TagVsPrefix + capitalize(name)); ok {
		n, _ := v.Int()
		return n
	}

	lowered := strings.ToLower(name)
	keys := make([]string, 0, len(m.Tags))
	for k := range m.Tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		lk := strings.ToLower(k)
		if strings.HasPrefix(lk, chaosroom.TagVsPrefix) && strings.Contains(lk, lowered) {
			if n, ok := m.Tags[k].Int(); ok {
				return n
			}
		}
	}
	return 0
}

// BonusVsRace is BonusVs for the race's name
func BonusVsRace(m *chaosroom.Monster, race *chaosroom.CharacterComponent) int {
	return BonusVs(m, race.DisplayName())
}

// BonusVsClass is BonusVs for the class's name
func BonusVsClass(m *chaosroom.Monster, class *chaosroom.CharacterComponent) int {
	return BonusVs(m, class.DisplayName())
}

// LevelLoss is the levels a defeat costs. When RollRequired is set the
// caller rolls a die with MaxRoll sides and Levels is zero.
type LevelLoss struct {
	Levels       int
	RollRequired bool
	MaxRoll      int
}

// CalculateLevelsLost resolves the monster's levelsLost for a player at
// currentLevel when the lowest level at the table is lowestLevel.
func CalculateLevelsLost(m *chaosroom.Monster, lowestLevel, currentLevel int) LevelLoss {
	if m == nil {
		return LevelLoss{}
	}
	if !m.LevelsLost.Dynamic {
		return LevelLoss{Levels: max(0, m.LevelsLost.Amount)}
	}
	if IsMagicResistant(m) {
		return LevelLoss{Levels: max(0, currentLevel-lowestLevel)}
	}
	return LevelLoss{RollRequired: true, MaxRoll: chaosroom.DieSides}
}

func tagInt(tags chaosroom.Tags, key string) int {
	v, ok := tags.Get(key)
	if !ok {
		return 0
	}
	n, _ := v.Int()
	return n
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
