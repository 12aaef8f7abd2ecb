package testutils

import (
	"github.com/KirkDiggler/chaos-room/internal/entities/chaosroom"
)

// Fixture names
const (
	TestPlayerName = "Thorin Oakenshield"
	TestHelperName = "Bilbo"
)

// CreateTestPlayer creates a player at the given level with no race or class
func CreateTestPlayer(id string, level int) *chaosroom.Player {
	p := chaosroom.NewPlayer(id, TestPlayerName)
	p.SetLevel(level)
	return p
}

// CreateTestHelper creates a helper at the given level
func CreateTestHelper(id string, level int) *chaosroom.Player {
	p := chaosroom.NewPlayer(id, TestHelperName)
	p.SetLevel(level)
	return p
}

// CreateTestMonster creates an untagged monster losing one level on defeat
func CreateTestMonster(id string, level int) *chaosroom.Monster {
	return &chaosroom.Monster{
		ID:           id,
		Name:         "Test Monster " + id,
		Level:        level,
		Treasure:     1,
		LevelsGained: 1,
		NastyEffect:  "Lose a level",
		LevelsLost:   chaosroom.FixedLevelsLost(1),
	}
}

// CreateTestMonsterWithTags creates a test monster carrying the given boolean tags
func CreateTestMonsterWithTags(id string, level int, tags ...string) *chaosroom.Monster {
	m := CreateTestMonster(id, level)
	m.Tags = chaosroom.Tags{}
	for _, t := range tags {
		m.Tags[t] = chaosroom.BoolValue(true)
	}
	return m
}

// CreateTestRace creates a race with one ability holding the given effects
func CreateTestRace(name string, effects map[string]chaosroom.Value, conditions map[string]chaosroom.Value) *chaosroom.CharacterComponent {
	r := chaosroom.NewRace(name, name, "test race")
	if len(effects) > 0 {
		r.AddAbility(chaosroom.NewAbility(name+"-ability", name+" ability", "", effects, conditions))
	}
	return r
}

// CreateTestClass creates a class with one ability holding the given effects
func CreateTestClass(name string, effects map[string]chaosroom.Value, conditions map[string]chaosroom.Value) *chaosroom.CharacterComponent {
	c := chaosroom.NewClass(name, name, "test class")
	if len(effects) > 0 {
		c.AddAbility(chaosroom.NewAbility(name+"-ability", name+" ability", "", effects, conditions))
	}
	return c
}
