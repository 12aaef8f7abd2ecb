package chaosroom

import "fmt"

// Tags is a monster's free-form modifier map
type Tags map[string]Value

// Get returns the tag value; missing tags report false
func (t Tags) Get(key string) (Value, bool) {
	v, ok := t[key]
	return v, ok
}

// IsTrue reports whether the tag is present and set to true
func (t Tags) IsTrue(key string) bool {
	v, ok := t[key]
	return ok && v.IsTrue()
}

// LevelsLost is either a fixed number of levels or the dynamic marker
type LevelsLost struct {
	Amount  int
	Dynamic bool
}

// FixedLevelsLost loses a set number of levels
func FixedLevelsLost(n int) LevelsLost {
	return LevelsLost{Amount: n}
}

// DynamicLevelsLost is resolved when the defeat is applied
func DynamicLevelsLost() LevelsLost {
	return LevelsLost{Dynamic: true}
}

func (l LevelsLost) String() string {
	if l.Dynamic {
		return LevelsLostDynamic
	}
	return fmt.Sprintf("%d", l.Amount)
}

// Monster is a monster card from the door deck. Level is the base strength;
// anything computed for a single fight lives on the combat session.
type Monster struct {
	ID           string
	Name         string
	Level        int
	Treasure     int
	LevelsGained int
	Description  string
	NastyEffect  string
	LevelsLost   LevelsLost
	Tags         Tags
}

// GetID implements core.Entity
func (m *Monster) GetID() string {
	return m.ID
}

// GetType implements core.Entity
func (m *Monster) GetType() string {
	return EntityTypeMonster
}

func (m *Monster) String() string {
	return fmt.Sprintf("%s (level %d): %s | bad stuff: %s | treasure %d, levels %d",
		m.Name, m.Level, m.Description, m.NastyEffect, m.Treasure, m.LevelsGained)
}
