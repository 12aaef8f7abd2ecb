package chaosroom

import "fmt"

// Phase names the part of a fight an ability applies to
type Phase string

// Phases
const (
	PhaseCombat Phase = "combat"
	PhaseEscape Phase = "escape"
)

// Conditions restrict when and how far an ability applies
type Conditions struct {
	// UsableIn is empty when the data did not say; that counts as combat
	UsableIn Phase

	// MaxDiscards caps discard-scaled effects. Zero makes them inert.
	MaxDiscards int

	// VsTag names the monster tag BonusVsMonsterTag and MonsterPenaltyVsTag require
	VsTag string

	RequiresFirstFail bool

	Unknown map[string]Value
}

// ParseConditions converts a raw condition map. Values of the wrong type are
// kept under Unknown instead of failing.
func ParseConditions(raw map[string]Value) Conditions {
	var c Conditions
	for key, value := range raw {
		switch key {
		case ConditionKeyUsableIn:
			if s, ok := value.Str(); ok {
				c.UsableIn = Phase(s)
				continue
			}
		case ConditionKeyMaxDiscards:
			if n, ok := value.Int(); ok {
				c.MaxDiscards = n
				continue
			}
		case ConditionKeyVsTag:
			if s, ok := value.Str(); ok {
				c.VsTag = s
				continue
			}
		case ConditionKeyRequiresFirstFail:
			if b, ok := value.Bool(); ok {
				c.RequiresFirstFail = b
				continue
			}
		}
		if c.Unknown == nil {
			c.Unknown = make(map[string]Value)
		}
		c.Unknown[key] = value
	}
	return c
}

// Ability is one race or class trait. Abilities are built once when the card
// data is loaded and shared read-only by every player with that race or class.
type Ability struct {
	ID          string
	Name        string
	Description string
	Effects     []Effect
	Conditions  Conditions
}

// NewAbility builds an ability from raw effect and condition maps
func NewAbility(id, name, description string, effects, conditions map[string]Value) *Ability {
	return &Ability{
		ID:          id,
		Name:        name,
		Description: description,
		Effects:     ParseEffects(effects),
		Conditions:  ParseConditions(conditions),
	}
}

func (a *Ability) String() string {
	return fmt.Sprintf("%s: %s", a.Name, a.Description)
}
