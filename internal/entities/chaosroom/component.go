package chaosroom

import (
	"fmt"
	"strings"
)

// ComponentKind tells a race from a class
type ComponentKind string

// Component kinds
const (
	KindRace  ComponentKind = "race"
	KindClass ComponentKind = "class"
)

// CharacterComponent is a race or a class: a named, ordered list of abilities.
// Components belong to the catalog; players only point at them.
type CharacterComponent struct {
	ID          string
	Name        string
	Kind        ComponentKind
	Description string
	Abilities   []*Ability
}

// NewRace creates an empty race
func NewRace(id, name, description string) *CharacterComponent {
	return &CharacterComponent{ID: id, Name: name, Kind: KindRace, Description: description}
}

// NewClass creates an empty class
func NewClass(id, name, description string) *CharacterComponent {
	return &CharacterComponent{ID: id, Name: name, Kind: KindClass, Description: description}
}

// AddAbility appends an ability. Call it while building the catalog only.
func (c *CharacterComponent) AddAbility(a *Ability) *CharacterComponent {
	c.Abilities = append(c.Abilities, a)
	return c
}

// DisplayName returns the name, or an empty string for a nil component
func (c *CharacterComponent) DisplayName() string {
	if c == nil {
		return ""
	}
	return c.Name
}

// HandLimitModifier returns the first declared hand limit, or 0 when no
// ability declares one. Later declarations are ignored.
func (c *CharacterComponent) HandLimitModifier() int {
	if c == nil {
		return 0
	}
	for _, a := range c.Abilities {
		for _, e := range a.Effects {
			if h, ok := e.(HandLimit); ok {
				return h.Limit
			}
		}
	}
	return 0
}

func (c *CharacterComponent) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s (%s): %s\n", c.Name, c.Kind, c.Description)
	for _, a := range c.Abilities {
		fmt.Fprintf(&sb, "  - %s\n", a)
	}
	return sb.String()
}
