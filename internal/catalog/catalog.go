// Package catalog loads the static card set: races, classes, the door deck of
// monsters and the treasure deck. Definitions are validated once at load time
// and turned into the immutable entities the combat engine reads.
package catalog

import (
	"strings"

	"github.com/KirkDiggler/chaos-room/internal/entities/chaosroom"
)

// Catalog is a loaded card set. It is read-only after Build returns and safe
// to share between goroutines.
type Catalog struct {
	Races     []*chaosroom.CharacterComponent
	Classes   []*chaosroom.CharacterComponent
	Monsters  []*chaosroom.Monster
	Treasures []*chaosroom.Card

	races    map[string]*chaosroom.CharacterComponent
	classes  map[string]*chaosroom.CharacterComponent
	monsters map[string]*chaosroom.Monster
	cards    map[string]*chaosroom.Card
}

// Race looks up a race by ID or, failing that, by name ignoring case
func (c *Catalog) Race(idOrName string) (*chaosroom.CharacterComponent, bool) {
	return lookupComponent(c.races, c.Races, idOrName)
}

// Class looks up a class by ID or, failing that, by name ignoring case
func (c *Catalog) Class(idOrName string) (*chaosroom.CharacterComponent, bool) {
	return lookupComponent(c.classes, c.Classes, idOrName)
}

// Monster looks up a monster by ID
func (c *Catalog) Monster(id string) (*chaosroom.Monster, bool) {
	m, ok := c.monsters[id]
	return m, ok
}

// Treasure looks up a treasure card by ID
func (c *Catalog) Treasure(id string) (*chaosroom.Card, bool) {
	card, ok := c.cards[id]
	return card, ok
}

func lookupComponent(
	index map[string]*chaosroom.CharacterComponent,
	all []*chaosroom.CharacterComponent,
	idOrName string,
) (*chaosroom.CharacterComponent, bool) {
	if comp, ok := index[idOrName]; ok {
		return comp, true
	}
	for _, comp := range all {
		if strings.EqualFold(comp.Name, idOrName) {
			return comp, true
		}
	}
	return nil, false
}
