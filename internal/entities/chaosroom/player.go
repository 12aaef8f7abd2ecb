package chaosroom

import "fmt"

// Player is a seat at the table. Level is always kept within [MinLevel, MaxLevel].
type Player struct {
	ID   string
	Name string

	// Inventory is the hand
	Inventory []*Card

	// PlayerDeck holds equipped and in-play cards
	PlayerDeck []*Card

	level          int
	race           *CharacterComponent
	class          *CharacterComponent
	maxCardsInHand int
}

// NewPlayer creates a level 1 player with no race or class
func NewPlayer(id, name string) *Player {
	return &Player{
		ID:             id,
		Name:           name,
		level:          MinLevel,
		maxCardsInHand: DefaultHandLimit,
	}
}

// GetID implements core.Entity
func (p *Player) GetID() string {
	return p.ID
}

// GetType implements core.Entity
func (p *Player) GetType() string {
	return EntityTypePlayer
}

// Level returns the current level
func (p *Player) Level() int {
	return p.level
}

// SetLevel sets the level, clamped to [MinLevel, MaxLevel]
func (p *Player) SetLevel(level int) {
	p.level = clampLevel(level)
}

// AddLevel raises the level by n and returns how many levels were actually gained.
// Non-positive n does nothing.
func (p *Player) AddLevel(n int) int {
	if n <= 0 {
		return 0
	}
	before := p.level
	if n >= MaxLevel-p.level {
		p.level = MaxLevel
	} else {
		p.level += n
	}
	return p.level - before
}

// LoseLevel lowers the level by n and returns how many levels were actually lost.
// Non-positive n does nothing.
func (p *Player) LoseLevel(n int) int {
	if n <= 0 {
		return 0
	}
	before := p.level
	if n >= p.level-MinLevel {
		p.level = MinLevel
	} else {
		p.level -= n
	}
	return before - p.level
}

// HasWon reports whether the player reached the winning level
func (p *Player) HasWon() bool {
	return p.level >= MaxLevel
}

// Race may be nil
func (p *Player) Race() *CharacterComponent {
	return p.race
}

// Class may be nil
func (p *Player) Class() *CharacterComponent {
	return p.class
}

// SetRace changes the race and recomputes the hand limit
func (p *Player) SetRace(race *CharacterComponent) {
	p.race = race
	p.maxCardsInHand = handLimitFor(p.race, p.class)
}

// SetClass changes the class and recomputes the hand limit
func (p *Player) SetClass(class *CharacterComponent) {
	p.class = class
	p.maxCardsInHand = handLimitFor(p.race, p.class)
}

// MaxCardsInHand is the hand size limit for the current race and class
func (p *Player) MaxCardsInHand() int {
	return p.maxCardsInHand
}

// EquipmentBonus sums the bonus of every equipment card in play
func (p *Player) EquipmentBonus() int {
	total := 0
	for _, c := range p.PlayerDeck {
		if c.IsEquipment() {
			total += c.Bonus
		}
	}
	return total
}

// Strength is level plus equipment
func (p *Player) Strength() int {
	return p.level + p.EquipmentBonus()
}

// HandFull reports whether another card would exceed the hand limit
func (p *Player) HandFull() bool {
	return len(p.Inventory) >= p.maxCardsInHand
}

// AddToHand adds a card unless the hand is full
func (p *Player) AddToHand(card *Card) bool {
	if card == nil || p.HandFull() {
		return false
	}
	p.Inventory = append(p.Inventory, card)
	return true
}

// FindInHand returns the first card in hand with the given ID
func (p *Player) FindInHand(cardID string) (*Card, bool) {
	for _, c := range p.Inventory {
		if c.ID == cardID {
			return c, true
		}
	}
	return nil, false
}

// RemoveFromHand removes the first card with the given ID
func (p *Player) RemoveFromHand(cardID string) (*Card, bool) {
	for i, c := range p.Inventory {
		if c.ID == cardID {
			p.Inventory = append(p.Inventory[:i], p.Inventory[i+1:]...)
			return c, true
		}
	}
	return nil, false
}

// Equip puts an equipment card into play. An item already in the same slot
// goes back to the hand and is returned. The hand limit only gates new cards,
// so a swapped item is kept even when it leaves the hand over the limit.
func (p *Player) Equip(card *Card) (*Card, bool) {
	if card == nil || !card.IsEquipment() {
		return nil, false
	}
	var replaced *Card
	if card.Slot != "" {
		for i, c := range p.PlayerDeck {
			if c.IsEquipment() && c.Slot == card.Slot {
				replaced = c
				p.PlayerDeck = append(p.PlayerDeck[:i], p.PlayerDeck[i+1:]...)
				p.Inventory = append(p.Inventory, replaced)
				break
			}
		}
	}
	p.PlayerDeck = append(p.PlayerDeck, card)
	return replaced, true
}

func (p *Player) String() string {
	return fmt.Sprintf("%s (level %d, %s %s, strength %d)",
		p.Name, p.level, p.race.DisplayName(), p.class.DisplayName(), p.Strength())
}

func clampLevel(level int) int {
	if level < MinLevel {
		return MinLevel
	}
	if level > MaxLevel {
		return MaxLevel
	}
	return level
}

// handLimitFor picks the race override, then the class override, then the default
func handLimitFor(race, class *CharacterComponent) int {
	if n := race.HandLimitModifier(); n > 0 {
		return n
	}
	if n := class.HandLimitModifier(); n > 0 {
		return n
	}
	return DefaultHandLimit
}
