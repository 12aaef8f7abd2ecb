package chaosroom

import "fmt"

// CardType groups cards by deck and use
type CardType string

// Card types
const (
	CardTypeMonster   CardType = "monster"
	CardTypeRace      CardType = "race"
	CardTypeClass     CardType = "class"
	CardTypeEquipment CardType = "equipment"
	CardTypeBonus     CardType = "bonus"
	CardTypeTreasure  CardType = "treasure"
)

// Card is a card held in hand or played in front of a player.
// Only the fields relevant to its type are set.
type Card struct {
	ID          string
	Name        string
	Type        CardType
	Description string

	// equipment
	Bonus int
	Slot  string
	Value int

	// one-shot bonus
	BattleBonus   int
	TreasureBonus int
}

// IsEquipment reports whether the card can be equipped
func (c *Card) IsEquipment() bool {
	return c.Type == CardTypeEquipment
}

func (c *Card) String() string {
	switch c.Type {
	case CardTypeEquipment:
		return fmt.Sprintf("%s [slot %s, +%d]", c.Name, c.Slot, c.Bonus)
	case CardTypeBonus:
		return fmt.Sprintf("%s [+%d in combat]", c.Name, c.BattleBonus)
	default:
		return c.Name
	}
}
