package catalog

// Definitions is the on-disk card set. The same shape is read from YAML and
// JSON files and stored in Redis.
type Definitions struct {
	Races     []ComponentDefinition `yaml:"races" json:"races"`
	Classes   []ComponentDefinition `yaml:"classes" json:"classes"`
	Monsters  []MonsterDefinition   `yaml:"monsters" json:"monsters"`
	Treasures []CardDefinition      `yaml:"treasures" json:"treasures"`
}

// ComponentDefinition describes a race or a class
type ComponentDefinition struct {
	ID          string              `yaml:"id" json:"id"`
	Name        string              `yaml:"name" json:"name"`
	Description string              `yaml:"description" json:"description,omitempty"`
	Abilities   []AbilityDefinition `yaml:"abilities" json:"abilities,omitempty"`
}

// AbilityDefinition describes one ability with raw effect and condition maps
type AbilityDefinition struct {
	ID          string         `yaml:"id" json:"id"`
	Name        string         `yaml:"name" json:"name"`
	Description string         `yaml:"description" json:"description,omitempty"`
	Effects     map[string]any `yaml:"effects" json:"effects,omitempty"`
	Conditions  map[string]any `yaml:"conditions" json:"conditions,omitempty"`
}

// MonsterDefinition describes a monster card. LevelsLost holds a number or
// the string "dynamic".
type MonsterDefinition struct {
	ID           string         `yaml:"id" json:"id"`
	Name         string         `yaml:"name" json:"name"`
	Description  string         `yaml:"description" json:"description,omitempty"`
	Level        int            `yaml:"level" json:"level"`
	Treasure     int            `yaml:"treasure" json:"treasure"`
	LevelsGained int            `yaml:"levelsGained" json:"levelsGained"`
	NastyEffect  string         `yaml:"nastyEffect" json:"nastyEffect,omitempty"`
	LevelsLost   any            `yaml:"levelsLost" json:"levelsLost,omitempty"`
	Tags         map[string]any `yaml:"tags" json:"tags,omitempty"`
}

// CardDefinition describes a treasure deck card
type CardDefinition struct {
	ID            string `yaml:"id" json:"id"`
	Name          string `yaml:"name" json:"name"`
	Type          string `yaml:"type" json:"type"`
	Description   string `yaml:"description" json:"description,omitempty"`
	Bonus         int    `yaml:"bonus" json:"bonus,omitempty"`
	BattleBonus   int    `yaml:"battleBonus" json:"battleBonus,omitempty"`
	TreasureBonus int    `yaml:"treasureBonus" json:"treasureBonus,omitempty"`
	Slot          string `yaml:"slot" json:"slot,omitempty"`
	Value         int    `yaml:"value" json:"value,omitempty"`
}
