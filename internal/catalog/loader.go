package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/chaos-room/internal/entities/chaosroom"
	"github.com/KirkDiggler/chaos-room/internal/errors"
)

//go:embed data/default.yaml
var defaultData []byte

var knownEffects = map[string]bool{
	chaosroom.EffectKeyCombatBonusPerDiscard:   true,
	chaosroom.EffectKeyBonusPerDiscardVsUndead: true,
	chaosroom.EffectKeyEscapeBonus:             true,
	chaosroom.EffectKeyEscapeBonusPerDiscard:   true,
	chaosroom.EffectKeyWinOnTie:                true,
	chaosroom.EffectKeySecondEscapeAttempt:     true,
	chaosroom.EffectKeyHandLimit:               true,
	chaosroom.EffectKeyLevelForHelping:         true,
	chaosroom.EffectKeyBonusVsMonsterTag:       true,
	chaosroom.EffectKeyMonsterPenaltyVsTag:     true,
}

// DefaultDefinitions returns the card set shipped with the binary
func DefaultDefinitions() (*Definitions, error) {
	return Parse(defaultData)
}

// Default builds the card set shipped with the binary
func Default() (*Catalog, error) {
	defs, err := DefaultDefinitions()
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse default catalog")
	}
	return Build(defs)
}

// LoadFile reads and builds a card set from a YAML or JSON file
func LoadFile(path string) (*Catalog, error) {
	defs, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Build(defs)
}

// ReadFile reads definitions from a YAML or JSON file without building them
func ReadFile(path string) (*Definitions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("catalog file %s not found", path)
		}
		return nil, errors.Wrapf(err, "failed to read catalog file %s", path)
	}

	defs, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse catalog file %s", path)
	}

	slog.Info("Catalog file loaded",
		"path", path,
		"races", len(defs.Races),
		"classes", len(defs.Classes),
		"monsters", len(defs.Monsters),
		"treasures", len(defs.Treasures))

	return defs, nil
}

// Parse decodes definitions. Documents starting with '{' are read as JSON,
// anything else as YAML. Unknown keys are ignored.
func Parse(data []byte) (*Definitions, error) {
	defs := &Definitions{}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		if err := json.Unmarshal(trimmed, defs); err != nil {
			return nil, errors.InvalidArgumentf("invalid JSON: %v", err)
		}
		return defs, nil
	}

	if err := yaml.Unmarshal(data, defs); err != nil {
		return nil, errors.InvalidArgumentf("invalid YAML: %v", err)
	}
	return defs, nil
}

// Build validates definitions and turns them into entities. Every problem is
// reported in one InvalidArgument error.
func Build(defs *Definitions) (*Catalog, error) {
	if defs == nil {
		return nil, errors.InvalidArgument("definitions are required")
	}

	vb := errors.NewValidationBuilder()
	c := &Catalog{
		races:    make(map[string]*chaosroom.CharacterComponent),
		classes:  make(map[string]*chaosroom.CharacterComponent),
		monsters: make(map[string]*chaosroom.Monster),
		cards:    make(map[string]*chaosroom.Card),
	}

	for i, def := range defs.Races {
		field := fmt.Sprintf("races[%d]", i)
		if !validateIdentity(vb, field, def.ID, def.Name) {
			continue
		}
		if _, dup := c.races[def.ID]; dup {
			vb.Fieldf(field+".id", "duplicate id %q", def.ID)
			continue
		}
		race := buildComponent(chaosroom.NewRace(def.ID, def.Name, def.Description), def, vb, field)
		c.races[def.ID] = race
		c.Races = append(c.Races, race)
	}

	for i, def := range defs.Classes {
		field := fmt.Sprintf("classes[%d]", i)
		if !validateIdentity(vb, field, def.ID, def.Name) {
			continue
		}
		if _, dup := c.classes[def.ID]; dup {
			vb.Fieldf(field+".id", "duplicate id %q", def.ID)
			continue
		}
		class := buildComponent(chaosroom.NewClass(def.ID, def.Name, def.Description), def, vb, field)
		c.classes[def.ID] = class
		c.Classes = append(c.Classes, class)
	}

	for i, def := range defs.Monsters {
		field := fmt.Sprintf("monsters[%d]", i)
		if !validateIdentity(vb, field, def.ID, def.Name) {
			continue
		}
		if _, dup := c.monsters[def.ID]; dup {
			vb.Fieldf(field+".id", "duplicate id %q", def.ID)
			continue
		}
		m, ok := buildMonster(def, vb, field)
		if !ok {
			continue
		}
		c.monsters[def.ID] = m
		c.Monsters = append(c.Monsters, m)
	}

	for i, def := range defs.Treasures {
		field := fmt.Sprintf("treasures[%d]", i)
		if !validateIdentity(vb, field, def.ID, def.Name) {
			continue
		}
		if _, dup := c.cards[def.ID]; dup {
			vb.Fieldf(field+".id", "duplicate id %q", def.ID)
			continue
		}
		card, ok := buildCard(def, vb, field)
		if !ok {
			continue
		}
		c.cards[def.ID] = card
		c.Treasures = append(c.Treasures, card)
	}

	if err := vb.Build(); err != nil {
		return nil, err
	}
	return c, nil
}

func validateIdentity(vb *errors.ValidationBuilder, field, id, name string) bool {
	ok := true
	if id == "" {
		vb.RequiredField(field + ".id")
		ok = false
	}
	if name == "" {
		vb.RequiredField(field + ".name")
		ok = false
	}
	return ok
}

func buildComponent(
	comp *chaosroom.CharacterComponent,
	def ComponentDefinition,
	vb *errors.ValidationBuilder,
	field string,
) *chaosroom.CharacterComponent {
	for j, a := range def.Abilities {
		abilityField := fmt.Sprintf("%s.abilities[%d]", field, j)
		if a.ID == "" {
			vb.RequiredField(abilityField + ".id")
			continue
		}
		effects := toValues(a.Effects, abilityField+".effects")
		for key := range effects {
			if !knownEffects[key] {
				slog.Warn("Ignoring unknown ability effect",
					"component", def.ID,
					"ability", a.ID,
					"effect", key)
			}
		}
		comp.AddAbility(chaosroom.NewAbility(a.ID, a.Name, a.Description,
			effects, toValues(a.Conditions, abilityField+".conditions")))
	}
	return comp
}

func buildMonster(def MonsterDefinition, vb *errors.ValidationBuilder, field string) (*chaosroom.Monster, bool) {
	valid := def.Level >= 0 && def.Treasure >= 0 && def.LevelsGained >= 0
	errors.ValidateNonNegative(field+".level", def.Level, vb)
	errors.ValidateNonNegative(field+".treasure", def.Treasure, vb)
	errors.ValidateNonNegative(field+".levelsGained", def.LevelsGained, vb)

	lost, ok := parseLevelsLost(def.LevelsLost)
	if !ok {
		vb.InvalidField(field+".levelsLost", fmt.Sprintf("unknown value %v", def.LevelsLost))
		valid = false
	}
	if !valid {
		return nil, false
	}

	return &chaosroom.Monster{
		ID:           def.ID,
		Name:         def.Name,
		Level:        def.Level,
		Treasure:     def.Treasure,
		LevelsGained: def.LevelsGained,
		Description:  def.Description,
		NastyEffect:  def.NastyEffect,
		LevelsLost:   lost,
		Tags:         chaosroom.Tags(toValues(def.Tags, field+".tags")),
	}, true
}

func buildCard(def CardDefinition, vb *errors.ValidationBuilder, field string) (*chaosroom.Card, bool) {
	cardType := chaosroom.CardType(def.Type)
	switch cardType {
	case chaosroom.CardTypeEquipment, chaosroom.CardTypeBonus, chaosroom.CardTypeTreasure:
	case "":
		cardType = chaosroom.CardTypeTreasure
	default:
		vb.InvalidField(field+".type", fmt.Sprintf("unknown value %q", def.Type))
		return nil, false
	}

	return &chaosroom.Card{
		ID:            def.ID,
		Name:          def.Name,
		Type:          cardType,
		Description:   def.Description,
		Bonus:         def.Bonus,
		Slot:          def.Slot,
		Value:         def.Value,
		BattleBonus:   def.BattleBonus,
		TreasureBonus: def.TreasureBonus,
	}, true
}

// parseLevelsLost accepts a non-negative number, "dynamic", or nothing
func parseLevelsLost(raw any) (chaosroom.LevelsLost, bool) {
	if raw == nil {
		return chaosroom.LevelsLost{}, true
	}
	v, ok := chaosroom.ValueOf(raw)
	if !ok {
		return chaosroom.LevelsLost{}, false
	}
	if n, isInt := v.Int(); isInt {
		return chaosroom.FixedLevelsLost(n), n >= 0
	}
	if s, isStr := v.Str(); isStr && s == chaosroom.LevelsLostDynamic {
		return chaosroom.DynamicLevelsLost(), true
	}
	return chaosroom.LevelsLost{}, false
}

// toValues converts a raw map, dropping entries that are not scalars
func toValues(raw map[string]any, field string) map[string]chaosroom.Value {
	if len(raw) == 0 {
		return nil
	}

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(map[string]chaosroom.Value, len(raw))
	for _, k := range keys {
		v, ok := chaosroom.ValueOf(raw[k])
		if !ok {
			slog.Warn("Ignoring non-scalar value", "field", field, "key", k)
			continue
		}
		out[k] = v
	}
	return out
}
