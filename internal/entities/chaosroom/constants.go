// Package chaosroom holds the card game entities: abilities, races and
// classes, monsters, cards and players.
package chaosroom

// Level bounds. Reaching MaxLevel wins the game.
const (
	MinLevel = 1
	MaxLevel = 10
)

// Hand and dice constants
const (
	DefaultHandLimit       = 5
	DieSides               = 6
	EscapeSuccessThreshold = 5
)

// Entity types reported through core.Entity
const (
	EntityTypePlayer  = "player"
	EntityTypeMonster = "monster"
)

// Ability effect keys as they appear in card data
const (
	EffectKeyCombatBonusPerDiscard   = "combatBonusPerDiscard"
	EffectKeyBonusPerDiscardVsUndead = "bonusPerDiscardVsUndead"
	EffectKeyEscapeBonus             = "escapeBonus"
	EffectKeyEscapeBonusPerDiscard   = "escapeBonusPerDiscard"
	EffectKeyWinOnTie                = "winOnTie"
	EffectKeySecondEscapeAttempt     = "secondEscapeAttempt"
	EffectKeyHandLimit               = "handLimit"
	EffectKeyLevelForHelping         = "levelForHelping"
	EffectKeyBonusVsMonsterTag       = "bonusVsMonsterTag"
	EffectKeyMonsterPenaltyVsTag     = "monsterPenaltyVsTag"
)

// Ability condition keys
const (
	ConditionKeyUsableIn          = "usableIn"
	ConditionKeyMaxDiscards       = "maxDiscards"
	ConditionKeyVsTag             = "vsTag"
	ConditionKeyRequiresFirstFail = "requiresFirstFail"
)

// Monster tag keys
const (
	TagUndead      = "undead"
	TagNoEscape    = "noEscape"
	TagNoHelp      = "noHelp"
	TagMagicResist = "magicResist"
	TagEscapeBonus = "escapeBonus"
	TagVsPrefix    = "vs"
)

// LevelsLostDynamic is the levelsLost value resolved at defeat time
const LevelsLostDynamic = "dynamic"
