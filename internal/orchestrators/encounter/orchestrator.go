// Package encounter drives fights for the turn controller: it draws monsters,
// keeps one live combat session per player, moves cards out of the hand when
// they are played and deals treasure after a win.
package encounter

//go:generate mockgen -destination=mock/mock_service.go -package=encountermock github.com/KirkDiggler/chaos-room/internal/orchestrators/encounter Service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	cardset "github.com/KirkDiggler/chaos-room/internal/catalog"
	"github.com/KirkDiggler/chaos-room/internal/engine/combat"
	"github.com/KirkDiggler/chaos-room/internal/entities/chaosroom"
	"github.com/KirkDiggler/chaos-room/internal/errors"
	"github.com/KirkDiggler/chaos-room/internal/pkg/idgen"
	catalogrepo "github.com/KirkDiggler/chaos-room/internal/repositories/catalog"
	"github.com/KirkDiggler/chaos-room/internal/repositories/fightlog"
)

// Service defines the interface for encounter operations
type Service interface {
	// StartCombat opens a fight for a player. A player can only be in one fight.
	StartCombat(ctx context.Context, input *StartCombatInput) (*StartCombatOutput, error)

	// AddHelper attaches a helper to a live fight
	AddHelper(ctx context.Context, input *AddHelperInput) (*AddHelperOutput, error)

	// PlayCard spends a card from the fighter's hand on the fight
	PlayCard(ctx context.Context, input *PlayCardInput) (*PlayCardOutput, error)

	// Fight resolves the fight and deals treasure on a win
	Fight(ctx context.Context, input *FightInput) (*FightOutput, error)

	// Escape makes the first escape attempt
	Escape(ctx context.Context, input *EscapeInput) (*EscapeOutput, error)

	// SecondEscape makes the second escape attempt after a failed first one
	SecondEscape(ctx context.Context, input *EscapeInput) (*EscapeOutput, error)

	// ApplyDefeat takes the bad stuff after a lost fight
	ApplyDefeat(ctx context.Context, input *ApplyDefeatInput) (*ApplyDefeatOutput, error)

	// EndCombat closes a finished fight and frees the player for the next one
	EndCombat(ctx context.Context, input *EndCombatInput) (*EndCombatOutput, error)

	// GetCombat returns the state of a live fight
	GetCombat(ctx context.Context, input *GetCombatInput) (*GetCombatOutput, error)

	// DrawMonster draws a random monster from the door deck
	DrawMonster(ctx context.Context, input *DrawMonsterInput) (*DrawMonsterOutput, error)
}

// Config holds the dependencies for the encounter orchestrator
type Config struct {
	CatalogRepo catalogrepo.Repository
	IDGenerator idgen.Generator

	// Roller drives every die in the fight and the deck draws. Defaults to dice.DefaultRoller.
	Roller dice.Roller

	// EventBus receives combat events when set
	EventBus events.EventBus

	// FightLog records every ended fight when set
	FightLog    fightlog.Repository
	FightLogTTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CatalogRepo == nil {
		vb.RequiredField("CatalogRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	catalogRepo catalogrepo.Repository
	idGen       idgen.Generator
	roller      dice.Roller
	eventBus    events.EventBus
	fightLog    fightlog.Repository
	fightLogTTL time.Duration

	mu       sync.Mutex
	catalog  *cardset.Catalog
	sessions map[string]*encounterState
	byPlayer map[string]string
}

// encounterState is one live fight
type encounterState struct {
	id      string
	session *combat.Session
}

// NewOrchestrator creates a new encounter orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	roller := cfg.Roller
	if roller == nil {
		roller = dice.DefaultRoller
	}

	return &orchestrator{
		catalogRepo: cfg.CatalogRepo,
		idGen:       cfg.IDGenerator,
		roller:      roller,
		eventBus:    cfg.EventBus,
		fightLog:    cfg.FightLog,
		fightLogTTL: cfg.FightLogTTL,
		sessions:    make(map[string]*encounterState),
		byPlayer:    make(map[string]string),
	}, nil
}

func (o *orchestrator) StartCombat(ctx context.Context, input *StartCombatInput) (*StartCombatOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Player == nil {
		return nil, errors.InvalidArgument("player is required")
	}
	if input.Player.ID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	o.mu.Lock()
	if existing, ok := o.byPlayer[input.Player.ID]; ok {
		o.mu.Unlock()
		return nil, errors.AlreadyExistsf("player %s is already fighting in encounter %s",
			input.Player.ID, existing)
	}
	o.mu.Unlock()

	var monster *chaosroom.Monster
	if input.MonsterID != "" {
		out, err := o.catalogRepo.GetMonster(ctx, catalogrepo.GetMonsterInput{ID: input.MonsterID})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to get monster %s", input.MonsterID)
		}
		monster = out.Monster
	} else {
		drawn, err := o.DrawMonster(ctx, &DrawMonsterInput{})
		if err != nil {
			return nil, err
		}
		monster = drawn.Monster
	}

	encounterID := o.idGen.Generate()
	session, err := combat.NewSession(&combat.SessionConfig{
		ID:       encounterID,
		Player:   input.Player,
		Monster:  monster,
		Roller:   o.roller,
		EventBus: o.eventBus,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create combat session")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	// another StartCombat for the same player may have won the race
	if existing, ok := o.byPlayer[input.Player.ID]; ok {
		return nil, errors.AlreadyExistsf("player %s is already fighting in encounter %s",
			input.Player.ID, existing)
	}
	o.sessions[encounterID] = &encounterState{id: encounterID, session: session}
	o.byPlayer[input.Player.ID] = encounterID

	slog.Info("Combat started",
		"encounter_id", encounterID,
		"player_id", input.Player.ID,
		"player_level", input.Player.Level(),
		"monster", monster.Name,
		"monster_level", monster.Level)

	return &StartCombatOutput{
		EncounterID: encounterID,
		Monster:     monster,
		Summary:     session.Summary(),
	}, nil
}

func (o *orchestrator) AddHelper(ctx context.Context, input *AddHelperInput) (*AddHelperOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Helper == nil {
		return nil, errors.InvalidArgument("helper is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	state, err := o.getLocked(input.EncounterID)
	if err != nil {
		return nil, err
	}
	if _, fighting := o.byPlayer[input.Helper.ID]; fighting {
		return nil, errors.FailedPreconditionf("helper %s is in a fight of their own", input.Helper.ID)
	}

	accepted := state.session.SetHelper(ctx, input.Helper)

	slog.Info("Helper requested",
		"encounter_id", state.id,
		"helper_id", input.Helper.ID,
		"accepted", accepted)

	return &AddHelperOutput{
		Accepted: accepted,
		Summary:  state.session.Summary(),
	}, nil
}

func (o *orchestrator) PlayCard(ctx context.Context, input *PlayCardInput) (*PlayCardOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CardID == "" {
		return nil, errors.InvalidArgument("card ID is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	state, err := o.getLocked(input.EncounterID)
	if err != nil {
		return nil, err
	}
	// a lost fight still takes cards until the defeat lands
	if state.session.Result().IsTerminal() {
		return nil, errors.FailedPreconditionf("encounter %s is already resolved", state.id)
	}

	player := state.session.Player()
	card, ok := player.RemoveFromHand(input.CardID)
	if !ok {
		return nil, errors.NotFoundf("card %s is not in %s's hand", input.CardID, player.Name)
	}
	if !state.session.UseCard(ctx, card) {
		// the card was already held, so the hand limit does not apply
		player.Inventory = append(player.Inventory, card)
		return nil, errors.FailedPreconditionf("card %s cannot be played now", card.ID)
	}

	return &PlayCardOutput{
		Card:    card,
		Summary: state.session.Summary(),
	}, nil
}

func (o *orchestrator) Fight(ctx context.Context, input *FightInput) (*FightOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	// the treasure deck comes from the catalog, fetched before taking the lock
	c, err := o.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	state, err := o.getLocked(input.EncounterID)
	if err != nil {
		return nil, err
	}

	before := state.session.Result()
	result := state.session.ResolveCombat(ctx)
	out := &FightOutput{
		Result:  result,
		Victory: state.session.Victory(),
	}

	// treasure is dealt once, on the call that won
	if before == combat.ResultInProgress && result == combat.ResultVictory {
		drawn, err := o.dealTreasure(c, state.session.Player(), out.Victory.Treasure)
		if err != nil {
			return nil, err
		}
		out.TreasureDrawn = drawn
	}
	out.Summary = state.session.Summary()

	return out, nil
}

func (o *orchestrator) Escape(ctx context.Context, input *EscapeInput) (*EscapeOutput, error) {
	return o.escape(ctx, input, (*combat.Session).AttemptEscape)
}

func (o *orchestrator) SecondEscape(ctx context.Context, input *EscapeInput) (*EscapeOutput, error) {
	return o.escape(ctx, input, (*combat.Session).AttemptSecondEscape)
}

func (o *orchestrator) escape(
	ctx context.Context,
	input *EscapeInput,
	attempt func(*combat.Session, context.Context) combat.EscapeOutcome,
) (*EscapeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	state, err := o.getLocked(input.EncounterID)
	if err != nil {
		return nil, err
	}

	outcome := attempt(state.session, ctx)
	result := state.session.Result()

	return &EscapeOutput{
		Escape:                 outcome,
		Result:                 result,
		SecondAttemptAvailable: result == combat.ResultEscaping,
	}, nil
}

func (o *orchestrator) ApplyDefeat(ctx context.Context, input *ApplyDefeatInput) (*ApplyDefeatOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("EncounterID", input.EncounterID, vb)
	if input.LowestPlayerLevel < chaosroom.MinLevel || input.LowestPlayerLevel > chaosroom.MaxLevel {
		vb.Fieldf("LowestPlayerLevel", "must be between %d and %d, got %d",
			chaosroom.MinLevel, chaosroom.MaxLevel, input.LowestPlayerLevel)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	state, err := o.getLocked(input.EncounterID)
	if err != nil {
		return nil, err
	}

	defeat := state.session.ApplyDefeat(ctx, input.LowestPlayerLevel)
	if !defeat.Applied {
		return nil, errors.FailedPreconditionf("encounter %s has no defeat to apply (result %s)",
			state.id, state.session.Result())
	}

	return &ApplyDefeatOutput{
		Defeat: defeat,
		Player: state.session.Player(),
	}, nil
}

func (o *orchestrator) EndCombat(ctx context.Context, input *EndCombatInput) (*EndCombatOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	state, err := o.getLocked(input.EncounterID)
	if err != nil {
		return nil, err
	}

	session := state.session
	if !finished(session) {
		return nil, errors.FailedPreconditionf("encounter %s is not finished (result %s)",
			state.id, session.Result())
	}

	delete(o.sessions, state.id)
	delete(o.byPlayer, session.Player().ID)

	o.recordFight(ctx, state.id, session)

	slog.Info("Combat ended",
		"encounter_id", state.id,
		"player_id", session.Player().ID,
		"result", session.Result().String(),
		"player_level", session.Player().Level())

	return &EndCombatOutput{Summary: session.Summary()}, nil
}

func (o *orchestrator) GetCombat(_ context.Context, input *GetCombatInput) (*GetCombatOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	state, err := o.getLocked(input.EncounterID)
	if err != nil {
		return nil, err
	}

	return &GetCombatOutput{
		EncounterID: state.id,
		PlayerID:    state.session.Player().ID,
		Summary:     state.session.Summary(),
	}, nil
}

func (o *orchestrator) DrawMonster(ctx context.Context, _ *DrawMonsterInput) (*DrawMonsterOutput, error) {
	c, err := o.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}
	if len(c.Monsters) == 0 {
		return nil, errors.FailedPrecondition("the door deck has no monsters")
	}

	i, err := o.drawIndex(len(c.Monsters))
	if err != nil {
		return nil, errors.Wrap(err, "failed to draw monster")
	}

	return &DrawMonsterOutput{Monster: c.Monsters[i]}, nil
}

// dealTreasure draws up to count treasure cards into the hand while it has room
func (o *orchestrator) dealTreasure(c *cardset.Catalog, player *chaosroom.Player, count int) ([]*chaosroom.Card, error) {
	if count <= 0 || player.HandFull() {
		return nil, nil
	}
	if len(c.Treasures) == 0 {
		slog.Warn("Treasure deck is empty", "player_id", player.ID)
		return nil, nil
	}

	var drawn []*chaosroom.Card
	for i := 0; i < count && !player.HandFull(); i++ {
		idx, err := o.drawIndex(len(c.Treasures))
		if err != nil {
			return drawn, errors.Wrap(err, "failed to draw treasure")
		}
		card := *c.Treasures[idx]
		player.AddToHand(&card)
		drawn = append(drawn, &card)
	}

	slog.Info("Treasure dealt",
		"player_id", player.ID,
		"requested", count,
		"drawn", len(drawn))

	return drawn, nil
}

// drawIndex picks a card position with one die of deck size
func (o *orchestrator) drawIndex(size int) (int, error) {
	n, err := o.roller.Roll(size)
	if err != nil {
		return 0, err
	}
	if n < 1 || n > size {
		return 0, errors.Internalf("roller returned %d for a %d card deck", n, size)
	}
	return n - 1, nil
}

// loadCatalog fetches the card set once per process
func (o *orchestrator) loadCatalog(ctx context.Context) (*cardset.Catalog, error) {
	o.mu.Lock()
	c := o.catalog
	o.mu.Unlock()
	if c != nil {
		return c, nil
	}

	out, err := o.catalogRepo.Load(ctx, catalogrepo.LoadInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load catalog")
	}

	o.mu.Lock()
	if o.catalog == nil {
		o.catalog = out.Catalog
	}
	c = o.catalog
	o.mu.Unlock()

	return c, nil
}

// recordFight writes the ended fight to the log. The fight is already over, so
// a storage failure is only logged.
func (o *orchestrator) recordFight(ctx context.Context, encounterID string, session *combat.Session) {
	if o.fightLog == nil {
		return
	}

	p := session.Player()
	entry := &fightlog.Entry{
		EncounterID:  encounterID,
		PlayerID:     p.ID,
		PlayerName:   p.Name,
		MonsterName:  session.Monster().Name,
		Result:       session.Result().String(),
		LevelsGained: session.Victory().LevelsGained,
		LevelsLost:   session.Defeat().LevelsLost,
		PlayerLevel:  p.Level(),
	}
	if h := session.Helper(); h != nil {
		entry.HelperName = h.Name
	}

	if _, err := o.fightLog.Record(ctx, fightlog.RecordInput{Entry: entry, TTL: o.fightLogTTL}); err != nil {
		slog.Warn("Failed to record fight",
			"encounter_id", encounterID,
			"player_id", p.ID,
			"error", err)
	}
}

// finished reports whether a fight can be closed: won, escaped, or lost with
// the bad stuff taken
func finished(session *combat.Session) bool {
	switch session.Result() {
	case combat.ResultVictory, combat.ResultEscaped:
		return true
	}
	return session.Defeat().Applied
}

func (o *orchestrator) getLocked(encounterID string) (*encounterState, error) {
	if encounterID == "" {
		return nil, errors.InvalidArgument("encounter ID is required")
	}
	state, ok := o.sessions[encounterID]
	if !ok {
		return nil, errors.NotFoundf("encounter %s not found", encounterID)
	}
	return state, nil
}
