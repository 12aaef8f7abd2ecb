package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/chaos-room/internal/engine/combat"
	"github.com/KirkDiggler/chaos-room/internal/entities/chaosroom"
	"github.com/KirkDiggler/chaos-room/internal/orchestrators/encounter"
	"github.com/KirkDiggler/chaos-room/internal/pkg/idgen"
	catalogrepo "github.com/KirkDiggler/chaos-room/internal/repositories/catalog"
)

var (
	fightPlayerID    string
	fightName        string
	fightRace        string
	fightClass       string
	fightMonster     string
	fightLevel       int
	fightHelperLevel int
	fightHelperRace  string
	fightCards       []string
	fightRun         bool
	fightSeed        uint64
	fightCatalog     string
)

var fightCmd = &cobra.Command{
	Use:   "fight",
	Short: "Kick open a door and fight what is behind it",
	Long: `Fight draws a monster (or takes --monster), resolves the fight and, on a loss,
tries to run away before taking the bad stuff. Cards named with --card are
equipped or played from the hand before the fight.`,
	RunE: runFight,
}

func init() {
	fightCmd.Flags().StringVar(&fightPlayerID, "id", "player_1", "player ID, used as the fight log key")
	fightCmd.Flags().StringVar(&fightName, "name", "Adventurer", "player name")
	fightCmd.Flags().StringVar(&fightRace, "race", "", "race ID or name")
	fightCmd.Flags().StringVar(&fightClass, "class", "", "class ID or name")
	fightCmd.Flags().StringVar(&fightMonster, "monster", "", "monster ID; drawn at random when empty")
	fightCmd.Flags().IntVar(&fightLevel, "level", chaosroom.MinLevel, "player level")
	fightCmd.Flags().IntVar(&fightHelperLevel, "helper-level", 0, "level of a helping player; no helper when 0")
	fightCmd.Flags().StringVar(&fightHelperRace, "helper-race", "", "race ID or name of the helper")
	fightCmd.Flags().StringSliceVar(&fightCards, "card", nil, "treasure card IDs to equip or play before the fight")
	fightCmd.Flags().BoolVar(&fightRun, "run", false, "run away instead of fighting")
	fightCmd.Flags().Uint64Var(&fightSeed, "seed", 0, "dice seed for a repeatable fight; random when 0")
	fightCmd.Flags().StringVar(&fightCatalog, "catalog", "", "YAML or JSON card set file")
}

func runFight(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, closeRepo, err := openCatalog(ctx, fightCatalog)
	if err != nil {
		return err
	}
	defer closeRepo()

	loaded, err := repo.Load(ctx, catalogrepo.LoadInput{})
	if err != nil {
		return fmt.Errorf("failed to load card set: %w", err)
	}
	cards := loaded.Catalog

	player := chaosroom.NewPlayer(fightPlayerID, fightName)
	player.SetLevel(fightLevel)
	if fightRace != "" {
		race, ok := cards.Race(fightRace)
		if !ok {
			return fmt.Errorf("unknown race %q", fightRace)
		}
		player.SetRace(race)
	}
	if fightClass != "" {
		class, ok := cards.Class(fightClass)
		if !ok {
			return fmt.Errorf("unknown class %q", fightClass)
		}
		player.SetClass(class)
	}

	var toPlay []string
	for _, id := range fightCards {
		card, ok := cards.Treasure(id)
		if !ok {
			return fmt.Errorf("unknown card %q", id)
		}
		c := *card
		if c.IsEquipment() {
			player.Equip(&c)
			continue
		}
		if !player.AddToHand(&c) {
			return fmt.Errorf("hand is full, cannot hold %s", c.Name)
		}
		if c.Type == chaosroom.CardTypeBonus {
			toPlay = append(toPlay, c.ID)
		}
	}

	log, closeLog, err := openFightLog(ctx)
	if err != nil {
		return err
	}
	defer closeLog()

	out := cmd.OutOrStdout()
	bus := events.NewBus()
	for _, eventType := range combat.AllEvents {
		bus.SubscribeFunc(eventType, 0, func(_ context.Context, e events.Event) error {
			if msg := combat.Message(e); msg != "" {
				fmt.Fprintf(out, "  > %s\n", msg)
			}
			return nil
		})
	}

	var roller dice.Roller = dice.DefaultRoller
	var ids idgen.Generator = idgen.NewUUID("enc")
	if fightSeed != 0 {
		roller = newSeededRoller(fightSeed)
		ids = idgen.NewSequential("enc")
	}

	orch, err := encounter.NewOrchestrator(&encounter.Config{
		CatalogRepo: repo,
		IDGenerator: ids,
		Roller:      roller,
		EventBus:    bus,
		FightLog:    log,
		FightLogTTL: fightLogTTL,
	})
	if err != nil {
		return err
	}

	return playFight(ctx, out, orch, cards.Race, player, toPlay)
}

func playFight(
	ctx context.Context,
	out io.Writer,
	orch encounter.Service,
	findRace func(string) (*chaosroom.CharacterComponent, bool),
	player *chaosroom.Player,
	toPlay []string,
) error {
	fmt.Fprintf(out, "%s kicks open the door\n", player)

	start, err := orch.StartCombat(ctx, &encounter.StartCombatInput{
		Player:    player,
		MonsterID: fightMonster,
	})
	if err != nil {
		return err
	}
	id := start.EncounterID
	fmt.Fprintf(out, "%s\n", start.Monster)

	lowest := player.Level()
	if fightHelperLevel > 0 {
		helper := chaosroom.NewPlayer("player_2", "Helper")
		helper.SetLevel(fightHelperLevel)
		if fightHelperRace != "" {
			race, ok := findRace(fightHelperRace)
			if !ok {
				return fmt.Errorf("unknown race %q", fightHelperRace)
			}
			helper.SetRace(race)
		}

		added, err := orch.AddHelper(ctx, &encounter.AddHelperInput{EncounterID: id, Helper: helper})
		if err != nil {
			return err
		}
		if !added.Accepted {
			fmt.Fprintf(out, "%s will not be helped\n", start.Monster.Name)
		} else {
			lowest = min(lowest, helper.Level())
		}
	}

	for _, cardID := range toPlay {
		if _, err := orch.PlayCard(ctx, &encounter.PlayCardInput{EncounterID: id, CardID: cardID}); err != nil {
			return err
		}
	}

	current, err := orch.GetCombat(ctx, &encounter.GetCombatInput{EncounterID: id})
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s\n", current.Summary)

	if !fightRun {
		fought, err := orch.Fight(ctx, &encounter.FightInput{EncounterID: id})
		if err != nil {
			return err
		}
		for _, card := range fought.TreasureDrawn {
			fmt.Fprintf(out, "  + %s\n", card)
		}
	}

	current, err = orch.GetCombat(ctx, &encounter.GetCombatInput{EncounterID: id})
	if err != nil {
		return err
	}
	if current.Summary.Result == combat.ResultInProgress || current.Summary.Result == combat.ResultDefeat {
		escaped, err := orch.Escape(ctx, &encounter.EscapeInput{EncounterID: id})
		if err != nil {
			return err
		}
		if escaped.SecondAttemptAvailable {
			if _, err := orch.SecondEscape(ctx, &encounter.EscapeInput{EncounterID: id}); err != nil {
				return err
			}
		}

		current, err = orch.GetCombat(ctx, &encounter.GetCombatInput{EncounterID: id})
		if err != nil {
			return err
		}
		if current.Summary.Result == combat.ResultFailedEscape {
			defeat, err := orch.ApplyDefeat(ctx, &encounter.ApplyDefeatInput{
				EncounterID:       id,
				LowestPlayerLevel: lowest,
			})
			if err != nil {
				return err
			}
			if defeat.Defeat.NastyEffect != "" {
				fmt.Fprintf(out, "Bad stuff: %s\n", defeat.Defeat.NastyEffect)
			}
		}
	}

	ended, err := orch.EndCombat(ctx, &encounter.EndCombatInput{EncounterID: id})
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s\n", ended.Summary)
	fmt.Fprintf(out, "%s\n", player)
	if player.HasWon() {
		fmt.Fprintf(out, "%s reaches level %d and wins the game!\n", player.Name, chaosroom.MaxLevel)
	}

	return nil
}
