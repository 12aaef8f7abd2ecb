package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"

	cardset "github.com/KirkDiggler/chaos-room/internal/catalog"
	catalogrepo "github.com/KirkDiggler/chaos-room/internal/repositories/catalog"
)

var catalogFile string

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect and store the card set",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List races, classes, monsters and treasure",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		repo, closeRepo, err := openCatalog(ctx, catalogFile)
		if err != nil {
			return err
		}
		defer closeRepo()

		loaded, err := repo.Load(ctx, catalogrepo.LoadInput{})
		if err != nil {
			return fmt.Errorf("failed to load card set: %w", err)
		}

		printCatalog(cmd, loaded.Catalog)
		return nil
	},
}

var catalogSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Store a card set in Redis",
	Long:  `Seed validates a card set file (or the built-in set) and replaces the card set stored in Redis.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if redisAddr == "" {
			return fmt.Errorf("--redis-addr is required")
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		defs, err := readDefinitions(catalogFile)
		if err != nil {
			return err
		}

		client, err := connectRedis(ctx)
		if err != nil {
			return err
		}
		defer func() { _ = client.Close() }()

		repo, err := catalogrepo.NewRedis(&catalogrepo.RedisConfig{Client: client})
		if err != nil {
			return err
		}

		stored, err := repo.Store(ctx, catalogrepo.StoreInput{Definitions: defs})
		if err != nil {
			return fmt.Errorf("failed to store card set: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Stored %d races, %d classes, %d monsters, %d treasures at %s\n",
			len(defs.Races), len(defs.Classes), len(defs.Monsters), len(defs.Treasures),
			stored.StoredAt.Format("2006-01-02 15:04:05"))
		return nil
	},
}

func init() {
	catalogCmd.PersistentFlags().StringVar(&catalogFile, "file", "", "YAML or JSON card set file")

	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogSeedCmd)
}

func printCatalog(cmd *cobra.Command, c *cardset.Catalog) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	defer func() { _ = w.Flush() }()

	fmt.Fprintln(w, "RACES")
	for _, r := range c.Races {
		fmt.Fprintf(w, "  %s\t%s\t%d abilities\n", r.ID, r.Name, len(r.Abilities))
	}
	fmt.Fprintln(w, "CLASSES")
	for _, cl := range c.Classes {
		fmt.Fprintf(w, "  %s\t%s\t%d abilities\n", cl.ID, cl.Name, len(cl.Abilities))
	}
	fmt.Fprintln(w, "MONSTERS")
	for _, m := range c.Monsters {
		fmt.Fprintf(w, "  %s\t%s\tlevel %d\t%s\n", m.ID, m.Name, m.Level, m.NastyEffect)
	}
	fmt.Fprintln(w, "TREASURE")
	for _, t := range c.Treasures {
		fmt.Fprintf(w, "  %s\t%s\t%s\n", t.ID, t.Name, t.Type)
	}
}
