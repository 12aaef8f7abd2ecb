package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/chaos-room/internal/repositories/fightlog"
)

var (
	historyPlayerID string
	historyLimit    int
	historyClear    bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show a player's recent fights from Redis",
	RunE: func(cmd *cobra.Command, args []string) error {
		if redisAddr == "" {
			return fmt.Errorf("--redis-addr is required")
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		log, closeLog, err := openFightLog(ctx)
		if err != nil {
			return err
		}
		defer closeLog()

		if historyClear {
			out, err := log.Delete(ctx, fightlog.DeleteInput{PlayerID: historyPlayerID})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d fights\n", out.EntriesDeleted)
			return nil
		}

		listed, err := log.List(ctx, fightlog.ListInput{PlayerID: historyPlayerID, Limit: historyLimit})
		if err != nil {
			return err
		}
		if len(listed.Entries) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "No fights recorded for %s\n", historyPlayerID)
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ENDED\tMONSTER\tRESULT\tGAINED\tLOST\tLEVEL")
		for _, e := range listed.Entries {
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\n",
				e.EndedAt.Format("2006-01-02 15:04"), e.MonsterName, e.Result,
				e.LevelsGained, e.LevelsLost, e.PlayerLevel)
		}
		return w.Flush()
	},
}

func init() {
	historyCmd.Flags().StringVar(&historyPlayerID, "id", "player_1", "player ID")
	historyCmd.Flags().IntVar(&historyLimit, "limit", 10, "number of fights to show; 0 shows all kept")
	historyCmd.Flags().BoolVar(&historyClear, "clear", false, "delete the player's fight log")

	rootCmd.AddCommand(historyCmd)
}
