package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/space-engineer/ranking"
)

var rankingCmd = &cobra.Command{
	Use:   "ranking",
	Short: "Print the high-score board",
	Long:  `Prints the top 10 board from the configured ranking store. With --clear the board is emptied first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		store, err := ranking.OpenSQL(ctx, settings.Ranking.Dialect, settings.Ranking.DSN)
		if err != nil {
			return err
		}
		rk := ranking.New(ctx, store)
		defer rk.Close()

		if clear, _ := cmd.Flags().GetBool("clear"); clear {
			if err := rk.Clear(ctx); err != nil {
				return fmt.Errorf("failed to clear ranking: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Ranking limpo.")
		}
		fmt.Fprintln(cmd.OutOrStdout(), ranking.RenderTable(rk.Board()))
		return nil
	},
}

func init() {
	rankingCmd.Flags().Bool("clear", false, "remove every entry before printing")
	rootCmd.AddCommand(rankingCmd)
}
