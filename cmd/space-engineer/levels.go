package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List and validate the level sequence",
	Long:  `Loads the configured level file (or the built-in set), validates every level and prints the play order.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		prog, err := openProgression(settings)
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "#\tKEY\tTITLE\tSPEED\tLIMIT\tSPAWN\tGOAL")
		for _, c := range prog.All() {
			goal := fmt.Sprintf("%d palavras", len(c.CorrectWords))
			if r := c.Rule(); r != nil {
				goal = r.String()
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%.0f\t%d\t%dms\t%s\n",
				prog.Number(c.Key), c.Key, c.Title, c.Speed, c.EnemyLimit, c.SpawnIntervalMs, goal)
		}
		if err := w.Flush(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d níveis válidos\n", prog.Total())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(levelsCmd)
}
