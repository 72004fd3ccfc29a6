package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(statsCmd)
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate statistics for the stored quinielas.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !requireStore() {
			return nil
		}

		stats, err := store.Stats(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("Quinielas guardadas: %d\n", stats.TotalSlips)
		if stats.TotalSlips == 0 {
			return nil
		}
		fmt.Printf("Primera: %s\n", stats.FirstAt.Format("02/01/2006 15:04"))
		fmt.Printf("Última:  %s\n", stats.LastAt.Format("02/01/2006 15:04"))
		return nil
	},
}
