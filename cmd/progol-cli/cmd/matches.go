package cmd

import (
	"fmt"

	"github.com/leonmuri/progol-backend/cmd/progol-cli/utils"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var matchesRefresh bool

func init() {
	matchesCmd.Flags().BoolVarP(&matchesRefresh, "refresh", "r", false, "refetch the draw info instead of reusing the session cache")
	rootCmd.AddCommand(matchesCmd)
}

var matchesCmd = &cobra.Command{
	Use:   "matches",
	Short: "Show the current Progol match listing and draw info.",
	Run: func(cmd *cobra.Command, args []string) {
		if matchesRefresh {
			drawInfo = nil
		}
		info := cachedDrawInfo(cmd)
		fmt.Printf("%s | %s | %s\n\n", info.DrawDate, info.Round, info.Prize)

		matches := scraper.FetchMatches(cmd.Context())

		t := utils.NewTable()
		t.AppendHeader(table.Row{"#", "Local", "Visitante", "Fecha"})
		for i, match := range matches {
			t.AppendRow(table.Row{i + 1, match.Home, match.Away, match.DateLabel})
		}
		t.Render()
	},
}
