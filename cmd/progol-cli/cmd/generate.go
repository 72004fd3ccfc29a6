package cmd

import (
	"fmt"
	"log/slog"

	"github.com/leonmuri/progol-backend/cmd/progol-cli/utils"
	"github.com/leonmuri/progol-backend/lib/quiniela"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var (
	generateCount int
	generateMode  string
	generateSave  bool
)

func init() {
	generateCmd.Flags().IntVarP(&generateCount, "count", "n", 1, "number of quinielas to generate")
	generateCmd.Flags().StringVarP(&generateMode, "mode", "m", "aleatorio",
		"generation mode: aleatorio, local, visitante, empate or equilibrada")
	generateCmd.Flags().BoolVarP(&generateSave, "save", "s", true, "persist generated quinielas when history is enabled")
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one or more random quinielas.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if generateCount < 1 {
			return fmt.Errorf("count must be at least 1, got %d", generateCount)
		}

		matches := scraper.FetchMatches(cmd.Context())
		if len(matches) == 0 {
			return fmt.Errorf("no matches available")
		}

		info := cachedDrawInfo(cmd)
		fmt.Printf("%s | %s\n", info.DrawDate, info.Round)

		var slips []quiniela.Slip
		switch generateMode {
		case "aleatorio":
			slips = generator.GenerateUniform(matches, generateCount)
		case string(quiniela.BiasLocal), string(quiniela.BiasVisitante),
			string(quiniela.BiasEmpate), string(quiniela.BiasEquilibrada):
			for i := 0; i < generateCount; i++ {
				slips = append(slips, generator.GenerateBiased(matches, quiniela.Bias(generateMode)))
			}
		default:
			return fmt.Errorf("unknown mode %q", generateMode)
		}

		for i, slip := range slips {
			fmt.Printf("\nQuiniela %d de %d\n", i+1, len(slips))
			printSlip(slip)

			if generateSave && store != nil {
				id, err := store.Save(cmd.Context(), slip)
				if err != nil {
					slog.Warn("could not persist quiniela", "err", err)
					continue
				}
				fmt.Printf("Guardada en el historial con id %d.\n", id)
			}
		}
		return nil
	},
}

func printSlip(slip quiniela.Slip) {
	t := utils.NewTable()
	t.AppendHeader(table.Row{"#", "Partido", "Predicción", ""})
	for _, entry := range slip {
		t.AppendRow(table.Row{
			entry.MatchIndex,
			fmt.Sprintf("%s vs %s", entry.Home, entry.Away),
			fmt.Sprintf("[%s] %s", entry.Code, entry.Outcome.Label()),
			entry.Glyph,
		})
	}
	t.Render()

	stats := quiniela.ComputeStats(slip)
	fmt.Printf("Locales %d (%.0f%%) | Empates %d (%.0f%%) | Visitantes %d (%.0f%%)\n",
		stats.Counts[quiniela.Home], stats.Percentages[quiniela.Home],
		stats.Counts[quiniela.Draw], stats.Percentages[quiniela.Draw],
		stats.Counts[quiniela.Away], stats.Percentages[quiniela.Away])
}
