package cmd

import (
	"fmt"
	"strconv"

	"github.com/leonmuri/progol-backend/cmd/progol-cli/utils"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var historyLimit int

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "l", 0, "maximum number of quinielas to list")
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyDeleteCmd)
	rootCmd.AddCommand(historyCmd)
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List previously generated quinielas.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !requireStore() {
			return nil
		}

		slips, err := store.List(cmd.Context(), historyLimit)
		if err != nil {
			return err
		}
		if len(slips) == 0 {
			fmt.Println("El historial está vacío.")
			return nil
		}

		t := utils.NewTable()
		t.AppendHeader(table.Row{"Id", "Generada", "Partidos"})
		for _, slip := range slips {
			t.AppendRow(table.Row{
				slip.ID,
				slip.GeneratedAt.Format("02/01/2006 15:04"),
				slip.MatchCount,
			})
		}
		t.Render()
		return nil
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a stored quiniela in full.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !requireStore() {
			return nil
		}

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id %q", args[0])
		}

		slip, err := store.Get(cmd.Context(), id)
		if err != nil {
			return err
		}

		fmt.Printf("Quiniela #%d, generada el %s\n",
			slip.ID, slip.GeneratedAt.Format("02/01/2006 15:04"))
		printSlip(slip.Entries)
		return nil
	},
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a stored quiniela.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !requireStore() {
			return nil
		}

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id %q", args[0])
		}

		deleted, err := store.Delete(cmd.Context(), id)
		if err != nil {
			return err
		}
		if !deleted {
			fmt.Printf("No existe la quiniela %d.\n", id)
			return nil
		}
		fmt.Printf("Quiniela %d eliminada.\n", id)
		return nil
	},
}
