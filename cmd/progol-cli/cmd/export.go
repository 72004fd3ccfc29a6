package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/leonmuri/progol-backend/services/slipimage"

	"github.com/mazen160/go-random"
	"github.com/spf13/cobra"
)

var exportOutput string

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file, defaults to quiniela_<id>_<suffix>.png")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <id>",
	Short: "Export a stored quiniela as a PNG image.",
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

		png, err := slipimage.Render(slip.Entries, slip.ID, slip.GeneratedAt)
		if err != nil {
			return err
		}

		output := exportOutput
		if output == "" {
			suffix, err := random.String(6)
			if err != nil {
				return err
			}
			output = fmt.Sprintf("quiniela_%d_%s.png", slip.ID, suffix)
		}

		err = os.WriteFile(output, png, 0644)
		if err != nil {
			return err
		}

		fmt.Printf("Imagen guardada en %s.\n", output)
		return nil
	},
}
