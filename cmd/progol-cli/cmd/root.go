package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/leonmuri/progol-backend/lib/configutil"
	"github.com/leonmuri/progol-backend/lib/quiniela"
	"github.com/leonmuri/progol-backend/lib/scrapers/progol"
	"github.com/leonmuri/progol-backend/lib/telemetry"
	"github.com/leonmuri/progol-backend/services/slipstore"

	"github.com/spf13/cobra"
)

type Config struct {
	// sqlite DSN; when empty (and DATABASE_URL is unset) every
	// persistence operation is a no-op
	DatabaseUrl string `json:"database_url" env:"DATABASE_URL"`
	ProgolUrl   string `json:"progol_url" env:"PROGOL_URL"`
}

// session state shared by the commands, assembled once in the
// persistent pre-run. The store stays nil when persistence is disabled.
var (
	scraper   *progol.Scraper
	generator *quiniela.Generator
	store     *slipstore.Service

	// draw info is fetched at most once per invocation, commands that
	// need it call cachedDrawInfo
	drawInfo *progol.DrawInfo
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "progol-cli",
	Short: "progol-cli generates random Progol quinielas from the current match listing.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		telemetry.InitSlog(verbose)

		cfg, err := configutil.ReadConfig[Config]("config.json5")
		if err != nil && !os.IsNotExist(err) {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}
		scraper = progol.NewScraper(cfg.ProgolUrl)
		generator = quiniela.NewGenerator()

		if cfg.DatabaseUrl == "" {
			slog.Info("no database configured, history is disabled")
			return
		}
		store, err = slipstore.Open(cfg.DatabaseUrl)
		if err != nil {
			// a broken database degrades to disabled persistence
			// instead of killing the session
			slog.Warn("could not open slip store, history is disabled", "err", err)
			store = nil
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func cachedDrawInfo(cmd *cobra.Command) progol.DrawInfo {
	if drawInfo == nil {
		info := scraper.FetchDrawInfo(cmd.Context())
		drawInfo = &info
	}
	return *drawInfo
}

func requireStore() bool {
	if store == nil {
		fmt.Println("El historial está deshabilitado: configura database_url o DATABASE_URL.")
		return false
	}
	return true
}
