// Root command for the realty CLI. The persistent pre-run opens the
// configured stores and wires the services; the post-run releases them.
package main

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vkotliar/realty/internal/journal"
	"github.com/vkotliar/realty/internal/paths"
	"github.com/vkotliar/realty/internal/service"
	"github.com/vkotliar/realty/internal/store"
	"github.com/vkotliar/realty/pkg/types"
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
)

// app holds the opened stores and services for the duration of one
// command invocation.
var app struct {
	stores    *store.Set
	clients   *service.ClientService
	listings  *service.ListingService
	proposals *service.ProposalService
	offers    *service.OfferService
	journal   *journal.Journal
}

var rootCmd = &cobra.Command{
	Use:           "realty",
	Short:         "Realty is a small office-management tool for clients, listings, and offers",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" {
			return nil
		}
		return openApp()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeApp()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.realty-db)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(clientCmd)
	rootCmd.AddCommand(listingCmd)
	rootCmd.AddCommand(proposalCmd)
	rootCmd.AddCommand(offerCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(historyCmd)
}

// openApp loads configuration, opens the stores for the configured
// backend, and constructs the services.
func openApp() error {
	// Optional .env for directory and backend overrides.
	_ = godotenv.Load()

	configDir, err := paths.ResolveConfigDir(flagConfigDir)
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}
	v, err := loadConfig(configDir)
	if err != nil {
		return err
	}
	dataDir, err := paths.ResolveDataDir(flagDataDir, v.GetString(cfgKeyDataDir))
	if err != nil {
		return fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{
		Backend: v.GetString(cfgKeyBackend),
		DataDir: dataDir,
	}
	stores, err := store.Open(cfg)
	if err != nil {
		return fmt.Errorf("open stores: %w", err)
	}

	app.stores = stores
	app.journal = journal.Open(dataDir)
	app.clients = service.NewClientService(stores.Clients, app.journal)
	app.listings = service.NewListingService(stores.Listings, app.journal)
	app.proposals = service.NewProposalService(stores.Clients, stores.Listings, app.journal)
	app.offers = service.NewOfferService(stores.Offers, stores.Clients, stores.Listings, app.journal)
	return nil
}

// closeApp releases store resources. Idempotent.
func closeApp() error {
	if app.stores != nil {
		return app.stores.Close()
	}
	return nil
}
