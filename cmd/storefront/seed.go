package main

import (
	"context"
	"errors"
	"fmt"

	"storefront-service/internal/catalog"
	"storefront-service/internal/model"
	"storefront-service/internal/storage"
	"storefront-service/pkg/config"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var seedForce bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Write the built-in catalog to storage",
	Long: `Write the built-in catalog to the configured storage.

An existing catalog is left alone unless --force is given. The memory
backend is refused since nothing would survive the command.

Examples:
  # Seed a fresh database
  STORAGE_BACKEND=postgres storefront seed

  # Reset the catalog
  STORAGE_BACKEND=postgres storefront seed --force`,
	Args: cobra.NoArgs,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().BoolVar(&seedForce, "force", false, "overwrite an existing catalog")
}

func runSeed(cmd *cobra.Command, _ []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if err := checkSeedBackend(cfg); err != nil {
		return err
	}

	store, err := openStorage(cfg, log)
	if err != nil {
		return err
	}
	defer func() { _ = store.close() }()

	wrote, err := seedCatalog(cmd.Context(), store, seedForce)
	if err != nil {
		return err
	}
	if !wrote {
		log.Info("Catalog already present, use --force to overwrite")
		return nil
	}
	log.Info("Catalog seeded", zap.Int("products", len(catalog.Seed())))
	return nil
}

// checkSeedBackend rejects backends that do not outlive the command
func checkSeedBackend(cfg *config.Config) error {
	if cfg.Storage.Backend == config.StorageMemory {
		return errors.New("seed needs persistent storage: the memory backend is discarded when the command exits, set STORAGE_BACKEND=postgres")
	}
	return nil
}

// seedCatalog writes the seed catalog and reports whether it did
func seedCatalog(ctx context.Context, s storage.Storage, force bool) (bool, error) {
	if !force {
		_, err := s.Get(ctx, storage.KeyProducts)
		if err == nil {
			return false, nil
		}
		if !errors.Is(err, storage.ErrNotFound) {
			return false, fmt.Errorf("read catalog: %w", err)
		}
	}

	p := storage.NewPersister[[]model.Product](s, storage.KeyProducts)
	if err := p.Save(ctx, catalog.Seed()); err != nil {
		return false, err
	}
	return true, nil
}
