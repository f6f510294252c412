package cmd

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"github.com/suhlee/facilitysim/internal/loader"
	"github.com/suhlee/facilitysim/internal/models"
	"github.com/suhlee/facilitysim/internal/repositories"
	"github.com/suhlee/facilitysim/internal/repositories/postgres"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load facilities and personas into Postgres",
	Long: `Reads the configured facility and persona sources (or the built-in
defaults) and bulk-inserts them into the configured database, replacing
whatever is there.`,
	RunE: runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
	seedCmd.Flags().Bool("keep-existing", false, "Do not truncate tables before inserting")
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg, err := models.LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	ctx := cmd.Context()
	pool, err := connect(ctx, &cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	var facilityRepo repositories.FacilityRepository = postgres.NewFacilityRepository(pool)
	var personaRepo repositories.PersonaRepository = postgres.NewPersonaRepository(pool)

	keep, _ := cmd.Flags().GetBool("keep-existing")
	if !keep {
		if err := facilityRepo.DeleteAll(ctx); err != nil {
			return fmt.Errorf("clearing facilities: %w", err)
		}
		if err := personaRepo.DeleteAll(ctx); err != nil {
			return fmt.Errorf("clearing personas: %w", err)
		}
	}

	facilities := loader.LoadFacilities(cfg.FacilitiesFile)
	personas := loader.LoadPersonas(cfg.PersonasFile)

	if err := facilityRepo.BulkCreate(ctx, facilities); err != nil {
		return fmt.Errorf("inserting facilities: %w", err)
	}
	if err := personaRepo.BulkCreate(ctx, personas); err != nil {
		return fmt.Errorf("inserting personas: %w", err)
	}

	facilityCount, err := facilityRepo.Count(ctx)
	if err != nil {
		return err
	}
	personaCount, err := personaRepo.Count(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Seeded %d facilities and %d personas\n", facilityCount, personaCount)
	return nil
}

func connect(ctx context.Context, db *models.DatabaseConfig) (*pgxpool.Pool, error) {
	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		db.Host, db.Port, db.User, db.Password, db.DBName, db.SSLMode,
	)
	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("error pinging database: %w", err)
	}
	return pool, nil
}
