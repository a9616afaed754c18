// Command seed loads the sample therapist directory into MongoDB.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"soulsync/config"
	"soulsync/database"
	therapistRepo "soulsync/database/repository/therapist"
	"soulsync/services/therapist"
	"soulsync/utils"

	"github.com/go-redis/redis/v8"
	"github.com/spf13/cobra"
)

var (
	noCache bool
	timeout time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "Manage SoulSync sample data",
}

var therapistsCmd = &cobra.Command{
	Use:   "therapists",
	Short: "Insert the sample therapists",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDirectory(cmd, func(ctx context.Context, repo therapistRepo.TherapistRepository, svc therapist.DirectoryService) error {
			return seedTherapists(ctx, svc, cmd.OutOrStdout())
		})
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete every therapist, then insert the samples again",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDirectory(cmd, func(ctx context.Context, repo therapistRepo.TherapistRepository, svc therapist.DirectoryService) error {
			return resetTherapists(ctx, repo, svc, cmd.OutOrStdout())
		})
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&noCache, "no-cache", false, "Skip Redis; the API cache expires on its own TTL")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Overall deadline")
	rootCmd.AddCommand(therapistsCmd, resetCmd)
}

func withDirectory(cmd *cobra.Command, fn func(context.Context, therapistRepo.TherapistRepository, therapist.DirectoryService) error) error {
	config.LoadConfig()
	logger := utils.GetLogger()

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	database.InitDB()
	defer database.Disconnect(context.Background())

	var cache *redis.Client
	if !noCache {
		cache = utils.GetCacheClient()
	}
	repo := therapistRepo.NewMongoTherapistRepo()
	svc := therapist.NewDirectoryService(repo, cache, config.AppConfig.TherapistCacheTTL, false, logger)
	return fn(ctx, repo, svc)
}

func seedTherapists(ctx context.Context, svc therapist.DirectoryService, out io.Writer) error {
	n, err := svc.Seed(ctx)
	if err != nil {
		return fmt.Errorf("seeded %d therapists before failing: %w", n, err)
	}
	fmt.Fprintf(out, "seeded %d therapists\n", n)
	return nil
}

func resetTherapists(ctx context.Context, repo therapistRepo.TherapistRepository, svc therapist.DirectoryService, out io.Writer) error {
	removed, err := repo.DeleteAll(ctx)
	if err != nil {
		return fmt.Errorf("clear therapists: %w", err)
	}
	fmt.Fprintf(out, "removed %d therapists\n", removed)
	return seedTherapists(ctx, svc, out)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
