package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"project-lookup-api/internal/config"
	"project-lookup-api/internal/handlers"
	"project-lookup-api/internal/models"
	"project-lookup-api/internal/repositories"
	"project-lookup-api/pkg/lambda"
	"project-lookup-api/pkg/server"
)

var (
	storeType string
	verbose   bool
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "projectsctl",
		Short: "Development tool for the project lookup store",
		Long: `projectsctl seeds the configured project store from a JSON file and runs
lookups through the same handler the Lambda function uses.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&storeType, "store", "", "Store type override: dynamodb, sqlite or memory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.AddCommand(newSeedCmd(), newQueryCmd())

	if err := rootCmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}

func newSeedCmd() *cobra.Command {
	var file string
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load a JSON array of project items into the store",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(file)
			if err != nil {
				return fmt.Errorf("failed to open seed file: %w", err)
			}
			defer f.Close()

			items, err := loadItems(f)
			if err != nil {
				return err
			}

			if dryRun {
				fmt.Fprintf(cmd.OutOrStdout(), "Dry run: %d valid items, nothing written\n", len(items))
				return nil
			}

			container, err := newContainer(cmd.Context())
			if err != nil {
				return err
			}
			defer container.Close()

			n, err := seed(cmd.Context(), container.ProjectRepository, items, container.Logger)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d items\n", n)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Path to a JSON array of project items")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Validate the file without writing")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func newQueryCmd() *cobra.Command {
	var user string

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Look up the projects of a user through the request handler",
		RunE: func(cmd *cobra.Command, args []string) error {
			container, err := newContainer(cmd.Context())
			if err != nil {
				return err
			}
			defer container.Close()

			resp := query(cmd.Context(), handlers.NewProjectHandler(container.ProjectService, container.Logger), user)
			fmt.Fprintf(cmd.OutOrStdout(), "%d %s\n", resp.StatusCode, resp.Body)
			return nil
		},
	}

	cmd.Flags().StringVarP(&user, "user", "u", "", "User whose projects to list")
	return cmd
}

func newContainer(ctx context.Context) (*server.Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if storeType != "" {
		cfg.Store.Type = storeType
	}
	if verbose {
		cfg.Log.Level = "debug"
	}
	return server.NewContainer(ctx, cfg)
}

// loadItems decodes a JSON array of project objects
func loadItems(r io.Reader) ([]models.Project, error) {
	var items []models.Project
	if err := json.NewDecoder(r).Decode(&items); err != nil {
		return nil, fmt.Errorf("failed to decode seed items: %w", err)
	}
	for i, item := range items {
		if item.User() == "" {
			return nil, fmt.Errorf("item %d: %w", i, repositories.ErrInvalidUser)
		}
	}
	return items, nil
}

func seed(ctx context.Context, repo repositories.ProjectRepository, items []models.Project, logger *logrus.Logger) (int, error) {
	for i, item := range items {
		if err := repo.Put(ctx, item); err != nil {
			return i, fmt.Errorf("failed to store item %d: %w", i, err)
		}
	}
	logger.WithField("items", len(items)).Info("Seed completed")
	return len(items), nil
}

func query(ctx context.Context, h *handlers.ProjectHandler, user string) *lambda.Response {
	body, _ := json.Marshal(map[string]string{"user": user})
	return h.Handle(ctx, &lambda.Request{
		HTTPMethod: "POST",
		Path:       "/projects",
		Body:       string(body),
	})
}
