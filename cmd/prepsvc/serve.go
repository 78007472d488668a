package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/FlyRocketToMars/RocktheInterview/internal/config"
	"github.com/FlyRocketToMars/RocktheInterview/internal/plan"
	"github.com/FlyRocketToMars/RocktheInterview/internal/questionbank"
	"github.com/FlyRocketToMars/RocktheInterview/internal/server"
	"github.com/FlyRocketToMars/RocktheInterview/internal/taxonomy"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the analysis, study-plan, community, practice and job-feed endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

// loadDeps reads the static configuration documents. The taxonomy loads
// first because the alias table validates against it; the remaining
// documents load concurrently.
func loadDeps(cfg *config.Config) (server.Deps, error) {
	var deps server.Deps

	tax, err := taxonomy.Load(cfg.TaxonomyPath(), cfg.SchemaPath("taxonomy.schema.json"))
	if err != nil {
		return deps, fmt.Errorf("failed to load skills taxonomy: %w", err)
	}
	deps.Taxonomy = tax

	g, _ := errgroup.WithContext(context.Background())
	g.Go(func() error {
		aliases, err := taxonomy.LoadAliases(cfg.AliasesPath(), cfg.SchemaPath("aliases.schema.json"), tax)
		if err != nil {
			return fmt.Errorf("failed to load skill aliases: %w", err)
		}
		deps.Aliases = aliases
		return nil
	})
	g.Go(func() error {
		templates, err := plan.LoadTemplates(cfg.TemplatesPath(), cfg.SchemaPath("plan_templates.schema.json"))
		if err != nil {
			return fmt.Errorf("failed to load plan templates: %w", err)
		}
		deps.Templates = templates
		return nil
	})
	g.Go(func() error {
		bank, err := questionbank.Load(cfg.QuestionBankPath(), cfg.SchemaPath("question_bank.schema.json"))
		if err != nil {
			return fmt.Errorf("failed to load question bank: %w", err)
		}
		deps.Bank = bank
		return nil
	})
	if err := g.Wait(); err != nil {
		return deps, err
	}
	return deps, nil
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	deps, err := loadDeps(cfg)
	if err != nil {
		return err
	}

	srv, err := server.New(server.Config{
		Port:        cfg.Port,
		DatabaseURL: cfg.DatabaseURL,
	}, deps)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
