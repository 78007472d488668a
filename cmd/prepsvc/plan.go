package main

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/FlyRocketToMars/RocktheInterview/internal/config"
	"github.com/FlyRocketToMars/RocktheInterview/internal/observability"
	"github.com/FlyRocketToMars/RocktheInterview/internal/plan"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Inspect study plan templates and preview daily tasks",
}

var planTemplatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the available study plan templates",
	RunE:  runPlanTemplates,
}

var planTodayCmd = &cobra.Command{
	Use:   "today",
	Short: "Preview today's tasks for a template without touching the database",
	Long:  "Builds a throwaway plan instance starting on the given date and prints the tasks that fall on today. Task topic rotation depends on the user id, so the same id always previews the same schedule.",
	RunE:  runPlanToday,
}

var (
	planTemplateID string
	planStartDate  string
	planUserID     string
)

func init() {
	planTodayCmd.Flags().StringVarP(&planTemplateID, "template", "t", "", "Template id (required)")
	planTodayCmd.Flags().StringVar(&planStartDate, "start", "", "Plan start date as YYYY-MM-DD (defaults to today)")
	planTodayCmd.Flags().StringVarP(&planUserID, "user-id", "u", "", "User ID used for topic rotation (defaults to a random id)")

	if err := planTodayCmd.MarkFlagRequired("template"); err != nil {
		panic(fmt.Sprintf("failed to mark template flag as required: %v", err))
	}

	planCmd.AddCommand(planTemplatesCmd)
	planCmd.AddCommand(planTodayCmd)
	rootCmd.AddCommand(planCmd)
}

func loadTemplates() (*plan.Registry, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return nil, err
	}
	templates, err := plan.LoadTemplates(cfg.TemplatesPath(), cfg.SchemaPath("plan_templates.schema.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to load plan templates: %w", err)
	}
	return templates, nil
}

func runPlanTemplates(_ *cobra.Command, _ []string) error {
	templates, err := loadTemplates()
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintTemplates(templates.List())
	return nil
}

func runPlanToday(_ *cobra.Command, _ []string) error {
	templates, err := loadTemplates()
	if err != nil {
		return err
	}

	tmpl, err := templates.Select(planTemplateID)
	if err != nil {
		return err
	}

	start := time.Now()
	if planStartDate != "" {
		start, err = time.Parse("2006-01-02", planStartDate)
		if err != nil {
			return fmt.Errorf("invalid start date: %w", err)
		}
	}

	userID := uuid.New()
	if planUserID != "" {
		userID, err = uuid.Parse(planUserID)
		if err != nil {
			return fmt.Errorf("invalid user-id: %w", err)
		}
	}

	inst := plan.NewInstance(userID, tmpl, start)
	daily, err := plan.TasksForDate(inst, tmpl, time.Now())
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintDailyTasks(daily)
	return nil
}
