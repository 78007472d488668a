package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/FlyRocketToMars/RocktheInterview/internal/config"
	"github.com/FlyRocketToMars/RocktheInterview/internal/gap"
	"github.com/FlyRocketToMars/RocktheInterview/internal/observability"
	"github.com/FlyRocketToMars/RocktheInterview/internal/skills"
	"github.com/FlyRocketToMars/RocktheInterview/internal/taxonomy"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run a skill gap analysis between a resume and a job description",
	Long:  "Extracts catalog skills from a resume and a job description, then reports gaps, strengths and extras with an importance classification for each gap.",
	RunE:  runAnalyze,
}

var (
	analyzeResumePath string
	analyzeJDPath     string
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeResumePath, "resume", "r", "", "Path to the resume text file (required)")
	analyzeCmd.Flags().StringVarP(&analyzeJDPath, "jd", "j", "", "Path to the job description text file (required)")

	if err := analyzeCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}
	if err := analyzeCmd.MarkFlagRequired("jd"); err != nil {
		panic(fmt.Sprintf("failed to mark jd flag as required: %v", err))
	}

	rootCmd.AddCommand(analyzeCmd)
}

// loadCatalog reads the taxonomy and alias documents and builds an extractor.
func loadCatalog() (*taxonomy.Taxonomy, *skills.Extractor, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return nil, nil, err
	}
	tax, err := taxonomy.Load(cfg.TaxonomyPath(), cfg.SchemaPath("taxonomy.schema.json"))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load skills taxonomy: %w", err)
	}
	aliases, err := taxonomy.LoadAliases(cfg.AliasesPath(), cfg.SchemaPath("aliases.schema.json"), tax)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load skill aliases: %w", err)
	}
	return tax, skills.NewExtractor(tax, aliases), nil
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	resumeText, err := os.ReadFile(analyzeResumePath)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}
	jdText, err := os.ReadFile(analyzeJDPath)
	if err != nil {
		return fmt.Errorf("failed to read job description: %w", err)
	}

	tax, extractor, err := loadCatalog()
	if err != nil {
		return err
	}

	resumeSkills := extractor.Extract(string(resumeText))
	jdSkills := extractor.Extract(string(jdText))

	analysis := gap.Analyze(resumeSkills, jdSkills)
	importance := make(map[string]skills.Importance, len(analysis.Gaps))
	for skill := range analysis.Gaps {
		importance[skill] = skills.ClassifyImportance(skill, string(jdText))
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintExtractedSkills("RESUME SKILLS", resumeSkills, tax)
	printer.PrintExtractedSkills("JOB DESCRIPTION SKILLS", jdSkills, tax)
	printer.PrintGapAnalysis(analysis, importance)

	return nil
}
