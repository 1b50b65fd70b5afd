package cmd

import (
	"fmt"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Lumos-Labs-HQ/seedforge/internal/config"
	"github.com/Lumos-Labs-HQ/seedforge/internal/generator"
	"github.com/Lumos-Labs-HQ/seedforge/internal/schema"
	"github.com/Lumos-Labs-HQ/seedforge/internal/sink"
)

var (
	genMode       string
	genCollection string
	genFormat     string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the synthetic dataset",
	Long: `
Generate every collection (categories, users, instructors, courses,
enrollments, reviews, analytics events) plus a generation summary.

Examples:
  seedforge generate
  seedforge generate --mode full
  seedforge generate --mode lite --format sqlite`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if genMode == "" {
			genMode = cfg.Generate.Mode
		}
		if genFormat == "" {
			genFormat = cfg.Generate.Format
		}

		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		// Reject bad arguments before any generation starts.
		vol, err := schema.VolumesFor(genMode)
		if err != nil {
			return err
		}
		if !isValidCollection(genCollection) {
			return fmt.Errorf("unknown collection: %s. Supported collections: %v", genCollection, collectionChoices())
		}
		if genFormat != "json" && genFormat != "sqlite" {
			return fmt.Errorf("unsupported output format: %s. Supported formats: [json sqlite]", genFormat)
		}

		sch, err := schema.Load(cfg.SchemaPath)
		if err != nil {
			return err
		}

		color.Cyan("🎯 Initializing SeedForge data generator (%s mode)", genMode)
		color.Cyan("📊 Target volume: %d records across %d collections", vol.Total(), len(generator.Collections))

		gen := generator.New(sch, vol, gofakeit.New(0))

		var writer generator.Writer
		outputPath := cfg.OutputPath
		switch genFormat {
		case "sqlite":
			db, err := sink.NewSQLite(cfg.OutputPath)
			if err != nil {
				return err
			}
			defer db.Close()
			writer = db
			outputPath = db.Path()
		default:
			writer = sink.NewJSON(cfg.OutputPath)
		}

		summary, err := gen.Run(genMode, genCollection, writer)
		if err != nil {
			return err
		}

		color.Green("📋 Total records: %d", summary.TotalRecords)
		color.Green("📁 Output saved to: %s", outputPath)
		return nil
	},
}

func collectionChoices() []string {
	return append(append([]string{}, generator.Collections...), "all")
}

func isValidCollection(name string) bool {
	for _, c := range collectionChoices() {
		if name == c {
			return true
		}
	}
	return false
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVar(&genMode, "mode", "", "Generation mode: lite or full (default from config)")
	generateCmd.Flags().StringVar(&genCollection, "collection", "all", "Collection to generate (the full pipeline always runs)")
	generateCmd.Flags().StringVar(&genFormat, "format", "", "Output format: json or sqlite (default from config)")
}
