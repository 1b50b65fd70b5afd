package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Lumos-Labs-HQ/seedforge/internal/config"
	"github.com/Lumos-Labs-HQ/seedforge/internal/schema"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a SeedForge project",
	Long:  `Create seedforge.config.json, the output directory and a starter schema file in the current directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.InitializeProject(); err != nil {
			return err
		}
		color.Green("✅ Created %s", config.ConfigFileName)

		schemaPath := config.DefaultConfig().SchemaPath
		if _, err := os.Stat(schemaPath); os.IsNotExist(err) {
			data, err := json.MarshalIndent(schema.Default(), "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal default schema: %w", err)
			}
			if err := os.WriteFile(schemaPath, data, 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", schemaPath, err)
			}
			color.Green("✅ Created %s", schemaPath)
		}

		fmt.Println()
		color.Cyan("Next: run 'seedforge generate' to build your first dataset")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
