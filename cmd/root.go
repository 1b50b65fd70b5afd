package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	Version = "1.3.2"
)

func showBanner() {
	greenColor := color.New(color.FgGreen, color.Bold)

	banner := []string{
		"╔══════════════════════════════════════════════════════╗",
		"║   ███████╗███████╗███████╗██████╗                    ║",
		"║   ██╔════╝██╔════╝██╔════╝██╔══██╗                   ║",
		"║   ███████╗█████╗  █████╗  ██║  ██║                   ║",
		"║   ╚════██║██╔══╝  ██╔══╝  ██║  ██║                   ║",
		"║   ███████║███████╗███████╗██████╔╝                   ║",
		"║   ╚══════╝╚══════╝╚══════╝╚═════╝ FORGE              ║",
		"║                                                      ║",
		"║      🌱 Synthetic Dataset Generator 🌱               ║",
		"║                                                      ║",
		"║      users • courses • enrollments • events          ║",
		"╚══════════════════════════════════════════════════════╝",
	}

	for _, line := range banner {
		greenColor.Println(line)
	}

	fmt.Print("                    ")
	color.New(color.FgCyan, color.Bold).Print("Version: ")
	color.New(color.FgYellow, color.Bold).Printf("%s\n", Version)
}

var rootCmd = &cobra.Command{
	Use:   "seedforge",
	Short: "Generate internally-consistent fake datasets for training and demo environments",
	Long: `
SeedForge synthesizes a cross-referencing course-platform dataset
(users, instructors, categories, courses, enrollments, reviews and
analytics events) and writes each collection to a file, ready to be
loaded into a database for demos and training labs.

Volume tiers:
- lite (~18K records, fast iteration)
- full (~176K records, load-testing scale)

Output formats:
- JSON (one document array per collection, default)
- SQLite (one document table per collection)`,

	Run: func(cmd *cobra.Command, args []string) {
		showVersion, _ := cmd.Flags().GetBool("version")
		if showVersion {
			fmt.Printf("SeedForge CLI version %s\n", Version)
			os.Exit(0)
		}

		if len(args) == 0 {
			showBanner()
			fmt.Println()
			cmd.Help()
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./seedforge.config.json)")

	rootCmd.Flags().BoolP("version", "v", false, "Show CLI version")
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env")
		godotenv.Load(".env.local")
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("json")
		viper.SetConfigName("seedforge.config")
	}

	viper.AutomaticEnv()

	viper.ReadInConfig()
}
