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
	Version = "0.3.0"
)

func showBanner() {
	green := color.New(color.FgGreen, color.Bold)

	banner := []string{
		"███╗   ███╗██╗███╗   ███╗██╗ ██████╗",
		"████╗ ████║██║████╗ ████║██║██╔════╝",
		"██╔████╔██║██║██╔████╔██║██║██║     ",
		"██║╚██╔╝██║██║██║╚██╔╝██║██║██║     ",
		"██║ ╚═╝ ██║██║██║ ╚═╝ ██║██║╚██████╗",
		"╚═╝     ╚═╝╚═╝╚═╝     ╚═╝╚═╝ ╚═════╝",
	}
	for _, line := range banner {
		green.Println(line)
	}

	color.New(color.FgCyan, color.Bold).Print("Version: ")
	color.New(color.FgYellow, color.Bold).Printf("%s\n", Version)
}

var rootCmd = &cobra.Command{
	Use:   "mimic",
	Short: "Sample-driven referential fake-data generator",
	Long: `
mimic profiles a small sample of your business, budget and card tables and
synthesizes large volumes of referentially consistent fake rows, emitting
CSV files plus a SQL loader script.

It infers each column's type, null rate, value ranges and string shape from
the sample alone; no live database schema is needed to generate.`,

	Run: func(cmd *cobra.Command, args []string) {
		showVersion, _ := cmd.Flags().GetBool("version")
		if showVersion {
			fmt.Printf("mimic version %s\n", Version)
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

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./mimic.config.json)")
	rootCmd.Flags().BoolP("version", "v", false, "Show CLI version")
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env.local")
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("mimic.config")
		viper.SetConfigType("json")
	}

	viper.AutomaticEnv()

	// A missing config file is fine; defaults cover everything.
	viper.ReadInConfig()
}
