package cmd

import (
	"fmt"

	"github.com/rustyeddy/tycoon/config"
	"github.com/rustyeddy/tycoon/market"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Generate or validate configuration files",
	Long: `Manage game balance configuration and content packs.

Subcommands:
  init     - Generate a default configuration file
  validate - Validate a configuration file or content pack

Examples:
  tycoon config init -o my-balance.yaml
  tycoon config validate -f my-balance.yaml
  tycoon config validate --pack my-content.yaml`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default configuration file",
	Long: `Create a new configuration file with the standard game balance.

Example:
  tycoon config init -o balance.yaml`,
	RunE: runConfigInit,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a configuration file or content pack",
	Long: `Check that a configuration file or a YAML content pack is valid and
can be loaded.

Examples:
  tycoon config validate -f balance.yaml
  tycoon config validate --pack content.yaml`,
	RunE: runConfigValidate,
}

var (
	configInitOutput    string
	configValidatePath  string
	contentValidatePath string
)

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configValidateCmd)

	configInitCmd.Flags().StringVarP(&configInitOutput, "output", "o", "tycoon.yaml", "output config file path")
	configValidateCmd.Flags().StringVarP(&configValidatePath, "file", "f", "", "path to config file")
	configValidateCmd.Flags().StringVar(&contentValidatePath, "pack", "", "path to content pack")
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if err := cfg.SaveToFile(configInitOutput); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	fmt.Printf("✓ Created default configuration: %s\n", configInitOutput)
	fmt.Println("\nEdit the file and play with:")
	fmt.Printf("  tycoon --config %s new\n", configInitOutput)
	return nil
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	if configValidatePath == "" && contentValidatePath == "" {
		return fmt.Errorf("pass -f for a config file or --pack for a content pack")
	}

	if configValidatePath != "" {
		cfg, err := config.LoadFromFile(configValidatePath)
		if err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
		fmt.Printf("✓ Configuration valid: %s\n", configValidatePath)
		fmt.Printf("  Default difficulty: %s\n", cfg.Game.DefaultDifficulty)
		fmt.Printf("  Journal: %s\n", cfg.Journal.Type)
	}

	if contentValidatePath != "" {
		tables, err := market.LoadFromFile(contentValidatePath)
		if err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
		fmt.Printf("✓ Content pack valid: %s\n", contentValidatePath)
		fmt.Printf("  Goods: %d, assets: %d, cities: %d, difficulties: %d\n",
			len(tables.Goods), len(tables.Assets), len(tables.Cities), len(tables.Difficulties))
	}
	return nil
}
