package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/wmiitile/internal/application/usecase"
	"github.com/bnema/wmiitile/internal/cli/output"
	"github.com/bnema/wmiitile/internal/cli/styles"
	"github.com/bnema/wmiitile/internal/infrastructure/config"
)

var (
	configShowFormat string
	configKeysJSON   bool
	configKeySection string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
	Long:  `Show where the config file lives, the effective settings and every supported key.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	RunE:  runConfigPath,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Long: `Show the configuration after defaults, the config file and WMIITILE_*
environment overrides have been applied.`,
	RunE: runConfigShow,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the config file",
	Long: `Print a JSON schema describing config.toml, suitable for editors that
validate TOML against JSON schemas.`,
	RunE: runConfigSchema,
}

var configKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List every supported config key",
	Long: `List every config key with its type, default value and accepted values.

Examples:
  wmiitile config keys
  wmiitile config keys --section layout
  wmiitile config keys --json`,
	RunE: runConfigKeys,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSchemaCmd)
	configCmd.AddCommand(configKeysCmd)

	configShowCmd.Flags().StringVarP(&configShowFormat, "format", "f", "text", "Output format: text, json, yaml")
	configKeysCmd.Flags().BoolVar(&configKeysJSON, "json", false, "Output keys as JSON")
	configKeysCmd.Flags().StringVarP(&configKeySection, "section", "s", "", "Only list keys of this section")
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	fmt.Fprintln(cmd.OutOrStdout(), app.ConfigManager.GetConfigFile())
	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	format, err := output.ParseFormat(configShowFormat)
	if err != nil {
		return err
	}
	if format.Structured() {
		return output.Write(cmd.OutOrStdout(), format, app.Config)
	}

	renderer := styles.NewConfigRenderer(app.Theme)
	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderEffective(app.ConfigManager.GetConfigFile(), app.Config))
	return nil
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	schema, err := config.GenerateSchema()
	if err != nil {
		return fmt.Errorf("generate schema: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(schema))
	return nil
}

func runConfigKeys(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	uc := usecase.NewGetConfigSchemaUseCase(config.NewSchemaProvider())
	result, err := uc.Execute(app.Ctx(), usecase.GetConfigSchemaInput{Section: configKeySection})
	if err != nil {
		fmt.Fprintln(os.Stderr, styles.NewConfigRenderer(app.Theme).RenderError(err))
		return err
	}

	renderer := styles.NewConfigSchemaRenderer(app.Theme)
	if configKeysJSON {
		out, err := renderer.RenderJSON(result.Keys)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderer.Render(result.Keys, result.Sections))
	return nil
}
