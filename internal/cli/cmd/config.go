package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/tvfocus/internal/application/usecase"
	"github.com/bnema/tvfocus/internal/cli/styles"
	"github.com/bnema/tvfocus/internal/infrastructure/config"
)

var (
	configKeysJSON bool
	configForce    bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and create the configuration",
	Long: `Show the effective configuration, list the available keys, print the
JSON schema or write a config file with the defaults.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as TOML",
	Long:  `Print the configuration after the config file, TVFOCUS_ environment variables and defaults are merged.`,
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configKeysCmd = &cobra.Command{
	Use:   "keys [section]",
	Short: "List configuration keys with their defaults",
	Long: `List every configuration key with its type, default value and environment
variable. Pass a section (logging, navigation, remote, demo) to narrow the list.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigKeys,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the config file",
	Args:  cobra.NoArgs,
	RunE:  runConfigSchema,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default settings",
	Long: `Write the default configuration to the --config path, or to
$XDG_CONFIG_HOME/tvfocus/config.toml. An existing file is only replaced
after confirmation or with --force.`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configKeysCmd)
	configCmd.AddCommand(configSchemaCmd)
	configCmd.AddCommand(configInitCmd)

	configKeysCmd.Flags().BoolVar(&configKeysJSON, "json", false, "output as JSON")
	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "overwrite an existing file without asking")
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	content, err := config.EncodeTOML(app.Config)
	if err != nil {
		return err
	}

	renderer := styles.NewConfigSchemaRenderer(app.Theme)
	fmt.Println(renderer.RenderConfigFile(app.Configs.ConfigFileUsed()))
	fmt.Println()
	fmt.Print(content)
	return nil
}

func runConfigKeys(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	var section string
	if len(args) == 1 {
		section = args[0]
	}

	uc := usecase.NewGetConfigSchemaUseCase(config.NewSchemaProvider())
	out, err := uc.Execute(app.Context(), usecase.GetConfigSchemaInput{Section: section})
	if err != nil {
		return err
	}
	if section != "" && len(out.Keys) == 0 {
		return fmt.Errorf("unknown config section %q", section)
	}

	renderer := styles.NewConfigSchemaRenderer(app.Theme)
	if configKeysJSON {
		data, err := renderer.RenderJSON(out.Keys)
		if err != nil {
			return err
		}
		fmt.Println(data)
		return nil
	}
	fmt.Println(renderer.Render(out.Keys))
	return nil
}

func runConfigSchema(_ *cobra.Command, _ []string) error {
	data, err := config.JSONSchema()
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func runConfigInit(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewConfigSchemaRenderer(app.Theme)

	path := rootOpts.ConfigFile
	if path == "" {
		var err error
		if path, err = config.GetConfigFile(); err != nil {
			return err
		}
	}

	_, statErr := os.Stat(path)
	switch {
	case statErr == nil && !configForce:
		ok, err := styles.RunConfirm(app.Theme, fmt.Sprintf("Replace %s with the defaults?", path))
		if err != nil {
			return fmt.Errorf("confirm: %w", err)
		}
		if !ok {
			fmt.Println(app.Theme.Subtle.Render("Left unchanged"))
			return nil
		}
	case statErr != nil && !errors.Is(statErr, os.ErrNotExist):
		return fmt.Errorf("stat %s: %w", path, statErr)
	}

	if err := config.WriteConfigOrdered(config.DefaultConfig(), path); err != nil {
		fmt.Println(renderer.RenderError(err))
		return err
	}
	fmt.Println(renderer.RenderWritten(path))
	return nil
}
