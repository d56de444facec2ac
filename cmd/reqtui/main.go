package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/studiowebux/reqtui/internal/clipboard"
	"github.com/studiowebux/reqtui/internal/collection"
	"github.com/studiowebux/reqtui/internal/config"
	"github.com/studiowebux/reqtui/internal/keybinds"
	"github.com/studiowebux/reqtui/internal/tui"
)

var (
	version = "0.1.0"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "reqtui",
	Short: "reqtui - compose and send HTTP requests from the terminal",
	Long: `reqtui is a terminal UI for composing HTTP requests and inspecting responses.

Requests are loaded from a YAML or JSON collection file. Edits stay in memory.

Examples:
  reqtui                               # Start with an empty request
  reqtui -c api.yaml                   # Open a collection
  reqtui -c api.yaml --log-level debug # Trace key dispatch in ~/.reqtui/reqtui.log
  reqtui keybinds export -o keys.json  # Write the effective keybindings`,
	Version: version,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Initialize(); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}
		return runTUI(cmd)
	},
}

var keybindsCmd = &cobra.Command{
	Use:   "keybinds",
	Short: "Inspect keybinding configuration",
}

var keybindsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print the effective keybindings as JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := loadKeybinds(cmd)
		if err != nil {
			return err
		}
		cfg := keybinds.ExportConfig(registry)
		if flagDefaults {
			cfg = keybinds.ExportDefaults()
		}
		if flagOutput != "" {
			if err := keybinds.SaveConfig(cfg, flagOutput); err != nil {
				return fmt.Errorf("failed to write keybindings: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Keybindings written to %s\n", flagOutput)
			return nil
		}
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

var keybindsValidateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check a keybindings file for errors and conflicts",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := flagKeybinds
		if len(args) > 0 {
			path = args[0]
		}
		if path == "" {
			if err := config.Initialize(); err != nil {
				return fmt.Errorf("failed to initialize config: %w", err)
			}
			path = config.KeybindsFile
		}

		cfg, err := keybinds.LoadConfig(path)
		if err != nil {
			return err
		}
		result := keybinds.NewValidator().ValidateConfig(cfg)
		fmt.Fprint(cmd.OutOrStdout(), result.String())
		if result.HasErrors() {
			return fmt.Errorf("%d error(s) in %s", len(result.Errors), path)
		}
		return nil
	},
}

// Flags for root command
var (
	flagCollection string
	flagWrap       int
	flagLogLevel   string
	flagKeybinds   string
	flagDefaults   bool
	flagInsecure   bool
	flagCAFile     string
	flagOutput     string
)

func init() {
	rootCmd.Flags().StringVarP(&flagCollection, "collection", "c", "", "Collection file to open (YAML or JSON)")
	rootCmd.Flags().IntVarP(&flagWrap, "wrap", "w", 0, "Wrap width of the body editor (0 = pane width)")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug/info/warn/error)")
	rootCmd.Flags().BoolVar(&flagInsecure, "insecure", false, "Skip TLS certificate verification")
	rootCmd.Flags().StringVar(&flagCAFile, "ca-file", "", "PEM file of CA certificates to trust")
	rootCmd.PersistentFlags().StringVarP(&flagKeybinds, "keybinds", "k", "", "Keybindings file (default ~/.reqtui/keybinds.json)")

	keybindsExportCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Write to a file instead of stdout")
	keybindsExportCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Export the built-in defaults, ignoring the user file")

	keybindsCmd.AddCommand(keybindsExportCmd)
	keybindsCmd.AddCommand(keybindsValidateCmd)
	rootCmd.AddCommand(keybindsCmd)
}

func runTUI(cmd *cobra.Command) error {
	settings, err := config.LoadSettings(config.SettingsFile)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("wrap") {
		settings.WrapWidth = max(0, flagWrap)
	}
	if flagLogLevel != "" {
		settings.LogLevel = flagLogLevel
	}
	if cmd.Flags().Changed("insecure") {
		settings.Insecure = flagInsecure
	}
	if flagCAFile != "" {
		settings.CAFile = flagCAFile
	}

	level, err := config.ParseLevel(settings.LogLevel)
	if err != nil {
		return err
	}
	closeLog, err := config.SetupLogging(config.LogFile, level)
	if err != nil {
		return err
	}
	defer closeLog()

	registry, err := loadKeybinds(cmd)
	if err != nil {
		return err
	}
	if result := keybinds.NewValidator().ValidateRegistry(registry); result.HasErrors() {
		return fmt.Errorf("invalid keybindings:\n%s", result.String())
	} else if result.HasWarnings() {
		slog.Warn("keybinding warnings", "count", len(result.Warnings))
	}

	coll := collection.New()
	path := flagCollection
	if path == "" {
		path = settings.Collection
	}
	if path != "" {
		resolved, err := config.ResolveCollection(path)
		if err != nil {
			return err
		}
		coll, err = collection.Load(resolved, settings.DefaultMethod)
		if err != nil {
			return err
		}
		slog.Info("collection loaded", "path", resolved, "requests", coll.Len())
	}

	var clip clipboard.Provider = clipboard.Static{Err: clipboard.ErrUnavailable}
	if settings.ClipboardEnabled() {
		clip = clipboard.System{}
	}

	return tui.Run(tui.Options{
		Collection: coll,
		Keys:       registry,
		Settings:   settings,
		Clipboard:  clip,
		Logger:     slog.Default(),
	})
}

// loadKeybinds reads the user keybindings over the defaults
func loadKeybinds(cmd *cobra.Command) (*keybinds.Registry, error) {
	path := flagKeybinds
	if path == "" && config.KeybindsFile == "" {
		if err := config.Initialize(); err != nil {
			return nil, fmt.Errorf("failed to initialize config: %w", err)
		}
	}
	if path == "" {
		path = config.KeybindsFile
	}

	registry, err := keybinds.LoadOrDefault(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load keybindings: %w", err)
	}
	return registry, nil
}
