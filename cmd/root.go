package cmd

import (
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/cardschema/internal/config"
	"github.com/arcanaland/cardschema/internal/validator"
)

var verbose bool

// autoNoColor is fatih/color's own terminal detection, restored in auto mode.
var autoNoColor = color.NoColor

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "cardschema",
	Short: "Tool for validating Scryfall card documents",
	Long: `Cardschema is a command-line tool for validating card documents returned by the
Scryfall API against the card shape, and for browsing a local library of them.
Every violation is reported with its field path, e.g. card_faces[1].mana_cost.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr")

	RootCmd.AddCommand(validateCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

// loadSettings loads the config file and applies it, letting explicitly set
// --strict and --single-image-source flags win over the file.
func loadSettings(cmd *cobra.Command) (*config.Config, *validator.Validator, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, err
	}

	if f := cmd.Flags().Lookup("strict"); f != nil && f.Changed {
		cfg.Strict, _ = cmd.Flags().GetBool("strict")
	}
	if f := cmd.Flags().Lookup("single-image-source"); f != nil && f.Changed {
		cfg.SingleImageSource, _ = cmd.Flags().GetBool("single-image-source")
	}

	switch cfg.Color {
	case config.ColorAuto:
		color.NoColor = autoNoColor
	case config.ColorAlways:
		color.NoColor = false
	case config.ColorNever:
		color.NoColor = true
	}

	slog.Debug("settings loaded",
		slog.String("config", config.GetConfigFilePath()),
		slog.Bool("strict", cfg.Strict),
		slog.Bool("single_image_source", cfg.SingleImageSource),
	)

	v := validator.NewValidator(validator.Options{
		DisallowUnknownFields:    cfg.Strict,
		RequireSingleImageSource: cfg.SingleImageSource,
	})
	return cfg, v, nil
}

func addValidationFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("strict", false, "Report fields the card shape does not declare")
	cmd.Flags().Bool("single-image-source", false, "Require images either on the card or on every face")
}
