package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/cardschema/internal/config"
	"github.com/arcanaland/cardschema/internal/library"
	"github.com/arcanaland/cardschema/internal/validator"
)

// libraryCmd represents the library command group
var libraryCmd = &cobra.Command{
	Use:   "library",
	Short: "Manage your local card library",
	Long:  `Commands for managing the directory of card documents used by show.`,
}

// libraryListCmd represents the library ls command
var libraryListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List the cards in your card library",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, v, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		libraryPath, err := filepath.EvalSymlinks(cfg.Library)
		if os.IsNotExist(err) {
			fmt.Fprintf(out, "Card library at %s does not exist.\n", cfg.Library)
			fmt.Fprintln(out, "Run 'cardschema library init' to create it.")
			return nil
		}
		if err != nil {
			return fmt.Errorf("error resolving library path: %w", err)
		}

		lib, err := library.LoadLibrary(libraryPath, v)
		if err != nil {
			return err
		}

		if len(lib.Documents) == 0 {
			fmt.Fprintln(out, "No cards found in your card library.")
			fmt.Fprintln(out, "You can add cards by copying Scryfall JSON files to:", libraryPath)
			return nil
		}

		for _, doc := range lib.Documents {
			if doc.Valid() {
				c := doc.Card
				fmt.Fprintf(out, "%s %s (%s #%s) %s\n", color.GreenString("✓"), c.Name, c.Set, c.CollectorNumber, c.ID)
				continue
			}

			if shapeErr := validator.ExtractShapeError(doc.Err); shapeErr != nil {
				fmt.Fprintf(out, "%s %s: %d violations\n", color.RedString("✗"), filepath.Base(doc.Source), len(shapeErr.Violations))
			} else {
				fmt.Fprintf(out, "%s %s: %v\n", color.RedString("✗"), filepath.Base(doc.Source), doc.Err)
			}
		}
		return nil
	},
}

// libraryInitCmd represents the library init command
var libraryInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the card library and config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		if err := os.MkdirAll(cfg.Library, 0755); err != nil {
			return fmt.Errorf("error creating card library: %w", err)
		}

		fmt.Fprintln(out, "Card library initialized at:", cfg.Library)
		fmt.Fprintln(out, "You can now add cards by copying Scryfall JSON files to this directory.")
		fmt.Fprintln(out, "Config file initialized at:", config.GetConfigFilePath())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(libraryCmd)
	libraryCmd.AddCommand(libraryListCmd)
	libraryCmd.AddCommand(libraryInitCmd)
	addValidationFlags(libraryListCmd)
}
