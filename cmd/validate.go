package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/cardschema/internal/library"
	"github.com/arcanaland/cardschema/internal/validator"
)

// errValidationFailed is returned once every document has been reported.
var errValidationFailed = errors.New("validation failed")

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [path|-]...",
	Short: "Validate card documents",
	Long: `Validate checks card documents against the Scryfall card shape. Each path may be
a JSON file holding one card or an array of cards (as in bulk data files), a
directory of such files, or - to read standard input.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, v, err := loadSettings(cmd)
		if err != nil {
			return err
		}

		var docs []library.Document
		for _, path := range args {
			pathDocs, err := readInput(cmd.InOrStdin(), path, v)
			if err != nil {
				return err
			}
			docs = append(docs, pathDocs...)
		}

		format, _ := cmd.Flags().GetString("format")
		grouped, _ := cmd.Flags().GetBool("grouped")

		out := cmd.OutOrStdout()
		switch format {
		case "json":
			err = printJSON(out, docs)
		case "text":
			printText(out, docs, grouped)
		default:
			return fmt.Errorf("unknown format %q (expected text or json)", format)
		}
		if err != nil {
			return err
		}

		for _, doc := range docs {
			if !doc.Valid() {
				return errValidationFailed
			}
		}
		return nil
	},
}

func init() {
	validateCmd.Flags().StringP("format", "f", "text", "Output format: text or json")
	validateCmd.Flags().Bool("grouped", false, "Group violations by nested object")
	addValidationFlags(validateCmd)
}

func readInput(stdin io.Reader, path string, v *validator.Validator) ([]library.Document, error) {
	if path != "-" {
		return library.ReadDocuments(path, v)
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, fmt.Errorf("error reading stdin: %w", err)
	}
	return library.Parse("stdin", data, v), nil
}

func printText(w io.Writer, docs []library.Document, grouped bool) {
	fmt.Fprintln(w, "Validation Results:")
	fmt.Fprintln(w, "-------------------")

	invalid := 0
	for _, doc := range docs {
		if doc.Valid() {
			fmt.Fprintf(w, "%s '%s' is a valid card (%s).\n", color.GreenString("✅"), doc.Source, doc.Card.Name)
			continue
		}

		invalid++
		shapeErr := validator.ExtractShapeError(doc.Err)
		if shapeErr == nil {
			fmt.Fprintf(w, "%s '%s' could not be read: %v\n", color.RedString("❌"), doc.Source, doc.Err)
			continue
		}

		fmt.Fprintf(w, "%s '%s' has %d validation errors:\n", color.RedString("❌"), doc.Source, len(shapeErr.Violations))
		if grouped {
			printTree(w, shapeErr.Grouped(), 0)
			continue
		}
		for i, violation := range shapeErr.Violations {
			fmt.Fprintf(w, "%d. %s\n", i+1, violation)
		}
	}

	if len(docs) > 1 {
		fmt.Fprintf(w, "\n%d of %d documents valid.\n", len(docs)-invalid, len(docs))
	}
}

func printTree(w io.Writer, violations []validator.Violation, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, violation := range violations {
		fmt.Fprintf(w, "%s- %s\n", indent, violation)
		if len(violation.Nested) > 0 {
			printTree(w, violation.Nested, depth+1)
		}
	}
}

type documentReport struct {
	Source     string                `json:"source"`
	Valid      bool                  `json:"valid"`
	Name       string                `json:"name,omitempty"`
	Error      string                `json:"error,omitempty"`
	Violations []validator.Violation `json:"violations,omitempty"`
}

func printJSON(w io.Writer, docs []library.Document) error {
	reports := make([]documentReport, 0, len(docs))
	for _, doc := range docs {
		report := documentReport{Source: doc.Source, Valid: doc.Valid()}
		switch shapeErr := validator.ExtractShapeError(doc.Err); {
		case doc.Valid():
			report.Name = doc.Card.Name
		case shapeErr != nil:
			report.Violations = shapeErr.Violations
		default:
			report.Error = doc.Err.Error()
		}
		reports = append(reports, report)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(reports)
}

// exitCode maps command errors to process exit codes.
func exitCode(err error) int {
	if errors.Is(err, errValidationFailed) {
		return 2
	}
	return 1
}

// Main runs the root command and exits the process on failure.
func Main() {
	if err := Execute(); err != nil {
		if !errors.Is(err, errValidationFailed) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(exitCode(err))
	}
}
