package cmd

import (
	"fmt"
	"image/color" // This is the standard library color package
	"io"
	"os"
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/term"

	"github.com/arcanaland/cardschema/internal/card"
	"github.com/arcanaland/cardschema/internal/config"
	"github.com/arcanaland/cardschema/internal/library"

	colorize "github.com/fatih/color" // Rename this import to avoid the conflict
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [id|name]",
	Short: "Display information about a card from your card library",
	Long: `Show displays a card from your card library, with a swatch of its color identity.
Cards are looked up by Scryfall ID or by card or face name, ignoring case.

You can specify a library using the --library flag, either a name inside your
configured library directory or a path to a card file or directory.

Examples:
  cardschema show "Fury Sliver"
  cardschema show --library ./bulk.json 0000579f-7b35-4ed3-b44c-db2a538066fe`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, v, err := loadSettings(cmd)
		if err != nil {
			return err
		}

		libraryPath := cfg.Library
		if libraryFlag, _ := cmd.Flags().GetString("library"); libraryFlag != "" {
			libraryPath, err = config.GetCardPath(cfg, libraryFlag)
			if err != nil {
				return err
			}
		}

		lib, err := library.LoadLibrary(libraryPath, v)
		if err != nil {
			return fmt.Errorf("error loading library: %w", err)
		}

		c, err := lib.GetCard(args[0])
		if err != nil {
			return err
		}

		width, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || width <= 0 {
			width = 80 // Default if we can't get terminal width
		}

		displayCard(cmd.OutOrStdout(), c, width)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)

	showCmd.Flags().StringP("library", "l", "", "Card library name or path to a card file or directory")
	addValidationFlags(showCmd)
}

// manaColors maps color identity symbols to their conventional frame colors.
var manaColors = map[string]string{
	"W": "#f8f6d8",
	"U": "#0e68ab",
	"B": "#150b00",
	"R": "#d3202a",
	"G": "#00733e",
}

const colorlessHex = "#cbc2bf"

// identitySwatch renders the card's color identity as a vertical gradient
// of half-block characters, blending neighbouring colors in Lab space.
func identitySwatch(identity []string, width, height int) string {
	stops := make([]colorful.Color, 0, len(identity))
	for _, symbol := range identity {
		if hex, ok := manaColors[symbol]; ok {
			c, _ := colorful.Hex(hex)
			stops = append(stops, c)
		}
	}
	if len(stops) == 0 {
		c, _ := colorful.Hex(colorlessHex)
		stops = append(stops, c)
	}

	var buffer strings.Builder
	rows := height * 2
	for y := 0; y < rows; y += 2 {
		fg := colorfulToColor(gradientAt(stops, float64(y)/float64(rows-1)))
		bg := colorfulToColor(gradientAt(stops, float64(y+1)/float64(rows-1)))
		for x := 0; x < width; x++ {
			buffer.WriteString(ansiColorString('▀', fg, bg))
		}
		buffer.WriteString("\n")
	}

	return strings.TrimSuffix(buffer.String(), "\n")
}

// gradientAt returns the color at position t in [0, 1] along evenly spaced stops.
func gradientAt(stops []colorful.Color, t float64) colorful.Color {
	if len(stops) == 1 {
		return stops[0]
	}
	segment := t * float64(len(stops)-1)
	i := int(segment)
	if i >= len(stops)-1 {
		return stops[len(stops)-1]
	}
	return stops[i].BlendLab(stops[i+1], segment-float64(i)).Clamped()
}

// colorfulToColor converts a colorful.Color to a standard color.Color
func colorfulToColor(c colorful.Color) color.Color {
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// ansiColorString formats a character with truecolor ANSI codes
func ansiColorString(char rune, fg, bg color.Color) string {
	if colorize.NoColor {
		return " "
	}

	r1, g1, b1, _ := fg.RGBA()
	r2, g2, b2, _ := bg.RGBA()

	// Convert from uint32 to uint8 (RGBA() returns values in range 0-65535)
	r1, g1, b1 = r1>>8, g1>>8, b1>>8
	r2, g2, b2 = r2>>8, g2>>8, b2>>8

	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm%c\x1b[0m",
		r1, g1, b1, r2, g2, b2, char)
}

// wrapText wraps text to a specified width
func wrapText(text string, width int) []string {
	if width < 10 {
		width = 40
	}

	var result []string
	for _, paragraph := range strings.Split(text, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			result = append(result, "")
			continue
		}

		currentLine := words[0]
		for _, word := range words[1:] {
			if len(currentLine)+1+len(word) <= width {
				currentLine += " " + word
			} else {
				result = append(result, currentLine)
				currentLine = word
			}
		}
		result = append(result, currentLine)
	}

	return result
}

func label(name string) string {
	return colorize.CyanString("%-9s", name+":")
}

func value(format string, args ...any) string {
	return colorize.HiWhiteString(format, args...)
}

// faceLines renders the gameplay fields shared by cards and faces.
func faceLines(manaCost, typeLine, oracleText, power, toughness, loyalty *string, width int) []string {
	var lines []string
	if manaCost != nil && *manaCost != "" {
		lines = append(lines, label("Cost")+value("%s", *manaCost))
	}
	if typeLine != nil {
		lines = append(lines, label("Type")+value("%s", *typeLine))
	}
	if power != nil && toughness != nil {
		lines = append(lines, label("P/T")+value("%s/%s", *power, *toughness))
	}
	if loyalty != nil {
		lines = append(lines, label("Loyalty")+value("%s", *loyalty))
	}
	if oracleText != nil && *oracleText != "" {
		lines = append(lines, "")
		lines = append(lines, wrapText(*oracleText, width)...)
	}
	return lines
}

func cardInfoLines(c *card.Card, width int) []string {
	var lines []string

	lines = append(lines, label("Card")+value("%s", c.Name))
	lines = append(lines, label("Set")+value("%s (%s) #%s", c.SetName, strings.ToUpper(c.Set), c.CollectorNumber))
	lines = append(lines, label("Rarity")+value("%s", c.Rarity))
	if c.Artist != nil {
		lines = append(lines, label("Artist")+value("%s", *c.Artist))
	}

	if c.IsMultiFaced() {
		for i, face := range c.CardFaces {
			lines = append(lines, "", colorize.HiCyanString("» %s", face.Name))
			lines = append(lines, faceLines(face.ManaCost, face.TypeLine, face.OracleText, face.Power, face.Toughness, face.Loyalty, width)...)
			lines = append(lines, imageLine(c, i))
		}
	} else {
		typeLine := c.TypeLine
		lines = append(lines, faceLines(c.ManaCost, &typeLine, c.OracleText, c.Power, c.Toughness, c.Loyalty, width)...)
		lines = append(lines, imageLine(c, 0))
	}

	var legal []string
	for format := range c.Legalities {
		if c.LegalIn(format) {
			legal = append(legal, format)
		}
	}
	sort.Strings(legal)
	lines = append(lines, "")
	if len(legal) > 0 {
		for i, line := range wrapText(strings.Join(legal, ", "), width-9) {
			if i == 0 {
				lines = append(lines, label("Legal")+line)
			} else {
				lines = append(lines, strings.Repeat(" ", 9)+line)
			}
		}
	} else {
		lines = append(lines, label("Legal")+colorize.YellowString("no formats"))
	}

	var prices []string
	for _, currency := range []string{"usd", "usd_foil", "eur", "eur_foil", "tix"} {
		if p, ok := c.Price(currency); ok {
			prices = append(prices, fmt.Sprintf("%s %s", currency, p))
		}
	}
	if len(prices) > 0 {
		lines = append(lines, label("Prices")+value("%s", strings.Join(prices, " · ")))
	}

	return lines
}

// imageLine names the image shown for a face, falling back to the card's own.
func imageLine(c *card.Card, face int) string {
	images := c.ImageURIsFor(face)
	if images == nil {
		return label("Image") + colorize.YellowString("none")
	}
	return label("Image") + value("%s", images.Normal)
}

// displayCard displays the card information next to its identity swatch
func displayCard(w io.Writer, c *card.Card, width int) {
	const swatchWidth, swatchHeight = 12, 8
	swatchLines := strings.Split(identitySwatch(c.ColorIdentity, swatchWidth, swatchHeight), "\n")

	// We'll display the swatch on the left and info on the right
	spacing := 4
	infoStartCol := swatchWidth + spacing

	// Calculate available width for text, ensuring it's at least 20 characters
	infoWidth := width - infoStartCol - 2
	if infoWidth < 20 {
		infoWidth = 20
	}
	infoLines := cardInfoLines(c, infoWidth)

	fmt.Fprintln(w)

	maxLines := max(len(swatchLines), len(infoLines))
	for i := 0; i < maxLines; i++ {
		fmt.Fprint(w, "  ")
		if i < len(swatchLines) {
			fmt.Fprint(w, swatchLines[i])
			visibleWidth := len([]rune(stripAnsi(swatchLines[i])))
			fmt.Fprint(w, strings.Repeat(" ", infoStartCol-visibleWidth))
		} else {
			fmt.Fprint(w, strings.Repeat(" ", infoStartCol))
		}

		if i < len(infoLines) {
			fmt.Fprint(w, infoLines[i])
		}

		fmt.Fprintln(w)
	}

	fmt.Fprintln(w)
}

// stripAnsi removes ANSI escape sequences from a string
func stripAnsi(s string) string {
	var result strings.Builder
	inEscape := false
	for _, c := range s {
		if inEscape {
			if c == 'm' {
				inEscape = false
			}
		} else if c == '\033' {
			inEscape = true
		} else {
			result.WriteRune(c)
		}
	}
	return result.String()
}
