package gamedata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ParseHexColor converts a hex color string (e.g., "#FF0000" or "FF0000") to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %q", hex)
	}

	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}

	return tcell.NewHexColor(int32(rgb)), nil
}

// ColorDef is a named palette entry loaded from palette.json.
type ColorDef struct {
	Name string `json:"name"` // Color identifier stored in board cells (e.g., "cyan")
	Hex  string `json:"hex"`  // Display color (e.g., "#00FFFF")
}

// TCellColor returns the display color, or white if the hex value is malformed.
func (c ColorDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(c.Hex)
	if err != nil {
		return tcell.ColorWhite
	}
	return color
}

// PaletteFile represents the structure of palette.json.
type PaletteFile struct {
	Colors []ColorDef `json:"colors"`
}

// LoadColors loads the color palette from the embedded palette.json file.
func LoadColors() ([]ColorDef, error) {
	file, err := Load[PaletteFile]("palette.json")
	if err != nil {
		return nil, err
	}
	return file.Colors, nil
}
