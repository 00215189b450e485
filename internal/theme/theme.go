// Package theme defines the three visual roles widgets render in: inactive,
// hot (focused) and active (engaged). Themes can be derived from a small
// palette or loaded from a JSON file.
package theme

import (
	"fmt"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/dshills/tuikit/internal/renderer/core"
)

// Theme holds the style for each widget role.
type Theme struct {
	// Inactive is the style for widgets that are neither focused nor engaged.
	Inactive core.Style

	// Hot is the style for the widget focus navigation currently points at.
	Hot core.Style

	// Active is the style for the widget that has captured input.
	Active core.Style
}

// Default returns the classic palette: white on black for inactive widgets,
// inverted for the hot widget, and black on red for the active one.
func Default() Theme {
	return Theme{
		Inactive: core.NewStyle(core.ColorWhite, core.ColorBlack),
		Hot:      core.NewStyle(core.ColorBlack, core.ColorWhite),
		Active:   core.NewStyle(core.ColorBlack, core.ColorRed),
	}
}

// Derive builds a theme from a foreground, background and accent color.
// The hot role inverts the base pair; the active role places readable text
// on the accent, picking black or white by the accent's perceived lightness.
func Derive(fg, bg, accent core.Color) Theme {
	return Theme{
		Inactive: core.NewStyle(fg, bg),
		Hot:      core.NewStyle(bg, fg),
		Active:   core.NewStyle(contrastText(accent), accent),
	}
}

// Blend mixes two RGB colors in Lab space, which keeps midpoints from
// turning muddy the way naive RGB averaging does. t=0 returns a, t=1
// returns b.
func Blend(a, b core.Color, t float64) core.Color {
	blended := toColorful(a).BlendLab(toColorful(b), t).Clamped()
	return fromColorful(blended)
}

// contrastText returns black or white, whichever reads better on bg.
func contrastText(bg core.Color) core.Color {
	_, _, l := toColorful(bg).Hcl()
	if l > 0.5 {
		return core.ColorBlack
	}
	return core.ColorWhite
}

// toColorful converts an RGB core.Color for colorspace math.
// Indexed and default colors degrade to black; Derive and Blend are meant
// for true-color palettes.
func toColorful(c core.Color) colorful.Color {
	if c.Default || c.Indexed {
		return colorful.Color{}
	}
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// fromColorful converts back to a core RGB color.
func fromColorful(c colorful.Color) core.Color {
	r, g, b := c.RGB255()
	return core.ColorFromRGB(r, g, b)
}

// Load reads a theme from a JSON file. A palette block derives all three
// roles from a few colors; explicit role objects overlay the result, and
// missing pieces keep their Default values. The expected shape is:
//
//	{
//	  "palette":  {"fg": "#E0E0E0", "bg": "#101010", "accent": "#CC3333",
//	               "accent_strength": 0.8},
//	  "inactive": {"fg": "#FFFFFF", "bg": "#000000"},
//	  "hot":      {"fg": "#000000", "bg": "#FFFFFF", "bold": true},
//	  "active":   {"fg": "#000000", "bg": "#FF0000"}
//	}
func Load(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("reading theme file: %w", err)
	}
	if !gjson.ValidBytes(data) {
		return Theme{}, fmt.Errorf("theme file %s: invalid JSON", path)
	}

	t := Default()
	if derived, ok, err := loadPalette(data); err != nil {
		return Theme{}, err
	} else if ok {
		t = derived
	}
	if err := loadRole(data, "inactive", &t.Inactive); err != nil {
		return Theme{}, err
	}
	if err := loadRole(data, "hot", &t.Hot); err != nil {
		return Theme{}, err
	}
	if err := loadRole(data, "active", &t.Active); err != nil {
		return Theme{}, err
	}
	return t, nil
}

// loadPalette derives a theme from the optional palette block. The accent is
// required; fg and bg default to white and black. accent_strength in [0, 1]
// mixes the accent toward the background before derivation, so loud accents
// can be toned down without picking a second color (1 keeps the pure accent).
func loadPalette(data []byte) (Theme, bool, error) {
	if !gjson.GetBytes(data, "palette").Exists() {
		return Theme{}, false, nil
	}

	res := gjson.GetBytes(data, "palette.accent")
	if !res.Exists() {
		return Theme{}, false, fmt.Errorf("theme palette: accent color is required")
	}
	accent, err := core.ColorFromHex(res.String())
	if err != nil {
		return Theme{}, false, fmt.Errorf("theme palette accent: %w", err)
	}

	fg := core.ColorWhite
	if res := gjson.GetBytes(data, "palette.fg"); res.Exists() {
		if fg, err = core.ColorFromHex(res.String()); err != nil {
			return Theme{}, false, fmt.Errorf("theme palette fg: %w", err)
		}
	}
	bg := core.ColorBlack
	if res := gjson.GetBytes(data, "palette.bg"); res.Exists() {
		if bg, err = core.ColorFromHex(res.String()); err != nil {
			return Theme{}, false, fmt.Errorf("theme palette bg: %w", err)
		}
	}

	if res := gjson.GetBytes(data, "palette.accent_strength"); res.Exists() {
		s := res.Float()
		if s < 0 || s > 1 {
			return Theme{}, false, fmt.Errorf("theme palette: accent_strength %v outside [0, 1]", s)
		}
		accent = Blend(bg, accent, s)
	}

	return Derive(fg, bg, accent), true, nil
}

// loadRole overlays one role's JSON object onto style.
func loadRole(data []byte, role string, style *core.Style) error {
	if fg := gjson.GetBytes(data, role+".fg"); fg.Exists() {
		c, err := core.ColorFromHex(fg.String())
		if err != nil {
			return fmt.Errorf("theme role %s: %w", role, err)
		}
		style.Foreground = c
	}
	if bg := gjson.GetBytes(data, role+".bg"); bg.Exists() {
		c, err := core.ColorFromHex(bg.String())
		if err != nil {
			return fmt.Errorf("theme role %s: %w", role, err)
		}
		style.Background = c
	}
	if bold := gjson.GetBytes(data, role+".bold"); bold.Exists() && bold.Bool() {
		style.Attributes = style.Attributes.With(core.AttrBold)
	}
	return nil
}

// Save writes the theme as a JSON file, creating or replacing path.
func (t Theme) Save(path string) error {
	data := []byte("{}")
	var err error

	roles := []struct {
		name  string
		style core.Style
	}{
		{"inactive", t.Inactive},
		{"hot", t.Hot},
		{"active", t.Active},
	}
	for _, r := range roles {
		if data, err = saveRole(data, r.name, r.style); err != nil {
			return fmt.Errorf("encoding theme role %s: %w", r.name, err)
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing theme file: %w", err)
	}
	return nil
}

// saveRole appends one role's colors to the JSON document.
func saveRole(data []byte, role string, style core.Style) ([]byte, error) {
	var err error
	if data, err = sjson.SetBytes(data, role+".fg", style.Foreground.ToHex()); err != nil {
		return nil, err
	}
	if data, err = sjson.SetBytes(data, role+".bg", style.Background.ToHex()); err != nil {
		return nil, err
	}
	if style.Attributes.Has(core.AttrBold) {
		if data, err = sjson.SetBytes(data, role+".bold", true); err != nil {
			return nil, err
		}
	}
	return data, nil
}
