package theme

import (
	"bytes"
	"fmt"
	"os"
	"regexp"
	"sort"

	"github.com/BurntSushi/toml"
)

// thTOMLTheme is the TOML-serializable representation of a Theme.
type thTOMLTheme struct {
	Name     string         `toml:"name"`
	Base     thTOMLBase     `toml:"base"`
	Panel    thTOMLPanel    `toml:"panel"`
	Timeline thTOMLTimeline `toml:"timeline"`
	Help     thTOMLHelp     `toml:"help"`
}

type thTOMLBase struct {
	Foreground string `toml:"foreground"`
	Dim        string `toml:"dim"`
	Accent     string `toml:"accent"`
}

type thTOMLPanel struct {
	Border      string `toml:"border"`
	BorderFocus string `toml:"border_focus"`
	Title       string `toml:"title"`
	Selected    string `toml:"selected"`
	Cursor      string `toml:"cursor"`
}

type thTOMLTimeline struct {
	Rush     string `toml:"rush"`
	Relaxed  string `toml:"relaxed"`
	Standard string `toml:"standard"`
	Track    string `toml:"track"`
	Knob     string `toml:"knob"`
}

type thTOMLHelp struct {
	Key  string `toml:"key"`
	Desc string `toml:"desc"`
}

var thHexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// LoadFromTOML parses a TOML theme definition from raw bytes.
func LoadFromTOML(data []byte) (Theme, error) {
	var tt thTOMLTheme
	if err := toml.Unmarshal(data, &tt); err != nil {
		return Theme{}, fmt.Errorf("theme: parse TOML: %w", err)
	}

	t := Theme{
		Name:       tt.Name,
		Foreground: tt.Base.Foreground,
		Dim:        tt.Base.Dim,
		Accent:     tt.Base.Accent,

		Border:      tt.Panel.Border,
		BorderFocus: tt.Panel.BorderFocus,
		Title:       tt.Panel.Title,
		Selected:    tt.Panel.Selected,
		Cursor:      tt.Panel.Cursor,

		Rush:     tt.Timeline.Rush,
		Relaxed:  tt.Timeline.Relaxed,
		Standard: tt.Timeline.Standard,
		Track:    tt.Timeline.Track,
		Knob:     tt.Timeline.Knob,

		HelpKey:  tt.Help.Key,
		HelpDesc: tt.Help.Desc,
	}

	if err := thValidateTheme(t); err != nil {
		return Theme{}, err
	}
	return t, nil
}

// LoadFile reads a TOML theme from path and registers it. The returned name
// can be passed to SetCurrent.
func LoadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("theme: read %s: %w", path, err)
	}
	t, err := LoadFromTOML(data)
	if err != nil {
		return "", fmt.Errorf("theme: %s: %w", path, err)
	}
	thRegister(t)
	return t.Name, nil
}

// SaveToTOML serializes a theme to TOML bytes.
func SaveToTOML(t Theme) ([]byte, error) {
	tt := thTOMLTheme{
		Name: t.Name,
		Base: thTOMLBase{
			Foreground: t.Foreground,
			Dim:        t.Dim,
			Accent:     t.Accent,
		},
		Panel: thTOMLPanel{
			Border:      t.Border,
			BorderFocus: t.BorderFocus,
			Title:       t.Title,
			Selected:    t.Selected,
			Cursor:      t.Cursor,
		},
		Timeline: thTOMLTimeline{
			Rush:     t.Rush,
			Relaxed:  t.Relaxed,
			Standard: t.Standard,
			Track:    t.Track,
			Knob:     t.Knob,
		},
		Help: thTOMLHelp{
			Key:  t.HelpKey,
			Desc: t.HelpDesc,
		},
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(tt); err != nil {
		return nil, fmt.Errorf("theme: encode TOML: %w", err)
	}
	return buf.Bytes(), nil
}

// thColorFields maps TOML-style field names to the theme's colors.
func thColorFields(t Theme) map[string]string {
	return map[string]string{
		"foreground":   t.Foreground,
		"dim":          t.Dim,
		"accent":       t.Accent,
		"border":       t.Border,
		"border_focus": t.BorderFocus,
		"title":        t.Title,
		"selected":     t.Selected,
		"cursor":       t.Cursor,
		"rush":         t.Rush,
		"relaxed":      t.Relaxed,
		"standard":     t.Standard,
		"track":        t.Track,
		"knob":         t.Knob,
		"help_key":     t.HelpKey,
		"help_desc":    t.HelpDesc,
	}
}

// thValidateTheme checks that the name is set and every color is valid hex.
// Fields are checked in sorted order so the reported field is stable.
func thValidateTheme(t Theme) error {
	if t.Name == "" {
		return fmt.Errorf("theme: missing required field %q", "name")
	}

	fields := thColorFields(t)
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, field := range names {
		value := fields[field]
		if value == "" {
			return fmt.Errorf("theme: missing required field %q", field)
		}
		if !thHexColorRegex.MatchString(value) {
			return fmt.Errorf("theme: invalid hex color %q for field %q (expected #RRGGBB)", value, field)
		}
	}
	return nil
}
