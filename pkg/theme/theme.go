// Package theme defines the colour palettes used by the estimator UI and
// the text quote renderer.
package theme

import (
	"sort"
	"strings"
	"sync"
)

// Theme defines the complete color palette. All colors are "#RRGGBB";
// lipgloss downsamples them for terminals without true color.
type Theme struct {
	Name string

	// Base colors
	Foreground string
	Dim        string // secondary text, hints
	Accent     string // headings, estimated total

	// Panel colors
	Border      string // unfocused section borders
	BorderFocus string // focused section border
	Title       string // section titles
	Selected    string // chosen service, checked add-ons
	Cursor      string // row under the cursor

	// Timeline colors
	Rush     string // label and track left of base
	Relaxed  string // label and track right of base
	Standard string // base tick and standard label
	Track    string // empty slider track
	Knob     string // slider position marker

	// Help footer
	HelpKey  string
	HelpDesc string
}

// Current holds the active theme (set via SetCurrent).
var Current Theme

var (
	mu       sync.RWMutex
	registry = map[string]Theme{}
)

func init() {
	thRegisterBuiltins()
	Current = thDefaultTheme()
}

// Get returns a named theme, falling back to the default if not found.
func Get(name string) Theme {
	mu.RLock()
	defer mu.RUnlock()
	if t, ok := registry[strings.ToLower(name)]; ok {
		return t
	}
	return registry["default"]
}

// Has reports whether name is registered.
func Has(name string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := registry[strings.ToLower(name)]
	return ok
}

// Names returns all available theme names sorted alphabetically.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SetCurrent sets the active theme by name.
func SetCurrent(name string) {
	Current = Get(name)
}

// Register adds or replaces t under its lowercase name.
func Register(t Theme) error {
	if err := thValidateTheme(t); err != nil {
		return err
	}
	thRegister(t)
	return nil
}

func thRegister(t Theme) {
	mu.Lock()
	defer mu.Unlock()
	registry[strings.ToLower(t.Name)] = t
}
