package theme

// thRegisterBuiltins registers all built-in themes in the registry.
func thRegisterBuiltins() {
	for _, t := range []Theme{
		thDefaultTheme(),
		thGruvboxTheme(),
		thNordTheme(),
		thDraculaTheme(),
	} {
		thRegister(t)
	}
}

// thDefaultTheme returns the neutral dark theme with the studio's rose accent.
func thDefaultTheme() Theme {
	return Theme{
		Name:       "default",
		Foreground: "#e5e5e5",
		Dim:        "#737373",
		Accent:     "#E11D48",

		Border:      "#404040",
		BorderFocus: "#E11D48",
		Title:       "#f5f5f5",
		Selected:    "#fb7185",
		Cursor:      "#fda4af",

		Rush:     "#f97316",
		Relaxed:  "#22c55e",
		Standard: "#a3a3a3",
		Track:    "#404040",
		Knob:     "#E11D48",

		HelpKey:  "#E11D48",
		HelpDesc: "#737373",
	}
}

// thGruvboxTheme returns the warm retro Gruvbox theme.
func thGruvboxTheme() Theme {
	return Theme{
		Name:       "gruvbox",
		Foreground: "#ebdbb2",
		Dim:        "#928374",
		Accent:     "#fe8019",

		Border:      "#504945",
		BorderFocus: "#fe8019",
		Title:       "#ebdbb2",
		Selected:    "#fabd2f",
		Cursor:      "#fe8019",

		Rush:     "#fb4934",
		Relaxed:  "#b8bb26",
		Standard: "#a89984",
		Track:    "#504945",
		Knob:     "#fe8019",

		HelpKey:  "#fe8019",
		HelpDesc: "#928374",
	}
}

// thNordTheme returns the arctic, north-bluish Nord theme.
func thNordTheme() Theme {
	return Theme{
		Name:       "nord",
		Foreground: "#d8dee9",
		Dim:        "#4c566a",
		Accent:     "#88c0d0",

		Border:      "#3b4252",
		BorderFocus: "#88c0d0",
		Title:       "#eceff4",
		Selected:    "#8fbcbb",
		Cursor:      "#81a1c1",

		Rush:     "#d08770",
		Relaxed:  "#a3be8c",
		Standard: "#e5e9f0",
		Track:    "#3b4252",
		Knob:     "#88c0d0",

		HelpKey:  "#88c0d0",
		HelpDesc: "#4c566a",
	}
}

// thDraculaTheme returns the dark Dracula theme.
func thDraculaTheme() Theme {
	return Theme{
		Name:       "dracula",
		Foreground: "#f8f8f2",
		Dim:        "#6272a4",
		Accent:     "#ff79c6",

		Border:      "#44475a",
		BorderFocus: "#bd93f9",
		Title:       "#f8f8f2",
		Selected:    "#ff79c6",
		Cursor:      "#bd93f9",

		Rush:     "#ffb86c",
		Relaxed:  "#50fa7b",
		Standard: "#f8f8f2",
		Track:    "#44475a",
		Knob:     "#ff79c6",

		HelpKey:  "#bd93f9",
		HelpDesc: "#6272a4",
	}
}
