package colors

// Default returns the default color scheme (purple theme)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		Accent: "#874BFD",

		TeamA: "#5F87D7",
		TeamB: "#D75F5F",

		Subtle: "#585858",
		Normal: "#D0D0D0",

		Success: "#5FD75F",
		Warning: "#FFD700",
		Error:   "#FF0000",
	}
}
