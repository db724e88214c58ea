package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		Accent: "#FFFFFF",

		TeamA: "#FFFFFF",
		TeamB: "#A8A8A8",

		Subtle: "#585858",
		Normal: "#D0D0D0",

		Success: "#FFFFFF",
		Warning: "#FFFFFF",
		Error:   "#FFFFFF",
	}
}
