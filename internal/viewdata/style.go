package viewdata

import "github.com/akavel/girt/internal/config"

// Style is a segment's rendering attributes, carried independently of any
// terminal backend so this package stays free of a tuicap/tcell dependency
// (the teacher couples Editor/BufView drawing directly to tcell.Style; here
// the view-data layer only describes intent, and internal/tuicap translates
// it to the backend's concrete style type).
type Style struct {
	Foreground config.Color
	Background config.Color
	Dim        bool
	Underline  bool
	Reverse    bool
}

// DefaultStyle renders with the theme's base foreground/background.
func DefaultStyle() Style {
	return Style{Foreground: config.ColorDefault, Background: config.ColorDefault}
}
