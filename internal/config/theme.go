package config

// Color is a terminal color, stored as the tcell-compatible packed form so
// that internal/tuicap can hand it straight to the terminal backend without
// this package depending on tuicap.
type Color int32

// Default palette, matching the teacher's whiteOnBlue/whiteOnDBlue scheme
// generalized into a full action/diff palette.
const (
	ColorDefault Color = -1

	ColorWhite  Color = 7
	ColorBlack  Color = 0
	ColorRed    Color = 1
	ColorGreen  Color = 2
	ColorYellow Color = 3
	ColorBlue   Color = 4
	ColorCyan   Color = 6
)

// Theme is the color/style palette applied to the rendered view.
type Theme struct {
	Foreground         Color
	Background         Color
	SelectedBackground Color
	Indicator          Color

	ActionBreak     Color
	ActionDrop      Color
	ActionEdit      Color
	ActionExec      Color
	ActionFixup     Color
	ActionPick      Color
	ActionReword    Color
	ActionSquash    Color
	ActionLabel     Color
	ActionReset     Color
	ActionMerge     Color
	ActionUpdateRef Color

	DiffAdd    Color
	DiffChange Color
	DiffRemove Color

	VerticalSpacingChar string
}

// DefaultTheme returns the built-in palette used when no override is loaded.
func DefaultTheme() Theme {
	return Theme{
		Foreground:         ColorWhite,
		Background:         ColorBlue,
		SelectedBackground: ColorCyan,
		Indicator:          ColorYellow,

		ActionBreak:     ColorCyan,
		ActionDrop:      ColorRed,
		ActionEdit:      ColorBlue,
		ActionExec:      ColorCyan,
		ActionFixup:     ColorBlue,
		ActionPick:      ColorGreen,
		ActionReword:    ColorYellow,
		ActionSquash:    ColorBlue,
		ActionLabel:     ColorCyan,
		ActionReset:     ColorCyan,
		ActionMerge:     ColorCyan,
		ActionUpdateRef: ColorCyan,

		DiffAdd:    ColorGreen,
		DiffChange: ColorYellow,
		DiffRemove: ColorRed,

		VerticalSpacingChar: " ",
	}
}
