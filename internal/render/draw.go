package render

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/akavel/girt/internal/config"
	"github.com/akavel/girt/internal/tuicap"
	"github.com/akavel/girt/internal/viewdata"
)

// DefaultDraw is the engine's built-in DrawFunc, grounded on Omairy12-up's
// drawText/Editor.DrawTo/BufView.DrawTo trio (up.go): paint top to bottom,
// one row at a time, filling unused width with the row's background so a
// shorter line doesn't leave stale content behind. Unlike the teacher, which
// writes tcell.Screen cells directly, this paints through the tuicap.TUI
// capability (MoveToColumn/Print/SetColor/...), since girt's render package
// never imports a terminal backend directly.
//
// Title and Help give the leading/trailing zones a uniform bar background
// (the teacher's whiteOnBlue/whiteOnDBlue command-line backdrop) behind any
// segment that didn't ask for a specific color of its own.
func DefaultDraw(tui tuicap.TUI, theme config.Theme, slice RenderSlice) {
	scrollbarRow := -1
	if slice.ShowScrollbar {
		scrollbarRow = slice.ScrollbarRow
	}

	var barBackground *config.Color
	if slice.Title {
		barBackground = &theme.Background
	}
	paintZone(tui, theme, slice.Leading, slice.HScroll, slice.Width, barBackground, -1)

	paintZone(tui, theme, slice.Body, slice.HScroll, slice.Width, nil, scrollbarRow)

	barBackground = nil
	if slice.Help {
		barBackground = &theme.Background
	}
	paintZone(tui, theme, slice.Trailing, slice.HScroll, slice.Width, barBackground, -1)
}

func paintZone(tui tuicap.TUI, theme config.Theme, lines []viewdata.ViewLine, hscroll, width int, barBackground *config.Color, scrollbarRow int) {
	for i, line := range lines {
		tui.MoveToColumn(0)
		drawLine(tui, theme, line, hscroll, width, barBackground)
		if i == scrollbarRow {
			drawScrollbarMark(tui, theme, width)
		}
		tui.MoveNextLine()
	}
}

// drawLine paints one row's segments left to right, honoring PinnedHead
// (those leading segments ignore hscroll), clipping to width, and filling
// any leftover width with the line's pad segment (or the selection
// highlight, when Selected).
func drawLine(tui tuicap.TUI, theme config.Theme, line viewdata.ViewLine, hscroll, width int, barBackground *config.Color) {
	if width <= 0 {
		return
	}
	budget := width
	skip := hscroll
	for i, seg := range line.Segments {
		if budget <= 0 {
			break
		}
		text := seg.Text
		pinned := i < line.PinnedHead
		if !pinned && skip > 0 {
			runes := []rune(text)
			if skip >= len(runes) {
				skip -= len(runes)
				continue
			}
			text = string(runes[skip:])
			skip = 0
		}
		style := seg.Style
		if line.Selected {
			style.Background = theme.SelectedBackground
		} else if barBackground != nil && style.Background == config.ColorDefault {
			style.Background = *barBackground
		}
		applyStyle(tui, style)
		tui.Print(clipToWidth(text, &budget))
	}
	if budget <= 0 {
		return
	}
	padStyle := viewdata.DefaultStyle()
	if line.Pad != nil {
		padStyle = line.Pad.Style
	}
	if line.Selected {
		padStyle.Background = theme.SelectedBackground
	} else if barBackground != nil && padStyle.Background == config.ColorDefault {
		padStyle.Background = *barBackground
	}
	applyStyle(tui, padStyle)
	tui.Print(strings.Repeat(" ", budget))
}

// clipToWidth returns the longest prefix of s whose display width fits
// within *budget, decrementing *budget by the width actually consumed.
func clipToWidth(s string, budget *int) string {
	var b strings.Builder
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			w = 1
		}
		if *budget-w < 0 {
			break
		}
		*budget -= w
		b.WriteRune(r)
	}
	return b.String()
}

func drawScrollbarMark(tui tuicap.TUI, theme config.Theme, width int) {
	if width <= 0 {
		return
	}
	tui.MoveToColumn(width - 1)
	tui.SetColor(theme.Indicator, config.ColorDefault)
	tui.SetDim(false)
	tui.SetUnderline(false)
	tui.SetReverse(false)
	tui.Print("┃")
}

func applyStyle(tui tuicap.TUI, style viewdata.Style) {
	tui.SetColor(style.Foreground, style.Background)
	tui.SetDim(style.Dim)
	tui.SetUnderline(style.Underline)
	tui.SetReverse(style.Reverse)
}
