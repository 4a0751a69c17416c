package tuicap

import (
	"time"

	"github.com/gdamore/tcell"

	"github.com/akavel/girt/internal/config"
)

// TCellTUI adapts a github.com/gdamore/tcell.Screen to the TUI interface.
// Grounded on the teacher's initTUI/TuiRegion/getKey-altKey-ctrlKey trio
// (up.go): tcell.NewScreen+Init for startup, SetCell-based drawing, and the
// modifier-packed key decode, generalized from "one flat switch per
// keypress" into a table the input thread's keybinding map can match
// against.
type TCellTUI struct {
	screen tcell.Screen
	style  tcell.Style

	events chan tcell.Event
	done   chan struct{}
}

// NewTCellTUI constructs a screen but does not start it; call Start.
func NewTCellTUI() (*TCellTUI, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &TCellTUI{screen: screen, style: tcell.StyleDefault}, nil
}

func (t *TCellTUI) Start() error {
	if err := t.screen.Init(); err != nil {
		return err
	}
	t.events = make(chan tcell.Event, 16)
	t.done = make(chan struct{})
	go t.pump()
	return nil
}

// pump relays blocking PollEvent calls onto a channel so ReadEvent can
// select against a timeout, matching spec.md §4.D's ~1s read_event bound.
func (t *TCellTUI) pump() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case t.events <- ev:
		case <-t.done:
			return
		}
	}
}

func (t *TCellTUI) End() error {
	if t.done != nil {
		close(t.done)
	}
	t.screen.Fini()
	return nil
}

func (t *TCellTUI) Reset() {
	t.screen.Clear()
	cursorX, cursorY = 0, 0
}

func (t *TCellTUI) Flush() error {
	t.screen.Show()
	return nil
}

func (t *TCellTUI) GetColorMode() ColorMode {
	switch t.screen.Colors() {
	case 0:
		return ColorModeNone
	case 8, 16:
		return ColorMode8
	case 256:
		return ColorMode256
	default:
		return ColorModeTrueColor
	}
}

func (t *TCellTUI) SetColor(fg, bg config.Color) {
	style := t.style
	if fg != config.ColorDefault {
		style = style.Foreground(tcell.Color(fg))
	}
	if bg != config.ColorDefault {
		style = style.Background(tcell.Color(bg))
	}
	t.style = style
}

func (t *TCellTUI) SetDim(dim bool)             { t.style = t.style.Dim(dim) }
func (t *TCellTUI) SetUnderline(underline bool) { t.style = t.style.Underline(underline) }
func (t *TCellTUI) SetReverse(reverse bool)     { t.style = t.style.Reverse(reverse) }

var cursorX, cursorY int

func (t *TCellTUI) MoveToColumn(x int) { cursorX = x }
func (t *TCellTUI) MoveNextLine()      { cursorY++; cursorX = 0 }

func (t *TCellTUI) Print(s string) {
	for _, ch := range s {
		t.screen.SetContent(cursorX, cursorY, ch, nil, t.style)
		cursorX++
	}
}

func (t *TCellTUI) GetSize() (int, int) {
	return t.screen.Size()
}

func (t *TCellTUI) ReadEvent(timeout time.Duration) Event {
	select {
	case ev := <-t.events:
		return decodeEvent(ev)
	case <-time.After(timeout):
		return Event{Kind: EventNone}
	}
}

func decodeEvent(ev tcell.Event) Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return Event{Kind: EventKey, Key: decodeKey(e)}
	case *tcell.EventMouse:
		x, y := e.Position()
		return Event{Kind: EventMouse, Mouse: MouseEvent{X: x, Y: y, Buttons: int(e.Buttons())}}
	case *tcell.EventResize:
		w, h := e.Size()
		return Event{Kind: EventResize, Width: w, Height: h}
	case *tcell.EventError:
		return Event{Kind: EventError, Err: e}
	default:
		return Event{Kind: EventNone}
	}
}

var tcellKeyCodes = map[tcell.Key]KeyCode{
	tcell.KeyUp:        KeyUp,
	tcell.KeyDown:      KeyDown,
	tcell.KeyLeft:      KeyLeft,
	tcell.KeyRight:     KeyRight,
	tcell.KeyHome:      KeyHome,
	tcell.KeyEnd:       KeyEnd,
	tcell.KeyPgUp:      KeyPgUp,
	tcell.KeyPgDn:      KeyPgDn,
	tcell.KeyEnter:     KeyEnter,
	tcell.KeyEscape:    KeyEscape,
	tcell.KeyTab:       KeyTab,
	tcell.KeyBackspace:  KeyBackspace,
	tcell.KeyBackspace2: KeyBackspace,
	tcell.KeyDelete:    KeyDelete,
	tcell.KeyInsert:    KeyInsert,
	tcell.KeyF1:        KeyF1,
	tcell.KeyF2:        KeyF2,
	tcell.KeyF3:        KeyF3,
	tcell.KeyF4:        KeyF4,
	tcell.KeyCtrlA:     KeyCtrlA,
	tcell.KeyCtrlB:     KeyCtrlB,
	tcell.KeyCtrlC:     KeyCtrlC,
	tcell.KeyCtrlD:     KeyCtrlD,
	tcell.KeyCtrlE:     KeyCtrlE,
	tcell.KeyCtrlF:     KeyCtrlF,
	tcell.KeyCtrlK:     KeyCtrlK,
	tcell.KeyCtrlQ:     KeyCtrlQ,
	tcell.KeyCtrlS:     KeyCtrlS,
	tcell.KeyCtrlU:     KeyCtrlU,
	tcell.KeyCtrlW:     KeyCtrlW,
	tcell.KeyCtrlX:     KeyCtrlX,
	tcell.KeyCtrlY:     KeyCtrlY,
}

func decodeKey(ev *tcell.EventKey) KeyEvent {
	mods := Modifiers(0)
	if ev.Modifiers()&tcell.ModShift != 0 {
		mods |= ModShift
	}
	if ev.Modifiers()&tcell.ModAlt != 0 {
		mods |= ModAlt
	}
	if ev.Modifiers()&tcell.ModCtrl != 0 {
		mods |= ModCtrl
	}

	if ev.Key() == tcell.KeyRune {
		return KeyEvent{Code: KeyRune, Rune: ev.Rune(), Modifiers: mods}
	}
	if code, ok := tcellKeyCodes[ev.Key()]; ok {
		return KeyEvent{Code: code, Modifiers: mods}
	}
	return KeyEvent{Code: KeyUnknown, Modifiers: mods}
}

var _ TUI = (*TCellTUI)(nil)
