package input

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akavel/girt/internal/config"
	"github.com/akavel/girt/internal/tuicap"
)

func TestParseChordVariants(t *testing.T) {
	tests := []struct {
		raw  string
		want chord
	}{
		{"j", chord{code: tuicap.KeyRune, r: 'j'}},
		{"Control+d", chord{mods: tuicap.ModCtrl, code: tuicap.KeyRune, r: 'd'}},
		{"Control+Shift+Up", chord{mods: tuicap.ModCtrl | tuicap.ModShift, code: tuicap.KeyUp}},
		{"PageDown", chord{code: tuicap.KeyPgDn}},
	}
	for _, tt := range tests {
		got, ok := parseChord(tt.raw)
		require.True(t, ok, tt.raw)
		assert.Equal(t, tt.want, got, tt.raw)
	}
}

func TestParseChordModifierOrderIndependent(t *testing.T) {
	a, ok := parseChord("Control+Shift+Up")
	require.True(t, ok)
	b, ok := parseChord("Shift+Control+Up")
	require.True(t, ok)
	assert.Equal(t, a, b)
}

func TestKeymapResolvesConfiguredChord(t *testing.T) {
	km := NewKeymap(config.DefaultKeyBindings())

	ev, ok := km.Resolve(tuicap.KeyEvent{Code: tuicap.KeyRune, Rune: 'p'})
	require.True(t, ok)
	assert.Equal(t, ActionPick, ev)

	ev, ok = km.Resolve(tuicap.KeyEvent{Code: tuicap.KeyUp})
	require.True(t, ok)
	assert.Equal(t, ScrollUp, ev)

	_, ok = km.Resolve(tuicap.KeyEvent{Code: tuicap.KeyRune, Rune: 'Z'})
	assert.False(t, ok)
}

func TestThreadQueuesAndReadsInFIFOOrder(t *testing.T) {
	events := []tuicap.Event{
		{Kind: tuicap.EventKey, Key: tuicap.KeyEvent{Code: tuicap.KeyRune, Rune: 'p'}},
		{Kind: tuicap.EventKey, Key: tuicap.KeyEvent{Code: tuicap.KeyRune, Rune: 'd'}},
	}
	i := 0
	reader := func(timeout time.Duration) tuicap.Event {
		if i >= len(events) {
			<-time.After(timeout)
			return tuicap.Event{Kind: tuicap.EventNone}
		}
		ev := events[i]
		i++
		return ev
	}

	th := NewThread(reader, NewKeymap(config.DefaultKeyBindings()))
	go th.Run()
	defer th.End()

	first := th.ReadEvent(time.Second)
	require.Equal(t, KindStandard, first.Kind)
	assert.Equal(t, ActionPick, first.Standard)

	second := th.ReadEvent(time.Second)
	require.Equal(t, KindStandard, second.Kind)
	assert.Equal(t, ActionDrop, second.Standard)
}

func TestThreadPauseDropsEvents(t *testing.T) {
	reader := func(timeout time.Duration) tuicap.Event {
		return tuicap.Event{Kind: tuicap.EventKey, Key: tuicap.KeyEvent{Code: tuicap.KeyRune, Rune: 'p'}}
	}
	th := NewThread(reader, NewKeymap(config.DefaultKeyBindings()))
	th.Pause()
	go th.Run()
	defer th.End()

	ev := th.ReadEvent(150 * time.Millisecond)
	assert.Equal(t, KindNone, ev.Kind)
}

func TestThreadEndSetsPoisonedAndDrains(t *testing.T) {
	reader := func(timeout time.Duration) tuicap.Event {
		<-time.After(timeout)
		return tuicap.Event{Kind: tuicap.EventNone}
	}
	th := NewThread(reader, NewKeymap(config.DefaultKeyBindings()))
	go th.Run()
	th.End()
	assert.True(t, th.Poisoned())
	assert.Equal(t, KindNone, th.ReadEvent(10*time.Millisecond).Kind)
}
