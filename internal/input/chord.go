package input

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// ErrInvalidChord is returned for chord specs that cannot be parsed.
var ErrInvalidChord = errors.New("invalid key chord")

// Chord is a normalized key press: a key, the rune for tcell.KeyRune, and
// the active modifiers.
type Chord struct {
	Key  tcell.Key
	Rune rune
	Mod  tcell.ModMask
}

const commandMods = tcell.ModCtrl | tcell.ModAlt | tcell.ModMeta

var keyNames = map[tcell.Key]string{
	tcell.KeyLeft:      "Left",
	tcell.KeyRight:     "Right",
	tcell.KeyUp:        "Up",
	tcell.KeyDown:      "Down",
	tcell.KeyHome:      "Home",
	tcell.KeyEnd:       "End",
	tcell.KeyPgUp:      "PgUp",
	tcell.KeyPgDn:      "PgDn",
	tcell.KeyInsert:    "Insert",
	tcell.KeyDelete:    "Delete",
	tcell.KeyBackspace: "Backspace",
	tcell.KeyEnter:     "Enter",
	tcell.KeyTab:       "Tab",
	tcell.KeyEscape:    "Esc",
	tcell.KeyF1:        "F1",
	tcell.KeyF2:        "F2",
	tcell.KeyF3:        "F3",
	tcell.KeyF4:        "F4",
	tcell.KeyF5:        "F5",
	tcell.KeyF6:        "F6",
	tcell.KeyF7:        "F7",
	tcell.KeyF8:        "F8",
	tcell.KeyF9:        "F9",
	tcell.KeyF10:       "F10",
	tcell.KeyF11:       "F11",
	tcell.KeyF12:       "F12",
}

// namedKeys maps lowercase names and aliases back to keys.
var namedKeys = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(keyNames)+8)
	for k, name := range keyNames {
		m[strings.ToLower(name)] = k
	}
	m["pageup"] = tcell.KeyPgUp
	m["pagedown"] = tcell.KeyPgDn
	m["del"] = tcell.KeyDelete
	m["bs"] = tcell.KeyBackspace
	m["return"] = tcell.KeyEnter
	m["cr"] = tcell.KeyEnter
	m["escape"] = tcell.KeyEscape
	return m
}()

// ChordFromEvent normalizes a tcell key event.
func ChordFromEvent(ev *tcell.EventKey) Chord {
	c := Chord{Key: ev.Key(), Rune: ev.Rune(), Mod: ev.Modifiers()}

	switch {
	case c.Key == tcell.KeyBackspace2:
		c.Key = tcell.KeyBackspace
	case c.Key >= tcell.KeyCtrlA && c.Key <= tcell.KeyCtrlZ:
		// Backspace, Tab and Enter share codes with Ctrl+H, Ctrl+I and
		// Ctrl+M; without an explicit Ctrl they are the plain keys.
		plain := c.Key == tcell.KeyBackspace || c.Key == tcell.KeyTab || c.Key == tcell.KeyEnter
		if plain && c.Mod&tcell.ModCtrl == 0 {
			break
		}
		c.Rune = 'a' + rune(c.Key-tcell.KeyCtrlA)
		c.Key = tcell.KeyRune
		c.Mod |= tcell.ModCtrl
	}

	if c.Key != tcell.KeyRune {
		c.Rune = 0
	}
	return c.normalize()
}

// normalize applies the rune rules shared by events and parsed specs.
func (c Chord) normalize() Chord {
	if c.Key != tcell.KeyRune {
		return c
	}
	if c.Mod&commandMods == 0 {
		// Shift is already reflected in the rune.
		c.Mod &^= tcell.ModShift
		return c
	}
	if unicode.IsUpper(c.Rune) {
		c.Rune = unicode.ToLower(c.Rune)
		c.Mod |= tcell.ModShift
	}
	return c
}

// Event returns a tcell key event that normalizes back to c.
func (c Chord) Event() *tcell.EventKey {
	return tcell.NewEventKey(c.Key, c.Rune, c.Mod)
}

// Printable reports whether the chord types its rune.
func (c Chord) Printable() bool {
	return c.Key == tcell.KeyRune && c.Mod&commandMods == 0 && unicode.IsPrint(c.Rune)
}

// String returns the chord in the form ParseChord accepts, such as
// "Ctrl+Shift+Z" or "Shift+Home".
func (c Chord) String() string {
	var b strings.Builder
	if c.Mod&tcell.ModCtrl != 0 {
		b.WriteString("Ctrl+")
	}
	if c.Mod&tcell.ModAlt != 0 {
		b.WriteString("Alt+")
	}
	if c.Mod&tcell.ModMeta != 0 {
		b.WriteString("Meta+")
	}
	if c.Mod&tcell.ModShift != 0 {
		b.WriteString("Shift+")
	}

	switch {
	case c.Key == tcell.KeyRune && c.Rune == ' ':
		b.WriteString("Space")
	case c.Key == tcell.KeyRune && c.Mod&commandMods != 0:
		b.WriteRune(unicode.ToUpper(c.Rune))
	case c.Key == tcell.KeyRune:
		b.WriteRune(c.Rune)
	default:
		name, ok := keyNames[c.Key]
		if !ok {
			name = fmt.Sprintf("Key(%d)", int(c.Key))
		}
		b.WriteString(name)
	}
	return b.String()
}

// ParseChord parses a spec such as "Ctrl+Z", "shift+left", "Ctrl++", or
// "a". Modifier and key names are case-insensitive; a single letter after
// a Ctrl, Alt, or Meta modifier names the unshifted key.
func ParseChord(spec string) (Chord, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Chord{}, fmt.Errorf("%w: empty", ErrInvalidChord)
	}

	keyPart := spec
	var mod tcell.ModMask
	if i := strings.LastIndex(spec[:len(spec)-1], "+"); i >= 0 {
		keyPart = spec[i+1:]
		for _, m := range strings.Split(spec[:i], "+") {
			switch strings.ToLower(strings.TrimSpace(m)) {
			case "ctrl", "control", "c":
				mod |= tcell.ModCtrl
			case "alt", "option", "a":
				mod |= tcell.ModAlt
			case "meta", "cmd", "super", "m":
				mod |= tcell.ModMeta
			case "shift", "s":
				mod |= tcell.ModShift
			default:
				return Chord{}, fmt.Errorf("%w: unknown modifier %q in %q", ErrInvalidChord, m, spec)
			}
		}
	}

	if utf8.RuneCountInString(keyPart) == 1 {
		r, _ := utf8.DecodeRuneInString(keyPart)
		if mod&commandMods != 0 {
			r = unicode.ToLower(r)
		} else if mod&tcell.ModShift != 0 {
			r = unicode.ToUpper(r)
		}
		return Chord{Key: tcell.KeyRune, Rune: r, Mod: mod}.normalize(), nil
	}

	name := strings.ToLower(strings.TrimSpace(keyPart))
	if name == "space" {
		return Chord{Key: tcell.KeyRune, Rune: ' ', Mod: mod}.normalize(), nil
	}
	k, ok := namedKeys[name]
	if !ok {
		return Chord{}, fmt.Errorf("%w: unknown key %q in %q", ErrInvalidChord, keyPart, spec)
	}
	return Chord{Key: k, Mod: mod}, nil
}

// ParseKeys parses a whitespace-separated list of chord specs, such as
// "Ctrl+A Backspace h i Enter".
func ParseKeys(spec string) ([]Chord, error) {
	fields := strings.Fields(spec)
	chords := make([]Chord, 0, len(fields))
	for _, f := range fields {
		c, err := ParseChord(f)
		if err != nil {
			return nil, err
		}
		chords = append(chords, c)
	}
	return chords, nil
}

// MustParseChord is like ParseChord but panics on error.
func MustParseChord(spec string) Chord {
	c, err := ParseChord(spec)
	if err != nil {
		panic(err)
	}
	return c
}
