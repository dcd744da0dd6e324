package input

import (
	"fmt"
	"sort"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/lineedit/internal/session"
)

// Binding pairs a chord with the action it triggers.
type Binding struct {
	Chord  Chord
	Action Action
}

// Keymap maps chords to actions.
type Keymap struct {
	bindings map[Chord]Action
}

// NewKeymap creates an empty keymap.
func NewKeymap() *Keymap {
	return &Keymap{bindings: make(map[Chord]Action)}
}

// DefaultKeymap returns the standard single-line-editor bindings.
func DefaultKeymap() *Keymap {
	km := NewKeymap()

	arrows := map[tcell.Key]session.Direction{
		tcell.KeyLeft:  session.Left,
		tcell.KeyRight: session.Right,
		tcell.KeyUp:    session.Up,
		tcell.KeyDown:  session.Down,
		tcell.KeyHome:  session.LineStart,
		tcell.KeyEnd:   session.LineEnd,
	}
	for k, dir := range arrows {
		km.Bind(Chord{Key: k}, MoveAction(dir, false))
		km.Bind(Chord{Key: k, Mod: tcell.ModShift}, MoveAction(dir, true))
	}

	docEnds := map[tcell.Key]session.Direction{
		tcell.KeyHome: session.DocStart,
		tcell.KeyEnd:  session.DocEnd,
	}
	for k, dir := range docEnds {
		km.Bind(Chord{Key: k, Mod: tcell.ModCtrl}, MoveAction(dir, false))
		km.Bind(Chord{Key: k, Mod: tcell.ModCtrl | tcell.ModShift}, MoveAction(dir, true))
	}

	km.Bind(Chord{Key: tcell.KeyBackspace}, Action{Kind: ActionBackspace})
	km.Bind(Chord{Key: tcell.KeyEnter}, Action{Kind: ActionEnter})
	km.Bind(Chord{Key: tcell.KeyTab}, Action{Kind: ActionTab})

	ctrl := map[rune]ActionKind{
		'z': ActionUndo,
		'y': ActionRedo,
		'x': ActionCut,
		'c': ActionCopy,
		'v': ActionPaste,
		'a': ActionSelectAll,
	}
	for r, kind := range ctrl {
		km.Bind(Chord{Key: tcell.KeyRune, Rune: r, Mod: tcell.ModCtrl}, Action{Kind: kind})
	}
	km.Bind(Chord{Key: tcell.KeyRune, Rune: 'z', Mod: tcell.ModCtrl | tcell.ModShift}, Action{Kind: ActionRedo})

	return km
}

// Bind maps c to a, replacing any existing binding.
func (k *Keymap) Bind(c Chord, a Action) {
	k.bindings[c] = a
}

// Unbind removes the binding for c.
func (k *Keymap) Unbind(c Chord) {
	delete(k.bindings, c)
}

// BindSpec binds a chord spec to a named action. An empty action name
// unbinds the chord.
func (k *Keymap) BindSpec(chord, action string) error {
	c, err := ParseChord(chord)
	if err != nil {
		return err
	}
	if action == "" {
		k.Unbind(c)
		return nil
	}
	a, err := ParseAction(action)
	if err != nil {
		return fmt.Errorf("bind %s: %w", c, err)
	}
	k.Bind(c, a)
	return nil
}

// Apply binds every entry of overrides, as loaded from the keys.bindings
// configuration section. Entries are applied in chord order and the first
// error stops the pass.
func (k *Keymap) Apply(overrides map[string]string) error {
	specs := make([]string, 0, len(overrides))
	for spec := range overrides {
		specs = append(specs, spec)
	}
	sort.Strings(specs)

	for _, spec := range specs {
		if err := k.BindSpec(spec, overrides[spec]); err != nil {
			return err
		}
	}
	return nil
}

// Lookup returns the action bound to c.
func (k *Keymap) Lookup(c Chord) (Action, bool) {
	a, ok := k.bindings[c]
	return a, ok
}

// Len returns the number of bindings.
func (k *Keymap) Len() int {
	return len(k.bindings)
}

// Bindings returns all bindings sorted by action name, then chord.
func (k *Keymap) Bindings() []Binding {
	out := make([]Binding, 0, len(k.bindings))
	for c, a := range k.bindings {
		out = append(out, Binding{Chord: c, Action: a})
	}
	sort.Slice(out, func(i, j int) bool {
		ai, aj := out[i].Action.String(), out[j].Action.String()
		if ai != aj {
			return ai < aj
		}
		return out[i].Chord.String() < out[j].Chord.String()
	})
	return out
}
