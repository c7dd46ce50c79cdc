package system

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/stomp/internal/domain/entity"
)

// KeyBindings maps the keys of one player slot
type KeyBindings struct {
	Left  []ebiten.Key
	Right []ebiten.Key
	Jump  []ebiten.Key
	Run   []ebiten.Key
	Shoot []ebiten.Key
}

// DefaultBindings returns WASD controls for slot 0 and arrow keys for slot 1
func DefaultBindings() []KeyBindings {
	return []KeyBindings{
		{
			Left:  []ebiten.Key{ebiten.KeyA},
			Right: []ebiten.Key{ebiten.KeyD},
			Jump:  []ebiten.Key{ebiten.KeyW, ebiten.KeySpace},
			Run:   []ebiten.Key{ebiten.KeyShiftLeft},
			Shoot: []ebiten.Key{ebiten.KeyF},
		},
		{
			Left:  []ebiten.Key{ebiten.KeyArrowLeft},
			Right: []ebiten.Key{ebiten.KeyArrowRight},
			Jump:  []ebiten.Key{ebiten.KeyArrowUp},
			Run:   []ebiten.Key{ebiten.KeyShiftRight},
			Shoot: []ebiten.Key{ebiten.KeyEnter},
		},
	}
}

// InputSystem turns keyboard state into per-slot player input.
// Edge detection (jump press, shoot press) is left to the player, which
// compares against the previous frame.
type InputSystem struct {
	bindings []KeyBindings
	pressed  func(ebiten.Key) bool
}

// NewInputSystem creates an input system reading the ebiten keyboard
func NewInputSystem(bindings []KeyBindings) *InputSystem {
	return NewInputSystemWith(bindings, ebiten.IsKeyPressed)
}

// NewInputSystemWith creates an input system over a custom key reader
func NewInputSystemWith(bindings []KeyBindings, pressed func(ebiten.Key) bool) *InputSystem {
	if bindings == nil {
		bindings = DefaultBindings()
	}
	return &InputSystem{bindings: bindings, pressed: pressed}
}

// Slots returns the number of bound player slots
func (s *InputSystem) Slots() int {
	return len(s.bindings)
}

// Poll reads the input of the first n slots
func (s *InputSystem) Poll(n int) []entity.Input {
	if n > len(s.bindings) {
		n = len(s.bindings)
	}
	inputs := make([]entity.Input, n)
	for i := 0; i < n; i++ {
		inputs[i] = s.read(s.bindings[i])
	}
	return inputs
}

func (s *InputSystem) read(b KeyBindings) entity.Input {
	var in entity.Input
	if s.any(b.Left) {
		in.Axis--
	}
	if s.any(b.Right) {
		in.Axis++
	}
	in.Jump = s.any(b.Jump)
	in.Run = s.any(b.Run)
	in.Shoot = s.any(b.Shoot)
	return in
}

func (s *InputSystem) any(keys []ebiten.Key) bool {
	for _, k := range keys {
		if s.pressed(k) {
			return true
		}
	}
	return false
}
