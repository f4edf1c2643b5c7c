package input

import (
	"maps"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// KeyTable maps terminal keys to actions
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, function keys)
	SpecialKeys map[tcell.Key]Action

	// Printable rune bindings
	Runes map[rune]Action
}

// DefaultKeyTable returns the default key bindings: the classic number-row
// and home-row layout plus arrows
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Action{
			tcell.KeyCtrlC: ActionQuit,
			tcell.KeyCtrlQ: ActionQuit,
			tcell.KeyEnter: ActionStart,
			tcell.KeyUp:    ActionJumpHigh,
			tcell.KeyDown:  ActionDuck,
			tcell.KeyLeft:  ActionMoveLeft,
			tcell.KeyRight: ActionMoveRight,
			tcell.KeyEsc:   ActionPauseToggle,
			tcell.KeyCtrlR: ActionDebugRefill,
		},
		Runes: map[rune]Action{
			' ': ActionStart,
			'8': ActionJumpHigh,
			'i': ActionJumpLow,
			'j': ActionMoveLeft,
			'l': ActionMoveRight,
			'k': ActionDuck,
			's': ActionSpeedToggle,
			'=': ActionPauseToggle,
			'p': ActionPauseToggle,
			'+': ActionDifficultyInc,
			']': ActionDifficultyInc,
			'-': ActionDifficultyDec,
			'[': ActionDifficultyDec,
			'q': ActionQuit,
		},
	}
}

// Lookup resolves a key event to its action. Terminals report Ctrl+letter
// either as a control key or as a rune carrying ModCtrl; both resolve to the
// control key binding.
func (kt *KeyTable) Lookup(ev *tcell.EventKey) Action {
	if ev.Key() != tcell.KeyRune {
		return kt.SpecialKeys[ev.Key()]
	}
	r := ev.Rune()
	if ev.Modifiers()&tcell.ModCtrl != 0 {
		if l := unicode.ToLower(r); l >= 'a' && l <= 'z' {
			return kt.SpecialKeys[tcell.KeyCtrlA+tcell.Key(l-'a')]
		}
	}
	return kt.Runes[r]
}

// Clone returns a deep copy with non-nil maps
func (kt *KeyTable) Clone() *KeyTable {
	c := &KeyTable{
		SpecialKeys: make(map[tcell.Key]Action, len(kt.SpecialKeys)),
		Runes:       make(map[rune]Action, len(kt.Runes)),
	}
	maps.Copy(c.SpecialKeys, kt.SpecialKeys)
	maps.Copy(c.Runes, kt.Runes)
	return c
}
