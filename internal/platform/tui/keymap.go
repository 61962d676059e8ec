package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/weekend-arcade/internal/core"
)

// gameKeys maps key names, as reported by tea.KeyMsg.String, to game actions.
var gameKeys = map[string]core.Action{
	"ctrl+c": core.ActionQuit,
	"q":      core.ActionQuit,
	"w":      core.ActionUp,
	"up":     core.ActionUp,
	"s":      core.ActionDown,
	"down":   core.ActionDown,
	"a":      core.ActionLeft,
	"left":   core.ActionLeft,
	"d":      core.ActionRight,
	"right":  core.ActionRight,
	" ":      core.ActionJump,
	"enter":  core.ActionConfirm,
	"b":      core.ActionBack,
	"esc":    core.ActionBack,
	"p":      core.ActionPause,
	"r":      core.ActionRestart,
	"m":      core.ActionToggleMap,
}

// MenuAction is a navigation intent in the game menu.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// menuKeys maps key names to menu actions. j/k follow vim.
var menuKeys = map[string]MenuAction{
	"ctrl+c": MenuActionQuit,
	"q":      MenuActionQuit,
	"w":      MenuActionUp,
	"up":     MenuActionUp,
	"k":      MenuActionUp,
	"s":      MenuActionDown,
	"down":   MenuActionDown,
	"j":      MenuActionDown,
	"enter":  MenuActionSelect,
	" ":      MenuActionSelect,
	"b":      MenuActionBack,
	"esc":    MenuActionBack,
}

// KeyMapper translates Bubble Tea key messages to game and menu actions.
type KeyMapper struct {
	game map[string]core.Action
	menu map[string]MenuAction
}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{game: gameKeys, menu: menuKeys}
}

// MapKey translates a key message to a game action (ActionNone when unbound)
// and reports whether it asks to quit.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	action = km.game[msg.String()]
	return action, action == core.ActionQuit
}

// MapKeyToFrame sets the key's action on frame and reports a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	return km.menu[msg.String()]
}

// Holdable reports whether an action is tracked as a held key. Only movement
// keys are; everything else is a one-shot press.
func Holdable(a core.Action) bool {
	switch a {
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		return true
	}
	return false
}
