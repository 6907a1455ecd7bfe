package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tinypulse/arcade/internal/core"
)

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		key  string
		want core.Action
	}{
		{"left", core.ActionLeft},
		{"a", core.ActionLeft},
		{"d", core.ActionRight},
		{"w", core.ActionRotate},
		{"x", core.ActionRotate},
		{"down", core.ActionSoftDrop},
		{"s", core.ActionSoftDrop},
		{"r", core.ActionRestart},
		{"enter", core.ActionRestart},
		{"p", core.ActionPause},
		{"q", core.ActionNone},
		{"z", core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, keys.Action(keyMsg(tt.key)))
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	keys := DefaultKeyMap()
	assert.NotEmpty(t, keys.ShortHelp())
	assert.Len(t, keys.FullHelp(), 3)
}
