package discord

import (
	"github.com/bitly/go-simplejson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
)

func TestSetURLPromotesLinkButton(t *testing.T) {
	c := NewComponent().SetURL("https://x")

	assert.Equal(t, ComponentButton, c.Type)
	assert.Equal(t, StyleLink, c.Style)
	assert.Equal(t, "https://x", c.URL)
}

func TestButtonSettersPromoteType(t *testing.T) {
	tests := []struct {
		name  string
		build func() *Component
	}{
		{"SetLabel", func() *Component { return NewComponent().SetLabel("hi") }},
		{"SetID", func() *Component { return NewComponent().SetID("btn-1") }},
		{"SetStyle", func() *Component { return NewComponent().SetStyle(StyleDanger) }},
		{"SetDisabled", func() *Component { return NewComponent().SetDisabled(true) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, ComponentButton, tt.build().Type)
		})
	}
}

func TestAddComponentPromotesActionRow(t *testing.T) {
	child := *NewComponent().SetLabel("click me").SetID("b1")
	c := NewComponent().SetLabel("x") // now a button
	c.AddComponent(child)

	assert.Equal(t, ComponentActionRow, c.Type)
	require.Len(t, c.Components, 1)
	assert.Equal(t, "click me", c.Components[0].Label)
}

func TestSetEmoji(t *testing.T) {
	c, err := NewComponent().SetEmoji("😄", 0, false)
	require.NoError(t, err)
	assert.Equal(t, ComponentButton, c.Type)
	assert.Equal(t, "😄", c.Emoji.Name)

	c, err = NewComponent().SetEmoji("party", Snowflake(1234), true)
	require.NoError(t, err)
	assert.True(t, c.Emoji.Animated)

	c = NewComponent()
	_, err = c.SetEmoji("", 0, true)
	assert.ErrorIs(t, err, ErrEmojiUnset)
	assert.True(t, c.Emoji.IsZero())
	assert.Equal(t, ComponentActionRow, c.Type)
}

func TestClampedStrings(t *testing.T) {
	c := NewComponent().SetLabel(strings.Repeat("a", 81))
	assert.True(t, c.Clamped())
	assert.Len(t, c.Label, 80)

	c = NewComponent().SetLabel(strings.Repeat("a", 80))
	assert.False(t, c.Clamped())

	c = NewComponent().SetURL("https://" + strings.Repeat("b", 600))
	assert.True(t, c.Clamped())
	assert.Len(t, c.URL, 512)

	c = NewComponent().SetID(strings.Repeat("c", 101))
	assert.True(t, c.Clamped())
	assert.Len(t, c.CustomID, 100)
}

const actionRowJSON = `{
	"type": 1,
	"components": [
		{"type": 2, "label": "Yes", "style": 3, "custom_id": "confirm", "disabled": false,
		 "emoji": {"name": "check", "id": "98765", "animated": true}},
		{"type": 2, "label": "Docs", "style": 5, "url": "https://example.com/docs", "disabled": true}
	]
}`

func TestComponentRoundTrip(t *testing.T) {
	j, err := simplejson.NewJson([]byte(actionRowJSON))
	require.NoError(t, err)

	var row Component
	row.FillFromJSON(j)
	require.Equal(t, ComponentActionRow, row.Type)
	require.Len(t, row.Components, 2)

	built, err := row.BuildJSON()
	require.NoError(t, err)

	j2, err := simplejson.NewJson(built)
	require.NoError(t, err)
	var again Component
	again.FillFromJSON(j2)

	assert.Equal(t, row, again)
	assert.Equal(t, Snowflake(98765), again.Components[0].Emoji.ID)
	assert.Equal(t, StyleLink, again.Components[1].Style)
}
