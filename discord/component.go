package discord

import (
	"errors"
	"github.com/bitly/go-simplejson"
	"unicode/utf8"
)

// ComponentType discriminates between the two wire component shapes.
type ComponentType int

const (
	// ComponentActionRow is a container for other components.
	ComponentActionRow ComponentType = iota + 1
	// ComponentButton is a clickable button.
	ComponentButton
)

// ButtonStyle is the visual style of a button.
type ButtonStyle int

const (
	StylePrimary ButtonStyle = iota + 1
	StyleSecondary
	StyleSuccess
	StyleDanger
	// StyleLink marks an external hyperlink button; it carries a URL
	// instead of a custom id.
	StyleLink
)

// Wire-documented string limits.
const (
	maxLabelLen    = 80
	maxCustomIDLen = 100
	maxURLLen      = 512
)

// ErrEmojiUnset is returned by SetEmoji when neither a name nor a custom
// emoji id was supplied, which would produce an emoji the wire rejects.
var ErrEmojiUnset = errors.New("discord: emoji needs a name or a custom emoji id")

// Emoji identifies the emoji rendered on a button. Name carries the raw
// unicode character for built-in emojis, ID is set for guild custom emojis.
// Animated only has meaning for custom emojis.
type Emoji struct {
	Name     string
	ID       Snowflake
	Animated bool
}

// IsZero reports whether the emoji carries neither a name nor an id.
func (e Emoji) IsZero() bool {
	return e.Name == "" && e.ID == 0
}

// Component is a single entry of a message's component tree: an action row
// holding child buttons, or a button itself. Most mutators promote the type
// as a side effect, so a freshly built component rarely needs SetType.
type Component struct {
	Type       ComponentType
	Components []Component
	Label      string
	Style      ButtonStyle
	CustomID   string
	URL        string
	Disabled   bool
	Emoji      Emoji

	clamped bool
}

// NewComponent returns a component defaulting to an action row with the
// primary button style, matching what the wire assumes when unspecified.
func NewComponent() *Component {
	return &Component{Type: ComponentActionRow, Style: StylePrimary}
}

// Clamped reports whether any string mutator had to cut its input down to
// the wire limit (80 for labels, 100 for custom ids, 512 for urls).
func (c *Component) Clamped() bool {
	return c.clamped
}

func (c *Component) SetType(t ComponentType) *Component {
	c.Type = t
	return c
}

// SetLabel sets the button text and promotes the component to a button.
func (c *Component) SetLabel(label string) *Component {
	c.Label = c.clamp(label, maxLabelLen)
	c.Type = ComponentButton
	return c
}

// SetStyle promotes the component to a button.
func (c *Component) SetStyle(s ButtonStyle) *Component {
	c.Style = s
	c.Type = ComponentButton
	return c
}

// SetID sets the custom id reported back on button click events and
// promotes the component to a button.
func (c *Component) SetID(customID string) *Component {
	c.CustomID = c.clamp(customID, maxCustomIDLen)
	c.Type = ComponentButton
	return c
}

// SetURL promotes the component to a link button: both the type and the
// style are forced, a URL is only meaningful on StyleLink.
func (c *Component) SetURL(url string) *Component {
	c.URL = c.clamp(url, maxURLLen)
	c.Type = ComponentButton
	c.Style = StyleLink
	return c
}

func (c *Component) SetDisabled(disabled bool) *Component {
	c.Disabled = disabled
	c.Type = ComponentButton
	return c
}

// AddComponent appends a child and promotes the component to an action row:
// a component with children is, by construction, a container.
func (c *Component) AddComponent(child Component) *Component {
	c.Components = append(c.Components, child)
	c.Type = ComponentActionRow
	return c
}

// SetEmoji sets the button emoji and promotes the component to a button.
// At least one of name or id must be supplied; otherwise the component is
// left unchanged and ErrEmojiUnset is returned.
func (c *Component) SetEmoji(name string, id Snowflake, animated bool) (*Component, error) {
	if name == "" && id == 0 {
		return c, ErrEmojiUnset
	}
	c.Emoji = Emoji{Name: name, ID: id, Animated: animated}
	c.Type = ComponentButton
	return c, nil
}

func (c *Component) clamp(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	c.clamped = true
	return string([]rune(s)[:max])
}

// FillFromJSON reads the component, recursing into action row children
// through the same codec. Absent keys yield zero values.
func (c *Component) FillFromJSON(j *simplejson.Json) *Component {
	c.Type = ComponentType(j.Get("type").MustInt())
	c.Label = j.Get("label").MustString()
	c.Style = ButtonStyle(j.Get("style").MustInt())
	c.CustomID = j.Get("custom_id").MustString()
	c.URL = j.Get("url").MustString()
	c.Disabled = j.Get("disabled").MustBool()
	if e, ok := j.CheckGet("emoji"); ok {
		c.Emoji = Emoji{
			Name:     e.Get("name").MustString(),
			ID:       snowflakeOf(e, "id"),
			Animated: e.Get("animated").MustBool(),
		}
	}
	children := j.Get("components")
	for i := range children.MustArray() {
		var child Component
		child.FillFromJSON(children.GetIndex(i))
		c.Components = append(c.Components, child)
	}
	return c
}

// BuildJSON encodes the component tree for sending.
func (c *Component) BuildJSON() ([]byte, error) {
	j := simplejson.New()
	for k, v := range c.jsonValue() {
		j.Set(k, v)
	}
	return j.Encode()
}

func (c *Component) jsonValue() map[string]interface{} {
	v := map[string]interface{}{"type": int(c.Type)}
	if c.Type == ComponentActionRow {
		children := make([]interface{}, 0, len(c.Components))
		for i := range c.Components {
			children = append(children, c.Components[i].jsonValue())
		}
		v["components"] = children
		return v
	}
	v["label"] = c.Label
	v["style"] = int(c.Style)
	v["disabled"] = c.Disabled
	if c.CustomID != "" {
		v["custom_id"] = c.CustomID
	}
	if c.URL != "" {
		v["url"] = c.URL
	}
	if !c.Emoji.IsZero() {
		e := map[string]interface{}{"name": c.Emoji.Name}
		if c.Emoji.ID != 0 {
			e["id"] = c.Emoji.ID.String()
			e["animated"] = c.Emoji.Animated
		}
		v["emoji"] = e
	}
	return v
}
