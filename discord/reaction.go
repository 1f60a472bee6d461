package discord

import (
	"github.com/bitly/go-simplejson"
)

// Reaction aggregates one emoji's reactions on a message. Receive-only.
type Reaction struct {
	// Count is how many users added this reaction.
	Count int
	// Me is true when the current user is among them.
	Me bool
	// EmojiID identifies a custom emoji, EmojiName a built-in one. At
	// least one of the two is set on anything the wire delivers.
	EmojiID   Snowflake
	EmojiName string
}

func (r *Reaction) FillFromJSON(j *simplejson.Json) *Reaction {
	r.Count = j.Get("count").MustInt()
	r.Me = j.Get("me").MustBool()
	if e, ok := j.CheckGet("emoji"); ok {
		r.EmojiID = snowflakeOf(e, "id")
		r.EmojiName = e.Get("name").MustString()
	}
	return r
}
