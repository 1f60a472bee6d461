package discord

import (
	"github.com/bitly/go-simplejson"
)

// GuildMember is the per-guild state of a user: the same account has one
// User record globally and one GuildMember per guild it belongs to.
type GuildMember struct {
	GuildID  Snowflake
	UserID   Snowflake
	Nick     string
	Roles    []Snowflake
	JoinedAt int64
	Deaf     bool
	Mute     bool
}

// FillFromJSON reads the member fields of a guild-create member payload.
// The enclosing guild and the already-parsed user supply the identity, the
// payload's own nested user object is not re-read here.
func (m *GuildMember) FillFromJSON(j *simplejson.Json, guildID, userID Snowflake) *GuildMember {
	m.GuildID = guildID
	m.UserID = userID
	m.Nick = j.Get("nick").MustString()
	m.Roles = snowflakeRefs(j, "roles")
	m.JoinedAt = ParseTimestamp(j.Get("joined_at").MustString())
	m.Deaf = j.Get("deaf").MustBool()
	m.Mute = j.Get("mute").MustBool()
	return m
}
