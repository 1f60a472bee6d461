package discord

import (
	"github.com/bitly/go-simplejson"
)

// User is the global identity of an account. User existence is not scoped
// to a guild; per-guild state lives on GuildMember.
type User struct {
	ID            Snowflake
	Username      string
	Discriminator string
	Avatar        string
	Bot           bool
}

func (u *User) FillFromJSON(j *simplejson.Json) *User {
	u.ID = snowflakeOf(j, "id")
	u.Username = j.Get("username").MustString()
	u.Discriminator = j.Get("discriminator").MustString()
	u.Avatar = j.Get("avatar").MustString()
	u.Bot = j.Get("bot").MustBool()
	return u
}
