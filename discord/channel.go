package discord

import (
	"github.com/bitly/go-simplejson"
)

// Channel is a guild channel. Like roles, channels are referenced from the
// guild by ID and owned by the channel cache.
type Channel struct {
	ID       Snowflake
	GuildID  Snowflake
	Name     string
	Type     int
	Position int
	Topic    string
	NSFW     bool
	ParentID Snowflake
}

func (c *Channel) FillFromJSON(j *simplejson.Json) *Channel {
	c.ID = snowflakeOf(j, "id")
	c.GuildID = snowflakeOf(j, "guild_id")
	c.Name = j.Get("name").MustString()
	c.Type = j.Get("type").MustInt()
	c.Position = j.Get("position").MustInt()
	c.Topic = j.Get("topic").MustString()
	c.NSFW = j.Get("nsfw").MustBool()
	c.ParentID = snowflakeOf(j, "parent_id")
	return c
}
