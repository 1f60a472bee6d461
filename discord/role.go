package discord

import (
	"github.com/bitly/go-simplejson"
	"strconv"
)

// Role is a guild role. The guild references roles by ID only; the records
// themselves live in the role cache.
type Role struct {
	ID          Snowflake
	Name        string
	Color       int
	Hoist       bool
	Position    int
	Permissions uint64
	Managed     bool
	Mentionable bool
}

func (r *Role) FillFromJSON(j *simplejson.Json) *Role {
	r.ID = snowflakeOf(j, "id")
	r.Name = j.Get("name").MustString()
	r.Color = j.Get("color").MustInt()
	r.Hoist = j.Get("hoist").MustBool()
	r.Position = j.Get("position").MustInt()
	// permissions arrive as a decimal string on current gateway versions
	// and as a bare number on older ones
	perms := j.Get("permissions")
	if s, err := perms.String(); err == nil {
		r.Permissions, _ = strconv.ParseUint(s, 10, 64)
	} else {
		r.Permissions = perms.MustUint64()
	}
	r.Managed = j.Get("managed").MustBool()
	r.Mentionable = j.Get("mentionable").MustBool()
	return r
}
