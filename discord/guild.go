package discord

import (
	"github.com/bitly/go-simplejson"
	"github.com/disgoorg/snowflake/v2"
	"github.com/mitchellh/mapstructure"
	"reflect"
)

// Guild is the container entity for a server/community. After snapshot
// ingestion it holds only ID references: the role, channel, user and member
// records themselves are owned by their caches, never by the guild.
type Guild struct {
	ID          Snowflake `json:"id"`
	Name        string    `json:"name"`
	Icon        string    `json:"icon"`
	OwnerID     Snowflake `json:"owner_id"`
	Description string    `json:"description"`
	// Unavailable marks a guild known to exist but currently without
	// data, e.g. during a partial outage.
	Unavailable bool `json:"unavailable"`
	MemberCount int  `json:"member_count"`

	Roles    []Snowflake            `json:"-"`
	Channels []Snowflake            `json:"-"`
	Members  map[Snowflake]struct{} `json:"-"`
}

func NewGuild() *Guild {
	return &Guild{Members: make(map[Snowflake]struct{})}
}

// stringToSnowflake lets mapstructure decode the wire's decimal-string IDs
// straight into Snowflake fields. Malformed IDs decode to 0.
func stringToSnowflake(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if from.Kind() != reflect.String || to != reflect.TypeOf(Snowflake(0)) {
		return data, nil
	}
	id, err := snowflake.Parse(data.(string))
	if err != nil {
		return Snowflake(0), nil
	}
	return id, nil
}

// FillFromJSON decodes the guild's scalar fields. The roles/channels/members
// sub-arrays of a guild-create payload are deliberately not consumed here;
// the snapshot ingestor fans those out into the per-type caches.
func (g *Guild) FillFromJSON(j *simplejson.Json) *Guild {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       stringToSnowflake,
		WeaklyTypedInput: true,
		TagName:          "json",
		Result:           g,
	})
	if err != nil {
		return g
	}
	_ = dec.Decode(j.MustMap())
	if g.Members == nil {
		g.Members = make(map[Snowflake]struct{})
	}
	return g
}
