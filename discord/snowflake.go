package discord

import (
	"github.com/bitly/go-simplejson"
	"github.com/disgoorg/snowflake/v2"
)

// Snowflake is the 64-bit identifier every cacheable entity is keyed by. It
// embeds the creation time of the entity and doubles as the foreign key for
// cross-entity references.
type Snowflake = snowflake.ID

// snowflakeOf extracts an ID sent as a decimal string. Absent or malformed
// values come back as 0, which downstream callers treat as "not set".
func snowflakeOf(j *simplejson.Json, key string) Snowflake {
	s := j.Get(key).MustString()
	if s == "" {
		return 0
	}
	id, err := snowflake.Parse(s)
	if err != nil {
		return 0
	}
	return id
}

// snowflakeRefs extracts an ID list. The gateway is inconsistent here: some
// arrays carry plain ID strings (mention_roles), others carry whole objects
// with an "id" key (mentions, mention_channels). Both shapes are accepted.
func snowflakeRefs(j *simplejson.Json, key string) []Snowflake {
	raw := j.Get(key).MustArray()
	if len(raw) == 0 {
		return nil
	}
	ids := make([]Snowflake, 0, len(raw))
	for i := range raw {
		elem := j.Get(key).GetIndex(i)
		var id Snowflake
		if s, err := elem.String(); err == nil {
			id, _ = snowflake.Parse(s)
		} else {
			id = snowflakeOf(elem, "id")
		}
		if id != 0 {
			ids = append(ids, id)
		}
	}
	return ids
}
