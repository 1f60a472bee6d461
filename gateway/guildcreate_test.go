package gateway

import (
	"github.com/bitly/go-simplejson"
	"github.com/fuad-daoud/discord-core/cache"
	"github.com/fuad-daoud/discord-core/discord"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/context"
	"testing"
)

func guildCreateEvent(t *testing.T, d string) *simplejson.Json {
	t.Helper()
	j, err := simplejson.NewJson([]byte(`{"t": "GUILD_CREATE", "op": 0, "d": ` + d + `}`))
	require.NoError(t, err)
	return j
}

func TestGuildCreatePopulatesCaches(t *testing.T) {
	reg := cache.NewRegistry()
	event := guildCreateEvent(t, `{
		"id": "100", "name": "g",
		"roles": [{"id": "111", "name": "R"}],
		"channels": [{"id": "222"}],
		"members": [{"user": {"id": "333", "username": "member"}, "nick": "nickname"}]
	}`)

	g := GuildCreate{Registry: reg}.Handle(context.Background(), event)

	require.True(t, reg.Roles.Exists(111))
	require.True(t, reg.Channels.Exists(222))
	require.True(t, reg.Users.Exists(333))

	assert.Equal(t, []discord.Snowflake{111}, g.Roles)
	assert.Equal(t, []discord.Snowflake{222}, g.Channels)
	_, isMember := g.Members[333]
	assert.True(t, isMember)

	role, _ := reg.Roles.Find(111)
	assert.Equal(t, "R", role.Name)

	// channels missing their guild_id are backfilled from the snapshot
	ch, _ := reg.Channels.Find(222)
	assert.Equal(t, discord.Snowflake(100), ch.GuildID)

	gm, ok := reg.Members.Find(100, 333)
	require.True(t, ok)
	assert.Equal(t, "nickname", gm.Nick)

	stored, ok := reg.Guilds.Find(100)
	require.True(t, ok)
	assert.Same(t, g, stored)
}

func TestGuildCreateUnavailableShortCircuits(t *testing.T) {
	reg := cache.NewRegistry()
	event := guildCreateEvent(t, `{
		"id": "100", "unavailable": true,
		"roles": [{"id": "111"}],
		"channels": [{"id": "222"}],
		"members": [{"user": {"id": "333"}}]
	}`)

	g := GuildCreate{Registry: reg}.Handle(context.Background(), event)

	assert.True(t, g.Unavailable)
	assert.Empty(t, g.Roles)
	assert.Empty(t, g.Channels)
	assert.Empty(t, g.Members)

	assert.Equal(t, 0, reg.Roles.Len())
	assert.Equal(t, 0, reg.Channels.Len())
	assert.Equal(t, 0, reg.Users.Len())
	assert.True(t, reg.Guilds.Exists(100), "the bare guild is still stored")
}

func TestGuildCreateReingestReplacesReferences(t *testing.T) {
	reg := cache.NewRegistry()
	h := GuildCreate{Registry: reg}

	h.Handle(context.Background(), guildCreateEvent(t, `{
		"id": "100", "roles": [{"id": "111"}, {"id": "112"}]
	}`))
	h.Handle(context.Background(), guildCreateEvent(t, `{
		"id": "100", "roles": [{"id": "113"}]
	}`))

	g, ok := reg.Guilds.Find(100)
	require.True(t, ok)
	assert.Equal(t, []discord.Snowflake{113}, g.Roles, "reference lists are replaced, not merged")

	// earlier role records stay cached until overwritten by id
	assert.True(t, reg.Roles.Exists(111))
	assert.True(t, reg.Roles.Exists(113))
}
