package gateway

import (
	"github.com/bitly/go-simplejson"
	"github.com/fuad-daoud/discord-core/cache"
	"github.com/fuad-daoud/discord-core/discord"
	"github.com/fuad-daoud/discord-core/logger/dlog"
	"golang.org/x/net/context"
)

// GuildCreate ingests the snapshot delivered when a guild becomes available
// on a shard. It decomposes the nested payload into normalized entities and
// fans them out into the registry's per-type caches.
type GuildCreate struct {
	Registry *cache.Registry
}

// Handle consumes a GUILD_CREATE gateway event. Roles and channels are
// stored before the guild itself, so a reader that finds the guild in its
// cache always finds the roles and channels it references. Re-ingesting the
// same guild replaces its reference lists wholesale.
//
// An unavailable guild (partial outage) is stored bare: we know it exists
// but have no data for it yet, and the sub-arrays are skipped regardless of
// content.
func (h GuildCreate) Handle(ctx context.Context, event *simplejson.Json) *discord.Guild {
	d := event.Get("d")
	g := discord.NewGuild().FillFromJSON(d)
	if g.Unavailable {
		dlog.Info("guild unavailable, storing bare entity", "guildId", g.ID.String())
		h.Registry.Guilds.Store(g)
		return g
	}

	roles := d.Get("roles")
	for i := range roles.MustArray() {
		r := new(discord.Role).FillFromJSON(roles.GetIndex(i))
		h.Registry.Roles.Store(r)
		g.Roles = append(g.Roles, r.ID)
	}

	channels := d.Get("channels")
	for i := range channels.MustArray() {
		c := new(discord.Channel).FillFromJSON(channels.GetIndex(i))
		if c.GuildID == 0 {
			c.GuildID = g.ID
		}
		h.Registry.Channels.Store(c)
		g.Channels = append(g.Channels, c.ID)
	}

	members := d.Get("members")
	for i := range members.MustArray() {
		mj := members.GetIndex(i)
		u := new(discord.User).FillFromJSON(mj.Get("user"))
		h.Registry.Users.Store(u)
		gm := new(discord.GuildMember).FillFromJSON(mj, g.ID, u.ID)
		h.Registry.Members.Store(gm)
		g.Members[u.ID] = struct{}{}
	}

	// stored last: the guild only becomes visible once every ID it
	// references resolves against the caches populated above
	h.Registry.Guilds.Store(g)
	dlog.Info("guild snapshot ingested",
		"guildId", g.ID.String(),
		"roles", len(g.Roles),
		"channels", len(g.Channels),
		"members", len(g.Members),
	)
	return g
}
