package cache

import (
	"github.com/fuad-daoud/discord-core/discord"
)

// Registry bundles the per-type caches one client instance owns. It is
// passed explicitly into the ingestion layer, so tests run against an
// isolated registry and multiple client instances never share state.
type Registry struct {
	Users    *Store[*discord.User]
	Roles    *Store[*discord.Role]
	Channels *Store[*discord.Channel]
	Guilds   *Store[*discord.Guild]
	Members  *MemberStore
}

func NewRegistry() *Registry {
	return &Registry{
		Users:    NewStore(func(u *discord.User) discord.Snowflake { return u.ID }),
		Roles:    NewStore(func(r *discord.Role) discord.Snowflake { return r.ID }),
		Channels: NewStore(func(c *discord.Channel) discord.Snowflake { return c.ID }),
		Guilds:   NewStore(func(g *discord.Guild) discord.Snowflake { return g.ID }),
		Members:  NewMemberStore(),
	}
}
