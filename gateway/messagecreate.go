package gateway

import (
	"github.com/bitly/go-simplejson"
	"github.com/fuad-daoud/discord-core/cache"
	"github.com/fuad-daoud/discord-core/discord"
	"golang.org/x/net/context"
)

// CachePolicy controls whether users seen on incoming messages are promoted
// into the shared user cache.
type CachePolicy int

const (
	// PolicyAggressive caches every user the client sees.
	PolicyAggressive CachePolicy = iota
	// PolicyLazy caches users only when they message us.
	PolicyLazy
	// PolicyNone never caches from messages; each message keeps its own
	// author copy.
	PolicyNone
)

// MessageCreate ingests incoming messages and applies the user cache
// policy to their author records.
type MessageCreate struct {
	Registry *cache.Registry
	Policy   CachePolicy
}

// Handle parses a MESSAGE_CREATE event. Under PolicyNone the message keeps
// the author copy it parsed; under the caching policies the copy moves into
// the shared user cache and the message only borrows it by ID, so exactly
// one owner exists either way.
func (h MessageCreate) Handle(ctx context.Context, event *simplejson.Json) *discord.Message {
	m := new(discord.Message).FillFromJSON(event.Get("d"))
	if h.Policy == PolicyNone {
		return m
	}
	if u, owned := m.Author.Owned(); owned {
		h.Registry.Users.Store(u)
		m.Author = discord.BorrowedAuthor(u.ID)
	}
	return m
}
