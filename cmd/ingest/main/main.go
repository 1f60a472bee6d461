package main

import (
	"github.com/bitly/go-simplejson"
	"github.com/fuad-daoud/discord-core/cache"
	"github.com/fuad-daoud/discord-core/gateway"
	"github.com/fuad-daoud/discord-core/logger/dlog"
	"golang.org/x/net/context"
	"os"
)

// Feeds a recorded GUILD_CREATE event through the snapshot ingestor and
// reports what landed in the caches.
func main() {
	if len(os.Args) < 2 {
		dlog.Error("usage: ingest <guild-create.json>")
		os.Exit(1)
	}
	raw, err := os.ReadFile(os.Args[1])
	if err != nil {
		dlog.Error("could not read event file", "path", os.Args[1])
		panic(err)
	}
	event, err := simplejson.NewJson(raw)
	if err != nil {
		dlog.Error("event file is not valid JSON", "path", os.Args[1])
		panic(err)
	}

	registry := cache.NewRegistry()
	g := gateway.GuildCreate{Registry: registry}.Handle(context.Background(), event)

	dlog.Info("done",
		"guildId", g.ID.String(),
		"unavailable", g.Unavailable,
		"users", registry.Users.Len(),
		"roles", registry.Roles.Len(),
		"channels", registry.Channels.Len(),
		"members", registry.Members.Len(),
	)
}
