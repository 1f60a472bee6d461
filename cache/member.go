package cache

import (
	"github.com/fuad-daoud/discord-core/discord"
	"sync"
)

type memberKey struct {
	guildID discord.Snowflake
	userID  discord.Snowflake
}

// MemberStore keys guild members by (guild, user). A user's existence is
// global and lives in the user store; membership is scoped to one guild,
// so the plain single-snowflake Store does not fit here.
type MemberStore struct {
	mu      sync.RWMutex
	entries map[memberKey]*discord.GuildMember
}

func NewMemberStore() *MemberStore {
	return &MemberStore{entries: make(map[memberKey]*discord.GuildMember)}
}

func (s *MemberStore) Store(m *discord.GuildMember) {
	s.mu.Lock()
	s.entries[memberKey{m.GuildID, m.UserID}] = m
	s.mu.Unlock()
}

func (s *MemberStore) Find(guildID, userID discord.Snowflake) (*discord.GuildMember, bool) {
	s.mu.RLock()
	m, ok := s.entries[memberKey{guildID, userID}]
	s.mu.RUnlock()
	return m, ok
}

func (s *MemberStore) Exists(guildID, userID discord.Snowflake) bool {
	_, ok := s.Find(guildID, userID)
	return ok
}

func (s *MemberStore) Len() int {
	s.mu.RLock()
	n := len(s.entries)
	s.mu.RUnlock()
	return n
}
