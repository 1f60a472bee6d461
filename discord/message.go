package discord

import (
	"github.com/bitly/go-simplejson"
	"github.com/google/uuid"
	"strconv"
)

// MessageType mirrors the wire's message type enumeration. The numbering
// has gaps where the platform retired values.
type MessageType int

const (
	MessageTypeDefault               MessageType = 0
	MessageTypeRecipientAdd          MessageType = 1
	MessageTypeRecipientRemove       MessageType = 2
	MessageTypeCall                  MessageType = 3
	MessageTypeChannelNameChange     MessageType = 4
	MessageTypeChannelIconChange     MessageType = 5
	MessageTypeChannelPinnedMessage  MessageType = 6
	MessageTypeGuildMemberJoin       MessageType = 7
	MessageTypePremiumSubscription   MessageType = 8
	MessageTypePremiumTier1          MessageType = 9
	MessageTypePremiumTier2          MessageType = 10
	MessageTypePremiumTier3          MessageType = 11
	MessageTypeChannelFollowAdd      MessageType = 12
	MessageTypeDiscoveryDisqualified MessageType = 14
	MessageTypeDiscoveryRequalified  MessageType = 15
	MessageTypeDiscoveryInitialWarn  MessageType = 16
	MessageTypeDiscoveryFinalWarn    MessageType = 17
	MessageTypeReply                 MessageType = 19
	MessageTypeApplicationCommand    MessageType = 20
	MessageTypeGuildInviteReminder   MessageType = 22
)

// MessageFlags is the message flag bitmask. Bit 5 is reserved on the wire
// and the gap is preserved here.
type MessageFlags uint8

const (
	FlagCrossposted MessageFlags = 1 << iota
	FlagIsCrosspost
	FlagSuppressEmbeds
	FlagSourceMessageDeleted
	FlagUrgent
	_
	FlagEphemeral
	FlagLoading
)

// MessageAuthor records where the author record of a message lives: either
// borrowed from the shared user cache by ID, or a private copy the message
// owns itself. The two states are explicit, there is no raw flagged pointer.
type MessageAuthor struct {
	id    Snowflake
	owned *User
}

// BorrowedAuthor references an author living in the shared user cache.
func BorrowedAuthor(id Snowflake) MessageAuthor {
	return MessageAuthor{id: id}
}

// OwnedAuthor wraps an author record the message keeps for itself.
func OwnedAuthor(u *User) MessageAuthor {
	if u == nil {
		return MessageAuthor{}
	}
	return MessageAuthor{id: u.ID, owned: u}
}

func (a MessageAuthor) ID() Snowflake {
	return a.id
}

// Owned returns the privately held user record, if any. A false result
// means the author is borrowed and must be resolved through the user cache.
func (a MessageAuthor) Owned() (*User, bool) {
	return a.owned, a.owned != nil
}

func (a MessageAuthor) IsZero() bool {
	return a.id == 0 && a.owned == nil
}

// MessageReference points a reply or crosspost at its originating message.
type MessageReference struct {
	MessageID Snowflake
	ChannelID Snowflake
	GuildID   Snowflake
	// FailIfNotExists makes a send error out when the referenced message
	// is gone, instead of degrading to a plain message.
	FailIfNotExists bool
}

// Message is the aggregate root of the entity model.
type Message struct {
	ID        Snowflake
	ChannelID Snowflake
	GuildID   Snowflake
	Author    MessageAuthor
	Member    GuildMember
	Content   string
	// Components is the interactive component tree; top-level entries
	// are expected to be action rows.
	Components []Component
	// Sent and Edited are epoch seconds; Edited is 0 when the message
	// was never edited.
	Sent            int64
	Edited          int64
	TTS             bool
	MentionEveryone bool
	Mentions        []Snowflake
	MentionRoles    []Snowflake
	MentionChannels []Snowflake
	Attachments     []Attachment
	Embeds          []Embed
	Reactions       []Reaction
	Nonce           string
	Pinned          bool
	WebhookID       Snowflake
	Flags           MessageFlags
	Type            MessageType
	Reference       MessageReference

	// Filename and FileContent are the outbound multipart upload pair.
	// They never come from the wire and never appear in built JSON.
	Filename    string
	FileContent []byte
}

// NewMessage builds an outbound message. The nonce is generated up front so
// the send can be validated against the echoed-back copy.
func NewMessage(content string) *Message {
	return &Message{Content: content, Nonce: uuid.NewString()}
}

// NewChannelMessage builds an outbound message targeted at a channel.
func NewChannelMessage(channelID Snowflake, content string) *Message {
	m := NewMessage(content)
	m.ChannelID = channelID
	return m
}

// NewEmbedMessage builds an outbound message carrying a single embed.
func NewEmbedMessage(channelID Snowflake, e Embed) *Message {
	m := NewMessage("")
	m.ChannelID = channelID
	m.Embeds = append(m.Embeds, e)
	return m
}

func (m *Message) SetContent(content string) *Message {
	m.Content = content
	return m
}

// AddComponent appends a top-level component, which the wire expects to be
// an action row wrapping the actual buttons.
func (m *Message) AddComponent(c Component) *Message {
	m.Components = append(m.Components, c)
	return m
}

func (m *Message) AddEmbed(e Embed) *Message {
	m.Embeds = append(m.Embeds, e)
	return m
}

func (m *Message) SetFlags(f MessageFlags) *Message {
	m.Flags = f
	return m
}

func (m *Message) SetType(t MessageType) *Message {
	m.Type = t
	return m
}

func (m *Message) SetFilename(filename string) *Message {
	m.Filename = filename
	return m
}

func (m *Message) SetFileContent(content []byte) *Message {
	m.FileContent = content
	return m
}

// SetReference marks the message as a reply to another message.
func (m *Message) SetReference(messageID, guildID, channelID Snowflake, failIfNotExists bool) *Message {
	m.Reference = MessageReference{
		MessageID:       messageID,
		GuildID:         guildID,
		ChannelID:       channelID,
		FailIfNotExists: failIfNotExists,
	}
	return m
}

func (m *Message) IsCrossposted() bool {
	return m.Flags&FlagCrossposted != 0
}

func (m *Message) IsCrosspost() bool {
	return m.Flags&FlagIsCrosspost != 0
}

// SuppressEmbeds reports whether embeds are excluded when this message is
// serialized.
func (m *Message) SuppressEmbeds() bool {
	return m.Flags&FlagSuppressEmbeds != 0
}

func (m *Message) IsSourceMessageDeleted() bool {
	return m.Flags&FlagSourceMessageDeleted != 0
}

func (m *Message) IsUrgent() bool {
	return m.Flags&FlagUrgent != 0
}

func (m *Message) IsEphemeral() bool {
	return m.Flags&FlagEphemeral != 0
}

func (m *Message) IsLoading() bool {
	return m.Flags&FlagLoading != 0
}

// FillFromJSON reads a message from the wire. The author is always parsed
// as an owned copy; promoting it into the shared user cache is the event
// layer's call, driven by its cache policy.
func (m *Message) FillFromJSON(j *simplejson.Json) *Message {
	m.ID = snowflakeOf(j, "id")
	m.ChannelID = snowflakeOf(j, "channel_id")
	m.GuildID = snowflakeOf(j, "guild_id")
	if a, ok := j.CheckGet("author"); ok {
		m.Author = OwnedAuthor(new(User).FillFromJSON(a))
	}
	if mem, ok := j.CheckGet("member"); ok {
		m.Member.FillFromJSON(mem, m.GuildID, m.Author.ID())
	}
	m.Content = j.Get("content").MustString()
	components := j.Get("components")
	for i := range components.MustArray() {
		var c Component
		c.FillFromJSON(components.GetIndex(i))
		m.Components = append(m.Components, c)
	}
	m.Sent = ParseTimestamp(j.Get("timestamp").MustString())
	m.Edited = ParseTimestamp(j.Get("edited_timestamp").MustString())
	m.TTS = j.Get("tts").MustBool()
	m.MentionEveryone = j.Get("mention_everyone").MustBool()
	m.Mentions = snowflakeRefs(j, "mentions")
	m.MentionRoles = snowflakeRefs(j, "mention_roles")
	m.MentionChannels = snowflakeRefs(j, "mention_channels")
	attachments := j.Get("attachments")
	for i := range attachments.MustArray() {
		var a Attachment
		a.FillFromJSON(attachments.GetIndex(i))
		m.Attachments = append(m.Attachments, a)
	}
	embeds := j.Get("embeds")
	for i := range embeds.MustArray() {
		var e Embed
		e.FillFromJSON(embeds.GetIndex(i))
		m.Embeds = append(m.Embeds, e)
	}
	reactions := j.Get("reactions")
	for i := range reactions.MustArray() {
		var r Reaction
		r.FillFromJSON(reactions.GetIndex(i))
		m.Reactions = append(m.Reactions, r)
	}
	// a nonce may be sent as a string or a number
	if s, err := j.Get("nonce").String(); err == nil {
		m.Nonce = s
	} else if n, err := j.Get("nonce").Int64(); err == nil {
		m.Nonce = strconv.FormatInt(n, 10)
	}
	m.Pinned = j.Get("pinned").MustBool()
	m.WebhookID = snowflakeOf(j, "webhook_id")
	m.Flags = MessageFlags(j.Get("flags").MustInt())
	m.Type = MessageType(j.Get("type").MustInt())
	if ref, ok := j.CheckGet("message_reference"); ok {
		m.Reference = MessageReference{
			MessageID:       snowflakeOf(ref, "message_id"),
			ChannelID:       snowflakeOf(ref, "channel_id"),
			GuildID:         snowflakeOf(ref, "guild_id"),
			FailIfNotExists: ref.Get("fail_if_not_exists").MustBool(true),
		}
	}
	return m
}

// BuildJSON encodes the message for sending. withID controls whether the id
// key is present (a brand-new outbound message has none yet).
// isInteractionResponse switches the envelope to the slash-command reply
// shape, wrapping the body under {"type": 4, "data": {...}}.
func (m *Message) BuildJSON(withID bool, isInteractionResponse bool) ([]byte, error) {
	body := simplejson.New()
	if withID {
		body.Set("id", m.ID.String())
	}
	if m.ChannelID != 0 {
		body.Set("channel_id", m.ChannelID.String())
	}
	if m.GuildID != 0 {
		body.Set("guild_id", m.GuildID.String())
	}
	body.Set("content", m.Content)
	if m.TTS {
		body.Set("tts", true)
	}
	if m.Nonce != "" {
		body.Set("nonce", m.Nonce)
	}
	if m.Type != MessageTypeDefault {
		body.Set("type", int(m.Type))
	}
	if m.Flags != 0 {
		body.Set("flags", int(m.Flags))
	}
	if m.Reference.MessageID != 0 {
		ref := map[string]interface{}{
			"message_id":         m.Reference.MessageID.String(),
			"fail_if_not_exists": m.Reference.FailIfNotExists,
		}
		if m.Reference.ChannelID != 0 {
			ref["channel_id"] = m.Reference.ChannelID.String()
		}
		if m.Reference.GuildID != 0 {
			ref["guild_id"] = m.Reference.GuildID.String()
		}
		body.Set("message_reference", ref)
	}
	if len(m.Components) > 0 {
		rows := make([]interface{}, 0, len(m.Components))
		for i := range m.Components {
			rows = append(rows, m.Components[i].jsonValue())
		}
		body.Set("components", rows)
	}
	if len(m.Embeds) > 0 && !m.SuppressEmbeds() {
		embeds := make([]interface{}, 0, len(m.Embeds))
		for i := range m.Embeds {
			embeds = append(embeds, m.Embeds[i].jsonValue())
		}
		body.Set("embeds", embeds)
	}
	if isInteractionResponse {
		envelope := simplejson.New()
		envelope.Set("type", 4)
		envelope.Set("data", body)
		return envelope.Encode()
	}
	return body.Encode()
}
