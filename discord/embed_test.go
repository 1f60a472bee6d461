package discord

import (
	"github.com/bitly/go-simplejson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
)

func TestEmbedBuilderChain(t *testing.T) {
	e := NewEmbed().
		SetTitle("Release notes").
		SetDescription("what changed").
		SetColor(0x5865F2).
		SetURL("https://example.com").
		SetAuthor("bot", "https://example.com/bot", "https://example.com/icon.png").
		SetImage("https://example.com/banner.png").
		SetThumbnail("https://example.com/thumb.png").
		AddField("version", "1.2.3", true).
		AddField("breaking", "none", false)

	assert.Equal(t, "Release notes", e.Title)
	assert.Equal(t, 0x5865F2, e.Color)
	require.NotNil(t, e.Author)
	assert.Equal(t, "bot", e.Author.Name)
	require.Len(t, e.Fields, 2)
	assert.True(t, e.Fields[0].Inline)
	assert.False(t, e.Clamped())
}

func TestEmbedFieldValueClamped(t *testing.T) {
	e := NewEmbed().AddField("big", strings.Repeat("v", 1001), false)
	assert.True(t, e.Clamped())
	assert.Len(t, e.Fields[0].Value, 1000)
}

const embedJSON = `{
	"title": "t", "type": "rich", "description": "d", "url": "https://e.com",
	"timestamp": "2021-06-01T12:30:00+00:00", "color": 3447003,
	"footer": {"text": "ft", "icon_url": "https://e.com/f.png", "proxy_icon_url": "https://proxy/f.png"},
	"image": {"url": "https://e.com/i.png", "proxy_url": "https://proxy/i.png", "height": 100, "width": 200},
	"thumbnail": {"url": "https://e.com/th.png"},
	"video": {"url": "https://e.com/v.mp4", "height": 720, "width": 1280},
	"provider": {"name": "prov", "url": "https://prov"},
	"author": {"name": "an", "url": "https://e.com/a", "icon_url": "https://e.com/a.png"},
	"fields": [{"name": "n1", "value": "v1", "inline": true}]
}`

func TestEmbedFillFromJSON(t *testing.T) {
	j, err := simplejson.NewJson([]byte(embedJSON))
	require.NoError(t, err)

	var e Embed
	e.FillFromJSON(j)

	assert.Equal(t, "t", e.Title)
	assert.Equal(t, int64(1622550600), e.Timestamp)
	require.NotNil(t, e.Footer)
	assert.Equal(t, "https://proxy/f.png", e.Footer.ProxyIconURL)
	require.NotNil(t, e.Image)
	assert.Equal(t, 100, e.Image.Height)
	require.NotNil(t, e.Video)
	require.NotNil(t, e.Provider)
	assert.Equal(t, "prov", e.Provider.Name)
	require.Len(t, e.Fields, 1)
	assert.Equal(t, "v1", e.Fields[0].Value)
}

func TestEmbedReceiveOnlyNotSerialized(t *testing.T) {
	j, err := simplejson.NewJson([]byte(embedJSON))
	require.NoError(t, err)
	var e Embed
	e.FillFromJSON(j)

	built, err := e.BuildJSON()
	require.NoError(t, err)
	out, err := simplejson.NewJson(built)
	require.NoError(t, err)

	_, hasVideo := out.CheckGet("video")
	_, hasProvider := out.CheckGet("provider")
	assert.False(t, hasVideo)
	assert.False(t, hasProvider)
}

func TestEmbedRoundTrip(t *testing.T) {
	j, err := simplejson.NewJson([]byte(embedJSON))
	require.NoError(t, err)
	var e Embed
	e.FillFromJSON(j)

	built, err := e.BuildJSON()
	require.NoError(t, err)
	j2, err := simplejson.NewJson(built)
	require.NoError(t, err)
	var again Embed
	again.FillFromJSON(j2)

	// every bidirectional field survives; proxy urls, computed sizes and
	// the video/provider blocks are server-side only
	assert.Equal(t, e.Title, again.Title)
	assert.Equal(t, e.Type, again.Type)
	assert.Equal(t, e.Description, again.Description)
	assert.Equal(t, e.URL, again.URL)
	assert.Equal(t, e.Timestamp, again.Timestamp)
	assert.Equal(t, e.Color, again.Color)
	assert.Equal(t, e.Fields, again.Fields)
	require.NotNil(t, again.Footer)
	assert.Equal(t, e.Footer.Text, again.Footer.Text)
	assert.Equal(t, e.Footer.IconURL, again.Footer.IconURL)
	require.NotNil(t, again.Image)
	assert.Equal(t, e.Image.URL, again.Image.URL)
	require.NotNil(t, again.Thumbnail)
	assert.Equal(t, e.Thumbnail.URL, again.Thumbnail.URL)
	require.NotNil(t, again.Author)
	assert.Equal(t, e.Author.Name, again.Author.Name)
	assert.Equal(t, e.Author.URL, again.Author.URL)
	assert.Equal(t, e.Author.IconURL, again.Author.IconURL)
}

func TestTimestampHelpers(t *testing.T) {
	assert.EqualValues(t, 0, ParseTimestamp(""))
	assert.EqualValues(t, 0, ParseTimestamp("not a timestamp"))
	assert.Equal(t, "", FormatTimestamp(0))

	epoch := ParseTimestamp("2021-06-01T12:30:00+00:00")
	assert.Equal(t, epoch, ParseTimestamp(FormatTimestamp(epoch)))
}
