package discord

import (
	"github.com/bitly/go-simplejson"
	"unicode/utf8"
)

const maxFieldValueLen = 1000

// EmbedFooter is the footer line of an embed.
type EmbedFooter struct {
	Text         string
	IconURL      string
	ProxyIconURL string
}

// EmbedImage is an image, thumbnail or video of an embed. Height and width
// are computed server side.
type EmbedImage struct {
	URL      string
	ProxyURL string
	Height   int
	Width    int
}

// EmbedProvider is received from the platform but can never be sent.
type EmbedProvider struct {
	Name string
	URL  string
}

// EmbedAuthor is the author block of an embed.
type EmbedAuthor struct {
	Name         string
	URL          string
	IconURL      string
	ProxyIconURL string
}

// EmbedField is one name/value entry of an embed.
type EmbedField struct {
	Name   string
	Value  string
	Inline bool
}

// Embed is a rich content block attached to a message. Optional sub-objects
// are nil when absent. Video and Provider are receive-only and never appear
// in built JSON.
type Embed struct {
	Title       string
	Type        string
	Description string
	URL         string
	Timestamp   int64
	Color       int
	Footer      *EmbedFooter
	Image       *EmbedImage
	Thumbnail   *EmbedImage
	Video       *EmbedImage
	Provider    *EmbedProvider
	Author      *EmbedAuthor
	Fields      []EmbedField

	clamped bool
}

func NewEmbed() *Embed {
	return &Embed{}
}

// Clamped reports whether any field value had to be cut to the wire limit.
func (e *Embed) Clamped() bool {
	return e.clamped
}

func (e *Embed) SetTitle(title string) *Embed {
	e.Title = title
	return e
}

func (e *Embed) SetDescription(description string) *Embed {
	e.Description = description
	return e
}

func (e *Embed) SetColor(color int) *Embed {
	e.Color = color
	return e
}

func (e *Embed) SetURL(url string) *Embed {
	e.URL = url
	return e
}

func (e *Embed) SetTimestamp(epoch int64) *Embed {
	e.Timestamp = epoch
	return e
}

// AddField appends a field. Values longer than 1000 characters are clamped
// to the wire limit, observable through Clamped.
func (e *Embed) AddField(name, value string, inline bool) *Embed {
	if utf8.RuneCountInString(value) > maxFieldValueLen {
		value = string([]rune(value)[:maxFieldValueLen])
		e.clamped = true
	}
	e.Fields = append(e.Fields, EmbedField{Name: name, Value: value, Inline: inline})
	return e
}

func (e *Embed) SetAuthor(name, url, iconURL string) *Embed {
	e.Author = &EmbedAuthor{Name: name, URL: url, IconURL: iconURL}
	return e
}

func (e *Embed) SetProvider(name, url string) *Embed {
	e.Provider = &EmbedProvider{Name: name, URL: url}
	return e
}

func (e *Embed) SetFooter(text, iconURL string) *Embed {
	e.Footer = &EmbedFooter{Text: text, IconURL: iconURL}
	return e
}

func (e *Embed) SetImage(url string) *Embed {
	e.Image = &EmbedImage{URL: url}
	return e
}

func (e *Embed) SetVideo(url string) *Embed {
	e.Video = &EmbedImage{URL: url}
	return e
}

func (e *Embed) SetThumbnail(url string) *Embed {
	e.Thumbnail = &EmbedImage{URL: url}
	return e
}

func embedImageFromJSON(j *simplejson.Json) *EmbedImage {
	return &EmbedImage{
		URL:      j.Get("url").MustString(),
		ProxyURL: j.Get("proxy_url").MustString(),
		Height:   j.Get("height").MustInt(),
		Width:    j.Get("width").MustInt(),
	}
}

// FillFromJSON reads every embed field the wire can deliver, including the
// receive-only video and provider blocks.
func (e *Embed) FillFromJSON(j *simplejson.Json) *Embed {
	e.Title = j.Get("title").MustString()
	e.Type = j.Get("type").MustString()
	e.Description = j.Get("description").MustString()
	e.URL = j.Get("url").MustString()
	e.Timestamp = ParseTimestamp(j.Get("timestamp").MustString())
	e.Color = j.Get("color").MustInt()
	if f, ok := j.CheckGet("footer"); ok {
		e.Footer = &EmbedFooter{
			Text:         f.Get("text").MustString(),
			IconURL:      f.Get("icon_url").MustString(),
			ProxyIconURL: f.Get("proxy_icon_url").MustString(),
		}
	}
	if img, ok := j.CheckGet("image"); ok {
		e.Image = embedImageFromJSON(img)
	}
	if th, ok := j.CheckGet("thumbnail"); ok {
		e.Thumbnail = embedImageFromJSON(th)
	}
	if v, ok := j.CheckGet("video"); ok {
		e.Video = embedImageFromJSON(v)
	}
	if p, ok := j.CheckGet("provider"); ok {
		e.Provider = &EmbedProvider{
			Name: p.Get("name").MustString(),
			URL:  p.Get("url").MustString(),
		}
	}
	if a, ok := j.CheckGet("author"); ok {
		e.Author = &EmbedAuthor{
			Name:         a.Get("name").MustString(),
			URL:          a.Get("url").MustString(),
			IconURL:      a.Get("icon_url").MustString(),
			ProxyIconURL: a.Get("proxy_icon_url").MustString(),
		}
	}
	fields := j.Get("fields")
	for i := range fields.MustArray() {
		f := fields.GetIndex(i)
		e.Fields = append(e.Fields, EmbedField{
			Name:   f.Get("name").MustString(),
			Value:  f.Get("value").MustString(),
			Inline: f.Get("inline").MustBool(),
		})
	}
	return e
}

// BuildJSON encodes the embed for sending. Video and provider are skipped,
// the platform computes those itself.
func (e *Embed) BuildJSON() ([]byte, error) {
	j := simplejson.New()
	for k, v := range e.jsonValue() {
		j.Set(k, v)
	}
	return j.Encode()
}

func (e *Embed) jsonValue() map[string]interface{} {
	v := map[string]interface{}{}
	if e.Title != "" {
		v["title"] = e.Title
	}
	if e.Type != "" {
		v["type"] = e.Type
	}
	if e.Description != "" {
		v["description"] = e.Description
	}
	if e.URL != "" {
		v["url"] = e.URL
	}
	if ts := FormatTimestamp(e.Timestamp); ts != "" {
		v["timestamp"] = ts
	}
	if e.Color != 0 {
		v["color"] = e.Color
	}
	if e.Footer != nil {
		v["footer"] = map[string]interface{}{
			"text":     e.Footer.Text,
			"icon_url": e.Footer.IconURL,
		}
	}
	if e.Image != nil {
		v["image"] = map[string]interface{}{"url": e.Image.URL}
	}
	if e.Thumbnail != nil {
		v["thumbnail"] = map[string]interface{}{"url": e.Thumbnail.URL}
	}
	if e.Author != nil {
		v["author"] = map[string]interface{}{
			"name":     e.Author.Name,
			"url":      e.Author.URL,
			"icon_url": e.Author.IconURL,
		}
	}
	if len(e.Fields) > 0 {
		fields := make([]interface{}, 0, len(e.Fields))
		for _, f := range e.Fields {
			fields = append(fields, map[string]interface{}{
				"name":   f.Name,
				"value":  f.Value,
				"inline": f.Inline,
			})
		}
		v["fields"] = fields
	}
	return v
}
