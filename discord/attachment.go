package discord

import (
	"github.com/bitly/go-simplejson"
)

// Attachment is a file attached to a received message. Attachments are
// always server-built; sending a file goes through the message's
// Filename/FileContent upload pair instead.
type Attachment struct {
	ID          Snowflake
	Size        int
	Filename    string
	URL         string
	ProxyURL    string
	Width       int
	Height      int
	ContentType string
}

func (a *Attachment) FillFromJSON(j *simplejson.Json) *Attachment {
	a.ID = snowflakeOf(j, "id")
	a.Size = j.Get("size").MustInt()
	a.Filename = j.Get("filename").MustString()
	a.URL = j.Get("url").MustString()
	a.ProxyURL = j.Get("proxy_url").MustString()
	a.Width = j.Get("width").MustInt()
	a.Height = j.Get("height").MustInt()
	a.ContentType = j.Get("content_type").MustString()
	return a
}
