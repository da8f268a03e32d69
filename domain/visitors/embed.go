package visitors

import (
	"time"
)

// Discord embed presentation.
const (
	EmbedTitle  = "🔍 New Website Visitor"
	EmbedColor  = 0x4DA8FF
	EmbedFooter = "Visitor Tracking System"
)

// Visit is one landing page view.
type Visit struct {
	IP        string
	Path      string
	UserAgent string
	At        time.Time
}

// WebhookPayload is the body posted to a Discord webhook.
type WebhookPayload struct {
	Embeds []Embed `json:"embeds"`
}

type Embed struct {
	Title  string          `json:"title"`
	Color  int             `json:"color"`
	Fields []EmbedField    `json:"fields"`
	Footer EmbedFooterText `json:"footer"`
}

type EmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}

type EmbedFooterText struct {
	Text string `json:"text"`
}

// Discord rejects embeds with empty field values.
func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// NewPayload builds the webhook body for a visit.
func NewPayload(v Visit) WebhookPayload {
	return WebhookPayload{
		Embeds: []Embed{{
			Title: EmbedTitle,
			Color: EmbedColor,
			Fields: []EmbedField{
				{Name: "IP Address", Value: orDefault(v.IP, "unknown"), Inline: true},
				{Name: "Path", Value: orDefault(v.Path, "/"), Inline: true},
				{Name: "User Agent", Value: orDefault(v.UserAgent, "unknown")},
				{Name: "Timestamp", Value: v.At.UTC().Format("2006-01-02T15:04:05.000Z07:00")},
			},
			Footer: EmbedFooterText{Text: EmbedFooter},
		}},
	}
}
