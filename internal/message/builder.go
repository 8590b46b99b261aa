// Package message centralizes construction of provider payloads so the
// notification shape is defined in one place and testable without the
// transport handlers.
package message

import "firebase.google.com/go/v4/messaging"

// Asset paths baked into the web push notification block.
const (
	defaultIcon  = "/firebase-logo.png"
	defaultBadge = "/firebase-logo.png"
	defaultLink  = "/"
)

// Options enumerates the recognized notification fields. Title and Body are
// required by the handlers before a builder is ever constructed; ImageURL
// and Data are optional.
type Options struct {
	Title    string
	Body     string
	ImageURL string
	Data     map[string]string
}

// ClickLink derives the notification click target from Data["url"],
// defaulting to the app root.
func (o Options) ClickLink() string {
	if url, ok := o.Data["url"]; ok && url != "" {
		return url
	}
	return defaultLink
}

func (o Options) notification() *messaging.Notification {
	n := &messaging.Notification{
		Title: o.Title,
		Body:  o.Body,
	}
	if o.ImageURL != "" {
		n.ImageURL = o.ImageURL
	}
	return n
}

func (o Options) webpush() *messaging.WebpushConfig {
	return &messaging.WebpushConfig{
		Notification: &messaging.WebpushNotification{
			Title:              o.Title,
			Body:               o.Body,
			Icon:               defaultIcon,
			Badge:              defaultBadge,
			Image:              o.ImageURL,
			RequireInteraction: false,
		},
		FCMOptions: &messaging.WebpushFCMOptions{
			Link: o.ClickLink(),
		},
	}
}

// Single builds a provider message addressed to one device token.
func (o Options) Single(token string) *messaging.Message {
	msg := &messaging.Message{
		Token:        token,
		Notification: o.notification(),
		Webpush:      o.webpush(),
	}
	if len(o.Data) > 0 {
		msg.Data = o.Data
	}
	return msg
}

// Multicast builds a provider message fanned out to all given tokens in a
// single call.
func (o Options) Multicast(tokens []string) *messaging.MulticastMessage {
	msg := &messaging.MulticastMessage{
		Tokens:       tokens,
		Notification: o.notification(),
		Webpush:      o.webpush(),
	}
	if len(o.Data) > 0 {
		msg.Data = o.Data
	}
	return msg
}
