// Package notify shows desktop notifications.
package notify

import (
	"fmt"
	"log/slog"

	"github.com/gen2brain/beeep"
)

// Func delivers a notification with an optional icon path.
type Func func(title, message, icon string) error

// Notifier sends at most one notification per session and day.
type Notifier struct {
	send    Func
	icon    string
	sent    map[string]bool
	enabled bool
}

// New returns a Notifier that shows icon next to its messages.
func New(enabled bool, icon string) *Notifier {
	return &Notifier{
		send:    desktop,
		icon:    icon,
		enabled: enabled,
		sent:    make(map[string]bool),
	}
}

// WithFunc replaces the function used to deliver notifications.
func (n *Notifier) WithFunc(f Func) *Notifier {
	n.send = f
	return n
}

// SessionComplete announces that every exercise of session is done. key
// identifies the day and session so repeated calls stay silent.
func (n *Notifier) SessionComplete(key, phase, session string, total int) {
	if n == nil || !n.enabled || n.sent[key] {
		return
	}

	n.sent[key] = true

	title := fmt.Sprintf("%s complete", session)
	msg := fmt.Sprintf("All %d exercises of %s are done for today", total, phase)

	if err := n.send(title, msg, n.icon); err != nil {
		slog.Warn("unable to display notification", slog.Any("error", err))
	}
}

// Reset allows key to notify again, e.g. after an exercise is unchecked.
func (n *Notifier) Reset(key string) {
	if n == nil {
		return
	}

	delete(n.sent, key)
}

func desktop(title, message, icon string) error {
	return beeep.Notify(title, message, icon)
}
