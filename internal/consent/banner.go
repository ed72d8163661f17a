// Package consent implements the dismissible cookie-consent banner.
package consent

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"todobox/internal/storage"
)

const (
	// Key is the storage key holding the consent flag.
	Key = "allowCookies"

	// Accepted is the stored value recording acceptance.
	Accepted = "1"

	// DefaultMessage is the banner text shown until the user accepts.
	DefaultMessage = "We use cookies to improve your experience on this site."
)

// Banner tracks whether the consent banner is shown.
type Banner struct {
	store   storage.Store
	log     logrus.FieldLogger
	message string
	visible bool
}

// Option configures a Banner.
type Option func(*Banner)

// WithLogger sets the logger for fail-soft events.
func WithLogger(l logrus.FieldLogger) Option {
	return func(b *Banner) { b.log = l }
}

// WithMessage overrides the banner text. Blank messages are ignored.
func WithMessage(msg string) Option {
	return func(b *Banner) {
		if msg != "" {
			b.message = msg
		}
	}
}

// New mounts a banner over store. It is visible unless the consent flag is
// already stored. A failed read counts as not accepted.
func New(store storage.Store, opts ...Option) *Banner {
	b := &Banner{
		store:   store,
		log:     logrus.StandardLogger(),
		message: DefaultMessage,
	}
	for _, opt := range opts {
		opt(b)
	}

	v, _, err := store.Get(Key)
	if err != nil {
		b.log.WithError(err).Warn("consent: read failed, showing banner")
	}
	b.visible = v != Accepted
	b.log.WithField("visible", b.visible).Debug("consent: mounted")
	return b
}

// Visible reports whether the banner should render.
func (b *Banner) Visible() bool {
	return b.visible
}

// Message returns the banner text.
func (b *Banner) Message() string {
	return b.message
}

// Accept hides the banner and records consent. The banner stays hidden even
// if the write fails.
func (b *Banner) Accept() error {
	b.visible = false
	if err := b.store.Set(Key, Accepted); err != nil {
		return fmt.Errorf("save consent: %w", err)
	}
	b.log.Debug("consent: accepted")
	return nil
}
