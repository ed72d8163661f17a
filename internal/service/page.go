package service

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"todobox/internal/config"
	"todobox/internal/consent"
	"todobox/internal/storage"
	"todobox/internal/todo"
)

// Page mounts the banner and the task list side by side. They share the
// store but not state.
type Page struct {
	store   storage.Store
	log     logrus.FieldLogger
	message string

	banner *consent.Banner
	list   *todo.List
}

// NewPage mounts both widgets over store. message overrides the banner text
// when non-empty.
func NewPage(store storage.Store, log logrus.FieldLogger, message string) *Page {
	p := &Page{store: store, log: log, message: message}
	p.mount()
	return p
}

func (p *Page) mount() {
	p.banner = consent.New(p.store, consent.WithLogger(p.log), consent.WithMessage(p.message))
	p.list = todo.New(p.store, todo.WithLogger(p.log))
}

// ConsentVisible implements Service.
func (p *Page) ConsentVisible() bool { return p.banner.Visible() }

// ConsentMessage implements Service.
func (p *Page) ConsentMessage() string { return p.banner.Message() }

// AcceptConsent implements Service.
func (p *Page) AcceptConsent() error { return p.banner.Accept() }

// Pending implements Service.
func (p *Page) Pending() []todo.Task { return p.list.Pending() }

// Completed implements Service.
func (p *Page) Completed() []todo.Task { return p.list.Completed() }

// AddTask implements Service.
func (p *Page) AddTask(text string) (todo.Task, bool, error) { return p.list.Add(text) }

// CompleteTask implements Service.
func (p *Page) CompleteTask(id int) (bool, error) { return p.list.Complete(id) }

// RevertTask implements Service.
func (p *Page) RevertTask(id int) (bool, error) { return p.list.Revert(id) }

// DeleteTask implements Service.
func (p *Page) DeleteTask(id int) (bool, error) { return p.list.Delete(id) }

// Reset implements Service.
func (p *Page) Reset() error {
	if err := p.store.Clear(); err != nil {
		return fmt.Errorf("reset storage: %w", err)
	}
	p.mount()
	p.log.Debug("page: storage cleared")
	return nil
}

// Open mounts a page over the store configured in cfg.
func Open(cfg *config.Config) (*Page, error) {
	store, err := storage.Open(cfg)
	if err != nil {
		return nil, err
	}
	cfg.Logger().WithFields(logrus.Fields{
		"driver": cfg.Storage.Driver,
		"origin": cfg.Origin,
	}).Debug("page: storage opened")
	return NewPage(store, cfg.Logger(), cfg.Consent.Message), nil
}

// Close releases the underlying store.
func (p *Page) Close() error {
	return storage.Close(p.store)
}
