// Package bus decouples the modal workflow (producer of create/delete results)
// from the controller that keeps the store and both galleries consistent.
// It replaces the browser's "work:created"/"work:deleted" custom events with
// typed observer registration: delivery is synchronous, same-goroutine and in
// subscription order, and the producer never holds consumer references.
package bus

import "atelier-cli/internal/model"

// EventWorkCreated and EventWorkDeleted are the journal record types.
const (
	EventWorkCreated = "work:created"
	EventWorkDeleted = "work:deleted"
)

type Bus struct {
	created []func(model.Work)
	deleted []func(id int64)

	journal *Journal
}

// New returns a bus. journal may be nil (no persistence).
func New(journal *Journal) *Bus {
	return &Bus{journal: journal}
}

// SubscribeCreated registers fn for successful creates.
func (b *Bus) SubscribeCreated(fn func(model.Work)) {
	b.created = append(b.created, fn)
}

// SubscribeDeleted registers fn for successful deletes.
func (b *Bus) SubscribeDeleted(fn func(id int64)) {
	b.deleted = append(b.deleted, fn)
}

// PublishCreated notifies subscribers of a created work and journals it.
func (b *Bus) PublishCreated(w model.Work) {
	b.journal.Append(EventWorkCreated, w)
	for _, fn := range b.created {
		fn(w)
	}
}

// PublishDeleted notifies subscribers of a deleted work id and journals it.
func (b *Bus) PublishDeleted(id int64) {
	b.journal.Append(EventWorkDeleted, map[string]int64{"id": id})
	for _, fn := range b.deleted {
		fn(id)
	}
}
