package service

import (
	perr "commitkings/internal/platform/errors"
	"commitkings/internal/services/deck/domain"
)

// queue is the per-type card buffer. All access happens under the deck mutex
type queue struct {
	t     domain.ItemType
	state domain.State
	buf   []domain.Item
	shown map[string]struct{}
}

func newQueue(t domain.ItemType) *queue {
	return &queue{t: t, state: domain.StateUninitialized, shown: map[string]struct{}{}}
}

func (q *queue) head() *domain.Item {
	if len(q.buf) == 0 {
		return nil
	}
	it := q.buf[0]
	return &it
}

// push appends a card while holding the buffer invariants: type
// homogeneity, no duplicate ids, never past size
func (q *queue) push(it domain.Item, size int) error {
	if it.Type != q.t {
		return perr.Internalf("cannot push %s card into %s queue", it.Type, q.t)
	}
	if q.inBuffer(it.ID) {
		return perr.Internalf("duplicate card %d in %s queue", it.ID, q.t)
	}
	if len(q.buf) >= size {
		return perr.Internalf("%s queue is full", q.t)
	}
	q.buf = append(q.buf, it)
	return nil
}

// pushHead inserts a pinned card in front, trimming the tail to size
func (q *queue) pushHead(it domain.Item, size int) {
	kept := q.buf[:0:0]
	for _, b := range q.buf {
		if b.ID != it.ID {
			kept = append(kept, b)
		}
	}
	q.buf = append([]domain.Item{it}, kept...)
	if len(q.buf) > size {
		q.buf = q.buf[:size]
	}
}

func (q *queue) popHead() {
	if len(q.buf) > 0 {
		q.buf = q.buf[1:]
	}
}

func (q *queue) inBuffer(id int64) bool {
	for _, b := range q.buf {
		if b.ID == id {
			return true
		}
	}
	return false
}

func (q *queue) markShown(key string) {
	if key != "" {
		q.shown[key] = struct{}{}
	}
}

func (q *queue) wasShown(key string) bool {
	_, ok := q.shown[key]
	return ok
}

// resetShown starts a fresh pass over the pool once every candidate was dealt
func (q *queue) resetShown() { q.shown = map[string]struct{}{} }
