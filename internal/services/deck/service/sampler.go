package service

import (
	"context"

	"commitkings/internal/services/deck/domain"
)

// candidate is one entry of the sampling pool: either a curated identifier
// still needing a fetch, or a fully cached card
type candidate struct {
	ident string
	item  *domain.Item
}

// pool assembles the unseen candidates for one queue: the curated list plus
// live payload-cache entries, minus anything shown, buffered, or rated
func (s *Svc) pool(ctx context.Context, q *deckQueue) []candidate {
	var out []candidate
	for _, ident := range domain.PriorityFor(q.t) {
		if q.wasShown(ident) {
			continue
		}
		out = append(out, candidate{ident: ident})
	}
	cached, err := s.local.LiveItems(ctx, q.t, s.opts.Staleness, s.now())
	if err != nil {
		s.log.Debug().Err(err).Msg("read payload cache")
	}
	for i := range cached {
		it := cached[i]
		if q.wasShown(it.Key()) || q.inBuffer(it.ID) {
			continue
		}
		if rated, err := s.cache.Has(ctx, it.Key()); err == nil && rated {
			continue
		}
		out = append(out, candidate{item: &it})
	}
	return out
}

// sample deals one card. Cached payloads are served first in shuffle order,
// then a live fetch of the first shuffled identifier when the guard allows
// it. A drained pool resets the shown set for a fresh pass. Returns nil
// with no error when nothing can be dealt right now
func (s *Svc) sample(ctx context.Context, q *deckQueue) (*domain.Item, error) {
	pool := s.pool(ctx, q)
	if len(pool) == 0 {
		q.resetShown()
		pool = s.pool(ctx, q)
		if len(pool) == 0 {
			return nil, nil
		}
	}
	s.shuffle(pool)

	for _, c := range pool {
		if c.item != nil {
			return c.item, nil
		}
	}

	if s.guard.Limited() {
		return nil, nil
	}

	for _, c := range pool {
		it, err := s.fetchIdent(ctx, q.t, c.ident)
		if err != nil {
			if s.guard.TripFrom(err) {
				return nil, nil
			}
			if ctx.Err() != nil {
				return nil, err
			}
			// gone or broken candidate, skip it for this pass
			s.log.Debug().Err(err).Str("ident", c.ident).Msg("discard candidate")
			q.markShown(c.ident)
			continue
		}
		q.markShown(c.ident)
		if q.inBuffer(it.ID) {
			continue
		}
		if rated, err := s.cache.Has(ctx, it.Key()); err == nil && rated {
			q.markShown(it.Key())
			continue
		}
		return it, nil
	}
	return nil, nil
}
