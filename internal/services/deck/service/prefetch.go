package service

import (
	"context"
	"fmt"
	"time"

	"commitkings/internal/services/deck/domain"
)

// Discovery query shapes and paging bounds
const (
	searchPageMax = 10
	searchPerPage = 10
)

// schedulePrefetch arms the one-shot startup prefetch for a type
func (s *Svc) schedulePrefetch(t domain.ItemType) {
	if s.opts.PrefetchDelay < 0 {
		return
	}
	s.mu.Lock()
	armed := s.prefetched[t]
	s.prefetched[t] = true
	s.mu.Unlock()
	if armed {
		return
	}
	time.AfterFunc(s.opts.PrefetchDelay, func() {
		if _, err := s.PrefetchBatch(context.Background(), t); err != nil {
			s.log.Debug().Err(err).Str("type", string(t)).Msg("startup prefetch")
		}
	})
}

// maybePrefetch tops the payload cache up when it runs below the low-water
// mark, no-op while the guard is limited
func (s *Svc) maybePrefetch(ctx context.Context, t domain.ItemType) {
	if s.guard.Limited() {
		return
	}
	n, err := s.local.CountLive(ctx, t, s.opts.Staleness, s.now())
	if err != nil || n >= s.opts.LowWater {
		return
	}
	if _, err := s.PrefetchBatch(ctx, t); err != nil {
		s.log.Debug().Err(err).Str("type", string(t)).Msg("prefetch batch")
	}
}

// PrefetchBatch runs one discovery search and stores the results in the
// payload cache. Repos draw a random curated topic, profiles use a
// followers floor, both land on a random page so repeat runs vary
func (s *Svc) PrefetchBatch(ctx context.Context, t domain.ItemType) (int, error) {
	if !t.Valid() {
		return 0, nil
	}
	if s.guard.Limited() {
		return 0, nil
	}
	page := s.randPage(searchPageMax)

	var items []domain.Item
	switch t {
	case domain.TypeRepo:
		topic := domain.SearchTopics[s.randPage(len(domain.SearchTopics))-1]
		res, err := s.gh.SearchRepos(ctx, fmt.Sprintf("topic:%s stars:>100", topic), page, searchPerPage)
		if err != nil {
			s.guard.TripFrom(err)
			return 0, err
		}
		for _, r := range res.Items {
			items = append(items, repoToItem(r))
		}
	default:
		res, err := s.gh.SearchUsers(ctx, "followers:>100 type:user", page, searchPerPage)
		if err != nil {
			s.guard.TripFrom(err)
			return 0, err
		}
		for _, u := range res.Items {
			// search slivers carry no contribution data, fine for a card
			items = append(items, userToItem(u, nil))
		}
	}

	if err := s.local.PutItems(ctx, items, s.now()); err != nil {
		return 0, err
	}
	return len(items), nil
}
