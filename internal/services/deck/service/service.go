// Package service runs the deck: per-type card queues over the GitHub
// client, the local payload cache, the rating cache, and the rate-limit
// guard
package service

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"time"

	gh "commitkings/internal/adapters/github"
	perr "commitkings/internal/platform/errors"
	"commitkings/internal/platform/logger"
	ratingsdomain "commitkings/internal/services/api/ratings/domain"
	"commitkings/internal/services/deck/domain"
	"commitkings/internal/services/deck/ratingcache"
	deckrepo "commitkings/internal/services/deck/repo"
)

// Tuning defaults, matched to the shipped client behavior
const (
	defaultQueueSize     = 3
	defaultLowWater      = 5
	defaultStaleness     = time.Hour
	defaultPrefetchDelay = 2 * time.Second
)

// Options tune a deck service, zero values take the defaults.
// A negative PrefetchDelay disables the startup prefetch
type Options struct {
	QueueSize     int
	LowWater      int
	Staleness     time.Duration
	Cooldown      time.Duration
	PrefetchDelay time.Duration
	Seed          int64
}

func (o Options) withDefaults() Options {
	if o.QueueSize <= 0 {
		o.QueueSize = defaultQueueSize
	}
	if o.LowWater <= 0 {
		o.LowWater = defaultLowWater
	}
	if o.Staleness <= 0 {
		o.Staleness = defaultStaleness
	}
	if o.Cooldown <= 0 {
		o.Cooldown = DefaultCooldown
	}
	if o.PrefetchDelay == 0 {
		o.PrefetchDelay = defaultPrefetchDelay
	}
	return o
}

// Service defines the deck service contract
type Service interface {
	domain.ServicePort
	PrefetchBatch(ctx context.Context, t domain.ItemType) (int, error)
}

// Svc implements the deck service
type Svc struct {
	log     logger.Logger
	gh      Fetcher
	ratings RatingsPort
	cache   *ratingcache.Cache
	local   deckrepo.Repo
	guard   *Guard
	opts    Options

	mu     sync.Mutex
	queues map[domain.ItemType]*deckQueue

	rngMu sync.Mutex
	rng   *rand.Rand

	now     func() time.Time
	sleep   func(context.Context, time.Duration)
	contrib func(login string, today time.Time) []gh.ContributionDay

	prefetched map[domain.ItemType]bool
}

// deckQueue pairs the buffer with its own lock so the two decks do not
// serialize against each other
type deckQueue struct {
	mu sync.Mutex
	queue
}

// New constructs a deck service
func New(
	log logger.Logger,
	fetch Fetcher,
	ratings RatingsPort,
	cache *ratingcache.Cache,
	local deckrepo.Repo,
	opts Options,
) *Svc {
	if fetch == nil {
		panic("deck.Service requires a non-nil Fetcher")
	}
	if ratings == nil {
		panic("deck.Service requires a non-nil RatingsPort")
	}
	if cache == nil {
		panic("deck.Service requires a non-nil rating cache")
	}
	if local == nil {
		panic("deck.Service requires a non-nil local repo")
	}
	opts = opts.withDefaults()
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Svc{
		log:        log,
		gh:         fetch,
		ratings:    ratings,
		cache:      cache,
		local:      local,
		guard:      NewGuard(GuardCooldown(opts.Cooldown)),
		opts:       opts,
		queues:     map[domain.ItemType]*deckQueue{},
		rng:        rand.New(rand.NewSource(seed)),
		now:        time.Now,
		sleep:      sleepCtx,
		contrib:    gh.Contributions,
		prefetched: map[domain.ItemType]bool{},
	}
}

// Guard exposes the shared circuit breaker
func (s *Svc) Guard() *Guard { return s.guard }

// Current returns the head card, filling the queue on first touch
func (s *Svc) Current(ctx context.Context, t domain.ItemType) (domain.CurrentResult, error) {
	if !t.Valid() {
		return domain.CurrentResult{}, perr.InvalidArgf("type must be profile or repo")
	}
	q := s.queueFor(t)
	q.mu.Lock()
	defer q.mu.Unlock()
	if err := s.initLocked(ctx, q); err != nil {
		return domain.CurrentResult{}, err
	}
	return s.resultLocked(q), nil
}

// Next advances the deck after an optional reveal delay. A transition
// already in flight is rejected
func (s *Svc) Next(ctx context.Context, t domain.ItemType, in domain.NextInput) (domain.CurrentResult, error) {
	if !t.Valid() {
		return domain.CurrentResult{}, perr.InvalidArgf("type must be profile or repo")
	}
	if in.DelayMS < 0 {
		return domain.CurrentResult{}, perr.InvalidArgf("delay_ms must not be negative")
	}
	q := s.queueFor(t)
	q.mu.Lock()
	if q.state == domain.StateTransitioning {
		q.mu.Unlock()
		return domain.CurrentResult{}, perr.Conflictf("deck transition already in progress")
	}
	if err := s.initLocked(ctx, q); err != nil {
		q.mu.Unlock()
		return domain.CurrentResult{}, err
	}
	q.state = domain.StateTransitioning
	q.mu.Unlock()

	s.sleep(ctx, time.Duration(in.DelayMS)*time.Millisecond)

	q.mu.Lock()
	defer q.mu.Unlock()
	q.state = domain.StateReady
	if err := ctx.Err(); err != nil {
		return domain.CurrentResult{}, err
	}
	return s.advanceLocked(ctx, q), nil
}

// Pin fetches a specific card and puts it on top of its deck. The pointer
// is persisted so a restart lands on the same card
func (s *Svc) Pin(ctx context.Context, in domain.PinInput) (domain.CurrentResult, error) {
	if !in.Type.Valid() {
		return domain.CurrentResult{}, perr.InvalidArgf("type must be profile or repo")
	}
	if strings.TrimSpace(in.Ident) == "" {
		return domain.CurrentResult{}, perr.InvalidArgf("ident is required")
	}
	q := s.queueFor(in.Type)
	q.mu.Lock()
	defer q.mu.Unlock()
	if err := s.initLocked(ctx, q); err != nil {
		return domain.CurrentResult{}, err
	}
	it, err := s.fetchIdent(ctx, in.Type, in.Ident)
	if err != nil {
		s.guard.TripFrom(err)
		return domain.CurrentResult{}, err
	}
	q.markShown(in.Ident)
	q.markShown(it.Key())
	q.pushHead(*it, s.opts.QueueSize)
	if err := s.local.SaveResume(ctx, in.Type, in.Ident, s.now()); err != nil {
		s.log.Debug().Err(err).Msg("save resume pointer")
	}
	return s.resultLocked(q), nil
}

// Rate records a verdict on the head card and deals the next one. The
// rating cache is written optimistically and rolled back if the submit
// fails for any reason other than an existing server-side vote
func (s *Svc) Rate(ctx context.Context, in domain.RateInput) (domain.CurrentResult, error) {
	if !in.Type.Valid() {
		return domain.CurrentResult{}, perr.InvalidArgf("type must be profile or repo")
	}
	if !in.Verdict.Valid() {
		return domain.CurrentResult{}, perr.InvalidArgf("verdict must be hotty or notty")
	}
	if in.UserID == "" {
		return domain.CurrentResult{}, perr.InvalidArgf("user_id is required")
	}
	q := s.queueFor(in.Type)
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.state == domain.StateTransitioning {
		// Next released the lock for its reveal delay, the head is about
		// to change under us
		return domain.CurrentResult{}, perr.Conflictf("deck transition already in progress")
	}
	if err := s.initLocked(ctx, q); err != nil {
		return domain.CurrentResult{}, err
	}
	head := q.head()
	if head == nil || head.ID != in.ID {
		return domain.CurrentResult{}, perr.InvalidArgf("card %d is not on top of the deck", in.ID)
	}
	key := head.Key()
	if rated, err := s.cache.Has(ctx, key); err == nil && rated {
		return domain.CurrentResult{}, perr.DuplicateKeyf("already rated %s", key)
	}
	if err := s.cache.Set(ctx, key, in.Verdict); err != nil {
		// cache trouble never blocks the vote
		s.log.Warn().Err(err).Str("key", key).Msg("rating cache write failed")
	}
	serverDup := false
	_, err := s.ratings.Submit(ctx, ratingsdomain.SubmitInput{
		UserID:         in.UserID,
		GithubID:       head.ID,
		GithubUsername: head.Login(),
		FullName:       head.FullName(),
		Type:           string(in.Type),
		Rating:         string(in.Verdict),
	})
	if err != nil {
		if !perr.IsCode(err, perr.ErrorCodeDuplicateKey) {
			// roll back the optimistic cache entry, the server has no vote
			if rerr := s.cache.Remove(ctx, key); rerr != nil {
				s.log.Warn().Err(rerr).Str("key", key).Msg("rating cache rollback failed")
			}
			return domain.CurrentResult{}, err
		}
		// the server already holds a vote the local cache lost, keep the
		// cache entry and tell the caller while dealing the next card
		serverDup = true
		s.log.Debug().Str("key", key).Msg("verdict already recorded server-side")
	}
	if err := s.local.ClearResume(ctx); err != nil {
		s.log.Debug().Err(err).Msg("clear resume pointer")
	}
	res := s.advanceLocked(ctx, q)
	res.AlreadyRated = serverDup
	return res, nil
}

// Status snapshots one queue
func (s *Svc) Status(ctx context.Context, t domain.ItemType) (domain.Status, error) {
	if !t.Valid() {
		return domain.Status{}, perr.InvalidArgf("type must be profile or repo")
	}
	q := s.queueFor(t)
	q.mu.Lock()
	defer q.mu.Unlock()
	cached, err := s.local.CountLive(ctx, t, s.opts.Staleness, s.now())
	if err != nil {
		s.log.Debug().Err(err).Msg("count payload cache")
	}
	st := domain.Status{
		Type:        t,
		State:       q.state,
		BufferLen:   len(q.buf),
		ShownCount:  len(q.shown),
		CachedCount: cached,
		Limited:     s.guard.Limited(),
	}
	if at, ok := s.guard.RecoverAt(); ok {
		st.RecoverAt = &at
	}
	return st, nil
}

func (s *Svc) queueFor(t domain.ItemType) *deckQueue {
	s.mu.Lock()
	defer s.mu.Unlock()
	q := s.queues[t]
	if q == nil {
		q = &deckQueue{queue: *newQueue(t)}
		s.queues[t] = q
	}
	return q
}

// initLocked brings an untouched queue to Ready, called with q.mu held
func (s *Svc) initLocked(ctx context.Context, q *deckQueue) error {
	if q.state != domain.StateUninitialized {
		return nil
	}
	q.state = domain.StateFilling
	s.adoptResume(ctx, q)
	if err := s.fill(ctx, q); err != nil {
		q.state = domain.StateUninitialized
		return err
	}
	q.state = domain.StateReady
	s.schedulePrefetch(q.t)
	return nil
}

// adoptResume pins the saved card, if one matches this queue
func (s *Svc) adoptResume(ctx context.Context, q *deckQueue) {
	t, ident, ok, err := s.local.LoadResume(ctx)
	if err != nil || !ok || t != q.t {
		return
	}
	it, err := s.fetchIdent(ctx, q.t, ident)
	if err != nil {
		s.guard.TripFrom(err)
		return
	}
	q.markShown(ident)
	q.markShown(it.Key())
	q.pushHead(*it, s.opts.QueueSize)
}

// advanceLocked pops the head and refills, called with q.mu held
func (s *Svc) advanceLocked(ctx context.Context, q *deckQueue) domain.CurrentResult {
	q.popHead()
	if err := s.fill(ctx, q); err != nil {
		s.log.Debug().Err(err).Msg("refill after advance")
	}
	return s.resultLocked(q)
}

// fill tops the buffer up to size, called with q.mu held
func (s *Svc) fill(ctx context.Context, q *deckQueue) error {
	for len(q.buf) < s.opts.QueueSize {
		it, err := s.sample(ctx, q)
		if err != nil {
			return err
		}
		if it == nil {
			break
		}
		if err := q.push(*it, s.opts.QueueSize); err != nil {
			return err
		}
		q.markShown(it.Key())
	}
	s.maybePrefetch(ctx, q.t)
	return nil
}

func (s *Svc) resultLocked(q *deckQueue) domain.CurrentResult {
	if head := q.head(); head != nil {
		return domain.CurrentResult{Item: head}
	}
	out := domain.CurrentResult{Empty: true}
	if at, ok := s.guard.RecoverAt(); ok {
		out.RetryAt = &at
	}
	return out
}

// fetchIdent resolves a login or owner/name slug to a card
func (s *Svc) fetchIdent(ctx context.Context, t domain.ItemType, ident string) (*domain.Item, error) {
	if t == domain.TypeRepo {
		owner, name, ok := strings.Cut(ident, "/")
		if !ok || owner == "" || name == "" {
			return nil, perr.InvalidArgf("repo ident must be owner/name")
		}
		r, err := s.gh.RepoByFullName(ctx, owner, name)
		if err != nil {
			return nil, err
		}
		it := repoToItem(r)
		return &it, nil
	}
	u, err := s.gh.UserByLogin(ctx, ident)
	if err != nil {
		return nil, err
	}
	it := userToItem(u, s.contrib(u.Login, s.now()))
	return &it, nil
}

func (s *Svc) shuffle(pool []candidate) {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	s.rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
}

func (s *Svc) randPage(max int) int {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return s.rng.Intn(max) + 1
}

func sleepCtx(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
