package sessions

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/mobile-next/touchdrag/frame"
	"github.com/mobile-next/touchdrag/gestures"
	"github.com/mobile-next/touchdrag/utils"
	"github.com/sirupsen/logrus"
)

var ErrSessionNotFound = errors.New("session not found")

// Options configure the view and clock of a new session.
// Zero fields fall back to the registry's defaults, then to the built-in ones.
type Options struct {
	Name        string
	Speed       float32
	Sensitivity float32
	Bounds      float32
}

// Session is one input source: a guarded tracker plus the frame loop reading it.
type Session struct {
	ID        string
	Name      string
	CreatedAt time.Time
	Tracker   *gestures.Guarded
	Loop      *frame.Loop

	ctx    context.Context
	cancel context.CancelFunc
}

// Context is cancelled once the session is closed or evicted.
func (s *Session) Context() context.Context {
	return s.ctx
}

// Info is the JSON view of a session
type Info struct {
	ID        string    `json:"id"`
	Name      string    `json:"name,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	Fingers   int       `json:"fingers"`
}

func (s *Session) Info() Info {
	return Info{
		ID:        s.ID,
		Name:      s.Name,
		CreatedAt: s.CreatedAt,
		Fingers:   s.Tracker.FingerCount(),
	}
}

// Registry holds the live sessions. Past capacity the least recently used
// session is evicted.
type Registry struct {
	mu       sync.Mutex
	cache    *lru.Cache[string, *Session]
	defaults Options
	now      func() time.Time
}

// NewRegistry creates a registry holding at most capacity sessions. Sessions
// created with zero options take their values from defaults.
func NewRegistry(capacity int, defaults Options) (*Registry, error) {
	cache, err := lru.NewWithEvict[string, *Session](capacity, func(id string, s *Session) {
		s.cancel()
		s.Tracker.Reset()
		utils.Logger().WithField("session", id).Debug("Session released")
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create session registry: %w", err)
	}

	return &Registry{
		cache:    cache,
		defaults: defaults,
		now:      time.Now,
	}, nil
}

// Create starts a new session and registers it
func (r *Registry) Create(opts Options) *Session {
	opts = r.withDefaults(opts)
	tracker := gestures.NewGuarded()
	ctx, cancel := context.WithCancel(context.Background())

	s := &Session{
		ID:        uuid.NewString(),
		Name:      opts.Name,
		CreatedAt: r.now(),
		Tracker:   tracker,
		Loop: frame.NewLoop(
			tracker,
			frame.NewView(opts.Sensitivity, opts.Bounds),
			frame.NewClock(opts.Speed),
		),
		ctx:    ctx,
		cancel: cancel,
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if evicted := r.cache.Add(s.ID, s); evicted {
		utils.Warn("Session capacity reached, evicted least recently used session")
	}

	utils.Logger().WithFields(logrus.Fields{
		"session":     s.ID,
		"speed":       opts.Speed,
		"sensitivity": opts.Sensitivity,
		"bounds":      opts.Bounds,
	}).Debug("Session created")
	return s
}

func (r *Registry) withDefaults(opts Options) Options {
	if opts.Speed == 0 {
		opts.Speed = r.defaults.Speed
	}
	if opts.Sensitivity == 0 {
		opts.Sensitivity = r.defaults.Sensitivity
	}
	if opts.Bounds == 0 {
		opts.Bounds = r.defaults.Bounds
	}

	if opts.Speed == 0 {
		opts.Speed = frame.DefaultSpeed
	}
	if opts.Sensitivity == 0 {
		opts.Sensitivity = 1
	}
	return opts
}

// Get looks up a session and marks it as recently used
func (r *Registry) Get(id string) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.cache.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return s, nil
}

// Close removes a session and cancels its context
func (r *Registry) Close(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.cache.Remove(id) {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return nil
}

// List returns every live session, oldest first
func (r *Registry) List() []Info {
	r.mu.Lock()
	sessions := r.cache.Values()
	r.mu.Unlock()

	infos := make([]Info, 0, len(sessions))
	for _, s := range sessions {
		infos = append(infos, s.Info())
	}

	sort.SliceStable(infos, func(i, j int) bool {
		return infos[i].CreatedAt.Before(infos[j].CreatedAt)
	})
	return infos
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cache.Len()
}

// CloseAll drops every session
func (r *Registry) CloseAll() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cache.Len() == 0 {
		return
	}

	r.cache.Purge()
}
