// Package session is the single update entry point of the simulator. It
// owns the store, the active view state and the feed filters, and exposes
// one method per user-triggered mutation.
//
// Handlers run to completion under the session mutex, so every handler
// observes a fully-settled prior state, the in-process equivalent of the
// one-event-at-a-time UI runtime being simulated. The only suspension point
// is the description-generation call inside Upload, which runs outside the
// lock so unrelated interactions stay live while it is pending.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/neotube/neotube-go/internal/feed"
	"github.com/neotube/neotube-go/internal/metrics"
	"github.com/neotube/neotube-go/internal/models"
	"github.com/neotube/neotube-go/internal/service/gemini"
	"github.com/neotube/neotube-go/internal/store"
	"github.com/neotube/neotube-go/internal/view"
)

// Sentinel errors surfaced to the presentation layer. Operations the
// platform defines as silent no-ops still return these so a caller can tell
// nothing happened; the store is untouched either way.
var (
	// ErrUnknownEmail is the login lookup miss, shown to the user as a
	// blocking notification.
	ErrUnknownEmail = errors.New("no account matches that email")

	// ErrNotSignedIn marks mutations that need an identity.
	ErrNotSignedIn = errors.New("sign in required")

	// ErrUploadInFlight rejects a second upload while one is still
	// waiting on description generation.
	ErrUploadInFlight = errors.New("an upload is already in progress")
)

// Describer produces a promotional description for a video title. It never
// fails; a declined or unavailable service answers with a fallback string.
type Describer interface {
	GenerateDescription(ctx context.Context, title string) string
}

// Session holds the application state and applies all transitions.
type Session struct {
	mu sync.Mutex

	store    *store.Store
	view     view.State
	category models.VideoCategory
	feedMode feed.Mode
	feedSort feed.Sort

	uploadPending bool

	describer Describer
	log       *zap.Logger
	metrics   *metrics.Metrics
	now       func() time.Time

	rpm              float64
	partnerThreshold int
}

// Option configures a Session.
type Option func(*Session)

// WithDescriber sets the text-generation collaborator.
func WithDescriber(d Describer) Option {
	return func(s *Session) { s.describer = d }
}

// WithLogger sets the session logger.
func WithLogger(log *zap.Logger) Option {
	return func(s *Session) { s.log = log }
}

// WithMetrics sets the action counters.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Session) { s.metrics = m }
}

// WithClock overrides the time source, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// WithInitialUser signs the given account in at startup. Unknown ids are
// ignored and the session starts anonymous.
func WithInitialUser(userID string) Option {
	return func(s *Session) {
		if userID == "" {
			return
		}
		if err := s.store.SetCurrentUser(userID); err != nil {
			s.log.Warn("initial user not found, starting anonymous", zap.String("user_id", userID))
		}
	}
}

// WithRequireLogin starts on the login view with no signed-in identity.
func WithRequireLogin() Option {
	return func(s *Session) {
		s.store.ClearCurrentUser()
		s.view = view.Login{}
	}
}

// WithMonetization overrides the simulated RPM and partner subscriber
// threshold.
func WithMonetization(rpm float64, threshold int) Option {
	return func(s *Session) {
		s.rpm = rpm
		s.partnerThreshold = threshold
	}
}

// New creates a session over the given store. The initial view is the home
// page unless WithRequireLogin says otherwise.
func New(st *store.Store, opts ...Option) *Session {
	s := &Session{
		store:            st,
		view:             view.Home{},
		category:         models.CategoryAll,
		feedMode:         feed.ModeAll,
		feedSort:         feed.SortDate,
		log:              zap.NewNop(),
		now:              time.Now,
		rpm:              2.45,
		partnerThreshold: 1000,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.describer == nil {
		// An unconfigured client still answers with the fixed fallback.
		s.describer = gemini.NewClient(gemini.Config{Logger: s.log})
	}
	return s
}

// View returns the active view state.
func (s *Session) View() view.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

// CurrentUser returns the signed-in account, if any.
func (s *Session) CurrentUser() (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.CurrentUser()
}

// Videos returns a snapshot of the full video collection.
func (s *Session) Videos() []models.Video {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Videos()
}

// UserByID resolves a user, tolerating absence.
func (s *Session) UserByID(id string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.UserByID(id)
}

// VideoByID resolves a video, tolerating absence.
func (s *Session) VideoByID(id string) (models.Video, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.VideoByID(id)
}

// CommentsForVideo returns a video's comments, newest first.
func (s *Session) CommentsForVideo(videoID string) []models.Comment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.CommentsForVideo(videoID)
}

// Filters returns the current feed filter state.
func (s *Session) Filters() (models.VideoCategory, feed.Mode, feed.Sort) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.category, s.feedMode, s.feedSort
}

// Feed derives the ordered video list for the active view and filters.
func (s *Session) Feed() []models.Video {
	s.mu.Lock()
	defer s.mu.Unlock()
	return feed.Derive(s.store.Videos(), s.currentUserRef(), s.filtersLocked())
}

// Featured returns the home page's highlighted video.
func (s *Session) Featured() (models.Video, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return feed.Featured(s.store.Videos())
}

func (s *Session) filtersLocked() feed.Filters {
	f := feed.Filters{
		Mode:     s.feedMode,
		Category: s.category,
		Sort:     s.feedSort,
	}
	if sv, ok := s.view.(view.Search); ok {
		f.Searching = true
		f.Query = sv.Query
	}
	return f
}

func (s *Session) currentUserRef() *models.User {
	if cur, ok := s.store.CurrentUser(); ok {
		return &cur
	}
	return nil
}

// Navigation and filter setters. Transitions happen only here and in the
// post-login/post-upload redirects.

// Navigate switches to the given view.
func (s *Session) Navigate(v view.State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setViewLocked(v)
}

// Search switches to the search results view for the query.
func (s *Session) Search(query string) {
	s.Navigate(view.Search{Query: query})
}

// SelectCategory sets the category filter.
func (s *Session) SelectCategory(c models.VideoCategory) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.category = c
}

// SetFeedMode sets the feed mode. The subscriptions-only mode needs a
// signed-in user; an anonymous request is ignored.
func (s *Session) SetFeedMode(m feed.Mode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m == feed.ModeSubscriptions {
		if _, ok := s.store.CurrentUser(); !ok {
			return
		}
	}
	s.feedMode = m
}

// SetFeedSort sets the feed sort order.
func (s *Session) SetFeedSort(o feed.Sort) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.feedSort = o
}

func (s *Session) setViewLocked(v view.State) {
	s.log.Debug("view transition",
		zap.String("from", s.view.Name()),
		zap.String("to", v.Name()),
	)
	s.view = v
}
