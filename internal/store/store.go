// Package store holds the simulator's entity collections in process memory.
//
// There is no persistence behind it: all state lives for the lifetime of the
// session and dies with the process. Mutations never update an entity in
// place; each one rebuilds the affected collection with fresh copies, so a
// snapshot taken before a mutation is never aliased by a later one.
//
// Foreign keys (UploaderID, VideoID, UserID) are optimistic. Lookups report
// absence through an ok bool and mutations on a missing row are no-ops;
// callers skip rather than fail.
package store

import (
	"errors"
	"sort"

	"github.com/neotube/neotube-go/internal/models"
)

// ErrNotFound is returned by operations that need a specific record and
// cannot tolerate its absence.
var ErrNotFound = errors.New("record not found")

// Store owns the three entity collections plus the signed-in identity.
// It is not safe for concurrent use; the session serializes access, matching
// the one-event-at-a-time discipline of the simulated UI runtime.
type Store struct {
	users         []models.User
	videos        []models.Video
	comments      []models.Comment
	currentUserID string
}

// New creates a store seeded with copies of the given collections.
// Collections are kept most-recent-first throughout.
func New(users []models.User, videos []models.Video, comments []models.Comment) *Store {
	s := &Store{
		users:    make([]models.User, 0, len(users)),
		videos:   make([]models.Video, 0, len(videos)),
		comments: make([]models.Comment, 0, len(comments)),
	}
	for i := range users {
		s.users = append(s.users, *users[i].Clone())
	}
	for i := range videos {
		s.videos = append(s.videos, *videos[i].Clone())
	}
	s.comments = append(s.comments, comments...)
	return s
}

// Identity

// SetCurrentUser records the signed-in identity. It returns ErrNotFound when
// no account has that id.
func (s *Store) SetCurrentUser(userID string) error {
	if _, ok := s.UserByID(userID); !ok {
		return ErrNotFound
	}
	s.currentUserID = userID
	return nil
}

// ClearCurrentUser signs the session out.
func (s *Store) ClearCurrentUser() {
	s.currentUserID = ""
}

// CurrentUser returns the signed-in account, if any.
func (s *Store) CurrentUser() (models.User, bool) {
	if s.currentUserID == "" {
		return models.User{}, false
	}
	return s.UserByID(s.currentUserID)
}

// Lookups. All return copies; mutating a returned value never touches the
// store.

// UserByID finds a user by id.
func (s *Store) UserByID(id string) (models.User, bool) {
	for i := range s.users {
		if s.users[i].ID == id {
			return *s.users[i].Clone(), true
		}
	}
	return models.User{}, false
}

// UserByEmail finds a user by exact email match.
func (s *Store) UserByEmail(email string) (models.User, bool) {
	for i := range s.users {
		if s.users[i].Email == email {
			return *s.users[i].Clone(), true
		}
	}
	return models.User{}, false
}

// VideoByID finds a video by id.
func (s *Store) VideoByID(id string) (models.Video, bool) {
	for i := range s.videos {
		if s.videos[i].ID == id {
			return *s.videos[i].Clone(), true
		}
	}
	return models.Video{}, false
}

// Users returns a snapshot of the user collection.
func (s *Store) Users() []models.User {
	out := make([]models.User, 0, len(s.users))
	for i := range s.users {
		out = append(out, *s.users[i].Clone())
	}
	return out
}

// Videos returns a snapshot of the video collection, most recent first.
func (s *Store) Videos() []models.Video {
	out := make([]models.Video, 0, len(s.videos))
	for i := range s.videos {
		out = append(out, *s.videos[i].Clone())
	}
	return out
}

// VideosByUploader returns the uploader's videos in collection order.
func (s *Store) VideosByUploader(userID string) []models.Video {
	var out []models.Video
	for i := range s.videos {
		if s.videos[i].UploaderID == userID {
			out = append(out, *s.videos[i].Clone())
		}
	}
	return out
}

// Comments returns a snapshot of the comment collection.
func (s *Store) Comments() []models.Comment {
	out := make([]models.Comment, len(s.comments))
	copy(out, s.comments)
	return out
}

// CommentsForVideo returns the video's comments, newest first.
func (s *Store) CommentsForVideo(videoID string) []models.Comment {
	var out []models.Comment
	for _, c := range s.comments {
		if c.VideoID == videoID {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out
}

// Mutations. Each rebuilds the affected collection; none reports an error
// for a missing row beyond an ok bool.

// PrependVideo inserts a video at the front of the collection.
func (s *Store) PrependVideo(v models.Video) {
	next := make([]models.Video, 0, len(s.videos)+1)
	next = append(next, *v.Clone())
	next = append(next, s.videos...)
	s.videos = next
}

// PrependComment inserts a comment at the front of the collection.
func (s *Store) PrependComment(c models.Comment) {
	next := make([]models.Comment, 0, len(s.comments)+1)
	next = append(next, c)
	next = append(next, s.comments...)
	s.comments = next
}

// DeleteVideo removes exactly the video with the given id, preserving the
// relative order of the rest. No ownership check happens here; the calling
// surface decides who may delete.
func (s *Store) DeleteVideo(id string) bool {
	next := make([]models.Video, 0, len(s.videos))
	found := false
	for i := range s.videos {
		if s.videos[i].ID == id {
			found = true
			continue
		}
		next = append(next, s.videos[i])
	}
	if found {
		s.videos = next
	}
	return found
}

// ToggleLike toggles userID in the video's like set. The dislike set is left
// alone in both directions.
func (s *Store) ToggleLike(videoID, userID string) bool {
	return s.replaceVideo(videoID, func(v *models.Video) {
		v.Likes = models.ToggleID(v.Likes, userID)
	})
}

// ToggleDislike toggles userID in the video's dislike set, independently of
// the like set.
func (s *Store) ToggleDislike(videoID, userID string) bool {
	return s.replaceVideo(videoID, func(v *models.Video) {
		v.Dislikes = models.ToggleID(v.Dislikes, userID)
	})
}

// RecordView bumps the monotonic view counter.
func (s *Store) RecordView(videoID string) bool {
	return s.replaceVideo(videoID, func(v *models.Video) {
		v.Views++
	})
}

// ToggleSubscription toggles callerID's membership in target's subscriber
// set and targetID's membership in the caller's subscription set in one
// pass, keeping the two sides symmetric. Self-subscription is rejected.
func (s *Store) ToggleSubscription(callerID, targetID string) bool {
	if callerID == targetID {
		return false
	}
	callerIdx, targetIdx := -1, -1
	for i := range s.users {
		switch s.users[i].ID {
		case callerID:
			callerIdx = i
		case targetID:
			targetIdx = i
		}
	}
	if callerIdx < 0 || targetIdx < 0 {
		return false
	}

	next := make([]models.User, 0, len(s.users))
	for i := range s.users {
		u := s.users[i].Clone()
		switch i {
		case callerIdx:
			u.Subscriptions = models.ToggleID(u.Subscriptions, targetID)
		case targetIdx:
			u.Subscribers = models.ToggleID(u.Subscribers, callerID)
		}
		next = append(next, *u)
	}
	s.users = next
	return true
}

// CreditRevenue adds amount to the user's running balance.
func (s *Store) CreditRevenue(userID string, amount float64) bool {
	idx := -1
	for i := range s.users {
		if s.users[i].ID == userID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	next := make([]models.User, 0, len(s.users))
	for i := range s.users {
		u := s.users[i].Clone()
		if i == idx {
			u.Revenue += amount
		}
		next = append(next, *u)
	}
	s.users = next
	return true
}

func (s *Store) replaceVideo(videoID string, apply func(*models.Video)) bool {
	idx := -1
	for i := range s.videos {
		if s.videos[i].ID == videoID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	next := make([]models.Video, 0, len(s.videos))
	for i := range s.videos {
		v := s.videos[i].Clone()
		if i == idx {
			apply(v)
		}
		next = append(next, *v)
	}
	s.videos = next
	return true
}
