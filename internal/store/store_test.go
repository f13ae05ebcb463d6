package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neotube/neotube-go/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	users := []models.User{
		{ID: "user_1", Username: "alice", Email: "alice@example.com", Subscriptions: []string{}, Subscribers: []string{}},
		{ID: "user_2", Username: "bob", Email: "bob@example.com", Subscriptions: []string{}, Subscribers: []string{}},
	}
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	videos := []models.Video{
		{ID: "vid_1", UploaderID: "user_2", Title: "first", Views: 100, Likes: []string{}, Dislikes: []string{}, Timestamp: now},
		{ID: "vid_2", UploaderID: "user_1", Title: "second", Views: 50, Likes: []string{}, Dislikes: []string{}, Timestamp: now.Add(-time.Hour)},
		{ID: "vid_3", UploaderID: "user_2", Title: "third", Views: 10, Likes: []string{}, Dislikes: []string{}, Timestamp: now.Add(-2 * time.Hour)},
	}
	comments := []models.Comment{
		{ID: "c_1", VideoID: "vid_1", UserID: "user_1", Text: "older", Timestamp: now.Add(-time.Hour)},
		{ID: "c_2", VideoID: "vid_1", UserID: "user_2", Text: "newer", Timestamp: now},
	}
	return New(users, videos, comments)
}

func videoIDs(videos []models.Video) []string {
	out := make([]string, 0, len(videos))
	for _, v := range videos {
		out = append(out, v.ID)
	}
	return out
}

func TestCurrentUserLifecycle(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	_, ok := s.CurrentUser()
	assert.False(t, ok, "fresh store has no identity")

	require.ErrorIs(t, s.SetCurrentUser("nobody"), ErrNotFound)
	_, ok = s.CurrentUser()
	assert.False(t, ok, "failed sign-in must not set an identity")

	require.NoError(t, s.SetCurrentUser("user_1"))
	u, ok := s.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "alice", u.Username)

	s.ClearCurrentUser()
	_, ok = s.CurrentUser()
	assert.False(t, ok)
}

func TestLookupsReturnCopies(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	v, ok := s.VideoByID("vid_1")
	require.True(t, ok)
	v.Likes = append(v.Likes, "user_1")
	v.Title = "mutated"

	fresh, ok := s.VideoByID("vid_1")
	require.True(t, ok)
	assert.Empty(t, fresh.Likes, "mutating a returned copy must not touch the store")
	assert.Equal(t, "first", fresh.Title)

	u, ok := s.UserByEmail("bob@example.com")
	require.True(t, ok)
	u.Subscriptions = append(u.Subscriptions, "user_1")

	freshUser, ok := s.UserByID("user_2")
	require.True(t, ok)
	assert.Empty(t, freshUser.Subscriptions)
}

func TestToggleLikeRoundTrip(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	require.True(t, s.ToggleLike("vid_1", "user_1"))
	v, _ := s.VideoByID("vid_1")
	assert.Equal(t, []string{"user_1"}, v.Likes)
	assert.Empty(t, v.Dislikes, "like toggle must leave the dislike set alone")

	require.True(t, s.ToggleLike("vid_1", "user_1"))
	v, _ = s.VideoByID("vid_1")
	assert.Empty(t, v.Likes, "second toggle restores the original set")

	assert.False(t, s.ToggleLike("missing", "user_1"))
}

func TestToggleDislikeIndependentOfLikes(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	require.True(t, s.ToggleLike("vid_1", "user_1"))
	require.True(t, s.ToggleDislike("vid_1", "user_1"))

	v, _ := s.VideoByID("vid_1")
	assert.Equal(t, []string{"user_1"}, v.Likes)
	assert.Equal(t, []string{"user_1"}, v.Dislikes, "a user may sit in both sets at once")
}

func TestToggleLikeIsIdempotentPerPair(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	require.True(t, s.ToggleLike("vid_1", "user_1"))
	require.True(t, s.ToggleLike("vid_1", "user_2"))
	v, _ := s.VideoByID("vid_1")
	assert.ElementsMatch(t, []string{"user_1", "user_2"}, v.Likes)
	assert.Len(t, v.Likes, 2, "toggling never produces duplicates")
}

func TestDeleteVideo(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	require.True(t, s.DeleteVideo("vid_2"))
	assert.Equal(t, []string{"vid_1", "vid_3"}, videoIDs(s.Videos()),
		"exactly one video removed, relative order preserved")

	assert.False(t, s.DeleteVideo("vid_2"), "second delete of the same id is a miss")
	assert.Len(t, s.Videos(), 2)
}

func TestPrependVideo(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	s.PrependVideo(models.Video{ID: "vid_new", UploaderID: "user_1", Likes: []string{}, Dislikes: []string{}})
	assert.Equal(t, []string{"vid_new", "vid_1", "vid_2", "vid_3"}, videoIDs(s.Videos()))
}

func TestToggleSubscriptionSymmetry(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	require.True(t, s.ToggleSubscription("user_1", "user_2"))
	caller, _ := s.UserByID("user_1")
	target, _ := s.UserByID("user_2")
	assert.Equal(t, []string{"user_2"}, caller.Subscriptions)
	assert.Equal(t, []string{"user_1"}, target.Subscribers)

	require.True(t, s.ToggleSubscription("user_1", "user_2"))
	caller, _ = s.UserByID("user_1")
	target, _ = s.UserByID("user_2")
	assert.Empty(t, caller.Subscriptions)
	assert.Empty(t, target.Subscribers)
}

func TestToggleSubscriptionRejections(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	assert.False(t, s.ToggleSubscription("user_1", "user_1"), "self-subscription rejected")
	assert.False(t, s.ToggleSubscription("user_1", "ghost"), "missing target rejected")
	assert.False(t, s.ToggleSubscription("ghost", "user_1"), "missing caller rejected")

	u, _ := s.UserByID("user_1")
	assert.Empty(t, u.Subscriptions)
	assert.Empty(t, u.Subscribers)
}

func TestRecordView(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	require.True(t, s.RecordView("vid_3"))
	require.True(t, s.RecordView("vid_3"))
	v, _ := s.VideoByID("vid_3")
	assert.Equal(t, int64(12), v.Views)

	assert.False(t, s.RecordView("missing"))
}

func TestCreditRevenue(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	require.True(t, s.CreditRevenue("user_1", 4.99))
	require.True(t, s.CreditRevenue("user_1", 0.01))
	u, _ := s.UserByID("user_1")
	assert.InDelta(t, 5.00, u.Revenue, 1e-9)

	assert.False(t, s.CreditRevenue("ghost", 1))
}

func TestCommentsForVideoNewestFirst(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	got := s.CommentsForVideo("vid_1")
	require.Len(t, got, 2)
	assert.Equal(t, "c_2", got[0].ID)
	assert.Equal(t, "c_1", got[1].ID)

	assert.Empty(t, s.CommentsForVideo("vid_2"))
}

func TestPrependComment(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	s.PrependComment(models.Comment{ID: "c_3", VideoID: "vid_2", UserID: "user_1", Text: "hi"})
	all := s.Comments()
	require.Len(t, all, 3)
	assert.Equal(t, "c_3", all[0].ID)
}

func TestVideosByUploader(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	assert.Equal(t, []string{"vid_1", "vid_3"}, videoIDs(s.VideosByUploader("user_2")))
	assert.Empty(t, s.VideosByUploader("ghost"))
}

func TestSnapshotsAreIsolatedFromMutations(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	before := s.Videos()
	require.True(t, s.ToggleLike("vid_1", "user_1"))

	assert.Empty(t, before[0].Likes, "pre-mutation snapshot must not observe the mutation")
	after, _ := s.VideoByID("vid_1")
	assert.Equal(t, []string{"user_1"}, after.Likes)
}
