package session

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/neotube/neotube-go/internal/feed"
	"github.com/neotube/neotube-go/internal/metrics"
	"github.com/neotube/neotube-go/internal/models"
	"github.com/neotube/neotube-go/internal/stats"
	"github.com/neotube/neotube-go/internal/view"
)

// UploadDraft is the metadata submitted with an upload. Empty fields get
// the platform defaults: "Untitled", the All category, and a generated
// description when a title is present.
type UploadDraft struct {
	Title       string
	Description string
	Category    models.VideoCategory
}

// Login looks up an account by exact email match. A miss returns
// ErrUnknownEmail and leaves all state unchanged; a hit signs the account
// in and routes to the home view.
func (s *Session) Login(email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.store.UserByEmail(email)
	if !ok {
		s.metrics.RecordAction("login", metrics.OutcomeDenied)
		return fmt.Errorf("%w: %q", ErrUnknownEmail, email)
	}

	if err := s.store.SetCurrentUser(u.ID); err != nil {
		return err
	}
	s.setViewLocked(view.Home{})
	s.metrics.RecordAction("login", metrics.OutcomeApplied)
	s.log.Info("signed in", zap.String("user_id", u.ID), zap.String("username", u.Username))
	return nil
}

// Logout clears the signed-in identity, routes to the login view and drops
// the subscriptions-only feed mode, which is unreachable while signed out.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.store.ClearCurrentUser()
	s.feedMode = feed.ModeAll
	s.setViewLocked(view.Login{})
	s.metrics.RecordAction("logout", metrics.OutcomeApplied)
}

// Upload publishes a new video for the signed-in user and routes to its
// watch page. With an empty description and a non-empty title the text
// generator fills the description in; that call is the session's only
// suspension point and runs without the state lock, so everything else
// stays interactive while it is pending. A second Upload during that window
// returns ErrUploadInFlight rather than queueing.
func (s *Session) Upload(ctx context.Context, draft UploadDraft, fileName string) (models.Video, error) {
	s.mu.Lock()
	uploader, ok := s.store.CurrentUser()
	if !ok {
		s.mu.Unlock()
		s.metrics.RecordAction("upload", metrics.OutcomeDenied)
		return models.Video{}, ErrNotSignedIn
	}
	if s.uploadPending {
		s.mu.Unlock()
		s.metrics.RecordAction("upload", metrics.OutcomeNoop)
		return models.Video{}, ErrUploadInFlight
	}
	s.uploadPending = true
	s.mu.Unlock()

	description := draft.Description
	if description == "" && draft.Title != "" {
		description = s.describer.GenerateDescription(ctx, draft.Title)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.uploadPending = false

	title := draft.Title
	if title == "" {
		title = "Untitled"
	}
	category := draft.Category
	if category == "" {
		category = models.CategoryAll
	}

	now := s.now()
	v := models.NewVideo(
		fmt.Sprintf("vid_%d", now.UnixMilli()),
		uploader.ID,
		title,
		description,
		category,
		blobURL(fileName),
		fmt.Sprintf("https://picsum.photos/seed/%d/640/360", now.UnixMilli()),
		now,
	)

	s.store.PrependVideo(*v)
	s.setViewLocked(view.Watch{VideoID: v.ID})
	s.metrics.RecordAction("upload", metrics.OutcomeApplied)
	s.log.Info("video uploaded",
		zap.String("video_id", v.ID),
		zap.String("uploader_id", uploader.ID),
		zap.String("title", v.Title),
	)
	return *v, nil
}

// ToggleLike toggles the signed-in user in the video's like set. Anonymous
// callers are redirected to the login view with no mutation. The dislike
// set is deliberately left alone; the two are independent.
func (s *Session) ToggleLike(videoID string) error {
	return s.toggleReaction("like", videoID, s.store.ToggleLike)
}

// ToggleDislike is ToggleLike's counterpart for the dislike set, equally
// independent of the like set.
func (s *Session) ToggleDislike(videoID string) error {
	return s.toggleReaction("dislike", videoID, s.store.ToggleDislike)
}

func (s *Session) toggleReaction(action, videoID string, toggle func(videoID, userID string) bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.store.CurrentUser()
	if !ok {
		s.setViewLocked(view.Login{})
		s.metrics.RecordAction(action, metrics.OutcomeDenied)
		return ErrNotSignedIn
	}
	if !toggle(videoID, cur.ID) {
		s.metrics.RecordAction(action, metrics.OutcomeNoop)
		return nil
	}
	s.metrics.RecordAction(action, metrics.OutcomeApplied)
	return nil
}

// ToggleSubscribe toggles the signed-in user's subscription to the target
// channel, rewriting both the caller's subscription set and the target's
// subscriber set in the same handler invocation. Subscribing to oneself is
// a no-op.
func (s *Session) ToggleSubscribe(targetUserID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.store.CurrentUser()
	if !ok {
		s.setViewLocked(view.Login{})
		s.metrics.RecordAction("subscribe", metrics.OutcomeDenied)
		return ErrNotSignedIn
	}
	if cur.ID == targetUserID {
		s.metrics.RecordAction("subscribe", metrics.OutcomeNoop)
		return nil
	}
	if !s.store.ToggleSubscription(cur.ID, targetUserID) {
		s.metrics.RecordAction("subscribe", metrics.OutcomeNoop)
		return nil
	}
	s.metrics.RecordAction("subscribe", metrics.OutcomeApplied)
	s.log.Debug("subscription toggled",
		zap.String("user_id", cur.ID),
		zap.String("target_id", targetUserID),
	)
	return nil
}

// AddComment prepends a comment by the signed-in user. Anonymous callers
// and whitespace-only text are silent no-ops.
func (s *Session) AddComment(videoID, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.store.CurrentUser()
	if !ok {
		s.metrics.RecordAction("comment", metrics.OutcomeDenied)
		return ErrNotSignedIn
	}
	if strings.TrimSpace(text) == "" {
		s.metrics.RecordAction("comment", metrics.OutcomeNoop)
		return nil
	}

	c := models.NewComment("c_"+uuid.NewString(), videoID, cur.ID, text, s.now())
	s.store.PrependComment(*c)
	s.metrics.RecordAction("comment", metrics.OutcomeApplied)
	return nil
}

// DeleteVideo removes a video unconditionally. Ownership is enforced by the
// calling surface, not here: the dashboard only offers the control for the
// creator's own uploads.
func (s *Session) DeleteVideo(videoID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.store.DeleteVideo(videoID) {
		s.metrics.RecordAction("delete_video", metrics.OutcomeNoop)
		return nil
	}
	s.metrics.RecordAction("delete_video", metrics.OutcomeApplied)
	s.log.Info("video deleted", zap.String("video_id", videoID))
	return nil
}

// RecordView bumps a video's view counter at playback start. The counter
// only ever grows.
func (s *Session) RecordView(videoID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.store.RecordView(videoID) {
		s.metrics.RecordAction("record_view", metrics.OutcomeApplied)
	} else {
		s.metrics.RecordAction("record_view", metrics.OutcomeNoop)
	}
}

// Support simulates a donation to a partner channel, crediting the
// uploader's balance and returning the thank-you notification shown to the
// donor. Non-partner channels cannot receive donations.
func (s *Session) Support(uploaderID string, amount float64) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.store.CurrentUser(); !ok {
		s.setViewLocked(view.Login{})
		s.metrics.RecordAction("support", metrics.OutcomeDenied)
		return "", ErrNotSignedIn
	}
	target, ok := s.store.UserByID(uploaderID)
	if !ok || !target.IsPartner {
		s.metrics.RecordAction("support", metrics.OutcomeNoop)
		return "", nil
	}

	s.store.CreditRevenue(uploaderID, amount)
	s.metrics.RecordAction("support", metrics.OutcomeApplied)
	return fmt.Sprintf("Thanks for your %.2f€ donation to %s!", amount, target.Username), nil
}

// Dashboard computes the signed-in creator's channel statistics.
func (s *Session) Dashboard() (stats.ChannelStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.store.CurrentUser()
	if !ok {
		return stats.ChannelStats{}, ErrNotSignedIn
	}
	return stats.Channel(cur, s.store.Videos(), s.store.Comments()), nil
}

// MonetizationReport is the signed-in creator's revenue view.
type MonetizationReport struct {
	Balance     float64
	RPM         float64
	Eligibility stats.Eligibility
	// Videos holds the creator's uploads with EstimatedRevenue filled,
	// newest first. Empty for non-partners.
	Videos []models.Video
}

// Monetization computes the signed-in creator's revenue report.
func (s *Session) Monetization() (MonetizationReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.store.CurrentUser()
	if !ok {
		return MonetizationReport{}, ErrNotSignedIn
	}

	report := MonetizationReport{
		Balance:     cur.Revenue,
		RPM:         s.rpm,
		Eligibility: stats.PartnerEligibility(cur, s.partnerThreshold),
	}
	if cur.IsPartner {
		report.Videos = stats.WithEstimatedRevenue(s.store.VideosByUploader(cur.ID), s.rpm)
	}
	return report, nil
}

// blobURL mints the locally-resolvable handle a submitted media file is
// referenced by. Nothing is uploaded anywhere.
func blobURL(fileName string) string {
	name := strings.TrimSpace(fileName)
	if name == "" {
		name = "upload"
	}
	return fmt.Sprintf("blob://local/%s/%s", uuid.NewString(), name)
}
