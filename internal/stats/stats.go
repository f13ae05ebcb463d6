// Package stats computes the creator dashboard and monetization figures.
// Everything here is a pure function over store snapshots.
package stats

import (
	"math"
	"sort"

	"github.com/neotube/neotube-go/internal/models"
)

// ChannelStats summarizes a creator's channel for the dashboard.
type ChannelStats struct {
	TotalViews    int64
	TotalLikes    int
	TotalComments int
	VideoCount    int
	Subscribers   int
	// Recent holds the creator's videos, newest first.
	Recent []models.Video
	// TopVideo is the creator's most viewed video, nil with no uploads.
	TopVideo *models.Video
}

// Channel aggregates the user's uploads and the comments left on them.
func Channel(user models.User, videos []models.Video, comments []models.Comment) ChannelStats {
	var mine []models.Video
	for _, v := range videos {
		if v.UploaderID == user.ID {
			mine = append(mine, v)
		}
	}

	st := ChannelStats{
		VideoCount:  len(mine),
		Subscribers: len(user.Subscribers),
	}

	owned := make(map[string]bool, len(mine))
	for _, v := range mine {
		st.TotalViews += v.Views
		st.TotalLikes += len(v.Likes)
		owned[v.ID] = true
	}
	for _, c := range comments {
		if owned[c.VideoID] {
			st.TotalComments++
		}
	}

	st.Recent = make([]models.Video, len(mine))
	copy(st.Recent, mine)
	sort.SliceStable(st.Recent, func(i, j int) bool {
		return st.Recent[i].Timestamp.After(st.Recent[j].Timestamp)
	})

	if len(mine) > 0 {
		byViews := make([]models.Video, len(mine))
		copy(byViews, mine)
		sort.SliceStable(byViews, func(i, j int) bool {
			return byViews[i].Views > byViews[j].Views
		})
		top := byViews[0]
		st.TopVideo = &top
	}

	return st
}

// LikeRate returns the like-per-view percentage for a video, rounded to the
// nearest integer. Zero views count as one so a fresh upload with a like
// does not divide by zero.
func LikeRate(v models.Video) int {
	views := v.Views
	if views == 0 {
		views = 1
	}
	return int(math.Round(float64(len(v.Likes)) / float64(views) * 100))
}

// Eligibility describes a user's standing against the partner program
// threshold.
type Eligibility struct {
	Eligible    bool
	Subscribers int
	Threshold   int
	// Progress is the subscriber progress percentage, capped at 100.
	Progress float64
}

// PartnerEligibility evaluates the user against the subscriber threshold.
func PartnerEligibility(user models.User, threshold int) Eligibility {
	subs := len(user.Subscribers)
	progress := 100.0
	if threshold > 0 {
		progress = math.Min(float64(subs)/float64(threshold)*100, 100)
	}
	return Eligibility{
		Eligible:    subs >= threshold,
		Subscribers: subs,
		Threshold:   threshold,
		Progress:    progress,
	}
}

// EstimateRevenue computes the simulated ad revenue for one video at the
// given RPM (revenue per thousand views).
func EstimateRevenue(v models.Video, rpm float64) float64 {
	return float64(v.Views) / 1000 * rpm
}

// WithEstimatedRevenue returns copies of the videos with EstimatedRevenue
// filled in at the given RPM. The input is left untouched.
func WithEstimatedRevenue(videos []models.Video, rpm float64) []models.Video {
	out := make([]models.Video, 0, len(videos))
	for _, v := range videos {
		c := *v.Clone()
		rev := EstimateRevenue(v, rpm)
		c.EstimatedRevenue = &rev
		out = append(out, c)
	}
	return out
}

// RetentionSummary returns the average of the video's retention curve. The
// second return is false when the video carries no analytics.
func RetentionSummary(v models.Video) (float64, bool) {
	if v.Analytics == nil || len(v.Analytics.RetentionCurve) == 0 {
		return 0, false
	}
	var sum float64
	for _, p := range v.Analytics.RetentionCurve {
		sum += p
	}
	return sum / float64(len(v.Analytics.RetentionCurve)), true
}
