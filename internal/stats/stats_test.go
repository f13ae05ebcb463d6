package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neotube/neotube-go/internal/models"
)

func TestChannel(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	creator := models.User{ID: "user_1", Subscribers: []string{"a", "b", "c"}}
	videos := []models.Video{
		{ID: "v1", UploaderID: "user_1", Views: 100, Likes: []string{"a", "b"}, Timestamp: now.Add(-2 * time.Hour)},
		{ID: "v2", UploaderID: "user_2", Views: 9999, Likes: []string{"a"}, Timestamp: now},
		{ID: "v3", UploaderID: "user_1", Views: 700, Likes: []string{"c"}, Timestamp: now.Add(-time.Hour)},
	}
	comments := []models.Comment{
		{ID: "c1", VideoID: "v1"},
		{ID: "c2", VideoID: "v2"},
		{ID: "c3", VideoID: "v3"},
	}

	st := Channel(creator, videos, comments)

	assert.Equal(t, 2, st.VideoCount)
	assert.Equal(t, int64(800), st.TotalViews)
	assert.Equal(t, 3, st.TotalLikes)
	assert.Equal(t, 2, st.TotalComments, "comments on other channels do not count")
	assert.Equal(t, 3, st.Subscribers)

	require.Len(t, st.Recent, 2)
	assert.Equal(t, "v3", st.Recent[0].ID, "recent uploads come newest first")

	require.NotNil(t, st.TopVideo)
	assert.Equal(t, "v3", st.TopVideo.ID)
}

func TestChannelWithoutUploads(t *testing.T) {
	t.Parallel()

	st := Channel(models.User{ID: "user_9"}, nil, nil)
	assert.Zero(t, st.VideoCount)
	assert.Nil(t, st.TopVideo)
	assert.Empty(t, st.Recent)
}

func TestLikeRate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		video models.Video
		want  int
	}{
		{
			name:  "typical ratio",
			video: models.Video{Views: 200, Likes: []string{"a", "b"}},
			want:  1,
		},
		{
			name:  "zero views guards the division",
			video: models.Video{Views: 0, Likes: []string{"a"}},
			want:  100,
		},
		{
			name:  "no likes",
			video: models.Video{Views: 50},
			want:  0,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, LikeRate(tt.video))
		})
	}
}

func TestPartnerEligibility(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		subscribers  int
		threshold    int
		wantEligible bool
		wantProgress float64
	}{
		{name: "below threshold", subscribers: 250, threshold: 1000, wantEligible: false, wantProgress: 25},
		{name: "at threshold", subscribers: 1000, threshold: 1000, wantEligible: true, wantProgress: 100},
		{name: "progress capped at 100", subscribers: 5000, threshold: 1000, wantEligible: true, wantProgress: 100},
		{name: "zero threshold passes everyone", subscribers: 0, threshold: 0, wantEligible: true, wantProgress: 100},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			subs := make([]string, tt.subscribers)
			for i := range subs {
				subs[i] = "s"
			}
			e := PartnerEligibility(models.User{Subscribers: subs}, tt.threshold)

			assert.Equal(t, tt.wantEligible, e.Eligible)
			assert.InDelta(t, tt.wantProgress, e.Progress, 1e-9)
			assert.Equal(t, tt.subscribers, e.Subscribers)
			assert.Equal(t, tt.threshold, e.Threshold)
		})
	}
}

func TestEstimateRevenue(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 2.94, EstimateRevenue(models.Video{Views: 1200}, 2.45), 1e-9)
	assert.Zero(t, EstimateRevenue(models.Video{}, 2.45))
}

func TestWithEstimatedRevenue(t *testing.T) {
	t.Parallel()

	in := []models.Video{
		{ID: "v1", Views: 1000},
		{ID: "v2", Views: 2000},
	}
	out := WithEstimatedRevenue(in, 2.45)

	require.Len(t, out, 2)
	require.NotNil(t, out[0].EstimatedRevenue)
	assert.InDelta(t, 2.45, *out[0].EstimatedRevenue, 1e-9)
	assert.InDelta(t, 4.90, *out[1].EstimatedRevenue, 1e-9)

	assert.Nil(t, in[0].EstimatedRevenue, "input videos stay untouched")
}

func TestRetentionSummary(t *testing.T) {
	t.Parallel()

	v := models.Video{Analytics: &models.VideoAnalytics{RetentionCurve: []float64{100, 80, 60}}}
	avg, ok := RetentionSummary(v)
	require.True(t, ok)
	assert.InDelta(t, 80, avg, 1e-9)

	_, ok = RetentionSummary(models.Video{})
	assert.False(t, ok, "no analytics block means no summary")

	_, ok = RetentionSummary(models.Video{Analytics: &models.VideoAnalytics{}})
	assert.False(t, ok, "empty curve means no summary")
}
