// Package feed derives the ordered list of videos to display from the full
// collection and the current filter state. Derivation is pure: it never
// mutates its inputs and identical inputs always yield identical output.
package feed

import (
	"sort"
	"strings"

	"github.com/neotube/neotube-go/internal/models"
)

// Mode selects between the recommendation feed and the subscriptions-only
// feed.
type Mode string

// Sort selects the total order applied to the derived feed.
type Sort string

const (
	// ModeAll shows every video that passes the category filter.
	ModeAll Mode = "ALL"
	// ModeSubscriptions keeps only uploads from channels the signed-in
	// user subscribes to. Unreachable while signed out.
	ModeSubscriptions Mode = "SUBS"

	// SortDate orders by creation timestamp, newest first.
	SortDate Sort = "DATE"
	// SortViews orders by view count, highest first.
	SortViews Sort = "VIEWS"
)

// Filters is the input state for a derivation pass.
//
// When Searching is set, Query alone decides membership and the mode and
// category filters are skipped entirely; an empty query then matches every
// video.
type Filters struct {
	Searching bool
	Query     string
	Mode      Mode
	Category  models.VideoCategory
	Sort      Sort
}

// Derive filters and sorts videos for display. current may be nil for an
// anonymous viewer, which disables the subscriptions-only filter.
func Derive(videos []models.Video, current *models.User, f Filters) []models.Video {
	res := videos

	if f.Searching {
		q := strings.ToLower(f.Query)
		res = filter(res, func(v models.Video) bool {
			return strings.Contains(strings.ToLower(v.Title), q) ||
				strings.Contains(strings.ToLower(v.Description), q)
		})
	} else {
		if f.Mode == ModeSubscriptions && current != nil {
			res = filter(res, func(v models.Video) bool {
				return current.IsSubscribedTo(v.UploaderID)
			})
		}
		if f.Category != "" && f.Category != models.CategoryAll {
			res = filter(res, func(v models.Video) bool {
				return v.Category == f.Category
			})
		}
	}

	out := make([]models.Video, len(res))
	copy(out, res)

	switch f.Sort {
	case SortViews:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Views > out[j].Views
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Timestamp.After(out[j].Timestamp)
		})
	}

	return out
}

// Featured picks the video highlighted at the top of the home page: the
// most viewed one, with later collection entries winning ties.
func Featured(videos []models.Video) (models.Video, bool) {
	if len(videos) == 0 {
		return models.Video{}, false
	}
	best := videos[0]
	for _, v := range videos[1:] {
		if best.Views <= v.Views {
			best = v
		}
	}
	return best, true
}

func filter(videos []models.Video, keep func(models.Video) bool) []models.Video {
	out := make([]models.Video, 0, len(videos))
	for _, v := range videos {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}
