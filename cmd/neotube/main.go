// Command neotube runs a scripted walkthrough of the platform simulator:
// browsing the feed, signing in, subscribing, reacting, uploading and
// checking the creator dashboard. All state is in-memory and discarded on
// exit.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/neotube/neotube-go/internal/config"
	"github.com/neotube/neotube-go/internal/feed"
	"github.com/neotube/neotube-go/internal/fixtures"
	"github.com/neotube/neotube-go/internal/metrics"
	"github.com/neotube/neotube-go/internal/models"
	"github.com/neotube/neotube-go/internal/service/gemini"
	"github.com/neotube/neotube-go/internal/session"
	"github.com/neotube/neotube-go/internal/store"
	"github.com/neotube/neotube-go/internal/view"
	"github.com/neotube/neotube-go/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	// .env is optional; viper falls back to real env vars and defaults.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.File); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()
	log := logger.Named("neotube")

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	describer := gemini.NewClient(gemini.Config{
		APIKey:  cfg.Gemini.APIKey,
		Model:   cfg.Gemini.Model,
		BaseURL: cfg.Gemini.BaseURL,
		Timeout: cfg.Gemini.Timeout,
		Logger:  logger.Named("gemini"),
		Metrics: m,
	})
	if !describer.Configured() {
		log.Info("gemini API key not configured, descriptions will use the fallback text")
	}

	st := store.New(fixtures.Users(), fixtures.Videos(), fixtures.Comments())

	opts := []session.Option{
		session.WithDescriber(describer),
		session.WithLogger(logger.Named("session")),
		session.WithMetrics(m),
		session.WithMonetization(cfg.App.RPM, cfg.App.PartnerThreshold),
	}
	if cfg.App.RequireLogin {
		opts = append(opts, session.WithRequireLogin())
	} else {
		opts = append(opts, session.WithInitialUser(cfg.App.DefaultUserID))
	}
	sess := session.New(st, opts...)

	walkthrough(sess, log)
	return nil
}

func walkthrough(sess *session.Session, log *zap.Logger) {
	fmt.Println("== NeoTube simulator ==")
	printFeed(sess, "home feed")

	if featured, ok := sess.Featured(); ok {
		fmt.Printf("featured: %s (%d views)\n\n", featured.Title, featured.Views)
	}

	// A login miss is a blocking notification, nothing more.
	if err := sess.Login("nobody@nowhere.dev"); err != nil {
		fmt.Printf("notification: %v\n\n", err)
	}
	if err := sess.Login("tech@master.com"); err != nil {
		log.Error("demo login failed", zap.Error(err))
		return
	}
	me, _ := sess.CurrentUser()
	fmt.Printf("signed in as %s\n\n", me.Username)

	// Follow a creator and check the subscriptions feed.
	_ = sess.ToggleSubscribe("user_3")
	sess.SetFeedMode(feed.ModeSubscriptions)
	printFeed(sess, "subscriptions feed")
	sess.SetFeedMode(feed.ModeAll)

	// Category + sort filtering.
	sess.SelectCategory(models.CategorySports)
	sess.SetFeedSort(feed.SortViews)
	printFeed(sess, "sports, most viewed first")
	sess.SelectCategory(models.CategoryAll)
	sess.SetFeedSort(feed.SortDate)

	// Search supersedes every other filter.
	sess.Search("react")
	printFeed(sess, `search "react"`)

	// Watch, react, comment.
	sess.Navigate(watchFirst(sess))
	sess.RecordView("vid_1")
	_ = sess.ToggleLike("vid_1")
	_ = sess.AddComment("vid_1", "Watching this again in 2026.")
	fmt.Printf("comments on vid_1: %d\n\n", len(sess.CommentsForVideo("vid_1")))

	// Upload with an empty description: the text generator (or its
	// fallback) fills it in.
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	v, err := sess.Upload(ctx, session.UploadDraft{
		Title:    "Workshop Tour 2026",
		Category: models.CategoryTech,
	}, "workshop-tour.mp4")
	switch {
	case errors.Is(err, session.ErrUploadInFlight):
		fmt.Println("upload already in progress")
	case err != nil:
		log.Error("upload failed", zap.Error(err))
	default:
		fmt.Printf("uploaded %q\n  description: %s\n\n", v.Title, v.Description)
	}

	// Creator surfaces.
	if st, err := sess.Dashboard(); err == nil {
		fmt.Printf("dashboard: %d videos, %d views, %d likes, %d comments\n",
			st.VideoCount, st.TotalViews, st.TotalLikes, st.TotalComments)
		if st.TopVideo != nil {
			fmt.Printf("top video: %s (%d views)\n", st.TopVideo.Title, st.TopVideo.Views)
		}
	}
	if report, err := sess.Monetization(); err == nil {
		fmt.Printf("balance: %.2f€ at %.2f€ RPM, partner progress %.0f%%\n\n",
			report.Balance, report.RPM, report.Eligibility.Progress)
	}

	sess.Logout()
	fmt.Printf("signed out, now on the %s view\n", sess.View().Name())
}

func watchFirst(sess *session.Session) view.State {
	if vids := sess.Videos(); len(vids) > 0 {
		return view.Watch{VideoID: vids[0].ID}
	}
	return view.Home{}
}

func printFeed(sess *session.Session, label string) {
	fmt.Printf("-- %s --\n", label)
	for _, v := range sess.Feed() {
		fmt.Printf("  %-38s %8d views  [%s]\n", v.Title, v.Views, v.Category)
	}
	fmt.Println()
}
