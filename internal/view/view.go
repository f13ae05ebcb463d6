// Package view defines the closed set of screens the simulator can present.
// The active State is a single tagged value; each variant carries only the
// identifier its screen needs. It is never persisted and has no history;
// transitions happen only through explicit session calls.
package view

// State is the sealed view-state type. Exactly one variant is active at a
// time for the lifetime of the session.
type State interface {
	// Name returns the stable screen name, used in logs and metrics.
	Name() string
	sealed()
}

// Home is the default landing feed.
type Home struct{}

// Watch presents a single video.
type Watch struct{ VideoID string }

// Profile presents a channel page.
type Profile struct{ UserID string }

// Upload presents the upload form.
type Upload struct{}

// Login presents the sign-in form.
type Login struct{}

// Signup presents the registration form.
type Signup struct{}

// Search presents feed results for a query. The query may be empty, in
// which case every video matches.
type Search struct{ Query string }

// Dashboard presents the creator's channel statistics.
type Dashboard struct{}

// Monetization presents partner revenue and eligibility.
type Monetization struct{}

func (Home) Name() string         { return "HOME" }
func (Watch) Name() string        { return "WATCH" }
func (Profile) Name() string      { return "PROFILE" }
func (Upload) Name() string       { return "UPLOAD" }
func (Login) Name() string        { return "LOGIN" }
func (Signup) Name() string       { return "SIGNUP" }
func (Search) Name() string       { return "SEARCH" }
func (Dashboard) Name() string    { return "DASHBOARD" }
func (Monetization) Name() string { return "MONETIZATION" }

func (Home) sealed()         {}
func (Watch) sealed()        {}
func (Profile) sealed()      {}
func (Upload) sealed()       {}
func (Login) sealed()        {}
func (Signup) sealed()       {}
func (Search) sealed()       {}
func (Dashboard) sealed()    {}
func (Monetization) sealed() {}
