package app

import (
	"github.com/cargeniefortmyers/car-genies-referral/internal/client/form"
	"github.com/cargeniefortmyers/car-genies-referral/internal/models"
)

// Screen identifies which screen the client is showing.
type Screen string

const (
	ScreenLogin       Screen = "login"
	ScreenRegister    Screen = "register"
	ScreenDashboard   Screen = "dashboard"
	ScreenAddReferral Screen = "addReferral"
	ScreenHistory     Screen = "history"
)

// State is the whole client-side state bundle. It is owned exclusively by
// the Controller and mutated only in response to intents; the renderer
// reads it and produces output.
type State struct {
	// Screen is the screen currently shown.
	Screen Screen
	// Language is the active display language code.
	Language string
	// User is the active session; nil while unauthenticated.
	User *models.User
	// Loading is true while a login/register/submit call is in flight,
	// blocking re-entry of the same action.
	Loading bool
	// ShowSettings is true while the settings overlay is open.
	ShowSettings bool
	// Settings holds local-only payout and notification preferences.
	Settings models.UserSettings
	// GeneralError is the most recent action's failure message, cleared
	// at the start of every new submit attempt.
	GeneralError string

	// Login, Register, and Referral are the per-form drafts.
	Login    *form.Draft
	Register *form.Draft
	Referral *form.Draft

	// Referrals is a verbatim snapshot of the last successful fetch.
	Referrals []models.Referral
	// Stats is the last fetched aggregate snapshot.
	Stats models.Stats
}

// newState returns the initial unauthenticated state.
func newState(language string) State {
	return State{
		Screen:    ScreenLogin,
		Language:  language,
		Settings:  models.DefaultSettings(),
		Login:     form.NewLoginDraft(),
		Register:  form.NewRegisterDraft(),
		Referral:  form.NewReferralDraft(),
		Referrals: []models.Referral{},
		Stats:     models.DefaultStats(),
	}
}
