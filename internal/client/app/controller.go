// Package app owns the client state machine: session lifecycle, screen
// transitions, and the form submit protocol against the referral API.
package app

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/cargeniefortmyers/car-genies-referral/internal/client/form"
	"github.com/cargeniefortmyers/car-genies-referral/internal/client/gateway"
	"github.com/cargeniefortmyers/car-genies-referral/internal/client/i18n"
	"github.com/cargeniefortmyers/car-genies-referral/internal/models"
)

// Gateway defines the network operations the controller needs.
type Gateway interface {
	// Login exchanges credentials for a user session.
	Login(ctx context.Context, creds gateway.Credentials) (*models.User, error)
	// Register creates an account and returns the new session.
	Register(ctx context.Context, reg gateway.Registration) (*models.User, error)
	// Logout ends the server-side session; the result is advisory only.
	Logout(ctx context.Context) error
	// SubmitReferral sends a new customer referral.
	SubmitReferral(ctx context.Context, sub gateway.ReferralSubmission) error
	// FetchReferrals loads the referral list, degrading to empty on failure.
	FetchReferrals(ctx context.Context) ([]models.Referral, error)
	// FetchStats loads aggregate stats, degrading to defaults on failure.
	FetchStats(ctx context.Context) (models.Stats, error)
	// UpdateStatus moves a referral to a new lifecycle status.
	UpdateStatus(ctx context.Context, id string, status models.Status) error
}

// Controller orchestrates screen transitions and gateway calls. It is
// driven from a single goroutine; state is mutated only here.
type Controller struct {
	gw    Gateway
	log   *zap.Logger
	state State
}

// New returns a Controller at the login screen in the given language.
// An unsupported language code falls back to English.
func New(gw Gateway, log *zap.Logger, language string) *Controller {
	if !i18n.Supported(language) {
		language = "en"
	}
	return &Controller{gw: gw, log: log, state: newState(language)}
}

// State exposes the state bundle for the renderer and shell.
func (c *Controller) State() *State {
	return &c.state
}

// Authenticated reports whether a session is active.
func (c *Controller) Authenticated() bool {
	return c.state.User != nil
}

// NavigateTo switches screens. Unauthenticated clients may only move
// between login and register; authenticated clients move freely between
// dashboard, add-referral, and history. Returns false for gated targets.
func (c *Controller) NavigateTo(s Screen) bool {
	if c.Authenticated() {
		switch s {
		case ScreenDashboard, ScreenAddReferral, ScreenHistory:
			c.state.Screen = s
			return true
		}
		return false
	}
	switch s {
	case ScreenLogin, ScreenRegister:
		c.state.Screen = s
		return true
	}
	return false
}

// SetField stores a field value on the draft behind the current screen.
// Returns false when the current screen has no form.
func (c *Controller) SetField(field, value string) bool {
	d := c.currentDraft()
	if d == nil {
		return false
	}
	d.Set(field, value)
	return true
}

// SetLanguage switches the display language; unsupported codes are refused.
func (c *Controller) SetLanguage(code string) bool {
	if !i18n.Supported(code) {
		return false
	}
	c.state.Language = code
	return true
}

// OpenSettings shows the settings overlay (authenticated screens only).
func (c *Controller) OpenSettings() bool {
	if !c.Authenticated() {
		return false
	}
	c.state.ShowSettings = true
	return true
}

// CloseSettings hides the settings overlay.
func (c *Controller) CloseSettings() {
	c.state.ShowSettings = false
}

// SetPayoutMethod selects how commissions are paid out.
func (c *Controller) SetPayoutMethod(m models.PayoutMethod) bool {
	if m != models.PayoutPayPal && m != models.PayoutCashApp {
		return false
	}
	c.state.Settings.PayoutMethod = m
	return true
}

// SetPayPalEmail updates the PayPal payout address.
func (c *Controller) SetPayPalEmail(email string) {
	c.state.Settings.PayPalEmail = email
}

// SetCashAppTag updates the CashApp payout tag.
func (c *Controller) SetCashAppTag(tag string) {
	c.state.Settings.CashAppTag = tag
}

// ToggleNotifications flips the push-notification preference.
func (c *Controller) ToggleNotifications() {
	c.state.Settings.Notifications = !c.state.Settings.Notifications
}

// ToggleAutoPayouts flips the automatic-payout preference.
func (c *Controller) ToggleAutoPayouts() {
	c.state.Settings.AutoPayouts = !c.state.Settings.AutoPayouts
}

// SetMinimumPayout updates the minimum payout threshold.
func (c *Controller) SetMinimumPayout(amount float64) bool {
	if amount < 0 {
		return false
	}
	c.state.Settings.MinimumPayout = amount
	return true
}

// Login runs the login submit protocol: clear errors, validate, call the
// gateway, and on success enter the dashboard and load referral data.
// A no-op while a submit is already in flight.
func (c *Controller) Login(ctx context.Context) {
	if c.state.Loading {
		return
	}
	c.state.GeneralError = ""
	errs := form.ValidateLogin(c.state.Login)
	c.state.Login.SetErrors(errs)
	if len(errs) > 0 {
		return
	}

	c.state.Loading = true
	defer func() { c.state.Loading = false }()

	user, err := c.gw.Login(ctx, gateway.Credentials{
		Username: strings.TrimSpace(c.state.Login.Get(form.FieldUsername)),
		Password: c.state.Login.Get(form.FieldPassword),
	})
	if err != nil {
		c.log.Warn("login failed", zap.Error(err))
		var se *gateway.ServerError
		if errors.As(err, &se) && se.Message != "" {
			c.state.GeneralError = se.Message
		} else if errors.As(err, &se) {
			c.state.GeneralError = c.resolve("invalidCredentials")
		} else {
			c.state.GeneralError = c.resolve("networkError")
		}
		return
	}

	c.state.User = user
	c.state.Login.Reset()
	c.state.Screen = ScreenDashboard
	c.log.Debug("login succeeded", zap.String("username", user.Username))
	c.Refresh(ctx)
}

// Register runs the registration submit protocol. Server rejections are
// routed to the username or email field when the message names them.
func (c *Controller) Register(ctx context.Context) {
	if c.state.Loading {
		return
	}
	c.state.GeneralError = ""
	errs := form.ValidateRegister(c.state.Register)
	c.state.Register.SetErrors(errs)
	if len(errs) > 0 {
		return
	}

	c.state.Loading = true
	defer func() { c.state.Loading = false }()

	user, err := c.gw.Register(ctx, gateway.Registration{
		Username:  strings.TrimSpace(c.state.Register.Get(form.FieldUsername)),
		Password:  c.state.Register.Get(form.FieldPassword),
		FirstName: strings.TrimSpace(c.state.Register.Get(form.FieldFirstName)),
		LastName:  strings.TrimSpace(c.state.Register.Get(form.FieldLastName)),
		Email:     strings.TrimSpace(c.state.Register.Get(form.FieldEmail)),
	})
	if err != nil {
		c.log.Warn("register failed", zap.Error(err))
		var se *gateway.ServerError
		if errors.As(err, &se) {
			if field := routeRegisterError(se.Message); field != "" {
				c.state.Register.SetErrors(map[string]string{field: se.Message})
			} else if se.Message != "" {
				c.state.GeneralError = se.Message
			} else {
				c.state.GeneralError = "Registration failed"
			}
		} else {
			c.state.GeneralError = c.resolve("networkError")
		}
		return
	}

	c.state.User = user
	c.state.Register.Reset()
	c.state.Screen = ScreenDashboard
	c.log.Debug("register succeeded", zap.String("username", user.Username))
	c.Refresh(ctx)
}

// SubmitReferral runs the add-referral submit protocol. The single
// customer-name field is split on the first space into first/last.
func (c *Controller) SubmitReferral(ctx context.Context) {
	if c.state.Loading {
		return
	}
	c.state.GeneralError = ""
	errs := form.ValidateReferral(c.state.Referral)
	c.state.Referral.SetErrors(errs)
	if len(errs) > 0 {
		return
	}

	c.state.Loading = true
	defer func() { c.state.Loading = false }()

	first, last := splitCustomerName(c.state.Referral.Get(form.FieldCustomerName))
	err := c.gw.SubmitReferral(ctx, gateway.ReferralSubmission{
		FirstName:   first,
		LastName:    last,
		Email:       strings.TrimSpace(c.state.Referral.Get(form.FieldCustomerEmail)),
		Phone:       strings.TrimSpace(c.state.Referral.Get(form.FieldCustomerPhone)),
		VehicleType: models.VehicleType(c.state.Referral.Get(form.FieldVehicleType)),
		Budget:      c.state.Referral.Get(form.FieldBudget),
		Notes:       strings.TrimSpace(c.state.Referral.Get(form.FieldNotes)),
	})
	if err != nil {
		c.log.Warn("submit referral failed", zap.Error(err))
		var se *gateway.ServerError
		if errors.As(err, &se) {
			if se.Message != "" {
				c.state.GeneralError = se.Message
			} else {
				c.state.GeneralError = "Failed to submit referral"
			}
		} else {
			c.state.GeneralError = c.resolve("networkError")
		}
		return
	}

	c.state.Referral.Reset()
	c.state.Screen = ScreenDashboard
	c.Refresh(ctx)
}

// SignOut ends the session. The logout call is best effort: local state is
// cleared no matter what the server says. Settings survive sign-out.
func (c *Controller) SignOut(ctx context.Context) {
	if err := c.gw.Logout(ctx); err != nil {
		c.log.Warn("logout call failed, clearing local session anyway", zap.Error(err))
	}

	c.state.User = nil
	c.state.Referrals = []models.Referral{}
	c.state.Stats = models.DefaultStats()
	c.state.Login.Reset()
	c.state.GeneralError = ""
	c.state.ShowSettings = false
	c.state.Screen = ScreenLogin
}

// UpdateStatus moves a referral to a new status and reloads referral data
// in place. The screen does not change.
func (c *Controller) UpdateStatus(ctx context.Context, id string, status models.Status) {
	if !c.Authenticated() {
		return
	}
	if err := c.gw.UpdateStatus(ctx, id, status); err != nil {
		c.log.Warn("update status failed", zap.String("id", id), zap.Error(err))
		var se *gateway.ServerError
		if errors.As(err, &se) {
			c.state.GeneralError = c.resolve("updateFailed")
		} else {
			c.state.GeneralError = c.resolve("networkError")
		}
		return
	}
	c.Refresh(ctx)
}

// Refresh replaces the referral list and stats with fresh snapshots,
// starting from a clean slate so stale data never survives a reload.
func (c *Controller) Refresh(ctx context.Context) {
	c.state.Referrals = []models.Referral{}
	c.state.Stats = models.DefaultStats()

	if referrals, err := c.gw.FetchReferrals(ctx); err == nil && referrals != nil {
		c.state.Referrals = referrals
	}
	if stats, err := c.gw.FetchStats(ctx); err == nil {
		c.state.Stats = stats
	}
}

// currentDraft returns the form draft for the current screen, or nil.
func (c *Controller) currentDraft() *form.Draft {
	switch c.state.Screen {
	case ScreenLogin:
		return c.state.Login
	case ScreenRegister:
		return c.state.Register
	case ScreenAddReferral:
		return c.state.Referral
	}
	return nil
}

func (c *Controller) resolve(key string) string {
	return i18n.Resolve(c.state.Language, key)
}

// routeRegisterError maps a server rejection message onto a form field by
// substring. Brittle, but it matches what the server sends today; replace
// with structured error codes once the API provides them.
func routeRegisterError(message string) string {
	switch {
	case strings.Contains(message, "Username"):
		return form.FieldUsername
	case strings.Contains(message, "Email"):
		return form.FieldEmail
	}
	return ""
}

// splitCustomerName splits a full name on the first space: everything
// before it is the first name, the remainder the last name. A name with
// no space becomes first name only.
func splitCustomerName(name string) (first, last string) {
	first, last, found := strings.Cut(name, " ")
	if !found {
		return name, ""
	}
	return first, last
}
