// Package view projects the client state onto terminal output. Rendering
// is pure: the same state always produces the same text and nothing is
// mutated.
package view

import (
	"fmt"
	"strings"

	"github.com/cargeniefortmyers/car-genies-referral/internal/client/app"
	"github.com/cargeniefortmyers/car-genies-referral/internal/client/form"
	"github.com/cargeniefortmyers/car-genies-referral/internal/client/i18n"
	"github.com/cargeniefortmyers/car-genies-referral/internal/models"
)

// Commission tiers are display-only: the server assigns the current tier
// and the client never computes one.
type tier struct {
	number     int
	commission int
	span       string
}

var tiers = []tier{
	{1, 300, "Referrals 1-10"},
	{2, 400, "Referrals 11-20"},
	{3, 500, "Referrals 21+"},
}

// Render returns the full text for the current screen, including the
// settings overlay when it is open.
func Render(st *app.State) string {
	var b strings.Builder

	switch st.Screen {
	case app.ScreenLogin:
		renderLogin(&b, st)
	case app.ScreenRegister:
		renderRegister(&b, st)
	case app.ScreenDashboard:
		renderDashboard(&b, st)
	case app.ScreenAddReferral:
		renderAddReferral(&b, st)
	case app.ScreenHistory:
		renderHistory(&b, st)
	}

	if st.ShowSettings {
		renderSettings(&b, st)
	}
	if st.Loading {
		fmt.Fprintln(&b, "...")
	}
	return b.String()
}

func renderLogin(b *strings.Builder, st *app.State) {
	t := translator(st)
	header(b, "Car Genies", "Referral Program")
	banner(b, st)
	field(b, st.Login, t("username"), form.FieldUsername)
	field(b, st.Login, t("password"), form.FieldPassword)
	fmt.Fprintf(b, "[ %s ]\n", t("login"))
	fmt.Fprintf(b, "Don't have an account? %s\n", t("register"))
	fmt.Fprintf(b, "Language: %s (%s)\n", st.Language, strings.Join(i18n.Languages(), "/"))
}

func renderRegister(b *strings.Builder, st *app.State) {
	t := translator(st)
	header(b, "Create Account", "Join Car Genies Referral Program")
	banner(b, st)
	field(b, st.Register, t("username"), form.FieldUsername)
	field(b, st.Register, t("email"), form.FieldEmail)
	field(b, st.Register, t("firstName"), form.FieldFirstName)
	field(b, st.Register, t("lastName"), form.FieldLastName)
	field(b, st.Register, t("password"), form.FieldPassword)
	field(b, st.Register, t("confirmPassword"), form.FieldConfirmPassword)
	fmt.Fprintf(b, "[ %s ]\n", t("register"))
	fmt.Fprintf(b, "Already have an account? %s\n", t("login"))
}

func renderDashboard(b *strings.Builder, st *app.State) {
	t := translator(st)
	name := ""
	if st.User != nil {
		name = st.User.FirstName
	}
	header(b, fmt.Sprintf("%s, %s!", t("welcome"), name), t("dashboard"))
	banner(b, st)

	fmt.Fprintf(b, "%s: %d\n", t("totalReferrals"), st.Stats.TotalReferrals)
	fmt.Fprintf(b, "%s: $%.0f\n", t("totalEarnings"), st.Stats.TotalEarnings)
	fmt.Fprintf(b, "%s: %d\n", t("pendingReferrals"), st.Stats.PendingReferrals)
	fmt.Fprintf(b, "%s: %d\n", t("completedReferrals"), st.Stats.CompletedReferrals)
	fmt.Fprintf(b, "%s: Tier %d\n", t("currentTier"), st.Stats.CurrentTier)

	fmt.Fprintln(b, "\nCommission Tiers")
	for _, tr := range tiers {
		marker := " "
		if st.Stats.CurrentTier >= tr.number {
			marker = "*"
		}
		fmt.Fprintf(b, "%s Tier %d  $%d  %s\n", marker, tr.number, tr.commission, tr.span)
	}

	nav(b, st)
}

func renderAddReferral(b *strings.Builder, st *app.State) {
	t := translator(st)
	header(b, t("addReferral"), "Submit a new customer referral")
	banner(b, st)

	field(b, st.Referral, t("customerName"), form.FieldCustomerName)
	field(b, st.Referral, t("customerEmail"), form.FieldCustomerEmail)
	field(b, st.Referral, t("customerPhone"), form.FieldCustomerPhone)

	fmt.Fprintf(b, "%s:", t("vehicleType"))
	for _, vt := range models.VehicleTypes() {
		if string(vt) == st.Referral.Get(form.FieldVehicleType) {
			fmt.Fprintf(b, " [%s]", t(string(vt)))
		} else {
			fmt.Fprintf(b, " %s", t(string(vt)))
		}
	}
	fmt.Fprintln(b)

	fmt.Fprintf(b, "%s:", t("budget"))
	for _, r := range models.BudgetRanges() {
		if r == st.Referral.Get(form.FieldBudget) {
			fmt.Fprintf(b, " [%s]", r)
		} else {
			fmt.Fprintf(b, " %s", r)
		}
	}
	fmt.Fprintln(b)

	field(b, st.Referral, t("notes"), form.FieldNotes)
	fmt.Fprintf(b, "[ %s ]\n", t("submit"))
	nav(b, st)
}

func renderHistory(b *strings.Builder, st *app.State) {
	t := translator(st)
	header(b, t("history"), "Your referral history")
	banner(b, st)

	if len(st.Referrals) == 0 {
		fmt.Fprintln(b, "No referrals yet")
		fmt.Fprintln(b, "Submit your first referral to get started!")
		nav(b, st)
		return
	}

	for _, r := range st.Referrals {
		fmt.Fprintf(b, "%s %s  [%s]\n", r.FirstName, r.LastName, t(string(r.Status)))
		fmt.Fprintf(b, "  %s • %s\n", r.Email, r.Phone)
		fmt.Fprintf(b, "  %s • %s\n", t(string(r.VehicleType)), r.Budget)
		if r.Commission != nil {
			fmt.Fprintf(b, "  %s: $%.0f\n", t("commission"), *r.Commission)
		}
		fmt.Fprintf(b, "  %s: %s\n", t("date"), r.CreatedAt.Format("2006-01-02"))
	}
	nav(b, st)
}

func renderSettings(b *strings.Builder, st *app.State) {
	t := translator(st)
	fmt.Fprintf(b, "\n--- %s ---\n", t("settings"))
	fmt.Fprintf(b, "Language: %s\n", st.Language)

	s := st.Settings
	fmt.Fprintf(b, "Payout Method: %s\n", s.PayoutMethod)
	switch s.PayoutMethod {
	case models.PayoutPayPal:
		fmt.Fprintf(b, "PayPal Email: %s\n", s.PayPalEmail)
	case models.PayoutCashApp:
		fmt.Fprintf(b, "CashApp Tag: %s\n", s.CashAppTag)
	}
	fmt.Fprintf(b, "Push Notifications: %s\n", onOff(s.Notifications))
	fmt.Fprintf(b, "Auto Payouts: %s\n", onOff(s.AutoPayouts))
	fmt.Fprintf(b, "Minimum Payout: $%.0f\n", s.MinimumPayout)
	fmt.Fprintf(b, "[ %s ]\n", t("signOut"))
}

// translator binds the state's language to the lookup.
func translator(st *app.State) func(string) string {
	return func(key string) string {
		return i18n.Resolve(st.Language, key)
	}
}

func header(b *strings.Builder, title, subtitle string) {
	fmt.Fprintf(b, "== %s ==\n%s\n\n", title, subtitle)
}

// banner prints the general error slot when set.
func banner(b *strings.Builder, st *app.State) {
	if st.GeneralError != "" {
		fmt.Fprintf(b, "!! %s\n\n", st.GeneralError)
	}
}

// field prints one labelled input with its current value and any
// validation error on the line below.
func field(b *strings.Builder, d *form.Draft, label, name string) {
	fmt.Fprintf(b, "%s: %s\n", label, d.Get(name))
	if msg := d.Error(name); msg != "" {
		fmt.Fprintf(b, "  ! %s\n", msg)
	}
}

func nav(b *strings.Builder, st *app.State) {
	t := translator(st)
	items := []struct {
		screen app.Screen
		label  string
	}{
		{app.ScreenDashboard, t("dashboard")},
		{app.ScreenAddReferral, t("addReferral")},
		{app.ScreenHistory, t("history")},
	}
	fmt.Fprint(b, "\n")
	for _, it := range items {
		if it.screen == st.Screen {
			fmt.Fprintf(b, "[%s] ", it.label)
		} else {
			fmt.Fprintf(b, "%s ", it.label)
		}
	}
	fmt.Fprintf(b, "%s\n", t("settings"))
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
