// Package models defines the core data structures exchanged with the
// referral API and held in client state.
package models

import "time"

// User represents the authenticated user session returned by login/register.
type User struct {
	// ID is the server-assigned identifier for the user.
	ID string `json:"id"`
	// FirstName is the user's first name.
	FirstName string `json:"firstName"`
	// LastName is the user's last name.
	LastName string `json:"lastName"`
	// Username is the login name chosen by the user.
	Username string `json:"username"`
	// Email is the user's email address.
	Email string `json:"email"`
}

// Referral is a customer lead submitted by a user. The server owns the
// record; the client holds a read-only snapshot from the last fetch.
type Referral struct {
	// ID is the opaque server-assigned identifier.
	ID string `json:"id"`
	// FirstName is the customer's first name.
	FirstName string `json:"firstName"`
	// LastName is the customer's last name.
	LastName string `json:"lastName"`
	// Email is the customer's email address.
	Email string `json:"email"`
	// Phone is the customer's phone number.
	Phone string `json:"phone"`
	// VehicleType is the kind of vehicle the customer is shopping for.
	VehicleType VehicleType `json:"vehicleType"`
	// Budget is one of the fixed budget range labels.
	Budget string `json:"budget"`
	// Notes holds optional free-form notes.
	Notes string `json:"notes,omitempty"`
	// Status is the current lifecycle status of the referral.
	Status Status `json:"status"`
	// Commission is set once the referral is approved or completed.
	Commission *float64 `json:"commission,omitempty"`
	// CreatedAt is when the referral was submitted.
	CreatedAt time.Time `json:"createdAt"`
}

// Stats is the server-computed aggregate snapshot for the dashboard.
type Stats struct {
	TotalReferrals     int     `json:"totalReferrals"`
	TotalEarnings      float64 `json:"totalEarnings"`
	PendingReferrals   int     `json:"pendingReferrals"`
	CompletedReferrals int     `json:"completedReferrals"`
	CurrentTier        int     `json:"currentTier"`
}

// DefaultStats returns the snapshot used when no stats have been loaded.
func DefaultStats() Stats {
	return Stats{CurrentTier: 1}
}

// VehicleType defines the set of valid vehicle type identifiers.
type VehicleType string

const (
	Sedan       VehicleType = "sedan"
	SUV         VehicleType = "suv"
	Truck       VehicleType = "truck"
	Coupe       VehicleType = "coupe"
	Convertible VehicleType = "convertible"
	Hatchback   VehicleType = "hatchback"
)

// VehicleTypes lists the selectable vehicle types in display order.
func VehicleTypes() []VehicleType {
	return []VehicleType{Sedan, SUV, Truck, Coupe, Convertible, Hatchback}
}

// Status defines the referral lifecycle states assigned by the server.
type Status string

const (
	// StatusPending is the initial state of a submitted referral.
	StatusPending Status = "pending"
	// StatusApproved means the referral was accepted and earns commission.
	StatusApproved Status = "approved"
	// StatusCompleted means the sale closed and commission is payable.
	StatusCompleted Status = "completed"
	// StatusRejected means the referral was declined.
	StatusRejected Status = "rejected"
)

// ValidStatus reports whether s is one of the known lifecycle states.
func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusApproved, StatusCompleted, StatusRejected:
		return true
	}
	return false
}

// BudgetRanges lists the selectable budget labels in ascending order.
func BudgetRanges() []string {
	return []string{"Under 20k", "20k-40k", "40k-60k", "60k-80k", "80k+"}
}

// PayoutMethod identifies how the user wants commissions paid out.
type PayoutMethod string

const (
	PayoutPayPal  PayoutMethod = "paypal"
	PayoutCashApp PayoutMethod = "cashapp"
)

// UserSettings holds payout and notification preferences. Local-only:
// there is no server endpoint for settings in this version.
type UserSettings struct {
	PayoutMethod  PayoutMethod `json:"payoutMethod"`
	PayPalEmail   string       `json:"paypalEmail"`
	CashAppTag    string       `json:"cashappTag"`
	Notifications bool         `json:"notifications"`
	AutoPayouts   bool         `json:"autoPayouts"`
	MinimumPayout float64      `json:"minimumPayout"`
}

// DefaultSettings returns the settings a fresh client starts with.
func DefaultSettings() UserSettings {
	return UserSettings{
		PayoutMethod:  PayoutPayPal,
		Notifications: true,
		MinimumPayout: 100,
	}
}
