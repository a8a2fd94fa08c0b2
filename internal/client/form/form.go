// Package form holds transient form drafts and their validators.
//
// A Draft is the uncommitted field values for one form plus the validation
// errors from the last submit attempt. Values and errors are cleared
// together on successful submit or explicit reset.
package form

// Field names shared between the controller, validators, and renderer.
const (
	FieldUsername        = "username"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirmPassword"
	FieldFirstName       = "firstName"
	FieldLastName        = "lastName"
	FieldEmail           = "email"
	FieldCustomerName    = "customerName"
	FieldCustomerEmail   = "customerEmail"
	FieldCustomerPhone   = "customerPhone"
	FieldVehicleType     = "vehicleType"
	FieldBudget          = "budget"
	FieldNotes           = "notes"
)

// Draft is one form's field values and current validation errors.
type Draft struct {
	values   map[string]string
	errors   map[string]string
	defaults map[string]string
}

// NewDraft returns an empty draft. Fields named in defaults start at (and
// reset to) the given value; all other fields start empty.
func NewDraft(defaults map[string]string) *Draft {
	d := &Draft{defaults: defaults}
	d.Reset()
	return d
}

// Set stores a field value.
func (d *Draft) Set(field, value string) {
	d.values[field] = value
}

// Get returns the current value of a field, or "" if unset.
func (d *Draft) Get(field string) string {
	return d.values[field]
}

// SetErrors replaces the draft's error map.
func (d *Draft) SetErrors(errs map[string]string) {
	d.errors = errs
}

// Error returns the validation message for a field, or "" if none.
func (d *Draft) Error(field string) string {
	return d.errors[field]
}

// HasErrors reports whether the last validation produced any errors.
func (d *Draft) HasErrors() bool {
	return len(d.errors) > 0
}

// ClearErrors drops all validation errors, keeping field values.
func (d *Draft) ClearErrors() {
	d.errors = map[string]string{}
}

// Reset returns every field to its default and clears errors.
func (d *Draft) Reset() {
	d.values = map[string]string{}
	for k, v := range d.defaults {
		d.values[k] = v
	}
	d.errors = map[string]string{}
}

// NewLoginDraft returns the draft backing the login form.
func NewLoginDraft() *Draft {
	return NewDraft(nil)
}

// NewRegisterDraft returns the draft backing the registration form.
func NewRegisterDraft() *Draft {
	return NewDraft(nil)
}

// NewReferralDraft returns the draft backing the add-referral form,
// preselecting the most common vehicle type and budget range.
func NewReferralDraft() *Draft {
	return NewDraft(map[string]string{
		FieldVehicleType: "sedan",
		FieldBudget:      "20k-40k",
	})
}
