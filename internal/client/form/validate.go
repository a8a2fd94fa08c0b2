package form

import "strings"

// Validators inspect a draft and return field→message maps. They never
// mutate the draft; the controller stores the result. An empty map means
// the form may be submitted.

// ValidateLogin checks the login form.
func ValidateLogin(d *Draft) map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(d.Get(FieldUsername)) == "" {
		errs[FieldUsername] = "Username is required"
	}
	if d.Get(FieldPassword) == "" {
		errs[FieldPassword] = "Password is required"
	}
	return errs
}

// ValidateRegister checks the registration form. A password mismatch
// overrides the missing-confirmation message on the same field.
func ValidateRegister(d *Draft) map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(d.Get(FieldUsername)) == "" {
		errs[FieldUsername] = "Username is required"
	}
	if d.Get(FieldPassword) == "" {
		errs[FieldPassword] = "Password is required"
	}
	if strings.TrimSpace(d.Get(FieldFirstName)) == "" {
		errs[FieldFirstName] = "First name is required"
	}
	if strings.TrimSpace(d.Get(FieldLastName)) == "" {
		errs[FieldLastName] = "Last name is required"
	}
	if strings.TrimSpace(d.Get(FieldEmail)) == "" {
		errs[FieldEmail] = "Email is required"
	}
	if d.Get(FieldConfirmPassword) == "" {
		errs[FieldConfirmPassword] = "Please confirm password"
	}
	if d.Get(FieldPassword) != d.Get(FieldConfirmPassword) {
		errs[FieldConfirmPassword] = "Passwords do not match"
	}
	if email := d.Get(FieldEmail); email != "" && !strings.Contains(email, "@") {
		errs[FieldEmail] = "Invalid email format"
	}
	return errs
}

// ValidateReferral checks the add-referral form.
func ValidateReferral(d *Draft) map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(d.Get(FieldCustomerName)) == "" {
		errs[FieldCustomerName] = "Customer name is required"
	}
	if strings.TrimSpace(d.Get(FieldCustomerEmail)) == "" {
		errs[FieldCustomerEmail] = "Customer email is required"
	}
	if strings.TrimSpace(d.Get(FieldCustomerPhone)) == "" {
		errs[FieldCustomerPhone] = "Customer phone is required"
	}
	if email := d.Get(FieldCustomerEmail); email != "" && !strings.Contains(email, "@") {
		errs[FieldCustomerEmail] = "Invalid email format"
	}
	return errs
}
