package form

import "testing"

func draftWith(values map[string]string) *Draft {
	d := NewDraft(nil)
	for k, v := range values {
		d.Set(k, v)
	}
	return d
}

func TestValidateLogin(t *testing.T) {
	tests := []struct {
		name   string
		values map[string]string
		want   map[string]string
	}{
		{
			name:   "both empty",
			values: nil,
			want: map[string]string{
				FieldUsername: "Username is required",
				FieldPassword: "Password is required",
			},
		},
		{
			name:   "whitespace username",
			values: map[string]string{FieldUsername: "   ", FieldPassword: "pw"},
			want:   map[string]string{FieldUsername: "Username is required"},
		},
		{
			name:   "valid",
			values: map[string]string{FieldUsername: "alice", FieldPassword: "pw"},
			want:   map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateLogin(draftWith(tt.values))
			assertErrorMap(t, got, tt.want)
		})
	}
}

func TestValidateRegister(t *testing.T) {
	valid := map[string]string{
		FieldUsername:        "alice",
		FieldPassword:        "pw",
		FieldConfirmPassword: "pw",
		FieldFirstName:       "Alice",
		FieldLastName:        "Smith",
		FieldEmail:           "alice@example.com",
	}

	tests := []struct {
		name     string
		override map[string]string
		want     map[string]string
	}{
		{
			name: "valid",
			want: map[string]string{},
		},
		{
			name:     "password mismatch",
			override: map[string]string{FieldConfirmPassword: "other"},
			want:     map[string]string{FieldConfirmPassword: "Passwords do not match"},
		},
		{
			name:     "mismatch overrides missing confirmation",
			override: map[string]string{FieldConfirmPassword: ""},
			want:     map[string]string{FieldConfirmPassword: "Passwords do not match"},
		},
		{
			name:     "email without at sign",
			override: map[string]string{FieldEmail: "not-an-email"},
			want:     map[string]string{FieldEmail: "Invalid email format"},
		},
		{
			name:     "empty email is required, not invalid",
			override: map[string]string{FieldEmail: ""},
			want:     map[string]string{FieldEmail: "Email is required"},
		},
		{
			name: "everything missing",
			override: map[string]string{
				FieldUsername: "", FieldPassword: "", FieldConfirmPassword: "",
				FieldFirstName: "", FieldLastName: "", FieldEmail: "",
			},
			want: map[string]string{
				FieldUsername:        "Username is required",
				FieldPassword:        "Password is required",
				FieldConfirmPassword: "Please confirm password",
				FieldFirstName:       "First name is required",
				FieldLastName:        "Last name is required",
				FieldEmail:           "Email is required",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := map[string]string{}
			for k, v := range valid {
				values[k] = v
			}
			for k, v := range tt.override {
				values[k] = v
			}
			got := ValidateRegister(draftWith(values))
			assertErrorMap(t, got, tt.want)
		})
	}
}

func TestValidateReferral(t *testing.T) {
	tests := []struct {
		name   string
		values map[string]string
		want   map[string]string
	}{
		{
			name: "valid",
			values: map[string]string{
				FieldCustomerName:  "John Smith",
				FieldCustomerEmail: "john@example.com",
				FieldCustomerPhone: "555-1234",
			},
			want: map[string]string{},
		},
		{
			name:   "all required missing",
			values: nil,
			want: map[string]string{
				FieldCustomerName:  "Customer name is required",
				FieldCustomerEmail: "Customer email is required",
				FieldCustomerPhone: "Customer phone is required",
			},
		},
		{
			name: "bad email",
			values: map[string]string{
				FieldCustomerName:  "John",
				FieldCustomerEmail: "john.example.com",
				FieldCustomerPhone: "555-1234",
			},
			want: map[string]string{FieldCustomerEmail: "Invalid email format"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateReferral(draftWith(tt.values))
			assertErrorMap(t, got, tt.want)
		})
	}
}

func TestValidatorsDoNotMutateDraft(t *testing.T) {
	d := draftWith(map[string]string{FieldUsername: "alice"})
	_ = ValidateLogin(d)
	if d.HasErrors() {
		t.Errorf("validator stored errors on the draft")
	}
	if d.Get(FieldUsername) != "alice" {
		t.Errorf("validator changed a field value")
	}
}

func TestDraftReset(t *testing.T) {
	d := NewReferralDraft()
	if d.Get(FieldVehicleType) != "sedan" || d.Get(FieldBudget) != "20k-40k" {
		t.Fatalf("unexpected defaults: %q / %q", d.Get(FieldVehicleType), d.Get(FieldBudget))
	}

	d.Set(FieldCustomerName, "John Smith")
	d.Set(FieldVehicleType, "truck")
	d.SetErrors(map[string]string{FieldCustomerEmail: "Customer email is required"})

	d.Reset()
	if d.Get(FieldCustomerName) != "" {
		t.Errorf("Reset kept a field value")
	}
	if d.Get(FieldVehicleType) != "sedan" {
		t.Errorf("Reset did not restore the default vehicle type")
	}
	if d.HasErrors() {
		t.Errorf("Reset kept validation errors")
	}
}

func assertErrorMap(t *testing.T, got, want map[string]string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d errors %v; want %d %v", len(got), got, len(want), want)
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("field %s: got %q, want %q", k, got[k], v)
		}
	}
}
