package gateway

import "github.com/cargeniefortmyers/car-genies-referral/internal/models"

// Credentials is the login request payload.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Registration is the register request payload.
type Registration struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// ReferralSubmission is the submit-referral request payload. The customer
// name arrives already split into first/last by the controller.
type ReferralSubmission struct {
	FirstName   string             `json:"firstName"`
	LastName    string             `json:"lastName"`
	Email       string             `json:"email"`
	Phone       string             `json:"phone"`
	VehicleType models.VehicleType `json:"vehicleType"`
	Budget      string             `json:"budget"`
	Notes       string             `json:"notes"`
}

// userResponse is the success envelope for login and register.
type userResponse struct {
	User models.User `json:"user"`
}

// messageResponse is the failure envelope the server uses across endpoints.
type messageResponse struct {
	Message string `json:"message"`
}
