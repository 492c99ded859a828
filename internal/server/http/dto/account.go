package dto

// AccountForm is the form-encoded body of the account routes.
type AccountForm struct {
	Email    string `form:"email"`
	Username string `form:"username"`
	Password string `form:"password"`
}

// Outcome names the result of an account operation.
type Outcome string

const (
	OutcomeRegistered         Outcome = "registered"
	OutcomeLoginOK            Outcome = "login_ok"
	OutcomeUpdated            Outcome = "updated"
	OutcomeDeleted            Outcome = "deleted"
	OutcomeOK                 Outcome = "ok"
	OutcomeEmptyRequest       Outcome = "empty_request"
	OutcomeMissingEmail       Outcome = "missing_email"
	OutcomeInvalidEmailFormat Outcome = "invalid_email_format"
	OutcomeDuplicateEmail     Outcome = "duplicate_email"
	OutcomeUserNotFound       Outcome = "user_not_found"
	OutcomeInvalidCredentials Outcome = "invalid_credentials"
	OutcomeUnauthorized       Outcome = "unauthorized"
	OutcomeInternalError      Outcome = "internal_error"
)

// AccountResponse is the JSON body of every account route.
type AccountResponse struct {
	Status   Outcome `json:"status"`
	Message  string  `json:"message"`
	Username string  `json:"username,omitempty"`
}

// ProfileResponse describes the authenticated account.
type ProfileResponse struct {
	Status   Outcome `json:"status"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
}
