package models

// UserType is the account category assigned at registration. It gates
// role-specific views and actions on the client; the server enforces the
// same rules independently.
type UserType string

const (
	UserTypeJobSeeker UserType = "job_seeker"
	UserTypeEmployer  UserType = "employer"
)

// User is the profile object returned by the job-board API. Fields the
// client does not interpret are still carried so profile updates round-trip
// without losing data.
type User struct {
	ID             int64    `json:"id"`
	Username       string   `json:"username"`
	Email          string   `json:"email"`
	UserType       UserType `json:"user_type"`
	FirstName      string   `json:"first_name"`
	LastName       string   `json:"last_name"`
	PhoneNumber    string   `json:"phone_number"`
	Bio            string   `json:"bio"`
	CompanyName    string   `json:"company_name"`
	CompanyWebsite string   `json:"company_website"`
	Location       string   `json:"location"`
	Skills         string   `json:"skills"`
}

// DisplayName returns the name shown in the header/prompt: the first name
// when present, otherwise the username.
func (u *User) DisplayName() string {
	if u == nil {
		return ""
	}
	if u.FirstName != "" {
		return u.FirstName
	}
	return u.Username
}

// Credentials is the login request payload.
type Credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Registration is the sign-up request payload. Password2 mirrors the
// server-side confirmation field and must match Password.
type Registration struct {
	Username    string   `json:"username" validate:"required"`
	Email       string   `json:"email" validate:"required,email"`
	Password    string   `json:"password" validate:"required,min=8"`
	Password2   string   `json:"password2" validate:"required,eqfield=Password"`
	UserType    UserType `json:"user_type" validate:"required,oneof=job_seeker employer"`
	FirstName   string   `json:"first_name,omitempty"`
	LastName    string   `json:"last_name,omitempty"`
	PhoneNumber string   `json:"phone_number,omitempty"`
}

// ProfileUpdate is a partial profile change. Empty fields are omitted from
// the request body so the server keeps the current values.
type ProfileUpdate struct {
	Email          string `json:"email,omitempty" validate:"omitempty,email"`
	FirstName      string `json:"first_name,omitempty"`
	LastName       string `json:"last_name,omitempty"`
	PhoneNumber    string `json:"phone_number,omitempty"`
	Bio            string `json:"bio,omitempty"`
	CompanyName    string `json:"company_name,omitempty"`
	CompanyWebsite string `json:"company_website,omitempty" validate:"omitempty,url"`
	Location       string `json:"location,omitempty"`
	Skills         string `json:"skills,omitempty"`
}
