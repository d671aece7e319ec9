package draft

import (
	"regexp"
	"strings"
	"unicode"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const passwordSpecials = "@#$%^&+="

// Signup is the draft for the account creation form. Structurally the same
// pattern as the sell form: exhaustive fields, one Validate, errors cleared
// per field on edit.
type Signup struct {
	FirstName       string
	LastName        string
	Email           string
	University      string
	Password        string
	ConfirmPassword string
	AgreeToTerms    bool

	errors FieldErrors
}

func NewSignup() *Signup {
	return &Signup{errors: FieldErrors{}}
}

func (d *Signup) Errors() FieldErrors {
	return d.errors
}

func (d *Signup) clearError(field string) {
	delete(d.errors, field)
}

func (d *Signup) SetFirstName(v string)       { d.FirstName = v; d.clearError("firstName") }
func (d *Signup) SetLastName(v string)        { d.LastName = v; d.clearError("lastName") }
func (d *Signup) SetEmail(v string)           { d.Email = v; d.clearError("email") }
func (d *Signup) SetUniversity(v string)      { d.University = v; d.clearError("university") }
func (d *Signup) SetPassword(v string)        { d.Password = v; d.clearError("password") }
func (d *Signup) SetConfirmPassword(v string) { d.ConfirmPassword = v; d.clearError("confirmPassword") }
func (d *Signup) SetAgreeToTerms(v bool)      { d.AgreeToTerms = v; d.clearError("agreeToTerms") }

// passwordComplex checks the backend's rule: at least one digit, one
// lowercase, one uppercase and one special of @#$%^&+=.
func passwordComplex(password string) bool {
	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	return hasUpper && hasLower && hasDigit && strings.ContainsAny(password, passwordSpecials)
}

func (d *Signup) Validate() FieldErrors {
	errs := FieldErrors{}

	switch first := strings.TrimSpace(d.FirstName); {
	case first == "":
		errs["firstName"] = "First name is required"
	case len(first) < 2:
		errs["firstName"] = "First name must be at least 2 characters"
	}

	switch last := strings.TrimSpace(d.LastName); {
	case last == "":
		errs["lastName"] = "Last name is required"
	case len(last) < 2:
		errs["lastName"] = "Last name must be at least 2 characters"
	}

	switch email := strings.TrimSpace(d.Email); {
	case email == "":
		errs["email"] = "Email is required"
	case !emailPattern.MatchString(email):
		errs["email"] = "Please enter a valid email address"
	}

	if strings.TrimSpace(d.University) == "" {
		errs["university"] = "University is required"
	}

	switch {
	case d.Password == "":
		errs["password"] = "Password is required"
	case len(d.Password) < 8:
		errs["password"] = "Password must be at least 8 characters"
	case !passwordComplex(d.Password):
		errs["password"] = "Password must contain at least one uppercase letter, one lowercase letter, one number, and one special character (@#$%^&+=)"
	}

	switch {
	case d.ConfirmPassword == "":
		errs["confirmPassword"] = "Please confirm your password"
	case d.Password != d.ConfirmPassword:
		errs["confirmPassword"] = "Passwords do not match"
	}

	if !d.AgreeToTerms {
		errs["agreeToTerms"] = "You must agree to the Terms of Service and Privacy Policy"
	}

	d.errors = errs
	return errs
}

// Login is the draft for the login form.
type Login struct {
	Email    string
	Password string

	errors FieldErrors
}

func NewLogin() *Login {
	return &Login{errors: FieldErrors{}}
}

func (d *Login) Errors() FieldErrors {
	return d.errors
}

func (d *Login) SetEmail(v string)    { d.Email = v; delete(d.errors, "email") }
func (d *Login) SetPassword(v string) { d.Password = v; delete(d.errors, "password") }

func (d *Login) Validate() FieldErrors {
	errs := FieldErrors{}

	switch email := strings.TrimSpace(d.Email); {
	case email == "":
		errs["email"] = "Email is required"
	case !emailPattern.MatchString(email):
		errs["email"] = "Please enter a valid email address"
	}

	if d.Password == "" {
		errs["password"] = "Password is required"
	}

	d.errors = errs
	return errs
}
