package draft

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSignup() *Signup {
	d := NewSignup()
	d.SetFirstName("Asha")
	d.SetLastName("Nair")
	d.SetEmail("asha.nair@campus.edu")
	d.SetUniversity("Pune University")
	d.SetPassword("Str0ng@pass")
	d.SetConfirmPassword("Str0ng@pass")
	d.SetAgreeToTerms(true)
	return d
}

func TestSignupValidPassesAllChecks(t *testing.T) {
	d := validSignup()
	assert.Empty(t, d.Validate())
}

func TestSignupRequiredFields(t *testing.T) {
	d := NewSignup()
	errs := d.Validate()

	for _, field := range []string{"firstName", "lastName", "email", "university", "password", "confirmPassword", "agreeToTerms"} {
		assert.Contains(t, errs, field)
	}
}

func TestSignupEmailFormat(t *testing.T) {
	d := validSignup()
	d.SetEmail("not-an-email")

	errs := d.Validate()
	assert.Contains(t, errs, "email")
}

func TestSignupPasswordComplexity(t *testing.T) {
	cases := map[string]string{
		"short":        "A@1a",
		"no upper":     "weak@pass1",
		"no lower":     "WEAK@PASS1",
		"no digit":     "Weak@password",
		"no special":   "Weakpass1234",
		"wrong symbol": "Weakpass1234!",
	}

	for name, password := range cases {
		t.Run(name, func(t *testing.T) {
			d := validSignup()
			d.SetPassword(password)
			d.SetConfirmPassword(password)

			errs := d.Validate()
			assert.Contains(t, errs, "password")
		})
	}
}

func TestSignupConfirmMustMatch(t *testing.T) {
	d := validSignup()
	d.SetConfirmPassword("Different@1pass")

	errs := d.Validate()
	assert.Contains(t, errs, "confirmPassword")
	assert.NotContains(t, errs, "password")
}

func TestSignupEditClearsFieldError(t *testing.T) {
	d := NewSignup()
	require.Contains(t, d.Validate(), "email")

	d.SetEmail("asha@campus.edu")
	assert.NotContains(t, d.Errors(), "email")
	assert.Contains(t, d.Errors(), "firstName")
}

func TestLoginValidation(t *testing.T) {
	d := NewLogin()

	errs := d.Validate()
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "password")

	d.SetEmail("asha@campus.edu")
	d.SetPassword("whatever")
	assert.Empty(t, d.Validate())
}
