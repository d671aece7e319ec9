package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dormigo/internal/infrastructure/auth"
	"dormigo/pkg/errors"
)

func newAuthUseCaseForTest() (*AuthUseCase, *fakeUserRepo) {
	repo := newFakeUserRepo()
	tokens := auth.NewTokenService("test-signing-key", 3600)
	return NewAuthUseCase(repo, tokens), repo
}

func TestSignUpCreatesStudentAccount(t *testing.T) {
	uc, _ := newAuthUseCaseForTest()

	user, err := uc.SignUp(context.Background(), SignUpInput{
		FirstName: "Asha",
		LastName:  "Nair",
		Email:     "Asha.Nair@campus.edu",
		Password:  "Sup3rSecret@",
	})
	require.NoError(t, err)

	assert.NotZero(t, user.ID)
	assert.Equal(t, "asha.nair@campus.edu", user.Email)
	assert.Equal(t, "STUDENT", user.Role)
	assert.True(t, user.IsActive)
	assert.NotEqual(t, "Sup3rSecret@", user.PasswordHash)
}

func TestSignUpRejectsDuplicateEmail(t *testing.T) {
	uc, _ := newAuthUseCaseForTest()

	input := SignUpInput{
		FirstName: "Asha",
		LastName:  "Nair",
		Email:     "asha@campus.edu",
		Password:  "Sup3rSecret@",
	}
	_, err := uc.SignUp(context.Background(), input)
	require.NoError(t, err)

	_, err = uc.SignUp(context.Background(), input)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "CONFLICT"))
}

func TestLoginReturnsToken(t *testing.T) {
	uc, _ := newAuthUseCaseForTest()

	_, err := uc.SignUp(context.Background(), SignUpInput{
		FirstName: "Asha",
		LastName:  "Nair",
		Email:     "asha@campus.edu",
		Password:  "Sup3rSecret@",
	})
	require.NoError(t, err)

	result, err := uc.Login(context.Background(), "asha@campus.edu", "Sup3rSecret@")
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "asha@campus.edu", result.User.Email)

	tokens := auth.NewTokenService("test-signing-key", 3600)
	claims, err := tokens.ValidateToken(result.Token)
	require.NoError(t, err)

	uid, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, uid)
	assert.Equal(t, "STUDENT", claims.Role)
}

func TestLoginRejectsBadPassword(t *testing.T) {
	uc, _ := newAuthUseCaseForTest()

	_, err := uc.SignUp(context.Background(), SignUpInput{
		FirstName: "Asha",
		LastName:  "Nair",
		Email:     "asha@campus.edu",
		Password:  "Sup3rSecret@",
	})
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), "asha@campus.edu", "wrong-password")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))
}

func TestLoginRejectsUnknownEmail(t *testing.T) {
	uc, _ := newAuthUseCaseForTest()

	_, err := uc.Login(context.Background(), "nobody@campus.edu", "whatever")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))
}

func TestLoginRejectsDisabledAccount(t *testing.T) {
	uc, repo := newAuthUseCaseForTest()

	user, err := uc.SignUp(context.Background(), SignUpInput{
		FirstName: "Asha",
		LastName:  "Nair",
		Email:     "asha@campus.edu",
		Password:  "Sup3rSecret@",
	})
	require.NoError(t, err)

	user.IsActive = false
	require.NoError(t, repo.Update(context.Background(), user))

	_, err = uc.Login(context.Background(), "asha@campus.edu", "Sup3rSecret@")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))
}
