package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storePath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "session.json")
}

func TestStoreStartsLoggedOut(t *testing.T) {
	s := NewStoreAt(storePath(t))

	assert.Nil(t, s.Current())
	assert.Empty(t, s.Token())
}

func TestLoginPersistsAcrossReopen(t *testing.T) {
	path := storePath(t)
	s := NewStoreAt(path)

	user := User{ID: 7, Email: "asha@campus.edu", FirstName: "Asha", LastName: "Nair", Role: "STUDENT"}
	require.NoError(t, s.Login(user, "token-abc"))

	reopened := NewStoreAt(path)
	current := reopened.Current()
	require.NotNil(t, current)
	assert.Equal(t, user, current.User)
	assert.Equal(t, "token-abc", reopened.Token())
}

func TestLogoutClearsStateAndFile(t *testing.T) {
	path := storePath(t)
	s := NewStoreAt(path)

	require.NoError(t, s.Login(User{ID: 1, Email: "a@b.edu"}, "tok"))
	require.NoError(t, s.Logout())

	assert.Nil(t, s.Current())
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// Logging out twice is fine.
	require.NoError(t, s.Logout())
}

func TestCorruptedFileIsDiscarded(t *testing.T) {
	path := storePath(t)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	s := NewStoreAt(path)
	assert.Nil(t, s.Current())

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "corrupted file is removed")
}

func TestUpdateMutatesPersistedUser(t *testing.T) {
	path := storePath(t)
	s := NewStoreAt(path)

	require.NoError(t, s.Login(User{ID: 1, FirstName: "Asha"}, "tok"))
	require.NoError(t, s.Update(func(u *User) {
		u.University = "Pune University"
	}))

	reopened := NewStoreAt(path)
	require.NotNil(t, reopened.Current())
	assert.Equal(t, "Pune University", reopened.Current().User.University)
}

func TestUpdateIsNoOpWhenLoggedOut(t *testing.T) {
	s := NewStoreAt(storePath(t))

	called := false
	require.NoError(t, s.Update(func(*User) { called = true }))
	assert.False(t, called)
}

func TestCurrentReturnsACopy(t *testing.T) {
	s := NewStoreAt(storePath(t))
	require.NoError(t, s.Login(User{ID: 1, FirstName: "Asha"}, "tok"))

	current := s.Current()
	current.User.FirstName = "Mutated"

	assert.Equal(t, "Asha", s.Current().User.FirstName)
}
