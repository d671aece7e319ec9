package app

import (
	"dormigo/internal/browse"
	"dormigo/internal/client"
)

// Tea messages carrying the results of asynchronous API commands. Load
// results carry the browse generation they were issued for, so a message
// that resolves after the view was torn down is dropped instead of being
// written into a disposed view.

type listingsLoadedMsg struct {
	gen      int
	listings []browse.Listing
	err      error
}

type categoriesLoadedMsg struct {
	categories []client.Category
	err        error
}

type loginDoneMsg struct {
	auth *client.AuthResponse
	err  error
}

type signupDoneMsg struct {
	user *client.User
	err  error
}

type submitDoneMsg struct {
	err error
}
