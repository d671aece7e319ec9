package app

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"dormigo/internal/browse"
	"dormigo/internal/client"
	"dormigo/internal/draft"
	"dormigo/internal/session"
)

type screen int

const (
	screenLogin screen = iota
	screenSignup
	screenBrowse
	screenSell
	screenProfile
)

// Sell form focus order.
const (
	sellFieldTitle = iota
	sellFieldPrice
	sellFieldDescription
	sellFieldCategory
	sellFieldCondition
	sellFieldCampus
	sellFieldTrades
	sellFieldImagePath
	sellFieldSubmit
	sellFieldCount
)

const requestTimeout = 20 * time.Second

// Model is the root bubbletea model for the dormigo terminal client.
type Model struct {
	api   *client.Client
	store *session.Store

	screen screen
	width  int
	height int

	// Login
	login      *draft.Login
	loginInput [2]textinput.Model // email, password
	loginFocus int
	loginBusy  bool
	loginErr   string

	// Signup
	signup      *draft.Signup
	signupInput [6]textinput.Model // first, last, email, university, password, confirm
	signupFocus int
	signupTerms bool
	signupBusy  bool
	signupErr   string
	signupOK    bool

	// Browse
	browse        *browse.View
	browseGen     int
	browseLoading bool
	browseErr     string
	searchInput   textinput.Model
	searchFocused bool
	categoryIdx   int // 0 == all, then browse.CategoryOptions
	campusIdx     int // 0 == all, then browse.CampusOptions
	priceIdx      int // index into browse.PricePresets, last == default
	cursor        int

	// Sell
	sell         *draft.Listing
	sellInput    [4]textinput.Model // title, price, description, image path
	sellFocus    int
	categories   []client.Category
	categoryPick int // 0 == none, then categories
	conditionIdx int // 0 == none, then draft.Conditions
	campusPick   int // 0 == none, then draft.Campuses
	submitBusy   bool
	submitErr    string
	submitOK     bool
	stageErr     string
}

// New builds the root model. When sample is set the browse view is seeded
// with the fixed sample listings and no remote load is issued.
func New(api *client.Client, store *session.Store, sample bool) Model {
	m := Model{
		api:      api,
		store:    store,
		login:    draft.NewLogin(),
		signup:   draft.NewSignup(),
		sell:     draft.NewListing(),
		priceIdx: len(browse.PricePresets) - 1,
	}

	var seed []browse.Listing
	if sample {
		seed = browse.SampleListings()
	}
	m.browse = browse.NewView(seed)

	m.loginInput[0] = newInput("email", 0)
	m.loginInput[1] = newPasswordInput("password")
	m.loginInput[0].Focus()

	labels := []string{"first name", "last name", "email", "university"}
	for i, label := range labels {
		m.signupInput[i] = newInput(label, 0)
	}
	m.signupInput[4] = newPasswordInput("password")
	m.signupInput[5] = newPasswordInput("confirm password")

	m.searchInput = newInput("search listings", 40)
	m.sellInput[0] = newInput("e.g. Vintage Desk Lamp", 0)
	m.sellInput[1] = newInput("price in ₹", 0)
	m.sellInput[2] = newInput("describe your item", 0)
	m.sellInput[3] = newInput("path to an image file", 0)

	if m.store.Current() != nil {
		m.screen = screenBrowse
	}

	return m
}

func newInput(placeholder string, width int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 200
	if width > 0 {
		ti.Width = width
	}
	return ti
}

func newPasswordInput(placeholder string) textinput.Model {
	ti := newInput(placeholder, 0)
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '•'
	return ti
}

func (m Model) Init() tea.Cmd {
	if m.screen == screenBrowse {
		return tea.Batch(m.loadListingsCmd(), m.loadCategoriesCmd())
	}
	return textinput.Blink
}

// --- Commands ---

func (m Model) loadListingsCmd() tea.Cmd {
	gen := m.browseGen
	api := m.api
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		listings, err := api.Listings(ctx, 0, 20)
		return listingsLoadedMsg{gen: gen, listings: listings, err: err}
	}
}

func (m Model) loadCategoriesCmd() tea.Cmd {
	api := m.api
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		categories, err := api.Categories(ctx)
		return categoriesLoadedMsg{categories: categories, err: err}
	}
}

func (m Model) loginCmd() tea.Cmd {
	api := m.api
	email, password := m.login.Email, m.login.Password
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		auth, err := api.Login(ctx, email, password)
		return loginDoneMsg{auth: auth, err: err}
	}
}

func (m Model) signupCmd() tea.Cmd {
	api := m.api
	req := client.SignupRequest{
		FirstName:  m.signup.FirstName,
		LastName:   m.signup.LastName,
		Email:      m.signup.Email,
		Password:   m.signup.Password,
		University: m.signup.University,
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		user, err := api.Signup(ctx, req)
		return signupDoneMsg{user: user, err: err}
	}
}

func (m Model) submitCmd() tea.Cmd {
	api := m.api
	sell := m.sell
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		return submitDoneMsg{err: sell.Submit(ctx, api)}
	}
}

// stageImage reads a local file into the draft. Runs synchronously; local
// disk reads do not warrant a command round-trip.
func (m *Model) stageImage(path string) {
	f, err := os.Open(path)
	if err != nil {
		m.stageErr = "Could not open " + path
		return
	}
	defer f.Close()

	if _, err := m.sell.Stage(f.Name(), f); err != nil {
		if errors.Is(err, draft.ErrNotImage) {
			m.stageErr = "That file is not an image"
		} else {
			m.stageErr = "Could not stage " + path
		}
		return
	}
	m.stageErr = ""
}

// errorMessage distinguishes a structured server error from a connectivity
// failure the server never saw.
func errorMessage(err error) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Message != "" {
			return apiErr.Message
		}
		return "The server rejected the request."
	}
	return "Unable to connect to the server. Please try again."
}
