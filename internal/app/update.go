package app

import (
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"dormigo/internal/browse"
	"dormigo/internal/draft"
	"dormigo/internal/session"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case listingsLoadedMsg:
		// Drop results for a torn-down browse view; otherwise the last
		// resolved load wins, regardless of filter changes made meanwhile.
		if msg.gen != m.browseGen {
			return m, nil
		}
		m.browseLoading = false
		if msg.err != nil {
			m.browse.FailLoad(msg.err)
			m.browseErr = errorMessage(msg.err)
			return m, nil
		}
		m.browse.ReplaceItems(msg.listings)
		m.browseErr = ""
		m.cursor = 0
		return m, nil

	case categoriesLoadedMsg:
		// Categories are optional; the sell form works without them.
		if msg.err == nil {
			m.categories = msg.categories
		}
		return m, nil

	case loginDoneMsg:
		m.loginBusy = false
		if msg.err != nil {
			m.loginErr = errorMessage(msg.err)
			return m, nil
		}
		m.store.Login(session.User{
			ID:        msg.auth.UserID,
			Email:     msg.auth.Email,
			FirstName: msg.auth.FirstName,
			LastName:  msg.auth.LastName,
			Role:      msg.auth.Role,
		}, msg.auth.Token)
		m.loginErr = ""
		m.screen = screenBrowse
		m.browseLoading = true
		return m, tea.Batch(m.loadListingsCmd(), m.loadCategoriesCmd())

	case signupDoneMsg:
		m.signupBusy = false
		if msg.err != nil {
			m.signupErr = errorMessage(msg.err)
			return m, nil
		}
		// Signup returns no token; the user logs in afterwards.
		m.signupOK = true
		m.signupErr = ""
		m.signup = draft.NewSignup()
		for i := range m.signupInput {
			m.signupInput[i].SetValue("")
		}
		return m, nil

	case submitDoneMsg:
		m.submitBusy = false
		if msg.err != nil {
			m.submitErr = errorMessage(msg.err)
			m.submitOK = false
			return m, nil
		}
		m.submitOK = true
		m.submitErr = ""
		for i := range m.sellInput {
			m.sellInput[i].SetValue("")
		}
		m.categoryPick = 0
		m.conditionIdx = 0
		m.campusPick = 0
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}

		switch m.screen {
		case screenLogin:
			return m.updateLogin(msg)
		case screenSignup:
			return m.updateSignup(msg)
		case screenBrowse:
			return m.updateBrowse(msg)
		case screenSell:
			return m.updateSell(msg)
		case screenProfile:
			return m.updateProfile(msg)
		}
	}

	return m, nil
}

// switchScreen handles the global navigation keys shared by the logged-in
// screens. Returns false when the key was not a navigation key.
func (m *Model) switchScreen(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "1":
		m.screen = screenBrowse
		return nil, true
	case "2":
		m.screen = screenSell
		return nil, true
	case "3":
		m.screen = screenProfile
		return nil, true
	case "ctrl+l":
		m.store.Logout()
		m.browseGen++ // in-flight load results now target a disposed view
		m.browse = browse.NewView(nil)
		m.screen = screenLogin
		m.loginInput[0].Focus()
		return textinput.Blink, true
	}
	return nil, false
}

func (m Model) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "shift+tab", "up", "down":
		m.loginInput[m.loginFocus].Blur()
		m.loginFocus = (m.loginFocus + 1) % 2
		m.loginInput[m.loginFocus].Focus()
		return m, textinput.Blink

	case "ctrl+s":
		m.screen = screenSignup
		m.signupFocus = 0
		m.signupInput[0].Focus()
		return m, textinput.Blink

	case "enter":
		if m.loginBusy {
			return m, nil
		}
		m.login.SetEmail(m.loginInput[0].Value())
		m.login.SetPassword(m.loginInput[1].Value())
		if errs := m.login.Validate(); !errs.Empty() {
			return m, nil
		}
		m.loginBusy = true
		m.loginErr = ""
		return m, m.loginCmd()
	}

	var cmd tea.Cmd
	m.loginInput[m.loginFocus], cmd = m.loginInput[m.loginFocus].Update(msg)
	switch m.loginFocus {
	case 0:
		m.login.SetEmail(m.loginInput[0].Value())
	case 1:
		m.login.SetPassword(m.loginInput[1].Value())
	}
	return m, cmd
}

func (m Model) updateSignup(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.screen = screenLogin
		m.loginFocus = 0
		m.loginInput[0].Focus()
		return m, textinput.Blink

	case "tab", "down":
		m.signupInput[m.signupFocus].Blur()
		m.signupFocus = (m.signupFocus + 1) % len(m.signupInput)
		m.signupInput[m.signupFocus].Focus()
		return m, textinput.Blink

	case "shift+tab", "up":
		m.signupInput[m.signupFocus].Blur()
		m.signupFocus = (m.signupFocus + len(m.signupInput) - 1) % len(m.signupInput)
		m.signupInput[m.signupFocus].Focus()
		return m, textinput.Blink

	case "ctrl+t":
		m.signupTerms = !m.signupTerms
		m.signup.SetAgreeToTerms(m.signupTerms)
		return m, nil

	case "enter":
		if m.signupBusy {
			return m, nil
		}
		m.syncSignupDraft()
		if errs := m.signup.Validate(); !errs.Empty() {
			return m, nil
		}
		m.signupBusy = true
		m.signupErr = ""
		m.signupOK = false
		return m, m.signupCmd()
	}

	var cmd tea.Cmd
	m.signupInput[m.signupFocus], cmd = m.signupInput[m.signupFocus].Update(msg)
	m.syncSignupDraft()
	return m, cmd
}

func (m *Model) syncSignupDraft() {
	m.signup.SetFirstName(m.signupInput[0].Value())
	m.signup.SetLastName(m.signupInput[1].Value())
	m.signup.SetEmail(m.signupInput[2].Value())
	m.signup.SetUniversity(m.signupInput[3].Value())
	m.signup.SetPassword(m.signupInput[4].Value())
	m.signup.SetConfirmPassword(m.signupInput[5].Value())
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searchFocused {
		switch msg.String() {
		case "esc", "enter":
			m.searchFocused = false
			m.searchInput.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		m.browse.SetSearchTerm(m.searchInput.Value())
		m.cursor = 0
		return m, cmd
	}

	if cmd, ok := m.switchScreen(msg); ok {
		return m, cmd
	}

	visible := m.browse.VisibleListings()

	switch msg.String() {
	case "/":
		m.searchFocused = true
		m.searchInput.Focus()
		return m, textinput.Blink

	case "c":
		m.categoryIdx = (m.categoryIdx + 1) % (len(browse.CategoryOptions) + 1)
		if m.categoryIdx == 0 {
			m.browse.SetCategory(browse.FilterAll)
		} else {
			m.browse.SetCategory(browse.CategoryOptions[m.categoryIdx-1])
		}
		m.cursor = 0

	case "v":
		m.campusIdx = (m.campusIdx + 1) % (len(browse.CampusOptions) + 1)
		if m.campusIdx == 0 {
			m.browse.SetCampus(browse.FilterAll)
		} else {
			m.browse.SetCampus(browse.CampusOptions[m.campusIdx-1])
		}
		m.cursor = 0

	case "p":
		m.priceIdx = (m.priceIdx + 1) % len(browse.PricePresets)
		preset := browse.PricePresets[m.priceIdx]
		m.browse.SetPriceRange(preset.Min, preset.Max)
		m.cursor = 0

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(visible)-1 {
			m.cursor++
		}

	case "f":
		if m.cursor < len(visible) {
			m.browse.ToggleFavorite(visible[m.cursor].ID)
		}

	case "r":
		if !m.browseLoading {
			m.browseLoading = true
			m.browseErr = ""
			return m, m.loadListingsCmd()
		}
	}

	return m, nil
}

func (m Model) updateSell(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	focusedInput := m.sellInputIndex()

	if focusedInput < 0 || !m.sellInput[focusedInput].Focused() {
		if cmd, ok := m.switchScreen(msg); ok {
			return m, cmd
		}
	}

	switch msg.String() {
	case "tab", "down":
		return m.moveSellFocus(1)

	case "shift+tab", "up":
		return m.moveSellFocus(-1)

	case "left", "right":
		if focusedInput < 0 {
			delta := 1
			if msg.String() == "left" {
				delta = -1
			}
			m.cycleSellChoice(delta)
			return m, nil
		}

	case "ctrl+x":
		// Remove the most recently staged image.
		images := m.sell.Images()
		if n := len(images); n > 0 {
			m.sell.Unstage(images[n-1].ID)
		}
		return m, nil

	case " ":
		if m.sellFocus == sellFieldTrades {
			m.sell.SetAcceptTrades(!m.sell.AcceptTrades)
			return m, nil
		}

	case "enter":
		switch m.sellFocus {
		case sellFieldImagePath:
			if path := m.sellInput[3].Value(); path != "" {
				m.stageImage(path)
				m.sellInput[3].SetValue("")
			}
			return m, nil

		case sellFieldSubmit:
			// The submit control stays disabled while a submission is
			// in flight.
			if m.submitBusy || m.sell.InFlight() {
				return m, nil
			}
			m.syncSellDraft()
			if errs := m.sell.Validate(); !errs.Empty() {
				return m, nil
			}
			m.submitBusy = true
			m.submitErr = ""
			m.submitOK = false
			return m, m.submitCmd()
		}
	}

	if focusedInput >= 0 {
		var cmd tea.Cmd
		m.sellInput[focusedInput], cmd = m.sellInput[focusedInput].Update(msg)
		m.syncSellDraft()
		return m, cmd
	}

	return m, nil
}

// sellInputIndex maps the focused sell field to its textinput slot, or -1
// for choice fields.
func (m Model) sellInputIndex() int {
	switch m.sellFocus {
	case sellFieldTitle:
		return 0
	case sellFieldPrice:
		return 1
	case sellFieldDescription:
		return 2
	case sellFieldImagePath:
		return 3
	}
	return -1
}

func (m Model) moveSellFocus(delta int) (tea.Model, tea.Cmd) {
	if idx := m.sellInputIndex(); idx >= 0 {
		m.sellInput[idx].Blur()
	}

	m.sellFocus = (m.sellFocus + delta + sellFieldCount) % sellFieldCount

	if idx := m.sellInputIndex(); idx >= 0 {
		m.sellInput[idx].Focus()
		return m, textinput.Blink
	}
	return m, nil
}

// cycleSellChoice steps the enumerated field under focus.
func (m *Model) cycleSellChoice(delta int) {
	switch m.sellFocus {
	case sellFieldCategory:
		n := len(m.categories) + 1
		m.categoryPick = (m.categoryPick + delta + n) % n
		if m.categoryPick == 0 {
			m.sell.SetCategoryID(0)
		} else {
			m.sell.SetCategoryID(m.categories[m.categoryPick-1].ID)
		}

	case sellFieldCondition:
		n := len(draft.Conditions) + 1
		m.conditionIdx = (m.conditionIdx + delta + n) % n
		if m.conditionIdx == 0 {
			m.sell.SetCondition("")
		} else {
			m.sell.SetCondition(draft.Conditions[m.conditionIdx-1])
		}

	case sellFieldCampus:
		n := len(draft.Campuses) + 1
		m.campusPick = (m.campusPick + delta + n) % n
		if m.campusPick == 0 {
			m.sell.SetCampus("")
		} else {
			m.sell.SetCampus(draft.Campuses[m.campusPick-1])
		}
	}
}

func (m *Model) syncSellDraft() {
	m.sell.SetTitle(m.sellInput[0].Value())
	m.sell.SetPriceText(m.sellInput[1].Value())
	m.sell.SetDescription(m.sellInput[2].Value())
}

func (m Model) updateProfile(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if cmd, ok := m.switchScreen(msg); ok {
		return m, cmd
	}
	return m, nil
}

// priceLabel renders a preset for the filter bar.
func priceLabel(r browse.PriceRange) string {
	if r.Min == 0 && r.Max == browse.DefaultPriceMax {
		return "any"
	}
	return "₹" + strconv.FormatFloat(r.Min, 'f', -1, 64) + "–₹" + strconv.FormatFloat(r.Max, 'f', -1, 64)
}
