package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"dormigo/internal/draft"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#2563EB"))

	headerStyle = lipgloss.NewStyle().
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717A"))

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#2563EB"))

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#DC2626")).
			Bold(true)

	okStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#16A34A")).
			Bold(true)

	favStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E11D48"))

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3F3F46")).
			Padding(0, 1)
)

func (m Model) View() string {
	var body string
	switch m.screen {
	case screenLogin:
		body = m.viewLogin()
	case screenSignup:
		body = m.viewSignup()
	case screenBrowse:
		body = m.viewBrowse()
	case screenSell:
		body = m.viewSell()
	case screenProfile:
		body = m.viewProfile()
	}

	return titleStyle.Render("Dormigo") + "  " + dimStyle.Render("campus marketplace") + "\n\n" + body
}

func fieldError(errs draft.FieldErrors, field string) string {
	if msg, ok := errs[field]; ok {
		return "  " + errStyle.Render(msg)
	}
	return ""
}

func (m Model) viewLogin() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Log in") + "\n\n")
	b.WriteString("Email:    " + m.loginInput[0].View() + fieldError(m.login.Errors(), "email") + "\n")
	b.WriteString("Password: " + m.loginInput[1].View() + fieldError(m.login.Errors(), "password") + "\n\n")

	switch {
	case m.loginBusy:
		b.WriteString(dimStyle.Render("Logging in...") + "\n")
	case m.loginErr != "":
		b.WriteString(errStyle.Render(m.loginErr) + "\n")
	}

	b.WriteString("\n" + dimStyle.Render("enter: log in · ctrl+s: create an account · ctrl+c: quit"))
	return b.String()
}

func (m Model) viewSignup() string {
	labels := []string{"First name", "Last name", "Email", "University", "Password", "Confirm"}
	fields := []string{"firstName", "lastName", "email", "university", "password", "confirmPassword"}

	var b strings.Builder
	b.WriteString(headerStyle.Render("Create your account") + "\n\n")
	for i, label := range labels {
		b.WriteString(fmt.Sprintf("%-12s %s%s\n", label+":", m.signupInput[i].View(), fieldError(m.signup.Errors(), fields[i])))
	}

	check := "[ ]"
	if m.signupTerms {
		check = "[x]"
	}
	b.WriteString(fmt.Sprintf("%-12s %s I agree to the Terms of Service%s\n\n", "", check, fieldError(m.signup.Errors(), "agreeToTerms")))

	switch {
	case m.signupBusy:
		b.WriteString(dimStyle.Render("Creating account...") + "\n")
	case m.signupErr != "":
		b.WriteString(errStyle.Render(m.signupErr) + "\n")
	case m.signupOK:
		b.WriteString(okStyle.Render("Account created! Press esc and log in.") + "\n")
	}

	b.WriteString("\n" + dimStyle.Render("enter: sign up · ctrl+t: toggle terms · esc: back to login"))
	return b.String()
}

func (m Model) viewBrowse() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Browse Listings") + "\n\n")

	category := m.browse.Category()
	campus := m.browse.Campus()
	price := priceLabel(m.browse.PriceRangeSelected())
	b.WriteString(fmt.Sprintf("Search: %s\n", m.searchInput.View()))
	b.WriteString(dimStyle.Render(fmt.Sprintf("category: %s · campus: %s · price: %s · favorites: %d",
		category, campus, price, m.browse.FavoriteCount())) + "\n\n")

	switch {
	case m.browseLoading:
		b.WriteString(dimStyle.Render("Loading listings...") + "\n")
	case m.browseErr != "":
		b.WriteString(errStyle.Render(m.browseErr) + "\n")
	default:
		b.WriteString(m.viewListingRows())
	}

	b.WriteString("\n" + dimStyle.Render("/: search · c/v/p: filters · f: favorite · r: reload · 2: sell · 3: profile · ctrl+l: log out"))
	return b.String()
}

func (m Model) viewListingRows() string {
	visible := m.browse.VisibleListings()
	if len(visible) == 0 {
		// Distinct from an empty grid: filtering found nothing.
		return dimStyle.Render("No items found. Try adjusting your search or filters.") + "\n"
	}

	var b strings.Builder
	for i, item := range visible {
		heart := "  "
		if m.browse.IsFavorite(item.ID) {
			heart = favStyle.Render("♥ ")
		}

		campus := item.Campus
		if campus == "" {
			campus = "-"
		}

		row := fmt.Sprintf("%s%-28s ₹%-8.0f %-14s %-13s %s",
			heart, truncate(item.Title, 28), item.Price, item.Category, campus, dimStyle.Render(item.Condition))
		if i == m.cursor {
			row = selectedStyle.Render(row)
		}
		b.WriteString(row + "\n")
	}
	return b.String()
}

func (m Model) viewSell() string {
	errs := m.sell.Errors()

	var b strings.Builder
	b.WriteString(headerStyle.Render("List an Item") + "\n\n")

	b.WriteString(m.sellRow(sellFieldTitle, "Title", m.sellInput[0].View()) + fieldError(errs, "title") + "\n")
	b.WriteString(m.sellRow(sellFieldPrice, "Price", m.sellInput[1].View()) + fieldError(errs, "price") + "\n")
	b.WriteString(m.sellRow(sellFieldDescription, "Description", m.sellInput[2].View()) + fieldError(errs, "description") + "\n")
	b.WriteString(m.sellRow(sellFieldCategory, "Category", m.categoryLabel()) + fieldError(errs, "categoryId") + "\n")
	b.WriteString(m.sellRow(sellFieldCondition, "Condition", m.conditionLabel()) + fieldError(errs, "condition") + "\n")
	b.WriteString(m.sellRow(sellFieldCampus, "Campus", m.campusLabel()) + fieldError(errs, "campus") + "\n")

	trades := "[ ] Open to trades"
	if m.sell.AcceptTrades {
		trades = "[x] Open to trades"
	}
	b.WriteString(m.sellRow(sellFieldTrades, "Trades", trades) + "\n")
	b.WriteString(m.sellRow(sellFieldImagePath, "Add image", m.sellInput[3].View()) + "\n")

	if images := m.sell.Images(); len(images) > 0 {
		names := make([]string, 0, len(images))
		for i, img := range images {
			name := img.Name
			if i == 0 {
				name += " (primary)"
			}
			names = append(names, name)
		}
		b.WriteString(dimStyle.Render("  staged: "+strings.Join(names, ", ")) + "\n")
	}
	if m.stageErr != "" {
		b.WriteString(errStyle.Render("  "+m.stageErr) + "\n")
	}

	submit := "[ List Item ]"
	if m.submitBusy {
		submit = "[ Listing... ]"
	}
	b.WriteString("\n" + m.sellRow(sellFieldSubmit, "", submit) + "\n\n")

	switch {
	case m.submitBusy:
		b.WriteString(dimStyle.Render("Submitting your listing...") + "\n")
	case m.submitErr != "":
		b.WriteString(errStyle.Render(m.submitErr) + "\n")
	case m.submitOK:
		b.WriteString(okStyle.Render("Item listed successfully! It will appear in the browse page shortly.") + "\n")
	}

	b.WriteString("\n" + dimStyle.Render("tab: next field · ←/→: change choice · enter: stage image / submit · ctrl+x: remove last image · 1: browse"))
	return b.String()
}

// sellRow marks the focused field.
func (m Model) sellRow(field int, label, value string) string {
	marker := "  "
	if m.sellFocus == field {
		marker = titleStyle.Render("> ")
	}
	if label == "" {
		return marker + value
	}
	return fmt.Sprintf("%s%-12s %s", marker, label+":", value)
}

func (m Model) categoryLabel() string {
	if m.categoryPick == 0 || m.categoryPick > len(m.categories) {
		return dimStyle.Render("none")
	}
	return m.categories[m.categoryPick-1].Name
}

func (m Model) conditionLabel() string {
	if m.conditionIdx == 0 {
		return dimStyle.Render("select condition")
	}
	return draft.Conditions[m.conditionIdx-1]
}

func (m Model) campusLabel() string {
	if m.campusPick == 0 {
		return dimStyle.Render("select a campus")
	}
	return draft.Campuses[m.campusPick-1]
}

func (m Model) viewProfile() string {
	current := m.store.Current()
	if current == nil {
		return dimStyle.Render("Not logged in.")
	}

	user := current.User
	lines := []string{
		headerStyle.Render("Profile"),
		"",
		fmt.Sprintf("Name:       %s %s", user.FirstName, user.LastName),
		fmt.Sprintf("Email:      %s", user.Email),
		fmt.Sprintf("University: %s", orDash(user.University)),
		fmt.Sprintf("Role:       %s", user.Role),
	}

	return panelStyle.Render(strings.Join(lines, "\n")) + "\n\n" +
		dimStyle.Render("1: browse · 2: sell · ctrl+l: log out")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 3 {
		return s[:n]
	}
	return s[:n-3] + "..."
}
