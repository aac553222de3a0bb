package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"dairydesk/cmd/dairydesk/ui"
	"dairydesk/internal/api"
)

func (m appModel) View() string {
	if m.showHelp {
		return ui.RenderHelp(m.styles, m.width)
	}

	var body string
	switch m.view {
	case viewLogin:
		body = m.loginView()
	case viewRegister:
		body = m.registerView()
	case viewDashboard:
		body = m.dashboardView()
	case viewFarms:
		body = m.farmsView()
	case viewAddFarm:
		body = m.formView("New farm", &m.farmForm)
	case viewCattle:
		body = m.cattleView()
	case viewAddCattle:
		body = m.formView("New animal", &m.cattleForm)
	case viewBuyMilk:
		body = m.buyView()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.headerView(),
		body,
		m.footerView(),
	)
}

func (m appModel) headerView() string {
	title := "dairydesk"
	if user := m.store.User(); user != nil {
		title += "  ·  " + user.Name + " (" + strings.ToLower(string(user.Role)) + ")"
		if farm := m.store.ActiveFarm(); farm != nil {
			title += "  ·  " + farm.Name
		}
	}
	return m.styles.Header.Render(title)
}

func (m appModel) footerView() string {
	var parts []string
	if m.loading {
		parts = append(parts, m.spinner.View()+" loading")
	}
	if m.errText != "" {
		parts = append(parts, m.styles.Error.Render(m.errText))
	} else if m.notice != "" {
		parts = append(parts, m.styles.Success.Render(m.notice))
	}
	switch m.view {
	case viewLogin:
		parts = append(parts, m.styles.Muted.Render("enter login · ctrl+r register · ctrl+c quit"))
	case viewRegister:
		parts = append(parts, m.styles.Muted.Render("enter register · esc back"))
	default:
		parts = append(parts, m.styles.Muted.Render("? help · q quit"))
	}
	return m.styles.Footer.Render(strings.Join(parts, "   "))
}

func (m appModel) loginView() string {
	card := m.styles.Title.Render("Sign in") + "\n\n" + m.loginForm.view(m.styles)
	return m.styles.Card.Render(card)
}

func (m appModel) registerView() string {
	card := m.styles.Title.Render("Create account") + "\n\n" + m.registerForm.view(m.styles)
	return m.styles.Card.Render(card)
}

func (m appModel) formView(title string, f *form) string {
	return m.styles.Card.Render(m.styles.Title.Render(title) + "\n\n" + f.view(m.styles))
}

func (m appModel) dashboardView() string {
	user := m.store.User()
	if user == nil {
		return m.styles.Muted.Render("no session")
	}
	switch user.Role {
	case api.RoleFarmOwner:
		return m.ownerDashboardView()
	case api.RoleWorker:
		return m.workerDashboardView()
	default:
		return m.buyerDashboardView()
	}
}

func (m appModel) ownerDashboardView() string {
	if m.store.ActiveFarm() == nil {
		return m.styles.Muted.Render("no farm selected — press f to pick one")
	}
	if m.owner == nil {
		return m.styles.Muted.Render("…")
	}
	d := m.owner

	stats := lipgloss.JoinHorizontal(lipgloss.Top,
		m.statCard("Morning", formatLiters(d.MorningLiters)),
		m.statCard("Evening", formatLiters(d.EveningLiters)),
		m.statCard("Herd", strconv.Itoa(d.HerdCount)),
		m.statCard("Active", strconv.Itoa(d.ActiveCattle)),
		m.statCard("Workers", strconv.Itoa(d.WorkerCount)),
	)

	history := ui.NewTable(fmt.Sprintf("Production — last %d days", m.historyDays), "Date", "Liters")
	history.Empty = "no production recorded"
	for _, day := range d.History {
		history.AddRow(day.Date, formatLiters(day.Liters))
	}

	return lipgloss.JoinVertical(lipgloss.Left, stats, "", history.View(m.styles))
}

func (m appModel) workerDashboardView() string {
	if m.worker == nil {
		return m.styles.Muted.Render("…")
	}
	d := m.worker

	farms := ui.NewTable("Assigned farms", "Farm", "Address")
	farms.Empty = "no farm assignments"
	for _, f := range d.Farms {
		farms.AddRow(f.Name, f.Address)
	}

	entries := ui.NewTable("Today's entries", "Tag", "Session", "Liters")
	entries.Empty = "nothing recorded today"
	for _, e := range d.TodayEntries {
		entries.AddRow(e.TagID, string(e.Session), formatLiters(e.Liters))
	}

	herd := ui.NewTable("Herd", "Tag", "Breed", "Status")
	herd.Empty = "no cattle on this farm"
	for _, c := range d.Cattle {
		herd.AddRow(c.TagID, c.Breed, string(c.Status))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		farms.View(m.styles), entries.View(m.styles), herd.View(m.styles))
}

func (m appModel) buyerDashboardView() string {
	if m.buyer == nil {
		return m.styles.Muted.Render("…")
	}
	d := m.buyer

	farms := ui.NewTable("Farms selling milk", "Farm", "Price/L", "Available")
	farms.Empty = "no farms are selling right now"
	for _, f := range d.Farms {
		if !f.IsSelling {
			continue
		}
		farms.AddRow(f.Name, formatPrice(f.PricePerLiter), formatLiters(f.AvailableMilk))
	}

	subs := ui.NewTable("Subscriptions", "Farm", "Liters", "Session", "Status")
	subs.Empty = "no subscriptions"
	for _, s := range d.Subscriptions {
		subs.AddRow(strconv.FormatInt(s.FarmID, 10), formatLiters(s.Quantity), string(s.Session), string(s.Status))
	}

	orders := ui.NewTable("Recent orders", "Farm", "Liters", "Date", "Status")
	orders.Empty = "no orders yet"
	for _, o := range d.Orders {
		orders.AddRow(strconv.FormatInt(o.FarmID, 10), formatLiters(o.Quantity), o.Date, string(o.Status))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		farms.View(m.styles), subs.View(m.styles), orders.View(m.styles))
}

func (m appModel) farmsView() string {
	table := ui.NewTable("Farms", "", "Farm", "Address", "Price/L", "Selling")
	table.Empty = "no farms"
	for i, f := range m.farms {
		marker := " "
		if i == m.farmCursor {
			marker = ">"
		}
		selling := "no"
		if f.IsSelling {
			selling = "yes"
		}
		table.AddRow(marker, f.Name, f.Address, formatPrice(f.PricePerLiter), selling)
	}

	hint := "enter select"
	if m.roleIs(api.RoleFarmOwner) {
		hint += " · a add farm"
	}
	if m.roleIs(api.RoleBuyer) {
		hint += " · b buy milk"
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		table.View(m.styles),
		m.styles.Muted.Render(hint))
}

func (m appModel) cattleView() string {
	table := ui.NewTable("Cattle", "Tag", "Breed", "Status", "Shed")
	table.Empty = "no cattle registered"
	for _, c := range m.cattle {
		shed := "—"
		if c.ShedID != 0 {
			shed = strconv.FormatInt(c.ShedID, 10)
		}
		table.AddRow(c.TagID, c.Breed, string(c.Status), shed)
	}

	hint := ""
	if m.roleIs(api.RoleFarmOwner) || m.roleIs(api.RoleWorker) {
		hint = m.styles.Muted.Render("a add animal")
	}
	return lipgloss.JoinVertical(lipgloss.Left, table.View(m.styles), hint)
}

func (m appModel) buyView() string {
	if len(m.farms) == 0 {
		return m.styles.Muted.Render("no farm selected")
	}
	farm := m.farms[m.farmCursor]
	title := fmt.Sprintf("Buy milk — %s (%s/L, %s available)",
		farm.Name, formatPrice(farm.PricePerLiter), formatLiters(farm.AvailableMilk))
	return m.styles.Card.Render(m.styles.Title.Render(title) + "\n\n" + m.buyForm.view(m.styles))
}

func (m appModel) statCard(label, value string) string {
	return m.styles.Card.Render(
		m.styles.Muted.Render(label) + "\n" + m.styles.Stat.Render(value))
}

func formatLiters(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + " L"
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
