package main

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"dairydesk/internal/api"
	"dairydesk/internal/validate"
)

// handleKey routes key presses. Form screens give the focused text input
// first claim on printable keys; list screens use single-key navigation.
func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.showHelp {
		// Any key closes the help overlay.
		m.showHelp = false
		return m, nil
	}

	switch m.view {
	case viewLogin, viewRegister, viewAddFarm, viewAddCattle, viewBuyMilk:
		return m.handleFormKey(msg)
	default:
		return m.handleNavKey(msg)
	}
}

func (m appModel) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := m.activeForm()

	switch msg.Type {
	case tea.KeyEsc:
		m.errText = ""
		f.reset()
		switch m.view {
		case viewRegister:
			m.view = viewLogin
		case viewAddFarm:
			m.view = viewFarms
		case viewAddCattle:
			m.view = viewCattle
		case viewBuyMilk:
			m.view = viewFarms
		}
		return m, nil
	case tea.KeyTab, tea.KeyDown:
		f.next()
		return m, nil
	case tea.KeyShiftTab, tea.KeyUp:
		f.prev()
		return m, nil
	case tea.KeyEnter:
		return m.submit()
	}

	if m.view == viewLogin && msg.String() == "ctrl+r" {
		m.errText = ""
		m.view = viewRegister
		return m, nil
	}

	return m, f.update(msg)
}

// activeForm returns a pointer into the model copy; mutations stick because
// the copy is what Update returns.
func (m *appModel) activeForm() *form {
	switch m.view {
	case viewLogin:
		return &m.loginForm
	case viewRegister:
		return &m.registerForm
	case viewAddFarm:
		return &m.farmForm
	case viewBuyMilk:
		return &m.buyForm
	default:
		return &m.cattleForm
	}
}

func (m appModel) handleNavKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "?":
		m.showHelp = true
		return m, nil
	case "ctrl+l":
		if err := m.store.Clear(); err != nil {
			m.errText = err.Error()
			return m, nil
		}
		m.logger.Info("logged out, session cleared")
		fresh := newApp(m.cfg, m.client, m.store, m.logger)
		fresh.width, fresh.height = m.width, m.height
		return fresh, textinput.Blink
	case "esc":
		if m.view != viewDashboard {
			m.view = viewDashboard
			return m.dashboardAfterNav()
		}
		return m, nil
	case "r":
		switch m.view {
		case viewFarms:
			return m.startFarmsLoad()
		case viewCattle:
			return m.startCattleLoad()
		default:
			return m.dashboardAfterNav()
		}
	case "f":
		m.view = viewFarms
		return m.startFarmsLoad()
	case "c":
		m.view = viewCattle
		return m.startCattleLoad()
	case "7", "3":
		if m.view == viewDashboard && m.roleIs(api.RoleFarmOwner) {
			if msg.String() == "7" {
				m.historyDays = 7
			} else {
				m.historyDays = 30
			}
			return m.dashboardAfterNav()
		}
		return m, nil
	}

	if m.view == viewFarms {
		return m.handleFarmListKey(msg)
	}
	if m.view == viewCattle && msg.String() == "a" {
		if m.roleIs(api.RoleFarmOwner) || m.roleIs(api.RoleWorker) {
			m.errText = ""
			m.view = viewAddCattle
			return m, nil
		}
	}
	return m, nil
}

func (m appModel) handleFarmListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.farmCursor > 0 {
			m.farmCursor--
		}
		return m, nil
	case "down", "j":
		if m.farmCursor < len(m.farms)-1 {
			m.farmCursor++
		}
		return m, nil
	case "a":
		if m.roleIs(api.RoleFarmOwner) {
			m.errText = ""
			m.view = viewAddFarm
			return m, nil
		}
		return m, nil
	case "b":
		if m.roleIs(api.RoleBuyer) && len(m.farms) > 0 {
			m.errText = ""
			m.view = viewBuyMilk
			return m, nil
		}
		return m, nil
	case "enter":
		if len(m.farms) == 0 {
			return m, nil
		}
		farm := m.farms[m.farmCursor]
		if err := m.store.SetActiveFarm(&farm); err != nil {
			m.errText = err.Error()
			return m, nil
		}
		m.notice = "active farm: " + farm.Name
		m.view = viewDashboard
		return m.dashboardAfterNav()
	}
	return m, nil
}

func (m appModel) roleIs(role api.Role) bool {
	user := m.store.User()
	return user != nil && user.Role == role
}

// submit validates the active form and issues the write. Navigation away
// from the form happens only when the response message arrives.
func (m appModel) submit() (tea.Model, tea.Cmd) {
	switch m.view {
	case viewLogin:
		return m.submitLogin()
	case viewRegister:
		return m.submitRegister()
	case viewAddFarm:
		return m.submitFarm()
	case viewAddCattle:
		return m.submitCattle()
	case viewBuyMilk:
		return m.submitBuy()
	}
	return m, nil
}

func (m appModel) submitLogin() (tea.Model, tea.Cmd) {
	email := m.loginForm.value(loginEmail)
	password := m.loginForm.value(loginPassword)
	if err := validate.Email(email); err != nil {
		m.errText = err.Error()
		return m, nil
	}
	if err := validate.Required("password", password); err != nil {
		m.errText = err.Error()
		return m, nil
	}

	m.loading = true
	m.errText = ""
	client := m.client
	return m, tea.Batch(func() tea.Msg {
		resp, err := client.Login(context.Background(), api.LoginRequest{Email: email, Password: password})
		if err != nil {
			return formErrMsg{err: err}
		}
		return authDoneMsg{resp: resp}
	}, m.spinner.Tick)
}

func (m appModel) submitRegister() (tea.Model, tea.Cmd) {
	req := api.RegisterRequest{
		Name:        m.registerForm.value(regName),
		Email:       m.registerForm.value(regEmail),
		Password:    m.registerForm.value(regPassword),
		Role:        api.Role(m.registerForm.value(regRole)),
		FarmName:    m.registerForm.value(regFarmName),
		FarmAddress: m.registerForm.value(regFarmAddress),
	}
	if err := validate.Required("name", req.Name); err != nil {
		m.errText = err.Error()
		return m, nil
	}
	if err := validate.Email(req.Email); err != nil {
		m.errText = err.Error()
		return m, nil
	}
	if err := validate.Required("password", req.Password); err != nil {
		m.errText = err.Error()
		return m, nil
	}
	switch req.Role {
	case api.RoleFarmOwner, api.RoleWorker, api.RoleBuyer:
	default:
		m.errText = "role must be FARM_OWNER, WORKER or BUYER"
		return m, nil
	}

	m.loading = true
	m.errText = ""
	client := m.client
	return m, tea.Batch(func() tea.Msg {
		resp, err := client.Register(context.Background(), req)
		if err != nil {
			return formErrMsg{err: err}
		}
		return authDoneMsg{resp: resp}
	}, m.spinner.Tick)
}

func (m appModel) submitFarm() (tea.Model, tea.Cmd) {
	name := m.farmForm.value(farmName)
	address := m.farmForm.value(farmAddress)
	if err := validate.Required("name", name); err != nil {
		m.errText = err.Error()
		return m, nil
	}
	price, err := validate.PositiveQuantity(m.farmForm.value(farmPrice))
	if err != nil {
		m.errText = "price: " + err.Error()
		return m, nil
	}

	m.loading = true
	m.errText = ""
	client := m.client
	req := api.FarmRequest{Name: name, Address: address, PricePerLiter: price, IsSelling: true}
	return m, tea.Batch(func() tea.Msg {
		farm, err := client.CreateFarm(context.Background(), req)
		if err != nil {
			return formErrMsg{err: err}
		}
		return farmSavedMsg{farm: farm}
	}, m.spinner.Tick)
}

func (m appModel) submitCattle() (tea.Model, tea.Cmd) {
	farm := m.store.ActiveFarm()
	if farm == nil {
		m.errText = "select a farm first"
		return m, nil
	}
	tag := m.cattleForm.value(cattleTag)
	breed := m.cattleForm.value(cattleBreed)
	if err := validate.Required("tag id", tag); err != nil {
		m.errText = err.Error()
		return m, nil
	}
	if err := validate.Required("breed", breed); err != nil {
		m.errText = err.Error()
		return m, nil
	}
	var shedID int64
	if raw := m.cattleForm.value(cattleShed); raw != "" {
		id, err := validate.PositiveQuantity(raw)
		if err != nil {
			m.errText = "shed id: " + err.Error()
			return m, nil
		}
		shedID = int64(id)
	}

	m.loading = true
	m.errText = ""
	client := m.client
	req := api.CattleRequest{TagID: tag, Breed: breed, FarmID: farm.ID, ShedID: shedID}
	return m, tea.Batch(func() tea.Msg {
		animal, err := client.AddCattle(context.Background(), req)
		if err != nil {
			return formErrMsg{err: err}
		}
		return cattleSavedMsg{animal: animal}
	}, m.spinner.Tick)
}

func (m appModel) submitBuy() (tea.Model, tea.Cmd) {
	if len(m.farms) == 0 {
		m.errText = "no farm selected"
		return m, nil
	}
	farm := m.farms[m.farmCursor]

	quantity, err := validate.PositiveQuantity(m.buyForm.value(buyQuantity))
	if err != nil {
		m.errText = err.Error()
		return m, nil
	}
	sess := api.MilkSession(m.buyForm.value(buySession))
	if sess != api.SessionMorning && sess != api.SessionEvening {
		m.errText = "session must be MORNING or EVENING"
		return m, nil
	}
	date, err := validate.FutureDate(m.buyForm.value(buyDate), time.Now())
	if err != nil {
		m.errText = err.Error()
		return m, nil
	}
	// UX pre-check only; the backend stays authoritative and its rejection
	// still lands in the form as an error.
	if quantity > farm.AvailableMilk {
		m.errText = "farm only has " + formatLiters(farm.AvailableMilk) + " available"
		return m, nil
	}

	m.loading = true
	m.errText = ""
	client := m.client
	req := api.BuyMilkRequest{FarmID: farm.ID, Quantity: quantity, Session: sess, Date: date}
	return m, tea.Batch(func() tea.Msg {
		order, err := client.BuyMilk(context.Background(), req)
		if err != nil {
			return formErrMsg{err: err}
		}
		return orderPlacedMsg{order: order}
	}, m.spinner.Tick)
}
