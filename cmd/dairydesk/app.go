// Package main is the dairydesk terminal client. This file implements the
// interactive view-state machine: which screen is shown, how navigation
// moves between screens, and how async backend responses flow back in.
package main

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"dairydesk/cmd/dairydesk/ui"
	"dairydesk/internal/api"
	"dairydesk/internal/config"
	"dairydesk/internal/dashboard"
	"dairydesk/internal/session"
)

// view identifies the screen currently shown.
type view int

const (
	viewLogin view = iota
	viewRegister
	viewDashboard
	viewFarms
	viewAddFarm
	viewCattle
	viewAddCattle
	viewBuyMilk
)

// Async messages. Load results carry the generation they were issued under;
// results from a superseded generation are discarded so a torn-down screen
// never updates state.
type (
	bootMsg     struct{}
	authDoneMsg struct {
		resp *api.AuthResponse
	}
	ownerDashMsg struct {
		seq  int
		dash *dashboard.OwnerDashboard
	}
	workerDashMsg struct {
		seq  int
		dash *dashboard.WorkerDashboard
	}
	buyerDashMsg struct {
		seq  int
		dash *dashboard.BuyerDashboard
	}
	farmsLoadedMsg struct {
		seq   int
		farms []api.Farm
	}
	cattleLoadedMsg struct {
		seq    int
		cattle []api.Cattle
	}
	farmSavedMsg struct {
		farm *api.Farm
	}
	cattleSavedMsg struct {
		animal *api.Cattle
	}
	orderPlacedMsg struct {
		order *api.Order
	}
	loadErrMsg struct {
		seq int
		err error
	}
	formErrMsg struct {
		err error
	}
)

type appModel struct {
	cfg       *config.Config
	client    *api.Client
	store     *session.Store
	assembler *dashboard.Assembler
	styles    ui.Styles
	logger    *zap.Logger

	view     view
	width    int
	height   int
	spinner  spinner.Model
	loading  bool
	errText  string
	notice   string
	showHelp bool

	// loadSeq is bumped on every navigation or reload; in-flight results
	// tagged with an older value are stale.
	loadSeq int

	historyDays int
	owner       *dashboard.OwnerDashboard
	worker      *dashboard.WorkerDashboard
	buyer       *dashboard.BuyerDashboard

	farms      []api.Farm
	farmCursor int
	cattle     []api.Cattle

	loginForm    form
	registerForm form
	farmForm     form
	cattleForm   form
	buyForm      form
}

func newApp(cfg *config.Config, client *api.Client, store *session.Store, logger *zap.Logger) appModel {
	styles := ui.StylesFor(cfg.Theme)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Prompt

	m := appModel{
		cfg:          cfg,
		client:       client,
		store:        store,
		assembler:    dashboard.New(client, logger),
		styles:       styles,
		logger:       logger,
		spinner:      sp,
		historyDays:  7,
		loginForm:    newLoginForm(styles),
		registerForm: newRegisterForm(styles),
		farmForm:     newFarmForm(styles),
		cattleForm:   newCattleForm(styles),
		buyForm:      newBuyForm(styles),
	}

	// Initial view is derived once from the persisted session.
	if store.Authenticated() {
		m.view = viewDashboard
	} else {
		m.view = viewLogin
	}
	return m
}

func (m appModel) Init() tea.Cmd {
	if m.view == viewDashboard {
		// Model mutation has to happen in Update, so boot via a message.
		return tea.Batch(textinput.Blink, func() tea.Msg { return bootMsg{} })
	}
	return textinput.Blink
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case bootMsg:
		return m.enterAuthenticated()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case authDoneMsg:
		if err := m.store.SaveLogin(msg.resp.Token, msg.resp.User); err != nil {
			m.loading = false
			m.errText = err.Error()
			return m, nil
		}
		m.errText = ""
		m.loading = false
		m.loginForm.reset()
		m.registerForm.reset()
		return m.enterAuthenticated()

	case ownerDashMsg:
		if msg.seq != m.loadSeq {
			return m, nil
		}
		m.loading = false
		m.owner = msg.dash
		return m, nil

	case workerDashMsg:
		if msg.seq != m.loadSeq {
			return m, nil
		}
		m.loading = false
		m.worker = msg.dash
		return m, nil

	case buyerDashMsg:
		if msg.seq != m.loadSeq {
			return m, nil
		}
		m.loading = false
		m.buyer = msg.dash
		return m, nil

	case farmsLoadedMsg:
		if msg.seq != m.loadSeq {
			return m, nil
		}
		m.loading = false
		m.farms = msg.farms
		if m.farmCursor >= len(m.farms) {
			m.farmCursor = 0
		}
		return m, nil

	case cattleLoadedMsg:
		if msg.seq != m.loadSeq {
			return m, nil
		}
		m.loading = false
		m.cattle = msg.cattle
		return m, nil

	case farmSavedMsg:
		// Write resolved; only now navigate.
		m.loading = false
		m.farmForm.reset()
		m.notice = "farm saved: " + msg.farm.Name
		m.view = viewFarms
		return m.startFarmsLoad()

	case cattleSavedMsg:
		m.loading = false
		m.cattleForm.reset()
		m.notice = "animal added: " + msg.animal.TagID
		m.view = viewCattle
		return m.startCattleLoad()

	case orderPlacedMsg:
		m.loading = false
		m.buyForm.reset()
		m.notice = "order placed, awaiting approval"
		m.view = viewDashboard
		return m.dashboardAfterNav()

	case loadErrMsg:
		if msg.seq != m.loadSeq {
			return m, nil
		}
		m.loading = false
		m.errText = userFacingError(msg.err)
		return m, nil

	case formErrMsg:
		m.loading = false
		m.errText = userFacingError(msg.err)
		return m, nil
	}

	return m, nil
}

// userFacingError maps the api error taxonomy onto display text.
func userFacingError(err error) string {
	if api.IsNetworkError(err) {
		return "cannot reach the server — check your connection"
	}
	if api.IsAuthError(err) {
		return "not authorized — try logging in again"
	}
	var ae *api.APIError
	if errors.As(err, &ae) {
		return ae.Message
	}
	return err.Error()
}

// enterAuthenticated routes to the right screen after login or startup:
// buyers land on the dashboard, farm roles without a selected farm land on
// the farm picker.
func (m appModel) enterAuthenticated() (appModel, tea.Cmd) {
	user := m.store.User()
	if user != nil && user.Role != api.RoleBuyer && m.store.ActiveFarm() == nil {
		m.view = viewFarms
		return m.startFarmsLoad()
	}
	m.view = viewDashboard
	return m.dashboardAfterNav()
}

func (m appModel) dashboardAfterNav() (appModel, tea.Cmd) {
	var cmd tea.Cmd
	m, cmd = m.startDashboardLoad()
	return m, tea.Batch(cmd, m.spinner.Tick)
}

// startDashboardLoad bumps the generation and kicks off the role dashboard
// fetch set.
func (m appModel) startDashboardLoad() (appModel, tea.Cmd) {
	user := m.store.User()
	if user == nil {
		return m, nil
	}
	m.loadSeq++
	m.loading = true
	m.errText = ""
	seq := m.loadSeq
	days := m.historyDays
	assembler := m.assembler
	farm := m.store.ActiveFarm()

	switch user.Role {
	case api.RoleFarmOwner:
		if farm == nil {
			m.loading = false
			return m, nil
		}
		farmID := farm.ID
		return m, func() tea.Msg {
			return ownerDashMsg{seq: seq, dash: assembler.LoadOwner(context.Background(), farmID, days)}
		}
	case api.RoleWorker:
		var farmID int64
		if farm != nil {
			farmID = farm.ID
		}
		return m, func() tea.Msg {
			return workerDashMsg{seq: seq, dash: assembler.LoadWorker(context.Background(), farmID)}
		}
	default:
		return m, func() tea.Msg {
			return buyerDashMsg{seq: seq, dash: assembler.LoadBuyer(context.Background())}
		}
	}
}

func (m appModel) startFarmsLoad() (appModel, tea.Cmd) {
	m.loadSeq++
	m.loading = true
	m.errText = ""
	seq := m.loadSeq
	client := m.client
	user := m.store.User()
	return m, tea.Batch(func() tea.Msg {
		var (
			farms []api.Farm
			err   error
		)
		if user != nil && user.Role == api.RoleBuyer {
			farms, err = client.ListFarms(context.Background())
		} else {
			farms, err = client.MyFarms(context.Background())
		}
		if err != nil {
			return loadErrMsg{seq: seq, err: err}
		}
		return farmsLoadedMsg{seq: seq, farms: farms}
	}, m.spinner.Tick)
}

func (m appModel) startCattleLoad() (appModel, tea.Cmd) {
	farm := m.store.ActiveFarm()
	if farm == nil {
		m.errText = "select a farm first"
		m.view = viewFarms
		return m.startFarmsLoad()
	}
	m.loadSeq++
	m.loading = true
	m.errText = ""
	seq := m.loadSeq
	client := m.client
	farmID := farm.ID
	return m, tea.Batch(func() tea.Msg {
		cattle, err := client.FarmCattle(context.Background(), farmID)
		if err != nil {
			return loadErrMsg{seq: seq, err: err}
		}
		return cattleLoadedMsg{seq: seq, cattle: cattle}
	}, m.spinner.Tick)
}
