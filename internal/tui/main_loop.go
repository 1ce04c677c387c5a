package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-algo-wallet/internal/adapter"
	"github.com/MKhiriev/go-algo-wallet/models"
)

type screen int

const (
	screenEvents screen = iota
	screenApprove
	screenSessions
	screenAccounts
)

type mainLoopModel struct {
	ctx    context.Context
	daemon adapter.DaemonAdapter

	currentScreen screen
	loading       bool
	submitting    bool
	status        string
	errMsg        string
	quitByUser    bool

	events   []models.PendingClientEvent
	eventIdx int

	approveTarget models.PendingClientEvent
	passwordInput textinput.Model

	sessions   []models.Session
	sessionIdx int

	accounts   []models.Account
	accountIdx int
}

func newMainLoopModel(ctx context.Context, daemon adapter.DaemonAdapter) mainLoopModel {
	passwordInput := textinput.New()
	passwordInput.Placeholder = "пароль кошелька"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return mainLoopModel{
		ctx:           ctx,
		daemon:        daemon,
		loading:       true,
		passwordInput: passwordInput,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return tea.Batch(m.loadEventsCmd(), m.loadAccountsCmd())
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeDaemonUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.events = msg.events
		if m.eventIdx >= len(m.events) {
			m.eventIdx = 0
		}
		return m, nil

	case sessionsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeDaemonUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.sessions = msg.sessions
		if m.sessionIdx >= len(m.sessions) {
			m.sessionIdx = 0
		}
		return m, nil

	case accountsLoadedMsg:
		if msg.err != nil {
			m.errMsg = humanizeDaemonUnavailableError(msg.err)
			return m, nil
		}
		m.accounts = msg.accounts
		if m.accountIdx >= len(m.accounts) {
			m.accountIdx = 0
		}
		return m, nil

	case decisionDoneMsg:
		m.submitting = false
		if msg.err != nil {
			if errors.Is(msg.err, adapter.ErrUnauthorized) {
				m.errMsg = "Неверный пароль"
				return m, nil
			}
			m.errMsg = humanizeDaemonUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = "Запрос обработан"
		m.currentScreen = screenEvents
		m.passwordInput.SetValue("")
		return m, tea.Batch(m.loadEventsCmd(), clearStatusLater())

	case sessionsRemovedMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeDaemonUnavailableError(msg.err)
			return m, nil
		}
		m.status = "Сессия отозвана"
		return m, tea.Batch(m.loadSessionsCmd(), clearStatusLater())

	case notificationMsg:
		switch msg.notification.Type {
		case models.NotificationEventsChanged:
			return m, m.loadEventsCmd()
		case models.NotificationSessionsChanged:
			return m, m.loadSessionsCmd()
		}
		return m, nil

	case copiedMsg:
		m.status = "Адрес скопирован"
		return m, clearStatusLater()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.currentScreen == screenApprove {
		var cmd tea.Cmd
		m.passwordInput, cmd = m.passwordInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m mainLoopModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitByUser = true
		return m, tea.Quit
	}

	switch m.currentScreen {
	case screenApprove:
		return m.handleApproveKey(msg)
	case screenSessions:
		return m.handleSessionsKey(msg)
	case screenAccounts:
		return m.handleAccountsKey(msg)
	default:
		return m.handleEventsKey(msg)
	}
}

func (m mainLoopModel) handleEventsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.quitByUser = true
		return m, tea.Quit
	case "up", "k":
		if m.eventIdx > 0 {
			m.eventIdx--
		}
	case "down", "j":
		if m.eventIdx < len(m.events)-1 {
			m.eventIdx++
		}
	case "s":
		m.loading = true
		return m, m.loadEventsCmd()
	case "tab":
		m.currentScreen = screenSessions
		m.loading = true
		return m, m.loadSessionsCmd()
	case "r":
		if len(m.events) == 0 || m.submitting {
			return m, nil
		}
		m.submitting = true
		return m, m.rejectCmd(m.events[m.eventIdx].ID)
	case "enter":
		if len(m.events) == 0 || m.submitting {
			return m, nil
		}
		event := m.events[m.eventIdx]
		if event.Type == models.MethodEnable {
			// enable needs no password, only the address grant
			m.submitting = true
			return m, m.approveEnableCmd(event.ID)
		}
		m.approveTarget = event
		m.currentScreen = screenApprove
		m.passwordInput.SetValue("")
		m.passwordInput.Focus()
		return m, textinput.Blink
	}
	return m, nil
}

func (m mainLoopModel) handleApproveKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.currentScreen = screenEvents
		m.errMsg = ""
		return m, nil
	case "enter":
		if m.submitting {
			return m, nil
		}
		password := strings.TrimSpace(m.passwordInput.Value())
		if password == "" {
			m.errMsg = "Введите пароль"
			return m, nil
		}
		m.submitting = true
		return m, m.approveSignCmd(m.approveTarget.ID, password)
	}

	var cmd tea.Cmd
	m.passwordInput, cmd = m.passwordInput.Update(msg)
	return m, cmd
}

func (m mainLoopModel) handleSessionsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.quitByUser = true
		return m, tea.Quit
	case "up", "k":
		if m.sessionIdx > 0 {
			m.sessionIdx--
		}
	case "down", "j":
		if m.sessionIdx < len(m.sessions)-1 {
			m.sessionIdx++
		}
	case "s":
		m.loading = true
		return m, m.loadSessionsCmd()
	case "d":
		if len(m.sessions) == 0 || m.submitting {
			return m, nil
		}
		m.submitting = true
		return m, m.removeSessionCmd(m.sessions[m.sessionIdx].ID)
	case "tab":
		m.currentScreen = screenAccounts
		return m, m.loadAccountsCmd()
	case "esc":
		m.currentScreen = screenEvents
		return m, m.loadEventsCmd()
	}
	return m, nil
}

func (m mainLoopModel) handleAccountsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.quitByUser = true
		return m, tea.Quit
	case "up", "k":
		if m.accountIdx > 0 {
			m.accountIdx--
		}
	case "down", "j":
		if m.accountIdx < len(m.accounts)-1 {
			m.accountIdx++
		}
	case "c":
		if len(m.accounts) == 0 {
			return m, nil
		}
		address := m.accounts[m.accountIdx].Address
		return m, func() tea.Msg {
			if err := clipboard.WriteAll(address); err != nil {
				return decisionDoneMsg{err: err}
			}
			return copiedMsg{}
		}
	case "tab", "esc":
		m.currentScreen = screenEvents
		return m, m.loadEventsCmd()
	}
	return m, nil
}

func (m mainLoopModel) loadEventsCmd() tea.Cmd {
	return func() tea.Msg {
		events, err := m.daemon.ListPendingEvents(m.ctx)
		return eventsLoadedMsg{events: events, err: err}
	}
}

func (m mainLoopModel) loadSessionsCmd() tea.Cmd {
	return func() tea.Msg {
		sessions, err := m.daemon.ListSessions(m.ctx)
		return sessionsLoadedMsg{sessions: sessions, err: err}
	}
}

func (m mainLoopModel) loadAccountsCmd() tea.Cmd {
	return func() tea.Msg {
		accounts, err := m.daemon.ListAccounts(m.ctx)
		return accountsLoadedMsg{accounts: accounts, err: err}
	}
}

// approveEnableCmd grants the connection to every wallet account.
func (m mainLoopModel) approveEnableCmd(requestID string) tea.Cmd {
	return func() tea.Msg {
		accounts, err := m.daemon.ListAccounts(m.ctx)
		if err != nil {
			return decisionDoneMsg{err: err}
		}
		addresses := make([]string, 0, len(accounts))
		for _, account := range accounts {
			addresses = append(addresses, account.Address)
		}
		err = m.daemon.ApproveEvent(m.ctx, requestID, adapter.EventDecision{Addresses: addresses})
		return decisionDoneMsg{err: err}
	}
}

func (m mainLoopModel) approveSignCmd(requestID, password string) tea.Cmd {
	return func() tea.Msg {
		err := m.daemon.ApproveEvent(m.ctx, requestID, adapter.EventDecision{Password: password})
		return decisionDoneMsg{err: err}
	}
}

func (m mainLoopModel) rejectCmd(requestID string) tea.Cmd {
	return func() tea.Msg {
		return decisionDoneMsg{err: m.daemon.RejectEvent(m.ctx, requestID)}
	}
}

func (m mainLoopModel) removeSessionCmd(sessionID string) tea.Cmd {
	return func() tea.Msg {
		return sessionsRemovedMsg{err: m.daemon.RemoveSessions(m.ctx, []string{sessionID})}
	}
}

func clearStatusLater() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func (m mainLoopModel) View() string {
	switch m.currentScreen {
	case screenApprove:
		return m.viewApprove()
	case screenSessions:
		return m.viewSessions()
	case screenAccounts:
		return m.viewAccounts()
	default:
		return m.viewEvents()
	}
}

func (m mainLoopModel) viewEvents() string {
	var b strings.Builder

	if m.status != "" {
		b.WriteString("OK: " + m.status + "\n\n")
	}
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render("Ошибка: "+m.errMsg) + "\n\n")
	}

	switch {
	case m.loading:
		b.WriteString("загрузка...")
	case len(m.events) == 0:
		b.WriteString("нет запросов, ожидающих решения")
	default:
		for i, event := range m.events {
			cursor := " "
			if i == m.eventIdx {
				cursor = ">"
			}
			b.WriteString(fmt.Sprintf("%s %s │ %s │ %s\n",
				cursor,
				fitText(event.Request.ClientInfo.Host, 30),
				methodLabel(event.Type),
				formatUnixMilli(event.CreatedAt),
			))
		}
	}

	return renderPage(
		"ЗАПРОСЫ НА ПОДТВЕРЖДЕНИЕ",
		strings.TrimRight(b.String(), "\n"),
		"enter: одобрить │ r: отклонить │ s: обновить │ tab: сессии │ q: выход",
	)
}

func (m mainLoopModel) viewApprove() string {
	var b strings.Builder

	b.WriteString("Источник: " + m.approveTarget.Request.ClientInfo.Host + "\n")
	b.WriteString("Операция: " + methodLabel(m.approveTarget.Type) + "\n\n")
	b.WriteString(m.passwordInput.View())
	if m.submitting {
		b.WriteString("\n\nподписание...")
	}
	if m.errMsg != "" {
		b.WriteString("\n\n" + errorStyle.Render("Ошибка: "+m.errMsg))
	}

	return renderPage(
		"ПОДТВЕРЖДЕНИЕ ОПЕРАЦИИ",
		strings.TrimRight(b.String(), "\n"),
		"enter: подтвердить │ esc: назад",
	)
}

func (m mainLoopModel) viewSessions() string {
	var b strings.Builder

	if m.status != "" {
		b.WriteString("OK: " + m.status + "\n\n")
	}
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render("Ошибка: "+m.errMsg) + "\n\n")
	}

	switch {
	case m.loading:
		b.WriteString("загрузка...")
	case len(m.sessions) == 0:
		b.WriteString("нет активных сессий")
	default:
		for i, session := range m.sessions {
			cursor := " "
			if i == m.sessionIdx {
				cursor = ">"
			}
			b.WriteString(fmt.Sprintf("%s %s │ %s │ адресов: %d\n",
				cursor,
				fitText(session.Host, 30),
				fitText(session.GenesisID, 14),
				len(session.AuthorizedAddresses),
			))
		}
	}

	return renderPage(
		"АКТИВНЫЕ СЕССИИ",
		strings.TrimRight(b.String(), "\n"),
		"d: отозвать │ s: обновить │ tab: аккаунты │ esc: запросы │ q: выход",
	)
}

func (m mainLoopModel) viewAccounts() string {
	var b strings.Builder

	if m.status != "" {
		b.WriteString("OK: " + m.status + "\n\n")
	}
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render("Ошибка: "+m.errMsg) + "\n\n")
	}

	if len(m.accounts) == 0 {
		b.WriteString("нет аккаунтов")
	} else {
		for i, account := range m.accounts {
			cursor := " "
			if i == m.accountIdx {
				cursor = ">"
			}
			name := account.Name
			if name == "" {
				name = "-"
			}
			b.WriteString(fmt.Sprintf("%s %s │ %s\n",
				cursor,
				fitText(account.Address, 20),
				fitText(name, 20),
			))
		}
	}

	return renderPage(
		"АККАУНТЫ",
		strings.TrimRight(b.String(), "\n"),
		"c: копировать адрес │ tab/esc: запросы │ q: выход",
	)
}

func methodLabel(method models.Method) string {
	switch method {
	case models.MethodEnable:
		return "подключение"
	case models.MethodSignTransactions:
		return "подпись транзакций"
	case models.MethodSignMessage:
		return "подпись сообщения"
	default:
		return string(method)
	}
}
