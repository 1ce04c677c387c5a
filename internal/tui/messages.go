package tui

import (
	"github.com/MKhiriev/go-algo-wallet/models"
)

type eventsLoadedMsg struct {
	events []models.PendingClientEvent
	err    error
}

type sessionsLoadedMsg struct {
	sessions []models.Session
	err      error
}

type accountsLoadedMsg struct {
	accounts []models.Account
	err      error
}

type decisionDoneMsg struct {
	err error
}

type sessionsRemovedMsg struct {
	err error
}

type notificationMsg struct {
	notification models.UINotification
}

type copiedMsg struct{}

type clearStatusMsg struct{}
