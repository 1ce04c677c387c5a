// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-algo-wallet/models"
)

const surfaceIDHeader = "X-Surface-ID"

type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpDaemonAdapter struct {
	client *resty.Client
}

func NewHTTPDaemonAdapter(cfg HTTPClientConfig) DaemonAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://127.0.0.1:8547"
	}
	if cfg.Timeout <= 0 {
		// long-polls need headroom over the daemon's 25s poll window
		cfg.Timeout = 40 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpDaemonAdapter{client: cli}
}

func (h *httpDaemonAdapter) RegisterWindow(ctx context.Context, windowID, kind string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"id": windowID, "kind": kind}).
		Post("/api/ui/windows")
	if err != nil {
		return fmt.Errorf("register window request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpDaemonAdapter) ReportWindowClosed(ctx context.Context, windowID string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Post("/api/ui/windows/" + windowID + "/closed")
	if err != nil {
		return fmt.Errorf("report window closed request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpDaemonAdapter) PollNotification(ctx context.Context, surfaceID string) (models.UINotification, bool, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader(surfaceIDHeader, surfaceID).
		Get("/api/ui/notifications")
	if err != nil {
		return models.UINotification{}, false, fmt.Errorf("poll notifications request: %w", err)
	}
	if resp.StatusCode() == http.StatusNoContent {
		return models.UINotification{}, false, nil
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UINotification{}, false, err
	}

	var notification models.UINotification
	if err = json.Unmarshal(resp.Body(), &notification); err != nil {
		return models.UINotification{}, false, fmt.Errorf("decode notification: %w", err)
	}
	return notification, true, nil
}

func (h *httpDaemonAdapter) ListPendingEvents(ctx context.Context) ([]models.PendingClientEvent, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/ui/events")
	if err != nil {
		return nil, fmt.Errorf("list events request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var events []models.PendingClientEvent
	if err = json.Unmarshal(resp.Body(), &events); err != nil {
		return nil, fmt.Errorf("decode events: %w", err)
	}
	return events, nil
}

func (h *httpDaemonAdapter) ApproveEvent(ctx context.Context, requestID string, decision EventDecision) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(decision).
		Post("/api/ui/events/" + requestID + "/approve")
	if err != nil {
		return fmt.Errorf("approve event request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpDaemonAdapter) RejectEvent(ctx context.Context, requestID string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(struct{}{}).
		Post("/api/ui/events/" + requestID + "/reject")
	if err != nil {
		return fmt.Errorf("reject event request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpDaemonAdapter) ListSessions(ctx context.Context) ([]models.Session, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/ui/sessions")
	if err != nil {
		return nil, fmt.Errorf("list sessions request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var sessions []models.Session
	if err = json.Unmarshal(resp.Body(), &sessions); err != nil {
		return nil, fmt.Errorf("decode sessions: %w", err)
	}
	return sessions, nil
}

func (h *httpDaemonAdapter) RemoveSessions(ctx context.Context, ids []string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string][]string{"ids": ids}).
		Delete("/api/ui/sessions")
	if err != nil {
		return fmt.Errorf("remove sessions request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpDaemonAdapter) SetPassword(ctx context.Context, newPassword, currentPassword string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{
			"newPassword":     newPassword,
			"currentPassword": currentPassword,
		}).
		Post("/api/ui/vault/password")
	if err != nil {
		return fmt.Errorf("set password request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpDaemonAdapter) VerifyPassword(ctx context.Context, password string) (bool, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"password": password}).
		Post("/api/ui/vault/verify")
	if err != nil {
		return false, fmt.Errorf("verify password request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return false, err
	}

	var result struct {
		Valid bool `json:"valid"`
	}
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return false, fmt.Errorf("decode verify result: %w", err)
	}
	return result.Valid, nil
}

func (h *httpDaemonAdapter) ListAccounts(ctx context.Context) ([]models.Account, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/ui/accounts")
	if err != nil {
		return nil, fmt.Errorf("list accounts request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var accounts []models.Account
	if err = json.Unmarshal(resp.Body(), &accounts); err != nil {
		return nil, fmt.Errorf("decode accounts: %w", err)
	}
	return accounts, nil
}

func (h *httpDaemonAdapter) CreateAccount(ctx context.Context, req CreateAccountRequest) (models.Account, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/ui/accounts")
	if err != nil {
		return models.Account{}, fmt.Errorf("create account request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Account{}, err
	}

	var account models.Account
	if err = json.Unmarshal(resp.Body(), &account); err != nil {
		return models.Account{}, fmt.Errorf("decode account: %w", err)
	}
	return account, nil
}

func (h *httpDaemonAdapter) ExportMnemonic(ctx context.Context, address, password string) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"password": password}).
		Post("/api/ui/accounts/" + address + "/mnemonic")
	if err != nil {
		return "", fmt.Errorf("export mnemonic request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var result struct {
		Mnemonic string `json:"mnemonic"`
	}
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return "", fmt.Errorf("decode mnemonic result: %w", err)
	}
	return result.Mnemonic, nil
}

func (h *httpDaemonAdapter) RemoveAccount(ctx context.Context, address string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Delete("/api/ui/accounts/" + address)
	if err != nil {
		return fmt.Errorf("remove account request: %w", err)
	}
	return mapHTTPError(resp)
}
