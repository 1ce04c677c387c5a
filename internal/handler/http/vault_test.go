// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-algo-wallet/internal/app"
	"github.com/MKhiriev/go-algo-wallet/internal/service"
	"github.com/MKhiriev/go-algo-wallet/internal/store"
	"github.com/MKhiriev/go-algo-wallet/models"
)

// ─────────────────────────────────────────────
// setPassword
// ─────────────────────────────────────────────

func TestSetPassword_Initial(t *testing.T) {
	h, m := newTestHandler(t)

	m.vault.EXPECT().SetPassword(gomock.Any(), "hunter2", "").Return(nil)

	body := setPasswordRequest{NewPassword: "hunter2"}
	req := httptest.NewRequest(http.MethodPost, "/api/ui/vault/password", encodeBody(t, body))
	rec := httptest.NewRecorder()

	h.setPassword(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSetPassword_Change(t *testing.T) {
	h, m := newTestHandler(t)

	m.vault.EXPECT().SetPassword(gomock.Any(), "new-pass", "old-pass").Return(nil)

	body := setPasswordRequest{NewPassword: "new-pass", CurrentPassword: "old-pass"}
	req := httptest.NewRequest(http.MethodPost, "/api/ui/vault/password", encodeBody(t, body))
	rec := httptest.NewRecorder()

	h.setPassword(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSetPassword_EmptyNewPassword(t *testing.T) {
	h, _ := newTestHandler(t)

	body := setPasswordRequest{CurrentPassword: "old-pass"}
	req := httptest.NewRequest(http.MethodPost, "/api/ui/vault/password", encodeBody(t, body))
	rec := httptest.NewRecorder()

	h.setPassword(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), app.MsgNewPasswordRequired)
}

func TestSetPassword_WrongCurrentPassword(t *testing.T) {
	h, m := newTestHandler(t)

	m.vault.EXPECT().SetPassword(gomock.Any(), "new-pass", "wrong").
		Return(service.ErrInvalidPassword)

	body := setPasswordRequest{NewPassword: "new-pass", CurrentPassword: "wrong"}
	req := httptest.NewRequest(http.MethodPost, "/api/ui/vault/password", encodeBody(t, body))
	rec := httptest.NewRecorder()

	h.setPassword(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), app.MsgInvalidWalletPassword)
}

// ─────────────────────────────────────────────
// verifyPassword
// ─────────────────────────────────────────────

func TestVerifyPassword_Valid(t *testing.T) {
	h, m := newTestHandler(t)

	m.vault.EXPECT().VerifyPassword(gomock.Any(), "hunter2").Return(true, nil)

	body := verifyPasswordRequest{Password: "hunter2"}
	req := httptest.NewRequest(http.MethodPost, "/api/ui/vault/verify", encodeBody(t, body))
	rec := httptest.NewRecorder()

	h.verifyPassword(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got verifyPasswordResponse
	decodeBody(t, rec, &got)
	assert.True(t, got.Valid)
}

// A wrong password is a negative verification result, not an HTTP error.
func TestVerifyPassword_Invalid(t *testing.T) {
	h, m := newTestHandler(t)

	m.vault.EXPECT().VerifyPassword(gomock.Any(), "wrong").Return(false, nil)

	body := verifyPasswordRequest{Password: "wrong"}
	req := httptest.NewRequest(http.MethodPost, "/api/ui/vault/verify", encodeBody(t, body))
	rec := httptest.NewRecorder()

	h.verifyPassword(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got verifyPasswordResponse
	decodeBody(t, rec, &got)
	assert.False(t, got.Valid)
}

// ─────────────────────────────────────────────
// listAccounts
// ─────────────────────────────────────────────

func TestListAccounts_Success(t *testing.T) {
	h, m := newTestHandler(t)

	accounts := []models.Account{
		{Address: "ADDR1", Name: "main"},
		{Address: "ADDR2", Name: "savings"},
	}
	m.vault.EXPECT().ListAccounts(gomock.Any()).Return(accounts, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/ui/accounts", nil)
	rec := httptest.NewRecorder()

	h.listAccounts(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []models.Account
	decodeBody(t, rec, &got)
	require.Len(t, got, 2)
	assert.Equal(t, "ADDR1", got[0].Address)
}

// ─────────────────────────────────────────────
// createAccount
// ─────────────────────────────────────────────

func TestCreateAccount_Generate(t *testing.T) {
	h, m := newTestHandler(t)

	m.vault.EXPECT().
		GenerateAccount(gomock.Any(), "fresh", "hunter2").
		Return(models.Account{Address: "NEWADDR", Name: "fresh"}, nil)

	body := createAccountRequest{Name: "fresh", Password: "hunter2"}
	req := httptest.NewRequest(http.MethodPost, "/api/ui/accounts", encodeBody(t, body))
	rec := httptest.NewRecorder()

	h.createAccount(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got models.Account
	decodeBody(t, rec, &got)
	assert.Equal(t, "NEWADDR", got.Address)
}

func TestCreateAccount_FromMnemonic(t *testing.T) {
	h, m := newTestHandler(t)

	m.vault.EXPECT().
		ImportAccountFromMnemonic(gomock.Any(), "word word word", "imported", "hunter2").
		Return(models.Account{Address: "IMPORTED"}, nil)

	body := createAccountRequest{Name: "imported", Password: "hunter2", Mnemonic: "word word word"}
	req := httptest.NewRequest(http.MethodPost, "/api/ui/accounts", encodeBody(t, body))
	rec := httptest.NewRecorder()

	h.createAccount(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateAccount_FromPrivateKey(t *testing.T) {
	h, m := newTestHandler(t)

	seed := make([]byte, 32)
	for i := range seed {
		seed[i] = byte(i)
	}
	m.vault.EXPECT().
		SetPrivateKey(gomock.Any(), seed, "restored", "hunter2").
		Return(models.Account{Address: "RESTORED"}, nil)

	body := createAccountRequest{
		Name:       "restored",
		Password:   "hunter2",
		PrivateKey: hex.EncodeToString(seed),
	}
	req := httptest.NewRequest(http.MethodPost, "/api/ui/accounts", encodeBody(t, body))
	rec := httptest.NewRecorder()

	h.createAccount(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateAccount_WatchOnly(t *testing.T) {
	h, m := newTestHandler(t)

	m.vault.EXPECT().
		AddWatchAccount(gomock.Any(), "WATCHADDR", "watched").
		Return(models.Account{Address: "WATCHADDR"}, nil)

	body := createAccountRequest{Name: "watched", Address: "WATCHADDR"}
	req := httptest.NewRequest(http.MethodPost, "/api/ui/accounts", encodeBody(t, body))
	rec := httptest.NewRecorder()

	h.createAccount(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateAccount_MultipleSources(t *testing.T) {
	h, _ := newTestHandler(t)

	body := createAccountRequest{Mnemonic: "word word word", Address: "WATCHADDR"}
	req := httptest.NewRequest(http.MethodPost, "/api/ui/accounts", encodeBody(t, body))
	rec := httptest.NewRecorder()

	h.createAccount(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "at most one of")
}

func TestCreateAccount_InvalidHexKey(t *testing.T) {
	h, _ := newTestHandler(t)

	body := createAccountRequest{PrivateKey: "not-hex!"}
	req := httptest.NewRequest(http.MethodPost, "/api/ui/accounts", encodeBody(t, body))
	rec := httptest.NewRecorder()

	h.createAccount(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "not valid hex")
}

func TestCreateAccount_InvalidKeyMaterial(t *testing.T) {
	h, m := newTestHandler(t)

	m.vault.EXPECT().
		SetPrivateKey(gomock.Any(), gomock.Any(), "", "").
		Return(models.Account{}, service.ErrInvalidKeyMaterial)

	body := createAccountRequest{PrivateKey: "0badc0de"}
	req := httptest.NewRequest(http.MethodPost, "/api/ui/accounts", encodeBody(t, body))
	rec := httptest.NewRecorder()

	h.createAccount(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateAccount_InvalidJSON(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/ui/accounts", strings.NewReader(`{`))
	rec := httptest.NewRecorder()

	h.createAccount(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// exportMnemonic
// ─────────────────────────────────────────────

func TestExportMnemonic_Success(t *testing.T) {
	h, m := newTestHandler(t)

	m.vault.EXPECT().
		ExportMnemonic(gomock.Any(), "ADDR1", "hunter2").
		Return("abandon ability able", nil)

	router := h.Init()
	body := exportMnemonicRequest{Password: "hunter2"}
	req := httptest.NewRequest(http.MethodPost, "/api/ui/accounts/ADDR1/mnemonic", encodeBody(t, body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got exportMnemonicResponse
	decodeBody(t, rec, &got)
	assert.Equal(t, "abandon ability able", got.Mnemonic)
}

func TestExportMnemonic_WrongPassword(t *testing.T) {
	h, m := newTestHandler(t)

	m.vault.EXPECT().
		ExportMnemonic(gomock.Any(), "ADDR1", "wrong").
		Return("", service.ErrInvalidPassword)

	router := h.Init()
	body := exportMnemonicRequest{Password: "wrong"}
	req := httptest.NewRequest(http.MethodPost, "/api/ui/accounts/ADDR1/mnemonic", encodeBody(t, body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestExportMnemonic_UnknownAccount(t *testing.T) {
	h, m := newTestHandler(t)

	m.vault.EXPECT().
		ExportMnemonic(gomock.Any(), "GHOST", "hunter2").
		Return("", store.ErrPrivateKeyNotFound)

	router := h.Init()
	body := exportMnemonicRequest{Password: "hunter2"}
	req := httptest.NewRequest(http.MethodPost, "/api/ui/accounts/GHOST/mnemonic", encodeBody(t, body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), app.MsgAccountNotFound)
}

// ─────────────────────────────────────────────
// removeAccount
// ─────────────────────────────────────────────

func TestRemoveAccount_Success(t *testing.T) {
	h, m := newTestHandler(t)

	m.vault.EXPECT().RemoveAccount(gomock.Any(), "ADDR1").Return(nil)

	router := h.Init()
	req := httptest.NewRequest(http.MethodDelete, "/api/ui/accounts/ADDR1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRemoveAccount_NotFound(t *testing.T) {
	h, m := newTestHandler(t)

	m.vault.EXPECT().RemoveAccount(gomock.Any(), "GHOST").Return(store.ErrAccountNotFound)

	router := h.Init()
	req := httptest.NewRequest(http.MethodDelete, "/api/ui/accounts/GHOST", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), app.MsgAccountNotFound)
}
