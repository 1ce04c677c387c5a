// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-algo-wallet/internal/app"
	"github.com/MKhiriev/go-algo-wallet/internal/logger"
	"github.com/MKhiriev/go-algo-wallet/internal/service"
	"github.com/MKhiriev/go-algo-wallet/internal/store"
	"github.com/MKhiriev/go-algo-wallet/models"
)

type setPasswordRequest struct {
	NewPassword     string `json:"newPassword"`
	CurrentPassword string `json:"currentPassword,omitempty"`
}

type verifyPasswordRequest struct {
	Password string `json:"password"`
}

type verifyPasswordResponse struct {
	Valid bool `json:"valid"`
}

// createAccountRequest covers every way an account enters the wallet. At
// most one of Mnemonic, PrivateKey and Address may be set; with none set a
// fresh account is generated.
type createAccountRequest struct {
	Name       string `json:"name,omitempty"`
	Password   string `json:"password,omitempty"`
	Mnemonic   string `json:"mnemonic,omitempty"`
	PrivateKey string `json:"privateKey,omitempty"` // hex-encoded seed
	Address    string `json:"address,omitempty"`    // watch-only account
}

type exportMnemonicRequest struct {
	Password string `json:"password"`
}

type exportMnemonicResponse struct {
	Mnemonic string `json:"mnemonic"`
}

func (h *Handler) setPassword(w http.ResponseWriter, r *http.Request) {
	var body setPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}
	if body.NewPassword == "" {
		http.Error(w, app.MsgNewPasswordRequired, http.StatusBadRequest)
		return
	}

	if err := h.services.VaultService.SetPassword(r.Context(), body.NewPassword, body.CurrentPassword); err != nil {
		h.writeVaultError(w, logger.FromRequest(r), err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) verifyPassword(w http.ResponseWriter, r *http.Request) {
	var body verifyPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	valid, err := h.services.VaultService.VerifyPassword(r.Context(), body.Password)
	if err != nil {
		h.writeVaultError(w, logger.FromRequest(r), err)
		return
	}

	respondJSON(w, http.StatusOK, verifyPasswordResponse{Valid: valid})
}

func (h *Handler) listAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.services.VaultService.ListAccounts(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("listing accounts failed")
		http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, accounts)
}

func (h *Handler) createAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body createAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	sources := 0
	for _, set := range []bool{body.Mnemonic != "", body.PrivateKey != "", body.Address != ""} {
		if set {
			sources++
		}
	}
	if sources > 1 {
		http.Error(w, "at most one of mnemonic, privateKey and address may be set", http.StatusBadRequest)
		return
	}

	var (
		account models.Account
		err     error
	)
	switch {
	case body.Address != "":
		account, err = h.services.VaultService.AddWatchAccount(ctx, body.Address, body.Name)
	case body.Mnemonic != "":
		account, err = h.services.VaultService.ImportAccountFromMnemonic(ctx, body.Mnemonic, body.Name, body.Password)
	case body.PrivateKey != "":
		var material []byte
		material, err = hex.DecodeString(body.PrivateKey)
		if err != nil {
			http.Error(w, "privateKey is not valid hex", http.StatusBadRequest)
			return
		}
		account, err = h.services.VaultService.SetPrivateKey(ctx, material, body.Name, body.Password)
	default:
		account, err = h.services.VaultService.GenerateAccount(ctx, body.Name, body.Password)
	}
	if err != nil {
		h.writeVaultError(w, logger.FromRequest(r), err)
		return
	}

	respondJSON(w, http.StatusCreated, account)
}

func (h *Handler) exportMnemonic(w http.ResponseWriter, r *http.Request) {
	address := chi.URLParam(r, "address")

	var body exportMnemonicRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	mnemonicPhrase, err := h.services.VaultService.ExportMnemonic(r.Context(), address, body.Password)
	if err != nil {
		h.writeVaultError(w, logger.FromRequest(r), err)
		return
	}

	respondJSON(w, http.StatusOK, exportMnemonicResponse{Mnemonic: mnemonicPhrase})
}

func (h *Handler) removeAccount(w http.ResponseWriter, r *http.Request) {
	address := chi.URLParam(r, "address")

	if err := h.services.VaultService.RemoveAccount(r.Context(), address); err != nil {
		h.writeVaultError(w, logger.FromRequest(r), err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) writeVaultError(w http.ResponseWriter, log *logger.Logger, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidPassword), errors.Is(err, service.ErrPasswordNotSet):
		http.Error(w, app.MsgInvalidWalletPassword, http.StatusUnauthorized)
	case errors.Is(err, service.ErrInvalidKeyMaterial):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, store.ErrAccountNotFound), errors.Is(err, store.ErrPrivateKeyNotFound):
		http.Error(w, app.MsgAccountNotFound, http.StatusNotFound)
	default:
		log.Err(err).Msg("vault operation failed")
		http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
	}
}
