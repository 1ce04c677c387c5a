// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// Method enumerates the provider protocol methods. The set is closed: the
// handler parses the discriminator once and dispatches on typed request
// variants from then on.
type Method string

const (
	MethodDisable          Method = "disable"
	MethodDiscover         Method = "discover"
	MethodEnable           Method = "enable"
	MethodSignMessage      Method = "sign_message"
	MethodSignTransactions Method = "sign_transactions"
)

// Valid reports whether m is one of the known protocol methods.
func (m Method) Valid() bool {
	switch m {
	case MethodDisable, MethodDiscover, MethodEnable, MethodSignMessage, MethodSignTransactions:
		return true
	}
	return false
}

// ClientInfo identifies the client application behind a request. Host is
// the trust anchor used for session lookups; the remaining fields are
// display metadata shown in approval prompts.
type ClientInfo struct {
	Host        string `json:"host"`
	AppName     string `json:"appName"`
	IconURL     string `json:"iconUrl,omitempty"`
	Description string `json:"description,omitempty"`
}

// RequestMessage is the inbound wire shape of one provider request. Params
// stays raw until the method discriminator has been validated, then is
// decoded into the matching typed params struct.
type RequestMessage struct {
	ID         string          `json:"id"`
	Method     Method          `json:"method"`
	ClientInfo ClientInfo      `json:"clientInfo"`
	Params     json.RawMessage `json:"params,omitempty"`
}

// ResponseMessage is the outbound wire shape. Exactly one ResponseMessage
// is delivered to the originating tab per inbound request id, carrying
// either Result or Error, never both.
type ResponseMessage struct {
	ID        string          `json:"id"`
	RequestID string          `json:"requestId"`
	Method    Method          `json:"method"`
	Result    json.RawMessage `json:"result,omitempty"`
	Error     *ProviderError  `json:"error,omitempty"`
}

// EnableParams are the parameters of an enable request. GenesisHash is
// optional; when empty the wallet's default network is used.
type EnableParams struct {
	GenesisHash string `json:"genesisHash,omitempty"`
}

// AccountSummary is one authorized account in an enable result.
type AccountSummary struct {
	Address string `json:"address"`
	Name    string `json:"name,omitempty"`
}

// EnableResult is the successful response payload of an enable request.
type EnableResult struct {
	Accounts    []AccountSummary `json:"accounts"`
	GenesisHash string           `json:"genesisHash"`
	GenesisID   string           `json:"genesisId"`
	SessionID   string           `json:"sessionId"`
}

// NetworkSummary is one supported network in a discover result.
type NetworkSummary struct {
	GenesisHash string   `json:"genesisHash"`
	GenesisID   string   `json:"genesisId"`
	Methods     []Method `json:"methods"`
}

// DiscoverResult is the response payload of a discover request: the
// wallet's identity plus its supported networks and methods.
type DiscoverResult struct {
	Host     string           `json:"host"`
	Icon     string           `json:"icon"`
	Name     string           `json:"name"`
	Networks []NetworkSummary `json:"networks"`
}

// SignMessageParams are the parameters of a sign_message request. Signer is
// optional; when empty the wallet picks any authorized signer for the host.
type SignMessageParams struct {
	Message string `json:"message"`
	Signer  string `json:"signer,omitempty"`
}

// SignMessageResult is the successful response payload of a sign_message
// request. Signature is base64-encoded.
type SignMessageResult struct {
	Signature string `json:"signature"`
	Signer    string `json:"signer"`
}

// TxnInput is one transaction of a sign_transactions request. Txn is the
// base64-encoded msgpack of an unsigned transaction. An empty Signers list
// marks the transaction as not-to-be-signed by this wallet (its result slot
// stays null); absent means the wallet signs with the sender's key.
type TxnInput struct {
	Txn     string    `json:"txn"`
	Signers *[]string `json:"signers,omitempty"`
}

// SignTransactionsParams are the parameters of a sign_transactions request.
type SignTransactionsParams struct {
	Txns []TxnInput `json:"txns"`
}

// SignTransactionsResult is the successful response payload of a
// sign_transactions request: one base64-encoded signed transaction or null
// per input index, order preserved.
type SignTransactionsResult []*string

// DisableParams are the parameters of a disable request. Both fields are
// optional filters: GenesisHash narrows removal to one network, SessionIDs
// to an explicit subset of sessions.
type DisableParams struct {
	GenesisHash string   `json:"genesisHash,omitempty"`
	SessionIDs  []string `json:"sessionIds,omitempty"`
}

// DisableResult is the response payload of a disable request, reporting
// which sessions were removed.
type DisableResult struct {
	GenesisHash string   `json:"genesisHash"`
	GenesisID   string   `json:"genesisId"`
	SessionIDs  []string `json:"sessionIds"`
}
