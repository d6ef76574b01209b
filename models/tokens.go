// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Credentials is the username/password pair supplied once when the datafeed
// client is constructed. The client keeps its own copy and never mutates it.
type Credentials struct {
	Username string
	Password string
}

// Tokens is the session pair issued by the Broadcast authentication service.
//
// It is created by login, overwritten by a successful token refresh and kept
// for the lifetime of the client. Logout invalidates the pair server-side but
// does not clear it locally.
type Tokens struct {
	// Token is the short-lived bearer token sent as
	// "Authorization: Bearer <token>".
	Token string `json:"token"`

	// RefreshToken is exchanged for a new pair without re-sending the
	// password.
	RefreshToken string `json:"refreshToken"`
}

// Valid reports whether both halves of the pair are present.
func (t Tokens) Valid() bool {
	return t.Token != "" && t.RefreshToken != ""
}

// LoginRequest is the wire body of POST Authentication/v1/login.
type LoginRequest struct {
	// ApplicationID is always [DatafeedApplicationID].
	ApplicationID string `json:"applicationId"`
	Login         string `json:"login"`
	Password      string `json:"password"`
}

// DatafeedApplicationID identifies this client to the authentication service.
const DatafeedApplicationID = "datafeed"

// NewLoginRequest builds the login body for the given credentials.
func NewLoginRequest(username, password string) LoginRequest {
	return LoginRequest{
		ApplicationID: DatafeedApplicationID,
		Login:         username,
		Password:      password,
	}
}

// RefreshRequest is the wire body of POST Authentication/v1/refresh.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
	Token        string `json:"token"`
}

// RefreshStatus describes a successful token refresh. Failed refreshes are
// signalled by the boolean returned next to it, never by this struct.
type RefreshStatus struct {
	Status  int  `json:"status"`
	Success bool `json:"success"`
}
