// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Payload is a decoded provider JSON object. Its shape is owned by the remote
// service and is passed through untouched. Only object bodies are accepted;
// every Broadcast endpoint answers with one.
type Payload map[string]any

// FailurePayload builds the soft-fail shape {"success": false, "message": ...}
// returned instead of an error by soft-fail read paths.
func FailurePayload(err error) Payload {
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	return Payload{"success": false, "message": msg}
}

// Failed reports whether p carries "success": false.
func (p Payload) Failed() bool {
	success, ok := p["success"].(bool)
	return ok && !success
}

// Message returns the "message" field, or an empty string if there is none.
func (p Payload) Message() string {
	msg, _ := p["message"].(string)
	return msg
}
