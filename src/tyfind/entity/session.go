// Package entity contains the domain types for the tyfind daemon.
package entity

import (
	"time"

	"github.com/gofrs/uuid"
	"go.lsp.dev/jsonrpc2"
)

type keyType string

// SessionContextKey indicates the key to be used to identify the session UUID
// in the context.
const SessionContextKey keyType = "SessionUUID"

// Session represents a single CLI connection to the daemon. The CLI opens one
// connection per request, so sessions are short-lived; they exist to tie
// in-flight work to a connection and to drive the idle tracker.
type Session struct {
	UUID    uuid.UUID      `json:"uuid" zap:"uuid"`
	Conn    *jsonrpc2.Conn `json:"-" zap:"-"`
	Started time.Time      `json:"started" zap:"started"`
}
