package auth

import (
	"context"

	"github.com/alexedwards/scs/v2"
)

const (
	flashTypeKey    = "flash_type"
	flashMessageKey = "flash_message"
)

// Flash is a one-time notification shown on the next rendered page.
type Flash struct {
	Type    string // "success", "danger", "info"
	Message string
}

// PutFlash stores a flash message in the session for the next request.
func PutFlash(ctx context.Context, sm *scs.SessionManager, typ, message string) {
	sm.Put(ctx, flashTypeKey, typ)
	sm.Put(ctx, flashMessageKey, message)
}

// PopFlash removes and returns the pending flash message, or nil.
func PopFlash(ctx context.Context, sm *scs.SessionManager) *Flash {
	msg := sm.PopString(ctx, flashMessageKey)
	typ := sm.PopString(ctx, flashTypeKey)
	if msg == "" {
		return nil
	}
	return &Flash{Type: typ, Message: msg}
}
