package server

import (
	"net"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"

	"github.com/barisgit/compgen/internal/usage"
)

// RequestMeta carries the caller identity headers every tracked operation reads.
// Embed it in an operation input.
type RequestMeta struct {
	SessionID    string `header:"X-Session-ID" required:"false" doc:"Client session id, generated when absent"`
	UserID       string `header:"X-User-ID" required:"false" doc:"Authenticated user id"`
	ForwardedFor string `header:"X-Forwarded-For" required:"false"`
	RealIP       string `header:"X-Real-IP" required:"false"`
	UserAgent    string `header:"User-Agent" required:"false"`

	remoteAddr string
}

// Resolve fills what headers alone can't provide
func (m *RequestMeta) Resolve(ctx huma.Context) []error {
	m.remoteAddr = ctx.RemoteAddr()
	if strings.TrimSpace(m.SessionID) == "" {
		m.SessionID = uuid.NewString()
	}
	return nil
}

// ClientIP prefers the first forwarded address, then X-Real-IP, then the peer
func (m *RequestMeta) ClientIP() string {
	if m.ForwardedFor != "" {
		first, _, _ := strings.Cut(m.ForwardedFor, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	if ip := strings.TrimSpace(m.RealIP); ip != "" {
		return ip
	}
	if host, _, err := net.SplitHostPort(m.remoteAddr); err == nil {
		return host
	}
	return m.remoteAddr
}

// Event builds a usage event for this caller
func (m *RequestMeta) Event(toolID int64, action usage.Action, metadata map[string]any) usage.Event {
	event := usage.Event{
		ToolID:    toolID,
		SessionID: m.SessionID,
		Action:    action,
		Metadata:  metadata,
		IPAddress: m.ClientIP(),
		UserAgent: m.UserAgent,
	}
	if m.UserID != "" {
		userID := m.UserID
		event.UserID = &userID
	}
	return event
}
