package goNativeAuth

import (
	"context"
	"time"
)

const (
	auditFlowSignIn        = "signin"
	auditFlowSignUp        = "signup"
	auditFlowResetPassword = "reset_password"
	auditFlowSilent        = "silent"
)

const (
	auditEventFlowStarted     = "flow_started"
	auditEventFlowCompleted   = "flow_completed"
	auditEventFlowFailed      = "flow_failed"
	auditEventCodeRequired    = "code_required"
	auditEventRedirect        = "redirect_required"
	auditEventUnknownResponse = "unknown_response"
	auditEventPollTimeout     = "poll_timeout"
	auditEventSilentCacheHit  = "silent_cache_hit"
	auditEventSilentRefresh   = "silent_refresh"
)

func (e *Engine) emitAudit(
	ctx context.Context,
	eventType string,
	flow string,
	username string,
	correlationID string,
	outcome string,
	success bool,
	err error,
	metadataBuilder func() map[string]string,
) {
	if e == nil || e.audit == nil {
		return
	}

	var metadata map[string]string
	if metadataBuilder != nil {
		metadata = metadataBuilder()
	}

	event := AuditEvent{
		Timestamp:     time.Now().UTC(),
		EventType:     eventType,
		Flow:          flow,
		Username:      username,
		CorrelationID: correlationID,
		Outcome:       outcome,
		Success:       success,
		Metadata:      metadata,
	}
	if err != nil {
		event.Error = err.Error()
	}

	e.audit.Emit(ctx, event)
}
