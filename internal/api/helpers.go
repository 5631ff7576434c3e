package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/samandr77/billing/pkg/logger"
)

const (
	KindInvalidInput = "invalid_input"
	KindNotFound     = "not_found"
	KindConflict     = "conflict"
	KindInternal     = "internal"
)

type ErrorResponse struct {
	Kind      string `json:"kind"`
	Message   string `json:"message"`
	RequestID string `json:"requestId,omitempty"`
}

func SendJSONErr(ctx context.Context, w http.ResponseWriter, code int, kind string, originErr error, msgToSend string) {
	if originErr != nil {
		slog.ErrorContext(ctx, "api error", "error", originErr.Error(), "kind", kind)
	}

	SendJSON(ctx, w, code, ErrorResponse{
		Kind:      kind,
		Message:   msgToSend,
		RequestID: logger.RequestIDFromCtx(ctx),
	})
}

func SendJSON(ctx context.Context, w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		slog.ErrorContext(ctx, "encode response", "error", err)
	}
}
