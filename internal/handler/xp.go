// Package handler provides HTTP handlers for the XP ledger service.
package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/lifeos-app/xp-platform/internal/events"
	"github.com/lifeos-app/xp-platform/internal/ledger"
	"github.com/lifeos-app/xp-platform/internal/model"
	"github.com/lifeos-app/xp-platform/pkg/logger"
	"github.com/lifeos-app/xp-platform/pkg/metrics"
)

// XPHandler handles XP claim requests.
type XPHandler struct {
	store     ledger.Store
	publisher *events.Publisher
	logger    *logger.Logger
}

// NewXPHandler creates a new XP handler. publisher may be nil when NATS is
// not configured.
func NewXPHandler(store ledger.Store, publisher *events.Publisher, log *logger.Logger) *XPHandler {
	return &XPHandler{
		store:     store,
		publisher: publisher,
		logger:    log,
	}
}

// Claim handles POST /xp/claim
func (h *XPHandler) Claim(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.ClaimRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		metrics.RecordClaim("bad_request", 0)
		writeError(w, http.StatusBadRequest, "INVALID_BODY", "request body must be JSON")
		return
	}

	if req.UserID == "" {
		metrics.RecordClaim("bad_request", 0)
		writeError(w, http.StatusBadRequest, "INVALID_BODY", "userId is required")
		return
	}

	// initData is required but not verified yet; the signature check against
	// the bot token comes with real mini-app auth.
	if req.InitData == "" {
		metrics.RecordClaim("init_data_missing", 0)
		writeError(w, http.StatusBadRequest, "INIT_DATA_REQUIRED", "")
		return
	}

	amount := int64(model.DefaultClaimAmount)
	if req.Amount != nil {
		amount = *req.Amount
	}

	total, err := h.store.Add(ctx, req.UserID, amount)
	if err != nil {
		h.logger.Error("failed to add XP",
			zap.String("user_id", req.UserID),
			zap.Error(err),
		)
		metrics.RecordClaim("store_error", 0)
		writeError(w, http.StatusInternalServerError, "STORE_ERROR", "failed to record XP")
		return
	}

	h.logger.Info("xp awarded",
		zap.String("user_id", req.UserID),
		zap.String("task_id", req.TaskID),
		zap.Int64("amount", amount),
		zap.Int64("total", total),
	)
	metrics.RecordClaim("ok", amount)

	if h.publisher != nil {
		ev := model.AwardEvent{
			UserID:    req.UserID,
			TaskID:    req.TaskID,
			Amount:    amount,
			TotalXp:   total,
			AwardedAt: time.Now().UTC(),
		}
		if err := h.publisher.PublishAward(ctx, ev); err != nil {
			// Events are best-effort; the award already happened.
			h.logger.Warn("failed to publish award event",
				zap.String("user_id", req.UserID),
				zap.Error(err),
			)
		}
	}

	writeJSON(w, http.StatusOK, model.ClaimResponse{
		Ok:        true,
		AwardedXp: amount,
		TotalXp:   total,
	})
}
