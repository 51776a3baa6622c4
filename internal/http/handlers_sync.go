package http

import (
	"net/http"

	"cakue/internal/core"
	mwauth "cakue/internal/middleware/auth"
)

type syncRequest struct {
	DeviceID     string                  `json:"device_id"`
	Transactions []core.TransactionInput `json:"transactions"`
}

// handleSyncTransactions reconciles an offline batch. Per-item failures are
// reported in the body with status 200.
func (s *Server) handleSyncTransactions(w http.ResponseWriter, r *http.Request) {
	var req syncRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}
	if req.Transactions == nil {
		writeServiceError(w, r, errMissingTransactions)
		return
	}

	result, err := s.deps.Sync.Reconcile(r.Context(), mwauth.UserIDFromContext(r.Context()), req.DeviceID, req.Transactions)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleSyncCheckpoint(w http.ResponseWriter, r *http.Request) {
	cp, err := s.deps.Sync.Checkpoint(r.Context(), mwauth.UserIDFromContext(r.Context()), r.URL.Query().Get("device_id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cp)
}
