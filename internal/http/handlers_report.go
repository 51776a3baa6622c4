package http

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"cakue/internal/core"
	applog "cakue/internal/log"
	mwauth "cakue/internal/middleware/auth"
	"cakue/internal/report"
)

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	accountID, err := pathID(r, "accountId")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	start, end, err := parseRange(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	sum, err := s.deps.Reports.Summarize(r.Context(), mwauth.UserIDFromContext(r.Context()), accountID, start, end)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sum)
}

// handleReportPDF exports the summary of accountId, or of the user's first
// account when accountId is omitted, as a PDF attachment.
func (s *Server) handleReportPDF(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := mwauth.UserIDFromContext(ctx)

	start, end, err := parseRange(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	var accountID int64
	if raw := r.URL.Query().Get("accountId"); raw != "" {
		accountID, err = strconv.ParseInt(raw, 10, 64)
		if err != nil || accountID <= 0 {
			writeServiceError(w, r, core.ErrInvalidAccountID)
			return
		}
	} else {
		accountID, err = s.deps.Reports.DefaultAccountID(ctx, userID)
		if errors.Is(err, core.ErrNotFound) {
			writeError(w, http.StatusNotFound, "No account found")
			return
		}
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
	}

	sum, err := s.deps.Reports.Summarize(ctx, userID, accountID, start, end)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := s.deps.Renderer.Render(&buf, sum); err != nil {
		applog.NewStructuredLogger(applog.FromContext(ctx)).LogError(ctx, "PDF generation failed", err,
			applog.ComponentReport, applog.OpExport, applog.NewFields().WithUser(userID).WithAccount(accountID))
		writeError(w, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}

	w.Header().Set("Content-Type", report.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.Filename(start, end)))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
