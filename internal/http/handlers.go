package http

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Cakue Backend API is running!"})
}

// handleHealth performs basic liveness check
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"uptime":    time.Since(s.started).Round(time.Second).String(),
	})
}

// handleReady pings the database and reports the outbox backlog.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	status := "ready"
	httpStatus := http.StatusOK
	checks := make(map[string]any)

	if s.deps.DB == nil {
		checks["database"] = "not_configured"
		status = "not_ready"
		httpStatus = http.StatusServiceUnavailable
	} else if err := s.deps.DB.Ping(ctx); err != nil {
		checks["database"] = fmt.Sprintf("failed: %v", err)
		status = "not_ready"
		httpStatus = http.StatusServiceUnavailable
	} else {
		checks["database"] = "ok"
	}

	if s.deps.Outbox != nil {
		if stats, err := s.deps.Outbox.SyncEventStats(ctx); err != nil {
			checks["outbox"] = fmt.Sprintf("failed: %v", err)
		} else {
			checks["outbox"] = map[string]int64{
				"pending":    stats.Pending,
				"processing": stats.Processing,
				"failed":     stats.Failed,
			}
		}
	}

	traceMetrics := s.tracer.GetMetrics()
	checks["http"] = map[string]int64{
		"requests_total":      traceMetrics.TotalRequests,
		"server_errors_total": traceMetrics.ServerErrors,
		"suspicious_total":    s.detector.SuspiciousRequests(),
		"rate_limited_total":  s.limiter.GetMetrics().TotalHits + s.loginLimiter.GetMetrics().TotalHits,
		"rate_limit_clients":  int64(s.limiter.ActiveClients()),
	}

	writeJSON(w, httpStatus, map[string]any{
		"status":    status,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"checks":    checks,
	})
}
