package http

import (
	"net/http"

	"cakue/internal/core"
	mwauth "cakue/internal/middleware/auth"
)

type createAccountRequest struct {
	Name string           `json:"name"`
	Type core.AccountType `json:"type"`
}

type createCategoryRequest struct {
	Name string               `json:"name"`
	Type core.TransactionType `json:"type"`
}

func (s *Server) handleListAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := s.deps.Ledger.Accounts(r.Context(), mwauth.UserIDFromContext(r.Context()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if accounts == nil {
		accounts = []core.Account{}
	}
	writeJSON(w, http.StatusOK, accounts)
}

func (s *Server) handleCreateAccount(w http.ResponseWriter, r *http.Request) {
	var req createAccountRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	account, err := s.deps.Ledger.CreateAccount(r.Context(), mwauth.UserIDFromContext(r.Context()), req.Name, req.Type)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, account)
}

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	accountID, err := pathID(r, "accountId")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	categories, err := s.deps.Ledger.Categories(r.Context(), mwauth.UserIDFromContext(r.Context()), accountID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if categories == nil {
		categories = []core.Category{}
	}
	writeJSON(w, http.StatusOK, categories)
}

func (s *Server) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	accountID, err := pathID(r, "accountId")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	var req createCategoryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	category, err := s.deps.Ledger.CreateCategory(r.Context(), mwauth.UserIDFromContext(r.Context()), accountID, req.Name, req.Type)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, category)
}

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	accountID, err := pathID(r, "accountId")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	txs, err := s.deps.Ledger.Transactions(r.Context(), mwauth.UserIDFromContext(r.Context()), accountID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if txs == nil {
		txs = []core.Transaction{}
	}
	writeJSON(w, http.StatusOK, txs)
}

// handleCreateTransaction ingests one transaction. A resubmitted local_id
// answers 200 with the original server_id instead of 201.
func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	var in core.TransactionInput
	if err := decodeJSON(w, r, &in); err != nil {
		writeServiceError(w, r, err)
		return
	}

	res, err := s.deps.Transactions.Ingest(r.Context(), mwauth.UserIDFromContext(r.Context()), in)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	status := http.StatusCreated
	if res.Duplicate {
		status = http.StatusOK
	}
	writeJSON(w, status, map[string]any{
		"id":        res.ServerID,
		"server_id": res.ServerID,
		"local_id":  res.LocalID,
		"duplicate": res.Duplicate,
	})
}
