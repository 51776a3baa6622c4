package core

import "github.com/shopspring/decimal"

// TypeTotal is the aggregate of committed transactions of one type.
type TypeTotal struct {
	Type  TransactionType `json:"type"`
	Total decimal.Decimal `json:"total"`
	Count int64           `json:"count"`
}

// Summary is a report over an account and an inclusive date range.
type Summary struct {
	AccountID    int64         `json:"account_id"`
	StartDate    Date          `json:"start_date"`
	EndDate      Date          `json:"end_date"`
	ByType       []TypeTotal   `json:"summary"`
	Transactions []Transaction `json:"transactions"`
}

// ReportRow is one line of a rendered report.
type ReportRow struct {
	Date        Date
	Category    string
	Description string
	Type        TransactionType
	Amount      decimal.Decimal
}

// NoData reports an empty range. It is a valid result, not an error.
func (s Summary) NoData() bool {
	return len(s.Transactions) == 0 && len(s.ByType) == 0
}

func (s Summary) Total(t TransactionType) decimal.Decimal {
	for _, tt := range s.ByType {
		if tt.Type == t {
			return tt.Total
		}
	}
	return decimal.Zero
}

// Balance is income minus expense.
func (s Summary) Balance() decimal.Decimal {
	return s.Total(Income).Sub(s.Total(Expense))
}

func (s Summary) Rows() []ReportRow {
	rows := make([]ReportRow, 0, len(s.Transactions))
	for _, t := range s.Transactions {
		rows = append(rows, ReportRow{
			Date:        t.TransactionDate,
			Category:    t.CategoryName,
			Description: t.Description,
			Type:        t.Type,
			Amount:      t.Amount,
		})
	}
	return rows
}
