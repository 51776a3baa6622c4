package core

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

const (
	Personal AccountType = "personal"
	Business AccountType = "business"
)

const (
	MaxDescriptionLength = 500
	MaxLocalIDLength     = 100
	dateLayout           = "2006-01-02"
)

type (
	TransactionType string
	AccountType     string

	Date struct {
		time.Time
	}

	User struct {
		ID    int64  `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}

	Account struct {
		ID     int64       `json:"id"`
		UserID int64       `json:"user_id"`
		Name   string      `json:"name"`
		Type   AccountType `json:"type"`
	}

	Category struct {
		ID        int64           `json:"id"`
		AccountID int64           `json:"account_id"`
		Name      string          `json:"name"`
		Type      TransactionType `json:"type"`
	}

	// Transaction is a committed row. ID is the server_id.
	Transaction struct {
		ID              int64           `json:"id"`
		LocalID         string          `json:"local_id,omitempty"`
		AccountID       int64           `json:"account_id"`
		CategoryID      int64           `json:"category_id"`
		CategoryName    string          `json:"category_name,omitempty"`
		Amount          decimal.Decimal `json:"amount"`
		Type            TransactionType `json:"type"`
		Description     string          `json:"description"`
		TransactionDate Date            `json:"transaction_date"`
		IsSynced        bool            `json:"is_synced"`
	}

	// TransactionInput is what a client submits, either alone or inside a sync batch.
	TransactionInput struct {
		LocalID         string          `json:"local_id,omitempty"`
		AccountID       int64           `json:"account_id"`
		CategoryID      int64           `json:"category_id"`
		Amount          decimal.Decimal `json:"amount"`
		Type            TransactionType `json:"type"`
		Description     string          `json:"description"`
		TransactionDate Date            `json:"transaction_date"`

		// decodeErr holds a field that could not be parsed so that a single bad
		// item does not fail the decoding of a whole batch.
		decodeErr error
	}

	// IngestResult is the outcome of ingesting one transaction. Duplicate is set
	// when the local_id was already committed and the existing row was returned.
	IngestResult struct {
		ServerID  int64  `json:"server_id"`
		LocalID   string `json:"local_id,omitempty"`
		Duplicate bool   `json:"duplicate"`
	}
)

func (t TransactionType) Valid() bool {
	return t == Income || t == Expense
}

func (t AccountType) Valid() bool {
	return t == Personal || t == Business
}

// NewDate creates a new Date from year, month, day
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate accepts YYYY-MM-DD or a full RFC 3339 timestamp and keeps only the calendar date.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(dateLayout, s); err == nil {
		return Date{Time: t}, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return NewDate(t.Year(), int(t.Month()), t.Day()), nil
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(dateLayout)
}

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return ErrInvalidDate
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// UnmarshalJSON decodes each field on its own. A malformed field is recorded
// and reported by Validate, so one bad item cannot fail a whole batch.
func (in *TransactionInput) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		*in = TransactionInput{decodeErr: fmt.Errorf("%w: transaction must be a JSON object", ErrValidation)}
		return nil
	}

	*in = TransactionInput{}
	fail := func(err error) {
		if in.decodeErr == nil {
			in.decodeErr = err
		}
	}
	field := func(name string, dst any, bad error) {
		v, ok := raw[name]
		if !ok || string(v) == "null" {
			return
		}
		if err := json.Unmarshal(v, dst); err != nil {
			fail(bad)
		}
	}

	// local_id first so a failing item can still be identified.
	field("local_id", &in.LocalID, fmt.Errorf("%w: local_id must be a string", ErrValidation))
	field("account_id", &in.AccountID, ErrInvalidAccountID)
	field("category_id", &in.CategoryID, ErrInvalidCategoryID)

	if v, ok := raw["amount"]; !ok || string(v) == "null" {
		fail(ErrInvalidAmount)
	} else if err := in.Amount.UnmarshalJSON(v); err != nil {
		fail(ErrInvalidAmount)
	}

	field("type", &in.Type, ErrInvalidType)
	field("description", &in.Description, fmt.Errorf("%w: description must be a string", ErrValidation))

	if v, ok := raw["transaction_date"]; !ok || string(v) == "null" {
		fail(ErrInvalidDate)
	} else if err := in.TransactionDate.UnmarshalJSON(v); err != nil {
		fail(ErrInvalidDate)
	}

	return nil
}

// Normalize trims free text and rounds the amount to cents. It must run before Validate.
func (in TransactionInput) Normalize() TransactionInput {
	in.LocalID = strings.TrimSpace(in.LocalID)
	in.Description = SanitizeText(in.Description)
	in.Amount = in.Amount.Round(2)
	return in
}

func (in TransactionInput) Validate() error {
	if in.decodeErr != nil {
		return in.decodeErr
	}
	if utf8.RuneCountInString(in.LocalID) > MaxLocalIDLength {
		return ErrLocalIDTooLong
	}
	if in.AccountID <= 0 {
		return ErrInvalidAccountID
	}
	if in.CategoryID <= 0 {
		return ErrInvalidCategoryID
	}
	if err := ValidateAmount(in.Amount); err != nil {
		return err
	}
	if !in.Type.Valid() {
		return ErrInvalidType
	}
	if err := in.TransactionDate.Validate(); err != nil {
		return err
	}
	if utf8.RuneCountInString(in.Description) > MaxDescriptionLength {
		return ErrDescriptionTooLong
	}
	return nil
}

// Transaction builds the row to persist. The input must already be validated.
func (in TransactionInput) Transaction() Transaction {
	return Transaction{
		LocalID:         in.LocalID,
		AccountID:       in.AccountID,
		CategoryID:      in.CategoryID,
		Amount:          in.Amount,
		Type:            in.Type,
		Description:     in.Description,
		TransactionDate: in.TransactionDate,
		IsSynced:        true,
	}
}

// SanitizeText removes control characters except tab and newlines and trims whitespace.
func SanitizeText(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1
		}
		return r
	}, s)
}
