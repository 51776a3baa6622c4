package report

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/ledongthuc/pdf"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cakue/internal/core"
)

func summaryWith(n int) core.Summary {
	sum := core.Summary{
		AccountID:    1,
		StartDate:    core.NewDate(2024, 1, 1),
		EndDate:      core.NewDate(2024, 1, 31),
		ByType:       []core.TypeTotal{},
		Transactions: []core.Transaction{},
	}
	if n == 0 {
		return sum
	}
	for i := 0; i < n; i++ {
		sum.Transactions = append(sum.Transactions, core.Transaction{
			ID:              int64(i + 1),
			CategoryName:    "Food",
			Description:     fmt.Sprintf("groceries %d", i),
			Amount:          decimal.NewFromInt(10),
			Type:            core.Expense,
			TransactionDate: core.NewDate(2024, 1, 1+i%28),
		})
	}
	sum.ByType = []core.TypeTotal{{Type: core.Expense, Total: decimal.NewFromInt(int64(10 * n)), Count: int64(n)}}
	return sum
}

func render(t *testing.T, r *Renderer, sum core.Summary) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, sum))
	require.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	return buf.Bytes()
}

func pageCount(t *testing.T, data []byte) int {
	t.Helper()
	rd, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	return rd.NumPage()
}

func TestRender_Pagination(t *testing.T) {
	r := NewRenderer("en")

	tests := []struct {
		name  string
		rows  int
		pages int
	}{
		{name: "empty", rows: 0, pages: 1},
		{name: "fits one page", rows: 30, pages: 1},
		{name: "breaks past threshold", rows: 40, pages: 2},
		{name: "three pages", rows: 100, pages: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := render(t, r, summaryWith(tt.rows))
			assert.Equal(t, tt.pages, pageCount(t, data))
		})
	}
}

func TestRender_EmptyNotice(t *testing.T) {
	r := NewRenderer("en")
	r.compress = false
	r.now = func() time.Time { return time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC) }

	data := render(t, r, summaryWith(0))

	assert.Contains(t, string(data), EmptyNotice)
	assert.Contains(t, string(data), Title)
	assert.Contains(t, string(data), "Generated: 2024-02-01")
	assert.Contains(t, string(data), "Balance: 0.00")
}

func TestRender_Totals(t *testing.T) {
	r := NewRenderer("en")
	r.compress = false

	sum := summaryWith(2)
	sum.ByType = append(sum.ByType, core.TypeTotal{Type: core.Income, Total: decimal.RequireFromString("1500"), Count: 1})

	data := string(render(t, r, sum))

	assert.Contains(t, data, "Total Income: 1,500.00")
	assert.Contains(t, data, "Total Expense: 20.00")
	assert.Contains(t, data, "Balance: 1,480.00")
	assert.NotContains(t, data, EmptyNotice)
}

func TestFormatAmount(t *testing.T) {
	r := NewRenderer("en")
	assert.Equal(t, "1,234,567.89", r.FormatAmount(decimal.RequireFromString("1234567.891")))
	assert.Equal(t, "0.50", r.FormatAmount(decimal.RequireFromString("0.5")))

	fallback := NewRenderer("not a locale!")
	assert.Equal(t, "1,000.00", fallback.FormatAmount(decimal.NewFromInt(1000)))
}

func TestFormatAmount_Precision(t *testing.T) {
	r := NewRenderer("en")

	tests := []struct {
		in   string
		want string
	}{
		{in: "123456789012345678.99", want: "123,456,789,012,345,678.99"},
		{in: "98765432109876.54", want: "98,765,432,109,876.54"},
		{in: "-1234.5", want: "-1,234.50"},
		{in: "-0.001", want: "0.00"},
		{in: "999.995", want: "1,000.00"},
		{in: "100", want: "100.00"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, r.FormatAmount(decimal.RequireFromString(tt.in)))
		})
	}
}

func TestFormatAmount_LocaleMarks(t *testing.T) {
	r := NewRenderer("de")
	assert.Equal(t, "1.234.567,89", r.FormatAmount(decimal.RequireFromString("1234567.891")))
}

func TestRender_NonLatinTextEmbedsUnicodeFont(t *testing.T) {
	r := NewRenderer("en")
	r.compress = false

	sum := summaryWith(3)
	sum.Transactions[1].Description = "Продукты и кофе"
	sum.Transactions[2].CategoryName = "食品"

	data := string(render(t, r, sum))

	assert.Contains(t, data, "Identity-H")
	assert.NotContains(t, data, "/Helvetica")
	assert.Equal(t, 1, pageCount(t, []byte(data)))
}

func TestRender_LatinTextUsesCoreFont(t *testing.T) {
	r := NewRenderer("en")
	r.compress = false

	sum := summaryWith(1)
	sum.Transactions[0].Description = "Café crème"

	data := string(render(t, r, sum))

	assert.Contains(t, data, "/Helvetica")
	assert.NotContains(t, data, "Identity-H")
}

func TestFilename(t *testing.T) {
	got := Filename(core.NewDate(2024, 1, 1), core.NewDate(2024, 1, 31))
	assert.Equal(t, "financial-report-2024-01-01-to-2024-01-31.pdf", got)
}
