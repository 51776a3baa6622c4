// Package report renders account summaries as PDF documents.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"cakue/internal/core"
)

const (
	Title        = "CAKUE Financial Report"
	EmptyNotice  = "No transactions found for this period"
	ContentType  = "application/pdf"
	marginLeft   = 50.0
	marginRight  = 550.0
	rowHeight    = 15.0
	pageBreakY   = 700.0
	pageResumeY  = 50.0
	tableHeaderY = 140.0
)

// Column x offsets in points.
const (
	colDate        = 50.0
	colCategory    = 120.0
	colDescription = 200.0
	colType        = 350.0
	colAmount      = 450.0
)

// Fonts. Text outside Windows-1252 switches to the embedded UTF-8 family.
const (
	coreFamily    = "Helvetica"
	unicodeFamily = "Go"
)

// Renderer writes Letter-sized reports.
type Renderer struct {
	group    string
	decimal  string
	compress bool
	now      func() time.Time
}

// NewRenderer creates a renderer formatting numbers for locale (a BCP 47 tag).
// Unknown tags fall back to English.
func NewRenderer(locale string) *Renderer {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	group, dec := separators(message.NewPrinter(tag))
	return &Renderer{
		group:    group,
		decimal:  dec,
		compress: true,
		now:      time.Now,
	}
}

// separators reads the grouping and decimal marks the locale prints for
// 1234567.5. Locales with other digits keep the English marks.
func separators(p *message.Printer) (group, dec string) {
	var marks []string
	var cur []rune
	for _, c := range p.Sprintf("%.1f", 1234567.5) {
		if c >= '0' && c <= '9' {
			if len(cur) > 0 {
				marks = append(marks, string(cur))
				cur = nil
			}
			continue
		}
		cur = append(cur, c)
	}
	switch len(marks) {
	case 3:
		if marks[0] == marks[1] {
			return marks[0], marks[2]
		}
	case 1:
		return "", marks[0]
	}
	return ",", "."
}

// Filename is the attachment name of the report of a period.
func Filename(start, end core.Date) string {
	return fmt.Sprintf("financial-report-%s-to-%s.pdf", start, end)
}

// FormatAmount renders d with two decimals and locale grouping. The digits
// come from the decimal itself so large totals keep their cents.
func (r *Renderer) FormatAmount(d decimal.Decimal) string {
	fixed := d.StringFixed(2)
	neg := strings.HasPrefix(fixed, "-")
	intPart, frac, _ := strings.Cut(strings.TrimPrefix(fixed, "-"), ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteString(r.group)
		}
		b.WriteRune(c)
	}
	b.WriteString(r.decimal)
	b.WriteString(frac)
	return b.String()
}

// Render writes the PDF of sum to w.
func (r *Renderer) Render(w io.Writer, sum core.Summary) error {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetCompression(r.compress)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle(Title, true)
	pdf.SetCreator("cakue", true)

	family := coreFamily
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	if needsUnicode(sum) {
		pdf.AddUTF8FontFromBytes(unicodeFamily, "", goregular.TTF)
		pdf.AddUTF8FontFromBytes(unicodeFamily, "B", gobold.TTF)
		family = unicodeFamily
		tr = func(s string) string { return s }
	}

	text := func(x, y, size float64, s string) {
		pdf.SetFontSize(size)
		pdf.SetXY(x, y)
		pdf.CellFormat(0, size, tr(s), "", 0, "L", false, 0, "")
	}
	rule := func(y float64) {
		pdf.Line(marginLeft, y, marginRight, y)
	}

	pdf.AddPage()
	pdf.SetFont(family, "B", 20)
	text(marginLeft, 50, 20, Title)

	pdf.SetFont(family, "", 12)
	text(marginLeft, 80, 12, fmt.Sprintf("Period: %s to %s", sum.StartDate, sum.EndDate))
	text(marginLeft, 100, 12, fmt.Sprintf("Generated: %s", r.now().Format("2006-01-02")))
	text(350, 100, 12, fmt.Sprintf("Transactions: %d", len(sum.Transactions)))
	rule(120)

	y := tableHeaderY
	pdf.SetFont(family, "B", 10)
	text(colDate, y, 10, "Date")
	text(colCategory, y, 10, "Category")
	text(colDescription, y, 10, "Description")
	text(colType, y, 10, "Type")
	text(colAmount, y, 10, "Amount")
	y += 20
	rule(y)
	y += 10

	pdf.SetFont(family, "", 9)
	rows := sum.Rows()
	if len(rows) == 0 {
		text(marginLeft, y, 10, EmptyNotice)
		y += rowHeight
	}
	for _, row := range rows {
		if y > pageBreakY {
			pdf.AddPage()
			y = pageResumeY
		}
		desc := row.Description
		if desc == "" {
			desc = "-"
		}
		text(colDate, y, 9, row.Date.String())
		text(colCategory, y, 9, fit(pdf, tr, row.Category, colDescription-colCategory-5))
		text(colDescription, y, 9, fit(pdf, tr, desc, colType-colDescription-5))
		text(colType, y, 9, string(row.Type))
		text(colAmount, y, 9, r.FormatAmount(row.Amount))
		y += rowHeight
	}

	y += 20
	if y > pageBreakY {
		pdf.AddPage()
		y = pageResumeY
	}
	rule(y)
	y += 20

	pdf.SetFont(family, "B", 12)
	text(marginLeft, y, 12, "Total Income: "+r.FormatAmount(sum.Total(core.Income)))
	text(250, y, 12, "Total Expense: "+r.FormatAmount(sum.Total(core.Expense)))
	text(colAmount, y, 12, "Balance: "+r.FormatAmount(sum.Balance()))

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}

// needsUnicode reports whether any text of sum falls outside Windows-1252,
// the encoding of the core PDF fonts.
func needsUnicode(sum core.Summary) bool {
	for _, tx := range sum.Transactions {
		for _, s := range []string{tx.Description, tx.CategoryName} {
			for _, c := range s {
				if _, ok := charmap.Windows1252.EncodeRune(c); !ok {
					return true
				}
			}
		}
	}
	return false
}

// fit shortens s with an ellipsis until it is narrower than width in the
// current font.
func fit(pdf *fpdf.Fpdf, tr func(string) string, s string, width float64) string {
	if pdf.GetStringWidth(tr(s)) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && pdf.GetStringWidth(tr(string(runes)+"...")) > width {
		runes = runes[:len(runes)-1]
	}
	return strings.TrimSpace(string(runes)) + "..."
}
