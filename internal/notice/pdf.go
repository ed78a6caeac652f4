// Package notice renders the fixed-template legal notice document.
package notice

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// Placeholder tokens substituted for absent fields. The amount and reason
// tokens differ from the generic one to match the notice wording.
const (
	placeholderField  = "[Not Provided]"
	placeholderAmount = "______"
	placeholderReason = "[REASON FOR NON-PAYMENT]"
)

// Fields carries the substitutable values of the notice. Every field is
// optional.
type Fields struct {
	SenderName       string
	SenderFatherName string
	SenderAddress    string
	RecipientName    string
	RecipientAddress string
	Reason           string
	Amount           string
}

// resolved substitutes the placeholder token for every absent field.
func (f Fields) resolved() Fields {
	out := f
	if out.SenderName == "" {
		out.SenderName = placeholderField
	}
	if out.SenderFatherName == "" {
		out.SenderFatherName = placeholderField
	}
	if out.SenderAddress == "" {
		out.SenderAddress = placeholderField
	}
	if out.RecipientName == "" {
		out.RecipientName = placeholderField
	}
	if out.RecipientAddress == "" {
		out.RecipientAddress = placeholderField
	}
	if out.Amount == "" {
		out.Amount = placeholderAmount
	}
	if out.Reason == "" {
		out.Reason = placeholderReason
	}
	return out
}

// Render produces the notice PDF. Output is deterministic for identical
// fields and timestamp.
func Render(fields Fields, now time.Time) ([]byte, error) {
	r := fields.resolved()

	pdf := gofpdf.New("P", "mm", "A4", "")
	// pinned so identical fields and timestamp give identical bytes
	pdf.SetCreationDate(now)
	pdf.SetMargins(18, 18, 18)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, "LEGAL NOTICE", "", 1, "C", false, 0, "")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 6, fmt.Sprintf("Date: %d/%d/%d", now.Day(), int(now.Month()), now.Year()), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 6, "From:", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 6, r.SenderName, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "s/o "+r.SenderFatherName, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, r.SenderAddress, "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 6, "To:", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 6, r.RecipientName, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, r.RecipientAddress, "", 1, "L", false, 0, "")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.MultiCell(0, 6, fmt.Sprintf("Subject: Legal Notice for Non-Payment of Dues Amounting to Rs. %s", r.Amount), "", "L", false)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 12)
	pdf.MultiCell(0, 6, fmt.Sprintf("Under instructions from my client, %s, you are hereby served with the following legal notice:", r.SenderName), "", "L", false)
	pdf.Ln(4)
	pdf.MultiCell(0, 6, fmt.Sprintf("That you have failed to pay the outstanding amount of Rs. %s for the following reason: %s.", r.Amount, r.Reason), "", "L", false)
	pdf.Ln(4)
	pdf.MultiCell(0, 6, "You are hereby called upon to make the payment of the said amount within 15 days from the receipt of this notice, failing which my client shall be constrained to take further legal action against you.", "", "L", false)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 6, "(Advocate Signature)", "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
