package services

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/xyzrestro/food-billing-app/models"
	"github.com/xyzrestro/food-billing-app/utils"
)

// billPageTmpl renders the bill viewer page. html/template escapes every
// customer- and item-supplied field, which matters because names can come
// from free-text or voice input.
var billPageTmpl = template.Must(template.New("bill").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>{{.Restaurant}} Bill</title></head>
<body>
<h2>{{.Restaurant}} Bill</h2>
<p><b>Name:</b> {{.Bill.Customer.Name}}</p>
<p><b>Email:</b> {{.Bill.Customer.Email}}</p>
<p><b>Mobile:</b> {{.Bill.Customer.Mobile}}</p>
<p><b>Date:</b> {{.Date}}</p>
<hr>
<table border="1" cellspacing="0" cellpadding="6">
<tr><th>Food</th><th>Qty</th><th>Price</th><th>Amount</th></tr>
{{range .Bill.Items}}<tr><td>{{.Name}}</td><td>{{.Qty}}</td><td>{{printf "%.2f" .Price}}</td><td>{{printf "%.2f" .Amount}}</td></tr>
{{end}}<tr><td colspan="3"><b>Total</b></td><td><b>{{.Total}}</b></td></tr>
</table>
</body>
</html>
`))

// RenderPlainText renders the bill in the format shared by speech feedback
// and outbound notification bodies: one line per item, then the total.
func RenderPlainText(bill *models.Bill) string {
	var b strings.Builder
	for _, item := range bill.Items {
		fmt.Fprintf(&b, "%s x %d @ %.2f = %.2f\n", item.Name, item.Qty, item.Price, item.Amount())
	}
	fmt.Fprintf(&b, "Total: %s", utils.FormatCurrencyINR(bill.Total))
	return b.String()
}

// RenderHTML renders the itemized bill page.
func RenderHTML(bill *models.Bill, restaurantName string) (string, error) {
	var buf bytes.Buffer
	err := billPageTmpl.Execute(&buf, struct {
		Restaurant string
		Bill       *models.Bill
		Date       string
		Total      string
	}{
		Restaurant: restaurantName,
		Bill:       bill,
		Date:       bill.CreatedAt.Format("02 Jan 2006 15:04"),
		Total:      utils.FormatCurrencyINR(bill.Total),
	})
	if err != nil {
		return "", fmt.Errorf("render bill html: %w", err)
	}
	return buf.String(), nil
}

// RenderPDF produces the printable bill document: logo, header, customer
// block, itemized table, total and footer. A missing or broken logo is
// swallowed and the document is produced without it.
func RenderPDF(bill *models.Bill, restaurantName, logoPath string) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(restaurantName+" Bill", true)
	pdf.AddPage()

	top := 15.0
	if logoPath != "" {
		if _, err := os.Stat(logoPath); err == nil {
			pdf.ImageOptions(logoPath, 10, 10, 25, 0, false, fpdf.ImageOptions{}, 0, "")
			if pdf.Err() {
				pdf.ClearError()
			} else {
				top = 40
			}
		}
	}

	pdf.SetY(top)
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, restaurantName, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, "Bill No: "+bill.ID, "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, bill.CreatedAt.Format(time.RFC1123), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, "Name: "+bill.Customer.Name, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Email: "+bill.Customer.Email, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Mobile: "+bill.Customer.Mobile, "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// Table header
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(90, 8, "Food", "1", 0, "L", true, 0, "")
	pdf.CellFormat(20, 8, "Qty", "1", 0, "R", true, 0, "")
	pdf.CellFormat(35, 8, "Price", "1", 0, "R", true, 0, "")
	pdf.CellFormat(35, 8, "Amount", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	for _, item := range bill.Items {
		pdf.CellFormat(90, 8, item.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 8, fmt.Sprintf("%d", item.Qty), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 8, fmt.Sprintf("%.2f", item.Price), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 8, fmt.Sprintf("%.2f", item.Amount()), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(145, 8, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(35, 8, fmt.Sprintf("%.2f", bill.Total), "1", 1, "R", false, 0, "")

	pdf.Ln(8)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.CellFormat(0, 6, "Thank you for your visit!", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render bill pdf: %w", err)
	}
	return buf.Bytes(), nil
}
