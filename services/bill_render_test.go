package services

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/xyzrestro/food-billing-app/models"
)

func renderTestBill() *models.Bill {
	return &models.Bill{
		ID:       "11111111-2222-4333-8444-555555555555",
		Customer: models.Customer{Name: "A", Email: "a@x.com", Mobile: "9999999999"},
		Items: []models.BillItem{
			{Name: "Coffee", Qty: 1, Price: 40},
			{Name: "Samosa", Qty: 2, Price: 25},
		},
		Total:     90,
		CreatedAt: time.Date(2025, 3, 1, 12, 30, 0, 0, time.UTC),
	}
}

func TestRenderPlainText(t *testing.T) {
	text := RenderPlainText(renderTestBill())

	assert.Contains(t, text, "Coffee x 1 @ 40.00 = 40.00")
	assert.Contains(t, text, "Samosa x 2 @ 25.00 = 50.00")
	assert.Contains(t, text, "Coffee x 1")
	assert.True(t, strings.HasSuffix(text, "Total: ₹90.00"))
}

func TestRenderHTMLContainsItemsAndTotal(t *testing.T) {
	html, err := RenderHTML(renderTestBill(), "XYZ Restaurant")
	assert.NoError(t, err)

	assert.Contains(t, html, "XYZ Restaurant Bill")
	assert.Contains(t, html, "<td>Coffee</td>")
	assert.Contains(t, html, "<td>Samosa</td>")
	assert.Contains(t, html, "₹90.00")
	assert.Contains(t, html, "a@x.com")
}

func TestRenderHTMLEscapesHostileInput(t *testing.T) {
	bill := renderTestBill()
	bill.Customer.Name = `<script>alert("x")</script>`
	bill.Items[0].Name = `<img src=x onerror=alert(1)>`

	html, err := RenderHTML(bill, "XYZ Restaurant")
	assert.NoError(t, err)

	assert.NotContains(t, html, "<script>alert")
	assert.NotContains(t, html, "<img src=x")
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestRenderPDFWithoutLogo(t *testing.T) {
	pdfBytes, err := RenderPDF(renderTestBill(), "XYZ Restaurant", "")
	assert.NoError(t, err)
	assert.True(t, len(pdfBytes) > 0)
	assert.True(t, strings.HasPrefix(string(pdfBytes[:5]), "%PDF-"))
}

func TestRenderPDFSwallowsMissingLogo(t *testing.T) {
	// A logo path that does not exist must not abort document generation.
	pdfBytes, err := RenderPDF(renderTestBill(), "XYZ Restaurant", "does/not/exist.png")
	assert.NoError(t, err)
	assert.True(t, len(pdfBytes) > 0)
}
