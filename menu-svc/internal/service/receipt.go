package service

import (
	"bytes"
	"fmt"
	"strings"

	"desi-beats/menu-svc/internal/domain"

	"github.com/phpdave11/gofpdf"
)

func renderReceipt(order *domain.Order, lines []domain.OrderLine, qr []byte) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A5", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "Desi Beats Cafe")
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, "Order: "+order.ID)
	pdf.Ln(6)
	pdf.Cell(0, 6, "Placed: "+order.CreatedAt.Format("02 Jan 2006 15:04"))
	pdf.Ln(6)
	pdf.Cell(0, 6, "Status: "+strings.ToUpper(string(order.Status)))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Customer: %s (%s)", order.CustomerName, order.CustomerPhone))
	pdf.Ln(6)
	if order.DeliveryType == domain.DeliveryTypeDelivery {
		pdf.MultiCell(0, 6, "Deliver to: "+order.CustomerAddress, "", "L", false)
	} else {
		pdf.Cell(0, 6, "Pickup at counter")
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(70, 7, "Item", "B", 0, "L", false, 0, "")
	pdf.CellFormat(15, 7, "Qty", "B", 0, "R", false, 0, "")
	pdf.CellFormat(43, 7, "Amount (Rs.)", "B", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, l := range lines {
		amount := float64(l.Quantity) * l.MenuItem.Price
		pdf.CellFormat(70, 7, l.MenuItem.Name, "", 0, "L", false, 0, "")
		pdf.CellFormat(15, 7, fmt.Sprintf("%d", l.Quantity), "", 0, "R", false, 0, "")
		pdf.CellFormat(43, 7, fmt.Sprintf("%.2f", amount), "", 1, "R", false, 0, "")
	}

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(85, 8, "Total", "T", 0, "L", false, 0, "")
	pdf.CellFormat(43, 8, fmt.Sprintf("%.2f", order.TotalAmount), "T", 1, "R", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.Cell(0, 6, "Cash on delivery")
	pdf.Ln(8)

	if len(qr) > 0 {
		opts := gofpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader("qr", opts, bytes.NewReader(qr))
		pdf.ImageOptions("qr", 49, pdf.GetY(), 40, 40, false, opts, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render receipt: %w", err)
	}
	return buf.Bytes(), nil
}
