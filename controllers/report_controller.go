package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"sajilo-inventory/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func writeXLSX(c *gin.Context, f *excelize.File, filename string) {
	buf, err := f.WriteToBuffer()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not build report file"})
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// ExportStockReport renders the current catalog with stock levels as a
// spreadsheet.
func ExportStockReport(c *gin.Context) {
	products, err := catalog.ListProducts(c.Request.Context(), service.ProductFilter{})
	if err != nil {
		respondErr(c, err)
		return
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()
	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	header := []interface{}{"id", "name", "category", "price", "quantity"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not build report file"})
		return
	}
	row := 2
	for _, p := range products {
		cells := []interface{}{p.ID, p.Name, p.Category.Name, p.Price, p.Quantity}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", row), &cells); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not build report file"})
			return
		}
		row++
	}

	writeXLSX(c, f, "stock_report.xlsx")
}

func exportHistory(c *gin.Context, history []service.TransactionSummary, counterpartyCol, filename string) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()
	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	header := []interface{}{"id", "date", counterpartyCol, "product", "quantity", "unit_price", "total"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not build report file"})
		return
	}
	row := 2
	for _, tr := range history {
		for _, ln := range tr.Lines {
			cells := []interface{}{
				tr.ID,
				tr.Date.Format("2006-01-02"),
				tr.Counterparty,
				ln.ProductName,
				ln.Quantity,
				ln.UnitPrice,
				tr.Total,
			}
			if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", row), &cells); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "could not build report file"})
				return
			}
			row++
		}
	}

	writeXLSX(c, f, filename)
}

func ExportSalesReport(c *gin.Context) {
	history, err := dashboard.SalesHistory(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	exportHistory(c, history, "customer", "sales_report.xlsx")
}

func ExportPurchasesReport(c *gin.Context) {
	history, err := dashboard.PurchaseHistory(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	exportHistory(c, history, "supplier", "purchases_report.xlsx")
}
