package orderControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/RAJ-RHR/ecommerce/models"
)

// ExportOrdersToExcel downloads the admin orders report as a spreadsheet,
// one row per order item.
// GET /admin/orders/report
func ExportOrdersToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Preload("Items").Order("created_at DESC").Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"OrderNo", "Status", "Customer", "Phone", "Email", "PaymentMethod",
			"Product", "Quantity", "UnitPrice", "LineTotal",
			"OrderTotal", "Savings", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, o := range orders {
			for _, it := range o.Items {
				row := sheet.AddRow()

				row.AddCell().SetValue(strconv.FormatInt(o.NumericOrderID, 10))
				row.AddCell().SetValue(string(o.Status))
				row.AddCell().SetValue(o.CustomerName)
				row.AddCell().SetValue(o.Phone)
				row.AddCell().SetValue(o.Email)
				row.AddCell().SetValue(o.PaymentMethod)
				row.AddCell().SetValue(it.Name)
				row.AddCell().SetValue(it.Quantity)
				row.AddCell().SetValue(it.OfferPrice)
				row.AddCell().SetValue(float64(it.Quantity) * it.OfferPrice)
				row.AddCell().SetValue(o.Total)
				row.AddCell().SetValue(o.TotalSavings)
				row.AddCell().SetValue(o.CreatedAt.Format("2006-01-02 15:04:05"))
			}
		}

		c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
