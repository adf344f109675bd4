package handlers

import (
	"net/http"

	"backoffice/internal/http/middleware"
	"backoffice/internal/pricing"
	"backoffice/internal/services"

	"github.com/gin-gonic/gin"
)

func reportsService(c *gin.Context) services.ReportsService {
	return services.ReportsService{
		InvoiceSvc: invoiceService(c),
		RequestID:  middleware.GetRequestID(c),
	}
}

func salesFilter(c *gin.Context) services.SalesReportFilter {
	return services.SalesReportFilter{
		Status:    c.Query("status"),
		StartDate: pricing.DateOnly(c.Query("start_date")),
		EndDate:   pricing.DateOnly(c.Query("end_date")),
	}
}

// GET /api/reports/sales?status=&start_date=&end_date=
func GetSalesReport(c *gin.Context) {
	rows, err := reportsService(c).SalesReport(salesFilter(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	var total, paid float64
	for _, r := range rows {
		total += r.InvoiceTotal
		paid += r.Paid
	}
	c.JSON(http.StatusOK, gin.H{
		"rows":       rows,
		"count":      len(rows),
		"total":      pricing.RoundMinor(total),
		"total_paid": pricing.RoundMinor(paid),
	})
}

// GET /api/reports/sales/export, XLSX download.
func ExportSalesReport(c *gin.Context) {
	data, filename, err := reportsService(c).ExportSales(salesFilter(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
