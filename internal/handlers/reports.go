package handlers

import (
	"bytes"
	"net/http"

	"lecturer-claims/internal/database"
	"lecturer-claims/internal/reports"

	"github.com/gin-gonic/gin"
)

func ApprovedReportPDF(c *gin.Context) {
	rows, err := reports.Rows(database.NewClaimRepository(database.DB))
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to load approved claims")
		return
	}

	var buf bytes.Buffer
	if err := reports.WritePDF(&buf, rows); err != nil {
		c.String(http.StatusInternalServerError, "Failed to generate PDF report")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="approved_claims.pdf"`)
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

func ApprovedReportXLSX(c *gin.Context) {
	rows, err := reports.Rows(database.NewClaimRepository(database.DB))
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to load approved claims")
		return
	}

	var buf bytes.Buffer
	if err := reports.WriteXLSX(&buf, rows); err != nil {
		c.String(http.StatusInternalServerError, "Failed to generate XLSX report")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="approved_claims.xlsx"`)
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}
