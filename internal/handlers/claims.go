package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"lecturer-claims/internal/claims"
	"lecturer-claims/internal/database"
	"lecturer-claims/internal/documents"
	"lecturer-claims/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// DocStore is set once by the router before routes are served.
var DocStore documents.Store

func claimService() *claims.Service {
	return claims.NewService(database.NewClaimRepository(database.DB))
}

//
// SUBMISSION
//

func ShowSubmitClaim(c *gin.Context) {
	render(c, http.StatusOK, "claims_submit.html", gin.H{"error": ""})
}

func SubmitClaim(c *gin.Context) {
	lecturerName := strings.TrimSpace(c.PostForm("lecturer_name"))
	hoursStr := strings.TrimSpace(c.PostForm("hours_worked"))
	rateStr := strings.TrimSpace(c.PostForm("hourly_rate"))
	notes := strings.TrimSpace(c.PostForm("notes"))

	hours, err := decimal.NewFromString(hoursStr)
	if err != nil {
		renderSubmitError(c, "Hours worked must be a number")
		return
	}
	rate, err := decimal.NewFromString(rateStr)
	if err != nil {
		renderSubmitError(c, "Hourly rate must be a number")
		return
	}

	file, err := c.FormFile("document")
	if err != nil {
		renderSubmitError(c, documents.ErrEmptyUpload.Error())
		return
	}

	if err := documents.Validate(file.Filename, file.Size); err != nil {
		renderSubmitError(c, err.Error())
		return
	}

	src, err := file.Open()
	if err != nil {
		renderSubmitError(c, "Failed to read the uploaded file")
		return
	}
	defer src.Close()

	ref, err := DocStore.Save(file.Filename, src)
	if err != nil {
		renderSubmitError(c, "Failed to store the uploaded file")
		return
	}

	caller := currentCaller(c)
	claim, err := claimService().Submit(caller, claims.Submission{
		LecturerName: lecturerName,
		HoursWorked:  hours,
		HourlyRate:   rate,
		Notes:        notes,
		DocumentPath: ref,
	})
	if err != nil {
		var verr *claims.ValidationError
		switch {
		case errors.As(err, &verr):
			renderSubmitError(c, verr.Error())
		case errors.Is(err, claims.ErrUnauthorized):
			c.String(http.StatusForbidden, "access denied")
		default:
			c.String(http.StatusInternalServerError, "Failed to save the claim")
		}
		return
	}

	database.CreateAuditLog(caller.UserID, "claim", claim.ID, "submit",
		"Claim submitted with status: "+string(claim.Status))

	c.Redirect(http.StatusFound, "/claims/submitted")
}

func renderSubmitError(c *gin.Context, msg string) {
	render(c, http.StatusBadRequest, "claims_submit.html", gin.H{"error": msg})
}

func ClaimSubmitted(c *gin.Context) {
	render(c, http.StatusOK, "claim_submitted.html", nil)
}

//
// REVIEW
//

func ViewPendingClaims(c *gin.Context) {
	pending, err := claimService().Pending(currentCaller(c))
	if err != nil {
		writeClaimError(c, err)
		return
	}

	render(c, http.StatusOK, "claims_pending.html", gin.H{
		"claims": pending,
	})
}

func ApproveClaim(c *gin.Context) {
	reviewClaim(c, "approve")
}

func RejectClaim(c *gin.Context) {
	reviewClaim(c, "reject")
}

func reviewClaim(c *gin.Context, action string) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.String(http.StatusBadRequest, "invalid claim id")
		return
	}

	caller := currentCaller(c)
	svc := claimService()

	var claim *models.Claim
	if action == "approve" {
		claim, err = svc.Approve(caller, uint(id))
	} else {
		claim, err = svc.Reject(caller, uint(id))
	}
	if err != nil {
		writeClaimError(c, err)
		return
	}

	database.CreateAuditLog(caller.UserID, "claim", claim.ID, action,
		"Status changed to: "+string(claim.Status))

	c.Redirect(http.StatusFound, "/claims/pending")
}

func DeleteClaim(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.String(http.StatusBadRequest, "invalid claim id")
		return
	}

	caller := currentCaller(c)
	if err := claimService().Delete(caller, uint(id)); err != nil {
		writeClaimError(c, err)
		return
	}

	database.CreateAuditLog(caller.UserID, "claim", uint(id), "delete", "Claim deleted")

	c.Redirect(http.StatusFound, "/claims/track")
}

//
// TRACKING
//

// TrackClaims shows staff every claim; lecturers see only their own.
func TrackClaims(c *gin.Context) {
	caller := currentCaller(c)
	svc := claimService()

	var (
		list []models.Claim
		err  error
	)
	if caller.IsStaff() {
		list, err = svc.All(caller)
	} else {
		list, err = svc.ClaimsByUser(caller)
	}
	if err != nil {
		writeClaimError(c, err)
		return
	}

	render(c, http.StatusOK, "claims_track.html", gin.H{
		"claims":     list,
		"IsReviewer": caller.IsReviewer(),
	})
}

func MyClaims(c *gin.Context) {
	list, err := claimService().ClaimsByUser(currentCaller(c))
	if err != nil {
		writeClaimError(c, err)
		return
	}

	render(c, http.StatusOK, "claims_mine.html", gin.H{
		"claims": list,
	})
}

// writeClaimError translates engine errors into HTTP responses. Only the
// boundary does this; the engine itself never logs or maps.
func writeClaimError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, claims.ErrNotFound):
		c.String(http.StatusNotFound, "claim not found")
	case errors.Is(err, claims.ErrUnauthorized):
		c.String(http.StatusForbidden, "access denied")
	case errors.Is(err, claims.ErrInvalidTransition):
		c.String(http.StatusConflict, "claim is no longer pending review")
	default:
		c.String(http.StatusInternalServerError, "something went wrong")
	}
}
