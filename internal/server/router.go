package server

import (
	"html/template"
	"net/http"

	"lecturer-claims/internal/config"
	"lecturer-claims/internal/documents"
	"lecturer-claims/internal/handlers"
	"lecturer-claims/internal/middleware"
	"lecturer-claims/internal/models"
	"lecturer-claims/internal/money"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func NewRouter(cfg *config.Config) *gin.Engine {
	r := gin.Default()

	r.Static("/static", "./web/static")
	r.Static("/uploads", cfg.UploadDir)

	r.SetFuncMap(template.FuncMap{
		"eq":       func(a, b interface{}) bool { return a == b },
		"fmtMoney": func(d decimal.Decimal) string { return money.Format(d) },
	})
	r.LoadHTMLGlob("web/templates/*.html")

	r.MaxMultipartMemory = documents.MaxSize

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("cmcs_session", store))

	r.Use(middleware.InjectUser())

	handlers.DocStore = documents.NewDiskStore(cfg.UploadDir)

	// HOME
	r.GET("/", handlers.IndexPage)

	// AUTH
	r.GET("/register", handlers.ShowRegister)
	r.POST("/register", handlers.Register)
	r.GET("/login", handlers.ShowLogin)
	r.POST("/login", handlers.Login)
	r.GET("/logout", handlers.Logout)

	auth := r.Group("/")
	auth.Use(middleware.RequireAuth())

	// CLAIMS: submission (lecturers only)
	auth.GET("/claims/submit",
		middleware.RequireRole(models.RoleLecturer),
		handlers.ShowSubmitClaim,
	)
	auth.POST("/claims/submit",
		middleware.RequireRole(models.RoleLecturer),
		handlers.SubmitClaim,
	)
	auth.GET("/claims/submitted", handlers.ClaimSubmitted)
	auth.GET("/claims/mine",
		middleware.RequireRole(models.RoleLecturer),
		handlers.MyClaims,
	)

	// CLAIMS: review (co-ordinators and managers)
	auth.GET("/claims/pending",
		middleware.RequireRole(models.RoleCoordinator, models.RoleManager),
		handlers.ViewPendingClaims,
	)
	auth.POST("/claims/:id/approve",
		middleware.RequireRole(models.RoleCoordinator, models.RoleManager),
		handlers.ApproveClaim,
	)
	auth.POST("/claims/:id/reject",
		middleware.RequireRole(models.RoleCoordinator, models.RoleManager),
		handlers.RejectClaim,
	)
	auth.POST("/claims/:id/delete",
		middleware.RequireRole(models.RoleCoordinator, models.RoleManager),
		handlers.DeleteClaim,
	)

	// CLAIMS: tracking (any authenticated user; scope decided per role)
	auth.GET("/claims/track", handlers.TrackClaims)

	// ACCOUNTS (HR)
	auth.GET("/accounts",
		middleware.RequireRole(models.RoleHR),
		handlers.ListAccounts,
	)

	// ROLES (HR)
	auth.GET("/roles",
		middleware.RequireRole(models.RoleHR),
		handlers.ListRoles,
	)
	auth.GET("/roles/new",
		middleware.RequireRole(models.RoleHR),
		handlers.ShowNewRole,
	)
	auth.POST("/roles/new",
		middleware.RequireRole(models.RoleHR),
		handlers.CreateRole,
	)

	// REPORTS (staff)
	auth.GET("/reports/approved.pdf",
		middleware.RequireRole(models.RoleCoordinator, models.RoleManager, models.RoleHR),
		handlers.ApprovedReportPDF,
	)
	auth.GET("/reports/approved.xlsx",
		middleware.RequireRole(models.RoleCoordinator, models.RoleManager, models.RoleHR),
		handlers.ApprovedReportXLSX,
	)

	// AUDIT
	auth.GET("/audit",
		middleware.RequireRole(models.RoleManager, models.RoleHR),
		handlers.ListAuditLogs,
	)

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}
