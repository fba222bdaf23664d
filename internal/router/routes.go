package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clearskyva/backoffice/internal/auth"
	"github.com/clearskyva/backoffice/internal/config"
	"github.com/clearskyva/backoffice/internal/entity"
	"github.com/clearskyva/backoffice/internal/handler"
	middlewarepkg "github.com/clearskyva/backoffice/internal/middleware"
)

// Handlers aggregates HTTP handlers used by the router.
type Handlers struct {
	Auth         *handler.AuthHandler
	Contact      *handler.ContactHandler
	Testimonials *handler.TestimonialHandler
	Inquiries    *handler.InquiryHandler
	Blog         *handler.BlogHandler
	Team         *handler.TeamHandler
	Users        *handler.UserAdminHandler
	Dashboard    *handler.DashboardHandler
}

// Register wires all HTTP routes for the API. Public form submissions are
// rate limited; everything under /api/admin requires a JWT with an admin
// role, and user provisioning requires super_admin.
func Register(e *echo.Echo, cfg *config.Config, jwtManager *auth.JWTManager, handlers Handlers) {
	e.GET("/healthz", func(c echo.Context) error {
		return handler.Success(c, http.StatusOK, "service healthy", map[string]any{"status": "ok"})
	})

	e.POST("/api/auth/login", handlers.Auth.Login)

	e.POST("/api/contact", handlers.Contact.Submit, middlewarepkg.SubmitRateLimiter(cfg.RateLimitSubmit))
	e.POST("/api/testimonials/submit", handlers.Testimonials.Submit, middlewarepkg.SubmitRateLimiter(cfg.RateLimitSubmit))

	e.GET("/api/testimonials", handlers.Testimonials.ListApproved)
	e.GET("/api/blog", handlers.Blog.ListPublished)
	e.GET("/api/blog/:slug", handlers.Blog.GetBySlug)
	e.GET("/api/team", handlers.Team.List)

	secured := e.Group("/api", middlewarepkg.JWT(jwtManager))

	// moderation PATCH/DELETE live outside /admin but still need a staff role
	staff := middlewarepkg.RequireRole(entity.RoleAdmin, entity.RoleSuperAdmin)
	secured.PATCH("/testimonials/:id", handlers.Testimonials.Moderate, staff)
	secured.DELETE("/testimonials/:id", handlers.Testimonials.Delete, staff)

	admin := secured.Group("/admin", staff)
	admin.GET("/inquiries", handlers.Inquiries.List)
	admin.PATCH("/inquiries/:id", handlers.Inquiries.UpdateStatus)
	admin.DELETE("/inquiries/:id", handlers.Inquiries.Delete)

	admin.GET("/testimonials", handlers.Testimonials.ListAll)

	admin.GET("/blog", handlers.Blog.ListAll)
	admin.POST("/blog", handlers.Blog.Create)
	admin.PATCH("/blog/:id", handlers.Blog.Update)
	admin.DELETE("/blog/:id", handlers.Blog.Delete)

	admin.GET("/dashboard/inquiries", handlers.Dashboard.Inquiries)
	admin.GET("/dashboard/testimonials", handlers.Dashboard.Testimonials)

	admin.GET("/users", handlers.Users.List)
	admin.DELETE("/users/:id", handlers.Users.Delete)
	admin.POST("/users/create", handlers.Users.Create, middlewarepkg.RequireRole(entity.RoleSuperAdmin))
}
