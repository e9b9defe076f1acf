package routes

import (
	adminapi "linkpage-app/internal/api/admin"
	authapi "linkpage-app/internal/api/auth"
	blocksapi "linkpage-app/internal/api/blocks"
	musicapi "linkpage-app/internal/api/music"
	notificationsapi "linkpage-app/internal/api/notifications"
	pagesapi "linkpage-app/internal/api/pages"
	"linkpage-app/internal/api/users"
	verificationapi "linkpage-app/internal/api/verification"
	"linkpage-app/internal/app/http/middleware"
	"linkpage-app/internal/domain/session"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public page fetch is NOT sanitized: it takes no body and serves
	// already-sanitized stored content.
	r.GET("/p/:username", pagesapi.GetPublicPage)
	r.GET("/check-username", pagesapi.CheckUsername)

	// ✅ Apply input sanitization to public routes only
	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())

	public.POST("/register", authapi.Register)
	public.POST("/login", authapi.Login)
	public.POST("/forgot-password", authapi.ForgotPassword)
	public.POST("/reset-password", authapi.ResetPassword)

	public.GET("/auth/google", authapi.GoogleStart)
	public.GET("/auth/google/callback", authapi.GoogleCallback)

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware())
	auth.GET("/me", users.GetCurrentUser)
	auth.PUT("/me", users.UpdateMe)
	auth.DELETE("/me", users.DeleteMyAccount)
	auth.POST("/change-password", authapi.ChangePassword)

	auth.POST("/pages", pagesapi.CreatePage)
	auth.GET("/pages", pagesapi.ListMyPages)
	auth.GET("/pages/:id", pagesapi.GetPage)
	auth.PUT("/pages/:id", pagesapi.UpdatePage)
	auth.PUT("/pages/:id/username", pagesapi.UpdateUsername)
	auth.DELETE("/pages/:id", pagesapi.DeletePage)

	auth.POST("/blocks", blocksapi.CreateBlock)
	auth.PUT("/blocks/:id", blocksapi.UpdateBlock)
	auth.PATCH("/blocks/reorder", blocksapi.ReorderBlocks)
	auth.DELETE("/blocks/:id", blocksapi.DeleteBlock)
	auth.POST("/classify", blocksapi.ClassifyLink)

	auth.POST("/music/resolve", musicapi.ResolveTrack)
	auth.POST("/music/manual-add", musicapi.ManualAdd)

	auth.POST("/verification/requests", verificationapi.Submit)
	auth.GET("/verification/requests", verificationapi.MyRequests)

	auth.GET("/notifications", notificationsapi.List)
	auth.POST("/notifications/:id/read", notificationsapi.MarkRead)
	auth.DELETE("/notifications", notificationsapi.ClearAll)

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole(session.RoleAdmin))
	admin.GET("/stats", adminapi.Stats)
	admin.GET("/users", adminapi.ListUsers)
	admin.DELETE("/users/:id", adminapi.DeleteUser)
	admin.POST("/notify", adminapi.Notify)

	admin.GET("/reserved-usernames", adminapi.ListReservedUsernames)
	admin.POST("/reserved-usernames", adminapi.AddReservedUsername)
	admin.DELETE("/reserved-usernames/:id", adminapi.DeleteReservedUsername)

	admin.GET("/verification/requests", verificationapi.ListRequests)
	admin.POST("/verification/requests/:id/approve", verificationapi.ApproveRequest)
	admin.POST("/verification/requests/:id/reject", verificationapi.RejectRequestHandler)
	admin.POST("/verification/requests/:id/cancel", verificationapi.CancelRequestHandler)
	admin.POST("/verification/requests/:id/resume", verificationapi.ResumeRequest)
	admin.DELETE("/verification/requests/:id", verificationapi.DeleteRequest)
}
