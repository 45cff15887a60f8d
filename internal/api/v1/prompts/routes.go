package prompts

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup, h *Handler) {
	promptGroup := router.Group("/prompts")
	{
		promptGroup.GET("", h.ListPrompts)
		promptGroup.POST("", h.CreatePrompt)
		promptGroup.GET("/tags", h.ListTags)
		promptGroup.GET("/:id", h.GetPrompt)
		promptGroup.PUT("/:id", h.UpdatePrompt)
		promptGroup.DELETE("/:id", h.DeletePrompt)
	}
}
