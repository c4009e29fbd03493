package routes

import (
	"intake_dossier/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathContent = "/content"
	PathTheme   = "/theme"
)

func addContentRoutes(rg *gin.RouterGroup, contentHandler *handlers.ContentHandler) {
	content := rg.Group(PathContent)
	{
		content.GET("/:key", contentHandler.GetContent)
		content.POST("/invalidate", contentHandler.InvalidateContent)
	}

	theme := rg.Group(PathTheme)
	{
		theme.GET("", contentHandler.GetTheme)
		theme.GET("/variables", contentHandler.GetThemeVariables)
		theme.POST("/invalidate", contentHandler.InvalidateTheme)
	}
}
