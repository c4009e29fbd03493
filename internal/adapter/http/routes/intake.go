package routes

import (
	"intake_dossier/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathSubmissions = "/submissions"
)

func addIntakeRoutes(rg *gin.RouterGroup, submissionHandler *handlers.SubmissionHandler, dossierHandler *handlers.DossierHandler) {
	submissions := rg.Group(PathSubmissions)
	{
		// Wizard.
		submissions.POST("", submissionHandler.StartSubmission)
		submissions.GET("", submissionHandler.FindByAccessCode)
		submissions.GET("/:id", submissionHandler.GetSubmission)
		submissions.PATCH("/:id", submissionHandler.SaveStep)
		submissions.POST("/:id/submit", submissionHandler.Submit)

		// Sales rep dossier.
		submissions.POST("/:id/dossier", dossierHandler.GenerateDossier)
		submissions.GET("/:id/dossier", dossierHandler.GetDossier)
		submissions.PATCH("/:id/dossier/finalize", dossierHandler.FinalizeDossier)
	}
}
