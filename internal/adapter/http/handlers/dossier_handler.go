package handlers

import (
	"errors"
	"net/http"

	response "intake_dossier/internal/adapter/http/dto/response"
	"intake_dossier/internal/domain/entities"
	"intake_dossier/internal/usecase"
	"intake_dossier/internal/usecase/interfaces"
	"intake_dossier/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DossierHandler exposes the analysis dossier of a submission to sales reps.
type DossierHandler struct {
	usecase usecase.IDossierUseCase
	logger  *zap.Logger
}

func NewDossierHandler(uc usecase.IDossierUseCase, logger *zap.Logger) *DossierHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DossierHandler{usecase: uc, logger: logger}
}

// GenerateDossier godoc
// @Summary      Generate the dossier of a submission
// @Description  Runs the analysis and writes the single dossier of the submission, overwriting any previous one.
// @Tags         dossiers
// @Produce      json
// @Param        id   path      string  true  "Submission ID"
// @Success      200  {object}  response.DossierResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /submissions/{id}/dossier [post]
func (h *DossierHandler) GenerateDossier(c *gin.Context) {
	id := c.Param("id")
	h.logger.Info("[dossier][handler] generate start", zap.String("submission_id", id))

	rec, err := h.usecase.Generate(c.Request.Context(), id)
	if err != nil {
		h.logger.Warn("[dossier][handler] generate failed", zap.String("submission_id", id), zap.Error(err))
		appErr := mapDossierError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	h.respond(c, rec)
}

// GetDossier godoc
// @Summary      Get the dossier of a submission
// @Tags         dossiers
// @Produce      json
// @Param        id   path      string  true  "Submission ID"
// @Success      200  {object}  response.DossierResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /submissions/{id}/dossier [get]
func (h *DossierHandler) GetDossier(c *gin.Context) {
	rec, err := h.usecase.GetBySubmissionID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDossierError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	h.respond(c, rec)
}

// FinalizeDossier godoc
// @Summary      Mark the dossier as final
// @Tags         dossiers
// @Produce      json
// @Param        id   path      string  true  "Submission ID"
// @Success      200  {object}  response.DossierResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /submissions/{id}/dossier/finalize [patch]
func (h *DossierHandler) FinalizeDossier(c *gin.Context) {
	id := c.Param("id")
	rec, err := h.usecase.Finalize(c.Request.Context(), id)
	if err != nil {
		appErr := mapDossierError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	h.logger.Info("[dossier][handler] finalized", zap.String("submission_id", id), zap.String("dossier_id", rec.ID()))
	h.respond(c, rec)
}

func (h *DossierHandler) respond(c *gin.Context, rec entities.Record) {
	out, err := response.FromDossier(rec)
	if err != nil {
		h.logger.Error("[dossier][handler] stored dossier unreadable", zap.String("dossier_id", rec.ID()), zap.Error(err))
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, out)
}

func mapDossierError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSubmissionID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSubmissionNotFound):
		return pkg.NewDomainErrorSimple("SUBMISSION_NOT_FOUND", "Submission not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDossierNotFound), errors.Is(err, interfaces.ErrNotFound):
		return pkg.NewDomainErrorSimple("DOSSIER_NOT_FOUND", "Dossier not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDossierConflict), errors.Is(err, interfaces.ErrWrite):
		return pkg.NewDomainError("DOSSIER_CONFLICT", "Dossier was written concurrently, retry", err, http.StatusConflict)
	case errors.Is(err, interfaces.ErrAnalysisCapability):
		return pkg.NewDomainError("ANALYSIS_FAILED", "Analysis capability failed", err, http.StatusBadGateway)
	case errors.Is(err, interfaces.ErrStoreUnavailable):
		return pkg.NewDomainError("STORE_UNAVAILABLE", "Storage is temporarily unavailable", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
