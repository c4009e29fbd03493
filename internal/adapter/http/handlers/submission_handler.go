package handlers

import (
	"errors"
	"io"
	"net/http"

	request "intake_dossier/internal/adapter/http/dto/request"
	response "intake_dossier/internal/adapter/http/dto/response"
	"intake_dossier/internal/usecase"
	"intake_dossier/internal/usecase/interfaces"
	"intake_dossier/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidSubmissionPayload = pkg.NewDomainErrorSimple("INVALID_SUBMISSION_INPUT", "Invalid submission payload", http.StatusBadRequest)
	errMissingAccessCode        = pkg.NewDomainErrorSimple("INVALID_REQUEST", "access_code is required", http.StatusBadRequest)
)

// SubmissionHandler serves the intake wizard.
type SubmissionHandler struct {
	usecase usecase.ISubmissionUseCase
	logger  *zap.Logger
}

func NewSubmissionHandler(uc usecase.ISubmissionUseCase, logger *zap.Logger) *SubmissionHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SubmissionHandler{usecase: uc, logger: logger}
}

// StartSubmission godoc
// @Summary      Start a submission
// @Description  Creates a submission from the first wizard step.
// @Tags         submissions
// @Accept       json
// @Produce      json
// @Param        form  body      map[string]interface{}  true  "Wizard form data"
// @Success      201   {object}  map[string]interface{}
// @Failure      400   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /submissions [post]
func (h *SubmissionHandler) StartSubmission(c *gin.Context) {
	form, ok := bindForm(c)
	if !ok {
		return
	}

	created, err := h.usecase.Start(c.Request.Context(), form.Fields())
	if err != nil {
		h.logger.Warn("[submission][handler] start failed", zap.Error(err))
		appErr := mapSubmissionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromSubmission(created))
}

// SaveStep godoc
// @Summary      Save a wizard step
// @Tags         submissions
// @Accept       json
// @Produce      json
// @Param        id    path      string                  true  "Submission ID"
// @Param        form  body      map[string]interface{}  true  "Wizard form data"
// @Success      200   {object}  map[string]interface{}
// @Failure      404   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /submissions/{id} [patch]
func (h *SubmissionHandler) SaveStep(c *gin.Context) {
	id := c.Param("id")
	form, ok := bindForm(c)
	if !ok {
		return
	}

	updated, err := h.usecase.SaveStep(c.Request.Context(), id, form.Fields())
	if err != nil {
		h.logger.Warn("[submission][handler] save step failed", zap.String("submission_id", id), zap.Error(err))
		appErr := mapSubmissionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSubmission(updated))
}

// Submit godoc
// @Summary      Submit a submission
// @Description  Saves the last step and marks the submission as submitted.
// @Tags         submissions
// @Accept       json
// @Produce      json
// @Param        id    path      string                  true   "Submission ID"
// @Param        form  body      map[string]interface{}  false  "Final wizard form data"
// @Success      200   {object}  map[string]interface{}
// @Failure      404   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /submissions/{id}/submit [post]
func (h *SubmissionHandler) Submit(c *gin.Context) {
	id := c.Param("id")
	form, ok := bindForm(c)
	if !ok {
		return
	}

	submitted, err := h.usecase.Submit(c.Request.Context(), id, form.Fields())
	if err != nil {
		h.logger.Warn("[submission][handler] submit failed", zap.String("submission_id", id), zap.Error(err))
		appErr := mapSubmissionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	h.logger.Info("[submission][handler] submitted", zap.String("submission_id", id))
	c.JSON(http.StatusOK, response.FromSubmission(submitted))
}

// GetSubmission godoc
// @Summary      Get a submission by id
// @Tags         submissions
// @Produce      json
// @Param        id   path      string  true  "Submission ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  pkg.HTTPError
// @Router       /submissions/{id} [get]
func (h *SubmissionHandler) GetSubmission(c *gin.Context) {
	got, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapSubmissionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSubmission(got))
}

// FindByAccessCode godoc
// @Summary      Resume a submission by access code
// @Tags         submissions
// @Produce      json
// @Param        access_code  query     string  true  "Access code"
// @Success      200          {object}  map[string]interface{}
// @Failure      400          {object}  pkg.HTTPError
// @Failure      404          {object}  pkg.HTTPError
// @Router       /submissions [get]
func (h *SubmissionHandler) FindByAccessCode(c *gin.Context) {
	var q request.AccessCodeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(errMissingAccessCode.HTTPStatus, errMissingAccessCode.ToHTTPError())
		return
	}
	code, err := q.Resolve()
	if err != nil {
		c.JSON(errMissingAccessCode.HTTPStatus, errMissingAccessCode.ToHTTPError())
		return
	}

	got, err := h.usecase.GetByAccessCode(c.Request.Context(), code)
	if err != nil {
		appErr := mapSubmissionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSubmission(got))
}

// bindForm reads the JSON form body. An empty body is an empty form.
func bindForm(c *gin.Context) (request.SubmissionForm, bool) {
	var form request.SubmissionForm
	if err := c.ShouldBindJSON(&form); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(errInvalidSubmissionPayload.HTTPStatus, errInvalidSubmissionPayload.ToHTTPError())
		return nil, false
	}
	return form, true
}

func mapSubmissionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSubmissionID), errors.Is(err, usecase.ErrInvalidAccessCode):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSubmissionNotFound), errors.Is(err, interfaces.ErrNotFound):
		return pkg.NewDomainErrorSimple("SUBMISSION_NOT_FOUND", "Submission not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSubmissionFinalized):
		return pkg.NewDomainErrorSimple("SUBMISSION_FINALIZED", "Submission can no longer be edited", http.StatusConflict)
	case errors.Is(err, interfaces.ErrWrite):
		return pkg.NewDomainError("SUBMISSION_CONFLICT", "Submission could not be written", err, http.StatusConflict)
	case errors.Is(err, interfaces.ErrStoreUnavailable):
		return pkg.NewDomainError("STORE_UNAVAILABLE", "Storage is temporarily unavailable", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
