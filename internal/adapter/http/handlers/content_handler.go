package handlers

import (
	"errors"
	"net/http"

	request "intake_dossier/internal/adapter/http/dto/request"
	response "intake_dossier/internal/adapter/http/dto/response"
	"intake_dossier/internal/usecase"
	"intake_dossier/internal/usecase/cache"
	"intake_dossier/internal/usecase/interfaces"
	"intake_dossier/pkg"

	"github.com/gin-gonic/gin"
)

// ContentHandler serves translated copy and the active theme.
type ContentHandler struct {
	usecase usecase.IContentUseCase
}

func NewContentHandler(uc usecase.IContentUseCase) *ContentHandler {
	return &ContentHandler{usecase: uc}
}

// GetContent godoc
// @Summary      Translate a content key
// @Description  Returns the interpolated translation, or the key itself when it is unknown. Query parameters other than lang are interpolation variables.
// @Tags         content
// @Produce      json
// @Param        key   path      string  true   "Content key"
// @Param        lang  query     string  false  "Language code"  default(en)
// @Success      200   {object}  response.ContentResponse
// @Router       /content/{key} [get]
func (h *ContentHandler) GetContent(c *gin.Context) {
	key := c.Param("key")
	q := request.ParseContentQuery(c.Request.URL.Query())
	value := h.usecase.Translate(c.Request.Context(), key, q.Lang, q.Vars)
	c.JSON(http.StatusOK, response.ContentResponse{Key: key, Lang: q.Lang, Value: value})
}

// InvalidateContent godoc
// @Summary  Drop the cached content entries
// @Tags     content
// @Produce  json
// @Success  200  {object}  response.MessageResponse
// @Router   /content/invalidate [post]
func (h *ContentHandler) InvalidateContent(c *gin.Context) {
	h.usecase.InvalidateContent()
	c.JSON(http.StatusOK, response.MessageResponse{Message: "content cache invalidated"})
}

// GetTheme godoc
// @Summary  Get the active theme
// @Tags     theme
// @Produce  json
// @Success  200  {object}  response.ThemeResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /theme [get]
func (h *ContentHandler) GetTheme(c *gin.Context) {
	theme, err := h.usecase.Theme(c.Request.Context())
	if err != nil {
		appErr := mapThemeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTheme(theme))
}

// GetThemeVariables godoc
// @Summary  Get the active theme as presentation variables
// @Tags     theme
// @Produce  json
// @Success  200  {object}  response.ThemeVariablesResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /theme/variables [get]
func (h *ContentHandler) GetThemeVariables(c *gin.Context) {
	vars, err := h.usecase.ThemeVariables(c.Request.Context())
	if err != nil {
		appErr := mapThemeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.ThemeVariablesResponse{Variables: vars})
}

// InvalidateTheme godoc
// @Summary  Drop the cached theme
// @Tags     theme
// @Produce  json
// @Success  200  {object}  response.MessageResponse
// @Router   /theme/invalidate [post]
func (h *ContentHandler) InvalidateTheme(c *gin.Context) {
	h.usecase.InvalidateTheme()
	c.JSON(http.StatusOK, response.MessageResponse{Message: "theme cache invalidated"})
}

func mapThemeError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, cache.ErrNoActiveTheme):
		return pkg.NewDomainErrorSimple("THEME_NOT_FOUND", "No active theme", http.StatusNotFound)
	case errors.Is(err, interfaces.ErrStoreUnavailable):
		return pkg.NewDomainError("STORE_UNAVAILABLE", "Storage is temporarily unavailable", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
