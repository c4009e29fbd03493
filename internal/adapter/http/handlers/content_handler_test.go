package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"intake_dossier/internal/adapter/http/handlers/mocks"
	"intake_dossier/internal/domain/entities"
	"intake_dossier/internal/usecase/cache"
	"intake_dossier/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestContentHandler_GetContent(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("passes lang and variables", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContentUseCase(ctrl)
		h := NewContentHandler(uc)

		r := gin.New()
		r.GET("/v1/content/:key", h.GetContent)

		uc.EXPECT().Translate(gomock.Any(), "hero.title", "es", map[string]string{"name": "Ana"}).Return("Hola Ana")

		w := doJSON(r, http.MethodGet, "/v1/content/hero.title?lang=es&name=Ana", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["value"] != "Hola Ana" || body["lang"] != "es" || body["key"] != "hero.title" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("defaults to english", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContentUseCase(ctrl)
		h := NewContentHandler(uc)

		r := gin.New()
		r.GET("/v1/content/:key", h.GetContent)

		uc.EXPECT().Translate(gomock.Any(), "missing.key", "en", map[string]string{}).Return("missing.key")

		w := doJSON(r, http.MethodGet, "/v1/content/missing.key", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invalidate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContentUseCase(ctrl)
		h := NewContentHandler(uc)

		r := gin.New()
		r.POST("/v1/content/invalidate", h.InvalidateContent)

		uc.EXPECT().InvalidateContent().Times(1)

		w := doJSON(r, http.MethodPost, "/v1/content/invalidate", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestContentHandler_Theme(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("active theme", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContentUseCase(ctrl)
		h := NewContentHandler(uc)

		r := gin.New()
		r.GET("/v1/theme", h.GetTheme)

		uc.EXPECT().Theme(gomock.Any()).Return(entities.Theme{ID: "t1", Name: "Harbor", Colors: map[string]any{"primary": "#123456"}}, nil)

		w := doJSON(r, http.MethodGet, "/v1/theme", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["name"] != "Harbor" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("no active theme", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContentUseCase(ctrl)
		h := NewContentHandler(uc)

		r := gin.New()
		r.GET("/v1/theme", h.GetTheme)

		uc.EXPECT().Theme(gomock.Any()).Return(entities.Theme{}, cache.ErrNoActiveTheme)

		w := doJSON(r, http.MethodGet, "/v1/theme", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("variables", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContentUseCase(ctrl)
		h := NewContentHandler(uc)

		r := gin.New()
		r.GET("/v1/theme/variables", h.GetThemeVariables)

		uc.EXPECT().ThemeVariables(gomock.Any()).Return(map[string]string{"--color-primary": "#123456"}, nil)

		w := doJSON(r, http.MethodGet, "/v1/theme/variables", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Variables map[string]string `json:"variables"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Variables["--color-primary"] != "#123456" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("variables store unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContentUseCase(ctrl)
		h := NewContentHandler(uc)

		r := gin.New()
		r.GET("/v1/theme/variables", h.GetThemeVariables)

		uc.EXPECT().ThemeVariables(gomock.Any()).
			Return(nil, interfaces.NewStoreError(interfaces.ErrStoreUnavailable, entities.CollectionTheme, "filter", errors.New("down")))

		w := doJSON(r, http.MethodGet, "/v1/theme/variables", "")
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("invalidate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContentUseCase(ctrl)
		h := NewContentHandler(uc)

		r := gin.New()
		r.POST("/v1/theme/invalidate", h.InvalidateTheme)

		uc.EXPECT().InvalidateTheme().Times(1)

		w := doJSON(r, http.MethodPost, "/v1/theme/invalidate", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
