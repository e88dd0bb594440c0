package v1

import (
	"net/http"
	"strings"

	"github.com/shri8977/FUTURE-FS-01/internal/delivery/http/response"
	"github.com/shri8977/FUTURE-FS-01/internal/domain"
	"github.com/shri8977/FUTURE-FS-01/internal/usecase"
	"github.com/shri8977/FUTURE-FS-01/pkg/apperror"
	"github.com/shri8977/FUTURE-FS-01/pkg/validation"

	"github.com/gin-gonic/gin"
)

const (
	prefersColorSchemeHint = "Sec-CH-Prefers-Color-Scheme"
	themeCookieMaxAge      = 365 * 24 * 60 * 60
)

type ThemeHandler struct {
	secureCookie bool
}

func NewThemeHandler(v1 *gin.RouterGroup, secureCookie bool) {
	handler := &ThemeHandler{secureCookie: secureCookie}

	theme := v1.Group("/theme")
	theme.GET("", handler.Get)
	theme.PUT("", handler.Set)
	theme.POST("/toggle", handler.Toggle)
}

// Get godoc
// @Summary      Current theme
// @Tags         theme
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.ThemeResponse}
// @Router       /v1/theme [get]
func (h *ThemeHandler) Get(c *gin.Context) {
	pref := h.preference(c)
	response.Success(c, http.StatusOK, "Theme loaded", domain.ThemeResponse{Theme: pref.Load()})
}

// Set godoc
// @Summary      Persist theme
// @Tags         theme
// @Accept       json
// @Produce      json
// @Param        theme  body      domain.ThemeRequest  true  "Theme"
// @Success      200    {object}  response.Response{data=domain.ThemeResponse}
// @Failure      400    {object}  response.Response
// @Router       /v1/theme [put]
func (h *ThemeHandler) Set(c *gin.Context) {
	var req domain.ThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(validation.Summary(err)))
		return
	}

	pref := h.preference(c)
	if err := pref.Set(req.Theme); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	response.Success(c, http.StatusOK, "Theme updated", domain.ThemeResponse{Theme: req.Theme})
}

// Toggle godoc
// @Summary      Flip between light and dark
// @Tags         theme
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.ThemeResponse}
// @Router       /v1/theme/toggle [post]
func (h *ThemeHandler) Toggle(c *gin.Context) {
	pref := h.preference(c)
	response.Success(c, http.StatusOK, "Theme updated", domain.ThemeResponse{Theme: pref.Toggle()})
}

func (h *ThemeHandler) preference(c *gin.Context) *usecase.ThemePreference {
	// ask the browser to send the colour-scheme hint on later requests
	c.Header("Accept-CH", prefersColorSchemeHint)
	c.Writer.Header().Add("Vary", prefersColorSchemeHint)

	systemDark := strings.Trim(c.GetHeader(prefersColorSchemeHint), `" `) == string(domain.ThemeDark)
	return usecase.NewThemePreference(&cookieThemeStore{c: c, secure: h.secureCookie}, systemDark)
}

// cookieThemeStore persists the preference in a first-party cookie
type cookieThemeStore struct {
	c      *gin.Context
	secure bool
}

func (s *cookieThemeStore) Get(key string) (string, bool) {
	v, err := s.c.Cookie(key)
	if err != nil || v == "" {
		return "", false
	}
	return v, true
}

func (s *cookieThemeStore) Set(key, value string) {
	s.c.SetSameSite(http.SameSiteLaxMode)
	// readable from script so the page can apply it before first paint
	s.c.SetCookie(key, value, themeCookieMaxAge, "/", "", s.secure, false)
}
