package auth

import (
	"net/http"

	"github.com/saulo-duarte/vinquiz/internal/config"
)

type Handler struct {
	cookieDomain string
}

func NewHandler(cookieDomain string) *Handler {
	return &Handler{cookieDomain: cookieDomain}
}

// SetSessionCookie stores token in the jwt cookie read by AuthMiddleware.
func SetSessionCookie(w http.ResponseWriter, token, domain string, maxAge int) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		Domain:   domain,
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	SetSessionCookie(w, "", h.cookieDomain, -1)

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "logout successful",
	})
}
