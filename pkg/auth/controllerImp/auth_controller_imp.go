package controllerImp

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"agrisense/config"
	"agrisense/pkg/auth/controller"
	authmw "agrisense/pkg/middleware"
)

type authCtrl struct {
	cfg config.AppConfig
}

func New(cfg config.AppConfig) controller.AuthController { return &authCtrl{cfg: cfg} }

type tokenReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type refreshReq struct {
	Refresh string `json:"refresh"`
}

func (h *authCtrl) role(username, password string) (string, bool) {
	switch {
	case username == h.cfg.AdminUser && password == h.cfg.AdminPass:
		return "admin", true
	case username == h.cfg.FarmerUser && password == h.cfg.FarmerPass:
		return "farmer", true
	}
	return "", false
}

func (h *authCtrl) sign(username, role, kind string, ttl time.Duration) (string, error) {
	claims := authmw.Claims{
		Role: role,
		Kind: kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(h.cfg.JWTSecret))
}

func (h *authCtrl) Token(c echo.Context) error {
	var req tokenReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	role, ok := h.role(req.Username, req.Password)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
	}
	ttl := time.Duration(h.cfg.TokenTTLMin) * time.Minute
	access, err := h.sign(req.Username, role, "access", ttl)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	refresh, err := h.sign(req.Username, role, "refresh", 24*time.Hour)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"access": access, "refresh": refresh})
}

func (h *authCtrl) Refresh(c echo.Context) error {
	var req refreshReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	claims, err := authmw.Parse(req.Refresh, h.cfg.JWTSecret)
	if err != nil || claims.Kind != "refresh" {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid refresh token"})
	}
	ttl := time.Duration(h.cfg.TokenTTLMin) * time.Minute
	access, err := h.sign(claims.Subject, claims.Role, "access", ttl)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"access": access})
}

func (h *authCtrl) WhoAmI(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	role, _ := c.Get("role").(string)
	return c.JSON(http.StatusOK, map[string]string{"uid": uid, "role": role})
}
