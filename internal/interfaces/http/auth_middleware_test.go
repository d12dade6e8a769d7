package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/application/dto"
	apphttp "github.com/jenil-sutariya/Smart-Kitchen-AI/internal/interfaces/http"
	"github.com/jenil-sutariya/Smart-Kitchen-AI/pkg/jwt"
)

const testSecret = "secreto-de-test"

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func buildTestApp() *fiber.App {
	app := fiber.New()
	protected := app.Group("/protected", apphttp.AuthMiddleware(testSecret))
	protected.Get("/any", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user_id": apphttp.GetUserID(c), "role": apphttp.GetRole(c)})
	})
	protected.Get("/admin", apphttp.RequireRole("admin"), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	protected.Get("/kitchen", apphttp.RequireRole("admin", "chef"), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	token, err := jwt.Generate(testSecret, "user-123", role, "smart-kitchen-test", 5)
	require.NoError(t, err)
	return token
}

func doRequest(t *testing.T, app *fiber.App, path, token string) (*nethttp.Response, dto.ErrorResponse) {
	t.Helper()
	req := httptest.NewRequest(nethttp.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)

	var errBody dto.ErrorResponse
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body = io.NopCloser(bytes.NewReader(body))
	_ = json.Unmarshal(body, &errBody)
	return resp, errBody
}

// ──────────────────────────────────────────────────────────────────────────────
// AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SinHeaderRechaza(t *testing.T) {
	app := buildTestApp()

	resp, errBody := doRequest(t, app, "/protected/any", "")

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "MISSING_TOKEN", errBody.Code)
}

func TestAuthMiddleware_TokenInvalidoRechaza(t *testing.T) {
	app := buildTestApp()

	resp, errBody := doRequest(t, app, "/protected/any", "no-es-un-jwt")

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_TOKEN", errBody.Code)
}

func TestAuthMiddleware_FirmaAjenaRechaza(t *testing.T) {
	app := buildTestApp()
	ajeno, err := jwt.Generate("otro-secreto", "user-123", "admin", "smart-kitchen-test", 5)
	require.NoError(t, err)

	resp, errBody := doRequest(t, app, "/protected/any", ajeno)

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_TOKEN", errBody.Code)
}

// El middleware deja UserID y Role en el contexto para los handlers.
func TestAuthMiddleware_ExtraeClaims(t *testing.T) {
	app := buildTestApp()

	resp, _ := doRequest(t, app, "/protected/any", tokenForRole(t, "chef"))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var claims map[string]string
	require.NoError(t, json.Unmarshal(body, &claims))
	assert.Equal(t, "user-123", claims["user_id"])
	assert.Equal(t, "chef", claims["role"])
}

// ──────────────────────────────────────────────────────────────────────────────
// RequireRole
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireRole_AdminAccede(t *testing.T) {
	app := buildTestApp()

	resp, _ := doRequest(t, app, "/protected/admin", tokenForRole(t, "admin"))

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireRole_ChefEnRutaMultiRol(t *testing.T) {
	app := buildTestApp()

	resp, _ := doRequest(t, app, "/protected/kitchen", tokenForRole(t, "chef"))

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireRole_RolSinPermiso(t *testing.T) {
	app := buildTestApp()

	resp, errBody := doRequest(t, app, "/protected/admin", tokenForRole(t, "chef"))

	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "FORBIDDEN", errBody.Code)
}

// Un token válido pero sin claim de rol es un problema de autenticación, no de
// permisos: 401, no 403.
func TestRequireRole_TokenSinRol(t *testing.T) {
	app := buildTestApp()

	resp, errBody := doRequest(t, app, "/protected/admin", tokenForRole(t, ""))

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "MISSING_ROLE", errBody.Code)
}
