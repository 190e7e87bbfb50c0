package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/cobrepro/pedidos-api/internal/interfaces/http"
	"github.com/cobrepro/pedidos-api/internal/domain/entity"
	pkgjwt "github.com/cobrepro/pedidos-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret  = "test-secret-key-for-unit-tests"
	testUserID     = "00000000-0000-0000-0000-000000000001"
	testTenantID   = "00000000-0000-0000-0000-000000000002"
	testCustomerID = "00000000-0000-0000-0000-000000000003"
	testIssuer     = "pedidos-api-test"
	testExpMin     = 60
)

// buildTestApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para parsear el JWT y materializar la sesión
//   - RequireRole para autorizar el acceso
//   - Un handler dummy que devuelve la sesión resuelta si pasa los middlewares
func buildTestApp(allowedRoles ...entity.Role) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			s, _ := apphttp.GetSession(c)
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"id":        s.ID,
				"role":      s.Role,
				"tenant_id": s.TenantID,
			})
		},
	)
	return app
}

// tokenFor genera un JWT con el rol indicado.
func tokenFor(t *testing.T, role entity.Role, customerID string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testTenantID,
		role.String(), "Actor de Prueba", customerID, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

func doRequest(t *testing.T, app *fiber.App, authHeader string) (*http.Response, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]any
	_ = json.Unmarshal(body, &out)
	return resp, out
}

// ──────────────────────────────────────────────────────────────────────────────
// AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SinTokenEs401(t *testing.T) {
	app := buildTestApp(entity.RoleAdmin)
	resp, out := doRequest(t, app, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "MISSING_TOKEN", out["code"])
}

func TestAuthMiddleware_TokenInvalidoEs401(t *testing.T) {
	app := buildTestApp(entity.RoleAdmin)
	resp, out := doRequest(t, app, "Bearer no-es-un-jwt")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_TOKEN", out["code"])
}

func TestAuthMiddleware_FormatoIncorrectoEs401(t *testing.T) {
	app := buildTestApp(entity.RoleAdmin)
	resp, _ := doRequest(t, app, "Basic abc123")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_FirmaDeOtroSecretoEs401(t *testing.T) {
	app := buildTestApp(entity.RoleAdmin)
	tok, err := pkgjwt.Generate("otro-secreto", testUserID, testTenantID,
		entity.RoleAdmin.String(), "Actor", "", testIssuer, testExpMin)
	require.NoError(t, err)
	resp, _ := doRequest(t, app, "Bearer "+tok)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_SesionClienteUsaElIDDelCustomer(t *testing.T) {
	app := buildTestApp(entity.RoleCliente)
	resp, out := doRequest(t, app, tokenFor(t, entity.RoleCliente, testCustomerID))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, testCustomerID, out["id"],
		"para rol cliente el ID de sesión es el del Customer")
	assert.Equal(t, testTenantID, out["tenant_id"])
}

func TestAuthMiddleware_SesionInternaUsaElIDDelUsuario(t *testing.T) {
	app := buildTestApp(entity.RoleInterno)
	resp, out := doRequest(t, app, tokenFor(t, entity.RoleInterno, ""))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, testUserID, out["id"])
}

// ──────────────────────────────────────────────────────────────────────────────
// RequireRole
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireRole_RolPermitidoPasa(t *testing.T) {
	app := buildTestApp(entity.RoleAdmin, entity.RoleInterno)
	resp, _ := doRequest(t, app, tokenFor(t, entity.RoleInterno, ""))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireRole_RolNoPermitidoEs403(t *testing.T) {
	app := buildTestApp(entity.RoleAdmin, entity.RoleInterno)
	resp, out := doRequest(t, app, tokenFor(t, entity.RoleCliente, testCustomerID))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "UNAUTHORIZED", out["code"])
}
