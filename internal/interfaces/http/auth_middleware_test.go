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

	apphttp "github.com/fulfila/fulfila-api/internal/interfaces/http"
	pkgjwt "github.com/fulfila/fulfila-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de teste
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testEmpresaID = "00000000-0000-0000-0000-000000000002"
	testIssuer    = "fulfila-test"
	testExpMin    = 60
)

// buildTestApp monta um app Fiber mínimo com:
//   - AuthMiddleware para validar o JWT e carregar os locals
//   - RequireRole para autorizar o acesso
//   - Um handler dummy que devolve 200 se passar pelos middlewares
func buildTestApp(allowedRoles ...string) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":   true,
				"role": apphttp.GetRole(c),
			})
		},
	)
	return app
}

// tokenForRole gera um JWT com o papel indicado.
func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testEmpresaID, role, testIssuer, testExpMin)
	require.NoError(t, err, "deve gerar um token JWT válido")
	return "Bearer " + tok
}

// doRequest dispara GET /protected e devolve a resposta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Testes RequireRole
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireRole_AdminAcessaRotaAdmin(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, tokenForRole(t, "admin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"admin deve acessar rota restrita a admin")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"], "a resposta deve incluir ok:true")
	assert.Equal(t, "admin", body["role"], "o role deve ser admin")
}

func TestRequireRole_OperadorAcessaRotaAdminOuOperador(t *testing.T) {
	app := buildTestApp("admin", "operador")
	resp := doRequest(t, app, tokenForRole(t, "operador"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"operador deve acessar rota que permite admin ou operador")
}

func TestRequireRole_SeparadorBloqueadoEmRotaDeGestao(t *testing.T) {
	app := buildTestApp("admin", "operador")
	resp := doRequest(t, app, tokenForRole(t, "separador"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"separador não deve acessar rota restrita a admin/operador")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN",
		"a resposta de erro deve incluir o código FORBIDDEN")
}

func TestRequireRole_TokenSemRole_Retorna401(t *testing.T) {
	// Token com papel vazio simula um token legado sem o claim.
	app := buildTestApp("admin")
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testEmpresaID, "", testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"token sem papel deve retornar 401")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_ROLE",
		"a resposta deve indicar o código MISSING_ROLE")
}

func TestRequireRole_SemAuthHeader_Retorna401(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, "") // sem header
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireRole_TokenInvalido_Retorna401(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Testes AuthMiddleware — extração dos claims do token
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_ExtraiClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id":    apphttp.GetUserID(c),
			"empresa_id": apphttp.GetEmpresaID(c),
			"role":       apphttp.GetRole(c),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", tokenForRole(t, "admin"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, testEmpresaID, body["empresa_id"])
	assert.Equal(t, "admin", body["role"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Testes do pkg jwt — integridade do generate/parse com role
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParse_ComRole(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testEmpresaID, "separador", testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, empresaID, role, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, userID)
	assert.Equal(t, testEmpresaID, empresaID)
	assert.Equal(t, "separador", role)
}

func TestJWT_TokenExpirado_RetornaErro(t *testing.T) {
	// Token com expiração -1 minuto (já expirado).
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testEmpresaID, "admin", testIssuer, -1)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.Error(t, err, "token expirado deve retornar erro")
}

func TestJWT_SecretIncorreto_RetornaErro(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testEmpresaID, "admin", testIssuer, testExpMin)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse("outro-secret-completamente-diferente", tok)
	assert.Error(t, err, "secret incorreto deve invalidar o token")
}
