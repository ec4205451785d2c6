package truck

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db := setupDB(t)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{"error": e.Message})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erro interno do servidor"})
		},
	})
	app.Post("/api/trucks", CreateTruckHandler(db))
	app.Get("/api/trucks", ListTrucksHandler(db))
	app.Get("/api/trucks/:id", GetTruckHandler(db))
	app.Put("/api/trucks/:id", UpdateTruckHandler(db))
	app.Delete("/api/trucks/:id", DeleteTruckHandler(db))
	return app, db
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestCreateTruck(t *testing.T) {
	app, _ := setupApp(t)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/trucks", fiber.Map{"plate": "  abc-1234 "}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, err = app.Test(jsonRequest(t, http.MethodGet, "/api/trucks/1", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Placa normalizada: sem espaços e em maiúsculas
	body := decodeBody(t, resp)
	assert.Equal(t, "ABC-1234", body["plate"])
}

func TestCreateTruckDuplicatePlate(t *testing.T) {
	app, _ := setupApp(t)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/trucks", fiber.Map{"plate": "DUP-0001"}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, err = app.Test(jsonRequest(t, http.MethodPost, "/api/trucks", fiber.Map{"plate": "DUP-0001"}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "Placa já cadastrada", decodeBody(t, resp)["error"])
}

func TestCreateTruckMissingPlate(t *testing.T) {
	app, _ := setupApp(t)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/trucks", fiber.Map{"plate": "   "}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Placa é obrigatória", decodeBody(t, resp)["error"])
}

func TestGetTruckNotFound(t *testing.T) {
	app, _ := setupApp(t)

	resp, err := app.Test(jsonRequest(t, http.MethodGet, "/api/trucks/42", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Caminhão não encontrado", decodeBody(t, resp)["error"])
}

func TestUpdateTruckConflict(t *testing.T) {
	app, _ := setupApp(t)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/trucks", fiber.Map{"plate": "AAA-0001"}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	resp, err = app.Test(jsonRequest(t, http.MethodPost, "/api/trucks", fiber.Map{"plate": "BBB-0002"}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, err = app.Test(jsonRequest(t, http.MethodPut, "/api/trucks/2", fiber.Map{"plate": "AAA-0001"}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestDeleteTruckNotFound(t *testing.T) {
	app, _ := setupApp(t)

	resp, err := app.Test(jsonRequest(t, http.MethodDelete, "/api/trucks/7", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
