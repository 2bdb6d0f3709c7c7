package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mediazone/internal/adapter/api"
	"mediazone/internal/adapter/repository"
	"mediazone/internal/usecase"
)

func newProductTestHandler(t *testing.T) (*echo.Echo, *ProductHandler) {
	t.Helper()

	e := echo.New()
	e.Validator = api.NewValidator()

	repo := repository.NewJSONFileProductRepository(t.TempDir())
	return e, NewProductHandler(usecase.NewProductUseCase(repo))
}

func TestCreateProductReturns201(t *testing.T) {
	e, h := newProductTestHandler(t)

	body := `{"title": "Elden Ring", "category": "Games", "price": 36000, "stock": 5}`
	req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.CreateProduct(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var created map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "1", created["id"])
	assert.Equal(t, "Elden Ring", created["title"])
}

func TestCreateProductMissingTitleReturns400(t *testing.T) {
	e, h := newProductTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(`{"price": 100}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.CreateProduct(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateProductMissingPriceReturns400(t *testing.T) {
	e, h := newProductTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(`{"title": "Elden Ring"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.CreateProduct(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetProductUnknownIdReturns404(t *testing.T) {
	e, h := newProductTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/products/99", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("99")

	require.NoError(t, h.GetProduct(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "error")
}

func TestListProductsReturnsArray(t *testing.T) {
	e, h := newProductTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.ListProducts(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestDeleteProduct(t *testing.T) {
	e, h := newProductTestHandler(t)

	body := `{"title": "Gaming Mouse", "price": 30000}`
	req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, h.CreateProduct(e.NewContext(req, rec)))

	req = httptest.NewRequest(http.MethodDelete, "/products/1", nil)
	rec = httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	require.NoError(t, h.DeleteProduct(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success": true}`, rec.Body.String())

	// Deleting again is a 404.
	rec = httptest.NewRecorder()
	c = e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, h.DeleteProduct(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateProductPatchesFields(t *testing.T) {
	e, h := newProductTestHandler(t)

	body := `{"title": "MacBook Pro", "price": 1500000}`
	req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, h.CreateProduct(e.NewContext(req, rec)))

	req = httptest.NewRequest(http.MethodPatch, "/products/1", strings.NewReader(`{"price": 1400000}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec = httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	require.NoError(t, h.UpdateProduct(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var updated map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, 1400000.0, updated["price"])
	assert.Equal(t, "MacBook Pro", updated["title"])
}
