package controller_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ds-burguer/app/controller"
	"ds-burguer/app/router"
	"ds-burguer/models"
	"ds-burguer/repository"
	"ds-burguer/service"
)

// fakeEditor stands in for the Gemini gateway.
type fakeEditor struct {
	result []byte
	err    error
}

func (f *fakeEditor) EditImage(ctx context.Context, image []byte, mimeType, instruction string) ([]byte, error) {
	return f.result, f.err
}

type testEnv struct {
	mux      *http.ServeMux
	sessions *repository.SessionRepository
	prefs    *repository.MemoryPreferenceRepository
}

func newTestEnv(t *testing.T, editor service.ImageEditorInterface) *testEnv {
	t.Helper()

	menuRepo := repository.NewMenuRepository()
	sessions := repository.NewSessionRepository()
	prefs := repository.NewMemoryPreferenceRepository()
	backgroundService := service.NewBackgroundService(prefs)
	checkoutService := service.NewCheckoutService("244940723636")
	cardService := service.NewMenuCardService(menuRepo, "http://localhost:8080")

	controllers := &router.Controllers{
		Menu:       controller.NewMenuController(menuRepo, cardService),
		Session:    controller.NewSessionController(sessions, menuRepo),
		Checkout:   controller.NewCheckoutController(sessions, checkoutService),
		Background: controller.NewBackgroundController(backgroundService),
		Studio:     controller.NewStudioController(sessions, editor, backgroundService),
	}

	return &testEnv{
		mux:      router.NewMux(controllers),
		sessions: sessions,
		prefs:    prefs,
	}
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	e.mux.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) createSession(t *testing.T) string {
	t.Helper()

	rec := e.do(t, http.MethodPost, "/sessions", nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp models.SessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.ID)
	return resp.ID
}

func decodeSession(t *testing.T, rec *httptest.ResponseRecorder) models.SessionResponse {
	t.Helper()
	var resp models.SessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestGetMenu(t *testing.T) {
	env := newTestEnv(t, nil)

	rec := env.do(t, http.MethodGet, "/menu", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.MenuResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "open", resp.Status)
	assert.Len(t, resp.Categories, 4)
	assert.Len(t, resp.Menu[models.CategoryBurgers], 3)
}

func TestGetCategory(t *testing.T) {
	env := newTestEnv(t, nil)

	rec := env.do(t, http.MethodGet, "/menu/bebidas", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.CategoryProductsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "BEBIDAS", resp.Label)
	assert.Len(t, resp.Products, 2)

	rec = env.do(t, http.MethodGet, "/menu/pizza", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// The AI panel is a view, not a menu section
	rec = env.do(t, http.MethodGet, "/menu/ai-studio", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCartFlow(t *testing.T) {
	env := newTestEnv(t, nil)
	id := env.createSession(t)

	rec := env.do(t, http.MethodPost, "/sessions/"+id+"/cart", models.UpdateCartRequest{ProductID: 1, Delta: 1})
	require.Equal(t, http.StatusOK, rec.Code)
	rec = env.do(t, http.MethodPost, "/sessions/"+id+"/cart", models.UpdateCartRequest{ProductID: 1, Delta: 1})
	require.Equal(t, http.StatusOK, rec.Code)
	rec = env.do(t, http.MethodPost, "/sessions/"+id+"/cart", models.UpdateCartRequest{ProductID: 5, Delta: 1})
	require.Equal(t, http.StatusOK, rec.Code)

	snapshot := decodeSession(t, rec)
	assert.Equal(t, 3, snapshot.TotalCount)
	assert.Equal(t, int64(4400), snapshot.TotalPrice)
	require.Len(t, snapshot.Cart.Lines, 2)

	// Decrement to zero removes the line
	rec = env.do(t, http.MethodPost, "/sessions/"+id+"/cart", models.UpdateCartRequest{ProductID: 5, Delta: -1})
	snapshot = decodeSession(t, rec)
	assert.Equal(t, 2, snapshot.TotalCount)
	require.Len(t, snapshot.Cart.Lines, 1)

	// Unknown product
	rec = env.do(t, http.MethodPost, "/sessions/"+id+"/cart", models.UpdateCartRequest{ProductID: 999, Delta: 1})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCartDecrementMissingLineIsNoop(t *testing.T) {
	env := newTestEnv(t, nil)
	id := env.createSession(t)

	rec := env.do(t, http.MethodPost, "/sessions/"+id+"/cart", models.UpdateCartRequest{ProductID: 4, Delta: -1})
	require.Equal(t, http.StatusOK, rec.Code)

	snapshot := decodeSession(t, rec)
	assert.Equal(t, 0, snapshot.TotalCount)
	assert.Empty(t, snapshot.Cart.Lines)
}

func TestSetCategory(t *testing.T) {
	env := newTestEnv(t, nil)
	id := env.createSession(t)

	rec := env.do(t, http.MethodPut, "/sessions/"+id+"/category", models.SetCategoryRequest{Category: models.CategoryAIStudio})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.CategoryAIStudio, decodeSession(t, rec).ActiveCategory)

	rec = env.do(t, http.MethodPut, "/sessions/"+id+"/category", models.SetCategoryRequest{Category: "pizza"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheckoutFlow(t *testing.T) {
	env := newTestEnv(t, nil)
	id := env.createSession(t)

	env.do(t, http.MethodPost, "/sessions/"+id+"/cart", models.UpdateCartRequest{ProductID: 1, Delta: 1})
	env.do(t, http.MethodPost, "/sessions/"+id+"/cart", models.UpdateCartRequest{ProductID: 1, Delta: 1})
	env.do(t, http.MethodPost, "/sessions/"+id+"/cart", models.UpdateCartRequest{ProductID: 5, Delta: 1})

	rec := env.do(t, http.MethodPost, "/sessions/"+id+"/checkout/open", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeSession(t, rec).CheckoutOpen)

	rec = env.do(t, http.MethodPost, "/sessions/"+id+"/checkout/submit", models.CheckoutRequest{
		Name:    "Ana Domingos",
		Phone:   "+244 940 000 000",
		Address: "Maianga, Luanda",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.CheckoutResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.TotalCount)
	assert.Equal(t, int64(4400), resp.TotalPrice)
	assert.Contains(t, resp.Message, "• 2x Hamburguer Simples (4000 Kz)")
	assert.Contains(t, resp.Message, "• 1x Água Mineral (400 Kz)")
	assert.Contains(t, resp.Message, "*TOTAL: 4400 Kz*")
	assert.Contains(t, resp.WhatsAppURL, "https://wa.me/244940723636?text=")

	// Submission consumed the cart and closed the dialog
	rec = env.do(t, http.MethodGet, "/sessions/"+id, nil)
	snapshot := decodeSession(t, rec)
	assert.Equal(t, 0, snapshot.TotalCount)
	assert.False(t, snapshot.CheckoutOpen)
}

func TestCheckoutUnreachableWithEmptyCart(t *testing.T) {
	env := newTestEnv(t, nil)
	id := env.createSession(t)

	rec := env.do(t, http.MethodPost, "/sessions/"+id+"/checkout/open", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Submit is also rejected while the dialog is closed
	rec = env.do(t, http.MethodPost, "/sessions/"+id+"/checkout/submit", models.CheckoutRequest{
		Name:    "Ana",
		Phone:   "+244",
		Address: "Luanda",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCheckoutSubmitRequiresContactFields(t *testing.T) {
	env := newTestEnv(t, nil)
	id := env.createSession(t)

	env.do(t, http.MethodPost, "/sessions/"+id+"/cart", models.UpdateCartRequest{ProductID: 1, Delta: 1})
	env.do(t, http.MethodPost, "/sessions/"+id+"/checkout/open", nil)

	rec := env.do(t, http.MethodPost, "/sessions/"+id+"/checkout/submit", models.CheckoutRequest{
		Name:    "Ana",
		Address: "Luanda",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// A failed submit keeps the draft: dialog still open, cart intact
	rec = env.do(t, http.MethodGet, "/sessions/"+id, nil)
	snapshot := decodeSession(t, rec)
	assert.True(t, snapshot.CheckoutOpen)
	assert.Equal(t, 1, snapshot.TotalCount)
}

func TestStudioEdit(t *testing.T) {
	generated := []byte("png-bytes")
	env := newTestEnv(t, &fakeEditor{result: generated})
	id := env.createSession(t)

	rec := env.do(t, http.MethodPost, "/sessions/"+id+"/studio/edit", models.StudioEditRequest{
		ImageBase64:   base64.StdEncoding.EncodeToString([]byte("source")),
		MimeType:      "image/jpeg",
		Prompt:        "torna o ambiente futurista",
		SetBackground: true,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.StudioEditResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, base64.StdEncoding.EncodeToString(generated), resp.ImageBase64)
	assert.Equal(t, "image/png", resp.MimeType)
	require.NotEmpty(t, resp.Background)

	// The result was promoted to the app backdrop
	rec = env.do(t, http.MethodGet, "/background", nil)
	var bg models.BackgroundResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &bg))
	assert.True(t, bg.Custom)
	assert.Equal(t, resp.Background, bg.Value)
}

func TestStudioEditFailureSurfacesGenericError(t *testing.T) {
	env := newTestEnv(t, &fakeEditor{err: fmt.Errorf("model exploded")})
	id := env.createSession(t)

	rec := env.do(t, http.MethodPost, "/sessions/"+id+"/studio/edit", models.StudioEditRequest{
		ImageBase64: base64.StdEncoding.EncodeToString([]byte("source")),
		MimeType:    "image/jpeg",
		Prompt:      "adiciona neve",
	})
	assert.Equal(t, http.StatusBadGateway, rec.Code)

	// The in-flight flag was released: a retry is allowed
	session, ok := env.sessions.Get(id)
	require.True(t, ok)
	session.Lock()
	assert.False(t, session.Generating)
	session.Unlock()
}

func TestStudioEditRejectsConcurrentGeneration(t *testing.T) {
	env := newTestEnv(t, &fakeEditor{result: []byte("png")})
	id := env.createSession(t)

	session, ok := env.sessions.Get(id)
	require.True(t, ok)
	session.Lock()
	session.Generating = true
	session.Unlock()

	rec := env.do(t, http.MethodPost, "/sessions/"+id+"/studio/edit", models.StudioEditRequest{
		ImageBase64: base64.StdEncoding.EncodeToString([]byte("source")),
		MimeType:    "image/jpeg",
		Prompt:      "adiciona neve",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestStudioEditWithoutEditorConfigured(t *testing.T) {
	env := newTestEnv(t, nil)
	id := env.createSession(t)

	rec := env.do(t, http.MethodPost, "/sessions/"+id+"/studio/edit", models.StudioEditRequest{
		ImageBase64: base64.StdEncoding.EncodeToString([]byte("source")),
		MimeType:    "image/jpeg",
		Prompt:      "adiciona neve",
	})
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestBackgroundEndpoints(t *testing.T) {
	env := newTestEnv(t, nil)

	rec := env.do(t, http.MethodGet, "/background", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var bg models.BackgroundResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &bg))
	assert.Equal(t, models.DefaultBackground, bg.Value)
	assert.False(t, bg.Custom)

	rec = env.do(t, http.MethodPut, "/background", models.SetBackgroundRequest{Value: "https://example.com/bg.jpg"})
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &bg))
	assert.True(t, bg.Custom)
	assert.Equal(t, "https://example.com/bg.jpg", bg.Value)

	rec = env.do(t, http.MethodDelete, "/background", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &bg))
	assert.False(t, bg.Custom)
	assert.Equal(t, models.DefaultBackground, bg.Value)
}

func TestSessionNotFound(t *testing.T) {
	env := newTestEnv(t, nil)

	rec := env.do(t, http.MethodGet, "/sessions/does-not-exist", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
