package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"moviles/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProductoService is a mock implementation of ProductoService.
type MockProductoService struct {
	mock.Mock
}

func (m *MockProductoService) List(ctx context.Context) ([]model.Producto, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Producto), args.Error(1)
}

func (m *MockProductoService) Get(ctx context.Context, id int64) (*model.Producto, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Producto), args.Error(1)
}

func (m *MockProductoService) Save(ctx context.Context, p *model.Producto) (*model.Producto, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Producto), args.Error(1)
}

func (m *MockProductoService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// newRequest builds a request with the chi {id} route parameter populated.
func newRequest(method, target, id, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if id != "" {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", id)
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}
	return req
}

func mouse(id int64) *model.Producto {
	return &model.Producto{ID: id, Nombre: "Mouse", Codigo: "M01", Descripcion: "USB mouse", Precio: 9.99, Estado: true}
}

func TestProductoHandler_List(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name           string
		mockReturn     []model.Producto
		mockError      error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Success",
			mockReturn:     []model.Producto{*mouse(1)},
			expectedStatus: http.StatusOK,
			expectedBody:   `[{"id":1,"nombre":"Mouse","codigo":"M01","descripcion":"USB mouse","precio":9.99,"estado":true}]`,
		},
		{
			name:           "Empty store returns empty array",
			mockReturn:     []model.Producto{},
			expectedStatus: http.StatusOK,
			expectedBody:   `[]`,
		},
		{
			name:           "Service error",
			mockError:      errors.New("database error"),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockProductoService)
			handler := NewProductoHandler(mockService, logger)

			mockService.On("List", mock.Anything).Return(tt.mockReturn, tt.mockError)

			w := httptest.NewRecorder()
			handler.List(w, newRequest(http.MethodGet, "/api/productos", "", ""))

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
				assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestProductoHandler_Get(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name           string
		id             string
		expectService  bool
		mockReturn     *model.Producto
		mockError      error
		expectedStatus int
	}{
		{
			name:           "Found",
			id:             "1",
			expectService:  true,
			mockReturn:     mouse(1),
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Not found",
			id:             "2",
			expectService:  true,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Service error",
			id:             "1",
			expectService:  true,
			mockError:      errors.New("database error"),
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "Non-numeric ID",
			id:             "abc",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockProductoService)
			handler := NewProductoHandler(mockService, logger)

			if tt.expectService {
				mockService.On("Get", mock.Anything, mustParse(t, tt.id)).Return(tt.mockReturn, tt.mockError)
			}

			w := httptest.NewRecorder()
			handler.Get(w, newRequest(http.MethodGet, "/api/productos/"+tt.id, tt.id, ""))

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusNotFound {
				assert.Empty(t, w.Body.String())
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestProductoHandler_Create(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("Success ignores payload ID", func(t *testing.T) {
		mockService := new(MockProductoService)
		handler := NewProductoHandler(mockService, logger)

		expectedInput := mouse(0)
		mockService.On("Save", mock.Anything, expectedInput).Return(mouse(1), nil)

		body := `{"id":77,"nombre":"Mouse","codigo":"M01","descripcion":"USB mouse","precio":9.99,"estado":true}`
		w := httptest.NewRecorder()
		handler.Create(w, newRequest(http.MethodPost, "/api/productos", "", body))

		assert.Equal(t, http.StatusOK, w.Code)

		var got model.Producto
		require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
		assert.Equal(t, *mouse(1), got)
		mockService.AssertExpectations(t)
	})

	t.Run("Invalid JSON", func(t *testing.T) {
		mockService := new(MockProductoService)
		handler := NewProductoHandler(mockService, logger)

		w := httptest.NewRecorder()
		handler.Create(w, newRequest(http.MethodPost, "/api/productos", "", `{"nombre":`))

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp model.ErrorResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, model.ErrCodeInvalidJSON, resp.Error)
		mockService.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("Null body", func(t *testing.T) {
		mockService := new(MockProductoService)
		handler := NewProductoHandler(mockService, logger)

		w := httptest.NewRecorder()
		handler.Create(w, newRequest(http.MethodPost, "/api/productos", "", `null`))

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp model.ErrorResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, model.ErrCodeInvalidJSON, resp.Error)
		mockService.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("Service error", func(t *testing.T) {
		mockService := new(MockProductoService)
		handler := NewProductoHandler(mockService, logger)

		mockService.On("Save", mock.Anything, mock.Anything).Return(nil, errors.New("database error"))

		w := httptest.NewRecorder()
		handler.Create(w, newRequest(http.MethodPost, "/api/productos", "", `{"nombre":"Mouse"}`))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		mockService.AssertExpectations(t)
	})
}

func TestProductoHandler_Update(t *testing.T) {
	logger := zerolog.Nop()
	body := `{"id":99,"nombre":"Mouse Pro","codigo":"M01","descripcion":"USB mouse v2","precio":14.99,"estado":false}`
	merged := &model.Producto{ID: 1, Nombre: "Mouse Pro", Codigo: "M01", Descripcion: "USB mouse v2", Precio: 14.99, Estado: false}

	t.Run("Overwrites fields and keeps ID", func(t *testing.T) {
		mockService := new(MockProductoService)
		handler := NewProductoHandler(mockService, logger)

		mockService.On("Get", mock.Anything, int64(1)).Return(mouse(1), nil)
		mockService.On("Save", mock.Anything, merged).Return(merged, nil)

		w := httptest.NewRecorder()
		handler.Update(w, newRequest(http.MethodPut, "/api/productos/1", "1", body))

		assert.Equal(t, http.StatusOK, w.Code)

		var got model.Producto
		require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
		assert.Equal(t, *merged, got)
		mockService.AssertExpectations(t)
	})

	t.Run("Missing ID returns 404 without writing", func(t *testing.T) {
		mockService := new(MockProductoService)
		handler := NewProductoHandler(mockService, logger)

		mockService.On("Get", mock.Anything, int64(1)).Return(nil, nil)

		w := httptest.NewRecorder()
		handler.Update(w, newRequest(http.MethodPut, "/api/productos/1", "1", body))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Empty(t, w.Body.String())
		mockService.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("Row deleted between lookup and save returns 404", func(t *testing.T) {
		mockService := new(MockProductoService)
		handler := NewProductoHandler(mockService, logger)

		mockService.On("Get", mock.Anything, int64(1)).Return(mouse(1), nil)
		mockService.On("Save", mock.Anything, merged).Return(nil, model.ErrProductoNotFound)

		w := httptest.NewRecorder()
		handler.Update(w, newRequest(http.MethodPut, "/api/productos/1", "1", body))

		assert.Equal(t, http.StatusNotFound, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Lookup error", func(t *testing.T) {
		mockService := new(MockProductoService)
		handler := NewProductoHandler(mockService, logger)

		mockService.On("Get", mock.Anything, int64(1)).Return(nil, errors.New("database error"))

		w := httptest.NewRecorder()
		handler.Update(w, newRequest(http.MethodPut, "/api/productos/1", "1", body))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Save error", func(t *testing.T) {
		mockService := new(MockProductoService)
		handler := NewProductoHandler(mockService, logger)

		mockService.On("Get", mock.Anything, int64(1)).Return(mouse(1), nil)
		mockService.On("Save", mock.Anything, merged).Return(nil, errors.New("database error"))

		w := httptest.NewRecorder()
		handler.Update(w, newRequest(http.MethodPut, "/api/productos/1", "1", body))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Invalid JSON", func(t *testing.T) {
		mockService := new(MockProductoService)
		handler := NewProductoHandler(mockService, logger)

		w := httptest.NewRecorder()
		handler.Update(w, newRequest(http.MethodPut, "/api/productos/1", "1", `not json`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})

	t.Run("Null body", func(t *testing.T) {
		mockService := new(MockProductoService)
		handler := NewProductoHandler(mockService, logger)

		w := httptest.NewRecorder()
		handler.Update(w, newRequest(http.MethodPut, "/api/productos/1", "1", `null`))

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp model.ErrorResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, model.ErrCodeInvalidJSON, resp.Error)
		mockService.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
		mockService.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("Non-numeric ID", func(t *testing.T) {
		mockService := new(MockProductoService)
		handler := NewProductoHandler(mockService, logger)

		w := httptest.NewRecorder()
		handler.Update(w, newRequest(http.MethodPut, "/api/productos/x", "x", body))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestProductoHandler_Delete(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name           string
		id             string
		expectService  bool
		mockError      error
		expectedStatus int
	}{
		{
			name:           "Success",
			id:             "1",
			expectService:  true,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Service error",
			id:             "1",
			expectService:  true,
			mockError:      errors.New("database error"),
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "Non-numeric ID",
			id:             "one",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockProductoService)
			handler := NewProductoHandler(mockService, logger)

			if tt.expectService {
				mockService.On("Delete", mock.Anything, mustParse(t, tt.id)).Return(tt.mockError)
			}

			w := httptest.NewRecorder()
			handler.Delete(w, newRequest(http.MethodDelete, "/api/productos/"+tt.id, tt.id, ""))

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Empty(t, w.Body.String())
			}
			mockService.AssertExpectations(t)
		})
	}
}

func mustParse(t *testing.T, id string) int64 {
	t.Helper()
	req := newRequest(http.MethodGet, "/", id, "")
	parsed, err := pathID(req)
	require.NoError(t, err)
	return parsed
}
