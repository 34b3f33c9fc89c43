package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/explorekashmir/tours/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockCatalogUseCase is a mock implementation of catalog.CatalogUseCase
type MockCatalogUseCase struct {
	mock.Mock
}

func (m *MockCatalogUseCase) ListDestinations(ctx context.Context) ([]domain.Destination, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Destination), args.Error(1)
}

func (m *MockCatalogUseCase) GetDestination(ctx context.Context, id int64) (*domain.Destination, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Destination), args.Error(1)
}

func (m *MockCatalogUseCase) CreateDestination(ctx context.Context, dest *domain.Destination) error {
	args := m.Called(ctx, dest)
	return args.Error(0)
}

func (m *MockCatalogUseCase) ListTours(ctx context.Context, destinationID int64) ([]domain.Tour, error) {
	args := m.Called(ctx, destinationID)
	return args.Get(0).([]domain.Tour), args.Error(1)
}

func (m *MockCatalogUseCase) GetTour(ctx context.Context, id int64) (*domain.Tour, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tour), args.Error(1)
}

func (m *MockCatalogUseCase) CreateTour(ctx context.Context, tour *domain.Tour) error {
	args := m.Called(ctx, tour)
	return args.Error(0)
}

func TestTourHandler_list(t *testing.T) {
	mockService := &MockCatalogUseCase{}
	handler := NewTourHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/tours", nil)

	tours := []domain.Tour{
		{ID: 1, DestinationID: 2, Title: "Gulmarg Winter Escape", TotalSlots: 20, AvailableSlots: 12, PriceCents: 4500000},
	}

	mockService.On("ListTours", c.Request.Context(), int64(0)).Return(tours, nil)

	handler.list(c)

	assert.Equal(t, http.StatusOK, w.Code)

	mockService.AssertExpectations(t)
}

func TestTourHandler_list_filtered(t *testing.T) {
	mockService := &MockCatalogUseCase{}
	handler := NewTourHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/tours?destination_id=2", nil)

	mockService.On("ListTours", c.Request.Context(), int64(2)).Return([]domain.Tour{}, nil)

	handler.list(c)

	assert.Equal(t, http.StatusOK, w.Code)

	mockService.AssertExpectations(t)
}

func TestTourHandler_get(t *testing.T) {
	mockService := &MockCatalogUseCase{}
	handler := NewTourHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "id", Value: "1"}}
	c.Request = httptest.NewRequest("GET", "/tours/1", nil)

	tour := &domain.Tour{
		ID: 1, DestinationID: 2, Title: "Gulmarg Winter Escape", DurationDays: 5,
		DepartureDate: time.Now().Add(30 * 24 * time.Hour),
		TotalSlots:    20, AvailableSlots: 12, PriceCents: 4500000,
	}

	mockService.On("GetTour", c.Request.Context(), int64(1)).Return(tour, nil)

	handler.get(c)

	assert.Equal(t, http.StatusOK, w.Code)

	mockService.AssertExpectations(t)
}

func TestTourHandler_get_notFound(t *testing.T) {
	mockService := &MockCatalogUseCase{}
	handler := NewTourHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "id", Value: "999"}}
	c.Request = httptest.NewRequest("GET", "/tours/999", nil)

	mockService.On("GetTour", c.Request.Context(), int64(999)).Return(nil, domain.ErrNotFound)

	handler.get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)

	mockService.AssertExpectations(t)
}
