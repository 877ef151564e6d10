package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/avelhart/skybooking/internal/domain"
	"github.com/avelhart/skybooking/internal/service/ledger"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockLedgerUseCase is a mock implementation of ledger.LedgerUseCase
type MockLedgerUseCase struct {
	mock.Mock
}

func (m *MockLedgerUseCase) CreateBooking(ctx context.Context, input ledger.CreateBookingInput) (*domain.Booking, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockLedgerUseCase) ConfirmBooking(ctx context.Context, bookingID, userID int64, admin bool) (*domain.Booking, error) {
	args := m.Called(ctx, bookingID, userID, admin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockLedgerUseCase) CancelBooking(ctx context.Context, bookingID, userID int64, admin bool) (*domain.Booking, error) {
	args := m.Called(ctx, bookingID, userID, admin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockLedgerUseCase) GetBooking(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockLedgerUseCase) ListUserBookings(ctx context.Context, userID int64) ([]domain.Booking, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockLedgerUseCase) ListAllBookings(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockLedgerUseCase) GetWallet(ctx context.Context, userID int64) (*domain.Wallet, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

func (m *MockLedgerUseCase) AddFunds(ctx context.Context, userID, amountCents int64) (*domain.Wallet, error) {
	args := m.Called(ctx, userID, amountCents)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

func (m *MockLedgerUseCase) ExpirePendingBookings(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func authedContext(w *httptest.ResponseRecorder, userID int64, role string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(w)
	c.Set(ctxUserID, userID)
	c.Set(ctxRole, role)
	return c
}

func TestBookingHandler_create(t *testing.T) {
	mockService := &MockLedgerUseCase{}
	handler := NewBookingHandler(mockService)

	w := httptest.NewRecorder()
	c := authedContext(w, 42, string(domain.RoleCustomer))

	body, _ := json.Marshal(createBookingRequest{
		FlightID:   7,
		PriceCents: 20000,
		Passengers: []passengerRequest{{Name: "Asha Rao", Age: 34, PassportNumber: "P1234567"}},
	})
	c.Request = httptest.NewRequest("POST", "/api/bookings/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	booking := &domain.Booking{
		ID:         1,
		Reference:  "BK-1",
		FlightID:   7,
		UserID:     42,
		PriceCents: 20000,
		Status:     domain.BookingStatusPending,
		CreatedAt:  time.Now(),
	}

	mockService.On("CreateBooking", c.Request.Context(), ledger.CreateBookingInput{
		FlightID:   7,
		UserID:     42,
		PriceCents: 20000,
		Passengers: []domain.Passenger{{Name: "Asha Rao", Age: 34, PassportNumber: "P1234567"}},
	}).Return(booking, nil)

	handler.create(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response bookingResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "BK-1", response.Reference)
	assert.Equal(t, string(domain.BookingStatusPending), response.Status)
	assert.Equal(t, int64(20000), response.PriceCents)

	mockService.AssertExpectations(t)
}

func TestBookingHandler_create_insufficientFunds(t *testing.T) {
	mockService := &MockLedgerUseCase{}
	handler := NewBookingHandler(mockService)

	w := httptest.NewRecorder()
	c := authedContext(w, 42, string(domain.RoleCustomer))

	body, _ := json.Marshal(createBookingRequest{
		FlightID:   7,
		PriceCents: 20000,
		Passengers: []passengerRequest{{Name: "Asha Rao", Age: 34}},
	})
	c.Request = httptest.NewRequest("POST", "/api/bookings/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	mockService.On("CreateBooking", c.Request.Context(), mock.AnythingOfType("ledger.CreateBookingInput")).
		Return(nil, domain.ErrInsufficientFunds)

	handler.create(c)

	assert.Equal(t, http.StatusPaymentRequired, w.Code)
	mockService.AssertExpectations(t)
}

func TestBookingHandler_confirm(t *testing.T) {
	mockService := &MockLedgerUseCase{}
	handler := NewBookingHandler(mockService)

	w := httptest.NewRecorder()
	c := authedContext(w, 42, string(domain.RoleCustomer))

	c.Params = gin.Params{{Key: "id", Value: "1"}}
	c.Request = httptest.NewRequest("PUT", "/api/bookings/1/confirm", nil)

	booking := &domain.Booking{
		ID:         1,
		Reference:  "BK-1",
		FlightID:   7,
		UserID:     42,
		PriceCents: 20000,
		Status:     domain.BookingStatusConfirmed,
		CreatedAt:  time.Now(),
	}

	mockService.On("ConfirmBooking", c.Request.Context(), int64(1), int64(42), false).Return(booking, nil)

	handler.confirm(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response bookingResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, string(domain.BookingStatusConfirmed), response.Status)

	mockService.AssertExpectations(t)
}

func TestBookingHandler_confirm_notPending(t *testing.T) {
	mockService := &MockLedgerUseCase{}
	handler := NewBookingHandler(mockService)

	w := httptest.NewRecorder()
	c := authedContext(w, 42, string(domain.RoleCustomer))

	c.Params = gin.Params{{Key: "id", Value: "1"}}
	c.Request = httptest.NewRequest("PUT", "/api/bookings/1/confirm", nil)

	mockService.On("ConfirmBooking", c.Request.Context(), int64(1), int64(42), false).Return(nil, domain.ErrBookingNotPending)

	handler.confirm(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	mockService.AssertExpectations(t)
}

func TestBookingHandler_confirm_otherUserForbidden(t *testing.T) {
	mockService := &MockLedgerUseCase{}
	handler := NewBookingHandler(mockService)

	w := httptest.NewRecorder()
	c := authedContext(w, 99, string(domain.RoleCustomer))

	c.Params = gin.Params{{Key: "id", Value: "1"}}
	c.Request = httptest.NewRequest("PUT", "/api/bookings/1/confirm", nil)

	mockService.On("ConfirmBooking", c.Request.Context(), int64(1), int64(99), false).Return(nil, domain.ErrForbidden)

	handler.confirm(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
	mockService.AssertExpectations(t)
}

func TestBookingHandler_cancel(t *testing.T) {
	mockService := &MockLedgerUseCase{}
	handler := NewBookingHandler(mockService)

	w := httptest.NewRecorder()
	c := authedContext(w, 42, string(domain.RoleCustomer))

	c.Params = gin.Params{{Key: "id", Value: "1"}}
	c.Request = httptest.NewRequest("DELETE", "/api/bookings/1", nil)

	booking := &domain.Booking{
		ID:         1,
		Reference:  "BK-1",
		FlightID:   7,
		UserID:     42,
		PriceCents: 20000,
		Status:     domain.BookingStatusCancelled,
		CreatedAt:  time.Now(),
	}

	mockService.On("CancelBooking", c.Request.Context(), int64(1), int64(42), false).Return(booking, nil)

	handler.cancel(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Booking      bookingResponse `json:"booking"`
		RefundCents  int64           `json:"refund_cents"`
		RefundAmount string          `json:"refund_amount"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, string(domain.BookingStatusCancelled), response.Booking.Status)
	assert.Equal(t, int64(20000), response.RefundCents)
	assert.Equal(t, displayAmount(20000), response.RefundAmount)

	mockService.AssertExpectations(t)
}

func TestBookingHandler_get_otherUserForbidden(t *testing.T) {
	mockService := &MockLedgerUseCase{}
	handler := NewBookingHandler(mockService)

	w := httptest.NewRecorder()
	c := authedContext(w, 99, string(domain.RoleCustomer))

	c.Params = gin.Params{{Key: "id", Value: "1"}}
	c.Request = httptest.NewRequest("GET", "/api/bookings/1", nil)

	booking := &domain.Booking{ID: 1, UserID: 42, Status: domain.BookingStatusPending, CreatedAt: time.Now()}
	mockService.On("GetBooking", c.Request.Context(), int64(1)).Return(booking, nil)

	handler.get(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
	mockService.AssertExpectations(t)
}

func TestBookingHandler_get_adminSeesAny(t *testing.T) {
	mockService := &MockLedgerUseCase{}
	handler := NewBookingHandler(mockService)

	w := httptest.NewRecorder()
	c := authedContext(w, 99, string(domain.RoleAdmin))

	c.Params = gin.Params{{Key: "id", Value: "1"}}
	c.Request = httptest.NewRequest("GET", "/api/bookings/1", nil)

	booking := &domain.Booking{ID: 1, UserID: 42, Status: domain.BookingStatusPending, CreatedAt: time.Now()}
	mockService.On("GetBooking", c.Request.Context(), int64(1)).Return(booking, nil)

	handler.get(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}
