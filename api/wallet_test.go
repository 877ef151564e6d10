package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/avelhart/skybooking/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestWalletHandler_get(t *testing.T) {
	mockService := &MockLedgerUseCase{}
	handler := NewWalletHandler(mockService)

	w := httptest.NewRecorder()
	c := authedContext(w, 42, string(domain.RoleCustomer))
	c.Request = httptest.NewRequest("GET", "/api/wallet/", nil)

	bookingID := int64(1)
	wallet := &domain.Wallet{
		ID:           5,
		UserID:       42,
		BalanceCents: 30000,
		Transactions: []domain.Transaction{
			{
				ID:          2,
				BookingID:   &bookingID,
				Reference:   "TXN-2",
				AmountCents: 20000,
				Type:        domain.TransactionTypeWithdrawal,
				CreatedAt:   time.Now(),
			},
			{
				ID:          1,
				Reference:   "TXN-1",
				AmountCents: 50000,
				Type:        domain.TransactionTypeDeposit,
				CreatedAt:   time.Now().Add(-time.Hour),
			},
		},
	}

	mockService.On("GetWallet", c.Request.Context(), int64(42)).Return(wallet, nil)

	handler.get(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response walletResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, int64(30000), response.BalanceCents)
	assert.Equal(t, displayAmount(30000), response.DisplayBalance)
	assert.Len(t, response.Transactions, 2)
	assert.Equal(t, string(domain.TransactionTypeWithdrawal), response.Transactions[0].Type)

	mockService.AssertExpectations(t)
}

func TestWalletHandler_addFunds(t *testing.T) {
	mockService := &MockLedgerUseCase{}
	handler := NewWalletHandler(mockService)

	w := httptest.NewRecorder()
	c := authedContext(w, 42, string(domain.RoleCustomer))

	body, _ := json.Marshal(addFundsRequest{AmountCents: 50000})
	c.Request = httptest.NewRequest("POST", "/api/wallet/add", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	wallet := &domain.Wallet{ID: 5, UserID: 42, BalanceCents: 50000}
	mockService.On("AddFunds", c.Request.Context(), int64(42), int64(50000)).Return(wallet, nil)

	handler.addFunds(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Message string         `json:"message"`
		Wallet  walletResponse `json:"wallet"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "Funds added", response.Message)
	assert.Equal(t, int64(50000), response.Wallet.BalanceCents)

	mockService.AssertExpectations(t)
}

func TestWalletHandler_addFunds_invalidAmount(t *testing.T) {
	mockService := &MockLedgerUseCase{}
	handler := NewWalletHandler(mockService)

	w := httptest.NewRecorder()
	c := authedContext(w, 42, string(domain.RoleCustomer))

	body, _ := json.Marshal(addFundsRequest{AmountCents: -100})
	c.Request = httptest.NewRequest("POST", "/api/wallet/add", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	mockService.On("AddFunds", c.Request.Context(), int64(42), int64(-100)).Return(nil, domain.ErrInvalidAmount)

	handler.addFunds(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertExpectations(t)
}
