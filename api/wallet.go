package api

import (
	"net/http"
	"time"

	"github.com/avelhart/skybooking/internal/domain"
	"github.com/avelhart/skybooking/internal/service/ledger"
	"github.com/gin-gonic/gin"
)

type WalletHandler struct {
	service ledger.LedgerUseCase
}

type addFundsRequest struct {
	AmountCents int64 `json:"amount_cents"`
}

type transactionResponse struct {
	ID            int64  `json:"id"`
	BookingID     *int64 `json:"booking_id,omitempty"`
	Reference     string `json:"reference"`
	AmountCents   int64  `json:"amount_cents"`
	DisplayAmount string `json:"display_amount"`
	Type          string `json:"type"`
	Description   string `json:"description"`
	CreatedAt     string `json:"created_at"`
}

type walletResponse struct {
	UserID         int64                 `json:"user_id"`
	BalanceCents   int64                 `json:"balance_cents"`
	DisplayBalance string                `json:"display_balance"`
	Transactions   []transactionResponse `json:"transactions"`
}

func NewWalletHandler(service ledger.LedgerUseCase) *WalletHandler {
	return &WalletHandler{service: service}
}

func (h *WalletHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.get)
	router.POST("/add", h.addFunds)
}

func (h *WalletHandler) get(c *gin.Context) {
	wallet, err := h.service.GetWallet(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toWalletResponse(wallet))
}

func (h *WalletHandler) addFunds(c *gin.Context) {
	var req addFundsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	wallet, err := h.service.AddFunds(c.Request.Context(), currentUserID(c), req.AmountCents)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Funds added", "wallet": toWalletResponse(wallet)})
}

func toWalletResponse(w *domain.Wallet) walletResponse {
	transactions := make([]transactionResponse, 0, len(w.Transactions))
	for _, t := range w.Transactions {
		transactions = append(transactions, transactionResponse{
			ID:            t.ID,
			BookingID:     t.BookingID,
			Reference:     t.Reference,
			AmountCents:   t.AmountCents,
			DisplayAmount: displayAmount(t.AmountCents),
			Type:          string(t.Type),
			Description:   t.Description,
			CreatedAt:     t.CreatedAt.Format(time.RFC3339),
		})
	}
	return walletResponse{
		UserID:         w.UserID,
		BalanceCents:   w.BalanceCents,
		DisplayBalance: displayAmount(w.BalanceCents),
		Transactions:   transactions,
	}
}
