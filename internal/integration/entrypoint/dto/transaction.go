package dto

import (
	"time"

	"github.com/fintrack/backend/internal/domain/entity"
)

// timeFormat is the wire format for timestamps.
const timeFormat = time.RFC3339

// CreateTransactionRequest represents the request body for transaction creation.
// The amount sign carries the direction: negative for expenses, positive for
// income.
type CreateTransactionRequest struct {
	Title    string  `json:"title" binding:"required,min=1,max=255"`
	Amount   float64 `json:"amount" binding:"required"`
	Category string  `json:"category" binding:"max=100"`
	Date     string  `json:"date" binding:"required"`
}

// UpdateTransactionRequest represents the request body for transaction update.
type UpdateTransactionRequest struct {
	Title    string  `json:"title" binding:"required,min=1,max=255"`
	Amount   float64 `json:"amount" binding:"required"`
	Category string  `json:"category" binding:"max=100"`
	Date     string  `json:"date" binding:"required"`
}

// TransactionResponse represents a transaction in API responses. Amounts are
// serialized as strings to avoid float precision loss on the wire.
type TransactionResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Amount    string `json:"amount"`
	Type      string `json:"type"`
	Category  string `json:"category"`
	Date      string `json:"date"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int                   `json:"total"`
}

// ToTransactionResponse converts a domain Transaction entity to a
// TransactionResponse DTO.
func ToTransactionResponse(t *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:        t.ID.String(),
		Title:     t.Title,
		Amount:    t.Amount.String(),
		Type:      string(t.Type),
		Category:  t.Category,
		Date:      t.Date.Format("2006-01-02"),
		CreatedAt: t.CreatedAt.Format(timeFormat),
		UpdatedAt: t.UpdatedAt.Format(timeFormat),
	}
}

// ToTransactionListResponse converts a slice of Transaction entities to a
// TransactionListResponse DTO.
func ToTransactionListResponse(transactions []*entity.Transaction) TransactionListResponse {
	responses := make([]TransactionResponse, len(transactions))
	for i, t := range transactions {
		responses[i] = ToTransactionResponse(t)
	}
	return TransactionListResponse{
		Transactions: responses,
		Total:        len(responses),
	}
}
