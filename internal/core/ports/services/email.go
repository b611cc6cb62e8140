package services

import (
	"context"

	"github.com/signordemola/belize-app/internal/dto"
)

// EmailSender is the boundary to the email collaborator. Delivery is
// best-effort: callers log failures and never surface them as operation
// failures, because the money movement has already committed.
type EmailSender interface {
	SendTransactionReceipt(ctx context.Context, email string, receipt dto.TransactionReceipt) error
}
