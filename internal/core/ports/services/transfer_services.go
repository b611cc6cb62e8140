package services

import (
	"context"

	"github.com/signordemola/belize-app/internal/dto"
)

// TransferSvcFacade gates every customer-initiated transfer with the ordered
// business-rule checks before any mutation occurs. A rejection has no side
// effects; the caller resubmits with corrected input.
type TransferSvcFacade interface {
	TransferInternal(ctx context.Context, requesterUserID string, req dto.InternalTransferRequest) (*dto.TransferResult, error)
	TransferUSBank(ctx context.Context, requesterUserID string, req dto.USBankTransferRequest) (*dto.TransferResult, error)
	TransferInternational(ctx context.Context, requesterUserID string, req dto.InternationalTransferRequest) (*dto.TransferResult, error)
}

// BillPaySvcFacade pays registered billers through the same PIN-gated check
// ladder as transfers.
type BillPaySvcFacade interface {
	PayBill(ctx context.Context, requesterUserID string, req dto.BillPayRequest) (*dto.TransferResult, error)
}
