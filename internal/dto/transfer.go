package dto

// InternalTransferRequest moves money between two accounts held at this
// institution. Amount arrives as a string so the service layer can enforce
// the currency-precision format before any decimal parsing.
type InternalTransferRequest struct {
	FromAccount      string `json:"fromAccount" binding:"required"`
	RecipientAccount string `json:"recipientAccount" binding:"required"`
	Amount           string `json:"amount" binding:"required,amountfmt"`
	Reference        string `json:"reference"` // Optional memo, shown on both legs
	Pin              string `json:"pin" binding:"required"`
}

// USBankTransferRequest moves money to an account at a US bank.
type USBankTransferRequest struct {
	FromAccountID     string `json:"fromAccountId" binding:"required"`
	BankName          string `json:"bankName" binding:"required"`
	AccountNumber     string `json:"accountNumber" binding:"required"`
	AccountHolderName string `json:"accountHolderName" binding:"required"`
	Amount            string `json:"amount" binding:"required,amountfmt"`
	Reference         string `json:"reference"`
	Pin               string `json:"pin" binding:"required"`
}

// InternationalTransferRequest moves money to a foreign bank via SWIFT.
type InternationalTransferRequest struct {
	FromAccountID string `json:"fromAccountId" binding:"required"`
	RecipientName string `json:"recipientName" binding:"required"`
	BankName      string `json:"bankName" binding:"required"`
	SwiftCode     string `json:"swiftCode" binding:"required"`
	AccountNumber string `json:"accountNumber" binding:"required"`
	IBAN          string `json:"iban"` // Optional
	Country       string `json:"country" binding:"required"`
	Currency      string `json:"currency" binding:"required"`
	Amount        string `json:"amount" binding:"required,amountfmt"`
	Reference     string `json:"reference"`
	Pin           string `json:"pin" binding:"required"`
}

// BillPayRequest pays a registered biller from a customer account.
type BillPayRequest struct {
	FromAccountID       string `json:"fromAccountId" binding:"required"`
	BillerName          string `json:"billerName" binding:"required"`
	BillerAccountNumber string `json:"billerAccountNumber" binding:"required"`
	Amount              string `json:"amount" binding:"required,amountfmt"`
	Pin                 string `json:"pin" binding:"required"`
}

// TransferResult is the confirmation returned to the caller on success.
type TransferResult struct {
	Success   bool   `json:"success"`
	Reference string `json:"reference"`
	Message   string `json:"message,omitempty"`
}
