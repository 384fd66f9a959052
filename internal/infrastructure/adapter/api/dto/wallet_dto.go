package dto

// OperationRequest is the dynamic dispatch request body: the operation name
// plus its parameters as a flat string map
type OperationRequest struct {
	Operation  string            `json:"operation" binding:"required"`
	Parameters map[string]string `json:"parameters"`
}

// RegisterAccountRequest is the request body for registering a wallet holder
type RegisterAccountRequest struct {
	Document    string `json:"documento" binding:"required"`
	Names       string `json:"nombres" binding:"required"`
	Email       string `json:"email" binding:"required"`
	PhoneNumber string `json:"celular" binding:"required"`
}

// FundWalletRequest is the request body for topping up a wallet
type FundWalletRequest struct {
	Document    string `json:"documento" binding:"required"`
	PhoneNumber string `json:"celular" binding:"required"`
	Amount      string `json:"valor" binding:"required"`
}

// InitiatePaymentRequest is the request body for opening a payment session
type InitiatePaymentRequest struct {
	Document    string `json:"documento" binding:"required"`
	PhoneNumber string `json:"celular" binding:"required"`
	Amount      string `json:"monto" binding:"required"`
}

// ConfirmPaymentRequest is the request body for settling a pending payment
type ConfirmPaymentRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	Token     string `json:"token" binding:"required"`
}

// ErrorResponse mirrors the engine result envelope for errors raised before
// the engine runs (panics, malformed bodies)
type ErrorResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"cod_error"`
	Message string `json:"message_error"`
}
