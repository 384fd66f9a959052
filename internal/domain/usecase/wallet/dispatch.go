package wallet

import (
	"context"

	errs "github.com/camilosanchez/virtual-wallet/internal/domain/error"
)

// Operation names accepted by Dispatch. They match the public contract of the
// wallet API and are case sensitive.
const (
	OpRegisterAccount = "registroCliente"
	OpFundWallet      = "recargarBilletera"
	OpInitiatePayment = "pagar"
	OpConfirmPayment  = "confirmarPago"
	OpCheckBalance    = "consultarSaldo"
)

// OperationRequest is a dynamic invocation of a wallet operation: used by
// transports that carry the operation name and its parameters as data instead
// of mapping each operation to its own endpoint.
type OperationRequest struct {
	Operation  string            `json:"operation"`
	Parameters map[string]string `json:"parameters"`
}

// Dispatch routes a dynamic operation request to the matching typed operation.
// Unknown operation names fail with a validation error; they are a caller
// mistake, not an internal fault.
func (s *Service) Dispatch(ctx context.Context, req OperationRequest) *Result {
	params := req.Parameters
	if params == nil {
		params = map[string]string{}
	}

	switch req.Operation {
	case OpRegisterAccount:
		return s.RegisterAccount(ctx, RegisterAccountRequest{
			Document:    params["documento"],
			Names:       params["nombres"],
			Email:       params["email"],
			PhoneNumber: params["celular"],
		})
	case OpFundWallet:
		return s.FundWallet(ctx, FundWalletRequest{
			Document:    params["documento"],
			PhoneNumber: params["celular"],
			Amount:      params["valor"],
		})
	case OpInitiatePayment:
		return s.InitiatePayment(ctx, InitiatePaymentRequest{
			Document:    params["documento"],
			PhoneNumber: params["celular"],
			Amount:      params["monto"],
		})
	case OpConfirmPayment:
		return s.ConfirmPayment(ctx, ConfirmPaymentRequest{
			SessionID: params["session_id"],
			Token:     params["token"],
		})
	case OpCheckBalance:
		return s.CheckBalance(ctx, CheckBalanceRequest{
			Document:    params["documento"],
			PhoneNumber: params["celular"],
		})
	default:
		s.logger.Warn("Unknown wallet operation", map[string]any{
			"operation": req.Operation,
		})
		return fail(errs.ErrUnknownOperation, msgUnknownOperation)
	}
}
