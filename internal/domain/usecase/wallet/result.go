package wallet

import (
	errs "github.com/camilosanchez/virtual-wallet/internal/domain/error"
)

// User-facing messages. Kept in Spanish for compatibility with the original
// wallet service responses.
const (
	msgRegistered       = "Cliente registrado exitosamente"
	msgRecharge         = "Recarga exitosa"
	msgTokenSent        = "Token enviado al correo"
	msgConfirmed        = "Pago confirmado exitosamente"
	msgBalance          = "Consulta exitosa"
	msgMissingParams    = "Parámetros insuficientes"
	msgInvalidAmount    = "Monto inválido"
	msgInvalidIdentity  = "Datos de cliente inválidos"
	msgDuplicate        = "El documento o el correo ya se encuentra registrado"
	msgAccountNotFound  = "Cliente no encontrado"
	msgInsufficient     = "Saldo insuficiente"
	msgInvalidSession   = "session_id inválido"
	msgTokenExpired     = "Token expirado"
	msgInvalidToken     = "Token inválido"
	msgInternal         = "Error interno del servidor"
	msgUnknownOperation = "Operación no válida"
)

// Result is the engine's response envelope. The two-digit code and the
// success/data shape are rendered verbatim by the protocol adapter.
type Result struct {
	Success bool           `json:"success"`
	Code    string         `json:"cod_error"`
	Message string         `json:"message_error"`
	Data    map[string]any `json:"data"`
}

// ok builds a success result with code 00
func ok(message string, data map[string]any) *Result {
	return &Result{
		Success: true,
		Code:    errs.CodeSuccess,
		Message: message,
		Data:    data,
	}
}

// fail builds a failure result, deriving the wallet code from the error
func fail(err error, message string) *Result {
	return &Result{
		Success: false,
		Code:    errs.WalletCode(err),
		Message: message,
	}
}
