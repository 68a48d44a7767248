package payment

import (
	"net/url"

	"vaxportal/config"
	"vaxportal/models"
)

// Query parameters appended by the payment gateway on the return redirect.
const (
	ResponseCodeParam  = "vnp_ResponseCode"
	TransactionNoParam = "vnp_TransactionNo"

	// ResponseCodeSuccess is the only success sentinel the gateway emits.
	ResponseCodeSuccess = "00"
)

const defaultRetryDelaySec = 5

// InterpretReturn classifies a gateway return redirect from its query
// parameters. It is a pure state interpretation: the authoritative payment
// result was already recorded server-side by the gateway callback, so this
// never mutates anything. A missing response code counts as a failure.
func InterpretReturn(query url.Values) models.PaymentReturn {
	code := query.Get(ResponseCodeParam)
	if code == ResponseCodeSuccess {
		return models.PaymentReturn{
			Outcome:       models.PaymentSuccess,
			ResponseCode:  code,
			TransactionNo: query.Get(TransactionNoParam),
		}
	}

	delay := config.AppConfig.PaymentRetryDelaySec
	if delay <= 0 {
		delay = defaultRetryDelaySec
	}
	return models.PaymentReturn{
		Outcome:           models.PaymentFailure,
		ResponseCode:      code,
		TransactionNo:     query.Get(TransactionNoParam),
		RetryAfterSeconds: delay,
	}
}
