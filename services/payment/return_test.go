package payment

import (
	"net/url"
	"testing"

	"vaxportal/config"
	"vaxportal/models"

	"github.com/stretchr/testify/assert"
)

func TestInterpretReturnSuccess(t *testing.T) {
	query := url.Values{}
	query.Set("vnp_ResponseCode", "00")
	query.Set("vnp_TransactionNo", "14226112")

	got := InterpretReturn(query)
	assert.Equal(t, models.PaymentSuccess, got.Outcome)
	assert.Equal(t, "00", got.ResponseCode)
	assert.Equal(t, "14226112", got.TransactionNo)
	assert.Zero(t, got.RetryAfterSeconds)
}

func TestInterpretReturnFailureCodes(t *testing.T) {
	// Any code other than "00" is a failure, including user-cancelled
	// ("24") and the empty string.
	for _, code := range []string{"24", "07", "99", "0", "000", ""} {
		query := url.Values{}
		if code != "" {
			query.Set("vnp_ResponseCode", code)
		}

		got := InterpretReturn(query)
		assert.Equal(t, models.PaymentFailure, got.Outcome, "code %q", code)
		assert.Equal(t, code, got.ResponseCode)
		assert.Equal(t, 5, got.RetryAfterSeconds)
	}
}

func TestInterpretReturnRetryDelayFromConfig(t *testing.T) {
	orig := config.AppConfig.PaymentRetryDelaySec
	config.AppConfig.PaymentRetryDelaySec = 12
	defer func() { config.AppConfig.PaymentRetryDelaySec = orig }()

	got := InterpretReturn(url.Values{"vnp_ResponseCode": []string{"24"}})
	assert.Equal(t, 12, got.RetryAfterSeconds)
}
