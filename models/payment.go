package models

// PaymentOutcome classifies a gateway return redirect.
type PaymentOutcome string

const (
	PaymentSuccess PaymentOutcome = "success"
	PaymentFailure PaymentOutcome = "failure"
)

// PaymentReturn is the interpreted result of a gateway return URL. On
// failure RetryAfterSeconds tells the client when to navigate back to the
// booking entry point; on success LastAppointment carries the snapshot for
// the success screen.
type PaymentReturn struct {
	Outcome           PaymentOutcome   `json:"outcome"`
	ResponseCode      string           `json:"responseCode"`
	TransactionNo     string           `json:"transactionNo,omitempty"`
	RetryAfterSeconds int              `json:"retryAfterSeconds,omitempty"`
	LastAppointment   *LastAppointment `json:"lastAppointment,omitempty"`
}
