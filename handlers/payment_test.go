package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vaxportal/models"
	"vaxportal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	data map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{data: map[string][]byte{}}
}

func (s *memStore) Get(ctx context.Context, key string, dest any) (bool, error) {
	blob, ok := s.data[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(blob, dest); err != nil {
		delete(s.data, key)
		return false, nil
	}
	return true, nil
}

func (s *memStore) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	blob, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.data[key] = blob
	return nil
}

func (s *memStore) Clear(ctx context.Context, key string) error {
	delete(s.data, key)
	return nil
}

func paymentRouter(store utils.KVStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewPaymentHandler(store)
	r.GET("/api/payment/return", func(c *gin.Context) {
		c.Set("userID", "user-1")
		h.PaymentReturnHandler(c)
	})
	return r
}

func TestPaymentReturnSuccessAttachesSnapshot(t *testing.T) {
	store := newMemStore()
	require.NoError(t, store.Set(context.Background(), utils.LastAppointmentKey("user-1"), models.LastAppointment{
		AppointmentID: "appt-1",
		ChildName:     "An",
		Date:          "2026-09-15",
		TimeStart:     "09:00",
		Total:         1460000,
	}, 0))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/payment/return?vnp_ResponseCode=00&vnp_TransactionNo=14226112", nil)
	paymentRouter(store).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var got models.PaymentReturn
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, models.PaymentSuccess, got.Outcome)
	assert.Equal(t, "14226112", got.TransactionNo)
	require.NotNil(t, got.LastAppointment)
	assert.Equal(t, "appt-1", got.LastAppointment.AppointmentID)
	assert.Equal(t, int64(1460000), got.LastAppointment.Total)
}

func TestPaymentReturnSuccessWithoutSnapshot(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/payment/return?vnp_ResponseCode=00", nil)
	paymentRouter(newMemStore()).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var got models.PaymentReturn
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, models.PaymentSuccess, got.Outcome)
	assert.Nil(t, got.LastAppointment)
}

func TestPaymentReturnFailure(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/payment/return?vnp_ResponseCode=24", nil)
	paymentRouter(newMemStore()).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var got models.PaymentReturn
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, models.PaymentFailure, got.Outcome)
	assert.Equal(t, "24", got.ResponseCode)
	assert.Equal(t, 5, got.RetryAfterSeconds)
	assert.Nil(t, got.LastAppointment)
}
