package handlers

import (
	"net/http"

	"vaxportal/models"
	"vaxportal/services/payment"
	"vaxportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler interprets the gateway return redirect for the client.
type PaymentHandler struct {
	Store utils.KVStore
}

func NewPaymentHandler(store utils.KVStore) *PaymentHandler {
	return &PaymentHandler{Store: store}
}

// PaymentReturnHandler classifies the gateway return query. On a successful
// payment the stored last-appointment snapshot is attached so the success
// screen can render without another round trip.
func (h *PaymentHandler) PaymentReturnHandler(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "")
		return
	}

	result := payment.InterpretReturn(c.Request.URL.Query())
	if result.Outcome == models.PaymentSuccess {
		var snap models.LastAppointment
		found, err := h.Store.Get(c.Request.Context(), utils.LastAppointmentKey(userID), &snap)
		if err != nil {
			getLogger(c).Warn("Failed to load last appointment snapshot", zap.Error(err))
		} else if found {
			result.LastAppointment = &snap
		}
	}

	c.JSON(http.StatusOK, result)
}
