package handlers

import (
	"net/http"
	"time"

	appointmentRepo "vaxportal/database/repository/appointment"
	"vaxportal/models"
	"vaxportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AppointmentHandler serves the appointment history, detail, cancel and
// edit views.
type AppointmentHandler struct {
	Repo appointmentRepo.AppointmentRepository
}

func NewAppointmentHandler(repo appointmentRepo.AppointmentRepository) *AppointmentHandler {
	return &AppointmentHandler{Repo: repo}
}

type appointmentView struct {
	models.Appointment
	VaccineDetails []models.VaccineDetail `json:"vaccineDetailsList"`
	Total          int64                  `json:"total"`
}

// newAppointmentView de-duplicates vaccine lines before rendering so the
// total shown never double-counts repeated entries.
func newAppointmentView(a models.Appointment) appointmentView {
	return appointmentView{
		Appointment:    a,
		VaccineDetails: a.UniqueVaccineDetails(),
		Total:          a.TotalPrice(),
	}
}

// loadOwned fetches the appointment and enforces that the caller owns it.
func (h *AppointmentHandler) loadOwned(c *gin.Context) (*models.Appointment, bool) {
	userID, ok := authedUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "")
		return nil, false
	}

	appt, err := h.Repo.GetByID(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Appointment not found", "")
		return nil, false
	}
	if appt.UserID != userID {
		utils.JSONError(c, http.StatusForbidden, "Appointment belongs to another account", "")
		return nil, false
	}
	return appt, true
}

// ListByUser returns the caller's appointments, newest first.
func (h *AppointmentHandler) ListByUser(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "")
		return
	}
	if c.Param("id") != userID {
		utils.JSONError(c, http.StatusForbidden, "Cannot view another user's appointments", "")
		return
	}

	appts, err := h.Repo.GetByUser(userID)
	if err != nil {
		getLogger(c).Error("Failed to list appointments", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list appointments", "")
		return
	}

	views := make([]appointmentView, 0, len(appts))
	for _, a := range appts {
		views = append(views, newAppointmentView(a))
	}
	c.JSON(http.StatusOK, views)
}

// GetByID returns one appointment detail.
func (h *AppointmentHandler) GetByID(c *gin.Context) {
	appt, ok := h.loadOwned(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, newAppointmentView(*appt))
}

// Cancel moves a scheduled appointment to cancelled.
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	appt, ok := h.loadOwned(c)
	if !ok {
		return
	}
	if appt.Status != models.StatusScheduled {
		utils.JSONError(c, http.StatusConflict, "Only scheduled appointments can be cancelled", "")
		return
	}

	if err := h.Repo.UpdateStatus(appt.ID, models.StatusCancelled); err != nil {
		getLogger(c).Error("Failed to cancel appointment", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to cancel appointment", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointmentId": appt.ID, "status": models.StatusCancelled})
}

// Edit updates the date, start time and note of a scheduled appointment.
func (h *AppointmentHandler) Edit(c *gin.Context) {
	appt, ok := h.loadOwned(c)
	if !ok {
		return
	}
	if appt.Status != models.StatusScheduled {
		utils.JSONError(c, http.StatusConflict, "Only scheduled appointments can be edited", "")
		return
	}

	var req struct {
		AppointmentDate string `json:"appointmentDate" binding:"required"`
		TimeStart       string `json:"timeStart" binding:"required"`
		Note            string `json:"note"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid appointment update", err.Error())
		return
	}
	if _, err := time.Parse(utils.DateLayout, req.AppointmentDate); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid appointment date", "expected YYYY-MM-DD")
		return
	}
	if _, err := time.Parse("15:04", req.TimeStart); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid start time", "expected HH:MM")
		return
	}

	if err := h.Repo.UpdateDetails(appt.ID, req.AppointmentDate, req.TimeStart, req.Note); err != nil {
		getLogger(c).Error("Failed to edit appointment", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update appointment", "")
		return
	}

	updated, err := h.Repo.GetByID(appt.ID)
	if err != nil {
		getLogger(c).Error("Failed to reload appointment", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to reload appointment", "")
		return
	}
	c.JSON(http.StatusOK, newAppointmentView(*updated))
}
