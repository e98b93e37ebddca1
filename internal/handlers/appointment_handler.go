package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ericmelomp/PetFacil/internal/audit"
	domain "github.com/ericmelomp/PetFacil/internal/domain/appointment"
	"github.com/ericmelomp/PetFacil/internal/dto"
	"github.com/ericmelomp/PetFacil/internal/httperr"
	"github.com/ericmelomp/PetFacil/internal/models"
	"github.com/ericmelomp/PetFacil/internal/money"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
	loc   *time.Location
}

func NewAppointmentHandler(
	db *gorm.DB,
	dispatcher *audit.Dispatcher,
	loc *time.Location,
) *AppointmentHandler {
	return &AppointmentHandler{
		db:    db,
		audit: dispatcher,
		loc:   loc,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type AppointmentRequest struct {
	PetName         string       `json:"pet_name" binding:"required"`
	OwnerName       string       `json:"owner_name" binding:"required"`
	OwnerPhone      *string      `json:"owner_phone"`
	ServiceID       *uint        `json:"service_id"`
	AppointmentDate time.Time    `json:"appointment_date" binding:"required"`
	PickupService   bool         `json:"pickup_service"`
	PickupAddress   *string      `json:"pickup_address"`
	Notes           *string      `json:"notes"`
	Price           *money.Money `json:"price"`
	Status          string       `json:"status"`
	PaymentMethod   *string      `json:"payment_method"`

	// Campo opcional explícito: nil preserva o valor gravado,
	// true/false sobrescreve. Ignorado no create (sempre false).
	Paid *bool `json:"paid"`
}

func (req *AppointmentRequest) apply(ap *models.Appointment) {
	ap.PetName = req.PetName
	ap.OwnerName = req.OwnerName
	ap.OwnerPhone = req.OwnerPhone
	ap.ServiceID = req.ServiceID
	ap.AppointmentDate = req.AppointmentDate
	ap.PickupService = req.PickupService
	ap.PickupAddress = req.PickupAddress
	ap.Notes = req.Notes
	ap.Price = req.Price
	ap.PaymentMethod = req.PaymentMethod

	// Status desconhecido passa como veio; só o vazio vira o default.
	if req.Status != "" {
		ap.Status = req.Status
	} else {
		ap.Status = string(domain.InitialStatus())
	}
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	startStr := c.Query("start")
	endStr := c.Query("end")

	// Filtro de intervalo só quando as duas pontas chegam, inclusivo
	// nas duas.
	var start, end time.Time
	filtered := startStr != "" && endStr != ""
	if filtered {
		var err error
		start, err = time.Parse(time.RFC3339, startStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_start", "Data inicial inválida.")
			return
		}
		end, err = time.Parse(time.RFC3339, endStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_end", "Data final inválida.")
			return
		}
	}

	q := h.db.Preload("Service")
	if filtered {
		q = q.Where("appointment_date >= ? AND appointment_date <= ?", start, end)
	}

	var aps []models.Appointment
	if err := q.
		Order("appointment_date ASC").
		Find(&aps).Error; err != nil {

		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	c.JSON(http.StatusOK, dto.FromAppointments(aps))
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	var ap models.Appointment
	req.apply(&ap)
	ap.Paid = false // pago nunca nasce true

	if err := h.db.Create(&ap).Error; err != nil {
		httperr.Internal(c, "failed_to_create_appointment", "Erro ao criar agendamento.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	c.JSON(http.StatusCreated, dto.FromAppointment(h.withService(ap)))
}

// ======================================================
// UPDATE
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var ap models.Appointment
	if err := h.db.First(&ap, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_appointment", "Erro ao buscar agendamento.")
		return
	}

	var req AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	req.apply(&ap)
	if req.Paid != nil {
		ap.Paid = *req.Paid
	}

	if err := h.db.Save(&ap).Error; err != nil {
		httperr.Internal(c, "failed_to_update_appointment", "Erro ao atualizar agendamento.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	c.JSON(http.StatusOK, dto.FromAppointment(h.withService(ap)))
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	var ap models.Appointment
	if err := h.db.First(&ap, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_appointment", "Erro ao buscar agendamento.")
		return
	}

	if err := h.db.Delete(&ap).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_appointment", "Erro ao remover agendamento.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	c.JSON(http.StatusOK, dto.FromAppointment(ap))
}

// ======================================================
// CANCEL / COMPLETE
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	h.transition(c, "appointment_cancelled", domain.Cancel)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	h.transition(c, "appointment_completed", domain.Complete)
}

func (h *AppointmentHandler) transition(
	c *gin.Context,
	action string,
	apply func(*models.Appointment, time.Time) error,
) {
	id := c.Param("id")

	var ap models.Appointment
	if err := h.db.First(&ap, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_appointment", "Erro ao buscar agendamento.")
		return
	}

	now := time.Now().In(h.loc)
	if err := apply(&ap, now); err != nil {
		httperr.BadRequest(c, "invalid_state", "Transição de status inválida.")
		return
	}

	if err := h.db.Save(&ap).Error; err != nil {
		httperr.Internal(c, "failed_to_update_appointment", "Erro ao atualizar agendamento.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   action,
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	c.JSON(http.StatusOK, dto.FromAppointment(h.withService(ap)))
}

// withService recarrega só a referência do serviço para a resposta
// trazer service_name igual à listagem.
func (h *AppointmentHandler) withService(ap models.Appointment) models.Appointment {
	if ap.ServiceID != nil && ap.Service == nil {
		var svc models.Service
		if err := h.db.First(&svc, *ap.ServiceID).Error; err == nil {
			ap.Service = &svc
		}
	}
	return ap
}
