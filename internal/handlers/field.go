package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/paavkar/AgricultureApp/internal/logger"
	"github.com/paavkar/AgricultureApp/internal/requestdata"
	"github.com/paavkar/AgricultureApp/internal/services"
	"github.com/paavkar/AgricultureApp/internal/types"
)

type FieldHandler struct {
	log          *logger.Logger
	fieldService services.FieldService
}

func NewFieldHandler(baseLog *logger.Logger, fieldService services.FieldService) *FieldHandler {
	return &FieldHandler{
		log:          baseLog.With("handler", "FieldHandler"),
		fieldService: fieldService,
	}
}

func (h *FieldHandler) Create(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		respondUnauthorized(c)
		return
	}
	farmID, err := uuid.Parse(c.Param("farmId"))
	if err != nil {
		respondInvalidID(c, "farmId")
		return
	}
	var in types.CreateFieldInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadRequest(c, err)
		return
	}
	if in.OwnerFarmID != farmID {
		respondIDMismatch(c)
		return
	}
	result := h.fieldService.Create(c.Request.Context(), in, rd.UserID)
	respondResult(c, http.StatusCreated, result.BaseResult, result)
}

func (h *FieldHandler) Get(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		respondUnauthorized(c)
		return
	}
	fieldID, err := uuid.Parse(c.Param("fieldId"))
	if err != nil {
		respondInvalidID(c, "fieldId")
		return
	}
	result := h.fieldService.Get(c.Request.Context(), fieldID, rd.UserID)
	respondResult(c, http.StatusOK, result.BaseResult, result)
}

func (h *FieldHandler) Lend(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		respondUnauthorized(c)
		return
	}
	fieldID, err := uuid.Parse(c.Param("fieldId"))
	if err != nil {
		respondInvalidID(c, "fieldId")
		return
	}
	var in types.UpdateFieldFarmInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadRequest(c, err)
		return
	}
	if in.FieldID != fieldID {
		respondIDMismatch(c)
		return
	}
	result := h.fieldService.Lend(c.Request.Context(), in, rd.UserID)
	respondResult(c, http.StatusOK, result, result)
}

func (h *FieldHandler) Revert(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		respondUnauthorized(c)
		return
	}
	fieldID, err := uuid.Parse(c.Param("fieldId"))
	if err != nil {
		respondInvalidID(c, "fieldId")
		return
	}
	var in types.UpdateFieldFarmInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadRequest(c, err)
		return
	}
	if in.FieldID != fieldID {
		respondIDMismatch(c)
		return
	}
	result := h.fieldService.Revert(c.Request.Context(), in, rd.UserID)
	respondResult(c, http.StatusOK, result, result)
}

func (h *FieldHandler) Update(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		respondUnauthorized(c)
		return
	}
	fieldID, err := uuid.Parse(c.Param("fieldId"))
	if err != nil {
		respondInvalidID(c, "fieldId")
		return
	}
	var in types.UpdateFieldInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadRequest(c, err)
		return
	}
	if in.FieldID != fieldID {
		respondIDMismatch(c)
		return
	}
	result := h.fieldService.Update(c.Request.Context(), in, rd.UserID)
	respondResult(c, http.StatusOK, result, result)
}

func (h *FieldHandler) UpdateStatus(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		respondUnauthorized(c)
		return
	}
	fieldID, err := uuid.Parse(c.Param("fieldId"))
	if err != nil {
		respondInvalidID(c, "fieldId")
		return
	}
	var in types.UpdateFieldStatusInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadRequest(c, err)
		return
	}
	if in.FieldID != fieldID {
		respondIDMismatch(c)
		return
	}
	result := h.fieldService.UpdateStatus(c.Request.Context(), in, rd.UserID)
	respondResult(c, http.StatusOK, result, result)
}
