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

type CultivationHandler struct {
	log                *logger.Logger
	cultivationService services.CultivationService
}

func NewCultivationHandler(baseLog *logger.Logger, cultivationService services.CultivationService) *CultivationHandler {
	return &CultivationHandler{
		log:                baseLog.With("handler", "CultivationHandler"),
		cultivationService: cultivationService,
	}
}

func (h *CultivationHandler) Create(c *gin.Context) {
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
	var in types.CreateCultivationInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadRequest(c, err)
		return
	}
	if in.FieldID != fieldID {
		respondIDMismatch(c)
		return
	}
	result := h.cultivationService.Create(c.Request.Context(), in, rd.UserID)
	respondResult(c, http.StatusCreated, result.BaseResult, result)
}

func (h *CultivationHandler) List(c *gin.Context) {
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
	farmID, err := uuid.Parse(c.Query("farmId"))
	if err != nil {
		respondInvalidID(c, "farmId")
		return
	}
	result := h.cultivationService.GetForField(c.Request.Context(), fieldID, farmID, rd.UserID)
	respondResult(c, http.StatusOK, result.BaseResult, result)
}

func (h *CultivationHandler) Harvest(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		respondUnauthorized(c)
		return
	}
	cultivationID, err := uuid.Parse(c.Param("cultivationId"))
	if err != nil {
		respondInvalidID(c, "cultivationId")
		return
	}
	var in types.HarvestInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadRequest(c, err)
		return
	}
	if in.CultivationID != cultivationID {
		respondIDMismatch(c)
		return
	}
	result := h.cultivationService.Harvest(c.Request.Context(), in, rd.UserID)
	respondResult(c, http.StatusOK, result, result)
}

func (h *CultivationHandler) UpdateStatus(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		respondUnauthorized(c)
		return
	}
	cultivationID, err := uuid.Parse(c.Param("cultivationId"))
	if err != nil {
		respondInvalidID(c, "cultivationId")
		return
	}
	var in types.UpdateCultivationStatusInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadRequest(c, err)
		return
	}
	if in.CultivationID != cultivationID {
		respondIDMismatch(c)
		return
	}
	result := h.cultivationService.UpdateStatus(c.Request.Context(), in, rd.UserID)
	respondResult(c, http.StatusOK, result, result)
}

func (h *CultivationHandler) Delete(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		respondUnauthorized(c)
		return
	}
	cultivationID, err := uuid.Parse(c.Param("cultivationId"))
	if err != nil {
		respondInvalidID(c, "cultivationId")
		return
	}
	var in types.DeleteCultivationInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadRequest(c, err)
		return
	}
	if in.CultivationID != cultivationID {
		respondIDMismatch(c)
		return
	}
	result := h.cultivationService.Delete(c.Request.Context(), in, rd.UserID)
	respondResult(c, http.StatusOK, result, result)
}
