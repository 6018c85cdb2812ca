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

type FarmHandler struct {
	log         *logger.Logger
	farmService services.FarmService
}

func NewFarmHandler(baseLog *logger.Logger, farmService services.FarmService) *FarmHandler {
	return &FarmHandler{
		log:         baseLog.With("handler", "FarmHandler"),
		farmService: farmService,
	}
}

func (h *FarmHandler) Create(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		respondUnauthorized(c)
		return
	}
	var in types.CreateFarmInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadRequest(c, err)
		return
	}
	result := h.farmService.Create(c.Request.Context(), in, rd.UserID)
	respondResult(c, http.StatusCreated, result.BaseResult, result)
}

func (h *FarmHandler) GetFullInfo(c *gin.Context) {
	farmID, err := uuid.Parse(c.Param("farmId"))
	if err != nil {
		respondInvalidID(c, "farmId")
		return
	}
	result := h.farmService.GetFullInfo(c.Request.Context(), farmID)
	respondResult(c, http.StatusOK, result.BaseResult, result)
}

func (h *FarmHandler) GetOwned(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		respondUnauthorized(c)
		return
	}
	result := h.farmService.GetByOwner(c.Request.Context(), rd.UserID)
	respondResult(c, http.StatusOK, result.BaseResult, result)
}

func (h *FarmHandler) GetManaged(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		respondUnauthorized(c)
		return
	}
	result := h.farmService.GetByManager(c.Request.Context(), rd.UserID)
	respondResult(c, http.StatusOK, result.BaseResult, result)
}

func (h *FarmHandler) Update(c *gin.Context) {
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
	var in types.UpdateFarmInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadRequest(c, err)
		return
	}
	if in.ID != farmID {
		respondIDMismatch(c)
		return
	}
	result := h.farmService.Update(c.Request.Context(), in, rd.UserID)
	respondResult(c, http.StatusOK, result.BaseResult, result)
}

func (h *FarmHandler) Delete(c *gin.Context) {
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
	result := h.farmService.Delete(c.Request.Context(), farmID, rd.UserID)
	respondResult(c, http.StatusOK, result, result)
}

func (h *FarmHandler) AddManager(c *gin.Context) {
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
	var in types.AddManagerInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadRequest(c, err)
		return
	}
	result := h.farmService.AddManager(c.Request.Context(), farmID, in.Email, rd.UserID)
	respondResult(c, http.StatusCreated, result.BaseResult, result)
}

func (h *FarmHandler) RemoveManager(c *gin.Context) {
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
	managerID, err := uuid.Parse(c.Param("managerId"))
	if err != nil {
		respondInvalidID(c, "managerId")
		return
	}
	result := h.farmService.RemoveManager(c.Request.Context(), farmID, managerID, rd.UserID)
	respondResult(c, http.StatusOK, result, result)
}
