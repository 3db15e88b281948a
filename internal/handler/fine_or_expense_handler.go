package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ridersapp/internal/middleware"
	"ridersapp/internal/model"
	"ridersapp/internal/service"
	"ridersapp/pkg/datatable"
	"ridersapp/pkg/response"
)

type FineOrExpenseHandler struct {
	fineService service.FineOrExpenseService
}

func NewFineOrExpenseHandler(fineService service.FineOrExpenseService) *FineOrExpenseHandler {
	return &FineOrExpenseHandler{fineService: fineService}
}

func (h *FineOrExpenseHandler) RegisterRoutes(router *gin.RouterGroup) {
	fines := router.Group("/api/fine-or-expenses")
	fines.Use(middleware.RequireRole(model.RoleUser, model.RoleAdmin))
	{
		fines.GET("", h.ListFines)
		fines.GET("/:id", h.GetFine)
		fines.POST("", h.CreateFine)
		fines.POST("/query", h.QueryFines)
		fines.PUT("/:id", h.UpdateFine)
		fines.DELETE("/:id", h.DeleteFine)
	}
}

// ListFines returns all fine/expense records with employee and type resolved
// @Summary      List fines and expenses
// @Tags         fine-or-expenses
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /api/fine-or-expenses [get]
func (h *FineOrExpenseHandler) ListFines(c *gin.Context) {
	fines, err := h.fineService.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, fines))
}

func (h *FineOrExpenseHandler) GetFine(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid fine/expense ID"))
		return
	}

	fine, err := h.fineService.GetByID(c.Request.Context(), id)
	if err != nil {
		status := statusFor(err)
		c.JSON(status, response.Error(status, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, fine))
}

func (h *FineOrExpenseHandler) QueryFines(c *gin.Context) {
	req := datatable.ParseRequest(c)
	res, err := h.fineService.Query(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}
	c.JSON(http.StatusOK, res)
}

// CreateFine records a fine or expense. Validation errors for amount,
// description and entry date are reported together in one message.
// @Summary      Create fine or expense
// @Tags         fine-or-expenses
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body  service.FineOrExpenseRequest  true  "Fine/expense payload"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /api/fine-or-expenses [post]
func (h *FineOrExpenseHandler) CreateFine(c *gin.Context) {
	var req service.FineOrExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	fine, err := h.fineService.Create(c.Request.Context(), req, actorFrom(c))
	if err != nil {
		status := statusFor(err)
		c.JSON(status, response.Error(status, err.Error()))
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, fine))
}

func (h *FineOrExpenseHandler) UpdateFine(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid fine/expense ID"))
		return
	}

	var req service.FineOrExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	fine, err := h.fineService.Update(c.Request.Context(), id, req, actorFrom(c))
	if err != nil {
		status := statusFor(err)
		c.JSON(status, response.Error(status, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, fine))
}

func (h *FineOrExpenseHandler) DeleteFine(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid fine/expense ID"))
		return
	}

	if err := h.fineService.Delete(c.Request.Context(), id, actorFrom(c)); err != nil {
		status := statusFor(err)
		c.JSON(status, response.Error(status, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"message": "Fine/expense deleted successfully"}))
}
