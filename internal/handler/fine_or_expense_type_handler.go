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

type FineOrExpenseTypeHandler struct {
	typeService service.FineOrExpenseTypeService
}

func NewFineOrExpenseTypeHandler(typeService service.FineOrExpenseTypeService) *FineOrExpenseTypeHandler {
	return &FineOrExpenseTypeHandler{typeService: typeService}
}

func (h *FineOrExpenseTypeHandler) RegisterRoutes(router *gin.RouterGroup) {
	types := router.Group("/api/fine-or-expense-types")
	types.Use(middleware.RequireRole(model.RoleAdmin))
	{
		types.GET("", h.ListTypes)
		types.GET("/:id", h.GetType)
		types.POST("", h.CreateType)
		types.POST("/query", h.QueryTypes)
		types.PUT("/:id", h.UpdateType)
		types.DELETE("/:id", h.DeleteType)
	}
}

// ListTypes returns all fine/expense types ordered by name
// @Summary      List fine/expense types
// @Tags         fine-or-expense-types
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /api/fine-or-expense-types [get]
func (h *FineOrExpenseTypeHandler) ListTypes(c *gin.Context) {
	types, err := h.typeService.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, types))
}

func (h *FineOrExpenseTypeHandler) GetType(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid type ID"))
		return
	}

	t, err := h.typeService.GetByID(c.Request.Context(), id)
	if err != nil {
		status := statusFor(err)
		c.JSON(status, response.Error(status, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, t))
}

func (h *FineOrExpenseTypeHandler) QueryTypes(c *gin.Context) {
	req := datatable.ParseRequest(c)
	res, err := h.typeService.Query(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}
	c.JSON(http.StatusOK, res)
}

// CreateType creates a fine/expense type. Names are unique, compared
// case-insensitively.
// @Summary      Create fine/expense type
// @Tags         fine-or-expense-types
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body  service.FineOrExpenseTypeRequest  true  "Type payload"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /api/fine-or-expense-types [post]
func (h *FineOrExpenseTypeHandler) CreateType(c *gin.Context) {
	var req service.FineOrExpenseTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	t, err := h.typeService.Create(c.Request.Context(), req, actorFrom(c))
	if err != nil {
		status := statusFor(err)
		c.JSON(status, response.Error(status, err.Error()))
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, t))
}

func (h *FineOrExpenseTypeHandler) UpdateType(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid type ID"))
		return
	}

	var req service.FineOrExpenseTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	t, err := h.typeService.Update(c.Request.Context(), id, req, actorFrom(c))
	if err != nil {
		status := statusFor(err)
		c.JSON(status, response.Error(status, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, t))
}

// DeleteType deletes a type if no fines or expenses reference it
func (h *FineOrExpenseTypeHandler) DeleteType(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid type ID"))
		return
	}

	if err := h.typeService.Delete(c.Request.Context(), id, actorFrom(c)); err != nil {
		status := statusFor(err)
		c.JSON(status, response.Error(status, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"message": "Fine/expense type deleted successfully"}))
}
