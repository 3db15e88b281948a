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

type ConfigurationHandler struct {
	configService service.ConfigurationService
}

func NewConfigurationHandler(configService service.ConfigurationService) *ConfigurationHandler {
	return &ConfigurationHandler{configService: configService}
}

func (h *ConfigurationHandler) RegisterRoutes(router *gin.RouterGroup) {
	configs := router.Group("/api/configurations")
	configs.Use(middleware.RequireRole(model.RoleAdmin))
	{
		configs.GET("", h.ListConfigurations)
		configs.GET("/:id", h.GetConfiguration)
		configs.POST("", h.CreateConfiguration)
		configs.POST("/query", h.QueryConfigurations)
		configs.PUT("/:id", h.UpdateConfiguration)
		configs.DELETE("/:id", h.DeleteConfiguration)
	}
}

// ListConfigurations returns all configuration entries ordered by key
// @Summary      List configurations
// @Tags         configurations
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /api/configurations [get]
func (h *ConfigurationHandler) ListConfigurations(c *gin.Context) {
	configs, err := h.configService.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, configs))
}

func (h *ConfigurationHandler) GetConfiguration(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid configuration ID"))
		return
	}

	cfg, err := h.configService.GetByID(c.Request.Context(), id)
	if err != nil {
		status := statusFor(err)
		c.JSON(status, response.Error(status, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, cfg))
}

func (h *ConfigurationHandler) QueryConfigurations(c *gin.Context) {
	req := datatable.ParseRequest(c)
	res, err := h.configService.Query(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}
	c.JSON(http.StatusOK, res)
}

// CreateConfiguration creates a configuration entry (e.g. CashWAT, CreditWAT)
// @Summary      Create configuration
// @Tags         configurations
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body  service.CreateConfigurationRequest  true  "Configuration payload"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /api/configurations [post]
func (h *ConfigurationHandler) CreateConfiguration(c *gin.Context) {
	var req service.CreateConfigurationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	cfg, err := h.configService.Create(c.Request.Context(), req, actorFrom(c))
	if err != nil {
		status := statusFor(err)
		c.JSON(status, response.Error(status, err.Error()))
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, cfg))
}

// UpdateConfiguration updates the value of a configuration entry. The key
// itself is immutable.
func (h *ConfigurationHandler) UpdateConfiguration(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid configuration ID"))
		return
	}

	var req service.UpdateConfigurationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	cfg, err := h.configService.Update(c.Request.Context(), id, req, actorFrom(c))
	if err != nil {
		status := statusFor(err)
		c.JSON(status, response.Error(status, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, cfg))
}

func (h *ConfigurationHandler) DeleteConfiguration(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid configuration ID"))
		return
	}

	if err := h.configService.Delete(c.Request.Context(), id, actorFrom(c)); err != nil {
		status := statusFor(err)
		c.JSON(status, response.Error(status, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"message": "Configuration deleted successfully"}))
}
