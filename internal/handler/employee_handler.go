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

type EmployeeHandler struct {
	employeeService service.EmployeeService
	fileService     service.FileService
}

func NewEmployeeHandler(employeeService service.EmployeeService, fileService service.FileService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService, fileService: fileService}
}

func (h *EmployeeHandler) RegisterRoutes(router *gin.RouterGroup) {
	employees := router.Group("/api/employees")
	employees.Use(middleware.RequireRole(model.RoleUser, model.RoleAdmin))
	{
		employees.GET("", h.ListEmployees)
		employees.GET("/:id", h.GetEmployee)
		employees.POST("", h.CreateEmployee)
		employees.POST("/query", h.QueryEmployees)
		employees.POST("/:id/picture", h.UploadPicture)
		employees.PUT("/:id", h.UpdateEmployee)
		employees.DELETE("/:id", h.DeleteEmployee)
	}
}

// ListEmployees returns all employees with country and city resolved
// @Summary      List employees
// @Tags         employees
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /api/employees [get]
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	employees, err := h.employeeService.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, employees))
}

func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid employee ID"))
		return
	}

	employee, err := h.employeeService.GetByID(c.Request.Context(), id)
	if err != nil {
		status := statusFor(err)
		c.JSON(status, response.Error(status, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, employee))
}

// QueryEmployees serves the server-side table: filter, sort, page
// @Summary      Query employees for tabular display
// @Tags         employees
// @Security     BearerAuth
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Success      200  {object}  datatable.Response[service.EmployeeVM]
// @Router       /api/employees/query [post]
func (h *EmployeeHandler) QueryEmployees(c *gin.Context) {
	req := datatable.ParseRequest(c)
	res, err := h.employeeService.Query(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}
	c.JSON(http.StatusOK, res)
}

// CreateEmployee creates a new employee
// @Summary      Create employee
// @Tags         employees
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body  service.EmployeeRequest  true  "Employee payload"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /api/employees [post]
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var req service.EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	employee, err := h.employeeService.Create(c.Request.Context(), req, actorFrom(c))
	if err != nil {
		status := statusFor(err)
		c.JSON(status, response.Error(status, err.Error()))
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, employee))
}

// UploadPicture stores a profile picture for an employee and replaces
// any previously stored one.
// @Summary      Upload employee picture
// @Tags         employees
// @Security     BearerAuth
// @Accept       multipart/form-data
// @Produce      json
// @Param        id       path      int   true  "Employee ID"
// @Param        picture  formData  file  true  "Picture file (JPG, PNG, GIF, max 10MB)"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /api/employees/{id}/picture [post]
func (h *EmployeeHandler) UploadPicture(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid employee ID"))
		return
	}

	file, err := c.FormFile("picture")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Picture file is required"))
		return
	}

	path, err := h.fileService.SaveEmployeePicture(file)
	if err != nil {
		status := statusFor(err)
		c.JSON(status, response.Error(status, err.Error()))
		return
	}

	previous, err := h.employeeService.SetPicturePath(c.Request.Context(), id, path)
	if err != nil {
		h.fileService.RemovePicture(path)
		status := statusFor(err)
		c.JSON(status, response.Error(status, err.Error()))
		return
	}
	h.fileService.RemovePicture(previous)

	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"picture_path": path}))
}

func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid employee ID"))
		return
	}

	var req service.EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	employee, err := h.employeeService.Update(c.Request.Context(), id, req, actorFrom(c))
	if err != nil {
		status := statusFor(err)
		c.JSON(status, response.Error(status, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, employee))
}

// DeleteEmployee deletes an employee together with their daily rides.
// The delete is refused while fines or expenses reference the employee.
// @Summary      Delete employee
// @Tags         employees
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  int  true  "Employee ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /api/employees/{id} [delete]
func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid employee ID"))
		return
	}

	if err := h.employeeService.Delete(c.Request.Context(), id, actorFrom(c)); err != nil {
		status := statusFor(err)
		c.JSON(status, response.Error(status, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"message": "Employee deleted successfully"}))
}
