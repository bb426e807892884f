package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusdb/registrar/internal/app/models/dto"
	"github.com/campusdb/registrar/internal/app/services"
	"github.com/campusdb/registrar/internal/middleware"
)

// DepartmentHeadController handles department head operations. The path ID
// is a department ID, not a separate head ID.
type DepartmentHeadController struct {
	headService services.DepartmentHeadService
}

// NewDepartmentHeadController creates a new DepartmentHeadController
func NewDepartmentHeadController(headService services.DepartmentHeadService) *DepartmentHeadController {
	return &DepartmentHeadController{
		headService: headService,
	}
}

// GetAllDepartmentHeads retrieves all department heads
// @Summary List department heads
// @Tags department-heads
// @Produce json
// @Success 200 {array} models.DepartmentHead
// @Router /department-heads [get]
func (c *DepartmentHeadController) GetAllDepartmentHeads(ctx *gin.Context) {
	heads, err := c.headService.GetAllDepartmentHeads(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, heads)
}

// GetDepartmentHead retrieves the head of a department
// @Summary Get a department's head
// @Tags department-heads
// @Produce json
// @Param id path int true "Department ID"
// @Success 200 {object} models.DepartmentHead
// @Failure 404 {object} dto.ErrorResponse
// @Router /department-heads/{id} [get]
func (c *DepartmentHeadController) GetDepartmentHead(ctx *gin.Context) {
	departmentID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	head, err := c.headService.GetDepartmentHead(ctx, departmentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, head)
}

// AssignDepartmentHead assigns an instructor as head of a department
// @Summary Assign a department head
// @Tags department-heads
// @Accept json
// @Produce json
// @Param request body dto.DepartmentHeadRequest true "Department head fields"
// @Success 201 {object} dto.CreateResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /department-heads [post]
func (c *DepartmentHeadController) AssignDepartmentHead(ctx *gin.Context) {
	var req dto.DepartmentHeadRequest
	if !bindJSON(ctx, &req) {
		return
	}

	id, err := c.headService.AssignDepartmentHead(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreateResponse{ID: id, Message: "Department head assigned successfully"})
}

// UpdateDepartmentHead replaces the head record for a department
// @Summary Update a department's head
// @Tags department-heads
// @Accept json
// @Produce json
// @Param id path int true "Department ID"
// @Param request body dto.DepartmentHeadUpdateRequest true "Department head fields"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /department-heads/{id} [put]
func (c *DepartmentHeadController) UpdateDepartmentHead(ctx *gin.Context) {
	departmentID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.DepartmentHeadUpdateRequest
	if !bindJSON(ctx, &req) {
		return
	}

	if err := c.headService.UpdateDepartmentHead(ctx, departmentID, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Department head updated successfully"})
}

// RemoveDepartmentHead removes the head record for a department
// @Summary Remove a department's head
// @Tags department-heads
// @Produce json
// @Param id path int true "Department ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /department-heads/{id} [delete]
func (c *DepartmentHeadController) RemoveDepartmentHead(ctx *gin.Context) {
	departmentID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.headService.RemoveDepartmentHead(ctx, departmentID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Department head removed successfully"})
}
