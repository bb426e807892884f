package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusdb/registrar/internal/app/models/dto"
	"github.com/campusdb/registrar/internal/app/services"
	"github.com/campusdb/registrar/internal/middleware"
)

// GradeController handles grade-related operations
type GradeController struct {
	gradeService services.GradeService
}

// NewGradeController creates a new GradeController
func NewGradeController(gradeService services.GradeService) *GradeController {
	return &GradeController{
		gradeService: gradeService,
	}
}

// GetAllGrades retrieves all grades, newest first
// @Summary List grades
// @Tags grades
// @Produce json
// @Success 200 {array} models.Grade
// @Router /grades [get]
func (c *GradeController) GetAllGrades(ctx *gin.Context) {
	grades, err := c.gradeService.GetAllGrades(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, grades)
}

// GetGradeByID retrieves a grade by ID
// @Summary Get grade by ID
// @Tags grades
// @Produce json
// @Param id path int true "Grade ID"
// @Success 200 {object} models.Grade
// @Failure 404 {object} dto.ErrorResponse
// @Router /grades/{id} [get]
func (c *GradeController) GetGradeByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	grade, err := c.gradeService.GetGradeByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, grade)
}

// CreateGrade records a grade against an enrollment. Type defaults to
// Exam and the date to today.
// @Summary Create a grade
// @Tags grades
// @Accept json
// @Produce json
// @Param request body dto.GradeRequest true "Grade fields"
// @Success 201 {object} dto.CreateResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /grades [post]
func (c *GradeController) CreateGrade(ctx *gin.Context) {
	var req dto.GradeRequest
	if !bindJSON(ctx, &req) {
		return
	}

	id, err := c.gradeService.CreateGrade(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreateResponse{ID: id, Message: "Grade created successfully"})
}

// UpdateGrade replaces an existing grade
// @Summary Update a grade
// @Tags grades
// @Accept json
// @Produce json
// @Param id path int true "Grade ID"
// @Param request body dto.GradeRequest true "Grade fields"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /grades/{id} [put]
func (c *GradeController) UpdateGrade(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.GradeRequest
	if !bindJSON(ctx, &req) {
		return
	}

	if err := c.gradeService.UpdateGrade(ctx, id, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Grade updated successfully"})
}

// DeleteGrade deletes a grade
// @Summary Delete a grade
// @Tags grades
// @Produce json
// @Param id path int true "Grade ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /grades/{id} [delete]
func (c *GradeController) DeleteGrade(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.gradeService.DeleteGrade(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Grade deleted successfully"})
}
