package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusdb/registrar/internal/app/controllers"
	"github.com/campusdb/registrar/internal/app/models"
	"github.com/campusdb/registrar/internal/app/models/dto"
	"github.com/campusdb/registrar/internal/pkg/apperrors"
)

type fakeStudentService struct {
	students []*models.Student
	createID int64
	err      error
}

func (f *fakeStudentService) GetAllStudents(ctx context.Context) ([]*models.Student, error) {
	return f.students, f.err
}

func (f *fakeStudentService) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, s := range f.students {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (f *fakeStudentService) CreateStudent(ctx context.Context, req *dto.StudentRequest) (int64, error) {
	return f.createID, f.err
}

func (f *fakeStudentService) UpdateStudent(ctx context.Context, id int64, req *dto.StudentRequest) error {
	return f.err
}

func (f *fakeStudentService) DeleteStudent(ctx context.Context, id int64) error {
	return f.err
}

func newStudentRouter(service *fakeStudentService) *gin.Engine {
	controller := controllers.NewStudentController(service)
	router := gin.New()
	group := router.Group("/api/v1/students")
	group.GET("", controller.GetAllStudents)
	group.GET("/:id", controller.GetStudentByID)
	group.POST("", controller.CreateStudent)
	group.PUT("/:id", controller.UpdateStudent)
	group.DELETE("/:id", controller.DeleteStudent)
	return router
}

func TestGetStudentByID_GPASerialization(t *testing.T) {
	gpa := 3.5
	major := "Computer Science"
	router := newStudentRouter(&fakeStudentService{students: []*models.Student{
		{ID: 1, FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", GPA: &gpa, MajorName: &major},
	}})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/students/1", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 3.5, body["gpa"])
	assert.Equal(t, "Computer Science", body["major_name"])
}

func TestGetStudentByID_NoGPAOmitted(t *testing.T) {
	router := newStudentRouter(&fakeStudentService{students: []*models.Student{
		{ID: 1, FirstName: "Alan", LastName: "Turing", Email: "alan@example.com"},
	}})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/students/1", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	_, hasGPA := body["gpa"]
	assert.False(t, hasGPA, "gpa must be absent for students with no grades")
}

func TestCreateStudent(t *testing.T) {
	router := newStudentRouter(&fakeStudentService{createID: 9})

	body, _ := json.Marshal(map[string]interface{}{
		"first_name": "Grace",
		"last_name":  "Hopper",
		"email":      "grace@example.com",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/students", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.CreateResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, int64(9), resp.ID)
	assert.Equal(t, "Student created successfully", resp.Message)
}

func TestCreateStudent_InvalidEmail(t *testing.T) {
	router := newStudentRouter(&fakeStudentService{createID: 9})

	body, _ := json.Marshal(map[string]interface{}{
		"first_name": "Grace",
		"last_name":  "Hopper",
		"email":      "not-an-email",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/students", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateStudent_NotFound(t *testing.T) {
	router := newStudentRouter(&fakeStudentService{err: apperrors.ErrStudentNotFound})

	body, _ := json.Marshal(map[string]interface{}{
		"first_name": "Grace",
		"last_name":  "Hopper",
		"email":      "grace@example.com",
	})
	req := httptest.NewRequest(http.MethodPut, "/api/v1/students/99", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteStudent(t *testing.T) {
	router := newStudentRouter(&fakeStudentService{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/students/1", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.MessageResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "Student deleted successfully", resp.Message)
}
