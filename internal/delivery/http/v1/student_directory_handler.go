package v1

import (
	"net/http"

	"placement-portal-backend/internal/delivery/http/response"
	"placement-portal-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type StudentDirectoryHandler struct {
	directoryUC domain.StudentDirectoryUsecase
}

func NewStudentDirectoryHandler(recruiter *gin.RouterGroup, directoryUC domain.StudentDirectoryUsecase) {
	handler := &StudentDirectoryHandler{directoryUC: directoryUC}

	recruiter.GET("/students", handler.Search)
	recruiter.GET("/students/:userId", handler.Get)
}

// SearchStudents godoc
// @Summary      Search students
// @Description  Matches first name, last name or roll number
// @Tags         students
// @Produce      json
// @Param        search  query     string  false  "Search term"
// @Success      200     {object}  response.Response
// @Router       /recruiter/students [get]
// @Security     CookieAuth
func (h *StudentDirectoryHandler) Search(c *gin.Context) {
	students, err := h.directoryUC.Search(c.Request.Context(), c.Query("search"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Students retrieved", students)
}

// GetStudent godoc
// @Summary      Get a student's full profile
// @Tags         students
// @Produce      json
// @Param        userId  path      int  true  "User ID"
// @Success      200     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Router       /recruiter/students/{userId} [get]
// @Security     CookieAuth
func (h *StudentDirectoryHandler) Get(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	profile, err := h.directoryUC.GetFullProfile(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Student profile retrieved", profile)
}
