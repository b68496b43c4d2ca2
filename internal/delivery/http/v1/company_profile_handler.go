package v1

import (
	"net/http"

	"placement-portal-backend/internal/delivery/http/middleware"
	"placement-portal-backend/internal/delivery/http/response"
	"placement-portal-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type RecruiterProfileHandler struct {
	profileUC domain.RecruiterProfileUsecase
}

func NewRecruiterProfileHandler(recruiter *gin.RouterGroup, profileUC domain.RecruiterProfileUsecase) {
	handler := &RecruiterProfileHandler{profileUC: profileUC}

	recruiter.GET("/profile", handler.Get)
	recruiter.PUT("/profile", handler.Save)
}

type RecruiterProfileRequest struct {
	CompanyName  string            `json:"company_name"`
	CompanyEmail string            `json:"company_email" binding:"omitempty,email"`
	CompanyPhone string            `json:"company_phone" binding:"omitempty,valid_phone"`
	Industry     string            `json:"industry"`
	CompanySize  string            `json:"company_size"`
	Website      string            `json:"website" binding:"omitempty,url"`
	Description  string            `json:"description"`
	FoundedYear  interface{}       `json:"founded_year" swaggertype:"integer"`
	LogoURL      string            `json:"logo_url"`
	Address      domain.Address    `json:"address"`
	SocialLinks  map[string]string `json:"social_links"`
	FullName     string            `json:"full_name" binding:"omitempty,valid_name"`
	Designation  string            `json:"designation"`
	ContactPhone string            `json:"contact_phone" binding:"omitempty,valid_phone"`
}

// GetRecruiterProfile godoc
// @Summary      Get own recruiter profile
// @Tags         recruiter
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /recruiter/profile [get]
// @Security     CookieAuth
func (h *RecruiterProfileHandler) Get(c *gin.Context) {
	profile, err := h.profileUC.Get(c.Request.Context(), middleware.CurrentIdentity(c).ID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Recruiter profile retrieved", profile)
}

// SaveRecruiterProfile godoc
// @Summary      Create or update own recruiter profile
// @Description  The first save also creates the company record
// @Tags         recruiter
// @Accept       json
// @Produce      json
// @Param        body  body      RecruiterProfileRequest  true  "Profile"
// @Success      200   {object}  response.Response
// @Success      201   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Router       /recruiter/profile [put]
// @Security     CookieAuth
func (h *RecruiterProfileHandler) Save(c *gin.Context) {
	var req RecruiterProfileRequest
	if !bindJSON(c, &req) {
		return
	}

	profile, created, err := h.profileUC.Save(c.Request.Context(), middleware.CurrentIdentity(c).ID, domain.RecruiterProfileInput{
		CompanyName:  req.CompanyName,
		CompanyEmail: req.CompanyEmail,
		CompanyPhone: req.CompanyPhone,
		Industry:     req.Industry,
		CompanySize:  req.CompanySize,
		Website:      req.Website,
		Description:  req.Description,
		FoundedYear:  req.FoundedYear,
		LogoURL:      req.LogoURL,
		Address:      req.Address,
		SocialLinks:  req.SocialLinks,
		FullName:     req.FullName,
		Designation:  req.Designation,
		ContactPhone: req.ContactPhone,
	})
	if err != nil {
		c.Error(err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	response.Success(c, status, "Recruiter profile saved successfully", profile)
}
