package v1

import (
	"io"
	"net/http"

	"placement-portal-backend/internal/delivery/http/middleware"
	"placement-portal-backend/internal/delivery/http/response"
	"placement-portal-backend/internal/domain"
	"placement-portal-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUC       domain.ProfileUsecase
	maxPictureBytes int64
}

func NewProfileHandler(protected *gin.RouterGroup, profileUC domain.ProfileUsecase, maxPictureBytes int, uploadLimit gin.HandlerFunc) {
	handler := &ProfileHandler{profileUC: profileUC, maxPictureBytes: int64(maxPictureBytes)}

	protected.POST("/personal-details-form", handler.Submit)
	protected.GET("/personal-information", handler.Get)
	protected.GET("/personal-information/:userId", handler.GetPublic)
	protected.POST("/profile-picture", uploadLimit, handler.UploadPicture)
}

type PersonalDetailsRequest struct {
	FirstName       string `json:"first_name" binding:"omitempty,valid_name,no_emoji"`
	LastName        string `json:"last_name" binding:"omitempty,valid_name,no_emoji"`
	DOB             string `json:"dob" binding:"omitempty,iso_date"`
	Gender          string `json:"gender"`
	InstituteRollNo string `json:"institute_roll_no" binding:"omitempty,no_emoji"`
	PersonalEmail   string `json:"personal_email" binding:"omitempty,email"`
	CollegeEmail    string `json:"college_email" binding:"omitempty,email"`
	PhoneNumber     string `json:"phone_number" binding:"omitempty,valid_phone"`
	ProfilePicture  string `json:"profile_picture"`
}

// Submit godoc
// @Summary      Submit personal details
// @Description  Creates the caller's profile; every other student record requires it
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        body  body      PersonalDetailsRequest  true  "Personal details"
// @Success      201   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Router       /personal-details-form [post]
// @Security     CookieAuth
func (h *ProfileHandler) Submit(c *gin.Context) {
	var req PersonalDetailsRequest
	if !bindJSON(c, &req) {
		return
	}

	details, err := h.profileUC.Submit(c.Request.Context(), middleware.CurrentIdentity(c).ID, domain.PersonalDetailsInput{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		DOB:             req.DOB,
		Gender:          req.Gender,
		InstituteRollNo: req.InstituteRollNo,
		PersonalEmail:   req.PersonalEmail,
		CollegeEmail:    req.CollegeEmail,
		PhoneNumber:     req.PhoneNumber,
		ProfilePicture:  req.ProfilePicture,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Personal details saved successfully", details)
}

// Get godoc
// @Summary      Get own personal details
// @Tags         profile
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /personal-information [get]
// @Security     CookieAuth
func (h *ProfileHandler) Get(c *gin.Context) {
	details, err := h.profileUC.Get(c.Request.Context(), middleware.CurrentIdentity(c).ID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Personal details retrieved", details)
}

// GetPublic godoc
// @Summary      Get a student's public identity
// @Tags         profile
// @Produce      json
// @Param        userId  path      int  true  "User ID"
// @Success      200     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Router       /personal-information/{userId} [get]
// @Security     CookieAuth
func (h *ProfileHandler) GetPublic(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	identity, err := h.profileUC.GetPublic(c.Request.Context(), middleware.CurrentIdentity(c), userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Personal information retrieved", identity)
}

// UploadPicture godoc
// @Summary      Upload a profile picture
// @Description  Accepts jpg, png or gif; the image is resized and stored as a JPEG data URL
// @Tags         profile
// @Accept       multipart/form-data
// @Produce      json
// @Param        picture  formData  file  true  "Image"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      413      {object}  response.Response
// @Router       /profile-picture [post]
// @Security     CookieAuth
func (h *ProfileHandler) UploadPicture(c *gin.Context) {
	// Leave headroom for the multipart envelope.
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxPictureBytes+64<<10)

	header, err := c.FormFile("picture")
	if err != nil {
		c.Error(apperror.MissingFields("Picture file is required", "picture"))
		return
	}
	if header.Size > h.maxPictureBytes {
		c.Error(apperror.New(http.StatusRequestEntityTooLarge, "Picture exceeds the maximum upload size", nil))
		return
	}

	file, err := header.Open()
	if err != nil {
		c.Error(apperror.BadRequest("Could not read uploaded file"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, h.maxPictureBytes+1))
	if err != nil {
		c.Error(apperror.BadRequest("Could not read uploaded file"))
		return
	}

	details, err := h.profileUC.UploadPicture(c.Request.Context(), middleware.CurrentIdentity(c).ID, header.Filename, data)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile picture updated", details)
}
