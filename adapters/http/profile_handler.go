package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	profileUC "github.com/huytran/devconnect/internal/application/usecase/profile"
	"github.com/huytran/devconnect/pkg/apperror"
	"github.com/huytran/devconnect/pkg/logger"
)

type ProfileHandler struct {
	profileUseCase *profileUC.ProfileUseCase
	logger         logger.Logger
}

func NewProfileHandler(uc *profileUC.ProfileUseCase, log logger.Logger) *ProfileHandler {
	return &ProfileHandler{profileUseCase: uc, logger: log}
}

// GetMyProfile returns the authenticated owner's profile or 404.
func (h *ProfileHandler) GetMyProfile(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	output, err := h.profileUseCase.ExecuteGetProfile(c.Request.Context(), profileUC.GetProfileInput{OwnerID: ownerID})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToProfileDTO(output.Profile, output.User))
}

// UpsertProfile creates the owner's profile on first call and merges the
// provided fields on later calls.
func (h *ProfileHandler) UpsertProfile(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	var req UpsertProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("status and skills are required", err))
		return
	}

	input := profileUC.UpsertProfileInput{
		OwnerID:        ownerID,
		Company:        req.Company,
		Website:        req.Website,
		Location:       req.Location,
		Bio:            req.Bio,
		Status:         req.Status,
		GithubUsername: req.GithubUsername,
		Image:          req.Image,
		Skills:         req.Skills,
		Youtube:        req.Youtube,
		Twitter:        req.Twitter,
		Facebook:       req.Facebook,
		Linkedin:       req.Linkedin,
		Instagram:      req.Instagram,
	}
	output, err := h.profileUseCase.ExecuteUpsertProfile(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToProfileDTO(output.Profile, nil))
}

// ListProfiles is the public directory: every profile joined with the
// owning account's name and avatar.
func (h *ProfileHandler) ListProfiles(c *gin.Context) {
	output, err := h.profileUseCase.ExecuteListProfiles(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	dtos := make([]ProfileDTO, len(output.Profiles))
	for i, pw := range output.Profiles {
		dtos[i] = ToProfileDTO(pw.Profile, pw.User)
	}

	c.JSON(http.StatusOK, dtos)
}

func (h *ProfileHandler) GetProfileByUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		c.Error(apperror.NewNotFound("profile", c.Param("user_id")))
		return
	}

	output, err := h.profileUseCase.ExecuteGetProfileByUser(c.Request.Context(), profileUC.GetProfileByUserInput{UserID: userID})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToProfileDTO(output.Profile, output.User))
}

// DeleteProfile removes the owner's posts, account and profile.
func (h *ProfileHandler) DeleteProfile(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	if err := h.profileUseCase.ExecuteDeleteProfile(c.Request.Context(), profileUC.DeleteProfileInput{OwnerID: ownerID}); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "user removed"})
}

func (h *ProfileHandler) AddExperience(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	var req AddExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("title, company and from are required", err))
		return
	}

	input := profileUC.AddExperienceInput{
		OwnerID:     ownerID,
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		From:        req.From,
		To:          req.To,
		Current:     req.Current,
		Description: req.Description,
	}
	output, err := h.profileUseCase.ExecuteAddExperience(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToProfileDTO(output.Profile, nil))
}

func (h *ProfileHandler) RemoveExperience(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	entryID, err := uuid.Parse(c.Param("exp_id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("exp_id is not a valid id", err))
		return
	}

	output, err := h.profileUseCase.ExecuteRemoveExperience(c.Request.Context(), profileUC.RemoveExperienceInput{
		OwnerID: ownerID,
		EntryID: entryID,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToProfileDTO(output.Profile, nil))
}

func (h *ProfileHandler) AddEducation(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	var req AddEducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("school, degree, fieldofstudy and from are required", err))
		return
	}

	input := profileUC.AddEducationInput{
		OwnerID:      ownerID,
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		From:         req.From,
		To:           req.To,
		Current:      req.Current,
		Description:  req.Description,
	}
	output, err := h.profileUseCase.ExecuteAddEducation(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToProfileDTO(output.Profile, nil))
}

func (h *ProfileHandler) RemoveEducation(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	entryID, err := uuid.Parse(c.Param("edu_id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("edu_id is not a valid id", err))
		return
	}

	output, err := h.profileUseCase.ExecuteRemoveEducation(c.Request.Context(), profileUC.RemoveEducationInput{
		OwnerID: ownerID,
		EntryID: entryID,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToProfileDTO(output.Profile, nil))
}
