package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	mediaUC "github.com/huytran/devconnect/internal/application/usecase/media"
	"github.com/huytran/devconnect/pkg/apperror"
	"github.com/huytran/devconnect/pkg/logger"
)

type MediaHandler struct {
	uploadImageUC *mediaUC.UploadImageUseCase
	logger        logger.Logger
}

func NewMediaHandler(uc *mediaUC.UploadImageUseCase, log logger.Logger) *MediaHandler {
	return &MediaHandler{uploadImageUC: uc, logger: log}
}

// UploadImage stores a profile picture and returns its URL. The caller puts
// the URL into the profile's image field via upsert.
func (h *MediaHandler) UploadImage(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.Error(apperror.NewInvalidInput("'image' file is required", err))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.NewInternal("failed to open uploaded file", err))
		return
	}
	defer file.Close()

	output, err := h.uploadImageUC.Execute(c.Request.Context(), mediaUC.UploadImageInput{
		OwnerID: ownerID,
		File:    file,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": output.URL})
}
