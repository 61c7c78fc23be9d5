package media

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/huytran/devconnect/internal/application/service"
)

const profileImageFolder = "devconnect/profile"

type UploadImageUseCase struct {
	uploader service.Uploader
}

func NewUploadImageUseCase(uploader service.Uploader) *UploadImageUseCase {
	return &UploadImageUseCase{uploader: uploader}
}

type UploadImageInput struct {
	OwnerID uuid.UUID
	File    io.Reader
}

type UploadImageOutput struct {
	URL string
}

// Execute stores the image and returns its URL. The profile keeps that URL
// as an opaque string; nothing else about the file is tracked.
func (uc *UploadImageUseCase) Execute(ctx context.Context, input UploadImageInput) (*UploadImageOutput, error) {
	publicID := fmt.Sprintf("%s-%s", input.OwnerID, uuid.New())

	url, err := uc.uploader.Upload(ctx, input.File, profileImageFolder, publicID)
	if err != nil {
		return nil, fmt.Errorf("upload profile image failed: %w", err)
	}

	return &UploadImageOutput{URL: url}, nil
}
