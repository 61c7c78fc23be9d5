package profile

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/huytran/devconnect/adapters/event"
)

type DeleteProfileInput struct {
	OwnerID uuid.UUID
}

// ExecuteDeleteProfile cascades: authored posts first, then the account,
// then the profile row itself. The three calls go to separate stores with
// no rollback; a failure partway through leaves earlier deletions in place
// and surfaces as an internal error. The schema cascades profile and post
// rows when the account goes, so the final profile delete is idempotent.
func (uc *ProfileUseCase) ExecuteDeleteProfile(ctx context.Context, input DeleteProfileInput) error {
	if err := uc.postRepo.DeleteByOwner(ctx, input.OwnerID); err != nil {
		return fmt.Errorf("cascade delete posts failed: %w", err)
	}

	if err := uc.userRepo.Delete(ctx, input.OwnerID); err != nil {
		return fmt.Errorf("cascade delete account failed: %w", err)
	}

	if err := uc.profileRepo.DeleteByOwner(ctx, input.OwnerID); err != nil {
		return fmt.Errorf("delete profile failed: %w", err)
	}

	uc.publishEvent(event.ProfileEventTypeDeleted, input.OwnerID)

	return nil
}
