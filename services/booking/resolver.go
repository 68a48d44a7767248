package booking

import (
	"context"
	"fmt"

	"vaxportal/models"
)

// NormalizeChildSelection rebuilds a selection from its tag so only the
// meaningful branch survives: an existing-profile selection carries no
// inline fields, a new-profile selection carries no profile reference.
// Toggling between the kinds therefore clears whatever the other branch
// had accumulated.
func NormalizeChildSelection(sel models.ChildSelection) models.ChildSelection {
	switch sel.Kind {
	case models.ChildSelectionExisting:
		return models.ChildSelection{
			Kind:      models.ChildSelectionExisting,
			ProfileID: sel.ProfileID,
		}
	case models.ChildSelectionNew:
		return models.ChildSelection{
			Kind:   models.ChildSelectionNew,
			Inline: sel.Inline,
		}
	default:
		return models.ChildSelection{Kind: sel.Kind}
	}
}

// ResolveChild produces the single child view every downstream display
// consumes. For an existing selection the persisted profile is the source
// of truth; for a new selection the inline fields are.
func (s *DefaultBookingSessionService) ResolveChild(ctx context.Context, userID string, sel models.ChildSelection) (models.EffectiveChild, error) {
	switch sel.Kind {
	case models.ChildSelectionExisting:
		profile, err := s.Children.GetByID(sel.ProfileID)
		if err != nil {
			return models.EffectiveChild{}, fmt.Errorf("failed to resolve child profile: %w", err)
		}
		if profile.UserID != userID {
			return models.EffectiveChild{}, fmt.Errorf("child profile %s does not belong to this account", sel.ProfileID)
		}
		return models.EffectiveChild{
			Name:        profile.Name,
			DateOfBirth: profile.DateOfBirth,
			Gender:      profile.Gender,
		}, nil
	case models.ChildSelectionNew:
		return models.EffectiveChild{
			Name:        sel.Inline.Name,
			DateOfBirth: sel.Inline.DateOfBirth,
			Gender:      sel.Inline.Gender,
		}, nil
	default:
		return models.EffectiveChild{}, fmt.Errorf("no child selected")
	}
}
