package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWizardTransitions(t *testing.T) {
	cases := []struct {
		from, to WizardStep
		allowed  bool
	}{
		{StepSelectingChildAndSlot, StepReviewingConfirmation, true},
		{StepReviewingConfirmation, StepSelectingChildAndSlot, true},
		{StepReviewingConfirmation, StepSuccess, true},
		{StepSelectingChildAndSlot, StepSuccess, false},
		{StepSuccess, StepReviewingConfirmation, false},
		{StepSuccess, StepSelectingChildAndSlot, false},
		{StepSelectingChildAndSlot, StepSelectingChildAndSlot, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransition(tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}
