package booking

import (
	"time"

	"vaxportal/config"
	"vaxportal/models"
	"vaxportal/utils"
)

const clockLayout = "15:04"

// validateForm checks the step 1 inputs. It returns nil when everything
// required is present and consistent; otherwise a ValidationError with one
// message per offending field.
func validateForm(form models.BookingFormData, child models.ChildSelection) *ValidationError {
	fields := map[string]string{}

	if form.ParentName == "" {
		fields["parentName"] = "required"
	}
	if form.ParentPhone == "" {
		fields["parentPhone"] = "required"
	}

	today := time.Now().Format(utils.DateLayout)
	switch {
	case form.PreferredDate == "":
		fields["preferredDate"] = "required"
	case !isValidDate(form.PreferredDate):
		fields["preferredDate"] = "invalid date"
	case form.PreferredDate < today:
		fields["preferredDate"] = "must not be in the past"
	}

	switch {
	case form.PreferredTime == "":
		fields["preferredTime"] = "required"
	case !withinClinicHours(form.PreferredTime):
		fields["preferredTime"] = "outside clinic hours"
	}

	validateChild(child, fields)

	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

func validateChild(child models.ChildSelection, fields map[string]string) {
	switch child.Kind {
	case models.ChildSelectionExisting:
		if child.ProfileID == "" {
			fields["childId"] = "required"
		}
	case models.ChildSelectionNew:
		if child.Inline.Name == "" {
			fields["childName"] = "required"
		}
		today := time.Now().Format(utils.DateLayout)
		switch {
		case child.Inline.DateOfBirth == "":
			fields["dateOfBirth"] = "required"
		case !isValidDate(child.Inline.DateOfBirth):
			fields["dateOfBirth"] = "invalid date"
		case child.Inline.DateOfBirth > today:
			fields["dateOfBirth"] = "must not be in the future"
		}
		if child.Inline.Gender != models.GenderMale && child.Inline.Gender != models.GenderFemale {
			fields["gender"] = "must be male or female"
		}
	default:
		fields["childId"] = "a child must be selected"
	}
}

func isValidDate(s string) bool {
	_, err := time.Parse(utils.DateLayout, s)
	return err == nil
}

// withinClinicHours checks an "HH:MM" value against the configured
// opening window. Unset bounds fall back to the defaults.
func withinClinicHours(value string) bool {
	t, err := time.Parse(clockLayout, value)
	if err != nil {
		return false
	}

	open, close := config.AppConfig.ClinicOpen, config.AppConfig.ClinicClose
	if open == "" {
		open = "07:30"
	}
	if close == "" {
		close = "17:00"
	}

	openT, err := time.Parse(clockLayout, open)
	if err != nil {
		return false
	}
	closeT, err := time.Parse(clockLayout, close)
	if err != nil {
		return false
	}
	return !t.Before(openT) && !t.After(closeT)
}
