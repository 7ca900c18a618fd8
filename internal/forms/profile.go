package forms

import (
	"context"
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/trainsmart/internal/nav"
	"github.com/2beens/trainsmart/internal/profiles"
	"github.com/2beens/trainsmart/internal/telemetry/metrics"
	"github.com/2beens/trainsmart/internal/telemetry/tracing"
	"github.com/2beens/trainsmart/pkg"
)

const MessageProfileUpdateFailed = "failed to update profile!"

var profileMessages = map[string]string{
	"firstName.notblank":   "First name is required",
	"dateOfBirth.datetime": "Date of birth must be YYYY-MM-DD",
	"height.gt":            "Height must be positive",
	"weight.gt":            "Weight must be positive",
	"email.email":          "Email is not valid",
}

type ProfileForm struct {
	FirstName   string   `json:"firstName" validate:"notblank"`
	LastName    string   `json:"lastName"`
	Sex         int      `json:"sex"`
	DateOfBirth *string  `json:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
	Height      *float64 `json:"height" validate:"omitempty,gt=0"`
	Weight      *float64 `json:"weight" validate:"omitempty,gt=0"`
	IsImperial  *bool    `json:"isImperial"`
	Email       *string  `json:"email" validate:"omitempty,email"`
	Username    *string  `json:"username"`
}

func profileFormFrom(p profiles.UserProfile) ProfileForm {
	return ProfileForm{
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		Sex:         p.Sex,
		DateOfBirth: p.DateOfBirth,
		Height:      p.Height,
		Weight:      p.Weight,
		IsImperial:  p.IsImperial,
		Email:       p.Email,
		Username:    p.Username,
	}
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	return pkg.EmptyToNil(strings.TrimSpace(*s))
}

// apply writes the form values over the stored profile. Identity and
// creation time stay as loaded.
func (f ProfileForm) apply(p profiles.UserProfile) profiles.UserProfile {
	p.FirstName = strings.TrimSpace(f.FirstName)
	p.LastName = strings.TrimSpace(f.LastName)
	p.Sex = f.Sex
	p.DateOfBirth = trimmedOrNil(f.DateOfBirth)
	p.Height = f.Height
	p.Weight = f.Weight
	p.IsImperial = f.IsImperial
	p.Email = trimmedOrNil(f.Email)
	p.Username = trimmedOrNil(f.Username)
	return p
}

type ProfilePage struct {
	Values ProfileForm `json:"values"`
}

type ProfileForms struct {
	submitter
	profilesSvc profilesService
}

func NewProfileForms(profilesSvc profilesService, metricsManager *metrics.Manager) *ProfileForms {
	return &ProfileForms{
		submitter:   submitter{metricsManager: metricsManager},
		profilesSvc: profilesSvc,
	}
}

func (f *ProfileForms) Load(ctx context.Context, userID string) (ProfilePage, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "forms.profile.load")
	defer span.End()

	profile, err := requireProfile(ctx, f.profilesSvc, userID)
	if err != nil {
		return ProfilePage{}, err
	}

	return ProfilePage{Values: profileFormFrom(profile)}, nil
}

func (f *ProfileForms) Edit(ctx context.Context, userID string, form ProfileForm) (Outcome, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "forms.profile.edit")
	defer span.End()

	return f.submit("profile_edit", func() (Outcome, error) {
		if errs := validateForm(form, profileMessages); errs != nil {
			return fieldErrors(http.StatusBadRequest, errs), nil
		}

		existing, err := requireProfile(ctx, f.profilesSvc, userID)
		if err != nil {
			return Outcome{}, err
		}

		res := f.profilesSvc.Update(ctx, form.apply(existing))
		if !res.Success {
			log.Errorf("update profile for user [%s]: %s", userID, res.Err())
			return bannerFor(res, MessageProfileUpdateFailed), nil
		}

		return succeeded(http.StatusOK, nav.Profile, "", res.Data), nil
	})
}
