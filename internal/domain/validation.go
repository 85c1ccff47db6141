package domain

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks the minimum data the engine needs from a single profile:
// id, name and birth date-time, plus well-formed optional values.
func (p *UserProfile) Validate() error {
	if err := validate.Struct(p); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			reason := "is required"
			if fe.Tag() != "required" {
				reason = fmt.Sprintf("failed %q validation", fe.Tag())
			}
			return &ProfileValidationError{ProfileID: p.ID, Field: fe.Field(), Reason: reason}
		}
		return fmt.Errorf("validate profile: %w", err)
	}
	if strings.TrimSpace(p.Name) == "" {
		return &ProfileValidationError{ProfileID: p.ID, Field: "name", Reason: "is blank"}
	}
	if p.BirthDateTime.IsZero() {
		return &ProfileValidationError{ProfileID: p.ID, Field: "birth_date_time", Reason: "is required"}
	}
	return nil
}

// ProfilePair is two profiles submitted together for joint analysis.
type ProfilePair struct {
	A *UserProfile
	B *UserProfile
}

// Validate rejects pairs that must not be scored: the same profile twice,
// a profile missing required data, or a profile whose completion is below
// minAccuracy.
func (p ProfilePair) Validate(minAccuracy AccuracyLevel) error {
	if p.A == nil || p.B == nil {
		return fmt.Errorf("%w: both profiles are required", ErrInvalidProfilePair)
	}
	if p.A.ID != "" && p.A.ID == p.B.ID {
		return fmt.Errorf("%w: %s", ErrSameProfile, p.A.ID)
	}
	for _, prof := range []*UserProfile{p.A, p.B} {
		if err := prof.Validate(); err != nil {
			return err
		}
		if err := prof.CheckAccuracy(minAccuracy); err != nil {
			return err
		}
	}
	return nil
}

// CheckAccuracy fails when the freshly computed completion of p is below
// minAccuracy.
func (p *UserProfile) CheckAccuracy(minAccuracy AccuracyLevel) error {
	completion := ComputeCompletion(p)
	if completion.AccuracyLevel.Rank() < minAccuracy.Rank() {
		return &ProfileValidationError{
			ProfileID: p.ID,
			Field:     "completion",
			Reason: fmt.Sprintf("accuracy %s (%.1f%%) is below required %s",
				completion.AccuracyLevel, completion.CompletionPercentage, minAccuracy),
		}
	}
	return nil
}

// Validate checks the criteria ranges and enum values.
func (c MatchCriteria) Validate() error {
	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return fmt.Errorf("%w: %s failed %q validation", ErrInvalidCriteria, fieldErrs[0].Field(), fieldErrs[0].Tag())
		}
		return fmt.Errorf("%w: %v", ErrInvalidCriteria, err)
	}
	return nil
}
