package domain

import "time"

// UserProfile is the input record of the compatibility engine. Only ID, Name
// and BirthDateTime are required; empty enum fields mean "not provided".
type UserProfile struct {
	ID            string      `json:"id" yaml:"id" validate:"required"`
	ProfileName   string      `json:"profile_name,omitempty" yaml:"profile_name,omitempty"`
	Name          string      `json:"name" yaml:"name" validate:"required"`
	DisplayName   string      `json:"display_name,omitempty" yaml:"display_name,omitempty"`
	BirthDateTime time.Time   `json:"birth_date_time" yaml:"birth_date_time"`
	BirthPlace    *BirthPlace `json:"birth_place,omitempty" yaml:"birth_place,omitempty" validate:"omitempty"`

	MiddleName      string     `json:"middle_name,omitempty" yaml:"middle_name,omitempty"`
	Nickname        string     `json:"nickname,omitempty" yaml:"nickname,omitempty"`
	SpiritualName   string     `json:"spiritual_name,omitempty" yaml:"spiritual_name,omitempty"`
	MaidenName      string     `json:"maiden_name,omitempty" yaml:"maiden_name,omitempty"`
	MotherName      string     `json:"mother_name,omitempty" yaml:"mother_name,omitempty"`
	FatherName      string     `json:"father_name,omitempty" yaml:"father_name,omitempty"`
	MotherBirthDate *time.Time `json:"mother_birth_date,omitempty" yaml:"mother_birth_date,omitempty"`
	FatherBirthDate *time.Time `json:"father_birth_date,omitempty" yaml:"father_birth_date,omitempty"`

	Gender       Gender    `json:"gender,omitempty" yaml:"gender,omitempty" validate:"omitempty,oneof=MASCULINE FEMININE NON_BINARY PREFER_NOT_TO_SAY"`
	BloodType    BloodType `json:"blood_type,omitempty" yaml:"blood_type,omitempty"`
	DominantHand Hand      `json:"dominant_hand,omitempty" yaml:"dominant_hand,omitempty" validate:"omitempty,oneof=LEFT RIGHT AMBIDEXTROUS"`
	EyeColor     string    `json:"eye_color,omitempty" yaml:"eye_color,omitempty"`

	LoveLanguage       LoveLanguage       `json:"love_language,omitempty" yaml:"love_language,omitempty"`
	PersonalityType    PersonalityType    `json:"personality_type,omitempty" yaml:"personality_type,omitempty"`
	AttachmentStyle    AttachmentStyle    `json:"attachment_style,omitempty" yaml:"attachment_style,omitempty"`
	SexualEnergy       SexualEnergy       `json:"sexual_energy,omitempty" yaml:"sexual_energy,omitempty"`
	CommunicationStyle CommunicationStyle `json:"communication_style,omitempty" yaml:"communication_style,omitempty"`
	ConflictStyle      ConflictStyle      `json:"conflict_style,omitempty" yaml:"conflict_style,omitempty"`
	IntimacyStyle      IntimacyStyle      `json:"intimacy_style,omitempty" yaml:"intimacy_style,omitempty"`

	Completion   ProfileCompletion `json:"completion" yaml:"-"`
	CreatedAt    time.Time         `json:"created_at" yaml:"created_at,omitempty"`
	LastModified time.Time         `json:"last_modified" yaml:"last_modified,omitempty"`
}

type BirthPlace struct {
	City      string   `json:"city,omitempty" yaml:"city,omitempty"`
	State     string   `json:"state,omitempty" yaml:"state,omitempty"`
	Country   string   `json:"country,omitempty" yaml:"country,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty" yaml:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude *float64 `json:"longitude,omitempty" yaml:"longitude,omitempty" validate:"omitempty,longitude"`
	Timezone  string   `json:"timezone,omitempty" yaml:"timezone,omitempty"`
}

// HasCoordinates reports whether both latitude and longitude are set.
func (b *BirthPlace) HasCoordinates() bool {
	return b != nil && b.Latitude != nil && b.Longitude != nil
}

// Age returns the age in full years at the given moment.
func (p *UserProfile) Age(at time.Time) int {
	if p.BirthDateTime.IsZero() {
		return 0
	}
	born := p.BirthDateTime
	years := at.Year() - born.Year()
	if at.Month() < born.Month() || (at.Month() == born.Month() && at.Day() < born.Day()) {
		years--
	}
	return years
}

// Label returns the name to show for the profile.
func (p *UserProfile) Label() string {
	if p.DisplayName != "" {
		return p.DisplayName
	}
	return p.Name
}

// Clone returns a copy that shares no mutable state with p.
func (p *UserProfile) Clone() *UserProfile {
	cp := *p
	if p.BirthPlace != nil {
		bp := *p.BirthPlace
		if bp.Latitude != nil {
			lat := *bp.Latitude
			bp.Latitude = &lat
		}
		if bp.Longitude != nil {
			lon := *bp.Longitude
			bp.Longitude = &lon
		}
		cp.BirthPlace = &bp
	}
	if p.MotherBirthDate != nil {
		d := *p.MotherBirthDate
		cp.MotherBirthDate = &d
	}
	if p.FatherBirthDate != nil {
		d := *p.FatherBirthDate
		cp.FatherBirthDate = &d
	}
	cp.Completion.MissingCriticalFields = append([]string(nil), p.Completion.MissingCriticalFields...)
	return &cp
}
