package domain

import "math"

type AccuracyLevel string

const (
	AccuracyMinimal   AccuracyLevel = "MINIMAL"
	AccuracyBasic     AccuracyLevel = "BASIC"
	AccuracyGood      AccuracyLevel = "GOOD"
	AccuracyExcellent AccuracyLevel = "EXCELLENT"
	AccuracyMaximum   AccuracyLevel = "MAXIMUM"
)

// accuracyBands lists the lowest completion percentage of each level, in
// ascending order.
var accuracyBands = []struct {
	level AccuracyLevel
	floor float64
}{
	{AccuracyMinimal, 0},
	{AccuracyBasic, 10},
	{AccuracyGood, 30},
	{AccuracyExcellent, 55},
	{AccuracyMaximum, 80},
}

// Rank orders accuracy levels from MINIMAL (0) to MAXIMUM (4). Unknown levels
// rank below MINIMAL.
func (l AccuracyLevel) Rank() int {
	for i, b := range accuracyBands {
		if b.level == l {
			return i
		}
	}
	return -1
}

func (l AccuracyLevel) Valid() bool {
	return l.Rank() >= 0
}

// AccuracyForPercentage maps a completion percentage to its accuracy level.
// A higher percentage never yields a lower level.
func AccuracyForPercentage(pct float64) AccuracyLevel {
	level := AccuracyMinimal
	for _, b := range accuracyBands {
		if pct >= b.floor {
			level = b.level
		}
	}
	return level
}

type ProfileCompletion struct {
	TotalFields           int           `json:"total_fields"`
	CompletedFields       int           `json:"completed_fields"`
	CompletionPercentage  float64       `json:"completion_percentage"`
	AccuracyLevel         AccuracyLevel `json:"accuracy_level"`
	MissingCriticalFields []string      `json:"missing_critical_fields,omitempty"`
}

type completionField struct {
	name     string
	critical bool
	filled   func(p *UserProfile) bool
}

func str(get func(p *UserProfile) string) func(p *UserProfile) bool {
	return func(p *UserProfile) bool { return get(p) != "" }
}

func place(get func(b *BirthPlace) bool) func(p *UserProfile) bool {
	return func(p *UserProfile) bool { return p.BirthPlace != nil && get(p.BirthPlace) }
}

var completionFields = []completionField{
	{"name", true, str(func(p *UserProfile) string { return p.Name })},
	{"birth_date_time", true, func(p *UserProfile) bool { return !p.BirthDateTime.IsZero() }},
	{"display_name", false, str(func(p *UserProfile) string { return p.DisplayName })},
	{"birth_place.city", true, place(func(b *BirthPlace) bool { return b.City != "" })},
	{"birth_place.state", false, place(func(b *BirthPlace) bool { return b.State != "" })},
	{"birth_place.country", false, place(func(b *BirthPlace) bool { return b.Country != "" })},
	{"birth_place.coordinates", false, place(func(b *BirthPlace) bool { return b.HasCoordinates() })},
	{"birth_place.timezone", false, place(func(b *BirthPlace) bool { return b.Timezone != "" })},
	{"middle_name", false, str(func(p *UserProfile) string { return p.MiddleName })},
	{"nickname", false, str(func(p *UserProfile) string { return p.Nickname })},
	{"spiritual_name", false, str(func(p *UserProfile) string { return p.SpiritualName })},
	{"maiden_name", false, str(func(p *UserProfile) string { return p.MaidenName })},
	{"mother_name", false, str(func(p *UserProfile) string { return p.MotherName })},
	{"father_name", false, str(func(p *UserProfile) string { return p.FatherName })},
	{"mother_birth_date", false, func(p *UserProfile) bool { return p.MotherBirthDate != nil }},
	{"father_birth_date", false, func(p *UserProfile) bool { return p.FatherBirthDate != nil }},
	{"gender", true, str(func(p *UserProfile) string { return string(p.Gender) })},
	{"blood_type", false, str(func(p *UserProfile) string { return string(p.BloodType) })},
	{"dominant_hand", false, str(func(p *UserProfile) string { return string(p.DominantHand) })},
	{"eye_color", false, str(func(p *UserProfile) string { return p.EyeColor })},
	{"love_language", false, str(func(p *UserProfile) string { return string(p.LoveLanguage) })},
	{"personality_type", false, str(func(p *UserProfile) string { return string(p.PersonalityType) })},
	{"attachment_style", false, str(func(p *UserProfile) string { return string(p.AttachmentStyle) })},
	{"sexual_energy", false, str(func(p *UserProfile) string { return string(p.SexualEnergy) })},
	{"communication_style", false, str(func(p *UserProfile) string { return string(p.CommunicationStyle) })},
	{"conflict_style", false, str(func(p *UserProfile) string { return string(p.ConflictStyle) })},
	{"intimacy_style", false, str(func(p *UserProfile) string { return string(p.IntimacyStyle) })},
}

// TotalProfileFields is the number of fields that count towards completion.
var TotalProfileFields = len(completionFields)

// ComputeCompletion derives the completion record from the profile's
// current field values.
func ComputeCompletion(p *UserProfile) ProfileCompletion {
	c := ProfileCompletion{TotalFields: TotalProfileFields}
	for _, f := range completionFields {
		if f.filled(p) {
			c.CompletedFields++
		} else if f.critical {
			c.MissingCriticalFields = append(c.MissingCriticalFields, f.name)
		}
	}
	pct := float64(c.CompletedFields) / float64(c.TotalFields) * 100
	c.CompletionPercentage = math.Round(pct*10) / 10
	c.AccuracyLevel = AccuracyForPercentage(c.CompletionPercentage)
	return c
}
