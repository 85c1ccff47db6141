// Package testutil holds profile factories for tests and demo data. Nothing
// on the scoring path imports it.
package testutil

import (
	"fmt"
	"time"

	"github.com/gdugdh24/spiritatlas-backend/internal/domain"
)

type ProfileOption func(*domain.UserProfile)

// Date returns midday UTC on the given day.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
}

// NewProfile returns a fresh profile that passes the default BASIC
// accuracy check: name, birth date and birth city are always set.
func NewProfile(id, name string, born time.Time, opts ...ProfileOption) *domain.UserProfile {
	p := &domain.UserProfile{
		ID:            id,
		Name:          name,
		BirthDateTime: born,
		BirthPlace:    &domain.BirthPlace{City: "Lisbon"},
		CreatedAt:     born,
		LastModified:  born,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.Completion = domain.ComputeCompletion(p)
	return p
}

func WithGender(g domain.Gender) ProfileOption {
	return func(p *domain.UserProfile) { p.Gender = g }
}

func WithSexualEnergy(e domain.SexualEnergy) ProfileOption {
	return func(p *domain.UserProfile) { p.SexualEnergy = e }
}

func WithCommunication(style domain.CommunicationStyle, conflict domain.ConflictStyle) ProfileOption {
	return func(p *domain.UserProfile) {
		p.CommunicationStyle = style
		p.ConflictStyle = conflict
	}
}

func WithAttachment(a domain.AttachmentStyle) ProfileOption {
	return func(p *domain.UserProfile) { p.AttachmentStyle = a }
}

func WithLoveLanguage(l domain.LoveLanguage) ProfileOption {
	return func(p *domain.UserProfile) { p.LoveLanguage = l }
}

func WithIntimacy(i domain.IntimacyStyle) ProfileOption {
	return func(p *domain.UserProfile) { p.IntimacyStyle = i }
}

func WithPersonality(t domain.PersonalityType) ProfileOption {
	return func(p *domain.UserProfile) { p.PersonalityType = t }
}

func WithCoordinates(city string, lat, lon float64) ProfileOption {
	return func(p *domain.UserProfile) {
		p.BirthPlace = &domain.BirthPlace{City: city, Latitude: &lat, Longitude: &lon}
	}
}

func WithLastModified(t time.Time) ProfileOption {
	return func(p *domain.UserProfile) { p.LastModified = t }
}

// Luna is a Leo with name digest 5 and a SHAKTI_DOMINANT tantric type.
func Luna() *domain.UserProfile {
	return NewProfile("luna", "Luna", Date(1992, time.August, 1),
		WithGender(domain.GenderFeminine),
		WithSexualEnergy(domain.SexualEnergyFeminine),
		WithCommunication(domain.CommunicationSupportive, domain.ConflictCollaborating),
		WithAttachment(domain.AttachmentSecure),
		WithLoveLanguage(domain.LoveLanguageTime),
		WithIntimacy(domain.IntimacyEmotional),
	)
}

// Theo is an Aquarius with name digest 5 and a SHIVA_DOMINANT tantric type.
func Theo() *domain.UserProfile {
	return NewProfile("theo", "Theo", Date(1990, time.February, 1),
		WithGender(domain.GenderMasculine),
		WithSexualEnergy(domain.SexualEnergyMasculine),
		WithCommunication(domain.CommunicationDirect, domain.ConflictCompromising),
		WithAttachment(domain.AttachmentSecure),
		WithLoveLanguage(domain.LoveLanguageTime),
		WithIntimacy(domain.IntimacySpiritual),
	)
}

var poolNames = []string{"Ava", "Noah", "Emma", "Kai", "Zoe", "Iris", "Omar", "Ravi", "Sara", "Priya", "Dev", "Hugo"}

// Pool returns n varied profiles with ids candidate-00, candidate-01, ...
// The same n always yields the same profiles.
func Pool(n int) []*domain.UserProfile {
	out := make([]*domain.UserProfile, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, NewProfile(
			fmt.Sprintf("candidate-%02d", i),
			poolNames[i%len(poolNames)],
			Date(1985+i%15, time.Month(i%12+1), 1+(i*7)%28),
			WithSexualEnergy(domain.AllSexualEnergies[i%len(domain.AllSexualEnergies)]),
			WithCommunication(
				domain.AllCommunicationStyles[i%len(domain.AllCommunicationStyles)],
				domain.AllConflictStyles[i%len(domain.AllConflictStyles)],
			),
			WithAttachment(domain.AllAttachmentStyles[i%len(domain.AllAttachmentStyles)]),
			WithLoveLanguage(domain.AllLoveLanguages[i%len(domain.AllLoveLanguages)]),
		))
	}
	return out
}
