package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/gdugdh24/spiritatlas-backend/internal/domain"
	"gopkg.in/yaml.v3"
)

type profileFile struct {
	Profiles []*domain.UserProfile `yaml:"profiles"`
}

// loadProfiles decodes a profile file and fills in completion data. Unknown
// keys and duplicate ids are rejected.
func loadProfiles(path string) ([]*domain.UserProfile, error) {
	r, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return decodeProfiles(r)
}

func decodeProfiles(r io.Reader) ([]*domain.UserProfile, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file profileFile
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("profile file is empty")
		}
		return nil, fmt.Errorf("failed to decode profiles: %w", err)
	}

	seen := make(map[string]bool, len(file.Profiles))
	for i, p := range file.Profiles {
		if p == nil {
			return nil, fmt.Errorf("profile #%d is empty", i+1)
		}
		if seen[p.ID] {
			return nil, fmt.Errorf("duplicate profile id %q", p.ID)
		}
		seen[p.ID] = true
		p.Completion = domain.ComputeCompletion(p)
	}
	return file.Profiles, nil
}

func findProfile(profiles []*domain.UserProfile, id string) (*domain.UserProfile, error) {
	for _, p := range profiles {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrProfileNotFound, id)
}
