package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gdugdh24/spiritatlas-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleProfiles = `profiles:
  - id: luna
    name: Luna
    birth_date_time: 1992-08-01T12:00:00Z
    birth_place:
      city: Lisbon
      latitude: 38.72
      longitude: -9.14
    communication_style: EMOTIONAL
  - id: theo
    name: Theo
    birth_date_time: 1990-02-10T08:30:00Z
    birth_place:
      city: Porto
      latitude: 41.15
      longitude: -8.61
  - id: mira
    name: Mira
    birth_date_time: 1995-11-23T18:00:00Z
    birth_place:
      city: Madrid
`

func writeProfiles(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profiles.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestDecodeProfiles(t *testing.T) {
	profiles, err := decodeProfiles(strings.NewReader(sampleProfiles))
	require.NoError(t, err)
	require.Len(t, profiles, 3)

	luna := profiles[0]
	assert.Equal(t, "luna", luna.ID)
	assert.Equal(t, 1992, luna.BirthDateTime.Year())
	assert.True(t, luna.BirthPlace.HasCoordinates())
	assert.Equal(t, domain.CommunicationStyle("EMOTIONAL"), luna.CommunicationStyle)
	assert.Positive(t, luna.Completion.CompletionPercentage)
}

func TestDecodeProfiles_Rejects(t *testing.T) {
	tests := map[string]string{
		"empty":         "",
		"unknown field": "profiles:\n  - id: a\n    name: A\n    shoe_size: 42\n",
		"duplicate id":  "profiles:\n  - id: a\n    name: A\n  - id: a\n    name: B\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := decodeProfiles(strings.NewReader(content))
			assert.Error(t, err)
		})
	}
}

func TestAnalyzeCommand(t *testing.T) {
	path := writeProfiles(t, sampleProfiles)

	out, err := run(t, "analyze", path, "luna", "theo")
	require.NoError(t, err)

	var report map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Contains(t, report, "scores")
	assert.Contains(t, report, "compatibility_level")
	assert.Equal(t, "luna", report["profile_a"].(map[string]any)["id"])
}

func TestAnalyzeCommand_Summary(t *testing.T) {
	path := writeProfiles(t, sampleProfiles)

	out, err := run(t, "analyze", "--summary", path, "luna", "theo")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Luna and Theo share"))
}

func TestAnalyzeCommand_Errors(t *testing.T) {
	path := writeProfiles(t, sampleProfiles)

	_, err := run(t, "analyze", path, "luna", "ghost")
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)

	_, err = run(t, "analyze", path, "luna", "luna")
	assert.ErrorIs(t, err, domain.ErrSameProfile)

	_, err = run(t, "--min-accuracy", "PERFECT", "analyze", path, "luna", "theo")
	assert.Error(t, err)
}

func TestMatchCommand(t *testing.T) {
	path := writeProfiles(t, sampleProfiles)

	out, err := run(t, "match", path, "luna", "--min-score=0")
	require.NoError(t, err)

	var matches []domain.ProfileMatch
	require.NoError(t, json.Unmarshal([]byte(out), &matches))
	require.Len(t, matches, 2)
	for _, m := range matches {
		assert.NotEqual(t, "luna", m.Profile.ID)
	}
	assert.GreaterOrEqual(t, matches[0].Preview.OverallScore, matches[1].Preview.OverallScore)

	out, err = run(t, "match", path, "luna", "--min-score=0", "--max-distance=500")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &matches))
	ids := make([]string, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, m.Profile.ID)
	}
	assert.Contains(t, ids, "theo")
}

func TestClassifyCommand(t *testing.T) {
	path := writeProfiles(t, sampleProfiles)

	out, err := run(t, "classify", path, "luna")
	require.NoError(t, err)

	var got []domain.ArchetypeAssignment
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, domain.Leo, got[0].Sign)
	assert.Equal(t, domain.ElementFire, got[0].Element)
}

func TestZodiacCommand(t *testing.T) {
	out, err := run(t, "zodiac", "1990-02-10")
	require.NoError(t, err)

	var got zodiacOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, domain.Aquarius, got.Sign)

	_, err = run(t, "zodiac", "10/02/1990")
	assert.Error(t, err)
}
