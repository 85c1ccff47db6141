package compatibility

import (
	"testing"

	"github.com/gdugdh24/spiritatlas-backend/internal/domain"
	"github.com/stretchr/testify/assert"
)

func assertSymmetricTotal[K comparable](t *testing.T, table pairTable[K], keys []K) {
	t.Helper()
	for _, a := range keys {
		for _, b := range keys {
			assert.True(t, table.has(a, b), "%s: missing %v/%v", table.name, a, b)
			assert.Equal(t, table.score(a, b), table.score(b, a), "%s: %v/%v", table.name, a, b)
			assert.GreaterOrEqual(t, table.score(a, b), 0.0)
			assert.LessOrEqual(t, table.score(a, b), 100.0)
		}
	}
}

func TestPairTables_SymmetricAndTotal(t *testing.T) {
	assertSymmetricTotal(t, elementTable, domain.AllElements)
	assertSymmetricTotal(t, tantricTable, domain.AllTantricTypes)
	assertSymmetricTotal(t, polarityTable, domain.AllEnergyPolarities)
	assertSymmetricTotal(t, communicationTable, domain.AllCommunicationStyles)
	assertSymmetricTotal(t, conflictTable, domain.AllConflictStyles)
	assertSymmetricTotal(t, attachmentTable, domain.AllAttachmentStyles)
}

func TestNewPairTable_PanicsOnGaps(t *testing.T) {
	keys := []string{"a", "b"}
	assert.Panics(t, func() {
		newPairTable("gappy", keys, []pairEntry[string]{{"a", "a", 50}, {"a", "b", 60}})
	})
	assert.Panics(t, func() {
		newPairTable("dup", keys, []pairEntry[string]{{"a", "a", 50}, {"a", "b", 60}, {"b", "a", 61}, {"b", "b", 1}})
	})
	assert.Panics(t, func() {
		newPairTable("range", []string{"a"}, []pairEntry[string]{{"a", "a", 101}})
	})
	assert.NotPanics(t, func() {
		newPairTable("ok", keys, []pairEntry[string]{{"a", "a", 50}, {"a", "b", 60}, {"b", "b", 70}})
	})
}

func TestAstrologyScore(t *testing.T) {
	tests := []struct {
		a, b domain.ZodiacSign
		want float64
	}{
		{domain.Leo, domain.Leo, 85},
		{domain.Leo, domain.Aries, 75},
		{domain.Leo, domain.Aquarius, 70},
		{domain.Taurus, domain.Cancer, 70},
		{domain.Leo, domain.Scorpio, 45},
		{domain.Virgo, domain.Libra, 45},
		{domain.Leo, domain.Taurus, 50},
		{domain.Gemini, domain.Pisces, 50},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, astrologyScore(tt.a, tt.b), "%s/%s", tt.a, tt.b)
		assert.Equal(t, tt.want, astrologyScore(tt.b, tt.a), "%s/%s", tt.b, tt.a)
	}
}

func TestAstrologyScore_SymmetricOverAllSigns(t *testing.T) {
	for _, a := range domain.AllZodiacSigns {
		for _, b := range domain.AllZodiacSigns {
			assert.Equal(t, astrologyScore(a, b), astrologyScore(b, a))
		}
	}
}

func TestNumerologyScore(t *testing.T) {
	assert.Equal(t, 95.0, numerologyScore(5, 5))
	assert.Equal(t, 85.0, numerologyScore(4, 5))
	assert.Equal(t, 75.0, numerologyScore(9, 2))
	assert.Equal(t, 65.0, numerologyScore(1, 3))
	assert.Equal(t, 50.0, numerologyScore(1, 2))

	for a := 1; a <= 9; a++ {
		for b := 1; b <= 9; b++ {
			s := numerologyScore(a, b)
			assert.Equal(t, s, numerologyScore(b, a), "%d/%d", a, b)
			if a != b {
				assert.Less(t, s, numerologyScore(a, a), "exact match scores highest")
			}
		}
	}
}

func TestChakraScore(t *testing.T) {
	assert.Equal(t, 90.0, chakraScore(domain.ChakraHeart, domain.ChakraHeart))
	assert.Equal(t, 80.0, chakraScore(domain.ChakraHeart, domain.ChakraThroat))
	assert.Equal(t, 70.0, chakraScore(domain.ChakraRoot, domain.ChakraSolarPlexus))
	assert.Equal(t, 60.0, chakraScore(domain.ChakraHeart, domain.ChakraCrown))
	assert.Equal(t, 50.0, chakraScore(domain.ChakraRoot, domain.ChakraCrown))
}

func TestLoveLanguageScore(t *testing.T) {
	assert.Equal(t, 90.0, loveLanguageScore(domain.LoveLanguageTouch, domain.LoveLanguageTouch))
	assert.Equal(t, 65.0, loveLanguageScore(domain.LoveLanguageTouch, domain.LoveLanguageGifts))
	assert.Equal(t, 70.0, loveLanguageScore("", domain.LoveLanguageGifts))
}
