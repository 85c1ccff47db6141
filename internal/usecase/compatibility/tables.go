package compatibility

import (
	"fmt"
	"math"

	"github.com/gdugdh24/spiritatlas-backend/internal/domain"
)

type pairEntry[K comparable] struct {
	a, b  K
	score float64
}

// pairTable is a symmetric score lookup over an enum's cartesian product.
// Construction panics unless every unordered pair of keys has exactly one
// entry, so a new enum value cannot silently fall through to a default.
type pairTable[K comparable] struct {
	name   string
	scores map[[2]K]float64
}

func newPairTable[K comparable](name string, keys []K, entries []pairEntry[K]) pairTable[K] {
	t := pairTable[K]{name: name, scores: make(map[[2]K]float64, len(keys)*len(keys))}
	for _, e := range entries {
		if _, dup := t.scores[[2]K{e.a, e.b}]; dup {
			panic(fmt.Sprintf("%s: duplicate entry %v/%v", name, e.a, e.b))
		}
		if e.score < 0 || e.score > 100 {
			panic(fmt.Sprintf("%s: score %v out of range for %v/%v", name, e.score, e.a, e.b))
		}
		t.scores[[2]K{e.a, e.b}] = e.score
		t.scores[[2]K{e.b, e.a}] = e.score
	}
	for _, a := range keys {
		for _, b := range keys {
			if _, ok := t.scores[[2]K{a, b}]; !ok {
				panic(fmt.Sprintf("%s: missing entry %v/%v", name, a, b))
			}
		}
	}
	return t
}

func (t pairTable[K]) score(a, b K) float64 {
	return t.scores[[2]K{a, b}]
}

func (t pairTable[K]) has(a, b K) bool {
	_, ok := t.scores[[2]K{a, b}]
	return ok
}

var elementTable = newPairTable("element", domain.AllElements, []pairEntry[domain.Element]{
	{domain.ElementFire, domain.ElementFire, 75},
	{domain.ElementEarth, domain.ElementEarth, 75},
	{domain.ElementAir, domain.ElementAir, 75},
	{domain.ElementWater, domain.ElementWater, 75},
	{domain.ElementFire, domain.ElementAir, 70},
	{domain.ElementEarth, domain.ElementWater, 70},
	{domain.ElementFire, domain.ElementWater, 45},
	{domain.ElementEarth, domain.ElementAir, 45},
	{domain.ElementFire, domain.ElementEarth, 50},
	{domain.ElementAir, domain.ElementWater, 50},
})

const sameSignScore = 85

func astrologyScore(a, b domain.ZodiacSign) float64 {
	if a == b {
		return sameSignScore
	}
	return elementTable.score(ElementOf(a), ElementOf(b))
}

// numerologyScore compares two life-path digests. Equal digests resonate
// most, then digests completing each other to nine, then a nine on either
// side, then shared parity.
func numerologyScore(a, b int) float64 {
	switch {
	case a == b:
		return 95
	case a+b == 9:
		return 85
	case a == 9 || b == 9:
		return 75
	case a%2 == b%2:
		return 65
	default:
		return 50
	}
}

var tantricTable = newPairTable("tantric", domain.AllTantricTypes, []pairEntry[domain.TantricType]{
	{domain.TantricShaktiDominant, domain.TantricShaktiDominant, 70},
	{domain.TantricShaktiDominant, domain.TantricShivaDominant, 95},
	{domain.TantricShaktiDominant, domain.TantricBalancedUnion, 80},
	{domain.TantricShaktiDominant, domain.TantricFlowingDancer, 72},
	{domain.TantricShaktiDominant, domain.TantricSacredWarrior, 88},
	{domain.TantricShaktiDominant, domain.TantricMysticLover, 78},
	{domain.TantricShaktiDominant, domain.TantricPassionateFire, 85},
	{domain.TantricShaktiDominant, domain.TantricGentleNurturer, 68},

	{domain.TantricShivaDominant, domain.TantricShivaDominant, 65},
	{domain.TantricShivaDominant, domain.TantricBalancedUnion, 80},
	{domain.TantricShivaDominant, domain.TantricFlowingDancer, 88},
	{domain.TantricShivaDominant, domain.TantricSacredWarrior, 60},
	{domain.TantricShivaDominant, domain.TantricMysticLover, 78},
	{domain.TantricShivaDominant, domain.TantricPassionateFire, 62},
	{domain.TantricShivaDominant, domain.TantricGentleNurturer, 90},

	{domain.TantricBalancedUnion, domain.TantricBalancedUnion, 82},
	{domain.TantricBalancedUnion, domain.TantricFlowingDancer, 78},
	{domain.TantricBalancedUnion, domain.TantricSacredWarrior, 74},
	{domain.TantricBalancedUnion, domain.TantricMysticLover, 84},
	{domain.TantricBalancedUnion, domain.TantricPassionateFire, 72},
	{domain.TantricBalancedUnion, domain.TantricGentleNurturer, 80},

	{domain.TantricFlowingDancer, domain.TantricFlowingDancer, 70},
	{domain.TantricFlowingDancer, domain.TantricSacredWarrior, 82},
	{domain.TantricFlowingDancer, domain.TantricMysticLover, 86},
	{domain.TantricFlowingDancer, domain.TantricPassionateFire, 76},
	{domain.TantricFlowingDancer, domain.TantricGentleNurturer, 74},

	{domain.TantricSacredWarrior, domain.TantricSacredWarrior, 52},
	{domain.TantricSacredWarrior, domain.TantricMysticLover, 70},
	{domain.TantricSacredWarrior, domain.TantricPassionateFire, 58},
	{domain.TantricSacredWarrior, domain.TantricGentleNurturer, 86},

	{domain.TantricMysticLover, domain.TantricMysticLover, 75},
	{domain.TantricMysticLover, domain.TantricPassionateFire, 72},
	{domain.TantricMysticLover, domain.TantricGentleNurturer, 76},

	{domain.TantricPassionateFire, domain.TantricPassionateFire, 55},
	{domain.TantricPassionateFire, domain.TantricGentleNurturer, 84},

	{domain.TantricGentleNurturer, domain.TantricGentleNurturer, 72},
})

var polarityTable = newPairTable("polarity", domain.AllEnergyPolarities, []pairEntry[domain.EnergyPolarity]{
	{domain.PolarityMagnetic, domain.PolarityElectric, 92},
	{domain.PolarityMagnetic, domain.PolarityMagnetic, 60},
	{domain.PolarityElectric, domain.PolarityElectric, 55},
	{domain.PolarityMagnetic, domain.PolarityNeutral, 75},
	{domain.PolarityElectric, domain.PolarityNeutral, 75},
	{domain.PolarityNeutral, domain.PolarityNeutral, 70},
	{domain.PolarityOscillating, domain.PolarityOscillating, 62},
	{domain.PolarityOscillating, domain.PolarityMagnetic, 72},
	{domain.PolarityOscillating, domain.PolarityElectric, 72},
	{domain.PolarityOscillating, domain.PolarityNeutral, 68},
})

// chakraScore rewards chakras that sit close together on the root-to-crown
// axis.
func chakraScore(a, b domain.Chakra) float64 {
	d := math.Abs(float64(a.Position() - b.Position()))
	switch d {
	case 0:
		return 90
	case 1:
		return 80
	}
	return math.Max(50, 90-10*d)
}

var communicationTable = newPairTable("communication", domain.AllCommunicationStyles, []pairEntry[domain.CommunicationStyle]{
	{domain.CommunicationDirect, domain.CommunicationDirect, 75},
	{domain.CommunicationDirect, domain.CommunicationIndirect, 50},
	{domain.CommunicationDirect, domain.CommunicationEmotional, 55},
	{domain.CommunicationDirect, domain.CommunicationAnalytical, 78},
	{domain.CommunicationDirect, domain.CommunicationSupportive, 80},
	{domain.CommunicationDirect, domain.CommunicationChallenging, 60},

	{domain.CommunicationIndirect, domain.CommunicationIndirect, 70},
	{domain.CommunicationIndirect, domain.CommunicationEmotional, 72},
	{domain.CommunicationIndirect, domain.CommunicationAnalytical, 58},
	{domain.CommunicationIndirect, domain.CommunicationSupportive, 82},
	{domain.CommunicationIndirect, domain.CommunicationChallenging, 40},

	{domain.CommunicationEmotional, domain.CommunicationEmotional, 68},
	{domain.CommunicationEmotional, domain.CommunicationAnalytical, 45},
	{domain.CommunicationEmotional, domain.CommunicationSupportive, 88},
	{domain.CommunicationEmotional, domain.CommunicationChallenging, 42},

	{domain.CommunicationAnalytical, domain.CommunicationAnalytical, 74},
	{domain.CommunicationAnalytical, domain.CommunicationSupportive, 76},
	{domain.CommunicationAnalytical, domain.CommunicationChallenging, 66},

	{domain.CommunicationSupportive, domain.CommunicationSupportive, 85},
	{domain.CommunicationSupportive, domain.CommunicationChallenging, 62},

	{domain.CommunicationChallenging, domain.CommunicationChallenging, 48},
})

var conflictTable = newPairTable("conflict", domain.AllConflictStyles, []pairEntry[domain.ConflictStyle]{
	{domain.ConflictConfronting, domain.ConflictConfronting, 35},
	{domain.ConflictConfronting, domain.ConflictAvoiding, 30},
	{domain.ConflictConfronting, domain.ConflictCompromising, 62},
	{domain.ConflictConfronting, domain.ConflictAccommodating, 55},
	{domain.ConflictConfronting, domain.ConflictCollaborating, 70},

	{domain.ConflictAvoiding, domain.ConflictAvoiding, 45},
	{domain.ConflictAvoiding, domain.ConflictCompromising, 58},
	{domain.ConflictAvoiding, domain.ConflictAccommodating, 60},
	{domain.ConflictAvoiding, domain.ConflictCollaborating, 64},

	{domain.ConflictCompromising, domain.ConflictCompromising, 78},
	{domain.ConflictCompromising, domain.ConflictAccommodating, 74},
	{domain.ConflictCompromising, domain.ConflictCollaborating, 84},

	{domain.ConflictAccommodating, domain.ConflictAccommodating, 66},
	{domain.ConflictAccommodating, domain.ConflictCollaborating, 82},

	{domain.ConflictCollaborating, domain.ConflictCollaborating, 92},
})

var attachmentTable = newPairTable("attachment", domain.AllAttachmentStyles, []pairEntry[domain.AttachmentStyle]{
	{domain.AttachmentSecure, domain.AttachmentSecure, 92},
	{domain.AttachmentSecure, domain.AttachmentAnxious, 75},
	{domain.AttachmentSecure, domain.AttachmentAvoidant, 70},
	{domain.AttachmentSecure, domain.AttachmentDisorganized, 62},
	{domain.AttachmentAnxious, domain.AttachmentAnxious, 55},
	{domain.AttachmentAnxious, domain.AttachmentAvoidant, 35},
	{domain.AttachmentAnxious, domain.AttachmentDisorganized, 40},
	{domain.AttachmentAvoidant, domain.AttachmentAvoidant, 50},
	{domain.AttachmentAvoidant, domain.AttachmentDisorganized, 40},
	{domain.AttachmentDisorganized, domain.AttachmentDisorganized, 30},
})

// loveLanguageScore treats a missing love language on either side as
// unknown rather than mismatched.
func loveLanguageScore(a, b domain.LoveLanguage) float64 {
	switch {
	case a == "" || b == "":
		return 70
	case a == b:
		return 90
	default:
		return 65
	}
}
