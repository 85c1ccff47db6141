package compatibility

import (
	"log/slog"
	"strings"
	"time"

	"github.com/gdugdh24/spiritatlas-backend/internal/domain"
)

// signCusps holds, per calendar month, the first day of the sign that
// starts in that month together with the sign that ends in it. Days on or
// after the cusp belong to the later sign.
var signCusps = [12]struct {
	cusp   int
	before domain.ZodiacSign
	from   domain.ZodiacSign
}{
	time.January - 1:   {20, domain.Capricorn, domain.Aquarius},
	time.February - 1:  {19, domain.Aquarius, domain.Pisces},
	time.March - 1:     {21, domain.Pisces, domain.Aries},
	time.April - 1:     {20, domain.Aries, domain.Taurus},
	time.May - 1:       {21, domain.Taurus, domain.Gemini},
	time.June - 1:      {21, domain.Gemini, domain.Cancer},
	time.July - 1:      {23, domain.Cancer, domain.Leo},
	time.August - 1:    {23, domain.Leo, domain.Virgo},
	time.September - 1: {23, domain.Virgo, domain.Libra},
	time.October - 1:   {23, domain.Libra, domain.Scorpio},
	time.November - 1:  {22, domain.Scorpio, domain.Sagittarius},
	time.December - 1:  {22, domain.Sagittarius, domain.Capricorn},
}

// ZodiacSignFor returns the sun sign for a calendar day.
func ZodiacSignFor(month time.Month, day int) domain.ZodiacSign {
	c := signCusps[month-1]
	if day >= c.cusp {
		return c.from
	}
	return c.before
}

var elementOf = map[domain.ZodiacSign]domain.Element{
	domain.Aries:       domain.ElementFire,
	domain.Leo:         domain.ElementFire,
	domain.Sagittarius: domain.ElementFire,
	domain.Taurus:      domain.ElementEarth,
	domain.Virgo:       domain.ElementEarth,
	domain.Capricorn:   domain.ElementEarth,
	domain.Gemini:      domain.ElementAir,
	domain.Libra:       domain.ElementAir,
	domain.Aquarius:    domain.ElementAir,
	domain.Cancer:      domain.ElementWater,
	domain.Scorpio:     domain.ElementWater,
	domain.Pisces:      domain.ElementWater,
}

func ElementOf(sign domain.ZodiacSign) domain.Element {
	return elementOf[sign]
}

// NumerologyDigest reduces a name to a value in [1,9]: the sum of its
// character codes modulo 9, plus one.
func NumerologyDigest(name string) int {
	sum := 0
	for _, r := range strings.TrimSpace(name) {
		sum += int(r)
	}
	return sum%9 + 1
}

var tantricByEnergy = map[domain.SexualEnergy]domain.TantricType{
	domain.SexualEnergyMasculine: domain.TantricShivaDominant,
	domain.SexualEnergyFeminine:  domain.TantricShaktiDominant,
	domain.SexualEnergyBalanced:  domain.TantricBalancedUnion,
	domain.SexualEnergyFire:      domain.TantricPassionateFire,
	domain.SexualEnergyWater:     domain.TantricFlowingDancer,
	domain.SexualEnergyEarth:     domain.TantricGentleNurturer,
	domain.SexualEnergyAir:       domain.TantricMysticLover,
}

// TantricTypeOf classifies by declared sexual energy, then by gender. The
// second result is false when neither is usable and the default was taken.
func TantricTypeOf(p *domain.UserProfile) (domain.TantricType, bool) {
	if t, ok := tantricByEnergy[p.SexualEnergy]; ok {
		if t == domain.TantricShivaDominant && p.ConflictStyle == domain.ConflictConfronting {
			return domain.TantricSacredWarrior, true
		}
		return t, true
	}
	switch p.Gender {
	case domain.GenderFeminine:
		return domain.TantricShaktiDominant, true
	case domain.GenderMasculine:
		return domain.TantricShivaDominant, true
	}
	return domain.TantricBalancedUnion, false
}

var polarityOf = map[domain.TantricType]domain.EnergyPolarity{
	domain.TantricShivaDominant:  domain.PolarityElectric,
	domain.TantricPassionateFire: domain.PolarityElectric,
	domain.TantricSacredWarrior:  domain.PolarityElectric,
	domain.TantricShaktiDominant: domain.PolarityMagnetic,
	domain.TantricGentleNurturer: domain.PolarityMagnetic,
	domain.TantricFlowingDancer:  domain.PolarityMagnetic,
	domain.TantricBalancedUnion:  domain.PolarityNeutral,
	domain.TantricMysticLover:    domain.PolarityOscillating,
}

func PolarityOf(t domain.TantricType) domain.EnergyPolarity {
	if p, ok := polarityOf[t]; ok {
		return p
	}
	return domain.PolarityNeutral
}

var chakraByIntimacy = map[domain.IntimacyStyle]domain.Chakra{
	domain.IntimacyPhysical:  domain.ChakraSacral,
	domain.IntimacyEmotional: domain.ChakraHeart,
	domain.IntimacySpiritual: domain.ChakraCrown,
	domain.IntimacyMental:    domain.ChakraThirdEye,
	domain.IntimacyBalanced:  domain.ChakraHeart,
}

var chakraByLoveLanguage = map[domain.LoveLanguage]domain.Chakra{
	domain.LoveLanguageWords: domain.ChakraThroat,
	domain.LoveLanguageActs:  domain.ChakraSolarPlexus,
	domain.LoveLanguageGifts: domain.ChakraRoot,
	domain.LoveLanguageTime:  domain.ChakraHeart,
	domain.LoveLanguageTouch: domain.ChakraSacral,
}

// ChakraOf picks the dominant chakra from the intimacy style, then the love
// language, else HEART.
func ChakraOf(p *domain.UserProfile) (domain.Chakra, bool) {
	if c, ok := chakraByIntimacy[p.IntimacyStyle]; ok {
		return c, true
	}
	if c, ok := chakraByLoveLanguage[p.LoveLanguage]; ok {
		return c, true
	}
	return domain.ChakraHeart, false
}

var archetypeByPersonality = map[domain.PersonalityType]domain.RelationshipArchetype{
	domain.PersonalityINTJ: domain.ArchetypeSage,
	domain.PersonalityINTP: domain.ArchetypeSage,
	domain.PersonalityENTJ: domain.ArchetypeWarrior,
	domain.PersonalityENTP: domain.ArchetypeAdventurer,
	domain.PersonalityINFJ: domain.ArchetypeMystic,
	domain.PersonalityINFP: domain.ArchetypeHealer,
	domain.PersonalityENFJ: domain.ArchetypeNurturer,
	domain.PersonalityENFP: domain.ArchetypeArtist,
	domain.PersonalityISTJ: domain.ArchetypeProtector,
	domain.PersonalityISFJ: domain.ArchetypeNurturer,
	domain.PersonalityESTJ: domain.ArchetypeProtector,
	domain.PersonalityESFJ: domain.ArchetypeNurturer,
	domain.PersonalityISTP: domain.ArchetypeWarrior,
	domain.PersonalityISFP: domain.ArchetypeArtist,
	domain.PersonalityESTP: domain.ArchetypeAdventurer,
	domain.PersonalityESFP: domain.ArchetypeArtist,
	domain.Enneagram1:      domain.ArchetypeProtector,
	domain.Enneagram2:      domain.ArchetypeNurturer,
	domain.Enneagram3:      domain.ArchetypeWarrior,
	domain.Enneagram4:      domain.ArchetypeArtist,
	domain.Enneagram5:      domain.ArchetypeSage,
	domain.Enneagram6:      domain.ArchetypeProtector,
	domain.Enneagram7:      domain.ArchetypeAdventurer,
	domain.Enneagram8:      domain.ArchetypeWarrior,
	domain.Enneagram9:      domain.ArchetypeHealer,
}

var archetypeByTantric = map[domain.TantricType]domain.RelationshipArchetype{
	domain.TantricShaktiDominant: domain.ArchetypeNurturer,
	domain.TantricShivaDominant:  domain.ArchetypeProtector,
	domain.TantricBalancedUnion:  domain.ArchetypeSage,
	domain.TantricFlowingDancer:  domain.ArchetypeArtist,
	domain.TantricSacredWarrior:  domain.ArchetypeWarrior,
	domain.TantricMysticLover:    domain.ArchetypeMystic,
	domain.TantricPassionateFire: domain.ArchetypeAdventurer,
	domain.TantricGentleNurturer: domain.ArchetypeHealer,
}

// ArchetypeOf maps the personality type to an archetype. Without one, the
// archetype follows the tantric type.
func ArchetypeOf(p *domain.UserProfile, tantric domain.TantricType) (domain.RelationshipArchetype, bool) {
	if a, ok := archetypeByPersonality[p.PersonalityType]; ok {
		return a, true
	}
	if a, ok := archetypeByTantric[tantric]; ok {
		return a, false
	}
	return domain.ArchetypeSage, false
}

const (
	defaultCommunication = domain.CommunicationSupportive
	defaultConflict      = domain.ConflictCompromising
	defaultAttachment    = domain.AttachmentSecure
)

// Classifier turns a profile into its archetype assignment. Default
// fallbacks are logged at debug level and recorded on the assignment.
type Classifier struct {
	logger *slog.Logger
}

func NewClassifier(logger *slog.Logger) *Classifier {
	return &Classifier{logger: logger}
}

func (c *Classifier) Classify(p *domain.UserProfile) domain.ArchetypeAssignment {
	sign := ZodiacSignFor(p.BirthDateTime.Month(), p.BirthDateTime.Day())
	a := domain.ArchetypeAssignment{
		ProfileID:        p.ID,
		Sign:             sign,
		Element:          ElementOf(sign),
		NumerologyDigest: NumerologyDigest(p.Name),
		LoveLanguage:     p.LoveLanguage,
	}

	var ok bool
	if a.TantricType, ok = TantricTypeOf(p); !ok {
		c.fallback(&a, "tantric_type", a.TantricType)
	}
	a.Polarity = PolarityOf(a.TantricType)
	if a.Chakra, ok = ChakraOf(p); !ok {
		c.fallback(&a, "chakra", a.Chakra)
	}
	if a.Archetype, ok = ArchetypeOf(p, a.TantricType); !ok {
		c.fallback(&a, "archetype", a.Archetype)
	}

	a.CommunicationStyle = p.CommunicationStyle
	if !contains(domain.AllCommunicationStyles, a.CommunicationStyle) {
		a.CommunicationStyle = defaultCommunication
		c.fallback(&a, "communication_style", a.CommunicationStyle)
	}
	a.ConflictStyle = p.ConflictStyle
	if !contains(domain.AllConflictStyles, a.ConflictStyle) {
		a.ConflictStyle = defaultConflict
		c.fallback(&a, "conflict_style", a.ConflictStyle)
	}
	a.AttachmentStyle = p.AttachmentStyle
	if !contains(domain.AllAttachmentStyles, a.AttachmentStyle) {
		a.AttachmentStyle = defaultAttachment
		c.fallback(&a, "attachment_style", a.AttachmentStyle)
	}
	return a
}

func (c *Classifier) fallback(a *domain.ArchetypeAssignment, classifier string, value any) {
	a.Defaulted = append(a.Defaulted, classifier)
	if c.logger != nil {
		c.logger.Debug("classifier default fallback",
			"profile_id", a.ProfileID,
			"classifier", classifier,
			"default", value,
		)
	}
}

func contains[T comparable](values []T, v T) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
