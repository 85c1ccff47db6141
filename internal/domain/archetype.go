package domain

type ZodiacSign string

const (
	Aries       ZodiacSign = "ARIES"
	Taurus      ZodiacSign = "TAURUS"
	Gemini      ZodiacSign = "GEMINI"
	Cancer      ZodiacSign = "CANCER"
	Leo         ZodiacSign = "LEO"
	Virgo       ZodiacSign = "VIRGO"
	Libra       ZodiacSign = "LIBRA"
	Scorpio     ZodiacSign = "SCORPIO"
	Sagittarius ZodiacSign = "SAGITTARIUS"
	Capricorn   ZodiacSign = "CAPRICORN"
	Aquarius    ZodiacSign = "AQUARIUS"
	Pisces      ZodiacSign = "PISCES"
)

var AllZodiacSigns = []ZodiacSign{
	Aries, Taurus, Gemini, Cancer, Leo, Virgo,
	Libra, Scorpio, Sagittarius, Capricorn, Aquarius, Pisces,
}

type Element string

const (
	ElementFire  Element = "FIRE"
	ElementEarth Element = "EARTH"
	ElementAir   Element = "AIR"
	ElementWater Element = "WATER"
)

var AllElements = []Element{ElementFire, ElementEarth, ElementAir, ElementWater}

type TantricType string

const (
	TantricShaktiDominant TantricType = "SHAKTI_DOMINANT"
	TantricShivaDominant  TantricType = "SHIVA_DOMINANT"
	TantricBalancedUnion  TantricType = "BALANCED_UNION"
	TantricFlowingDancer  TantricType = "FLOWING_DANCER"
	TantricSacredWarrior  TantricType = "SACRED_WARRIOR"
	TantricMysticLover    TantricType = "MYSTIC_LOVER"
	TantricPassionateFire TantricType = "PASSIONATE_FIRE"
	TantricGentleNurturer TantricType = "GENTLE_NURTURER"
)

var AllTantricTypes = []TantricType{
	TantricShaktiDominant, TantricShivaDominant, TantricBalancedUnion, TantricFlowingDancer,
	TantricSacredWarrior, TantricMysticLover, TantricPassionateFire, TantricGentleNurturer,
}

type EnergyPolarity string

const (
	PolarityMagnetic    EnergyPolarity = "MAGNETIC"
	PolarityElectric    EnergyPolarity = "ELECTRIC"
	PolarityNeutral     EnergyPolarity = "NEUTRAL"
	PolarityOscillating EnergyPolarity = "OSCILLATING"
)

var AllEnergyPolarities = []EnergyPolarity{
	PolarityMagnetic, PolarityElectric, PolarityNeutral, PolarityOscillating,
}

// Chakra values are listed root to crown; AllChakras keeps that order.
type Chakra string

const (
	ChakraRoot        Chakra = "ROOT"
	ChakraSacral      Chakra = "SACRAL"
	ChakraSolarPlexus Chakra = "SOLAR_PLEXUS"
	ChakraHeart       Chakra = "HEART"
	ChakraThroat      Chakra = "THROAT"
	ChakraThirdEye    Chakra = "THIRD_EYE"
	ChakraCrown       Chakra = "CROWN"
)

var AllChakras = []Chakra{
	ChakraRoot, ChakraSacral, ChakraSolarPlexus, ChakraHeart,
	ChakraThroat, ChakraThirdEye, ChakraCrown,
}

// Position returns the chakra's index from ROOT (0) to CROWN (6), or -1.
func (c Chakra) Position() int {
	for i, v := range AllChakras {
		if v == c {
			return i
		}
	}
	return -1
}

type RelationshipArchetype string

const (
	ArchetypeProtector  RelationshipArchetype = "PROTECTOR"
	ArchetypeNurturer   RelationshipArchetype = "NURTURER"
	ArchetypeAdventurer RelationshipArchetype = "ADVENTURER"
	ArchetypeSage       RelationshipArchetype = "SAGE"
	ArchetypeArtist     RelationshipArchetype = "ARTIST"
	ArchetypeWarrior    RelationshipArchetype = "WARRIOR"
	ArchetypeHealer     RelationshipArchetype = "HEALER"
	ArchetypeMystic     RelationshipArchetype = "MYSTIC"
)

var AllRelationshipArchetypes = []RelationshipArchetype{
	ArchetypeProtector, ArchetypeNurturer, ArchetypeAdventurer, ArchetypeSage,
	ArchetypeArtist, ArchetypeWarrior, ArchetypeHealer, ArchetypeMystic,
}

// ArchetypeAssignment is the full classification of one profile. It is
// derived on every analysis and never stored on the profile.
type ArchetypeAssignment struct {
	ProfileID          string                `json:"profile_id"`
	Sign               ZodiacSign            `json:"zodiac_sign"`
	Element            Element               `json:"element"`
	NumerologyDigest   int                   `json:"numerology_digest"`
	TantricType        TantricType           `json:"tantric_type"`
	Polarity           EnergyPolarity        `json:"energy_polarity"`
	Chakra             Chakra                `json:"dominant_chakra"`
	Archetype          RelationshipArchetype `json:"relationship_archetype"`
	CommunicationStyle CommunicationStyle    `json:"communication_style"`
	ConflictStyle      ConflictStyle         `json:"conflict_style"`
	AttachmentStyle    AttachmentStyle       `json:"attachment_style"`
	LoveLanguage       LoveLanguage          `json:"love_language,omitempty"`
	// Defaulted names the classifiers that fell back to their default
	// category because the profile lacked the data.
	Defaulted []string `json:"defaulted,omitempty"`
}
