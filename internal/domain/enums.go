package domain

type Gender string

const (
	GenderMasculine      Gender = "MASCULINE"
	GenderFeminine       Gender = "FEMININE"
	GenderNonBinary      Gender = "NON_BINARY"
	GenderPreferNotToSay Gender = "PREFER_NOT_TO_SAY"
)

type BloodType string

const (
	BloodTypeAPositive  BloodType = "A_POSITIVE"
	BloodTypeANegative  BloodType = "A_NEGATIVE"
	BloodTypeBPositive  BloodType = "B_POSITIVE"
	BloodTypeBNegative  BloodType = "B_NEGATIVE"
	BloodTypeABPositive BloodType = "AB_POSITIVE"
	BloodTypeABNegative BloodType = "AB_NEGATIVE"
	BloodTypeOPositive  BloodType = "O_POSITIVE"
	BloodTypeONegative  BloodType = "O_NEGATIVE"
	BloodTypeUnknown    BloodType = "UNKNOWN"
)

type Hand string

const (
	HandLeft         Hand = "LEFT"
	HandRight        Hand = "RIGHT"
	HandAmbidextrous Hand = "AMBIDEXTROUS"
)

type LoveLanguage string

const (
	LoveLanguageWords LoveLanguage = "WORDS_OF_AFFIRMATION"
	LoveLanguageActs  LoveLanguage = "ACTS_OF_SERVICE"
	LoveLanguageGifts LoveLanguage = "RECEIVING_GIFTS"
	LoveLanguageTime  LoveLanguage = "QUALITY_TIME"
	LoveLanguageTouch LoveLanguage = "PHYSICAL_TOUCH"
)

var AllLoveLanguages = []LoveLanguage{
	LoveLanguageWords, LoveLanguageActs, LoveLanguageGifts, LoveLanguageTime, LoveLanguageTouch,
}

// PersonalityType covers the sixteen MBTI types and the nine enneagram types.
type PersonalityType string

const (
	PersonalityINTJ PersonalityType = "INTJ"
	PersonalityINTP PersonalityType = "INTP"
	PersonalityENTJ PersonalityType = "ENTJ"
	PersonalityENTP PersonalityType = "ENTP"
	PersonalityINFJ PersonalityType = "INFJ"
	PersonalityINFP PersonalityType = "INFP"
	PersonalityENFJ PersonalityType = "ENFJ"
	PersonalityENFP PersonalityType = "ENFP"
	PersonalityISTJ PersonalityType = "ISTJ"
	PersonalityISFJ PersonalityType = "ISFJ"
	PersonalityESTJ PersonalityType = "ESTJ"
	PersonalityESFJ PersonalityType = "ESFJ"
	PersonalityISTP PersonalityType = "ISTP"
	PersonalityISFP PersonalityType = "ISFP"
	PersonalityESTP PersonalityType = "ESTP"
	PersonalityESFP PersonalityType = "ESFP"

	Enneagram1 PersonalityType = "ENNEAGRAM_1"
	Enneagram2 PersonalityType = "ENNEAGRAM_2"
	Enneagram3 PersonalityType = "ENNEAGRAM_3"
	Enneagram4 PersonalityType = "ENNEAGRAM_4"
	Enneagram5 PersonalityType = "ENNEAGRAM_5"
	Enneagram6 PersonalityType = "ENNEAGRAM_6"
	Enneagram7 PersonalityType = "ENNEAGRAM_7"
	Enneagram8 PersonalityType = "ENNEAGRAM_8"
	Enneagram9 PersonalityType = "ENNEAGRAM_9"
)

var AllPersonalityTypes = []PersonalityType{
	PersonalityINTJ, PersonalityINTP, PersonalityENTJ, PersonalityENTP,
	PersonalityINFJ, PersonalityINFP, PersonalityENFJ, PersonalityENFP,
	PersonalityISTJ, PersonalityISFJ, PersonalityESTJ, PersonalityESFJ,
	PersonalityISTP, PersonalityISFP, PersonalityESTP, PersonalityESFP,
	Enneagram1, Enneagram2, Enneagram3, Enneagram4, Enneagram5,
	Enneagram6, Enneagram7, Enneagram8, Enneagram9,
}

type AttachmentStyle string

const (
	AttachmentSecure       AttachmentStyle = "SECURE"
	AttachmentAnxious      AttachmentStyle = "ANXIOUS_PREOCCUPIED"
	AttachmentAvoidant     AttachmentStyle = "DISMISSIVE_AVOIDANT"
	AttachmentDisorganized AttachmentStyle = "DISORGANIZED"
)

var AllAttachmentStyles = []AttachmentStyle{
	AttachmentSecure, AttachmentAnxious, AttachmentAvoidant, AttachmentDisorganized,
}

type SexualEnergy string

const (
	SexualEnergyMasculine SexualEnergy = "MASCULINE_CORE"
	SexualEnergyFeminine  SexualEnergy = "FEMININE_CORE"
	SexualEnergyBalanced  SexualEnergy = "BALANCED_CORE"
	SexualEnergyFire      SexualEnergy = "FIRE_ENERGY"
	SexualEnergyWater     SexualEnergy = "WATER_ENERGY"
	SexualEnergyEarth     SexualEnergy = "EARTH_ENERGY"
	SexualEnergyAir       SexualEnergy = "AIR_ENERGY"
)

var AllSexualEnergies = []SexualEnergy{
	SexualEnergyMasculine, SexualEnergyFeminine, SexualEnergyBalanced,
	SexualEnergyFire, SexualEnergyWater, SexualEnergyEarth, SexualEnergyAir,
}

type CommunicationStyle string

const (
	CommunicationDirect      CommunicationStyle = "DIRECT"
	CommunicationIndirect    CommunicationStyle = "INDIRECT"
	CommunicationEmotional   CommunicationStyle = "EMOTIONAL"
	CommunicationAnalytical  CommunicationStyle = "ANALYTICAL"
	CommunicationSupportive  CommunicationStyle = "SUPPORTIVE"
	CommunicationChallenging CommunicationStyle = "CHALLENGING"
)

var AllCommunicationStyles = []CommunicationStyle{
	CommunicationDirect, CommunicationIndirect, CommunicationEmotional,
	CommunicationAnalytical, CommunicationSupportive, CommunicationChallenging,
}

type ConflictStyle string

const (
	ConflictConfronting   ConflictStyle = "CONFRONTING"
	ConflictAvoiding      ConflictStyle = "AVOIDING"
	ConflictCompromising  ConflictStyle = "COMPROMISING"
	ConflictAccommodating ConflictStyle = "ACCOMMODATING"
	ConflictCollaborating ConflictStyle = "COLLABORATING"
)

var AllConflictStyles = []ConflictStyle{
	ConflictConfronting, ConflictAvoiding, ConflictCompromising,
	ConflictAccommodating, ConflictCollaborating,
}

type IntimacyStyle string

const (
	IntimacyPhysical  IntimacyStyle = "PHYSICAL_FOCUSED"
	IntimacyEmotional IntimacyStyle = "EMOTIONAL_FOCUSED"
	IntimacySpiritual IntimacyStyle = "SPIRITUAL_FOCUSED"
	IntimacyMental    IntimacyStyle = "MENTAL_FOCUSED"
	IntimacyBalanced  IntimacyStyle = "BALANCED"
)

var AllIntimacyStyles = []IntimacyStyle{
	IntimacyPhysical, IntimacyEmotional, IntimacySpiritual, IntimacyMental, IntimacyBalanced,
}
