package compatibility

import (
	"sort"

	"github.com/gdugdh24/spiritatlas-backend/internal/domain"
)

var solutionPalette = map[domain.CompatibilityCategory][]string{
	domain.CategoryNumerological: {
		"Name a shared intention for the year and revisit it monthly",
		"Respect the different pace each of you needs to grow",
	},
	domain.CategoryAstrological: {
		"Plan time that suits both temperaments: one active, one restful",
		"Treat elemental differences as a source of balance rather than blame",
	},
	domain.CategoryTantric: {
		"Take turns leading and receiving during intimate time",
		"Practise slow synchronized breathing before closeness",
	},
	domain.CategoryEnergetic: {
		"Notice when both of you push or both withdraw, and let one side soften",
		"Ground shared energy with walks or movement together",
	},
	domain.CategorySpiritual: {
		"Share one contemplative practice a week",
		"Talk openly about what feels sacred to each of you",
	},
	domain.CategoryCommunication: {
		"Use reflective listening: repeat back before replying",
		"Agree on a pause signal when a conversation overheats",
	},
	domain.CategoryEmotional: {
		"Name needs explicitly instead of expecting them to be guessed",
		"Schedule a weekly check-in on how supported each of you feels",
	},
	domain.CategoryPhysical: {
		"Ask each other what kind of touch feels most nourishing",
	},
}

func solutionsFor(category domain.CompatibilityCategory) []string {
	s := solutionPalette[category]
	out := make([]string, len(s))
	copy(out, s)
	return out
}

type recommendationTemplate struct {
	title       string
	description string
	actionType  domain.RecommendationType
}

var recommendationPalette = map[domain.CompatibilityCategory][]recommendationTemplate{
	domain.CategoryNumerological: {
		{"Shared Intention Map", "Write down each of your life-path goals and mark where they meet.", domain.RecommendationPersonalGrowth},
	},
	domain.CategoryAstrological: {
		{"Elemental Balance Date", "Alternate dates chosen by each partner's element: an adventure, then a quiet evening.", domain.RecommendationDateIdea},
	},
	domain.CategoryTantric: {
		{"Yab-Yum Breathing", "Sit facing each other and match breaths for ten minutes before intimacy.", domain.RecommendationTantricPractice},
		{"Role Exchange Evening", "Swap the leading and receiving roles for one evening.", domain.RecommendationIntimacyEnhancement},
	},
	domain.CategoryEnergetic: {
		{"Polarity Grounding Walk", "Walk barefoot together and notice when your energies rise or settle.", domain.RecommendationSpiritualExercise},
	},
	domain.CategorySpiritual: {
		{"Heart-Centred Meditation", "Meditate together with attention on the heart for fifteen minutes.", domain.RecommendationSpiritualExercise},
	},
	domain.CategoryCommunication: {
		{"Reflective Listening Practice", "Take turns speaking for three minutes while the other only reflects back.", domain.RecommendationCommunicationTechnique},
		{"Conflict Pause Agreement", "Agree on a word that pauses any argument for twenty minutes.", domain.RecommendationConflictResolution},
	},
	domain.CategoryEmotional: {
		{"Weekly Needs Check-In", "Each week, name one need that was met and one that was not.", domain.RecommendationCommunicationTechnique},
		{"Secure Base Ritual", "Create a small daily ritual of reassurance, like a goodnight message.", domain.RecommendationRelationshipRitual},
	},
	domain.CategoryPhysical: {
		{"Touch Preference Map", "Describe to each other which kinds of touch feel most nourishing.", domain.RecommendationIntimacyEnhancement},
	},
}

var baselineRecommendation = domain.CompatibilityRecommendation{
	Title:       "Sacred Morning Ritual",
	Description: "Start each day with five minutes of shared breath and a single intention for the day.",
	ActionType:  domain.RecommendationRelationshipRitual,
	Priority:    domain.PriorityLow,
}

func priorityFor(severity domain.ChallengeSeverity) domain.RecommendationPriority {
	switch severity {
	case domain.SeverityCritical:
		return domain.PriorityImmediate
	case domain.SeverityMajor:
		return domain.PriorityHigh
	case domain.SeverityModerate:
		return domain.PriorityMedium
	default:
		return domain.PriorityLow
	}
}

// buildRecommendations maps each challenge category onto its palette. A
// template used by several challenges keeps the most urgent priority. The
// baseline ritual is always present, and a practice pointing at the matched
// catalog content is added when there is any.
func buildRecommendations(challenges []domain.CompatibilityChallenge, tantric []domain.TantricCompatibility) []domain.CompatibilityRecommendation {
	var out []domain.CompatibilityRecommendation
	index := make(map[string]int)

	add := func(r domain.CompatibilityRecommendation) {
		if i, ok := index[r.Title]; ok {
			if r.Priority.Rank() < out[i].Priority.Rank() {
				out[i].Priority = r.Priority
			}
			return
		}
		index[r.Title] = len(out)
		out = append(out, r)
	}

	for _, c := range challenges {
		for _, t := range recommendationPalette[c.Category] {
			add(domain.CompatibilityRecommendation{
				Title:       t.title,
				Description: t.description,
				ActionType:  t.actionType,
				Priority:    priorityFor(c.Severity),
			})
		}
	}

	if len(tantric) > 0 {
		ids := make([]string, 0, len(tantric))
		for _, m := range tantric {
			ids = append(ids, m.ContentID)
		}
		add(domain.CompatibilityRecommendation{
			Title:          "Explore Matched Practices",
			Description:    "Work through the practices selected for your combined energies, one per week.",
			ActionType:     domain.RecommendationTantricPractice,
			Priority:       domain.PriorityOptional,
			RelatedContent: ids,
		})
	}

	add(baselineRecommendation)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority.Rank() < out[j].Priority.Rank()
	})
	return out
}
