package compatibility

import (
	"math"
	"sort"
	"strings"

	"github.com/gdugdh24/spiritatlas-backend/internal/domain"
)

const (
	maxTantricMatches = 3
	tagBonus          = 5.0
	maxTagBonus       = 10.0
)

var contentBaseScore = map[domain.TantricContentType]float64{
	domain.ContentTantricPractices: 82.5,
	domain.ContentKamaSutra:        82.5,
	domain.ContentRobertGreene:     77.5,
	domain.ContentCompatibility:    87.5,
}

var contentAdvice = map[domain.TantricContentType]string{
	domain.ContentTantricPractices: "Practise together in a calm, unhurried space",
	domain.ContentKamaSutra:        "Approach it as play and talk about what you discover",
	domain.ContentRobertGreene:     "Read it separately, then compare which patterns you recognise",
	domain.ContentCompatibility:    "Use it as a starting point for an honest conversation",
}

// DefaultCatalog is the built-in content used when no catalog is configured.
func DefaultCatalog() []domain.TantricContent {
	return []domain.TantricContent{
		{ID: "tp-breath-sync", Title: "Synchronized Breathing", ContentType: domain.ContentTantricPractices, Tags: []string{"heart", "balanced union", "neutral"}},
		{ID: "tp-yab-yum", Title: "Yab-Yum Meditation", ContentType: domain.ContentTantricPractices, Tags: []string{"shakti dominant", "shiva dominant", "crown"}},
		{ID: "tp-fire-cooling", Title: "Cooling the Inner Fire", ContentType: domain.ContentTantricPractices, Tags: []string{"passionate fire", "sacred warrior", "solar plexus"}},
		{ID: "ks-slow-union", Title: "The Slow Union", ContentType: domain.ContentKamaSutra, Tags: []string{"sacral", "flowing dancer", "gentle nurturer"}},
		{ID: "ks-play-of-roles", Title: "Play of Roles", ContentType: domain.ContentKamaSutra, Tags: []string{"mystic lover", "adventurer", "artist"}},
		{ID: "rg-siren-rake", Title: "The Siren and the Rake", ContentType: domain.ContentRobertGreene, Tags: []string{"warrior", "protector", "electric"}},
		{ID: "rg-ideal-lover", Title: "The Ideal Lover", ContentType: domain.ContentRobertGreene, Tags: []string{"nurturer", "healer", "magnetic"}},
		{ID: "cp-elements", Title: "Living With Your Elements", ContentType: domain.ContentCompatibility, Tags: []string{"fire", "earth", "air", "water"}},
		{ID: "cp-attachment", Title: "Secure Love", ContentType: domain.ContentCompatibility, Tags: []string{"sage", "mystic", "throat"}},
	}
}

// matchTantricContent scores every catalog entry against the couple and
// returns the best few, highest first with ties broken by content id.
func matchTantricContent(catalog []domain.TantricContent, a, b *domain.ArchetypeAssignment, tantricScore float64) []domain.TantricCompatibility {
	if len(catalog) == 0 {
		return nil
	}
	traits := coupleTraits(a, b)

	matches := make([]domain.TantricCompatibility, 0, len(catalog))
	for _, c := range catalog {
		base, ok := contentBaseScore[c.ContentType]
		if !ok {
			continue
		}
		var hits []string
		for _, tag := range c.Tags {
			tag = strings.ToLower(strings.TrimSpace(tag))
			if traits[tag] && !contains(hits, tag) {
				hits = append(hits, tag)
			}
		}
		score := 0.6*base + 0.4*tantricScore + math.Min(maxTagBonus, tagBonus*float64(len(hits)))

		reason := "Suited to " + pair(a.TantricType, b.TantricType)
		if len(hits) > 0 {
			reason = "Speaks to your " + strings.Join(hits, ", ")
		}
		matches = append(matches, domain.TantricCompatibility{
			ContentID:          c.ID,
			ContentType:        c.ContentType,
			CompatibilityScore: round2(clamp(score)),
			Reason:             reason,
			Recommendation:     contentAdvice[c.ContentType],
		})
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].CompatibilityScore != matches[j].CompatibilityScore {
			return matches[i].CompatibilityScore > matches[j].CompatibilityScore
		}
		return matches[i].ContentID < matches[j].ContentID
	})
	if len(matches) > maxTantricMatches {
		matches = matches[:maxTantricMatches]
	}
	return matches
}

func coupleTraits(assignments ...*domain.ArchetypeAssignment) map[string]bool {
	traits := make(map[string]bool)
	for _, x := range assignments {
		for _, v := range []string{
			string(x.TantricType), string(x.Polarity), string(x.Chakra),
			string(x.Archetype), string(x.Element),
		} {
			traits[humanize(v)] = true
		}
	}
	return traits
}
