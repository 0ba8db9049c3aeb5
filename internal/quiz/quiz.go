// Package quiz implements the preference-scoring recommendation engine.
package quiz

import (
	"errors"
	"fmt"

	"github.com/chronos-agency/timetravel-api/internal/catalog"
)

// ErrInvalidAnswers reports a malformed answer sequence.
var ErrInvalidAnswers = errors.New("invalid answer sequence")

// Question is one questionnaire step with its closed option set.
type Question struct {
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
}

// Questions is the fixed questionnaire, in presentation order.
var Questions = []Question{
	{
		Prompt:  "Quel niveau de danger acceptez-vous ?",
		Options: []string{"low", "medium", "high"},
	},
	{
		Prompt:  "Quel est votre intérêt principal ?",
		Options: []string{"art", "history", "adventure"},
	},
	{
		Prompt:  "Durée souhaitée du voyage ?",
		Options: []string{"1day", "3days", "1week"},
	},
	{
		Prompt:  "Quel budget êtes-vous prêt à investir ?",
		Options: []string{"budget", "mid", "premium"},
	},
	{
		Prompt:  "Quel cadre vous attire le plus ?",
		Options: []string{"city", "nature", "court"},
	},
}

// Weight maps destination slugs to additive score contributions.
type Weight map[string]int

// weightTable holds one row per question, keyed by option value. An option
// may contribute to several destinations at once; an absent option (e.g.
// "3days") contributes nothing. This table is the sole determinant of
// scoring: adding a destination or question only touches data here.
var weightTable = []map[string]Weight{
	{ // danger
		"low":    {"paris-1889": 2, "florence-1504": 2},
		"medium": {"florence-1504": 2, "paris-1889": 1},
		"high":   {"cretace": 3},
	},
	{ // interest
		"art":       {"florence-1504": 3, "paris-1889": 1},
		"history":   {"paris-1889": 2, "florence-1504": 2},
		"adventure": {"cretace": 3},
	},
	{ // duration
		"1week": {"paris-1889": 1, "florence-1504": 1},
		"1day":  {"cretace": 1},
	},
	{ // budget
		"budget":  {"paris-1889": 2},
		"mid":     {"florence-1504": 2},
		"premium": {"cretace": 2},
	},
	{ // setting
		"city":   {"paris-1889": 2},
		"nature": {"cretace": 2},
		"court":  {"florence-1504": 2},
	},
}

// Weights returns a copy of the weight row for the given question and option,
// or nil when the option contributes nothing.
func Weights(question int, option string) Weight {
	if question < 0 || question >= len(weightTable) {
		return nil
	}
	row, ok := weightTable[question][option]
	if !ok {
		return nil
	}
	out := make(Weight, len(row))
	for slug, w := range row {
		out[slug] = w
	}
	return out
}

// itineraries maps each destination slug to its suggested day-by-day steps.
var itineraries = map[string][]string{
	"paris-1889": {
		"Arrivée à Paris et visite de l'Exposition universelle",
		"Montée privée de la Tour Eiffel avec Gustave Eiffel, suivi d'un dîner Belle Époque",
		"Balade à Montmartre, atelier impressionniste et soirée cabaret",
	},
	"cretace": {
		"Briefing sécurité et installation dans la base blindée du Crétacé",
		"Safari dinosaures en véhicule blindé et observation de Tricératops",
		"Survol en drone des plaines, collecte de spécimens botaniques et retour",
	},
	"florence-1504": {
		"Arrivée à Florence, habillage Renaissance et promenade guidée",
		"Atelier de sculpture, visite de l'atelier de Léonard de Vinci",
		"Dîner à la cour des Médicis et observation du dévoilement du David",
	},
}

// Recommendation is the outcome of a completed questionnaire.
type Recommendation struct {
	Slug      string   `json:"slug"`
	Itinerary []string `json:"itinerary"`
}

// Engine scores answer sequences against the catalog.
type Engine struct {
	catalog *catalog.Catalog
}

// NewEngine validates the scoring configuration against the catalog and
// returns a ready engine. Validation runs once here, not per request: every
// weight must reference a known slug and a known option, and every catalog
// entry must have a non-empty itinerary.
func NewEngine(cat *catalog.Catalog) (*Engine, error) {
	if len(weightTable) != len(Questions) {
		return nil, fmt.Errorf("weight table has %d rows, want %d", len(weightTable), len(Questions))
	}

	for qi, row := range weightTable {
		for option, weights := range row {
			if !validOption(qi, option) {
				return nil, fmt.Errorf("question %d: weight row references unknown option %q", qi, option)
			}
			for slug := range weights {
				if _, ok := cat.BySlug(slug); !ok {
					return nil, fmt.Errorf("question %d option %q: weight references unknown destination %q", qi, option, slug)
				}
			}
		}
	}

	for _, slug := range cat.Slugs() {
		if len(itineraries[slug]) == 0 {
			return nil, fmt.Errorf("destination %q has no configured itinerary", slug)
		}
	}

	return &Engine{catalog: cat}, nil
}

// Recommend maps a completed answer sequence to a destination and its
// itinerary. Ties are broken deterministically: the first destination in
// catalog order holding the maximum score wins.
func (e *Engine) Recommend(answers []string) (Recommendation, error) {
	if len(answers) != len(Questions) {
		return Recommendation{}, fmt.Errorf("%w: got %d answers, want %d", ErrInvalidAnswers, len(answers), len(Questions))
	}

	for qi, answer := range answers {
		if !validOption(qi, answer) {
			return Recommendation{}, fmt.Errorf("%w: question %d has no option %q", ErrInvalidAnswers, qi, answer)
		}
	}

	scores := make(map[string]int, e.catalog.Len())
	for qi, answer := range answers {
		for slug, w := range weightTable[qi][answer] {
			scores[slug] += w
		}
	}

	var winner string
	best := -1
	for _, slug := range e.catalog.Slugs() {
		if scores[slug] > best {
			best = scores[slug]
			winner = slug
		}
	}

	return Recommendation{Slug: winner, Itinerary: itinerary(winner)}, nil
}

func itinerary(slug string) []string {
	steps := itineraries[slug]
	out := make([]string, len(steps))
	copy(out, steps)
	return out
}

func validOption(question int, option string) bool {
	for _, o := range Questions[question].Options {
		if o == option {
			return true
		}
	}
	return false
}
