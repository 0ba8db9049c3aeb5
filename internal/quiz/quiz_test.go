package quiz_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chronos-agency/timetravel-api/internal/catalog"
	"github.com/chronos-agency/timetravel-api/internal/quiz"
)

func newEngine(t *testing.T) *quiz.Engine {
	t.Helper()
	engine, err := quiz.NewEngine(catalog.Default())
	require.NoError(t, err)
	return engine
}

// Every valid answer sequence must resolve to a catalog destination with a
// non-empty itinerary.
func TestRecommendClosure(t *testing.T) {
	engine := newEngine(t)
	cat := catalog.Default()

	var walk func(prefix []string, question int)
	walk = func(prefix []string, question int) {
		if question == len(quiz.Questions) {
			rec, err := engine.Recommend(prefix)
			require.NoError(t, err, "answers %v", prefix)

			_, ok := cat.BySlug(rec.Slug)
			require.True(t, ok, "answers %v produced unknown destination %q", prefix, rec.Slug)
			require.NotEmpty(t, rec.Itinerary, "answers %v produced empty itinerary", prefix)
			return
		}
		for _, option := range quiz.Questions[question].Options {
			walk(append(prefix, option), question+1)
		}
	}
	walk(nil, 0)
}

func TestRecommendDeterministic(t *testing.T) {
	engine := newEngine(t)
	answers := []string{"medium", "history", "3days", "mid", "court"}

	first, err := engine.Recommend(answers)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := engine.Recommend(answers)
		require.NoError(t, err)
		require.Equal(t, first.Slug, again.Slug)
		require.Equal(t, first.Itinerary, again.Itinerary)
	}
}

// Paris and Florence score 6 each here; the first maximal destination in
// catalog order must win, every time.
func TestRecommendTieBreaksInCatalogOrder(t *testing.T) {
	engine := newEngine(t)
	answers := []string{"low", "history", "3days", "budget", "court"}

	for i := 0; i < 10; i++ {
		rec, err := engine.Recommend(answers)
		require.NoError(t, err)
		require.Equal(t, "paris-1889", rec.Slug)
	}
}

func TestRecommendAdventureScenario(t *testing.T) {
	engine := newEngine(t)

	rec, err := engine.Recommend([]string{"high", "adventure", "1day", "premium", "nature"})
	require.NoError(t, err)
	require.Equal(t, "cretace", rec.Slug)
	require.Len(t, rec.Itinerary, 3)
}

func TestRecommendRejectsMalformedAnswers(t *testing.T) {
	engine := newEngine(t)

	cases := [][]string{
		nil,
		{"high"},
		{"high", "adventure", "1day", "premium"},
		{"high", "adventure", "1day", "premium", "nature", "extra"},
		{"extreme", "adventure", "1day", "premium", "nature"},
		{"high", "adventure", "2weeks", "premium", "nature"},
	}

	for _, answers := range cases {
		_, err := engine.Recommend(answers)
		require.Error(t, err, "answers %v", answers)
		require.True(t, errors.Is(err, quiz.ErrInvalidAnswers), "answers %v: got %v", answers, err)
	}
}

func TestWeightsInspection(t *testing.T) {
	w := quiz.Weights(0, "high")
	require.Equal(t, quiz.Weight{"cretace": 3}, w)

	// Returned copies must not alias the table.
	w["cretace"] = 100
	require.Equal(t, quiz.Weight{"cretace": 3}, quiz.Weights(0, "high"))

	require.Nil(t, quiz.Weights(2, "3days"))
	require.Nil(t, quiz.Weights(99, "high"))
}

func TestNewEngineRequiresItineraries(t *testing.T) {
	defaults := catalog.Default().All()
	extra := catalog.Destination{Slug: "atlantide", Name: "Atlantide"}

	cat, err := catalog.New(append(defaults, extra))
	require.NoError(t, err)

	_, err = quiz.NewEngine(cat)
	require.Error(t, err)
	require.Contains(t, err.Error(), "atlantide")
}

func TestNewEngineRejectsUnknownWeightSlugs(t *testing.T) {
	// A catalog missing a destination referenced by the weight table must be
	// rejected at startup.
	cat, err := catalog.New(catalog.Default().All()[:2])
	require.NoError(t, err)

	_, err = quiz.NewEngine(cat)
	require.Error(t, err)
}
