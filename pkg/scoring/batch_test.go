package scoring_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/farmsecure/farmsecure/pkg/scoring"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestAssessAll_PreservesOrder(t *testing.T) {
	var profiles []scoring.Profile
	for i, f := range allRatings()[:200] {
		profiles = append(profiles, scoring.Profile{Name: fmt.Sprintf("farm-%d", i), Factors: f})
	}

	engine := scoring.NewEngine()
	results, err := engine.AssessAll(context.Background(), profiles, 4)
	require.NoError(t, err)
	require.Len(t, results, len(profiles))

	for i, a := range results {
		require.NotNil(t, a)
		assert.Equal(t, profiles[i].Name, a.Farm)
		assert.Equal(t, scoring.ComputeRiskScore(profiles[i].Factors), a.Score)
	}
}

func TestAssessAll_DefaultWorkers(t *testing.T) {
	profiles := []scoring.Profile{
		{Name: "a", Factors: scoring.BestPractice()},
		{Name: "b", Factors: worstPractice()},
	}

	results, err := scoring.NewEngine().AssessAll(context.Background(), profiles, 0)
	require.NoError(t, err)
	assert.Equal(t, 35, results[0].Score)
	assert.Equal(t, 100, results[1].Score)
}

func TestAssessAll_Empty(t *testing.T) {
	results, err := scoring.NewEngine().AssessAll(context.Background(), nil, 2)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestAssessAll_InvalidProfile(t *testing.T) {
	profiles := []scoring.Profile{
		{Name: "good", Factors: scoring.BestPractice()},
		{Name: "broken", Factors: scoring.RiskFactors{}},
	}

	results, err := scoring.NewEngine().AssessAll(context.Background(), profiles, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, scoring.ErrInvalidFactors)
	assert.Contains(t, err.Error(), "broken")
	assert.Nil(t, results)
}

func TestAssessAll_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	profiles := []scoring.Profile{{Name: "a", Factors: scoring.BestPractice()}}
	_, err := scoring.NewEngine().AssessAll(ctx, profiles, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEngine_ConcurrentAssess(t *testing.T) {
	engine := scoring.NewEngine()
	done := make(chan int, 16)

	for i := 0; i < 16; i++ {
		go func() {
			a, err := engine.Assess(worstPractice())
			if err != nil {
				done <- -1
				return
			}
			done <- a.Score
		}()
	}

	for i := 0; i < 16; i++ {
		assert.Equal(t, 100, <-done)
	}
}
