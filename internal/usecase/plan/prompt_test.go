package plan

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitness-app/internal/domain/profile"
)

func TestGoalConfigFor(t *testing.T) {
	cases := []struct {
		goal profile.FitnessGoal
		want GoalConfig
	}{
		{profile.GoalStrength, GoalConfig{"4-8 reps", "120-180 seconds", "Focus on maximal strength"}},
		{profile.GoalHypertrophy, GoalConfig{"8-12 reps", "60-90 seconds", "Focus on muscle growth"}},
		{profile.GoalEndurance, GoalConfig{"12-20 reps", "30-45 seconds", "Focus on muscular endurance"}},
		{profile.GoalWeightLoss, GoalConfig{"12-15 reps", "45-60 seconds", "Focus on fat loss"}},
		{profile.GoalMaintenance, GoalConfig{"4-8 reps", "120-180 seconds", "Focus on maximal strength"}},
		{"", GoalConfig{"4-8 reps", "120-180 seconds", "Focus on maximal strength"}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, GoalConfigFor(tc.goal), "goal %q", tc.goal)
	}
}

func TestDaysFor(t *testing.T) {
	assert.Equal(t, []string{"Monday", "Thursday"}, DaysFor(2))
	assert.Equal(t, []string{"Monday", "Wednesday", "Friday"}, DaysFor(3))
	assert.Equal(t, []string{"Monday", "Tuesday", "Thursday", "Friday"}, DaysFor(4))
	assert.Equal(t, []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}, DaysFor(5))
	assert.Equal(t, []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}, DaysFor(6))
	assert.Equal(t, []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}, DaysFor(7))

	assert.Equal(t, []string{"Day 1"}, DaysFor(1))
	assert.Equal(t, []string{"Day 1", "Day 2", "Day 3", "Day 4", "Day 5", "Day 6", "Day 7", "Day 8"}, DaysFor(8))
	assert.Empty(t, DaysFor(0))
}

func TestDaysFor_ReturnsCopy(t *testing.T) {
	days := DaysFor(3)
	days[0] = "Sunday"
	assert.Equal(t, "Monday", DaysFor(3)[0])
}

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt(PromptParams{
		ExperienceLevel: profile.LevelIntermediate,
		FitnessGoal:     profile.GoalHypertrophy,
		AvailableDays:   4,
	})

	require.Contains(t, prompt, "ONLY A VALID JSON")
	require.Contains(t, prompt, `"days"`)
	require.Contains(t, prompt, `"sets": 4`)
	require.Contains(t, prompt, "Use exactly these days: Monday, Tuesday, Thursday, Friday")
	require.Contains(t, prompt, "Goal: Focus on muscle growth")
	require.Contains(t, prompt, "Level: INT")
	require.Contains(t, prompt, "Reps: 8-12 reps")
	require.Contains(t, prompt, "Rest: 60-90 seconds")
	require.Contains(t, prompt, "Minimum 4 exercises per day")
	require.Contains(t, prompt, "Sets: 3-5 (integer)")
	require.NotContains(t, prompt, "Take into account")
}

func TestBuildPrompt_HealthConditions(t *testing.T) {
	base := PromptParams{
		ExperienceLevel: profile.LevelBeginner,
		FitnessGoal:     profile.GoalMaintenance,
		AvailableDays:   1,
	}

	blank := base
	blank.HealthConditions = "   "
	assert.NotContains(t, BuildPrompt(blank), "Take into account")

	withKnee := base
	withKnee.HealthConditions = "knee injury"
	prompt := BuildPrompt(withKnee)
	assert.Contains(t, prompt, "- Take into account: knee injury")
	assert.Contains(t, prompt, "Use exactly these days: Day 1")
	assert.Contains(t, prompt, "Goal: Focus on maximal strength")
	assert.Equal(t, 1, strings.Count(prompt, "Take into account"))
}

func TestBuildPrompt_Deterministic(t *testing.T) {
	p := PromptParams{ExperienceLevel: profile.LevelAdvanced, FitnessGoal: profile.GoalEndurance, AvailableDays: 6, HealthConditions: "asthma"}
	assert.Equal(t, BuildPrompt(p), BuildPrompt(p))
}
