package plan

import (
	"fmt"
	"strings"

	"fitness-app/internal/domain/profile"
)

// GoalConfig задаёт диапазоны нагрузки для цели тренировок.
type GoalConfig struct {
	Reps        string
	Rest        string
	Description string
}

var goalConfigs = map[profile.FitnessGoal]GoalConfig{
	profile.GoalStrength: {
		Reps:        "4-8 reps",
		Rest:        "120-180 seconds",
		Description: "Focus on maximal strength",
	},
	profile.GoalHypertrophy: {
		Reps:        "8-12 reps",
		Rest:        "60-90 seconds",
		Description: "Focus on muscle growth",
	},
	profile.GoalEndurance: {
		Reps:        "12-20 reps",
		Rest:        "30-45 seconds",
		Description: "Focus on muscular endurance",
	},
	profile.GoalWeightLoss: {
		Reps:        "12-15 reps",
		Rest:        "45-60 seconds",
		Description: "Focus on fat loss",
	},
}

var dayDistributions = map[int][]string{
	2: {"Monday", "Thursday"},
	3: {"Monday", "Wednesday", "Friday"},
	4: {"Monday", "Tuesday", "Thursday", "Friday"},
	5: {"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"},
	6: {"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
	7: {"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"},
}

// GoalConfigFor возвращает диапазоны для цели. Цели без своей записи
// (в том числе MAINTENANCE) получают диапазоны STRENGTH.
func GoalConfigFor(goal profile.FitnessGoal) GoalConfig {
	if cfg, ok := goalConfigs[goal]; ok {
		return cfg
	}
	return goalConfigs[profile.GoalStrength]
}

// DaysFor возвращает названия тренировочных дней для n дней в неделю.
// Для n вне 2..7 дни нумеруются: "Day 1".."Day n".
func DaysFor(n int) []string {
	if days, ok := dayDistributions[n]; ok {
		out := make([]string, len(days))
		copy(out, days)
		return out
	}
	out := make([]string, 0, max(n, 0))
	for i := 1; i <= n; i++ {
		out = append(out, fmt.Sprintf("Day %d", i))
	}
	return out
}

// PromptParams содержит данные профиля, из которых собирается запрос.
type PromptParams struct {
	ExperienceLevel  profile.ExperienceLevel
	FitnessGoal      profile.FitnessGoal
	AvailableDays    int
	HealthConditions string
}

// SystemPrompt задаёт роль модели.
const SystemPrompt = "You are an expert personal trainer who designs structured training plans."

const promptSchema = `{
  "days": [
    {
      "day": "Monday",
      "exercises": [
        {"name": "Bench Press", "sets": 4, "reps": "6-8", "rest": "120"},
        {"name": "Squat", "sets": 4, "reps": "6-8", "rest": "120"}
      ]
    }
  ]
}`

// BuildPrompt собирает пользовательское сообщение для генерации плана.
// Чистая функция: одинаковые параметры дают одинаковый текст.
func BuildPrompt(p PromptParams) string {
	goal := GoalConfigFor(p.FitnessGoal)

	var b strings.Builder
	b.WriteString("Act as a professional personal trainer who builds training plans.\n\n")
	b.WriteString("IMPORTANT: RETURN ONLY A VALID JSON DOCUMENT WITH THE FOLLOWING STRUCTURE.\n")
	b.WriteString("DO NOT INCLUDE ANY ADDITIONAL TEXT, ONLY THE JSON.\n\n")
	b.WriteString(promptSchema)
	b.WriteString("\n\n")
	b.WriteString("Field types: \"day\" is a string, \"exercises\" is an array, ")
	b.WriteString("\"name\" is a string, \"sets\" is an integer, \"reps\" is a string, \"rest\" is a string.\n\n")

	b.WriteString("INSTRUCTIONS:\n")
	fmt.Fprintf(&b, "- Use exactly these days: %s\n", strings.Join(DaysFor(p.AvailableDays), ", "))
	fmt.Fprintf(&b, "- Goal: %s\n", goal.Description)
	fmt.Fprintf(&b, "- Level: %s\n", p.ExperienceLevel)
	b.WriteString("- Minimum 4 exercises per day\n")
	b.WriteString("- Sets: 3-5 (integer)\n")
	fmt.Fprintf(&b, "- Reps: %s\n", goal.Reps)
	fmt.Fprintf(&b, "- Rest: %s\n", goal.Rest)
	b.WriteString("- Compound exercises: longer rest\n")
	b.WriteString("- Isolation exercises: shorter rest\n")
	if hc := strings.TrimSpace(p.HealthConditions); hc != "" {
		fmt.Fprintf(&b, "- Take into account: %s\n", hc)
	}
	b.WriteString("\nREMEMBER: RETURN ONLY THE JSON, WITHOUT ANY ADDITIONAL TEXT")

	return b.String()
}
