package postgres

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"fitness-app/internal/domain/training"
	repo "fitness-app/internal/repository/interfaces"
)

func TestPlanModel_RoundTrip(t *testing.T) {
	doc := training.Document{Days: []training.Day{{
		Day: "Monday",
		Exercises: []training.Exercise{
			{Name: "Bench Press", Sets: 4, Reps: "6-8", Rest: "120"},
		},
	}}}
	plan := training.NewPlan(uuid.New(), training.PlanTypeStrength, training.DifficultyIntermediate, doc)

	model, err := writeModel(plan)
	require.NoError(t, err)
	require.JSONEq(t, `{"days":[{"day":"Monday","exercises":[{"name":"Bench Press","sets":4,"reps":"6-8","rest":"120"}]}]}`, string(model.Exercises))

	back, err := model.toDomain()
	require.NoError(t, err)
	require.Equal(t, plan.ID, back.ID)
	require.Equal(t, plan.UserID, back.UserID)
	require.Equal(t, plan.Exercises, back.Exercises)
	require.True(t, back.IsActive)
}

func TestPlanModel_EmptyDocumentStoredAsEmptyArray(t *testing.T) {
	plan := training.NewPlan(uuid.New(), training.PlanTypeMixed, training.DifficultyBeginner, training.Document{})

	model, err := writeModel(plan)
	require.NoError(t, err)
	require.JSONEq(t, `{"days":[]}`, string(model.Exercises))
}

func TestWriteModel_RejectsInvalidPlan(t *testing.T) {
	plan := training.NewPlan(uuid.New(), "YOGA", training.DifficultyBeginner, training.Document{})

	_, err := writeModel(plan)
	require.ErrorIs(t, err, repo.ErrConstraintViolation)
	require.ErrorIs(t, err, training.ErrInvalidPlanType)
}
