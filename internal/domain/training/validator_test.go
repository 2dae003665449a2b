package training

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const benchDoc = `{"days":[{"day":"Monday","exercises":[{"name":"Bench Press","sets":4,"reps":"6-8","rest":"120"}]}]}`

func TestParseDocument_Accepts(t *testing.T) {
	doc, err := ParseDocument([]byte(benchDoc))
	require.NoError(t, err)
	require.Len(t, doc.Days, 1)
	assert.Equal(t, "Monday", doc.Days[0].Day)
	assert.Equal(t, Exercise{Name: "Bench Press", Sets: 4, Reps: "6-8", Rest: "120"}, doc.Days[0].Exercises[0])
}

func TestParseDocument_AcceptsEmptyCollections(t *testing.T) {
	doc, err := ParseDocument([]byte(`{"days":[]}`))
	require.NoError(t, err)
	assert.Empty(t, doc.Days)
	assert.NotNil(t, doc.Days)

	doc, err = ParseDocument([]byte(`{"days":[{"day":"Monday","exercises":[]}]}`))
	require.NoError(t, err)
	assert.Empty(t, doc.Days[0].Exercises)
}

func TestParseDocument_IgnoresExtraDayKeys(t *testing.T) {
	doc, err := ParseDocument([]byte(`{"days":[{"day":"Monday","focus":"push","exercises":[]}],"notes":"x"}`))
	require.NoError(t, err)
	assert.Equal(t, "Monday", doc.Days[0].Day)
}

func TestParseDocument_Rejects(t *testing.T) {
	cases := []struct {
		name string
		in   string
		path string
	}{
		{"root is array", `[]`, "$"},
		{"days renamed", `{"schedule":[]}`, "$"},
		{"days missing", `{}`, "$"},
		{"days not array", `{"days":{}}`, "$.days"},
		{"day not object", `{"days":["Monday"]}`, "$.days[0]"},
		{"day key missing", `{"days":[{"exercises":[]}]}`, "$.days[0]"},
		{"exercises missing", `{"days":[{"day":"Monday"}]}`, "$.days[0]"},
		{"day name not string", `{"days":[{"day":1,"exercises":[]}]}`, "$.days[0].day"},
		{"exercises not array", `{"days":[{"day":"Monday","exercises":"none"}]}`, "$.days[0].exercises"},
		{"exercise not object", `{"days":[{"day":"Monday","exercises":[1]}]}`, "$.days[0].exercises[0]"},
		{"sets as string", `{"days":[{"day":"Monday","exercises":[{"name":"Bench Press","sets":"4","reps":"6-8","rest":"120"}]}]}`, "$.days[0].exercises[0].sets"},
		{"sets as float", `{"days":[{"day":"Monday","exercises":[{"name":"Bench Press","sets":4.0,"reps":"6-8","rest":"120"}]}]}`, "$.days[0].exercises[0].sets"},
		{"sets as exponent", `{"days":[{"day":"Monday","exercises":[{"name":"Bench Press","sets":4e0,"reps":"6-8","rest":"120"}]}]}`, "$.days[0].exercises[0].sets"},
		{"sets as bool", `{"days":[{"day":"Monday","exercises":[{"name":"Bench Press","sets":true,"reps":"6-8","rest":"120"}]}]}`, "$.days[0].exercises[0].sets"},
		{"reps as number", `{"days":[{"day":"Monday","exercises":[{"name":"Bench Press","sets":4,"reps":8,"rest":"120"}]}]}`, "$.days[0].exercises[0].reps"},
		{"rest as number", `{"days":[{"day":"Monday","exercises":[{"name":"Bench Press","sets":4,"reps":"8","rest":120}]}]}`, "$.days[0].exercises[0].rest"},
		{"name null", `{"days":[{"day":"Monday","exercises":[{"name":null,"sets":4,"reps":"8","rest":"120"}]}]}`, "$.days[0].exercises[0].name"},
		{"missing rest", `{"days":[{"day":"Monday","exercises":[{"name":"Squat","sets":4,"reps":"8"}]}]}`, "$.days[0].exercises[0]"},
		{"extra key", `{"days":[{"day":"Monday","exercises":[{"name":"Squat","sets":4,"reps":"8","rest":"90","tempo":"3-1-1"}]}]}`, "$.days[0].exercises[0]"},
		{"second day broken", `{"days":[{"day":"Monday","exercises":[]},{"day":"Friday","exercises":null}]}`, "$.days[1].exercises"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseDocument([]byte(tc.in))
			require.Error(t, err)

			var se *SchemaError
			require.True(t, errors.As(err, &se), "expected SchemaError, got %v", err)
			assert.Equal(t, tc.path, se.Path)
			assert.NotEmpty(t, se.Reason)
		})
	}
}

func TestParseDocument_SetsOutOfRange(t *testing.T) {
	_, err := ParseDocument([]byte(`{"days":[{"day":"Monday","exercises":[{"name":"Squat","sets":99999999999999999999,"reps":"8","rest":"90"}]}]}`))

	var se *SchemaError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "$.days[0].exercises[0].sets", se.Path)
	assert.Contains(t, se.Reason, "integer out of range")
	assert.NotContains(t, se.Reason, "float")
}

func TestParseDocument_Malformed(t *testing.T) {
	for _, in := range []string{
		``,
		`not json`,
		`{"days":[}`,
		`{"days":[]} trailing`,
		`{"days":[]}{"days":[]}`,
	} {
		_, err := ParseDocument([]byte(in))
		require.ErrorIs(t, err, ErrMalformedJSON, "input %q", in)
	}
}

func TestParseValue_NumberKinds(t *testing.T) {
	v, err := ParseValue([]byte(`[4, 4.0, 4e0, -2, 1E3]`))
	require.NoError(t, err)

	arr := v.(Array)
	assert.Equal(t, Integer(4), arr[0])
	assert.Equal(t, Float(4), arr[1])
	assert.Equal(t, Float(4), arr[2])
	assert.Equal(t, Integer(-2), arr[3])
	assert.Equal(t, Float(1000), arr[4])

	v, err = ParseValue([]byte(`[99999999999999999999, -9223372036854775809, 9223372036854775807]`))
	require.NoError(t, err)
	arr = v.(Array)
	assert.Equal(t, BigInteger("99999999999999999999"), arr[0])
	assert.Equal(t, BigInteger("-9223372036854775809"), arr[1])
	assert.Equal(t, Integer(9223372036854775807), arr[2])
	assert.Equal(t, KindInteger, arr[0].Kind())

	data, err := json.Marshal(Interface(v))
	require.NoError(t, err)
	assert.Equal(t, `[99999999999999999999,-9223372036854775809,9223372036854775807]`, string(data))
}

func TestDocument_RoundTrip(t *testing.T) {
	doc, err := ParseDocument([]byte(benchDoc))
	require.NoError(t, err)

	data, err := json.Marshal(doc)
	require.NoError(t, err)

	again, err := ParseDocument(data)
	require.NoError(t, err)
	assert.Equal(t, doc, again)

	empty, err := json.Marshal(&Document{Days: []Day{}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"days":[]}`, string(empty))
}

func TestValue_InterfaceRoundTrip(t *testing.T) {
	v, err := ParseValue([]byte(benchDoc))
	require.NoError(t, err)

	data, err := json.Marshal(Interface(v))
	require.NoError(t, err)
	assert.JSONEq(t, benchDoc, string(data))

	again, err := ParseValue(data)
	require.NoError(t, err)
	assert.Equal(t, v, again)
}

func TestPlan_Validate(t *testing.T) {
	p := NewPlan(uuid.New(), PlanTypeStrength, DifficultyBeginner, Document{Days: []Day{}})
	require.NoError(t, p.Validate())
	assert.True(t, p.IsActive)
	assert.False(t, p.CreatedAt.IsZero())

	p.PlanType = "YOGA"
	require.ErrorIs(t, p.Validate(), ErrInvalidPlanType)
	assert.True(t, IsConstraintError(p.Validate()))

	p.PlanType = PlanTypeHIIT
	p.Difficulty = "PRO"
	require.ErrorIs(t, p.Validate(), ErrInvalidDifficulty)
}
