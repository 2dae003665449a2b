package training

import (
	"fmt"
	"sort"
)

// Ключи документа плана.
const (
	keyDays      = "days"
	keyDay       = "day"
	keyExercises = "exercises"
	keyName      = "name"
	keySets      = "sets"
	keyReps      = "reps"
	keyRest      = "rest"
)

var exerciseKeys = []string{keyName, keySets, keyReps, keyRest}

// SchemaError описывает первое найденное нарушение формы документа.
// Path указывает на проблемное место, например "$.days[0].exercises[2].sets".
type SchemaError struct {
	Path   string
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema violation at %s: %s", e.Path, e.Reason)
}

// Document представляет проверенный тренировочный документ.
type Document struct {
	Days []Day `json:"days"`
}

type Day struct {
	Day       string     `json:"day"`
	Exercises []Exercise `json:"exercises"`
}

// Reps и Rest остаются строками, как их выдаёт модель.
type Exercise struct {
	Name string `json:"name"`
	Sets int64  `json:"sets"`
	Reps string `json:"reps"`
	Rest string `json:"rest"`
}

// ParseDocument разбирает и проверяет сырой JSON плана.
// Возвращает ErrMalformedJSON, если текст не разбирается, и *SchemaError,
// если форма документа неверна.
func ParseDocument(data []byte) (*Document, error) {
	v, err := ParseValue(data)
	if err != nil {
		return nil, err
	}
	return ValidateDocument(v)
}

// ValidateDocument проверяет форму документа и возвращает его типизированную версию.
// Пустые списки дней и упражнений допустимы.
func ValidateDocument(v Value) (*Document, error) {
	root, ok := v.(Object)
	if !ok {
		return nil, schemaErr("$", "expected object, got %s", kindOf(v))
	}
	rawDays, ok := root[keyDays]
	if !ok {
		return nil, schemaErr("$", "missing key %q", keyDays)
	}
	days, ok := rawDays.(Array)
	if !ok {
		return nil, schemaErr("$.days", "expected array, got %s", kindOf(rawDays))
	}

	doc := &Document{Days: make([]Day, 0, len(days))}
	for i, rawDay := range days {
		day, err := validateDay(fmt.Sprintf("$.days[%d]", i), rawDay)
		if err != nil {
			return nil, err
		}
		doc.Days = append(doc.Days, day)
	}
	return doc, nil
}

func validateDay(path string, v Value) (Day, error) {
	obj, ok := v.(Object)
	if !ok {
		return Day{}, schemaErr(path, "expected object, got %s", kindOf(v))
	}
	rawName, ok := obj[keyDay]
	if !ok {
		return Day{}, schemaErr(path, "missing key %q", keyDay)
	}
	rawExercises, ok := obj[keyExercises]
	if !ok {
		return Day{}, schemaErr(path, "missing key %q", keyExercises)
	}
	name, ok := rawName.(String)
	if !ok {
		return Day{}, schemaErr(path+".day", "expected string, got %s", kindOf(rawName))
	}
	exercises, ok := rawExercises.(Array)
	if !ok {
		return Day{}, schemaErr(path+".exercises", "expected array, got %s", kindOf(rawExercises))
	}

	day := Day{Day: string(name), Exercises: make([]Exercise, 0, len(exercises))}
	for j, rawEx := range exercises {
		ex, err := validateExercise(fmt.Sprintf("%s.exercises[%d]", path, j), rawEx)
		if err != nil {
			return Day{}, err
		}
		day.Exercises = append(day.Exercises, ex)
	}
	return day, nil
}

func validateExercise(path string, v Value) (Exercise, error) {
	obj, ok := v.(Object)
	if !ok {
		return Exercise{}, schemaErr(path, "expected object, got %s", kindOf(v))
	}
	for _, key := range exerciseKeys {
		if _, ok := obj[key]; !ok {
			return Exercise{}, schemaErr(path, "missing key %q", key)
		}
	}
	if len(obj) != len(exerciseKeys) {
		return Exercise{}, schemaErr(path, "unexpected key %q", firstExtraKey(obj))
	}

	var ex Exercise
	var err error
	if ex.Name, err = stringField(path, obj, keyName); err != nil {
		return Exercise{}, err
	}
	switch sets := obj[keySets].(type) {
	case Integer:
		ex.Sets = int64(sets)
	case BigInteger:
		return Exercise{}, schemaErr(path+".sets", "integer out of range: %s", sets)
	default:
		return Exercise{}, schemaErr(path+".sets", "expected integer, got %s", kindOf(sets))
	}
	if ex.Reps, err = stringField(path, obj, keyReps); err != nil {
		return Exercise{}, err
	}
	if ex.Rest, err = stringField(path, obj, keyRest); err != nil {
		return Exercise{}, err
	}
	return ex, nil
}

func stringField(path string, obj Object, key string) (string, error) {
	s, ok := obj[key].(String)
	if !ok {
		return "", schemaErr(path+"."+key, "expected string, got %s", kindOf(obj[key]))
	}
	return string(s), nil
}

func firstExtraKey(obj Object) string {
	extra := make([]string, 0, len(obj))
	for k := range obj {
		known := false
		for _, want := range exerciseKeys {
			if k == want {
				known = true
				break
			}
		}
		if !known {
			extra = append(extra, k)
		}
	}
	sort.Strings(extra)
	if len(extra) == 0 {
		return ""
	}
	return extra[0]
}

func kindOf(v Value) string {
	if v == nil {
		return "nothing"
	}
	return v.Kind().String()
}

func schemaErr(path, format string, args ...any) *SchemaError {
	return &SchemaError{Path: path, Reason: fmt.Sprintf(format, args...)}
}
