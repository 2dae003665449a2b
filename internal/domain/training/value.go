package training

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
)

// ErrMalformedJSON возвращается, когда текст не является одним корректным JSON-значением.
var ErrMalformedJSON = errors.New("malformed json")

// Kind — вид JSON-значения.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInteger
	KindFloat
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	}
	return "unknown"
}

// Value — распарсенное JSON-значение. Целые и дробные числа различаются
// по записи литерала: 4 — Integer, 4.0 и 4e0 — Float. Целый литерал вне
// диапазона int64 остаётся BigInteger с исходной записью.
type Value interface {
	Kind() Kind
}

type (
	Null       struct{}
	Bool       bool
	Integer    int64
	BigInteger string
	Float      float64
	String     string
	Array      []Value
	Object     map[string]Value
)

func (Null) Kind() Kind       { return KindNull }
func (Bool) Kind() Kind       { return KindBool }
func (Integer) Kind() Kind    { return KindInteger }
func (BigInteger) Kind() Kind { return KindInteger }
func (Float) Kind() Kind      { return KindFloat }
func (String) Kind() Kind     { return KindString }
func (Array) Kind() Kind      { return KindArray }
func (Object) Kind() Kind     { return KindObject }

// ParseValue строго разбирает data как ровно одно JSON-значение.
func ParseValue(data []byte) (Value, error) {
	if !json.Valid(data) {
		return nil, ErrMalformedJSON
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}
	return fromAny(raw)
}

func fromAny(raw any) (Value, error) {
	switch v := raw.(type) {
	case nil:
		return Null{}, nil
	case bool:
		return Bool(v), nil
	case string:
		return String(v), nil
	case json.Number:
		return fromNumber(v), nil
	case float64:
		return Float(v), nil
	case []any:
		arr := make(Array, 0, len(v))
		for _, item := range v {
			iv, err := fromAny(item)
			if err != nil {
				return nil, err
			}
			arr = append(arr, iv)
		}
		return arr, nil
	case map[string]any:
		obj := make(Object, len(v))
		for key, item := range v {
			iv, err := fromAny(item)
			if err != nil {
				return nil, err
			}
			obj[key] = iv
		}
		return obj, nil
	default:
		return nil, fmt.Errorf("%w: unexpected %T", ErrMalformedJSON, raw)
	}
}

func fromNumber(n json.Number) Value {
	literal := n.String()
	if !strings.ContainsAny(literal, ".eE") {
		if i, err := n.Int64(); err == nil {
			return Integer(i)
		}
		return BigInteger(literal)
	}
	f, err := n.Float64()
	if err != nil {
		return Float(0)
	}
	return Float(f)
}

// Interface превращает Value обратно в значения, пригодные для json.Marshal.
func Interface(v Value) any {
	switch t := v.(type) {
	case Null:
		return nil
	case Bool:
		return bool(t)
	case Integer:
		return int64(t)
	case BigInteger:
		return json.Number(t)
	case Float:
		return float64(t)
	case String:
		return string(t)
	case Array:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = Interface(item)
		}
		return out
	case Object:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[k] = Interface(item)
		}
		return out
	}
	return nil
}
