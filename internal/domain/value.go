package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Value is a tagged scalar bound to a module column. Exactly one payload
// field is meaningful, selected by Kind; Null overrides all of them.
type Value struct {
	Kind ColumnKind
	Null bool
	Text string
	Int  int64
	Real float64
	Time time.Time
	Bool bool
}

func TextValue(s string) Value         { return Value{Kind: KindText, Text: s} }
func IntValue(n int64) Value           { return Value{Kind: KindInteger, Int: n} }
func RealValue(f float64) Value        { return Value{Kind: KindReal, Real: f} }
func TimestampValue(t time.Time) Value { return Value{Kind: KindTimestamp, Time: t} }
func DateValue(t time.Time) Value      { return Value{Kind: KindDate, Time: t} }
func NullValue(kind ColumnKind) Value  { return Value{Kind: kind, Null: true} }

// Arg returns the value in the form bound as a query parameter.
func (v Value) Arg() any {
	if v.Null {
		return nil
	}
	switch v.Kind {
	case KindText:
		return v.Text
	case KindInteger:
		return v.Int
	case KindReal:
		return v.Real
	case KindTimestamp, KindDate:
		return v.Time
	case KindBool:
		return v.Bool
	}
	return nil
}

// Fields is a validated column→value mapping for one module.
type Fields map[string]Value

// Columns returns the column names in sorted order.
func (f Fields) Columns() []string {
	cols := make([]string, 0, len(f))
	for c := range f {
		cols = append(cols, c)
	}
	sort.Strings(cols)
	return cols
}

// Bind validates a caller payload against the schema and converts it into
// Fields. The first key that is not a column fails with *UnknownFieldError;
// all other problems are collected into a *ValidationError. When forCreate is
// set, required columns must be present.
func (s *Schema) Bind(payload map[string]any, forCreate bool) (Fields, error) {
	keys := make([]string, 0, len(payload))
	for k := range payload {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if _, ok := s.Column(k); !ok {
			return nil, &UnknownFieldError{Module: s.Module, Field: k}
		}
	}

	var errs []FieldError
	fields := make(Fields, len(keys))

	for _, k := range keys {
		col, _ := s.Column(k)
		if col.ReadOnly {
			errs = append(errs, FieldError{Field: k, Message: "read-only"})
			continue
		}

		v, msg := coerce(col, payload[k])
		if msg != "" {
			errs = append(errs, FieldError{Field: k, Message: msg})
			continue
		}
		if v.Null && col.NotNull {
			errs = append(errs, FieldError{Field: k, Message: "must not be null"})
			continue
		}
		if col.Required && !v.Null && v.Kind == KindText && strings.TrimSpace(v.Text) == "" {
			errs = append(errs, FieldError{Field: k, Message: "required"})
			continue
		}
		fields[k] = v
	}

	if forCreate {
		for _, col := range s.Columns {
			if !col.Required {
				continue
			}
			if _, ok := payload[col.Name]; !ok {
				errs = append(errs, FieldError{Field: col.Name, Message: "required"})
			}
		}
	}

	if len(errs) > 0 {
		return nil, NewValidationErrors(errs)
	}
	return fields, nil
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	time.DateOnly,
}

// coerce converts one raw payload value to the column kind. A non-empty
// message reports why the value does not fit.
func coerce(col Column, raw any) (Value, string) {
	if raw == nil {
		return NullValue(col.Kind), ""
	}
	if v, ok := raw.(Value); ok {
		if v.Kind != col.Kind {
			return Value{}, "must be " + col.Kind.String()
		}
		if v.Kind == KindText && ContainsNUL(v.Text) {
			return Value{}, MsgContainsNUL
		}
		return v, ""
	}

	switch col.Kind {
	case KindText:
		s, ok := raw.(string)
		if !ok {
			return Value{}, "must be a string"
		}
		if ContainsNUL(s) {
			return Value{}, MsgContainsNUL
		}
		return TextValue(s), ""

	case KindInteger:
		n, ok := toInt64(raw)
		if !ok {
			return Value{}, "must be an integer"
		}
		return IntValue(n), ""

	case KindReal:
		f, ok := toFloat64(raw)
		if !ok {
			return Value{}, "must be a number"
		}
		return RealValue(f), ""

	case KindTimestamp:
		t, ok := toTime(raw)
		if !ok {
			return Value{}, "must be a timestamp"
		}
		return TimestampValue(t), ""

	case KindDate:
		t, ok := toTime(raw)
		if !ok {
			return Value{}, "must be a date (YYYY-MM-DD)"
		}
		y, m, d := t.Date()
		return DateValue(time.Date(y, m, d, 0, 0, 0, 0, time.UTC)), ""

	case KindBool:
		if b, ok := raw.(bool); ok {
			return Value{Kind: KindBool, Bool: b}, ""
		}
		return Value{}, "must be a boolean"
	}

	return Value{}, fmt.Sprintf("unsupported column kind %s", col.Kind)
}

func toInt64(raw any) (int64, bool) {
	switch v := raw.(type) {
	case json.Number:
		n, err := v.Int64()
		return n, err == nil
	case int:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) || math.IsNaN(v) {
			return 0, false
		}
		return int64(v), true
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		return n, err == nil
	}
	return 0, false
}

func toFloat64(raw any) (float64, bool) {
	switch v := raw.(type) {
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case float64:
		return v, !math.IsInf(v, 0) && !math.IsNaN(v)
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil && !math.IsInf(f, 0) && !math.IsNaN(f)
	}
	return 0, false
}

func toTime(raw any) (time.Time, bool) {
	switch v := raw.(type) {
	case time.Time:
		return v, true
	case string:
		s := strings.TrimSpace(v)
		for _, layout := range timestampLayouts {
			if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
				return t, true
			}
		}
	}
	return time.Time{}, false
}
