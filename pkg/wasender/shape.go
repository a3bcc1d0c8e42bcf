package wasender

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

type shapeKind int

const (
	shapeAny shapeKind = iota
	shapeObject
	shapeArray
	shapeString
	shapeBool
	shapeInt
	shapeParticipant
)

// shape is the wire layout of a Go type, derived once from its json tags.
// A field without omitempty must be present and non-null.
type shape struct {
	kind   shapeKind
	fields []fieldShape
	elem   *shape
}

type fieldShape struct {
	name     string
	required bool
	shape    *shape
}

var participantRefType = reflect.TypeOf(ParticipantRef{})

func shapeOf(t reflect.Type) *shape {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == participantRefType {
		return &shape{kind: shapeParticipant, elem: shapeOf(reflect.TypeOf(GroupParticipant{}))}
	}

	switch t.Kind() {
	case reflect.Struct:
		return &shape{kind: shapeObject, fields: fieldsOf(t)}
	case reflect.Slice:
		return &shape{kind: shapeArray, elem: shapeOf(t.Elem())}
	case reflect.Map:
		return &shape{kind: shapeObject}
	case reflect.String:
		return &shape{kind: shapeString}
	case reflect.Bool:
		return &shape{kind: shapeBool}
	case reflect.Int, reflect.Int32, reflect.Int64:
		return &shape{kind: shapeInt}
	}
	return &shape{kind: shapeAny}
}

func fieldsOf(t reflect.Type) []fieldShape {
	var fields []fieldShape
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		tag, hasTag := f.Tag.Lookup("json")
		if f.Anonymous && !hasTag {
			fields = append(fields, fieldsOf(f.Type)...)
			continue
		}
		if !f.IsExported() || tag == "-" {
			continue
		}
		name, opts, _ := strings.Cut(tag, ",")
		if name == "" {
			name = f.Name
		}
		fields = append(fields, fieldShape{
			name:     name,
			required: !strings.Contains(opts, "omitempty"),
			shape:    shapeOf(f.Type),
		})
	}
	return fields
}

// check walks v, a tree decoded with json.Number for numbers, and reports
// the first place it departs from s. It returns v with integral floats in
// int positions rewritten as plain integers.
func (s *shape) check(v any, path string) (any, *SchemaValidationError) {
	switch s.kind {
	case shapeObject:
		obj, ok := v.(map[string]any)
		if !ok {
			return nil, kindMismatch(path, "object", v)
		}
		for _, f := range s.fields {
			fv, present := obj[f.name]
			if !present || fv == nil {
				if f.required {
					return nil, &SchemaValidationError{Field: joinPath(path, f.name), Reason: "required field missing"}
				}
				continue
			}
			norm, err := f.shape.check(fv, joinPath(path, f.name))
			if err != nil {
				return nil, err
			}
			obj[f.name] = norm
		}
		return obj, nil

	case shapeArray:
		arr, ok := v.([]any)
		if !ok {
			return nil, kindMismatch(path, "array", v)
		}
		for i, ev := range arr {
			elemPath := fmt.Sprintf("%s[%d]", path, i)
			if ev == nil {
				return nil, &SchemaValidationError{Field: elemPath, Reason: "required field missing"}
			}
			norm, err := s.elem.check(ev, elemPath)
			if err != nil {
				return nil, err
			}
			arr[i] = norm
		}
		return arr, nil

	case shapeString:
		if _, ok := v.(string); !ok {
			return nil, kindMismatch(path, "string", v)
		}
	case shapeBool:
		if _, ok := v.(bool); !ok {
			return nil, kindMismatch(path, "boolean", v)
		}
	case shapeInt:
		n, ok := v.(json.Number)
		if !ok {
			return nil, kindMismatch(path, "integer", v)
		}
		i, ok := integral(n)
		if !ok {
			return nil, &SchemaValidationError{Field: path, Reason: fmt.Sprintf("expected integer, got %s", n)}
		}
		return i, nil
	case shapeParticipant:
		switch v.(type) {
		case string:
			return v, nil
		case map[string]any:
			return s.elem.check(v, path)
		}
		return nil, kindMismatch(path, "string or object", v)
	}
	return v, nil
}

// integral accepts integer literals and floats with no fractional part that
// fit in an int64, so 1.7e9 becomes 1700000000.
func integral(n json.Number) (json.Number, bool) {
	if _, err := strconv.ParseInt(string(n), 10, 64); err == nil {
		return n, true
	}
	f, err := strconv.ParseFloat(string(n), 64)
	if err != nil || f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return "", false
	}
	return json.Number(strconv.FormatInt(int64(f), 10)), true
}

func kindMismatch(path, want string, got any) *SchemaValidationError {
	return &SchemaValidationError{Field: path, Reason: fmt.Sprintf("expected %s, got %s", want, jsonKind(got))}
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number, float64:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	}
	return fmt.Sprintf("%T", v)
}

func joinPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}
