package types

import (
	"fmt"
	"math"
	"reflect"
	"slices"
)

var VALID_BUILTIN_TYPES = []FieldType{
	FieldTypeString, FieldTypeInt, FieldTypeFloat, FieldTypeBool,
}

type FieldType string

const (
	FieldTypeString FieldType = "String"
	FieldTypeInt    FieldType = "Int"
	FieldTypeFloat  FieldType = "Float"
	FieldTypeBool   FieldType = "Bool"
)

func (t FieldType) IsValid() bool {
	return slices.Contains(VALID_BUILTIN_TYPES, t)
}

// Describe names the type the way validation errors report it.
func (t FieldType) Describe() string {
	switch t {
	case FieldTypeString:
		return "a string"
	case FieldTypeInt:
		return "an integer"
	case FieldTypeFloat:
		return "a float"
	case FieldTypeBool:
		return "a boolean"
	}
	return string(t)
}

// Accepts reports whether v is a Go value of type t. nil is never accepted.
func (t FieldType) Accepts(v any) bool {
	switch t {
	case FieldTypeString:
		_, ok := v.(string)
		return ok
	case FieldTypeInt:
		return IsInteger(v)
	case FieldTypeFloat:
		switch v.(type) {
		case float32, float64:
			return true
		}
	case FieldTypeBool:
		_, ok := v.(bool)
		return ok
	}
	return false
}

func IsInteger(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	}
	return false
}

// IntEqual compares two integer values of any Go integer kind by numeric value.
func IntEqual(a, b any) bool {
	av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
	if av.CanInt() && bv.CanInt() {
		return av.Int() == bv.Int()
	}
	if av.CanUint() && bv.CanUint() {
		return av.Uint() == bv.Uint()
	}
	if av.CanUint() {
		av, bv = bv, av
	}
	// av signed, bv unsigned
	if av.Int() < 0 || bv.Uint() > math.MaxInt64 {
		return false
	}
	return uint64(av.Int()) == bv.Uint()
}

// TypeName is the name of v's dynamic type as reported in errors.
func TypeName(v any) string {
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", v)
}
