package model

import (
	"github.com/pkg/errors"

	"github.com/tobsdb/tobsorm/internal/types"
)

type FieldType = types.FieldType

const (
	FieldTypeString = types.FieldTypeString
	FieldTypeInt    = types.FieldTypeInt
	FieldTypeFloat  = types.FieldTypeFloat
	FieldTypeBool   = types.FieldTypeBool
)

// Field is a typed, defaulted slot declared on a model. Its name is bound
// when the owning model is assembled and never changes afterwards.
type Field struct {
	name        string
	builtinType FieldType
	def         any
	optional    bool
}

func NewField(builtin_type FieldType) *Field {
	return &Field{builtinType: builtin_type}
}

func StringField() *Field { return NewField(FieldTypeString) }
func IntegerField() *Field { return NewField(FieldTypeInt) }
func FloatField() *Field { return NewField(FieldTypeFloat) }
func BoolField() *Field { return NewField(FieldTypeBool) }

// Default returns an unbound copy of f with v as its default value.
func (f *Field) Default(v any) *Field {
	c := *f
	c.name = ""
	c.def = v
	return &c
}

// Optional returns an unbound copy of f that also accepts nil.
func (f *Field) Optional() *Field {
	c := *f
	c.name = ""
	c.optional = true
	return &c
}

func (f *Field) Name() string { return f.name }
func (f *Field) BuiltinType() FieldType { return f.builtinType }
func (f *Field) DefaultValue() any { return f.def }
func (f *Field) IsOptional() bool { return f.optional }

func (f *Field) Validate(v any) error {
	if v == nil && f.optional {
		return nil
	}
	if !f.builtinType.Accepts(v) {
		return &TypeMismatchError{
			Field:    f.name,
			Expected: f.builtinType.Describe(),
			Actual:   types.TypeName(v),
		}
	}
	return nil
}

// Compare reports whether a stored value equals input. Integers of different
// Go kinds compare by value; input that fails validation never matches.
func (f *Field) Compare(value, input any) bool {
	if input == nil {
		return value == nil
	}
	if value == nil || !f.builtinType.Accepts(input) {
		return false
	}

	switch f.builtinType {
	case types.FieldTypeInt:
		return types.IntEqual(value, input)
	case types.FieldTypeFloat:
		return toFloat64(value) == toFloat64(input)
	default:
		return value == input
	}
}

func toFloat64(v any) float64 {
	switch v := v.(type) {
	case float32:
		return float64(v)
	case float64:
		return v
	}
	return 0
}

// field rules:
// - builtin type must be one of the supported types
// - a non-nil default must pass the field's own validation
func CheckFieldRules(field *Field) error {
	if !field.builtinType.IsValid() {
		return errors.Errorf("field(%s %s) has an unsupported type", field.name, field.builtinType)
	}

	if field.def != nil {
		if err := field.Validate(field.def); err != nil {
			return errors.Wrapf(err, "field(%s %s) has an invalid default", field.name, field.builtinType)
		}
	}

	return nil
}
