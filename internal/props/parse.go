package props

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/tobsdb/tobsorm/internal/types"
)

// ParseDefaultPropSafe converts the literal of a default(...) prop into a
// value of the field's builtin type. String literals must be quoted with " or '.
func ParseDefaultPropSafe(builtin_type types.FieldType, value string) (any, error) {
	value = strings.TrimSpace(value)
	switch builtin_type {
	case types.FieldTypeString:
		if len(value) < 2 || value[0] != value[len(value)-1] || (value[0] != '"' && value[0] != '\'') {
			return nil, errors.Errorf("default(%s) is not a valid prop; String defaults must be quoted", value)
		}
		return value[1 : len(value)-1], nil
	case types.FieldTypeInt:
		v, err := strconv.ParseInt(value, 10, 0)
		if err != nil {
			return nil, errors.Wrapf(err, "default(%s) is not a valid prop", value)
		}
		return int(v), nil
	case types.FieldTypeFloat:
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "default(%s) is not a valid prop", value)
		}
		return v, nil
	case types.FieldTypeBool:
		v, err := strconv.ParseBool(value)
		if err != nil {
			return nil, errors.Wrapf(err, "default(%s) is not a valid prop", value)
		}
		return v, nil
	}
	return nil, errors.Errorf("default(%s) is not a valid prop; %s is not a valid type", value, builtin_type)
}

func ParseOptionalPropSafe(value string) (bool, error) {
	v, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return false, errors.Errorf("Invalid syntax: optional(%s)", value)
	}
	return v, nil
}
