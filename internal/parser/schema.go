package parser

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"

	"github.com/tobsdb/tobsorm/internal/props"
	"github.com/tobsdb/tobsorm/internal/types"
	"github.com/tobsdb/tobsorm/pkg"
)

type LineParserState int

const (
	ParserStateModelStart LineParserState = iota
	ParserStateModelEnd
	ParserStateNewField
	ParserStateIdle
)

type ParserData struct {
	Name         string
	Builtin_type types.FieldType
	Properties   map[props.FieldProp]string
}

const (
	model_prefix     = "$MODEL "
	model_prefix_len = len(model_prefix)
)

var (
	name_regexp = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	prop_regexp = regexp.MustCompile(`(\w+)\(([^)]*)\)`)
)

func IsValidName(name string) bool { return name_regexp.MatchString(name) }

func LineParser(line string) (LineParserState, *ParserData, error) {
	if strings.HasPrefix(line, model_prefix) {
		line := strings.TrimSpace(line[model_prefix_len:])
		name_end := strings.Index(line, " ")
		if name_end <= 0 {
			return ParserStateIdle, nil, errors.New("Invalid line")
		}

		open_bracket := strings.TrimSpace(line[name_end:])
		if open_bracket != "{" {
			return ParserStateIdle, nil, errors.New("Model name cannot include space")
		}
		name := line[:name_end]
		if !IsValidName(name) {
			return ParserStateIdle, nil, errors.New("Model name contains invalid characters")
		}
		return ParserStateModelStart, &ParserData{Name: name}, nil
	}

	if line == "}" {
		return ParserStateModelEnd, nil, nil
	}

	splits := strings.Split(line, " ")
	splits = pkg.Filter(splits, func(s string) bool { return len(s) > 0 })
	if len(splits) == 0 {
		return ParserStateIdle, nil, errors.New("Invalid line")
	}
	if !IsValidName(splits[0]) {
		return ParserStateIdle, nil, errors.New("Field name contains invalid characters")
	}
	if len(splits) < 2 {
		return ParserStateIdle, nil, errors.Errorf("Field %s does not have a type", splits[0])
	}

	builtin_type := types.FieldType(splits[1])
	if err := validateFieldType(builtin_type); err != nil {
		return ParserStateIdle, nil, err
	}

	field_props, err := parseRawFieldProps(strings.Join(splits[2:], " "))
	if err != nil {
		return ParserStateIdle, nil, err
	}

	return ParserStateNewField, &ParserData{
		Name:         splits[0],
		Builtin_type: builtin_type,
		Properties:   field_props,
	}, nil
}

func parseRawFieldProps(raw string) (map[props.FieldProp]string, error) {
	field_props := make(map[props.FieldProp]string)

	for _, match := range prop_regexp.FindAllStringSubmatch(raw, -1) {
		prop, value := props.FieldProp(match[1]), strings.TrimSpace(match[2])
		if !prop.IsValid() {
			return nil, errors.Errorf("Invalid field prop: %s", prop)
		}
		if len(value) == 0 {
			return nil, errors.Errorf("No value for prop: %s", prop)
		}
		if _, exists := field_props[prop]; exists {
			return nil, errors.Errorf("Duplicate field prop: %s", prop)
		}
		if prop == props.FieldPropOptional {
			if _, err := props.ParseOptionalPropSafe(value); err != nil {
				return nil, errors.Errorf("optional(%s) is not a valid prop", value)
			}
		}
		field_props[prop] = value
	}

	return field_props, nil
}

func validateFieldType(builtin_type types.FieldType) error {
	if !builtin_type.IsValid() {
		return errors.Errorf("Invalid field type: %s", builtin_type)
	}
	return nil
}
