package model

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/tobsdb/tobsorm/internal/parser"
	"github.com/tobsdb/tobsorm/internal/props"
	"github.com/tobsdb/tobsorm/pkg"
)

type LogOptions struct {
	Should_log      bool
	Show_debug_logs bool
}

type Options struct {
	Log LogOptions
	// StrictValues rejects construction values for undeclared fields
	// instead of ignoring them.
	StrictValues bool
}

// Schema is an ordered registry of model types by name.
type Schema struct {
	Models  *pkg.InsertSortMap[string, *Model]
	options Options
}

func NewSchema(options Options) *Schema {
	if options.Log.Should_log {
		if options.Log.Show_debug_logs {
			pkg.SetLogLevel(pkg.LogLevelDebug)
		} else {
			pkg.SetLogLevel(pkg.LogLevelErrOnly)
		}
	} else {
		pkg.SetLogLevel(pkg.LogLevelNone)
	}

	return &Schema{Models: pkg.NewInsertSortMap[string, *Model](), options: options}
}

// Define assembles a model and registers it under name.
func (s *Schema) Define(name string, decls ...Declaration) (*Model, error) {
	if s.Models.Has(name) {
		return nil, errors.Errorf("Duplicate model %s", name)
	}

	m, err := NewModel(name, decls...)
	if err != nil {
		return nil, err
	}
	m.schema = s
	m.strict = s.options.StrictValues
	s.Models.Push(name, m)
	return m, nil
}

func (s *Schema) Model(name string) *Model { return s.Models.Get(name) }

func (s *Schema) Len() int { return s.Models.Len() }

// ParseSchema builds a schema from declaration text:
//
//	$MODEL Person {
//	    name String
//	    age  Int default(0)
//	}
func ParseSchema(schema_data string, options Options) (*Schema, error) {
	schema := NewSchema(options)

	scanner := bufio.NewScanner(strings.NewReader(schema_data))
	line_idx := 0
	model_line := 0

	var current_name string
	var current_decls []Declaration
	in_model := false

	for scanner.Scan() {
		line_idx++
		line := strings.TrimSpace(scanner.Text())

		// Ignore empty lines & comments
		if len(line) == 0 || strings.HasPrefix(line, "//") {
			continue
		}

		state, data, err := parser.LineParser(line)
		if err != nil {
			return nil, ParseLineError(line_idx, err.Error())
		}

		switch state {
		case parser.ParserStateModelStart:
			if in_model {
				return nil, ParseLineError(line_idx, fmt.Sprintf("Model %s is not closed", current_name))
			}
			if schema.Models.Has(data.Name) {
				return nil, ParseLineError(line_idx, fmt.Sprintf("Duplicate model %s", data.Name))
			}
			in_model = true
			model_line = line_idx
			current_name = data.Name
			current_decls = []Declaration{}
		case parser.ParserStateModelEnd:
			if !in_model {
				return nil, ParseLineError(line_idx, "Unexpected }")
			}
			if _, err := schema.Define(current_name, current_decls...); err != nil {
				return nil, ParseLineError(model_line, err.Error())
			}
			in_model = false
		case parser.ParserStateNewField:
			if !in_model {
				return nil, ParseLineError(line_idx, fmt.Sprintf("Field %s is outside a model", data.Name))
			}
			if _, dup := pkg.Find(current_decls, func(d Declaration) bool { return d.Name == data.Name }); dup {
				return nil, ParseLineError(line_idx, fmt.Sprintf("Duplicate field %s", data.Name))
			}
			field, err := fieldFromParserData(data)
			if err != nil {
				return nil, ParseLineError(line_idx, err.Error())
			}
			current_decls = append(current_decls, Declare(data.Name, field))
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading schema")
	}
	if in_model {
		return nil, ParseLineError(model_line, fmt.Sprintf("Model %s is not closed", current_name))
	}

	return schema, nil
}

func fieldFromParserData(data *parser.ParserData) (*Field, error) {
	field := NewField(data.Builtin_type)

	if raw, ok := data.Properties[props.FieldPropDefault]; ok {
		v, err := props.ParseDefaultPropSafe(data.Builtin_type, raw)
		if err != nil {
			return nil, err
		}
		field = field.Default(v)
	}

	if raw, ok := data.Properties[props.FieldPropOptional]; ok {
		optional, err := props.ParseOptionalPropSafe(raw)
		if err != nil {
			return nil, err
		}
		if optional {
			field = field.Optional()
		}
	}

	return field, nil
}
