// Package model declares validated model types and keeps their saved
// instances in per-model, append-only, in-memory stores.
package model

import (
	"github.com/pkg/errors"

	"github.com/tobsdb/tobsorm/internal/parser"
	"github.com/tobsdb/tobsorm/pkg"
)

// SYS_PRIMARY_KEY is the reserved name of the instance identifier.
const SYS_PRIMARY_KEY = "id"

// Declaration pairs a field with the name it is declared under.
type Declaration struct {
	Name  string
	Field *Field
}

func Declare(name string, field *Field) Declaration {
	return Declaration{Name: name, Field: field}
}

// Model is a model type: an ordered name -> Field table and the one
// Manager that stores its saved instances.
type Model struct {
	name    string
	fields  *pkg.InsertSortMap[string, *Field]
	objects *Manager
	strict  bool

	schema *Schema
}

// NewModel assembles a model type from its declarations. Each field's name is
// bound here; a field can only be bound once.
func NewModel(name string, decls ...Declaration) (*Model, error) {
	if !parser.IsValidName(name) {
		return nil, errors.Errorf("invalid model name %q", name)
	}

	m := &Model{name: name, fields: pkg.NewInsertSortMap[string, *Field]()}
	for _, decl := range decls {
		if err := m.bind(decl); err != nil {
			m.unbind()
			return nil, errors.Wrapf(err, "model %s", name)
		}
	}
	m.objects = newManager(m)

	pkg.DebugLog("defined model", name, "with fields", m.fields.Sorted)
	return m, nil
}

func (m *Model) bind(decl Declaration) error {
	if decl.Field == nil {
		return errors.Errorf("field %s is nil", decl.Name)
	}
	if !parser.IsValidName(decl.Name) {
		return errors.Errorf("invalid field name %q", decl.Name)
	}
	if decl.Name == SYS_PRIMARY_KEY {
		return errors.Errorf("field name %s is reserved", SYS_PRIMARY_KEY)
	}
	if m.fields.Has(decl.Name) {
		return errors.Errorf("Duplicate field %s", decl.Name)
	}
	if decl.Field.name != "" {
		return errors.Errorf("field %s is already bound as %s", decl.Name, decl.Field.name)
	}

	decl.Field.name = decl.Name
	if err := CheckFieldRules(decl.Field); err != nil {
		decl.Field.name = ""
		return err
	}
	m.fields.Push(decl.Name, decl.Field)
	return nil
}

// unbind releases every field bound so far so a failed assembly leaves
// them reusable.
func (m *Model) unbind() {
	for _, field := range m.fields.Values() {
		field.name = ""
	}
}

func (m *Model) Name() string { return m.name }

// Fields returns the declared fields in declaration order.
func (m *Model) Fields() []*Field { return m.fields.Values() }

func (m *Model) Field(name string) *Field { return m.fields.Get(name) }

func (m *Model) HasField(name string) bool { return m.fields.Has(name) }

// Objects is the model's Manager.
func (m *Model) Objects() *Manager { return m.objects }

// Schema is nil for models assembled outside a schema.
func (m *Model) Schema() *Schema { return m.schema }

// New constructs an instance, writing each declared field from values or
// from the field's default through validation. Names in values that the model
// does not declare are ignored with a warning, or rejected when the model's
// schema was built with StrictValues.
func (m *Model) New(values Values) (*Instance, error) {
	for key := range values {
		if m.fields.Has(key) {
			continue
		}
		if m.strict {
			return nil, &UnknownFieldError{Model: m.name, Field: key}
		}
		pkg.WarnLog("ignoring unknown field", key, "for model", m.name)
	}

	inst := &Instance{model: m, values: pkg.Map[string, any]{}}
	for _, field := range m.Fields() {
		v, ok := values[field.name]
		if !ok {
			v = field.def
		}
		if err := inst.set(field, v); err != nil {
			return nil, err
		}
	}
	return inst, nil
}
