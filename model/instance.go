package model

import (
	"fmt"
	"strings"

	"github.com/tobsdb/tobsorm/internal/types"
	"github.com/tobsdb/tobsorm/pkg"
)

// Values maps field names to the values written on construction or used as
// filter criteria.
type Values = map[string]any

var id_field = &Field{name: SYS_PRIMARY_KEY, builtinType: FieldTypeInt}

// Instance is one object of a model type. Its id is stored on the instance
// and assigned by the first save; 0 means unsaved. Instances come from
// Model.New; a zero Instance belongs to no model and cannot be read, written
// or saved.
type Instance struct {
	model  *Model
	id     int
	values pkg.Map[string, any]
}

func (i *Instance) Model() *Model { return i.model }

func (i *Instance) ID() (int, bool) { return i.id, i.id > 0 }

// Get reads a field, returning its default when the slot was never written.
func (i *Instance) Get(name string) (any, bool) {
	if i.model == nil {
		return nil, false
	}
	field := i.model.Field(name)
	if field == nil {
		return nil, false
	}
	if v, ok := i.values[name]; ok {
		return v, true
	}
	return field.def, true
}

// Set validates v against the named field and stores it. A failed write
// leaves the slot as it was.
func (i *Instance) Set(name string, v any) error {
	if i.model == nil {
		return &UnknownFieldError{Field: name}
	}
	field := i.model.Field(name)
	if field == nil {
		return &UnknownFieldError{Model: i.model.name, Field: name}
	}
	return i.set(field, v)
}

func (i *Instance) set(field *Field, v any) error {
	if err := field.Validate(v); err != nil {
		return err
	}
	i.values.Set(field.name, v)
	return nil
}

// Save stores the instance in its model's Manager.
func (i *Instance) Save() (*Instance, error) {
	if i.model == nil {
		return nil, &TypeMismatchError{Expected: "model", Actual: types.TypeName(nil)}
	}
	return i.model.objects.Save(i)
}

func (i *Instance) matches(key string, want any) bool {
	if key == SYS_PRIMARY_KEY {
		id, ok := i.ID()
		return ok && id_field.Compare(id, want)
	}
	field := i.model.Field(key)
	if field == nil {
		return false
	}
	got, _ := i.Get(key)
	return field.Compare(got, want)
}

func (i *Instance) String() string {
	if i.model == nil {
		return "Unsaved"
	}
	if id, ok := i.ID(); ok {
		return fmt.Sprintf("%s (%d)", i.model.name, id)
	}
	return "Unsaved " + i.model.name
}

// GoString lists every declared field with its current value.
func (i *Instance) GoString() string {
	if i.model == nil {
		return "Instance()"
	}
	parts := make([]string, 0, i.model.fields.Len())
	for _, name := range i.model.fields.Sorted {
		v, _ := i.Get(name)
		parts = append(parts, name+"="+formatValue(v))
	}
	return fmt.Sprintf("%s(%s)", i.model.name, strings.Join(parts, ", "))
}

func formatValue(v any) string {
	switch v := v.(type) {
	case nil:
		return "nil"
	case string:
		return fmt.Sprintf("%q", v)
	}
	return fmt.Sprintf("%v", v)
}

// Value reads a field as T. ok is false when the field is undeclared or the
// stored value is not a T.
func Value[T any](inst *Instance, name string) (T, bool) {
	v, ok := inst.Get(name)
	if !ok {
		var zero T
		return zero, false
	}
	t, ok := v.(T)
	return t, ok
}
