package parser_test

import (
	"testing"

	. "github.com/tobsdb/tobsorm/internal/parser"
	"github.com/tobsdb/tobsorm/internal/props"
	"github.com/tobsdb/tobsorm/internal/types"
	"gotest.tools/assert"
)

func TestLineParser(t *testing.T) {
	t.Run("model declaration", func(t *testing.T) {
		state, data, err := LineParser("$MODEL Person {")

		assert.NilError(t, err)
		assert.Equal(t, state, ParserStateModelStart)
		assert.Equal(t, data.Name, "Person")
	})

	t.Run("model missing name", func(t *testing.T) {
		state, _, err := LineParser("$MODEL {")

		assert.ErrorContains(t, err, "Invalid line")
		assert.Equal(t, state, ParserStateIdle)
	})

	t.Run("model declaration missing opening bracket", func(t *testing.T) {
		state, _, err := LineParser("$MODEL Person")

		assert.ErrorContains(t, err, "Invalid line")
		assert.Equal(t, state, ParserStateIdle)
	})

	t.Run("model name with space", func(t *testing.T) {
		state, _, err := LineParser("$MODEL Per son {")

		assert.ErrorContains(t, err, "Model name cannot include space")
		assert.Equal(t, state, ParserStateIdle)
	})

	t.Run("model name invalid character", func(t *testing.T) {
		state, _, err := LineParser("$MODEL Per-son {")

		assert.ErrorContains(t, err, "Model name contains invalid characters")
		assert.Equal(t, state, ParserStateIdle)
	})

	t.Run("model declaration end", func(t *testing.T) {
		state, _, err := LineParser("}")

		assert.NilError(t, err)
		assert.Equal(t, state, ParserStateModelEnd)
	})

	t.Run("field declaration", func(t *testing.T) {
		state, data, err := LineParser("age  Int default(0)")

		assert.NilError(t, err)
		assert.Equal(t, state, ParserStateNewField)
		assert.Equal(t, data.Name, "age")
		assert.Equal(t, data.Builtin_type, types.FieldTypeInt)
		assert.Equal(t, data.Properties[props.FieldPropDefault], "0")
	})

	t.Run("string default with spaces", func(t *testing.T) {
		_, data, err := LineParser(`name String default("John Doe") optional(true)`)

		assert.NilError(t, err)
		assert.Equal(t, data.Properties[props.FieldPropDefault], `"John Doe"`)
		assert.Equal(t, data.Properties[props.FieldPropOptional], "true")
	})

	t.Run("field name invalid character", func(t *testing.T) {
		state, _, err := LineParser("a-b Int")

		assert.ErrorContains(t, err, "Field name contains invalid characters")
		assert.Equal(t, state, ParserStateIdle)
	})

	t.Run("field declaration without type", func(t *testing.T) {
		state, _, err := LineParser("a")

		assert.ErrorContains(t, err, "Field a does not have a type")
		assert.Equal(t, state, ParserStateIdle)
	})

	t.Run("field declaration with unknown type", func(t *testing.T) {
		state, _, err := LineParser("a Number")

		assert.ErrorContains(t, err, "Invalid field type: Number")
		assert.Equal(t, state, ParserStateIdle)
	})

	t.Run("unknown field prop", func(t *testing.T) {
		state, _, err := LineParser("a Int unique(true)")

		assert.ErrorContains(t, err, "Invalid field prop: unique")
		assert.Equal(t, state, ParserStateIdle)
	})

	t.Run("field prop with no value", func(t *testing.T) {
		state, _, err := LineParser("a Int default()")

		assert.ErrorContains(t, err, "No value for prop: default")
		assert.Equal(t, state, ParserStateIdle)
	})

	t.Run("duplicate field prop", func(t *testing.T) {
		_, _, err := LineParser("a Int default(1) default(2)")

		assert.ErrorContains(t, err, "Duplicate field prop: default")
	})

	t.Run("invalid field prop value", func(t *testing.T) {
		state, _, err := LineParser("a Int optional(x)")

		assert.ErrorContains(t, err, "optional(x) is not a valid prop")
		assert.Equal(t, state, ParserStateIdle)
	})
}

func TestIsValidName(t *testing.T) {
	assert.Assert(t, IsValidName("first_name"))
	assert.Assert(t, IsValidName("_x1"))
	assert.Assert(t, !IsValidName("1x"))
	assert.Assert(t, !IsValidName(""))
}
