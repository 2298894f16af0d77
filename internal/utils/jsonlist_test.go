package utils

import (
	"database/sql"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrings_ListUnchanged(t *testing.T) {
	in := []string{"wifi", "ar-condicionado", "maca"}
	assert.Equal(t, in, Strings(in))
}

func TestStrings_AnyList(t *testing.T) {
	assert.Equal(t, []string{"a", "2"}, Strings([]any{"a", float64(2)}))
}

func TestStrings_JSONString(t *testing.T) {
	assert.Equal(t, []string{"psicologia", "nutricao"}, Strings(`["psicologia","nutricao"]`))
	assert.Equal(t, []string{"x"}, Strings([]byte(`["x"]`)))
	assert.Equal(t, []string{"y"}, Strings(json.RawMessage(`["y"]`)))
	assert.Equal(t, []string{"z"}, Strings(sql.NullString{String: `["z"]`, Valid: true}))
}

func TestStrings_DoubleEncoded(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, Strings(`"[\"a\",\"b\"]"`))
}

func TestStrings_MalformedIsEmpty(t *testing.T) {
	for _, in := range []string{"", "not json", `["unterminated`, `{"a":1}`, `"plain"`, `42`} {
		out := Strings(in)
		assert.NotNil(t, out, in)
		assert.Empty(t, out, in)
	}
}

func TestStrings_OtherTypesAreEmpty(t *testing.T) {
	var nilStr *string
	for _, in := range []any{nil, 3, 4.5, true, sql.NullString{}, nilStr, map[string]any{"a": 1}} {
		out := Strings(in)
		assert.NotNil(t, out)
		assert.Empty(t, out)
	}
}

func TestValidSlug(t *testing.T) {
	assert.True(t, ValidSlug("como-montar-seu-consultorio"))
	assert.False(t, ValidSlug(""))
	assert.False(t, ValidSlug("  "))
	assert.False(t, ValidSlug("undefined"))
	assert.False(t, ValidSlug("null"))
}

func TestDecodeSlug(t *testing.T) {
	s, ok := DecodeSlug("sa%C3%BAde-mental")
	assert.True(t, ok)
	assert.Equal(t, "saúde-mental", s)

	_, ok = DecodeSlug("%zz")
	assert.False(t, ok)
	_, ok = DecodeSlug("undefined")
	assert.False(t, ok)
	_, ok = DecodeSlug("a%2Fb")
	assert.False(t, ok)
}
