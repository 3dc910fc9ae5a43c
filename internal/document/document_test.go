package document_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-fn-utils/internal/document"
)

func TestDecode_JSON(t *testing.T) {
	v, err := document.Decode(strings.NewReader(`{"a":{"b":[1,2]}}`), document.FormatAuto)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": map[string]any{"b": []any{1.0, 2.0}}}, v)
}

func TestDecode_YAMLMatchesJSON(t *testing.T) {
	yamlDoc := "a:\n  b:\n    - 1\n    - 2\n  name: x\n  ok: true\n"
	jsonDoc := `{"a":{"b":[1,2],"name":"x","ok":true}}`

	fromYAML, err := document.Decode(strings.NewReader(yamlDoc), document.FormatYAML)
	require.NoError(t, err)
	fromJSON, err := document.Decode(strings.NewReader(jsonDoc), document.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, fromJSON, fromYAML)
}

func TestDecode_AutoSniffsYAML(t *testing.T) {
	v, err := document.Decode(strings.NewReader("- make: tesla\n- make: ford\n"), document.FormatAuto)
	require.NoError(t, err)
	assert.Equal(t, []any{
		map[string]any{"make": "tesla"},
		map[string]any{"make": "ford"},
	}, v)
}

func TestDecode_Errors(t *testing.T) {
	_, err := document.Decode(strings.NewReader("   \n"), document.FormatAuto)
	assert.ErrorIs(t, err, document.ErrEmptyInput)

	_, err = document.Decode(strings.NewReader(`{"a":`), document.FormatJSON)
	assert.Error(t, err)

	_, err = document.DecodeBytes([]byte(`1`), document.Format("toml"))
	assert.ErrorIs(t, err, document.ErrUnknownFormat)
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]document.Format{
		"":     document.FormatAuto,
		"JSON": document.FormatJSON,
		"yml":  document.FormatYAML,
		"yaml": document.FormatYAML,
	} {
		got, err := document.ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := document.ParseFormat("xml")
	assert.ErrorIs(t, err, document.ErrUnknownFormat)
}

func TestDetectFormat(t *testing.T) {
	assert.Equal(t, document.FormatJSON, document.DetectFormat("cars.json"))
	assert.Equal(t, document.FormatYAML, document.DetectFormat("cars.YML"))
	assert.Equal(t, document.FormatAuto, document.DetectFormat("-"))
}

func TestDecodeOrdered_JSONKeepsMemberOrder(t *testing.T) {
	v, err := document.DecodeOrdered(strings.NewReader(`{"zeta":{"b":1,"a":[true,null]},"alpha":"x"}`), document.FormatAuto)
	require.NoError(t, err)

	obj, ok := v.(*document.Object)
	require.True(t, ok, "got %T", v)
	assert.Equal(t, []string{"zeta", "alpha"}, obj.Keys())

	zeta, _ := obj.Get("zeta")
	inner, ok := zeta.(*document.Object)
	require.True(t, ok)
	assert.Equal(t, []string{"b", "a"}, inner.Keys())

	assert.Equal(t, map[string]any{
		"zeta":  map[string]any{"b": 1.0, "a": []any{true, nil}},
		"alpha": "x",
	}, document.Plain(v))
}

func TestDecodeOrdered_YAMLKeepsMemberOrder(t *testing.T) {
	v, err := document.DecodeOrdered(strings.NewReader("zeta:\n  n: 1\nalpha:\n  - k: v\n"), document.FormatYAML)
	require.NoError(t, err)

	obj, ok := v.(*document.Object)
	require.True(t, ok, "got %T", v)
	assert.Equal(t, []string{"zeta", "alpha"}, obj.Keys())
	assert.Equal(t, map[string]any{
		"zeta":  map[string]any{"n": 1.0},
		"alpha": []any{map[string]any{"k": "v"}},
	}, document.Plain(v))
}

func TestDecodeOrdered_Errors(t *testing.T) {
	_, err := document.DecodeOrdered(strings.NewReader(" "), document.FormatJSON)
	assert.ErrorIs(t, err, document.ErrEmptyInput)

	_, err = document.DecodeOrdered(strings.NewReader(`{"a":`), document.FormatJSON)
	assert.Error(t, err)

	_, err = document.DecodeOrdered(strings.NewReader(`[1]`), document.Format("toml"))
	assert.ErrorIs(t, err, document.ErrUnknownFormat)
}
