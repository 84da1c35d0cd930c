package canonical

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalSortsObjectKeys(t *testing.T) {
	a, err := Marshal(map[string]any{"b": 1, "a": 2, "c": 3})
	require.NoError(t, err)
	assert.Equal(t, `{"a":2,"b":1,"c":3}`, string(a))
}

func TestMarshalIsOrderIndependent(t *testing.T) {
	first, err := Marshal(map[string]any{"z": 1, "y": 2, "x": 3})
	require.NoError(t, err)

	second, err := Marshal(map[string]any{"x": 3, "z": 1, "y": 2})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestMarshalPreservesArrayOrder(t *testing.T) {
	out, err := Marshal(map[string]any{"list": []any{"c", "b", "a"}})
	require.NoError(t, err)
	assert.Equal(t, `{"list":["c","b","a"]}`, string(out))
}

func TestMarshalNested(t *testing.T) {
	type subject struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	type doc struct {
		Z string  `json:"z"`
		A subject `json:"a"`
	}

	out, err := Marshal(doc{Z: "zval", A: subject{ID: "1", Name: "n"}})
	require.NoError(t, err)
	assert.Equal(t, `{"a":{"id":"1","name":"n"},"z":"zval"}`, string(out))
}

func TestMarshalIsIdempotent(t *testing.T) {
	first, err := Marshal(map[string]any{"a": map[string]any{"d": 1, "c": 2}, "b": []any{1, 2, 3}})
	require.NoError(t, err)

	var decoded any
	require.NoError(t, json.Unmarshal(first, &decoded))

	second, err := Marshal(decoded)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
