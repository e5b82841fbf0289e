package mockmcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rangeArgs struct {
	Count int    `json:"count"`
	Label string `json:"label,omitempty"`
}

func (a rangeArgs) Validate() error {
	if a.Count < 0 || a.Count > 100 {
		return &ClientError{Reason: "count must be between 0 and 100", Err: ErrValidation}
	}
	return nil
}

func TestExtractor_Schema(t *testing.T) {
	ext, err := NewExtractor[rangeArgs](false)
	require.NoError(t, err)
	schema := ext.Schema()
	assert.Equal(t, "object", schema["type"])
	props, ok := schema["properties"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, props, "count")
	assert.Contains(t, props, "label")
}

func TestExtractor_ParseAndValidate(t *testing.T) {
	ext, err := NewExtractor[rangeArgs](false)
	require.NoError(t, err)

	t.Run("valid", func(t *testing.T) {
		args, err := ext.ParseAndValidate([]byte(`{"count": 5, "label": "x"}`))
		require.NoError(t, err)
		assert.Equal(t, 5, args.Count)
		assert.Equal(t, "x", args.Label)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := ext.ParseAndValidate([]byte(`{"count":`))
		require.Error(t, err)
		assert.True(t, IsClientError(err))
	})

	t.Run("wrong type rejected by schema", func(t *testing.T) {
		_, err := ext.ParseAndValidate([]byte(`{"count": "five"}`))
		require.Error(t, err)
		assert.True(t, IsClientError(err))
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("layer 2 rejects out of range", func(t *testing.T) {
		_, err := ext.ParseAndValidate([]byte(`{"count": 500}`))
		require.Error(t, err)
		assert.True(t, IsClientError(err))
		assert.ErrorIs(t, err, ErrValidation)
		assert.Contains(t, err.Error(), "between 0 and 100")
	})
}

type ptrRecvArgs struct {
	Name string `json:"name"`
}

func (a *ptrRecvArgs) Validate() error {
	if a.Name == "" {
		return &ClientError{Reason: "name must not be empty", Err: ErrValidation}
	}
	return nil
}

func TestExtractor_PointerReceiverValidate(t *testing.T) {
	ext, err := NewExtractor[ptrRecvArgs](false)
	require.NoError(t, err)
	_, err = ext.ParseAndValidate([]byte(`{"name": ""}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)

	args, err := ext.ParseAndValidate([]byte(`{"name": "ok"}`))
	require.NoError(t, err)
	assert.Equal(t, "ok", args.Name)
}

func TestExtractor_Strict(t *testing.T) {
	ext, err := NewExtractor[rangeArgs](true)
	require.NoError(t, err)

	_, err = ext.ParseAndValidate([]byte(`{"count": 1, "label": "x", "extra": true}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)

	// strict mode marks every property required
	_, err = ext.ParseAndValidate([]byte(`{"count": 1}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}
