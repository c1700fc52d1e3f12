package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStringParam(t *testing.T) {
	params := map[string]interface{}{
		"name":  "test",
		"empty": "",
	}

	t.Run("existing required param", func(t *testing.T) {
		val, err := GetStringParam(params, "name", true)
		require.NoError(t, err)
		assert.Equal(t, "test", val)
	})

	t.Run("missing required param", func(t *testing.T) {
		_, err := GetStringParam(params, "missing", true)
		assert.Error(t, err)
	})

	t.Run("missing optional param", func(t *testing.T) {
		val, err := GetStringParam(params, "missing", false)
		require.NoError(t, err)
		assert.Equal(t, "", val)
	})

	t.Run("wrong type", func(t *testing.T) {
		params["num"] = 123
		_, err := GetStringParam(params, "num", true)
		assert.Error(t, err)
	})
}

func TestGetIntParam(t *testing.T) {
	params := map[string]interface{}{
		"count": float64(42),
	}

	t.Run("json number decodes to int", func(t *testing.T) {
		val, err := GetIntParam(params, "count", true, 0)
		require.NoError(t, err)
		assert.Equal(t, 42, val)
	})

	t.Run("missing required param", func(t *testing.T) {
		_, err := GetIntParam(params, "missing", true, 0)
		assert.Error(t, err)
	})

	t.Run("missing optional param uses default", func(t *testing.T) {
		val, err := GetIntParam(params, "missing", false, 100)
		require.NoError(t, err)
		assert.Equal(t, 100, val)
	})

	t.Run("wrong type", func(t *testing.T) {
		params["text"] = "not a number"
		_, err := GetIntParam(params, "text", true, 0)
		assert.Error(t, err)
	})
}

func TestGetBoolParam(t *testing.T) {
	params := map[string]interface{}{
		"flag": true,
	}

	t.Run("existing param", func(t *testing.T) {
		val, err := GetBoolParam(params, "flag", false)
		require.NoError(t, err)
		assert.True(t, val)
	})

	t.Run("missing param uses default", func(t *testing.T) {
		val, err := GetBoolParam(params, "missing", true)
		require.NoError(t, err)
		assert.True(t, val)
	})

	t.Run("wrong type", func(t *testing.T) {
		params["text"] = "yes"
		_, err := GetBoolParam(params, "text", false)
		assert.Error(t, err)
	})
}

func TestGetStringArrayParam(t *testing.T) {
	params := map[string]interface{}{
		"ids": []interface{}{"111", "222"},
	}

	t.Run("existing param", func(t *testing.T) {
		val, err := GetStringArrayParam(params, "ids", true)
		require.NoError(t, err)
		assert.Equal(t, []string{"111", "222"}, val)
	})

	t.Run("missing required param", func(t *testing.T) {
		_, err := GetStringArrayParam(params, "missing", true)
		assert.Error(t, err)
	})

	t.Run("missing optional param", func(t *testing.T) {
		val, err := GetStringArrayParam(params, "missing", false)
		require.NoError(t, err)
		assert.Nil(t, val)
	})

	t.Run("non-string element", func(t *testing.T) {
		params["mixed"] = []interface{}{"one", 2}
		_, err := GetStringArrayParam(params, "mixed", true)
		assert.Error(t, err)
	})
}

func TestGetIntArrayParam(t *testing.T) {
	params := map[string]interface{}{
		"quantities": []interface{}{float64(2), float64(5)},
	}

	t.Run("json numbers decode to ints", func(t *testing.T) {
		val, err := GetIntArrayParam(params, "quantities", true)
		require.NoError(t, err)
		assert.Equal(t, []int{2, 5}, val)
	})

	t.Run("missing optional param", func(t *testing.T) {
		val, err := GetIntArrayParam(params, "missing", false)
		require.NoError(t, err)
		assert.Nil(t, val)
	})

	t.Run("non-numeric element", func(t *testing.T) {
		params["mixed"] = []interface{}{float64(1), "two"}
		_, err := GetIntArrayParam(params, "mixed", true)
		assert.Error(t, err)
	})

	t.Run("not an array", func(t *testing.T) {
		params["scalar"] = float64(3)
		_, err := GetIntArrayParam(params, "scalar", true)
		assert.Error(t, err)
	})
}
