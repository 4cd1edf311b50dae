package formatters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeOptions(t *testing.T) {
	merged := MergeOptions(
		FormatOptions{Format: "pretty", NoColor: false},
		FormatOptions{NoColor: true},
		FormatOptions{Output: "drivers.json", JSON: true},
	)

	assert.Equal(t, "pretty", merged.Format)
	assert.True(t, merged.NoColor)
	assert.Equal(t, "drivers.json", merged.Output)
	assert.True(t, merged.JSON)
}

func TestMergeOptionsConfigDefaults(t *testing.T) {
	configOpts := FormatOptions{Format: "yaml", NoColor: true}

	t.Run("flag format wins over config", func(t *testing.T) {
		merged := MergeOptions(configOpts, FormatOptions{Format: "json"})
		assert.Equal(t, "json", merged.Format)
		assert.True(t, merged.NoColor)
	})

	t.Run("config format fills unset flag", func(t *testing.T) {
		merged := MergeOptions(configOpts, FormatOptions{})
		assert.Equal(t, "yaml", merged.Format)
	})

	t.Run("empty format falls back to pretty", func(t *testing.T) {
		merged := MergeOptions(FormatOptions{}, FormatOptions{})
		require.NoError(t, merged.ResolveFormat())

		if _, err := NewFormatManager().Format(merged.Format, nil); err != nil {
			t.Errorf("empty format should render: %v", err)
		}
	})
}

func TestResolveFormat(t *testing.T) {
	t.Run("flag overrides format", func(t *testing.T) {
		options := FormatOptions{Format: "pretty", YAML: true}
		require.NoError(t, options.ResolveFormat())
		assert.Equal(t, "yaml", options.Format)
	})

	t.Run("no flag keeps format", func(t *testing.T) {
		options := FormatOptions{Format: "csv"}
		require.NoError(t, options.ResolveFormat())
		assert.Equal(t, "csv", options.Format)
	})

	t.Run("multiple flags rejected", func(t *testing.T) {
		options := FormatOptions{JSON: true, Markdown: true}
		assert.Error(t, options.ResolveFormat())
	})
}
