package generator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	t.Run("all settings", func(t *testing.T) {
		cfg, err := ParseConfig([]byte(`
dir: ./models
types: [Wrapper, Box]
output: wrappers_gen.go
read_method: Get
write_method: GetMut
strict: true
debug: true
concurrency: 4
`))
		require.NoError(t, err)
		assert.Equal(t, Config{
			Dir:         "./models",
			Types:       []string{"Wrapper", "Box"},
			Output:      "wrappers_gen.go",
			ReadMethod:  "Get",
			WriteMethod: "GetMut",
			Strict:      true,
			Debug:       true,
			Concurrency: 4,
		}, cfg)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := ParseConfig([]byte("types: [unterminated"))
		require.Error(t, err)
	})

	t.Run("load from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "derefgen.yaml")
		require.NoError(t, os.WriteFile(path, []byte("output: x_gen.go\n"), 0o644))
		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "x_gen.go", cfg.Output)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
	})
}

func TestConfigDefaultsAndValidation(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		var cfg Config
		cfg.applyDefaults()
		assert.Equal(t, ".", cfg.Dir)
		assert.Equal(t, "deref_gen.go", cfg.Output)
		assert.Equal(t, "Deref", cfg.ReadMethod)
		assert.Equal(t, "DerefMut", cfg.WriteMethod)
		require.NoError(t, cfg.validate())
	})

	tests := []struct {
		name string
		cfg  Config
	}{
		{name: "same method names", cfg: Config{ReadMethod: "Get", WriteMethod: "Get"}},
		{name: "invalid read method", cfg: Config{ReadMethod: "1st", WriteMethod: "Mut"}},
		{name: "blank write method", cfg: Config{ReadMethod: "Get", WriteMethod: "_"}},
		{name: "invalid type name", cfg: Config{ReadMethod: "Get", WriteMethod: "Mut", Types: []string{"pkg.Type"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Error(t, tt.cfg.validate())
		})
	}
}
