package env

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrySetFromEnv(t *testing.T) {
	t.Setenv("BARGAIN_TEST_STRING", "from-env")

	val := "default"
	TrySetFromEnv("BARGAIN_TEST_STRING", &val)
	assert.Equal(t, "from-env", val)

	missing := "default"
	TrySetFromEnv("BARGAIN_TEST_MISSING", &missing)
	assert.Equal(t, "default", missing)
}

func TestTrySetIntFromEnv(t *testing.T) {
	type testCase struct {
		name        string
		envValue    *string
		expected    int
		expectedErr bool
	}

	valid := "7"
	invalid := "seven"

	tests := []testCase{
		{name: "value present", envValue: &valid, expected: 7},
		{name: "value missing", envValue: nil, expected: 3},
		{name: "value malformed", envValue: &invalid, expected: 3, expectedErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.envValue != nil {
				t.Setenv("BARGAIN_TEST_INT", *tt.envValue)
			}

			val := 3
			err := TrySetIntFromEnv("BARGAIN_TEST_INT", &val)

			if tt.expectedErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expected, val)
		})
	}
}

func TestTrySetDurationFromEnv(t *testing.T) {
	t.Setenv("BARGAIN_TEST_DURATION", "250ms")

	val := time.Second
	require.NoError(t, TrySetDurationFromEnv("BARGAIN_TEST_DURATION", &val))
	assert.Equal(t, 250*time.Millisecond, val)

	t.Setenv("BARGAIN_TEST_DURATION", "soon")
	assert.Error(t, TrySetDurationFromEnv("BARGAIN_TEST_DURATION", &val))
	assert.Equal(t, 250*time.Millisecond, val)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("BARGAIN_DOTENV_VALUE=loaded\n"), 0o600))

	t.Setenv("BARGAIN_DOTENV_VALUE", "")
	require.NoError(t, os.Unsetenv("BARGAIN_DOTENV_VALUE"))

	require.NoError(t, LoadDotEnv(path, filepath.Join(dir, "missing.env")))
	assert.Equal(t, "loaded", os.Getenv("BARGAIN_DOTENV_VALUE"))
}
