package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalErrors "github.com/gcbaptista/go-text-toolkit/internal/errors"
	testutil "github.com/gcbaptista/go-text-toolkit/internal/testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	return testutil.WriteTempFile(t, "textproc.toml", content)
}

func TestDefault(t *testing.T) {
	s := Default()

	assert.Equal(t, "8080", s.Port)
	assert.Equal(t, 10, s.DefaultMaxResults)
	assert.Equal(t, 10, s.DefaultKeywordLimit)
	assert.Equal(t, 1000, s.MaxResultsCap)
	assert.Equal(t, int64(1<<20), s.MaxRequestBytes)
	assert.Equal(t, "release", s.GinMode)
	assert.Empty(t, s.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name           string
		modify         func(s *Settings)
		expectedErrors int
	}{
		{
			name:           "defaults are valid",
			modify:         func(s *Settings) {},
			expectedErrors: 0,
		},
		{
			name:           "non-numeric port",
			modify:         func(s *Settings) { s.Port = "http" },
			expectedErrors: 1,
		},
		{
			name:           "port out of range",
			modify:         func(s *Settings) { s.Port = "70000" },
			expectedErrors: 1,
		},
		{
			name:           "default limit above cap",
			modify:         func(s *Settings) { s.DefaultMaxResults = 5000 },
			expectedErrors: 1,
		},
		{
			name: "several problems are all reported",
			modify: func(s *Settings) {
				s.MaxRequestBytes = -1
				s.GinMode = "verbose"
				s.DefaultKeywordLimit = -2
			},
			expectedErrors: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Default()
			tt.modify(&s)
			problems := s.Validate()
			assert.Len(t, problems, tt.expectedErrors, "problems: %v", problems)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("empty path returns defaults", func(t *testing.T) {
		s, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, Default(), s)
	})

	t.Run("file values override defaults", func(t *testing.T) {
		path := writeConfig(t, `
port = "9090"
default_max_results = 25
gin_mode = "debug"
`)
		s, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "9090", s.Port)
		assert.Equal(t, 25, s.DefaultMaxResults)
		assert.Equal(t, "debug", s.GinMode)
		assert.Equal(t, 10, s.DefaultKeywordLimit, "unset fields keep their defaults")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(testutil.MissingFile(t, "nope.toml"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, internalErrors.ErrConfigNotFound))
	})

	t.Run("malformed file", func(t *testing.T) {
		path := writeConfig(t, "port = [unterminated")
		_, err := Load(path)
		require.Error(t, err)
		assert.True(t, errors.Is(err, internalErrors.ErrInvalidConfig))
	})

	t.Run("unknown key", func(t *testing.T) {
		path := writeConfig(t, `colour = "blue"`)
		_, err := Load(path)
		require.Error(t, err)
		assert.True(t, errors.Is(err, internalErrors.ErrInvalidConfig))
	})

	t.Run("invalid values", func(t *testing.T) {
		path := writeConfig(t, `max_results_cap = 5
default_max_results = 50`)
		_, err := Load(path)
		require.Error(t, err)
		assert.True(t, errors.Is(err, internalErrors.ErrInvalidConfig))
		assert.Contains(t, err.Error(), "default_max_results")
	})
}

func TestEncodeRoundTrip(t *testing.T) {
	original := Default()
	original.Port = "7000"
	original.DefaultKeywordLimit = 3

	encoded, err := original.Encode()
	require.NoError(t, err)

	loaded, err := Load(writeConfig(t, encoded))
	require.NoError(t, err)
	assert.Equal(t, original, loaded)
}
