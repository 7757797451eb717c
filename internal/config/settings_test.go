package config

import (
	"testing"
	"time"

	"github.com/qdm12/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrTo[T any](value T) *T { return &value }

func Test_Settings_SetDefaults(t *testing.T) {
	t.Parallel()

	var settings Settings
	settings.SetDefaults()

	assert.Equal(t, "us-west-2", settings.AWS.Region)
	assert.Empty(t, settings.AWS.Profile)
	require.NotNil(t, settings.Logger.Level)
	assert.Equal(t, log.LevelInfo, *settings.Logger.Level)
	assert.Equal(t, 500*time.Millisecond, settings.Upload.RowDelay)
	assert.Equal(t, "1.1.1.1:53", settings.Upload.VerifyResolver)
	assert.Empty(t, settings.Notify.Addresses)
	assert.Equal(t, "AWS tools", settings.Notify.DefaultTitle)
}

func Test_Settings_SetDefaults_keepsExisting(t *testing.T) {
	t.Parallel()

	settings := Settings{
		AWS:    AWS{Region: "eu-central-1"},
		Upload: Upload{RowDelay: time.Second},
	}
	settings.SetDefaults()

	assert.Equal(t, "eu-central-1", settings.AWS.Region)
	assert.Equal(t, time.Second, settings.Upload.RowDelay)
}

func Test_Settings_MergeWith(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		settings Settings
		other    Settings
		expected Settings
	}{
		"empty settings take other": {
			other: Settings{
				AWS:    AWS{Region: "us-east-1", Profile: "ops"},
				Logger: Logger{Level: ptrTo(log.LevelDebug)},
			},
			expected: Settings{
				AWS:    AWS{Region: "us-east-1", Profile: "ops"},
				Logger: Logger{Level: ptrTo(log.LevelDebug)},
			},
		},
		"receiver wins over other": {
			settings: Settings{
				AWS:    AWS{Region: "eu-west-1"},
				Upload: Upload{RowDelay: time.Second},
			},
			other: Settings{
				AWS:    AWS{Region: "us-east-1", Profile: "ops"},
				Upload: Upload{RowDelay: time.Minute, VerifyResolver: "8.8.8.8:53"},
			},
			expected: Settings{
				AWS:    AWS{Region: "eu-west-1", Profile: "ops"},
				Upload: Upload{RowDelay: time.Second, VerifyResolver: "8.8.8.8:53"},
			},
		},
		"notify addresses merge from other": {
			other: Settings{
				Notify: Notify{Addresses: []string{"slack://token@channel"}},
			},
			expected: Settings{
				Notify: Notify{Addresses: []string{"slack://token@channel"}},
			},
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			merged := testCase.settings.MergeWith(testCase.other)

			assert.Equal(t, testCase.expected, merged)
		})
	}
}

func Test_Settings_Validate(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		settings   func() Settings
		errWrapped error
		errMessage string
	}{
		"defaults are valid": {
			settings: func() (settings Settings) {
				settings.SetDefaults()
				return settings
			},
		},
		"access key without secret": {
			settings: func() (settings Settings) {
				settings.SetDefaults()
				settings.AWS.AccessKeyID = "AKIAEXAMPLE"
				return settings
			},
			errWrapped: ErrSecretAccessKeyMissing,
			errMessage: "aws settings: access key ID is set but " +
				"its secret access key is not",
		},
		"negative row delay": {
			settings: func() (settings Settings) {
				settings.SetDefaults()
				settings.Upload.RowDelay = -time.Second
				return settings
			},
			errWrapped: ErrRowDelayNegative,
			errMessage: "upload settings: row delay cannot be negative: -1s",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			err := testCase.settings().Validate()

			assert.ErrorIs(t, err, testCase.errWrapped)
			if testCase.errWrapped != nil {
				assert.EqualError(t, err, testCase.errMessage)
			}
		})
	}
}
