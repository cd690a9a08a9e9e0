package releases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckIsLatestVersion(t *testing.T) {
	latest := &Release{Version: "v1.2.0"}

	testCases := []struct {
		name           string
		currentVersion string
		expectedState  SoftwareUpdateState
	}{
		{"development build", "", UnreleasedVersion},
		{"non-semver build", "deadbeef", UnreleasedVersion},
		{"older release", "v1.1.0", UpdateAvailable},
		{"latest release", "v1.2.0", UpToDate},
		{"newer than released", "v1.3.0", UpToDate},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require := require.New(t)

			state, version, _, err := CheckIsLatestVersion(context.Background(),
				func() (string, error) { return tc.currentVersion, nil },
				func(context.Context) (*Release, error) { return latest, nil },
			)
			require.NoError(err)
			require.Equal(tc.expectedState, state)
			require.Equal(tc.currentVersion, version)
		})
	}
}

func TestCheckIsLatestVersionUnparseableRelease(t *testing.T) {
	require := require.New(t)

	state, _, release, err := CheckIsLatestVersion(context.Background(),
		func() (string, error) { return "v1.0.0", nil },
		func(context.Context) (*Release, error) { return &Release{Version: "nightly"}, nil },
	)
	require.NoError(err)
	require.Equal(Unknown, state)
	require.Equal("nightly", release.Version)
}

func TestCheckIsLatestVersionLookupFailure(t *testing.T) {
	require := require.New(t)

	lookupErr := errors.New("rate limited")
	state, _, _, err := CheckIsLatestVersion(context.Background(),
		func() (string, error) { return "v1.0.0", nil },
		func(context.Context) (*Release, error) { return nil, lookupErr },
	)
	require.ErrorIs(err, lookupErr)
	require.Equal(Unknown, state)
}
