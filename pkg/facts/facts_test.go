package facts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hogwash-io/hogwash/pkg/hogerrors"
)

func TestLoad(t *testing.T) {
	require := require.New(t)

	relations, err := Load(strings.NewReader("3\nPIGS have WINGS\nthings with WINGS can FLY\nCATS are SLEEK\n"))
	require.NoError(err)
	require.Len(relations, 3)

	require.Equal([]string{"PIGS"}, relations[0].Premises())
	require.Equal([]string{"WINGS"}, relations[0].Conclusions())
	require.Equal([]string{"WINGS"}, relations[1].Premises())
	require.Equal([]string{"FLY"}, relations[1].Conclusions())
	require.Equal([]string{"CATS"}, relations[2].Premises())
	require.Equal([]string{"SLEEK"}, relations[2].Conclusions())
}

func TestLoadZeroCount(t *testing.T) {
	require := require.New(t)

	relations, err := Load(strings.NewReader("0\n"))
	require.NoError(err)
	require.Empty(relations)
}

func TestLoadIgnoresTrailingLines(t *testing.T) {
	require := require.New(t)

	relations, err := Load(strings.NewReader("1\nPIGS can FLY\nthis line is never read\n"))
	require.NoError(err)
	require.Len(relations, 1)
}

func TestLoadTrimsCountLine(t *testing.T) {
	require := require.New(t)

	relations, err := Load(strings.NewReader("  2  \nPIGS can FLY\nCATS can CLIMB\n"))
	require.NoError(err)
	require.Len(relations, 2)
}

func TestLoadErrors(t *testing.T) {
	testCases := []struct {
		name       string
		input      string
		errMsg     string
		lineNumber uint64
	}{
		{
			"empty input",
			"",
			"missing relation count",
			1,
		},
		{
			"count is not a number",
			"pigs\nPIGS can FLY\n",
			`invalid relation count "pigs"`,
			1,
		},
		{
			"count is negative",
			"-1\n",
			`invalid relation count "-1"`,
			1,
		},
		{
			"fewer statements than the count",
			"3\nPIGS can FLY\n",
			"expected 3 statements, found only 1",
			3,
		},
		{
			"statement error carries its line number",
			"2\nPIGS can FLY\nPIGS\n",
			"statement ended before a connector word",
			3,
		},
		{
			"blank statement line",
			"1\n\n",
			"empty statement",
			2,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require := require.New(t)

			_, err := Load(strings.NewReader(tc.input))
			require.Error(err)
			require.ErrorContains(err, tc.errMsg)

			sourced, ok := hogerrors.AsWithSourceError(err)
			require.True(ok)
			require.Equal(tc.lineNumber, sourced.LineNumber)
		})
	}
}
