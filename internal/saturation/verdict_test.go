package saturation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hogwash-io/hogwash/pkg/relation"
)

func TestVerdictString(t *testing.T) {
	require := require.New(t)

	require.Equal("none", VerdictNone.String())
	require.Equal("some", VerdictSome.String())
	require.Equal("all", VerdictAll.String())
	require.Equal("Verdict(9)", Verdict(9).String())
}

func TestVerdictSentence(t *testing.T) {
	require := require.New(t)

	goal := relation.DefaultGoal()
	require.Equal("All pigs can fly", VerdictAll.Sentence(goal))
	require.Equal("Some pigs can fly", VerdictSome.Sentence(goal))
	require.Equal("No pigs can fly", VerdictNone.Sentence(goal))

	require.Equal("All cats can climb", VerdictAll.Sentence(relation.Goal{Class: "CATS", Trait: "CLIMB"}))
}

func TestVerdictSentencePanicsOnUnknownVerdict(t *testing.T) {
	assert.Panics(t, func() {
		Verdict(9).Sentence(relation.DefaultGoal())
	})
}
