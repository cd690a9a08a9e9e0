package saturation

import (
	"fmt"
	"strings"

	"github.com/hogwash-io/hogwash/pkg/hogerrors"
	"github.com/hogwash-io/hogwash/pkg/relation"
)

// Verdict is the solver's answer to its goal.
type Verdict uint8

//go:generate go run golang.org/x/tools/cmd/stringer -type=Verdict -linecomment

const (
	// VerdictNone means no member of the goal class was shown to have the
	// goal trait.
	VerdictNone Verdict = iota // none

	// VerdictSome means at least one member of the goal class was shown to
	// have the goal trait, without covering the whole class.
	VerdictSome // some

	// VerdictAll means every member of the goal class was shown to have the
	// goal trait.
	VerdictAll // all
)

// Sentence renders the verdict as the one-line answer for the given goal,
// with the goal labels lowercased.
func (v Verdict) Sentence(goal relation.Goal) string {
	class := strings.ToLower(goal.Class)
	trait := strings.ToLower(goal.Trait)

	switch v {
	case VerdictAll:
		return fmt.Sprintf("All %s can %s", class, trait)
	case VerdictSome:
		return fmt.Sprintf("Some %s can %s", class, trait)
	case VerdictNone:
		return fmt.Sprintf("No %s can %s", class, trait)
	default:
		panic(hogerrors.MustBugf("unknown verdict: %d", v))
	}
}
