// Package relation defines the implication relations the solver saturates
// and the subset tests that drive inference between them.
package relation

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/scylladb/go-set/strset"
)

// DefaultClass and DefaultTrait name the question the solver answers when no
// other goal is configured.
const (
	DefaultClass = "PIGS"
	DefaultTrait = "FLY"
)

// Goal is the class/trait pair the solver reports on.
type Goal struct {
	// Class is the label naming the population under question.
	Class string

	// Trait is the label naming the capability under question.
	Trait string
}

// DefaultGoal returns the goal of the classic puzzle.
func DefaultGoal() Goal {
	return Goal{Class: DefaultClass, Trait: DefaultTrait}
}

func (g Goal) String() string {
	return g.Class + " can " + g.Trait
}

// Relation is a single implication: whenever every premise label holds, every
// conclusion label holds as well. Premises are fixed at construction, while
// conclusions grow as the solver merges implied relations in.
//
// Relations are compared by pointer identity. The solver relies on this to
// skip pairing a relation with itself.
type Relation struct {
	from *strset.Set

	mu sync.RWMutex
	to *strset.Set
}

// New creates a Relation from the given premise and conclusion labels.
// Duplicate labels collapse into one.
func New(premises []string, conclusions []string) *Relation {
	return &Relation{
		from: strset.New(premises...),
		to:   strset.New(conclusions...),
	}
}

// Premises returns the premise labels in sorted order.
func (r *Relation) Premises() []string {
	labels := r.from.List()
	slices.Sort(labels)
	return labels
}

// Conclusions returns the conclusion labels in sorted order.
func (r *Relation) Conclusions() []string {
	r.mu.RLock()
	labels := r.to.List()
	r.mu.RUnlock()

	slices.Sort(labels)
	return labels
}

// Matches reports whether every premise of r also appears among the premises
// of other. When it does, other is at least as constrained as r and inherits
// r's conclusions.
func (r *Relation) Matches(other *Relation) bool {
	return other.from.IsSubset(r.from)
}

// Cascades reports whether r's conclusions cover every premise of other.
// When they do, everything other concludes follows from r as well.
func (r *Relation) Cascades(other *Relation) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.to.IsSubset(other.from)
}

// Extend merges other's conclusions into r's and reports whether r's
// conclusion set grew. The source set is snapshotted before r's lock is
// taken, so concurrent Extend calls against distinct receivers never
// deadlock.
func (r *Relation) Extend(other *Relation) bool {
	merged := other.conclusionsCopy()

	r.mu.Lock()
	defer r.mu.Unlock()

	before := r.to.Size()
	r.to.Merge(merged)
	return r.to.Size() > before
}

// Proves reports whether r alone answers the goal. A relation holding the
// goal class among its premises and the goal trait among its conclusions
// answers for every member of the class. When all is false, a relation
// concluding both the class and the trait answers for the members it
// produces.
func (r *Relation) Proves(goal Goal, all bool) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.from.Has(goal.Class) && r.to.Has(goal.Trait) {
		return true
	}
	return !all && r.to.Has(goal.Class, goal.Trait)
}

// String renders the relation as `{premises} => {conclusions}` with the
// labels of each side sorted.
func (r *Relation) String() string {
	return fmt.Sprintf("{%s} => {%s}",
		strings.Join(r.Premises(), ", "),
		strings.Join(r.Conclusions(), ", "),
	)
}

func (r *Relation) conclusionsCopy() *strset.Set {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.to.Copy()
}

// LabelUniverse collects every label mentioned by the given relations, over
// both premises and conclusions.
func LabelUniverse(relations []*Relation) *strset.Set {
	universe := strset.New()
	for _, r := range relations {
		universe.Merge(r.from)

		r.mu.RLock()
		universe.Merge(r.to)
		r.mu.RUnlock()
	}
	return universe
}
