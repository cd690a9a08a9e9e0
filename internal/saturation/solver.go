// Package saturation implements the forward-chaining engine that grows
// relation conclusion sets to a fixpoint and reads a verdict off the
// saturated collection.
package saturation

import (
	"context"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hogwash-io/hogwash/pkg/relation"
)

// Solver saturates a relation collection and answers a single goal.
//
// A Solver is single use: Solve mutates the conclusion sets of the relations
// it was constructed over.
type Solver struct {
	relations        []*relation.Relation
	goal             relation.Goal
	concurrencyLimit uint16

	sweeps     uint64
	extensions atomic.Uint64
}

// Option configures a Solver.
type Option func(*Solver)

// WithGoal overrides the default goal.
func WithGoal(goal relation.Goal) Option {
	return func(s *Solver) {
		s.goal = goal
	}
}

// WithConcurrencyLimit sets the number of workers sharing each cascade
// sweep. Zero and one both select the sequential sweep.
func WithConcurrencyLimit(limit uint16) Option {
	return func(s *Solver) {
		s.concurrencyLimit = limit
	}
}

// NewSolver creates a solver over the given relations.
func NewSolver(relations []*relation.Relation, opts ...Option) *Solver {
	s := &Solver{
		relations: relations,
		goal:      relation.DefaultGoal(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Result is the outcome of a saturation run.
type Result struct {
	Verdict Verdict
	Goal    relation.Goal
	Stats   Stats
}

// Stats describes the work a saturation run performed.
type Stats struct {
	// Relations is the number of relations in the collection.
	Relations int

	// Labels is the number of distinct labels across all premise and
	// conclusion sets after saturation.
	Labels int

	// Sweeps is the number of cascade sweeps run, including the final
	// unchanged one.
	Sweeps uint64

	// Extensions is the number of extend calls that grew a conclusion set.
	Extensions uint64

	// Duration is the wall time the run took.
	Duration time.Duration
}

// Solve saturates the relation collection and reports the verdict.
//
// Saturation runs in two phases. A single seeding pass propagates
// conclusions between relations whose premises contain one another. Cascade
// sweeps then run to a fixpoint, each sweep propagating conclusions from
// relations whose conclusion sets already cover another's premises. The
// strict form of the goal is checked after every sweep, including the final
// unchanged one, and a hit ends the run early. The loose form is read off
// the fixpoint: conclusion sets only grow, so any intermediate loose hit
// still holds there.
func (s *Solver) Solve(ctx context.Context) (Result, error) {
	startTime := time.Now()

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	s.seed()

	verdict := VerdictNone
	for changed := true; changed; {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		var err error
		changed, err = s.sweep(ctx)
		if err != nil {
			return Result{}, err
		}
		s.sweeps++

		if s.anyProves(true) {
			verdict = VerdictAll
			break
		}
	}

	if verdict == VerdictNone && s.anyProves(false) {
		verdict = VerdictSome
	}

	return s.result(verdict, startTime), nil
}

// seed runs the premise-subset pass: every relation whose premises contain
// another's inherits that relation's conclusions. The pass runs exactly
// once, in collection order, and is never revisited.
func (s *Solver) seed() {
	for _, a := range s.relations {
		for _, b := range s.relations {
			if a == b {
				continue
			}

			if a.Matches(b) && b.Extend(a) {
				s.extensions.Add(1)
			}
		}
	}
}

func (s *Solver) sweep(ctx context.Context) (bool, error) {
	if s.concurrencyLimit > 1 && len(s.relations) > 1 {
		return s.sweepConcurrently(ctx)
	}
	return s.sweepSequentially(), nil
}

// sweepSequentially cascades conclusions across every ordered pair of
// relations once, reporting whether any conclusion set grew.
func (s *Solver) sweepSequentially() bool {
	changed := false
	for _, a := range s.relations {
		for _, b := range s.relations {
			if a == b {
				continue
			}

			if a.Cascades(b) && a.Extend(b) {
				s.extensions.Add(1)
				changed = true
			}
		}
	}
	return changed
}

// sweepConcurrently splits one cascade sweep across workers. Workers own
// disjoint strides of target relations, so every conclusion set has exactly
// one writer per sweep; source sets are snapshotted under a read lock inside
// Extend. The verdict never depends on the split, only the per-sweep trace
// does.
func (s *Solver) sweepConcurrently(ctx context.Context) (bool, error) {
	workers := int(s.concurrencyLimit)
	if workers > len(s.relations) {
		workers = len(s.relations)
	}

	var changed atomic.Bool

	g, ctx := errgroup.WithContext(ctx)
	for workerIndex := range workers {
		g.Go(func() error {
			for i := workerIndex; i < len(s.relations); i += workers {
				if err := ctx.Err(); err != nil {
					return err
				}

				a := s.relations[i]
				for _, b := range s.relations {
					if a == b {
						continue
					}

					if a.Cascades(b) && a.Extend(b) {
						s.extensions.Add(1)
						changed.Store(true)
					}
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return false, err
	}

	return changed.Load(), nil
}

func (s *Solver) anyProves(all bool) bool {
	for _, r := range s.relations {
		if r.Proves(s.goal, all) {
			return true
		}
	}
	return false
}

func (s *Solver) result(verdict Verdict, startTime time.Time) Result {
	return Result{
		Verdict: verdict,
		Goal:    s.goal,
		Stats: Stats{
			Relations:  len(s.relations),
			Labels:     relation.LabelUniverse(s.relations).Size(),
			Sweeps:     s.sweeps,
			Extensions: s.extensions.Load(),
			Duration:   time.Since(startTime),
		},
	}
}
