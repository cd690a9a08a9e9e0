package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"time"

	safecast "github.com/ccoveille/go-safecast/v2"
	"github.com/dustin/go-humanize"
	"github.com/sean-/sysexits"
	"github.com/spf13/cobra"

	log "github.com/hogwash-io/hogwash/internal/logging"
	"github.com/hogwash-io/hogwash/internal/saturation"
	"github.com/hogwash-io/hogwash/pkg/cmd/termination"
	"github.com/hogwash-io/hogwash/pkg/facts"
	"github.com/hogwash-io/hogwash/pkg/hogerrors"
	"github.com/hogwash-io/hogwash/pkg/relation"
)

// SolveConfig is the configuration for the solve command.
type SolveConfig struct {
	// InputPath is the file holding the statement batch, or "-" for stdin.
	InputPath string

	// GoalClass is the class label the verdict is about.
	GoalClass string

	// GoalTrait is the trait label the verdict is about.
	GoalTrait string

	// Concurrency is the number of workers applying each cascade sweep.
	// Zero selects one worker per available CPU.
	Concurrency uint16
}

// Complete validates the configuration and resolves its defaults.
func (c *SolveConfig) Complete(ctx context.Context) (*CompletedSolveConfig, error) {
	if c.GoalClass == "" || c.GoalTrait == "" {
		return nil, fmt.Errorf("goal class and goal trait must not be empty")
	}

	workers := c.Concurrency
	if workers == 0 {
		resolved, err := safecast.Convert[uint16](runtime.GOMAXPROCS(0))
		if err != nil {
			return nil, fmt.Errorf("failed to resolve sweep concurrency: %w", err)
		}
		workers = resolved
	}

	return &CompletedSolveConfig{
		inputPath: c.InputPath,
		goal:      relation.Goal{Class: c.GoalClass, Trait: c.GoalTrait},
		workers:   workers,
	}, nil
}

// CompletedSolveConfig is a SolveConfig whose defaults have been resolved.
type CompletedSolveConfig struct {
	inputPath string
	goal      relation.Goal
	workers   uint16
}

func RegisterSolveFlags(cmd *cobra.Command, config *SolveConfig) error {
	cmd.Flags().StringVar(&config.InputPath, "input", "-", `file of statements to load ("-" reads stdin)`)
	cmd.Flags().StringVar(&config.GoalClass, "goal-class", relation.DefaultClass, "class label the verdict is about")
	cmd.Flags().StringVar(&config.GoalTrait, "goal-trait", relation.DefaultTrait, "trait label the verdict is about")
	cmd.Flags().Uint16Var(&config.Concurrency, "concurrency", 0, "number of workers applying each cascade sweep (0 uses one per available CPU)")
	return nil
}

func NewSolveCommand(programName string, config *SolveConfig) *cobra.Command {
	return &cobra.Command{
		Use:     "solve",
		Short:   "decide a goal over a batch of statements",
		Long:    "Loads a batch of labeled implication statements, saturates the conclusion sets to their fixpoint, and prints whether the goal trait holds for all, some, or none of the goal class.",
		Example: SolveExample(programName),
		Args:    cobra.ExactArgs(0),
		PreRunE: DefaultPreRunE(programName),
		RunE: termination.PublishError(func(cmd *cobra.Command, args []string) error {
			completed, err := config.Complete(cmd.Context())
			if err != nil {
				return err
			}

			signalctx := SignalContextWithGracePeriod(
				context.Background(),
				time.Second*0, // No grace period
			)

			return completed.Run(signalctx, cmd.InOrStdin(), cmd.OutOrStdout())
		}),
	}
}

// Run loads the statement batch, saturates it, and writes the verdict
// sentence for the goal to out.
func (c *CompletedSolveConfig) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	input := in
	if c.inputPath != "" && c.inputPath != "-" {
		file, err := os.Open(c.inputPath)
		if err != nil {
			return hogerrors.NewTerminationErrorBuilder(err).
				Component("loader").
				Metadata("input", c.inputPath).
				ExitCode(sysexits.NoInput).
				Error()
		}
		defer file.Close()

		if info, statErr := file.Stat(); statErr == nil {
			log.Ctx(ctx).Debug().
				Str("input", c.inputPath).
				Str("size", humanize.Bytes(uint64(info.Size()))).
				Msg("reading statement batch")
		}
		input = file
	}

	loadStart := time.Now()
	relations, err := facts.Load(input)
	if err != nil {
		return wrapLoadError(err, c.inputPath)
	}

	log.Ctx(ctx).Info().
		Int("relations", len(relations)).
		Dur("loadTime", time.Since(loadStart)).
		Msg("loaded statement batch")

	result, err := saturation.NewSolver(
		relations,
		saturation.WithGoal(c.goal),
		saturation.WithConcurrencyLimit(c.workers),
	).Solve(ctx)
	if err != nil {
		return err
	}

	log.Ctx(ctx).Info().
		Stringer("goal", c.goal).
		Stringer("verdict", result.Verdict).
		Uint64("sweeps", result.Stats.Sweeps).
		Uint64("extensions", result.Stats.Extensions).
		Int("labels", result.Stats.Labels).
		Dur("solveTime", result.Stats.Duration).
		Msg("saturation reached its fixpoint")

	_, err = fmt.Fprintln(out, result.Verdict.Sentence(c.goal))
	return err
}

func wrapLoadError(err error, inputPath string) error {
	builder := hogerrors.NewTerminationErrorBuilder(err).
		Component("loader").
		ExitCode(sysexits.DataErr)
	if inputPath != "" && inputPath != "-" {
		builder = builder.Metadata("input", inputPath)
	}
	if sourceErr, ok := hogerrors.AsWithSourceError(err); ok {
		builder = builder.
			Metadata("line", strconv.FormatUint(sourceErr.LineNumber, 10)).
			Metadata("column", strconv.FormatUint(sourceErr.ColumnPosition, 10))
		if sourceErr.SourceCodeString != "" {
			builder = builder.Metadata("statement", sourceErr.SourceCodeString)
		}
	}
	return builder.Error()
}
