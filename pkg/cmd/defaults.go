package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/go-logr/zerologr"
	"github.com/jzelinskie/cobrautil/v2"
	"github.com/jzelinskie/cobrautil/v2/cobrazerolog"
	"github.com/rs/zerolog"

	"github.com/hogwash-io/hogwash/internal/logging"
	"github.com/hogwash-io/hogwash/pkg/releases"
	"github.com/hogwash-io/hogwash/pkg/runtime"
)

// SolveExample creates an example usage string with the provided program name.
func SolveExample(programName string) string {
	return fmt.Sprintf(`	%[1]s:
		%[3]s solve --input facts.txt

	%[2]s:
		cat facts.txt | %[3]s solve --goal-class CATS --goal-trait CLIMB --concurrency 8
`,
		color.YellowString("The classic question, from a file"),
		color.GreenString("A custom goal, from stdin"),
		programName,
	)
}

// DefaultPreRunE sets up viper and zerolog flag handling for a command.
func DefaultPreRunE(programName string) cobrautil.CobraRunFunc {
	return cobrautil.CommandStack(
		cobrautil.SyncViperDotEnvPreRunE(programName, "hogwash.env", zerologr.New(&logging.Logger)),
		cobrazerolog.New(
			cobrazerolog.WithTarget(func(logger zerolog.Logger) {
				logging.SetGlobalLogger(logger)
			}),
		).RunE(),
		releases.CheckAndLogRunE(),
		runtime.RunE(),
	)
}
