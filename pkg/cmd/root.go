package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/jzelinskie/cobrautil/v2/cobrazerolog"
	mcobra "github.com/muesli/mango-cobra"
	"github.com/muesli/roff"
	"github.com/spf13/cobra"

	"github.com/hogwash-io/hogwash/pkg/cmd/termination"
	"github.com/hogwash-io/hogwash/pkg/releases"
	"github.com/hogwash-io/hogwash/pkg/runtime"
)

const programName = "hogwash"

// ErrParsing is returned when the CLI arguments fail to parse.
var ErrParsing = errors.New("parsing error")

func RegisterRootFlags(cmd *cobra.Command) {
	cobrazerolog.New().RegisterFlags(cmd.PersistentFlags())
	releases.RegisterFlags(cmd.PersistentFlags())
	termination.RegisterFlags(cmd.PersistentFlags())
	runtime.RegisterFlags(cmd.PersistentFlags())
}

func NewRootCommand(programName string) *cobra.Command {
	return &cobra.Command{
		Use:           programName,
		Short:         "A closed-world inference engine",
		Long:          "An engine that saturates batches of labeled implication statements and decides whether a goal trait follows for a goal class",
		Example:       SolveExample(programName),
		SilenceErrors: true,
		SilenceUsage:  true,
	}
}

// BuildRootCommand assembles the root command with every subcommand and flag
// registered. It is shared by main, the docs generator, and tests.
func BuildRootCommand() (*cobra.Command, error) {
	rootCmd := NewRootCommand(programName)
	RegisterRootFlags(rootCmd)
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		cmd.Println(err)
		cmd.Println(cmd.UsageString())
		return ErrParsing
	})

	registerVersionCmd(rootCmd)
	registerManCmd(rootCmd)

	var solveConfig SolveConfig
	solveCmd := NewSolveCommand(programName, &solveConfig)
	if err := RegisterSolveFlags(solveCmd, &solveConfig); err != nil {
		return nil, fmt.Errorf("failed to register solve flags: %w", err)
	}
	rootCmd.AddCommand(solveCmd)

	return rootCmd, nil
}

func registerManCmd(rootCmd *cobra.Command) {
	manCmd := &cobra.Command{
		Use:   "man",
		Short: "Generate the hogwash manpage",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			manPage, err := mcobra.NewManPage(1, cmd.Root())
			if err != nil {
				return err
			}

			_, err = fmt.Fprint(os.Stdout, manPage.Build(roff.NewDocument()))
			return err
		},
	}

	rootCmd.AddCommand(manCmd)
}
