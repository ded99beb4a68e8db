// Package cli implements the scoutctl command tree.
package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/noah-isme/syntaxscout-api/internal/bootstrap"
	"github.com/noah-isme/syntaxscout-api/pkg/config"
	"github.com/noah-isme/syntaxscout-api/pkg/logger"
)

// Opener builds the service container for one command invocation.
type Opener func(ctx context.Context, verbose bool) (*bootstrap.Container, error)

// DefaultOpener loads configuration from .env and the environment.
func DefaultOpener(ctx context.Context, verbose bool) (*bootstrap.Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return bootstrap.New(ctx, cfg, logger.NewCLI(verbose), nil)
}

type env struct {
	open    Opener
	verbose bool
	yes     bool
	app     *bootstrap.Container
}

func (e *env) container(cmd *cobra.Command) (*bootstrap.Container, error) {
	if e.app != nil {
		return e.app, nil
	}
	app, err := e.open(cmd.Context(), e.verbose)
	if err != nil {
		return nil, err
	}
	e.app = app
	return app, nil
}

func (e *env) close() error {
	if e.app == nil {
		return nil
	}
	err := e.app.Close()
	e.app = nil
	return err
}

// New returns the scoutctl root command.
func New(open Opener) *cobra.Command {
	cmd, _ := newRoot(open)
	return cmd
}

func newRoot(open Opener) (*cobra.Command, *env) {
	if open == nil {
		open = DefaultOpener
	}
	e := &env{open: open}

	cmd := &cobra.Command{
		Use:           "scoutctl",
		Short:         "Manage the Syntax Scout learner data from the command line.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return e.close()
		},
	}
	cmd.PersistentFlags().BoolVarP(&e.verbose, "verbose", "v", false, "log at debug level")
	cmd.PersistentFlags().BoolVarP(&e.yes, "yes", "y", false, "skip confirmation prompts")

	addAssignments(cmd, e)
	addGrades(cmd, e)
	addMessages(cmd, e)
	addFeedback(cmd, e)
	addCourses(cmd, e)
	addExport(cmd, e)
	addKV(cmd, e)
	addResetPassword(cmd, e)
	return cmd, e
}

// Execute runs the root command and closes the container even on failure.
func Execute(ctx context.Context, open Opener, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cmd, e := newRoot(open)
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	err := cmd.ExecuteContext(ctx)
	if closeErr := e.close(); err == nil {
		err = closeErr
	}
	return err
}
