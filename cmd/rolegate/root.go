package main

import (
	"github.com/cccteam/rolegate/internal/config"
	"github.com/go-playground/errors/v5"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configFile  string
	sessionFile string
}

// load reads the configuration and applies the flags shared by every command.
func (o *rootOptions) load() (*config.Config, error) {
	cfg, err := config.Load(o.configFile)
	if err != nil {
		return nil, errors.Wrap(err, "config.Load()")
	}
	if o.sessionFile != "" {
		cfg.CLI.SessionFile = o.sessionFile
	}

	return cfg, nil
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "rolegate",
		Short: "Role-gated dashboard for admins, merchants and members",
		Long: `rolegate serves a dashboard with one area per role (admin, merchant,
member). A session belongs to exactly one role and every dashboard route is
only served to a session holding that role.

The session commands (login, logout, whoami, open) drive the same session
gate from the command line, keeping the session in a local snapshot file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "YAML configuration file")
	cmd.PersistentFlags().StringVar(&opts.sessionFile, "session-file", "", "snapshot file of the command line session (overrides cli.session_file)")

	cmd.AddCommand(
		newServeCmd(opts),
		newLoginCmd(opts),
		newLogoutCmd(opts),
		newWhoamiCmd(opts),
		newOpenCmd(opts),
	)

	return cmd
}
