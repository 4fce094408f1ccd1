package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cccteam/rolegate/access"
	"github.com/cccteam/rolegate/guard"
	"github.com/cccteam/rolegate/internal/config"
	"github.com/cccteam/rolegate/login"
	"github.com/cccteam/rolegate/roles"
	"github.com/cccteam/rolegate/sessionstore"
	"github.com/cccteam/rolegate/snapshot"
	"github.com/go-playground/errors/v5"
	"github.com/spf13/cobra"
)

// store returns the command line session, kept in the snapshot file.
func (o *rootOptions) store() (*sessionstore.Store, *config.Config, error) {
	cfg, err := o.load()
	if err != nil {
		return nil, nil, err
	}

	return sessionstore.New(snapshot.NewFile(cfg.CLI.SessionFile)), cfg, nil
}

func newLoginCmd(opts *rootOptions) *cobra.Command {
	var fields []string

	cmd := &cobra.Command{
		Use:   "login <role>",
		Short: "Log in as a role",
		Long: `Log in as admin, merchant or member by filling in the role's login form.

Examples:
  rolegate login admin --field email=ada@example.com --field password=secret1
  rolegate login merchant --field storeName="Acme Co" --field storeId=ACM001 --field password=secret1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			role, ok := roles.Parse(args[0])
			if !ok {
				return errors.Newf("unknown role %q, want one of %s", args[0], roleList())
			}

			form, err := parseForm(role, fields)
			if err != nil {
				return err
			}

			store, cfg, err := opts.store()
			if err != nil {
				return err
			}

			res, err := login.New(role, store, login.WithIssuer(issuer(cfg))).Submit(cmd.Context(), form)
			if err != nil {
				return errors.Wrap(err, "login.Flow.Submit()")
			}

			out := cmd.OutOrStdout()
			if res.State == login.FieldError {
				for _, f := range login.Fields(role) {
					if msg, ok := res.FieldErrors[f.Name]; ok {
						fmt.Fprintf(out, "%s: %s\n", f.Label, msg)
					}
				}

				return errors.New("login form has errors")
			}

			fmt.Fprintf(out, "Logged in as %s. Dashboard: %s\n", role, res.Redirect)

			return nil
		},
	}

	cmd.Flags().StringArrayVar(&fields, "field", nil, "form field as name=value (repeatable)")

	return cmd
}

func newLogoutCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, _, err := opts.store()
			if err != nil {
				return err
			}
			if err := store.Clear(cmd.Context()); err != nil {
				return errors.Wrap(err, "sessionstore.Store.Clear()")
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")

			return nil
		},
	}
}

func newWhoamiCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the role of the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, _, err := opts.store()
			if err != nil {
				return err
			}

			sess := store.Load(cmd.Context())
			if !sess.Authenticated() {
				fmt.Fprintln(cmd.OutOrStdout(), "Not logged in.")

				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s.\n", sess.Role)

			return nil
		},
	}
}

func newOpenCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "open <path>",
		Short: "Check where navigating to a path leads",
		Long: `Resolve a path the way the dashboard does. A protected path the session
may not see is redirected to the login page of its role.

Example:
  rolegate open /dashboard/merchant`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := opts.store()
			if err != nil {
				return err
			}

			outcome, err := guard.New().Navigate(cmd.Context(), store, args[0])
			if err != nil {
				return err
			}

			if outcome.Decision == access.Deny {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: redirect to %s\n", outcome.Decision, outcome.Redirect)

				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", outcome.Decision, args[0])

			return nil
		},
	}
}

// parseForm fills role's login form from name=value pairs.
func parseForm(role roles.Role, fields []string) (login.Form, error) {
	values := make(map[string]string, len(fields))
	for _, f := range fields {
		name, value, ok := strings.Cut(f, "=")
		if !ok {
			return nil, errors.Newf("invalid field %q, want name=value", f)
		}
		values[name] = value
	}

	known := login.Fields(role)
	for name := range values {
		found := false
		for _, f := range known {
			if f.Name == name {
				found = true

				break
			}
		}
		if !found {
			return nil, errors.Newf("unknown field %q for the %s login", name, role)
		}
	}

	b, err := json.Marshal(values)
	if err != nil {
		return nil, errors.Wrap(err, "json.Marshal()")
	}

	form := login.NewForm(role)
	if err := json.Unmarshal(b, form); err != nil {
		return nil, errors.Wrap(err, "json.Unmarshal()")
	}

	return form, nil
}

func roleList() string {
	names := make([]string, 0, len(roles.All()))
	for _, r := range roles.All() {
		names = append(names, r.String())
	}

	return strings.Join(names, ", ")
}
