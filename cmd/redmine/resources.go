package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/redmine/pkg/entity"
	"github.com/bft-labs/redmine/pkg/transport"
	"github.com/bft-labs/redmine/pkg/uri"
)

// fieldSetter copies the field flags the user set onto obj.
type fieldSetter[T any] func(obj *T, changed func(name string) bool)

// resource describes one entity exposed as a subcommand group.
type resource[T entity.Identifiable] struct {
	name   string
	single string
	// required lists the field flags create cannot do without.
	required []string
	// bind registers the field flags on fs.
	bind func(fs *pflag.FlagSet) fieldSetter[T]
}

func newResourceCommand[T entity.Identifiable](a *app, r resource[T]) *cobra.Command {
	cmd := &cobra.Command{
		Use:   r.name,
		Short: fmt.Sprintf("List, show and modify %s", r.name),
	}
	cmd.AddCommand(
		listCommand(a, r),
		getCommand(a, r),
		createCommand(a, r),
		updateCommand(a, r),
		deleteCommand(a, r),
	)
	return cmd
}

// paramFlag registers a repeatable --param name=value flag.
func paramFlag(fs *pflag.FlagSet) func() ([]uri.Param, error) {
	raw := fs.StringArray("param", nil, "query parameter as name=value (repeatable)")
	return func() ([]uri.Param, error) {
		params := make([]uri.Param, 0, len(*raw))
		for _, s := range *raw {
			p, err := uri.ParseParam(s)
			if err != nil {
				return nil, err
			}
			params = append(params, p)
		}
		return params, nil
	}
}

func listCommand[T entity.Identifiable](a *app, r resource[T]) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: fmt.Sprintf("List all %s, following every page", r.name),
		Args:  cobra.NoArgs,
	}
	params := paramFlag(cmd.Flags())
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		ps, err := params()
		if err != nil {
			return err
		}
		items, err := transport.GetObjectsList[T](cmd.Context(), a.transport, ps...)
		if err != nil {
			return err
		}
		a.log.Debug().Int("count", len(items)).Str("resource", r.name).Msg("listed")
		return printJSON(cmd, items)
	}
	return cmd
}

func getCommand[T entity.Identifiable](a *app, r resource[T]) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <key>",
		Short: fmt.Sprintf("Show one %s", r.single),
		Args:  cobra.ExactArgs(1),
	}
	params := paramFlag(cmd.Flags())
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		ps, err := params()
		if err != nil {
			return err
		}
		obj, err := transport.GetObject[T](cmd.Context(), a.transport, args[0], ps...)
		if err != nil {
			return err
		}
		return printJSON(cmd, obj)
	}
	return cmd
}

func createCommand[T entity.Identifiable](a *app, r resource[T]) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: fmt.Sprintf("Create a %s and print it as stored", r.single),
		Args:  cobra.NoArgs,
	}
	set := r.bind(cmd.Flags())
	for _, name := range r.required {
		_ = cmd.MarkFlagRequired(name)
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		var obj T
		set(&obj, cmd.Flags().Changed)
		created, err := transport.AddObject(cmd.Context(), a.transport, obj)
		if err != nil {
			return err
		}
		a.log.Info().Int("id", created.GetID()).Msgf("%s created", r.single)
		return printJSON(cmd, created)
	}
	return cmd
}

func updateCommand[T entity.Identifiable](a *app, r resource[T]) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: fmt.Sprintf("Change fields of a %s", r.single),
		Long: fmt.Sprintf("Fetch the %s, apply the given field flags and send it back.\n"+
			"The printed object is the local copy; fields the server derives are not refreshed.", r.single),
		Args: cobra.ExactArgs(1),
	}
	set := r.bind(cmd.Flags())
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if _, err := strconv.Atoi(args[0]); err != nil {
			return fmt.Errorf("id must be numeric, got %q", args[0])
		}
		obj, err := transport.GetObject[T](cmd.Context(), a.transport, args[0])
		if err != nil {
			return err
		}
		set(&obj, cmd.Flags().Changed)
		if err := transport.UpdateObject(cmd.Context(), a.transport, obj); err != nil {
			return err
		}
		a.log.Info().Int("id", obj.GetID()).Msgf("%s updated", r.single)
		return printJSON(cmd, obj)
	}
	return cmd
}

func deleteCommand[T entity.Identifiable](a *app, r resource[T]) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: fmt.Sprintf("Delete a %s", r.single),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := transport.DeleteObject[T](cmd.Context(), a.transport, args[0]); err != nil {
				return err
			}
			a.log.Info().Str("id", args[0]).Msgf("%s deleted", r.single)
			return nil
		},
	}
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
