package cli

import (
	"github.com/alexanderramin/ganttly/internal/cli/formatter"
	"github.com/alexanderramin/ganttly/internal/resource"
	"github.com/alexanderramin/ganttly/internal/service"
	"github.com/spf13/cobra"
)

func newResourceCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "resource",
		Aliases: []string{"res"},
		Short:   "Manage a project's resource registry",
	}

	cmd.AddCommand(
		newResourceListCmd(app),
		newResourceAddCmd(app),
		newResourceSetCmd(app),
		newResourceRemoveCmd(app),
	)

	return cmd
}

// resourceFlags maps flags onto registry fields.
type resourceFlags struct {
	values map[resource.Field]*string
}

var resourceFlagNames = []struct {
	flag  string
	field resource.Field
	usage string
}{
	{"id", resource.FieldID, "Resource id"},
	{"name", resource.FieldName, "Resource name"},
	{"type", resource.FieldType, "labor, material, equipment or cost"},
	{"unit", resource.FieldCostUnit, "Cost unit: hour, day, week, month or year"},
	{"price", resource.FieldUnitPrice, "Price per cost unit"},
}

func (f *resourceFlags) register(cmd *cobra.Command) {
	f.values = make(map[resource.Field]*string, len(resourceFlagNames))
	for _, n := range resourceFlagNames {
		f.values[n.field] = cmd.Flags().String(n.flag, "", n.usage)
	}
}

// changed lists the set flags in declaration order.
func (f *resourceFlags) changed(cmd *cobra.Command) []service.ResourceValue {
	var out []service.ResourceValue
	for _, n := range resourceFlagNames {
		if cmd.Flags().Changed(n.flag) {
			out = append(out, service.ResourceValue{Field: n.field, Raw: *f.values[n.field]})
		}
	}
	return out
}

func newResourceListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list PROJECT",
		Aliases: []string{"ls"},
		Short:   "List resources",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Projects.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			writeOut(cmd, formatter.FormatResources(p.Resources))
			return nil
		},
	}
}

func newResourceAddCmd(app *App) *cobra.Command {
	var flags resourceFlags

	cmd := &cobra.Command{
		Use:   "add PROJECT",
		Short: "Add a resource",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := app.Plans.AddResource(cmd.Context(), args[0], flags.changed(cmd)...)
			if err != nil {
				return err
			}
			printf(cmd, "Added resource %s %s\n", formatter.Bold(r.ResourceName), formatter.Dim(r.ResourceID))
			return nil
		},
	}
	flags.register(cmd)
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newResourceSetCmd(app *App) *cobra.Command {
	var flags resourceFlags

	cmd := &cobra.Command{
		Use:   "set PROJECT RESOURCE",
		Short: "Update a resource by position or id",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := app.Plans.UpdateResource(cmd.Context(), args[0], args[1], flags.changed(cmd)...)
			if err != nil {
				return err
			}
			printf(cmd, "Updated resource %s %s\n", formatter.Bold(r.ResourceName), formatter.Dim(r.ResourceID))
			return nil
		},
	}
	flags.register(cmd)

	return cmd
}

func newResourceRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm PROJECT RESOURCE",
		Aliases: []string{"remove"},
		Short:   "Delete a resource by position or id",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Plans.DeleteResource(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			printf(cmd, "Deleted resource %s\n", args[1])
			return nil
		},
	}
}
