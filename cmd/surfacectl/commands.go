package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/reoring/surface"
	"github.com/reoring/surface/a11y"
	"github.com/reoring/surface/registry"
	"github.com/reoring/surface/validate"
)

func inputArg(args []string) string {
	if len(args) == 0 {
		return "-"
	}
	return args[len(args)-1]
}

func newComponentsCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "components",
		Short: "List registered components and their props",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "COMPONENT\tCATEGORY\tCHILDREN\tPROPS")
			for name, def := range registry.Default().All() {
				props := ""
				for i, p := range def.Props {
					if i > 0 {
						props += ", "
					}
					props += p.Name
					if p.Requirement == registry.Required {
						props += "!"
					}
					props += ":" + p.Type.String()
				}
				fmt.Fprintf(tw, "%s\t%s\t%t\t%s\n", name, def.Category, def.AcceptsChildren, props)
			}
			o.logf(cmd, "%d components", registry.Default().Len())
			return tw.Flush()
		},
	}
}

func newSchemaCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "schema [component]",
		Short: "Print the JSON Schema of one component, or of all of them",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := registry.Default()
			if len(args) == 0 {
				return writeJSON(cmd.OutOrStdout(), reg.JSONSchemas())
			}
			def, err := reg.Lookup(args[0])
			if err != nil {
				return err
			}
			o.logf(cmd, "schema %s: %d props", def.Name, len(def.Props))
			return writeJSON(cmd.OutOrStdout(), def.JSONSchema())
		},
	}
}

func newValidateCmd(o *options) *cobra.Command {
	var ensure bool
	cmd := &cobra.Command{
		Use:   "validate [file|-]",
		Short: "Validate every node of a document against the registry",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := o.readSurface(cmd, inputArg(args))
			if err != nil {
				return err
			}
			if ensure {
				a11y.EnsureTree(&s.Root)
			}
			if err := validate.Surface(s); err != nil {
				iss, _ := surface.AsIssues(err)
				printIssues(cmd.ErrOrStderr(), iss)
				fmt.Fprintf(cmd.OutOrStdout(), "invalid: %d issue(s)\n", len(iss))
				return errInvalid
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
	cmd.Flags().BoolVar(&ensure, "ensure", false, "fill in missing accessible props before validating")
	return cmd
}

func newEnsureCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "ensure [file|-]",
		Short: "Add default accessible props to every node and print the document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := o.readSurface(cmd, inputArg(args))
			if err != nil {
				return err
			}
			a11y.EnsureTree(&s.Root)
			_, err = cmd.OutOrStdout().Write(append(s.PrettyJSON(), '\n'))
			return err
		},
	}
}

func newFmtCmd(o *options) *cobra.Command {
	var (
		to      string
		compact bool
	)
	cmd := &cobra.Command{
		Use:   "fmt [file|-]",
		Short: "Rewrite a document in canonical form",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := o.readSurface(cmd, inputArg(args))
			if err != nil {
				return err
			}
			var out []byte
			switch to {
			case "json":
				if compact {
					out = append(s.JSON(), '\n')
				} else {
					out = append(s.PrettyJSON(), '\n')
				}
			case "yaml":
				if out, err = s.YAML(); err != nil {
					return err
				}
			case "msgpack":
				if out, err = s.Msgpack(); err != nil {
					return err
				}
			default:
				return fmt.Errorf("unknown --to %q (want json, yaml or msgpack)", to)
			}
			o.logf(cmd, "fmt: wrote %d bytes as %s", len(out), to)
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	cmd.Flags().StringVar(&to, "to", "json", "output format: json, yaml or msgpack")
	cmd.Flags().BoolVar(&compact, "compact", false, "write JSON without indentation")
	return cmd
}

func newQueryCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "query <jsonpath> [file|-]",
		Short: "Evaluate a JSONPath expression against a document",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := "-"
			if len(args) == 2 {
				in = args[1]
			}
			s, err := o.readSurface(cmd, in)
			if err != nil {
				return err
			}
			res, err := s.Query(args[0])
			if err != nil {
				return err
			}
			o.logf(cmd, "query %s: %d match(es)", args[0], len(res))
			return writeJSON(cmd.OutOrStdout(), res)
		},
	}
}
