package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/gofhir/models"
	"github.com/gofhir/models/pkg/schema"
)

// fieldOutput is a field descriptor as the schema command prints it.
type fieldOutput struct {
	Name     string   `json:"name" yaml:"name"`
	Kind     string   `json:"kind" yaml:"kind"`
	Type     string   `json:"type,omitempty" yaml:"type,omitempty"`
	Choices  []string `json:"choices,omitempty" yaml:"choices,omitempty"`
	Min      int      `json:"min" yaml:"min"`
	Max      string   `json:"max" yaml:"max"`
	Strength string   `json:"strength,omitempty" yaml:"strength,omitempty"`
	ValueSet string   `json:"valueSet,omitempty" yaml:"valueSet,omitempty"`
	Short    string   `json:"short,omitempty" yaml:"short,omitempty"`
}

func newSchemaCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "schema [type]",
		Short: "Print the field table of a type",
		Long: "Schema prints the ordered fields of a resource or backbone type with\n" +
			"their cardinality, choice alternatives and bindings. Without an\n" +
			"argument it lists the resource types.",
		Example: "  fhirmodel schema Claim\n" +
			"  fhirmodel schema -o yaml Claim.item.detail",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return writeList(cmd.OutOrStdout(), a.cfg.Output, models.ResourceTypes())
			}
			fields, err := models.FieldsOf(args[0])
			if err != nil {
				return err
			}
			return writeFields(cmd.OutOrStdout(), a.cfg.Output, describe(fields))
		},
	}
}

func describe(fields []schema.Field) []fieldOutput {
	out := make([]fieldOutput, len(fields))
	for i, f := range fields {
		out[i] = fieldOutput{
			Name:    f.Name,
			Kind:    f.Kind.String(),
			Type:    f.Type,
			Choices: f.Choices,
			Min:     f.Min,
			Max:     f.MaxString(),
			Short:   f.Short,
		}
		if f.IsChoice() {
			out[i].Name += "[x]"
		}
		if f.Binding != nil {
			out[i].Strength = string(f.Binding.Strength)
			out[i].ValueSet = f.Binding.URL()
		}
	}
	return out
}

func writeList(w io.Writer, format string, names []string) error {
	switch format {
	case "json":
		return writeJSON(w, names)
	case "yaml":
		return yaml.NewEncoder(w).Encode(names)
	}
	for _, n := range names {
		fmt.Fprintln(w, n)
	}
	return nil
}

func writeFields(w io.Writer, format string, fields []fieldOutput) error {
	switch format {
	case "json":
		return writeJSON(w, fields)
	case "yaml":
		return yaml.NewEncoder(w).Encode(fields)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tCARD\tTYPE\tBINDING")
	for _, f := range fields {
		typ := f.Type
		if len(f.Choices) > 0 {
			typ = strings.Join(f.Choices, "|")
		}
		bind := ""
		if f.Strength != "" {
			bind = f.Strength + " " + f.ValueSet
		}
		fmt.Fprintf(tw, "%s\t%d..%s\t%s\t%s\n", f.Name, f.Min, f.Max, typ, bind)
	}
	return tw.Flush()
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
