package main

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/gofhir/models/pkg/interop"
	"github.com/gofhir/models/pkg/record"
	"github.com/gofhir/models/pkg/tree"
	"github.com/gofhir/models/pkg/xmlfmt"
)

func newConvertCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <file>",
		Short: "Convert a resource between JSON, XML and gofhir/fhir r4 JSON",
		Long: "Convert reads a JSON or XML resource and writes it in the --to format.\n" +
			"The r4 format round-trips the record through the gofhir/fhir r4 structs.",
		Example: "  fhirmodel convert --to xml claim.json\n" +
			"  fhirmodel convert --to json claim.xml",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			to, _ := cmd.Flags().GetString("to")
			compact, _ := cmd.Flags().GetBool("compact")
			return a.runConvert(cmd, args[0], to, compact)
		},
	}
	cmd.Flags().String("to", "json", "output format (json, xml, r4)")
	cmd.Flags().Bool("compact", false, "write JSON without indentation")
	return cmd
}

func (a *app) runConvert(cmd *cobra.Command, arg, to string, compact bool) error {
	docs, err := readInputs(cmd.InOrStdin(), []string{arg})
	if err != nil {
		return err
	}
	if len(docs) != 1 {
		return fmt.Errorf("convert takes one document, %q matches %d", arg, len(docs))
	}

	r, err := decode(docs[0].data, record.Unknown(a.cfg.unknownPolicy()))
	if err != nil {
		return fmt.Errorf("decoding %s: %w", docs[0].name, err)
	}

	var out []byte
	switch strings.ToLower(to) {
	case "json":
		if compact {
			out, err = record.MarshalJSON(r)
		} else {
			out, err = tree.MarshalIndent(record.ToTree(r), "", "  ")
		}
	case "xml":
		out, err = xmlfmt.MarshalRecord(r)
	case "r4":
		var v any
		if v, err = interop.ToR4(r); err == nil {
			if compact {
				out, err = json.Marshal(v)
			} else {
				out, err = json.MarshalIndent(v, "", "  ")
			}
		}
	default:
		return fmt.Errorf("unknown output format %q (want json, xml or r4)", to)
	}
	if err != nil {
		return fmt.Errorf("converting %s: %w", docs[0].name, err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return err
}
