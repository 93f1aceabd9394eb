package main

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/gofhir/models"
	"github.com/gofhir/models/pkg/datatype"
	"github.com/gofhir/models/pkg/logger"
	"github.com/gofhir/models/pkg/record"
	"github.com/gofhir/models/pkg/tree"
	"github.com/gofhir/models/pkg/xmlfmt"
)

const sampleNarrative = `"text":{"status":"generated","div":"<div xmlns=\"http://www.w3.org/1999/xhtml\">%s</div>"},`

// samples are the smallest instances that pass validation. Ids and
// creation dates are filled in when a sample is generated.
var samples = map[string]string{
	"Claim": `{"resourceType":"Claim",` + fmt.Sprintf(sampleNarrative, "Oral health claim") +
		`"status":"active",` +
		`"type":{"coding":[{"system":"http://terminology.hl7.org/CodeSystem/claim-type","code":"oral"}]},` +
		`"use":"claim","patient":{"reference":"Patient/1"},"created":"2014-08-16",` +
		`"provider":{"reference":"Organization/1"},` +
		`"priority":{"coding":[{"system":"http://terminology.hl7.org/CodeSystem/processpriority","code":"normal"}]},` +
		`"insurance":[{"sequence":1,"focal":true,"coverage":{"reference":"Coverage/1"}}]}`,
	"ClaimResponse": `{"resourceType":"ClaimResponse",` + fmt.Sprintf(sampleNarrative, "Claim settlement") +
		`"status":"active",` +
		`"type":{"coding":[{"system":"http://terminology.hl7.org/CodeSystem/claim-type","code":"oral"}]},` +
		`"use":"claim","patient":{"reference":"Patient/1"},"created":"2014-08-16",` +
		`"insurer":{"reference":"Organization/2"},"outcome":"complete"}`,
	"MedicationKnowledge": `{"resourceType":"MedicationKnowledge",` + fmt.Sprintf(sampleNarrative, "Medication knowledge") +
		`"code":{"text":"Vancomycin 500 mg powder for injection"},"status":"active"}`,
}

func newSampleCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:       "sample <resourceType>",
		Short:     "Print a minimal valid resource",
		Example:   "  fhirmodel sample Claim\n  fhirmodel sample --to xml MedicationKnowledge",
		Args:      cobra.ExactArgs(1),
		ValidArgs: sampleTypes(),
		RunE: func(cmd *cobra.Command, args []string) error {
			to, _ := cmd.Flags().GetString("to")
			r, err := newSample(args[0], time.Now())
			if err != nil {
				return err
			}
			var out []byte
			switch strings.ToLower(to) {
			case "json":
				out, err = tree.MarshalIndent(record.ToTree(r), "", "  ")
			case "xml":
				out, err = xmlfmt.MarshalRecord(r)
			default:
				return fmt.Errorf("unknown output format %q (want json or xml)", to)
			}
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return err
		},
	}
	cmd.Flags().String("to", "json", "output format (json, xml)")
	return cmd
}

func sampleTypes() []string {
	names := make([]string, 0, len(samples))
	for n := range samples {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// newSample builds a sample resource with a fresh id and, where the type
// has one, a creation date of now.
func newSample(resourceType string, now time.Time) (record.Resource, error) {
	doc, ok := samples[resourceType]
	if !ok {
		return nil, fmt.Errorf("no sample for %q (have %s)", resourceType, strings.Join(sampleTypes(), ", "))
	}
	r, err := models.ParseJSON([]byte(doc))
	if err != nil {
		return nil, fmt.Errorf("sample %s: %w", resourceType, err)
	}
	if err := record.Set(r, "id", datatype.ID(uuid.NewString())); err != nil {
		return nil, err
	}
	if record.Has(r, "created") {
		if err := record.Set(r, "created", datatype.DateTime(now.UTC().Format("2006-01-02"))); err != nil {
			return nil, err
		}
	}
	if res := record.Validate(r); len(res.Issues) > 0 {
		logger.Warn("sample %s has %d issue(s): %s", resourceType, len(res.Issues), res.Issues[0].Diagnostics)
	}
	return r, nil
}
