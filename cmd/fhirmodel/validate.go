package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/gofhir/models/pkg/issue"
	"github.com/gofhir/models/pkg/logger"
	fhirvalidator "github.com/gofhir/models/pkg/validator"
)

// ValidationOutput represents the validation result of one document.
type ValidationOutput struct {
	Resource     string        `json:"resource" yaml:"resource"`
	ResourceType string        `json:"resourceType,omitempty" yaml:"resourceType,omitempty"`
	Valid        bool          `json:"valid" yaml:"valid"`
	Errors       int           `json:"errors" yaml:"errors"`
	Warnings     int           `json:"warnings" yaml:"warnings"`
	Info         int           `json:"info" yaml:"info"`
	Duration     string        `json:"duration" yaml:"duration"`
	Issues       []IssueOutput `json:"issues,omitempty" yaml:"issues,omitempty"`
}

// IssueOutput represents a single validation issue.
type IssueOutput struct {
	Severity    string   `json:"severity" yaml:"severity"`
	Code        string   `json:"code" yaml:"code"`
	MessageID   string   `json:"messageId,omitempty" yaml:"messageId,omitempty"`
	Diagnostics string   `json:"diagnostics" yaml:"diagnostics"`
	Expression  []string `json:"expression,omitempty" yaml:"expression,omitempty"`
	Line        int      `json:"line,omitempty" yaml:"line,omitempty"`
	Column      int      `json:"column,omitempty" yaml:"column,omitempty"`
}

// report is the structured output of the validate command.
type report struct {
	Results []ValidationOutput      `json:"results" yaml:"results"`
	Metrics *fhirvalidator.Snapshot `json:"metrics,omitempty" yaml:"metrics,omitempty"`
}

func newValidateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <file>...",
		Short: "Validate JSON or XML resources",
		Long: "Validate decodes each document into its record type, checks required\n" +
			"fields, primitive formats, choice types and code bindings, and evaluates\n" +
			"the FHIRPath invariants. Use - to read standard input.",
		Example: "  fhirmodel validate claim.json\n" +
			"  fhirmodel validate --strict -o json 'examples/*.json'\n" +
			"  cat claim.xml | fhirmodel validate -",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runValidate(cmd, args)
		},
	}
	f := cmd.Flags()
	f.Bool("strict", false, "treat warnings as errors")
	f.String("unknown", "reject", "unknown element policy (reject, preserve, ignore)")
	f.Bool("constraints", true, "evaluate FHIRPath invariants")
	f.Bool("references", true, "check reference format and local targets")
	f.Int("workers", 0, "documents validated concurrently (default: number of CPUs)")
	f.Bool("metrics", false, "report validation metrics")
	bindFlag(a.v, "validation.strict", f.Lookup("strict"))
	bindFlag(a.v, "validation.unknown", f.Lookup("unknown"))
	bindFlag(a.v, "validation.constraints", f.Lookup("constraints"))
	bindFlag(a.v, "validation.references", f.Lookup("references"))
	bindFlag(a.v, "validation.workers", f.Lookup("workers"))
	bindFlag(a.v, "validation.metrics", f.Lookup("metrics"))
	return cmd
}

func (a *app) runValidate(cmd *cobra.Command, args []string) error {
	docs, err := readInputs(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	opts := a.cfg.validatorOptions()
	var metrics *fhirvalidator.Metrics
	if a.cfg.Validation.Metrics {
		metrics = fhirvalidator.NewMetrics()
		opts = append(opts, fhirvalidator.WithMetrics(metrics))
	}
	v, err := fhirvalidator.New(opts...)
	if err != nil {
		return fmt.Errorf("failed to initialize validator: %w", err)
	}

	data := make([][]byte, len(docs))
	for i, d := range docs {
		data[i] = d.data
	}
	logger.Info("Validating %d document(s) with %d worker(s)", len(docs), a.cfg.Validation.Workers)
	results, err := v.ValidateBatch(cmd.Context(), data)
	if err != nil {
		return err
	}

	out := report{Results: make([]ValidationOutput, len(results))}
	hasErrors := false
	for i, res := range results {
		out.Results[i] = toOutput(docs[i].name, res)
		if res.HasErrors() {
			hasErrors = true
		}
	}
	if metrics != nil {
		snap := metrics.Snapshot()
		out.Metrics = &snap
	}

	if err := writeReport(cmd.OutOrStdout(), a.cfg.Output, out, results); err != nil {
		return err
	}
	if hasErrors {
		return errInvalid
	}
	return nil
}

func toOutput(name string, res *issue.Result) ValidationOutput {
	output := ValidationOutput{
		Resource: name,
		Valid:    !res.HasErrors(),
		Errors:   res.ErrorCount(),
		Warnings: res.WarningCount(),
		Info:     res.InfoCount(),
	}
	if res.Stats != nil {
		output.ResourceType = res.Stats.ResourceType
		output.Duration = time.Duration(res.Stats.Duration).Round(time.Microsecond).String()
	}
	for _, iss := range res.Issues {
		out := IssueOutput{
			Severity:    string(iss.Severity),
			Code:        string(iss.Code),
			MessageID:   iss.MessageID,
			Diagnostics: iss.Diagnostics,
			Expression:  iss.Expression,
		}
		if iss.Location != nil {
			out.Line, out.Column = iss.Location.Line, iss.Location.Column
		}
		output.Issues = append(output.Issues, out)
	}
	return output
}

func writeReport(w io.Writer, format string, out report, results []*issue.Result) error {
	switch format {
	case "json":
		return writeJSON(w, out)
	case "yaml":
		return yaml.NewEncoder(w).Encode(out)
	}

	for i, o := range out.Results {
		printTextResult(w, o, results[i])
	}
	if m := out.Metrics; m != nil {
		fmt.Fprintf(w, "== metrics ==\n")
		fmt.Fprintf(w, "Validated: %d (%d valid)\n", m.ValidationsTotal, m.ValidationsValid)
		fmt.Fprintf(w, "Issues: %d errors, %d warnings, %d info\n", m.ErrorsTotal, m.WarningsTotal, m.InfosTotal)
		fmt.Fprintf(w, "Average: %s\n", time.Duration(m.AvgValidationTimeNs).Round(time.Microsecond)) //nolint:gosec // nanoseconds within int64 range
		for _, r := range m.Resources {
			fmt.Fprintf(w, "  %s: %d validated, %d issues\n", r.ResourceType, r.Validations, r.IssuesFound)
		}
	}
	return nil
}

func printTextResult(w io.Writer, o ValidationOutput, result *issue.Result) {
	status := "VALID"
	if !o.Valid {
		status = "INVALID"
	}

	fmt.Fprintf(w, "== %s ==\n", o.Resource)
	fmt.Fprintf(w, "Status: %s\n", status)
	fmt.Fprintf(w, "Errors: %d, Warnings: %d, Info: %d\n", o.Errors, o.Warnings, o.Info)
	if o.ResourceType != "" {
		fmt.Fprintf(w, "Resource: %s\n", o.ResourceType)
	}
	fmt.Fprintf(w, "Duration: %s\n", o.Duration)

	if len(result.Issues) > 0 {
		fmt.Fprintln(w, "\nIssues:")
		for _, iss := range result.Issues {
			location := ""
			if len(iss.Expression) > 0 {
				location = fmt.Sprintf(" @ %s", strings.Join(iss.Expression, ", "))
			}
			if iss.Location != nil {
				location += fmt.Sprintf(" (line %d, col %d)", iss.Location.Line, iss.Location.Column)
			}
			fmt.Fprintf(w, "  %s [%s] %s%s\n", severityLabel(iss.Severity), iss.Code, iss.Diagnostics, location)
		}
	}
	fmt.Fprintln(w)
}

func severityLabel(severity issue.Severity) string {
	switch severity {
	case issue.SeverityFatal:
		return "FATAL"
	case issue.SeverityError:
		return "ERROR"
	case issue.SeverityWarning:
		return "WARN "
	default:
		return "INFO "
	}
}
