package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/gofhir/models/pkg/logger"
	"github.com/gofhir/models/pkg/record"
	"github.com/gofhir/models/pkg/tree"
)

// run executes the CLI with args and returns what it printed.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	logger.SetOutput(os.Stderr)
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := loadConfig(viper.New(), "")
		if err != nil {
			t.Fatalf("loadConfig: %v", err)
		}
		if cfg.Output != "text" || cfg.Validation.Unknown != "reject" || !cfg.Validation.Constraints {
			t.Errorf("unexpected defaults: %+v", cfg)
		}
		if cfg.Validation.Workers < 1 {
			t.Errorf("Workers = %d", cfg.Validation.Workers)
		}
	})

	t.Run("file", func(t *testing.T) {
		path := writeFile(t, "fhirmodel.yaml", "output: yaml\nvalidation:\n  unknown: ignore\n  workers: 3\n  strict: true\n")
		cfg, err := loadConfig(viper.New(), path)
		if err != nil {
			t.Fatalf("loadConfig: %v", err)
		}
		want := ValidationConfig{Unknown: "ignore", Strict: true, Constraints: true, References: true, Workers: 3}
		if diff := cmp.Diff(want, cfg.Validation); diff != "" {
			t.Errorf("validation config (-want +got):\n%s", diff)
		}
		if cfg.unknownPolicy() != record.IgnoreUnknown {
			t.Errorf("unknownPolicy() = %s", cfg.unknownPolicy())
		}
	})

	t.Run("environment overrides file", func(t *testing.T) {
		path := writeFile(t, "fhirmodel.yaml", "validation:\n  workers: 3\n")
		t.Setenv("FHIRMODEL_VALIDATION_WORKERS", "5")
		cfg, err := loadConfig(viper.New(), path)
		if err != nil {
			t.Fatalf("loadConfig: %v", err)
		}
		if cfg.Validation.Workers != 5 {
			t.Errorf("Workers = %d, want 5", cfg.Validation.Workers)
		}
	})

	invalid := map[string]string{
		"FHIRMODEL_VALIDATION_WORKERS": "0",
		"FHIRMODEL_VALIDATION_UNKNOWN": "keep",
		"FHIRMODEL_OUTPUT":             "csv",
		"FHIRMODEL_LOG_LEVEL":          "loud",
	}
	for env, value := range invalid {
		t.Run(env, func(t *testing.T) {
			t.Setenv(env, value)
			if _, err := loadConfig(viper.New(), ""); err == nil {
				t.Errorf("%s=%s accepted", env, value)
			}
		})
	}

	t.Run("missing file", func(t *testing.T) {
		if _, err := loadConfig(viper.New(), filepath.Join(t.TempDir(), "none.yaml")); err == nil {
			t.Error("missing config file accepted")
		}
	})
}

func TestSampleValidates(t *testing.T) {
	for _, rt := range sampleTypes() {
		t.Run(rt, func(t *testing.T) {
			out, err := run(t, "", "sample", rt)
			if err != nil {
				t.Fatalf("sample: %v", err)
			}
			path := writeFile(t, rt+".json", out)
			report, err := run(t, "", "validate", "-o", "json", path)
			if err != nil {
				t.Fatalf("validate: %v\n%s", err, report)
			}
			var got struct {
				Results []ValidationOutput `json:"results"`
			}
			if err := json.Unmarshal([]byte(report), &got); err != nil {
				t.Fatal(err)
			}
			if len(got.Results) != 1 || got.Results[0].ResourceType != rt || len(got.Results[0].Issues) != 0 {
				t.Errorf("unexpected report: %s", report)
			}
		})
	}
}

func TestNewSample(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	a, err := newSample("Claim", now)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := newSample("Claim", now)
	idA, _ := record.Get(a, "id")
	idB, _ := record.Get(b, "id")
	if idA == nil || cmp.Equal(idA, idB) {
		t.Errorf("ids not unique: %v %v", idA, idB)
	}
	created, _ := record.Get(a, "created")
	if got := created.(interface{ String() string }).String(); got != "2026-03-01" {
		t.Errorf("created = %s", got)
	}

	if _, err := newSample("Patient", now); err == nil {
		t.Error("sample for Patient")
	}
}

func TestValidateCommand(t *testing.T) {
	dir := t.TempDir()
	good, _ := run(t, "", "sample", "ClaimResponse")
	if err := os.WriteFile(filepath.Join(dir, "good.json"), []byte(good), 0o600); err != nil {
		t.Fatal(err)
	}
	bad := strings.Replace(good, `"outcome": "complete"`, `"outcome": "approved"`, 1)
	if bad == good {
		t.Fatal("fixture edit did not apply")
	}
	if err := os.WriteFile(filepath.Join(dir, "bad.json"), []byte(bad), 0o600); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "", "validate", filepath.Join(dir, "good.json"))
	if err != nil {
		t.Fatalf("good document: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Status: VALID") {
		t.Errorf("text report:\n%s", out)
	}

	out, err = run(t, "", "validate", "--metrics", "-o", "yaml", filepath.Join(dir, "*.json"))
	if !errors.Is(err, errInvalid) {
		t.Fatalf("err = %v, want errInvalid", err)
	}
	var rep struct {
		Results []ValidationOutput `yaml:"results"`
		Metrics struct {
			ValidationsTotal uint64 `yaml:"validationsTotal"`
			ValidationsValid uint64 `yaml:"validationsValid"`
		} `yaml:"metrics"`
	}
	if err := yaml.Unmarshal([]byte(out), &rep); err != nil {
		t.Fatalf("yaml report: %v\n%s", err, out)
	}
	if len(rep.Results) != 2 || rep.Results[0].Valid || !rep.Results[1].Valid {
		t.Errorf("results: %+v", rep.Results)
	}
	if rep.Results[0].Issues[0].MessageID != "INVALID_CODE" {
		t.Errorf("issue: %+v", rep.Results[0].Issues[0])
	}
	if rep.Metrics.ValidationsTotal != 2 || rep.Metrics.ValidationsValid != 1 {
		t.Errorf("metrics: %+v", rep.Metrics)
	}

	out, err = run(t, good, "validate", "-")
	if err != nil || !strings.Contains(out, "== stdin ==") {
		t.Errorf("stdin: %v\n%s", err, out)
	}

	if _, err := run(t, "", "validate", filepath.Join(dir, "*.xml")); err == nil || errors.Is(err, errInvalid) {
		t.Errorf("unmatched pattern: err = %v", err)
	}
}

func TestConvertCommand(t *testing.T) {
	jsonDoc, err := run(t, "", "sample", "Claim")
	if err != nil {
		t.Fatal(err)
	}
	src := writeFile(t, "claim.json", jsonDoc)

	xmlDoc, err := run(t, "", "convert", "--to", "xml", src)
	if err != nil {
		t.Fatalf("to xml: %v", err)
	}
	if !strings.HasPrefix(xmlDoc, `<Claim xmlns="http://hl7.org/fhir">`) {
		t.Errorf("xml output:\n%s", xmlDoc)
	}

	back, err := run(t, xmlDoc, "convert", "--to", "json", "-")
	if err != nil {
		t.Fatalf("to json: %v", err)
	}
	want, err := tree.ParseObject([]byte(jsonDoc))
	if err != nil {
		t.Fatal(err)
	}
	got, err := tree.ParseObject([]byte(back))
	if err != nil {
		t.Fatal(err)
	}
	if !tree.Equal(want, got) {
		t.Errorf("xml round trip changed the resource:\nwant %s\n got %s", jsonDoc, back)
	}

	if _, err := run(t, "", "convert", "--to", "csv", src); err == nil {
		t.Error("unknown format accepted")
	}
	unknown := writeFile(t, "bad.json", `{"resourceType":"Claim","colour":"red"}`)
	if _, err := run(t, "", "convert", unknown); !errors.Is(err, record.ErrUnknownField) {
		t.Errorf("err = %v, want ErrUnknownField", err)
	}
}

func TestSchemaCommand(t *testing.T) {
	out, err := run(t, "", "schema")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("Claim\nClaimResponse\nMedicationKnowledge\n", out); diff != "" {
		t.Errorf("type list (-want +got):\n%s", diff)
	}

	out, err = run(t, "", "schema", "-o", "json", "Claim.item")
	if err != nil {
		t.Fatal(err)
	}
	var fields []fieldOutput
	if err := json.Unmarshal([]byte(out), &fields); err != nil {
		t.Fatal(err)
	}
	var serviced *fieldOutput
	for i := range fields {
		if fields[i].Name == "serviced[x]" {
			serviced = &fields[i]
		}
	}
	if serviced == nil {
		t.Fatalf("no serviced[x] in %s", out)
	}
	if diff := cmp.Diff([]string{"date", "Period"}, serviced.Choices); diff != "" {
		t.Errorf("choices (-want +got):\n%s", diff)
	}

	out, err = run(t, "", "schema", "ClaimResponse")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "outcome") || !strings.Contains(out, "required http://hl7.org/fhir/ValueSet/remittance-outcome") {
		t.Errorf("text schema:\n%s", out)
	}

	if _, err := run(t, "", "schema", "Patient"); err == nil {
		t.Error("unknown type accepted")
	}
}
