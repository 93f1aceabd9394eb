package main

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/gofhir/models"
	"github.com/gofhir/models/pkg/logger"
)

// errInvalid reports that at least one document failed validation. The
// results have already been printed.
var errInvalid = errors.New("validation failed")

// app carries the resolved configuration to the subcommands.
type app struct {
	v   *viper.Viper
	cfg *Config
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}
	root := &cobra.Command{
		Use:   "fhirmodel",
		Short: "Validate, convert and inspect FHIR R4 financial and medication records",
		Long: "fhirmodel works on Claim, ClaimResponse and MedicationKnowledge resources\n" +
			"in FHIR R4 JSON or XML. Settings can also be given in a YAML file (--config)\n" +
			"or as FHIRMODEL_* environment variables.",
		Version:       models.Version(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			path, _ := cmd.Flags().GetString("config")
			cfg, err := loadConfig(a.v, path)
			if err != nil {
				return err
			}
			a.cfg = cfg
			logger.SetOutput(cmd.ErrOrStderr())
			cfg.configureLogging()
			logger.Debug("config: %+v", *cfg)
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "YAML configuration file")
	flags.String("log-level", "warn", "log level (debug, info, warn, error, none)")
	flags.String("log-format", "text", "log format (text, json)")
	flags.StringP("output", "o", "text", "report format (text, json, yaml)")
	bindFlag(a.v, "log_level", flags.Lookup("log-level"))
	bindFlag(a.v, "log_format", flags.Lookup("log-format"))
	bindFlag(a.v, "output", flags.Lookup("output"))

	root.AddCommand(
		newValidateCmd(a),
		newConvertCmd(a),
		newSchemaCmd(a),
		newSampleCmd(a),
	)
	return root
}

func bindFlag(v *viper.Viper, key string, f *pflag.Flag) {
	if err := v.BindPFlag(key, f); err != nil {
		panic(err)
	}
}
