package main

import (
	"io"
	"strings"
	"time"

	zaplogfmt "github.com/jsternberg/zap-logfmt"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/gdml-lang/gdml/compiler/internal/config"
	"github.com/gdml-lang/gdml/compiler/internal/term"
)

const envPrefix = "GDMLC"

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "gdmlc",
		Short:         "GDML compiler front end",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.AddCommand(
		newCheckCommand(),
		newDumpCommand(),
		newVersionCommand(),
	)
	return root
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			term.Wprintf(cmd.OutOrStdout(), "gdmlc %s\n", version)
		},
	}
}

/* ---------- options ---------- */

// newViper returns a viper instance that reads GDMLC_* environment
// variables, with "-" in flag names mapped to "_".
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	return v
}

func mustBindPFlags(v *viper.Viper, fs *pflag.FlagSet, names ...string) {
	for _, name := range names {
		if err := v.BindPFlag(name, fs.Lookup(name)); err != nil {
			panic(err)
		}
	}
}

// loadConfig reads the config file named by --config and lays flags and
// environment variables that were set on top of it.
func loadConfig(v *viper.Viper) (config.Config, error) {
	cfg, err := config.Load(v.GetString("config"))
	if err != nil {
		return cfg, err
	}
	if v.IsSet("werror") {
		cfg.Check.Werror = v.GetBool("werror")
	}
	if v.IsSet("max-errors") {
		cfg.Check.MaxErrors = v.GetInt("max-errors")
	}
	if v.IsSet("no-warn-unused") && v.GetBool("no-warn-unused") {
		cfg.Check.WarnUnused = false
	}
	if v.IsSet("log-format") {
		cfg.Logging.Format = v.GetString("log-format")
	}
	if v.IsSet("log-level") {
		cfg.Logging.Level = v.GetString("log-level")
	}
	return cfg, cfg.Validate()
}

/* ---------- logging ---------- */

// newLogger builds the process logger for the configured format and level.
func newLogger(w io.Writer, l config.Logging) (*zap.Logger, error) {
	level, err := l.ZapLevel()
	if err != nil {
		return nil, err
	}
	ec := zap.NewProductionEncoderConfig()
	ec.EncodeTime = func(ts time.Time, encoder zapcore.PrimitiveArrayEncoder) {
		encoder.AppendString(ts.UTC().Format(time.RFC3339))
	}
	ec.EncodeDuration = func(d time.Duration, encoder zapcore.PrimitiveArrayEncoder) {
		encoder.AppendString(d.String())
	}

	var enc zapcore.Encoder
	switch l.Format {
	case config.FormatJSON:
		enc = zapcore.NewJSONEncoder(ec)
	case config.FormatLogfmt:
		enc = zaplogfmt.NewEncoder(ec)
	default:
		enc = zapcore.NewConsoleEncoder(ec)
	}
	return zap.New(zapcore.NewCore(enc, zapcore.Lock(zapcore.AddSync(w)), level)), nil
}
