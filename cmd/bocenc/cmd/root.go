package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tonwire/boc"
)

var (
	// Version is the version of the binary.
	Version = "0.0.0"

	// Commit is the commit hash of the binary.
	Commit = ""

	cfgFile    string
	logLevel   string
	showConfig bool

	cfg = defaultConfig()
	log *zap.SugaredLogger
)

type config struct {
	Capacity int    `mapstructure:"capacity"`
	Format   string `mapstructure:"format"`
}

func defaultConfig() config {
	return config{
		Capacity: boc.DefaultCapacity,
		Format:   "hex",
	}
}

// rootCmd represents the bocenc command tree.
var rootCmd = &cobra.Command{
	Use:   "bocenc",
	Short: "Encode values into the cell bit-string wire format",
	Long: `bocenc encodes single values - fixed-width and variable-length
integers, coin amounts and addresses - into the cell bit-string wire
format and prints the resulting bits.`,
	SilenceUsage: true,
}

// Execute runs the root command; main calls it once.
func Execute() {
	rootCmd.Version = fmt.Sprintf("%s (commit %s)", Version, Commit)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := setupLogging(); err != nil {
			return err
		}
		if err := loadConfig(); err != nil {
			return err
		}
		if showConfig {
			spew.Dump(cfg)
		}
		return nil
	}
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $HOME/.bocenc.yaml)")
	rootCmd.PersistentFlags().Int("capacity", boc.DefaultCapacity, "builder capacity in bits")
	rootCmd.PersistentFlags().StringP("format", "f", "hex", "output format: hex | bits")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", zapcore.InfoLevel.String(), "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&showConfig, "show-config", false, "dump the effective configuration")
}

func setupLogging() error {
	level, err := zapcore.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}
	zapCfg := zap.NewDevelopmentConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	logger, err := zapCfg.Build()
	if err != nil {
		return err
	}
	log = logger.Sugar()
	return nil
}

func loadConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
		viper.SetConfigName(".bocenc")
		viper.SetConfigType("yaml")
	}
	if err := viper.BindPFlag("capacity", rootCmd.PersistentFlags().Lookup("capacity")); err != nil {
		return err
	}
	if err := viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format")); err != nil {
		return err
	}
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
		log.Debug("no config file found, using defaults")
	} else {
		log.Debugw("loaded config file", "path", viper.ConfigFileUsed())
	}
	return viper.Unmarshal(&cfg)
}

// newBuilder returns a builder sized by the effective configuration.
func newBuilder() *boc.Builder {
	return boc.NewWithCapacity(cfg.Capacity)
}

// emit prints the builder contents in the configured output format.
func emit(b *boc.Builder) error {
	switch cfg.Format {
	case "hex":
		fmt.Println(b.Bits().String())
	case "bits":
		view := b.Bits()
		var sb strings.Builder
		for i := 0; i < view.Len(); i++ {
			if view.At(i) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		fmt.Println(sb.String())
	default:
		return fmt.Errorf("unknown output format %q", cfg.Format)
	}
	log.Debugw("encoded", "bits", b.Len())
	return nil
}
