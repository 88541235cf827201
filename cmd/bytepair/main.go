package main

import (
	"github.com/fatih/color"
	cc "github.com/ivanpirog/coloredcobra"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/djeday123/bytepair/pkg/config"
)

var (
	cfg *config.Config

	configFilePath string
	dbgLvl         bool
	traceLvl       bool
	outputColor    string
)

func initConfig() {
	var err error

	if configFilePath != "" {
		cfg, err = config.Load(configFilePath)
		if err != nil {
			log.Fatal(err)
		}
		log.Debugf("Using %s as configuration file", configFilePath)
	} else {
		cfg = config.DefaultConfig()
	}

	lvl, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		log.Fatalf("log level %s unknown", cfg.Log.Level)
	}
	log.SetLevel(lvl)

	if dbgLvl {
		log.SetLevel(log.DebugLevel)
	}
	if traceLvl {
		log.SetLevel(log.TraceLevel)
	}

	switch cfg.Log.Format {
	case "", "text":
	case "json":
		log.SetFormatter(&log.JSONFormatter{})
	default:
		log.Fatalf("log format %s unknown", cfg.Log.Format)
	}

	if outputColor != "" {
		cfg.Report.Color = outputColor
	}
	switch cfg.Report.Color {
	case "yes":
		color.NoColor = false
	case "no":
		color.NoColor = true
	case "auto":
		// fatih/color detects the terminal on its own
	default:
		log.Fatalf("output color %s unknown", cfg.Report.Color)
	}
}

func main() {
	// set the formatter asap and worry about level later
	logFormatter := &log.TextFormatter{TimestampFormat: "02-01-2006 15:04:05", FullTimestamp: true}
	log.SetFormatter(logFormatter)

	rootCmd := &cobra.Command{
		Use:   "bytepair",
		Short: "bytepair trains byte pair encoding tokenizers",
		Long: `bytepair trains a byte pair encoding tokenizer on a corpus file, encodes
text with it, reports vocabulary statistics and verifies round-trips.`,
		DisableAutoGenTag: true,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	cc.Init(&cc.Config{
		RootCmd:       rootCmd,
		Headings:      cc.Yellow,
		Commands:      cc.Green + cc.Bold,
		CmdShortDescr: cc.Cyan,
		Example:       cc.Italic,
		ExecName:      cc.Bold,
		Aliases:       cc.Bold + cc.Italic,
		FlagsDataType: cc.White,
		Flags:         cc.Green,
		FlagsDescr:    cc.Cyan,
	})
	rootCmd.SetOut(color.Output)

	rootCmd.PersistentFlags().StringVarP(&configFilePath, "config", "c", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&outputColor, "color", "", "Output color: yes, no, auto.")
	rootCmd.PersistentFlags().BoolVar(&dbgLvl, "debug", false, "Set logging to debug.")
	rootCmd.PersistentFlags().BoolVar(&traceLvl, "trace", false, "Set logging to trace.")

	rootCmd.PersistentFlags().SortFlags = false

	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(NewTrainCmd())
	rootCmd.AddCommand(NewEncodeCmd())
	rootCmd.AddCommand(NewRoundtripCmd())

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
