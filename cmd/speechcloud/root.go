package main

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	speechcloud "github.com/baditaflorin/go_speech_wordcloud"
	"github.com/baditaflorin/go_speech_wordcloud/internal/config"
)

var errFilesFailed = errors.New("one or more transcripts failed")

type flags struct {
	configFile     string
	envFile        string
	input          string
	output         string
	font           string
	topN           int
	maxWords       int
	extraStopwords []string
	warmUp         bool
	verbose        bool
	json           bool
	logFile        string
}

func RootCmd() *cobra.Command {
	return newRootCmd(&flags{})
}

func newRootCmd(f *flags) *cobra.Command {
	root := &cobra.Command{
		Use:   "speechcloud",
		Short: "Word clouds and noun frequency charts for Japanese speech transcripts",
		Long: "speechcloud reads every .txt transcript in a directory and writes a word cloud,\n" +
			"a top-N bar chart and the extracted common nouns into <parent>/<YYYY-MM-DD-HH-MM>-result/.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}
			summary, err := speechcloud.Run(cmd.Context(), speechcloud.WithConfig(cfg))
			if err != nil {
				return err
			}
			printSummary(cmd.OutOrStdout(), summary)
			if summary.Failed() {
				return errFilesFailed
			}
			return nil
		},
	}

	fl := root.Flags()
	fl.StringVarP(&f.configFile, "config", "c", "", "YAML configuration file")
	fl.StringVar(&f.envFile, "env-file", "", "dotenv file to load instead of ./.env")
	fl.StringVarP(&f.input, "input", "i", "", "directory containing the .txt transcripts")
	fl.StringVarP(&f.output, "output", "o", "", "parent directory of the timestamped result directory")
	fl.StringVar(&f.font, "font", "", "TrueType/OpenType font with Japanese glyphs")
	fl.IntVarP(&f.topN, "top", "n", 0, "number of bars in the frequency chart")
	fl.IntVar(&f.maxWords, "max-words", 0, "maximum number of words placed in the word cloud")
	fl.StringSliceVar(&f.extraStopwords, "stopword", nil, "additional stopword (repeatable or comma separated)")
	fl.BoolVar(&f.warmUp, "warm-up", false, "warm up the morphological analyzer before the run")
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "enable debug logging")
	fl.BoolVar(&f.json, "json", false, "log in JSON format")
	fl.StringVar(&f.logFile, "log-file", "", "append the log to this file instead of stdout")

	return root
}

// loadConfig layers defaults, the YAML file, dotenv/environment variables and finally
// the flags that were set.
func loadConfig(cmd *cobra.Command, f *flags) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if f.envFile != "" {
		cfg, err = config.LoadFile(f.envFile)
	} else {
		cfg, err = config.Load()
	}
	if err == nil && f.configFile != "" {
		cfg, err = config.LoadYAML(afero.NewOsFs(), f.configFile)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	changed := cmd.Flags().Changed
	if changed("input") {
		cfg.InputDir = f.input
	}
	if changed("output") {
		cfg.OutputParent = f.output
	}
	if changed("font") {
		cfg.FontPath = f.font
	}
	if changed("top") {
		cfg.TopN = f.topN
	}
	if changed("max-words") {
		cfg.MaxWords = f.maxWords
	}
	if changed("stopword") {
		cfg.ExtraStopwords = append(cfg.ExtraStopwords, f.extraStopwords...)
	}
	if changed("warm-up") {
		cfg.WarmUp = f.warmUp
	}
	if changed("verbose") {
		cfg.Log.Verbose = f.verbose
	}
	if changed("json") {
		cfg.Log.JSON = f.json
	}
	if changed("log-file") {
		cfg.Log.File = f.logFile
	}
	return cfg, cfg.Validate()
}

func printSummary(w io.Writer, summary speechcloud.Summary) {
	fmt.Fprintf(w, "Output directory: %s\n", summary.OutputDir)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FILE\tSTATUS\tTOKENS\tDISTINCT\tERROR")
	for _, r := range summary.Results {
		msg := ""
		if r.Err != nil {
			msg = r.Err.Error()
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\n", r.Source, r.Status, r.Tokens, r.Distinct, msg)
	}
	tw.Flush()
	fmt.Fprintf(w, "%d ok, %d empty, %d failed\n",
		summary.Count(speechcloud.StatusOK),
		summary.Count(speechcloud.StatusEmpty),
		summary.Count(speechcloud.StatusFailed),
	)
}
