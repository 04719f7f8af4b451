package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/komsit37/ticker/pkg/ticker/i18n"
	"github.com/komsit37/ticker/pkg/ticker/lexicon"
	"github.com/komsit37/ticker/pkg/ticker/logger"
	"github.com/komsit37/ticker/pkg/ticker/prefs"
	"github.com/komsit37/ticker/pkg/ticker/types"
)

// app holds what every subcommand needs, built once in PersistentPreRunE.
type app struct {
	log      zerolog.Logger
	prefs    *prefs.Store
	resolver *i18n.Resolver
	lang     types.Lang
}

type rootFlags struct {
	prefsPath string
	lang      string
	logLevel  string
	logJSON   bool
	overlays  []string
	color     string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		rf rootFlags
		a  = &app{log: zerolog.Nop()}
	)
	rootCmd := &cobra.Command{
		Use:           "ticker",
		Short:         "Render stock snapshots with translated labels and formatted metrics",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(rf)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&rf.prefsPath, "prefs", "", "preferences file (default "+prefs.DefaultPath()+")")
	pf.StringVarP(&rf.lang, "lang", "l", "", "display language for this run: "+langList())
	pf.StringVar(&rf.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	pf.BoolVar(&rf.logJSON, "log-json", false, "log JSON lines instead of console output")
	pf.StringSliceVar(&rf.overlays, "lexicon", nil, "lexicon overlay YAML files, applied in order")
	pf.StringVar(&rf.color, "color", "auto", "color output: auto, always, never")

	// TICKER_LOG_LEVEL and friends fill flags the user did not set.
	viper.SetEnvPrefix("TICKER")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	_ = viper.BindPFlag("log-level", pf.Lookup("log-level"))
	_ = viper.BindPFlag("color", pf.Lookup("color"))
	cobra.OnInitialize(func() {
		rf.logLevel = viper.GetString("log-level")
		rf.color = viper.GetString("color")
	})

	rootCmd.AddCommand(
		newShowCmd(a, &rf),
		newQuoteCmd(a, &rf),
		newLangCmd(a),
		newThemeCmd(a),
		newTranslateCmd(a),
		newReverseCmd(a),
		newLexiconCmd(a),
	)
	return rootCmd
}

func (a *app) init(rf rootFlags) error {
	a.log = logger.New(logger.Config{Level: rf.logLevel, Pretty: !rf.logJSON})

	p, err := prefs.Load(rf.prefsPath)
	if err != nil {
		return err
	}
	a.prefs = p
	a.lang = p.Language()
	if rf.lang != "" {
		l, err := types.ParseLang(rf.lang)
		if err != nil {
			return fmt.Errorf("--lang: %w (want %s)", err, langList())
		}
		a.lang = l
	}

	overlays := make([]lexicon.Overlay, 0, len(rf.overlays))
	for _, path := range rf.overlays {
		ov, err := lexicon.LoadOverlay(path)
		if err != nil {
			return err
		}
		overlays = append(overlays, ov)
	}
	a.resolver = i18n.NewResolver(lexicon.New(overlays...), a.log)
	a.log.Debug().Str("lang", string(a.lang)).Int("overlays", len(overlays)).Msg("ready")
	return nil
}

func useColor(mode string) bool {
	switch strings.ToLower(mode) {
	case "always":
		return true
	case "never":
		return false
	default:
		fd := os.Stdout.Fd()
		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}
}

func langList() string {
	names := make([]string, 0, len(types.Langs))
	for _, l := range types.Langs {
		names = append(names, string(l))
	}
	return strings.Join(names, ", ")
}
