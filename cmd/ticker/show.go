package main

import (
	"errors"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/komsit37/ticker/pkg/ticker/enrich"
	"github.com/komsit37/ticker/pkg/ticker/filter"
	"github.com/komsit37/ticker/pkg/ticker/pipeline"
	"github.com/komsit37/ticker/pkg/ticker/present"
	"github.com/komsit37/ticker/pkg/ticker/render"
	"github.com/komsit37/ticker/pkg/ticker/source"
)

type outputFlags struct {
	format      string
	prettyJSON  bool
	maxColWidth int
}

func (o *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.format, "format", "f", "table", "output format: table, json, text")
	cmd.Flags().BoolVar(&o.prettyJSON, "pretty", false, "indent JSON output")
	cmd.Flags().IntVar(&o.maxColWidth, "max-col-width", 40, "wrap table columns at this width")
}

func (a *app) runner(src source.Source, format string) (*pipeline.Runner, error) {
	r, err := render.New(format)
	if err != nil {
		return nil, err
	}
	return &pipeline.Runner{
		Source:    src,
		Presenter: present.New(a.resolver),
		Renderer:  r,
		Writer:    os.Stdout,
		Log:       a.log,
	}, nil
}

func (a *app) execOptions(rf *rootFlags, o outputFlags) pipeline.ExecuteOptions {
	return pipeline.ExecuteOptions{
		Lang:        a.lang,
		Color:       useColor(rf.color),
		Theme:       a.prefs.Theme(),
		PrettyJSON:  o.prettyJSON,
		MaxColWidth: o.maxColWidth,
		Width:       detectTerminalWidth(),
	}
}

func newShowCmd(a *app, rf *rootFlags) *cobra.Command {
	var (
		out    outputFlags
		tabs   []string
		groups string
	)
	cmd := &cobra.Command{
		Use:   "show <snapshot.yaml|dir>",
		Short: "Render snapshot files as a grouped dashboard",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires exactly 1 snapshot file or directory argument")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := filter.Parse(groups)
			if err != nil {
				return err
			}
			r, err := a.runner(source.YAMLSource{}, out.format)
			if err != nil {
				return err
			}
			opts := a.execOptions(rf, out)
			opts.Tabs = tabs
			opts.Filter = f
			return r.Execute(cmd.Context(), args[0], opts)
		},
	}
	out.register(cmd)
	cmd.Flags().StringSliceVarP(&tabs, "tabs", "t", nil, "tabs to show, in order: metrics, financials, valuation")
	cmd.Flags().StringVarP(&groups, "groups", "g", "", "group filter: names (a,b), glob (*_metrics), regex (/re/) or substring")
	return cmd
}

func newQuoteCmd(a *app, rf *rootFlags) *cobra.Command {
	var (
		out     outputFlags
		timeout time.Duration
		ttl     time.Duration
	)
	cmd := &cobra.Command{
		Use:   "quote <SYM>...",
		Short: "Fetch live quotes and render the header line",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := enrich.NewCacheService(enrich.NewYFService(timeout, a.log), ttl, enrich.DefaultCacheSize)
			r, err := a.runner(source.LiveSource{Quotes: svc, Log: a.log}, out.format)
			if err != nil {
				return err
			}
			return r.Execute(cmd.Context(), args, a.execOptions(rf, out))
		},
	}
	out.register(cmd)
	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Second, "per-symbol fetch timeout")
	cmd.Flags().DurationVar(&ttl, "cache-ttl", enrich.DefaultTTL, "quote cache lifetime")
	return cmd
}
