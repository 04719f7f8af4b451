package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/komsit37/ticker/pkg/ticker/lexicon"
)

func newTranslateCmd(a *app) *cobra.Command {
	var domain string
	cmd := &cobra.Command{
		Use:   "translate <key>...",
		Short: "Print the display text for canonical keys",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := lexicon.ParseDomain(domain)
			if err != nil {
				return err
			}
			loc := a.resolver.In(a.lang)
			for _, k := range args {
				var v string
				switch d {
				case lexicon.Sectors:
					v = loc.Sector(k)
				case lexicon.Industries:
					v = loc.Industry(k)
				default:
					v = loc.T(k)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", k, v)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&domain, "domain", "d", "labels", "lexicon: labels, sectors, industries")
	return cmd
}

func newReverseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reverse <text>...",
		Short: "Recover canonical keys from displayed labels in any language",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			misses := 0
			for _, text := range args {
				k, ok := a.resolver.ReverseTranslate(a.lang, text)
				if !ok {
					misses++
					k = "?"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", text, k)
			}
			if misses > 0 {
				return fmt.Errorf("%d of %d labels not found", misses, len(args))
			}
			return nil
		},
	}
}

func newLexiconCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lexicon",
		Short: "Inspect the translation tables",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "check",
		Short: "Report keys missing from a language, orphan keys and blank texts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gaps := a.resolver.Store().Validate()
			if len(gaps) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "lexicon ok")
				return nil
			}
			tw := table.NewWriter()
			tw.SetOutputMirror(cmd.OutOrStdout())
			tw.SetStyle(table.StyleLight)
			tw.AppendHeader(table.Row{"KIND", "DOMAIN", "LANG", "KEY"})
			for _, g := range gaps {
				tw.AppendRow(table.Row{g.Kind, g.Domain, g.Lang, g.Key})
			}
			tw.Render()
			return fmt.Errorf("%d lexicon gaps", len(gaps))
		},
	})
	return cmd
}
