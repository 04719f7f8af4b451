package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/komsit37/ticker/pkg/ticker/prefs"
	"github.com/komsit37/ticker/pkg/ticker/types"
)

func newLangCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lang [CODE|toggle]",
		Short: "Print, set or toggle the saved display language",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), a.prefs.Language())
				return nil
			}
			var l types.Lang
			if strings.EqualFold(args[0], "toggle") {
				l = a.prefs.ToggleLanguage()
			} else {
				parsed, err := types.ParseLang(args[0])
				if err != nil {
					return fmt.Errorf("%w (want %s)", err, langList())
				}
				l = parsed
				a.prefs.SetLanguage(l)
			}
			if err := a.prefs.Save(); err != nil {
				return err
			}
			a.log.Info().Str("lang", string(l)).Str("path", a.prefs.Path()).Msg("language saved")
			fmt.Fprintln(cmd.OutOrStdout(), l)
			return nil
		},
	}
}

func newThemeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "theme [dark|light|toggle]",
		Short: "Print, set or toggle the saved color theme",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), a.prefs.Theme())
				return nil
			}
			var t prefs.Theme
			if strings.EqualFold(args[0], "toggle") {
				t = a.prefs.ToggleTheme()
			} else {
				if err := a.prefs.SetTheme(prefs.Theme(args[0])); err != nil {
					return err
				}
				t = a.prefs.Theme()
			}
			if err := a.prefs.Save(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), t)
			return nil
		},
	}
}
