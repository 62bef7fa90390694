package main

import (
	"github.com/spf13/cobra"

	"github.com/farmsecure/farmsecure/pkg/i18n"
	"github.com/farmsecure/farmsecure/pkg/surface"
)

func newLabelsCmd(a *app) *cobra.Command {
	var vf viewFlags

	cmd := &cobra.Command{
		Use:   "labels",
		Short: "List display strings for a language",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := a.language(vf.lang)
			if err != nil {
				return err
			}
			labels := make(map[string]string)
			for _, k := range i18n.Keys() {
				labels[k] = i18n.T(l, k)
			}

			return a.render(cmd, &vf, labels, func(r *surface.TerminalRenderer) error {
				return r.RenderLabels(cmd.OutOrStdout())
			})
		},
	}
	f := cmd.Flags()
	f.StringVar(&vf.outputFmt, "output", "", "Output format: text or json (default from config)")
	f.StringVar(&vf.lang, "lang", "", "Display language: en, hi or te (default from config)")

	return cmd
}
