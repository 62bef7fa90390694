package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/farmsecure/farmsecure/pkg/dashboard"
	"github.com/farmsecure/farmsecure/pkg/surface"
)

// viewFlags are shared by the dashboard views.
type viewFlags struct {
	dataset   string
	outputFmt string
	lang      string
	noColor   bool
}

func (v *viewFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&v.dataset, "dataset", "", "Dataset file (.yaml, .json or .toml; default: built-in demo farm)")
	f.StringVar(&v.outputFmt, "output", "", "Output format: text or json (default from config)")
	f.StringVar(&v.lang, "lang", "", "Display language: en, hi or te (default from config)")
	f.BoolVar(&v.noColor, "no-color", false, "Disable colored output")
}

// render writes v as JSON, or calls text with a terminal renderer. A
// configured format the views cannot produce falls back to text; only an
// explicit --output is rejected.
func (a *app) render(cmd *cobra.Command, vf *viewFlags, v any, text func(*surface.TerminalRenderer) error) error {
	format := a.outputFormat(vf.outputFmt)
	if vf.outputFmt == "" && format != surface.FormatJSON {
		format = surface.FormatText
	}

	switch format {
	case surface.FormatJSON:
		return surface.WriteJSON(cmd.OutOrStdout(), v)
	case surface.FormatText:
		l, err := a.language(vf.lang)
		if err != nil {
			return err
		}
		return text(&surface.TerminalRenderer{Lang: l, NoColor: vf.noColor})
	default:
		return fmt.Errorf("output format %q is not supported by %s (want text or json)", format, cmd.Name())
	}
}

func newDashboardCmd(a *app) *cobra.Command {
	var vf viewFlags

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show the farm overview",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := a.dataset(vf.dataset)
			if err != nil {
				return err
			}
			e, err := a.engine()
			if err != nil {
				return err
			}
			ov, err := dashboard.BuildOverview(e, ds)
			if err != nil {
				return err
			}
			a.metrics.ObserveAssessment(ov.Risk)

			return a.render(cmd, &vf, ov, func(r *surface.TerminalRenderer) error {
				return r.RenderOverview(cmd.OutOrStdout(), ov)
			})
		},
	}
	vf.register(cmd)

	return cmd
}

func newChecklistCmd(a *app) *cobra.Command {
	var (
		vf       viewFlags
		status   string
		category string
		toggle   []int
	)

	cmd := &cobra.Command{
		Use:   "checklist",
		Short: "List compliance checklist items",
		Long: `Lists checklist items filtered by status and category. --toggle flips the
completion of the given item IDs for this listing only; nothing is saved.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sf, err := dashboard.ParseStatusFilter(status)
			if err != nil {
				return err
			}
			ds, err := a.dataset(vf.dataset)
			if err != nil {
				return err
			}

			items := ds.Checklist
			for _, id := range toggle {
				items = dashboard.ToggleItem(items, id)
			}
			now := a.now()
			items = dashboard.FilterChecklist(items, sf, category, now)

			return a.render(cmd, &vf, items, func(r *surface.TerminalRenderer) error {
				return r.RenderChecklist(cmd.OutOrStdout(), items, now)
			})
		},
	}
	vf.register(cmd)
	cmd.Flags().StringVar(&status, "status", "all", "Status filter: all, completed, pending or overdue")
	cmd.Flags().StringVar(&category, "category", dashboard.AllCategories, "Category filter")
	cmd.Flags().IntSliceVar(&toggle, "toggle", nil, "Item IDs whose completion to flip")

	return cmd
}

func newTrainingCmd(a *app) *cobra.Command {
	var (
		vf  viewFlags
		set []string
	)

	cmd := &cobra.Command{
		Use:   "training",
		Short: "Show training module progress",
		Long: `Shows training modules. --set ID=PERCENT overrides a module's progress for
this listing only; nothing is saved.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := a.dataset(vf.dataset)
			if err != nil {
				return err
			}

			modules := ds.Training
			for _, s := range set {
				id, pct, err := parseProgress(s)
				if err != nil {
					return err
				}
				modules = dashboard.UpdateProgress(modules, id, pct)
			}

			return a.render(cmd, &vf, modules, func(r *surface.TerminalRenderer) error {
				return r.RenderTraining(cmd.OutOrStdout(), modules)
			})
		},
	}
	vf.register(cmd)
	cmd.Flags().StringSliceVar(&set, "set", nil, "Progress override as ID=PERCENT")

	return cmd
}

func parseProgress(s string) (id, pct int, err error) {
	idStr, pctStr, ok := strings.Cut(s, "=")
	if !ok {
		return 0, 0, fmt.Errorf("invalid progress %q (want ID=PERCENT)", s)
	}
	if id, err = strconv.Atoi(strings.TrimSpace(idStr)); err != nil {
		return 0, 0, fmt.Errorf("invalid module id in %q: %w", s, err)
	}
	if pct, err = strconv.Atoi(strings.TrimSuffix(strings.TrimSpace(pctStr), "%")); err != nil {
		return 0, 0, fmt.Errorf("invalid progress in %q: %w", s, err)
	}
	return id, pct, nil
}

func newAlertsCmd(a *app) *cobra.Command {
	var (
		vf       viewFlags
		typ      string
		severity string
		dismiss  []int
	)

	cmd := &cobra.Command{
		Use:   "alerts",
		Short: "List alerts",
		Long: `Lists alerts filtered by type and severity. --dismiss hides the given alert
IDs for this listing only; nothing is saved.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := a.dataset(vf.dataset)
			if err != nil {
				return err
			}

			alerts := ds.Alerts
			for _, id := range dismiss {
				alerts = dashboard.DismissAlert(alerts, id)
			}
			alerts = dashboard.FilterAlerts(alerts, typ, severity)

			return a.render(cmd, &vf, alerts, func(r *surface.TerminalRenderer) error {
				return r.RenderAlerts(cmd.OutOrStdout(), alerts)
			})
		},
	}
	vf.register(cmd)
	cmd.Flags().StringVar(&typ, "type", dashboard.AllAlerts, "Type filter: all, outbreak, regulation, weather or maintenance")
	cmd.Flags().StringVar(&severity, "severity", dashboard.AllAlerts, "Severity filter: all, low, medium, high or critical")
	cmd.Flags().IntSliceVar(&dismiss, "dismiss", nil, "Alert IDs to hide")

	return cmd
}
