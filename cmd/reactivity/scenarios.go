package main

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/AnatoleLucet/reactivity"
	"github.com/AnatoleLucet/reactivity/instrument"
)

type scenario struct {
	name string
	desc string
	run  func(w io.Writer)
}

var scenarios = []scenario{
	{"signal", "set, get and compute on a plain signal", signalScenario},
	{"reactive", "a reactive re-runs when the signal it read changes", reactiveScenario},
	{"dependencies", "implicit and explicit dependency edits", dependenciesScenario},
	{"computed", "a computed signal follows its inputs", computedScenario},
	{"recursion", "a reactive writing the signal it reads", recursionScenario},
}

func findScenario(name string) (scenario, bool) {
	i := slices.IndexFunc(scenarios, func(s scenario) bool { return s.name == name })
	if i < 0 {
		return scenario{}, false
	}

	return scenarios[i], true
}

func scenariosCmd() *cobra.Command {
	var (
		logLevel    string
		withMetrics bool
		list        bool
	)

	cmd := &cobra.Command{
		Use:   "scenarios [name...]",
		Short: "Run built-in scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if list {
				for _, s := range scenarios {
					fmt.Fprintf(out, "%-14s %s\n", s.name, s.desc)
				}
				return nil
			}

			logger, err := newLogger(logLevel)
			if err != nil {
				return err
			}

			reg := prometheus.NewRegistry()
			observers := []reactivity.Observer{instrument.NewLogger(logger)}
			if withMetrics {
				observers = append(observers, instrument.NewMetrics(instrument.WithRegistry(reg)))
			}

			reactivity.SetObserver(instrument.Multi(observers...))
			defer reactivity.SetObserver(nil)

			if err := runScenarios(out, args); err != nil {
				return err
			}

			if withMetrics {
				return printMetrics(out, reg)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&logLevel, "log-level", "info", "Engine log level (trace, debug, info, ...)")
	cmd.Flags().BoolVar(&withMetrics, "metrics", false, "Print engine counters after the run")
	cmd.Flags().BoolVarP(&list, "list", "l", false, "List available scenarios")

	return cmd
}

func runScenarios(w io.Writer, names []string) error {
	selected := scenarios
	if len(names) > 0 {
		selected = make([]scenario, 0, len(names))
		for _, name := range names {
			s, ok := findScenario(name)
			if !ok {
				return fmt.Errorf("unknown scenario %q", name)
			}
			selected = append(selected, s)
		}
	}

	for _, s := range selected {
		fmt.Fprintf(w, "== %s\n", s.name)
		s.run(w)
	}

	return nil
}

func printMetrics(w io.Writer, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}

	fmt.Fprintln(w, "== metrics")
	for _, f := range families {
		for _, m := range f.GetMetric() {
			labels := make([]string, 0, len(m.GetLabel()))
			for _, l := range m.GetLabel() {
				labels = append(labels, l.GetName()+"="+l.GetValue())
			}

			name := f.GetName()
			if len(labels) > 0 {
				name += "{" + strings.Join(labels, ",") + "}"
			}

			switch {
			case m.GetCounter() != nil:
				fmt.Fprintf(w, "%s %g\n", name, m.GetCounter().GetValue())
			case m.GetHistogram() != nil:
				fmt.Fprintf(w, "%s count=%d sum=%g\n", name, m.GetHistogram().GetSampleCount(), m.GetHistogram().GetSampleSum())
			}
		}
	}

	return nil
}

func signalScenario(w io.Writer) {
	s := reactivity.NewSignal(0).WithLabel("s")
	fmt.Fprintf(w, "get: %d\n", s.Get())

	s.Set(1)
	fmt.Fprintf(w, "set 1, get: %d\n", s.Get())

	s.Compute(func(v int) int { return v + 1 })
	fmt.Fprintf(w, "compute +1, get: %d\n", s.Get())
}

func reactiveScenario(w io.Writer) {
	s := reactivity.NewSignal(0).WithLabel("s")

	var n int
	r := reactivity.NewReactive(func(...any) struct{} {
		n = s.Get()
		fmt.Fprintf(w, "reactive saw %d\n", n)
		return struct{}{}
	}).WithLabel("r")
	r.Bind()

	s.Set(5)
	s.Set(5)
	fmt.Fprintf(w, "n: %d\n", n)

	r.Clear()
}

func dependenciesScenario(w io.Writer) {
	a := reactivity.NewSignal(0).WithLabel("a")
	r := reactivity.NewReactive(func(...any) int { return a.Get() }).WithLabel("r")
	r.Bind()
	fmt.Fprintf(w, "after bind: %d dependencies\n", r.Dependencies())

	b := reactivity.NewSignal(0).WithLabel("b")
	r.Add(b)
	fmt.Fprintf(w, "after add b: %d dependencies\n", r.Dependencies())

	r.Delete(a)
	fmt.Fprintf(w, "after delete a: %d dependencies\n", r.Dependencies())

	b.Clear()
	fmt.Fprintf(w, "after clear b: %d dependencies\n", r.Dependencies())
}

func computedScenario(w io.Writer) {
	count := reactivity.NewSignal(1).WithLabel("count")
	scaled := reactivity.NewComputedSignal(func(factor int) int {
		return count.Get() * factor
	}, 2)
	scaled.WithLabel("scaled")
	fmt.Fprintf(w, "count=%d factor=%d scaled=%d\n", count.Peek(), scaled.Entry(), scaled.Peek())

	count.Set(10)
	fmt.Fprintf(w, "count=%d factor=%d scaled=%d\n", count.Peek(), scaled.Entry(), scaled.Peek())

	scaled.Set(3)
	fmt.Fprintf(w, "count=%d factor=%d scaled=%d\n", count.Peek(), scaled.Entry(), scaled.Peek())

	scaled.Clear()
}

func recursionScenario(w io.Writer) {
	s := reactivity.NewSignal(0).WithLabel("s")

	runs := 0
	r := reactivity.NewEffect(func() {
		runs++
		if v := s.Get(); v < 5 {
			s.Set(v + 1)
		}
	})
	fmt.Fprintf(w, "value %d after %d runs\n", s.Peek(), runs)

	r.Clear()
}
