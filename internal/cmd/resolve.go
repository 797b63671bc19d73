package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/pulsenav/settings/internal/nav"
	"github.com/pulsenav/settings/internal/router"
)

// ResolveCmd returns the `pulse-settings resolve` command.
func ResolveCmd() *cobra.Command {
	var (
		output       string
		maxHops      int
		defaultTab   string
		defaultAgent string
	)
	cmd := &cobra.Command{
		Use:   "resolve <url>...",
		Short: "Show where settings links land",
		Long:  "Resolve runs each URL through the navigator and prints every corrective hop, the settled location and the tab it shows.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			if output != "text" && output != "yaml" {
				return fmt.Errorf("unknown output format %q (want text or yaml)", output)
			}

			cfg, err := LoadConfig()
			if err != nil {
				return err
			}
			if defaultTab != "" {
				cfg.DefaultTab = defaultTab
			}
			if defaultAgent != "" {
				cfg.DefaultAgent = defaultAgent
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger := Logger(c)
			opts := append(cfg.NavOptions(), nav.WithLogger(logger))

			traces := make([]router.Trace, 0, len(args))
			for _, raw := range args {
				trace, err := router.Resolve(nav.ParseLocation(raw), maxHops, opts...)
				if err != nil {
					return fmt.Errorf("resolve %s: %w", raw, err)
				}
				logger.Debug("resolved",
					zap.String("start", trace.Start.String()),
					zap.String("final", trace.Final.String()),
					zap.Int("evaluations", trace.Evaluations))
				traces = append(traces, trace)
			}

			if output == "yaml" {
				return writeTracesYAML(c.OutOrStdout(), traces)
			}
			for i, trace := range traces {
				if i > 0 {
					fmt.Fprintln(c.OutOrStdout())
				}
				writeTraceText(c.OutOrStdout(), trace)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format: text or yaml")
	cmd.Flags().IntVar(&maxHops, "max-hops", 10, "fail when a link needs more corrective navigations than this")
	cmd.Flags().StringVar(&defaultTab, "default-tab", "", "tab shown on the bare settings root (overrides config)")
	cmd.Flags().StringVar(&defaultAgent, "default-agent", "", "agent used when a proxmox path names none (overrides config)")
	return cmd
}

func writeTraceText(w io.Writer, trace router.Trace) {
	fmt.Fprintf(w, "%s\n", trace.Start)
	for _, hop := range trace.Hops {
		fmt.Fprintf(w, "  -> %s\n", hop)
	}
	fmt.Fprintf(w, "  tab:         %s (%s)\n", trace.State.Tab, trace.State.Tab.Label())
	if trace.State.Tab == nav.TabProxmox {
		fmt.Fprintf(w, "  agent:       %s (%s)\n", trace.State.Agent, trace.State.Agent.Label())
	}
	fmt.Fprintf(w, "  evaluations: %d\n", trace.Evaluations)
}

func writeTracesYAML(w io.Writer, traces []router.Trace) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(traces); err != nil {
		return fmt.Errorf("encode traces: %w", err)
	}
	return enc.Close()
}
