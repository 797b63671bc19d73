package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pulsenav/settings/internal/nav"
	"github.com/pulsenav/settings/internal/router"
)

// MaxEvaluations is how many navigator evaluations any known location may
// take to settle, counting the first one.
const MaxEvaluations = 3

var (
	errTooManyEvaluations = errors.New("too many evaluations")
	errNotFixedPoint      = errors.New("settled location is not a fixed point")
)

// CheckCmd returns the `pulse-settings check` command.
func CheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the navigation tables and legacy redirects",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			if err := nav.Validate(); err != nil {
				return fmt.Errorf("navigation tables: %w", err)
			}

			locations := nav.LegacyLocations()
			if err := CheckLocations(locations, Logger(c)); err != nil {
				return err
			}
			fmt.Fprintf(c.OutOrStdout(), "ok: %d tabs, %d legacy locations settle within %d evaluations\n",
				len(nav.AllTabs()), len(locations), MaxEvaluations)
			return nil
		},
	}
}

// CheckLocations resolves every location and reports the ones that take
// more than MaxEvaluations or do not settle on a fixed point.
func CheckLocations(locations []nav.Location, logger *zap.Logger) error {
	var errs []error
	for _, start := range locations {
		trace, err := router.Resolve(start, MaxEvaluations*2)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", start, err))
			continue
		}
		logger.Debug("checked location",
			zap.String("start", start.String()),
			zap.String("final", trace.Final.String()),
			zap.Int("evaluations", trace.Evaluations))
		if trace.Evaluations > MaxEvaluations {
			errs = append(errs, fmt.Errorf("%s: %d: %w", start, trace.Evaluations, errTooManyEvaluations))
			continue
		}
		again, err := router.Resolve(trace.Final, MaxEvaluations*2)
		if err != nil || len(again.Hops) > 0 {
			errs = append(errs, fmt.Errorf("%s -> %s: %w", start, trace.Final, errNotFixedPoint))
		}
	}
	return errors.Join(errs...)
}
