package app

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/planetary-society/missions/pkg/logging"
	"github.com/planetary-society/missions/pkg/missions"
)

// NewIngestCommand creates the ingest command, the main reconciliation
// entry point.
func (a *App) NewIngestCommand() *cobra.Command {
	var (
		force bool
		all   bool
	)

	cmd := &cobra.Command{
		Use:   "ingest [mission...]",
		Short: "Reconcile missions from the configured sources",
		Long: `Ingest reconciles mission records from the primary spreadsheet and the
secondary catalog sources.

Missions are named by their spreadsheet short title. With --all, every
mission in the spreadsheet is reconciled. With --force, existing records
are overwritten wholesale instead of merged.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !all && len(args) == 0 {
				return fmt.Errorf("no missions specified (name missions or pass --all)")
			}
			if all && len(args) > 0 {
				return fmt.Errorf("--all cannot be combined with mission names")
			}

			ctx := logging.WithLogger(cmd.Context(), a.logger)
			ctx = logging.WithRunID(ctx, uuid.NewString())
			log := logging.FromContext(ctx)

			reconciler, primary, err := a.Reconciler(ctx, force)
			if err != nil {
				return err
			}

			keys := args
			if all {
				keys = primary.Keys()
			}
			if len(keys) == 0 {
				log.Warn().Msg("no missions found in primary source")
				return nil
			}

			log.Info().Int("missions", len(keys)).Bool("force", force).Msg("starting ingest")

			results := reconciler.ReconcileAll(ctx, keys, a.config.Concurrency)
			for _, res := range results {
				if res.Failed() {
					log.Error().Err(res.Err).Str("mission", res.Key).Msg("reconciliation failed")
				}
			}

			log.Info().
				Int("missions", len(results)).
				Int("failed", results.Failed()).
				Msg("ingest complete")

			return results.Err()
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing records instead of merging")
	cmd.Flags().BoolVar(&all, "all", false, "reconcile every mission in the primary source")

	return cmd
}

// NewValidateCommand creates the validate command.
func (a *App) NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [path]",
		Short: "Validate every persisted mission record",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := a.Store()
			if len(args) == 1 {
				store = missions.NewStore(args[0])
			}
			names, err := store.List()
			if err != nil {
				return err
			}

			failed := 0
			for _, name := range names {
				m, err := store.Load(name)
				if err == nil {
					err = m.Validate()
				}
				if err != nil {
					failed++
					fmt.Fprintf(cmd.OutOrStdout(), "FAIL  %s: %v\n", name, err)
					continue
				}
				if a.config.Verbose {
					fmt.Fprintf(cmd.OutOrStdout(), "ok    %s\n", name)
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d records invalid", failed, len(names))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d records valid\n", len(names))
			return nil
		},
	}
}

// NewListCommand creates the list command.
func (a *App) NewListCommand() *cobra.Command {
	var local bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List missions available in the primary source",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if local {
				names, err := a.Store().List()
				if err != nil {
					return err
				}
				for _, name := range names {
					fmt.Fprintln(cmd.OutOrStdout(), name)
				}
				return nil
			}

			ctx := logging.WithLogger(cmd.Context(), a.logger)
			primary := a.Spreadsheet(ctx)
			for _, key := range primary.Keys() {
				fmt.Fprintln(cmd.OutOrStdout(), key)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&local, "local", false, "list persisted record files instead of the primary source")

	return cmd
}

// NewVersionCommand creates the version command.
func (a *App) NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "missions %s (commit %s, built %s)\n", a.version, a.commit, a.date)
		},
	}
}
