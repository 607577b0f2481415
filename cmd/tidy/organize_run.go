package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"tidy/internal/categories"
	"tidy/internal/config"
	"tidy/internal/logging"
	"tidy/internal/organizer"
	"tidy/internal/preflight"
	"tidy/internal/services"
)

func runOrganize(cmd *cobra.Command, ctx *commandContext, args []string, flags organizeFlags) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := ctx.ensureLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	target := cfg.Organize.TargetDir
	if len(args) == 1 {
		expanded, err := config.ExpandPath(args[0])
		if err != nil {
			return services.Wrap(services.ErrValidation, "organizing", "resolve target", "Unable to expand target path", err)
		}
		target = expanded
	}
	if target == "" {
		return services.Wrap(
			services.ErrValidation,
			"organizing",
			"resolve target",
			"No target directory: pass one as an argument or set organize.target_dir (no home directory to default to)",
			nil,
		)
	}

	overwrite := cfg.Organize.Overwrite
	if cmd.Flags().Changed("overwrite") {
		overwrite = flags.overwrite
	}

	runCtx := services.WithRunID(cmd.Context(), uuid.NewString())
	runLogger := logging.WithContext(runCtx, logger)

	if !flags.dryRun {
		if check := preflight.CheckDirectoryAccess(preflight.NameTarget, target); check.Problem == preflight.ProblemPermissions {
			logging.WarnWithContext(
				runLogger,
				"target directory permissions look insufficient",
				"preflight_permissions",
				logging.String("detail", check.Detail),
				logging.String(logging.FieldErrorHint, "run tidy check to inspect access"),
				logging.String(logging.FieldImpact, "individual moves may fail; the run continues"),
			)
		}
	}

	out := cmd.OutOrStdout()
	colorize := !flags.json && shouldColorize(out)
	printer := &reportPrinter{out: out, colorize: colorize, dryRun: flags.dryRun}

	opts := organizer.Options{DryRun: flags.dryRun, Overwrite: overwrite}
	if !flags.json {
		opts.OnResult = printer.result
	}

	org := organizer.New(categories.Build(categories.Default()), runLogger)
	report, err := org.Organize(runCtx, target, opts)
	if err != nil {
		return err
	}

	if flags.json {
		return writeJSON(cmd.OutOrStdout(), report)
	}
	printer.summary(report)
	if printer.err != nil {
		return fmt.Errorf("write report: %w", printer.err)
	}
	return nil
}
