package main

import (
	"github.com/spf13/cobra"
)

type organizeFlags struct {
	dryRun    bool
	overwrite bool
	json      bool
}

func newRootCommand() *cobra.Command {
	var configFlag string
	var logLevelFlag string
	var logFormatFlag string
	var flags organizeFlags

	ctx := newCommandContext(&configFlag, &logLevelFlag, &logFormatFlag)

	rootCmd := &cobra.Command{
		Use:   "tidy [dir]",
		Short: "Sort the files of a directory into category folders",
		Long: "tidy moves every file directly inside a directory into a subfolder named after its type\n" +
			"(Images, Videos, Documents, Audio, Archives, Executables, Code, or Others).\n" +
			"The directory defaults to organize.target_dir, $XDG_DOWNLOAD_DIR, or ~/Downloads.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOrganize(cmd, ctx, args, flags)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level override (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormatFlag, "log-format", "", "Log format override (console, json)")

	rootCmd.Flags().BoolVarP(&flags.dryRun, "dry-run", "n", false, "Only show what would be done; do not create folders or move files")
	rootCmd.Flags().BoolVar(&flags.overwrite, "overwrite", false, "Replace an existing file of the same name in the category folder (default: skip)")
	rootCmd.Flags().BoolVar(&flags.json, "json", false, "Print the run report as JSON")

	rootCmd.AddCommand(newCategoriesCommand(ctx))
	rootCmd.AddCommand(newCheckCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
