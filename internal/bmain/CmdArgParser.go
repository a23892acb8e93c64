package bmain

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/roger-dv/better-main/internal/util"
)

var (
	FlagConfigFilePath string
	FlagJson           bool
	FlagTable          bool
	FlagQuery          string
	FlagDumpConfig     bool

	exitCode util.BmainCmdError

	RootCmd = &cobra.Command{
		Use:     "bmain [-- ARGS...]",
		Short:   "print the invocation arguments through an arena-backed view",
		Long:    "",
		Version: util.Version(),
		Args:    cobra.ArbitraryArgs,
		Run: func(cmd *cobra.Command, args []string) {
			// Index 0 of the demonstrated sequence is always the invoked
			// program's path, so it is re-attached ahead of the positional
			// args cobra has already stripped of our own flags.
			argv := append([]string{os.Args[0]}, args...)
			exitCode = RunBetterMain(argv, os.Stdout)
		},
	}
)

// ParseCmdArgs executes the root command and returns the process exit code.
func ParseCmdArgs() util.BmainCmdError {
	util.InitLogger("")
	if err := RootCmd.Execute(); err != nil {
		return util.ErrorCmdArg
	}
	return exitCode
}

func init() {
	RootCmd.SetVersionTemplate(util.VersionTemplate())
	RootCmd.PersistentFlags().StringVarP(&FlagConfigFilePath, "config", "C", "",
		"Path to configuration file")
	RootCmd.Flags().BoolVar(&FlagJson, "json", false,
		"Output in JSON format")
	RootCmd.Flags().BoolVar(&FlagTable, "table", false,
		"Output as a borderless table")
	RootCmd.Flags().StringVarP(&FlagQuery, "query", "q", "",
		"Extract a value from the JSON output by gjson path (implies --json)")
	RootCmd.Flags().BoolVar(&FlagDumpConfig, "dump-config", false,
		"Print the effective configuration as YAML and exit")
}
