package main

import (
	"os"

	"github.com/spf13/cobra"

	"minibash/internal/repl"
)

var rootCmd = &cobra.Command{
	Use:   "minibash",
	Short: "A minimal interactive command interpreter",
	Long: `minibash reads one command per line, runs it as a child process from
$HOME or /bin, and reports how it ended. cd and exit are builtins.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return repl.Run()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
