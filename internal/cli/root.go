package cli

import (
	"flag"

	"github.com/spf13/cobra"
)

// NewRootCommand creates the root command of the cratesio CLI.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "cratesio",
		Short:         "Utilities to make performing certain calculations more convenient",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(NewAddOneCommand())
	cmd.AddCommand(NewMixCommand())

	return cmd
}

// BindGoFlags expose a go flag set, e.g. the one glog registers on, as persistent flags of cmd.
// cobra fills the values when it parses the command line
func BindGoFlags(cmd *cobra.Command, fs *flag.FlagSet) error {
	cmd.PersistentFlags().AddGoFlagSet(fs)
	// glog writes "logging before flag.Parse" on every line until the set reports Parsed()
	return fs.Parse([]string{})
}
