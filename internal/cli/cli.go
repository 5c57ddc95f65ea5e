package cli

import (
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

type rootOptions struct {
	storageBase string
}

func Execute() int {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "projspace",
		Short: "Per-project session storage namespaces",
		Long: `projspace assigns each project a stable, collision-proof storage
namespace ({slug}-{hash}) and keeps its metadata and session index current.`,
		SilenceErrors: false,
		SilenceUsage:  true,
		Version:       buildVersion(),
	}

	cmd.PersistentFlags().StringVar(&opts.storageBase, "storage-base", "", "Override storage base dir (default: ~/.amplifier/projects)")

	cmd.AddCommand(
		newHookCmd(opts),
		newProjectsCmd(opts),
		newSessionsCmd(opts),
	)

	return cmd
}

func buildVersion() string {
	v := version
	if commit != "" {
		v += " (" + commit + ")"
	}
	if date != "" {
		v += " " + date
	}
	return v
}
