package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ampkit/projspace/internal/hook"
	"github.com/ampkit/projspace/internal/projectstore"
)

func newProjectsCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "Inspect project namespaces",
	}
	cmd.AddCommand(newProjectsListCmd(root))
	return cmd
}

func newProjectsListCmd(root *rootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List project namespaces under the storage base",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			base, err := hook.DefaultStorageBase(root.storageBase)
			if err != nil {
				return err
			}
			projects, err := projectstore.Discover(base)
			if err != nil && len(projects) == 0 {
				return err
			}

			if asJSON || !stdoutIsTerminal() {
				payload := map[string]any{"projects": projects}
				out, merr := json.MarshalIndent(payload, "", "  ")
				if merr != nil {
					return merr
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(out))
				return err
			}

			rows := [][]string{{"NAMESPACE", "PATH", "SESSIONS", "LAST ACCESSED"}}
			for _, p := range projects {
				rows = append(rows, []string{
					p.Name,
					p.Metadata.FullPath,
					strconv.Itoa(p.SessionCount),
					p.Metadata.LastAccessed,
				})
			}
			writeColumns(cmd.OutOrStdout(), rows)
			return err
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Always emit JSON")
	return cmd
}
