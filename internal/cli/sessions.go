package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ampkit/projspace/internal/hook"
)

func newSessionsCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "Inspect a project's session index",
	}
	cmd.AddCommand(newSessionsListCmd(root))
	return cmd
}

func newSessionsListCmd(root *rootOptions) *cobra.Command {
	var (
		dir        string
		useGitRoot bool
		asJSON     bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded sessions for a project, most recent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			base, err := hook.DefaultStorageBase(root.storageBase)
			if err != nil {
				return err
			}
			if dir == "" {
				dir, err = os.Getwd()
				if err != nil {
					return err
				}
			}

			h := hook.New(hook.Config{UseGitRoot: useGitRoot, StorageBase: base})
			ns, identity, err := h.Locate(dir)
			if err != nil {
				return err
			}
			idx, err := ns.ReadIndex()
			if err != nil {
				return err
			}

			if asJSON || !stdoutIsTerminal() {
				payload := map[string]any{
					"namespace": identity.NamespaceName,
					"sessions":  idx.Sessions,
				}
				out, err := json.MarshalIndent(payload, "", "  ")
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(out))
				return nil
			}

			rows := [][]string{{"SESSION", "TIMESTAMP", "MESSAGES"}}
			for _, s := range idx.Sessions {
				rows = append(rows, []string{s.SessionID, s.Timestamp, strconv.Itoa(s.MessageCount)})
			}
			writeColumns(cmd.OutOrStdout(), rows)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "Project directory (default: current dir)")
	cmd.Flags().BoolVar(&useGitRoot, "use-git-root", true, "Use the repository top level as the project root")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Always emit JSON")

	return cmd
}
