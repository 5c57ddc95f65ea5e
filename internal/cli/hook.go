package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ampkit/projspace/internal/hook"
)

func newHookCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hook",
		Short: "Entry points for the host's hook dispatcher",
	}
	cmd.AddCommand(newHookSessionStartCmd(root))
	return cmd
}

func newHookSessionStartCmd(root *rootOptions) *cobra.Command {
	var (
		dir          string
		sessionID    string
		purpose      string
		messageCount int
		useGitRoot   bool
		createDirs   bool
	)

	cmd := &cobra.Command{
		Use:   "session-start",
		Short: "Resolve the project namespace for a starting session",
		Long: `Resolves the project root for the given directory, ensures its storage
namespace exists, refreshes metadata.json, records the session in
index.json, and prints the resulting storage context as JSON.`,
		Args: cobra.NoArgs,
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
			if sessionID == "" {
				sessionID = uuid.NewString()
			}

			h := hook.New(hook.Config{
				UseGitRoot:  useGitRoot,
				StorageBase: base,
				CreateDirs:  createDirs,
			})
			result, err := h.OnSessionStart(dir, sessionID, purpose, messageCount)
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "Session start directory (default: current dir)")
	cmd.Flags().StringVar(&sessionID, "session-id", "", "Session identifier (default: generated)")
	cmd.Flags().StringVar(&purpose, "purpose", "", "Session purpose recorded in metadata")
	cmd.Flags().IntVar(&messageCount, "message-count", 0, "Current transcript message count")
	cmd.Flags().BoolVar(&useGitRoot, "use-git-root", true, "Use the repository top level as the project root")
	cmd.Flags().BoolVar(&createDirs, "create-dirs", true, "Create missing namespace directories")

	return cmd
}
