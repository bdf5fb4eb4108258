package admin

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var auditLogsCmd = &cobra.Command{
	Use:   "audit-logs",
	Short: "Show the platform audit trail",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, proceed, err := gate(cmd, "/admin/audit-logs")
		if err != nil || !proceed {
			return err
		}

		logs, err := client.AuditLogs(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list audit logs: %w", err)
		}
		if len(logs) == 0 {
			pterm.Info.Println("No audit entries recorded")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "WHEN\tUSER\tACTION\tOBJECT\tIP")
		for _, entry := range logs {
			object := entry.ModelName
			if entry.ObjectID != 0 {
				object = fmt.Sprintf("%s #%d", entry.ModelName, entry.ObjectID)
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				entry.CreatedAt.Local().Format(time.RFC822),
				entry.Username, entry.Action, object, entry.IPAddress)
		}
		return w.Flush()
	},
}
