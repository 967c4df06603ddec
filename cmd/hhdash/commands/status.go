package commands

import (
	"strings"

	"homehealth-dashboard/cmd/hhdash/globals"
	"homehealth-dashboard/cmd/hhdash/utils"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(statusCmd)
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show which api is used, whether it is up and who is logged in.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		g := globals.Get(ctx)

		t := utils.NewTable()
		t.AppendRow(table.Row{"API", g.BaseURL})

		state := g.Session.State()
		user := "(not logged in)"
		if state.IsAuthenticated {
			user = state.Username
		}
		t.AppendRow(table.Row{"User", user})

		info, err := g.Auth.Info(ctx)
		if err != nil {
			t.AppendRow(table.Row{"Status", utils.ErrorMessage(err)})
			t.Render()
			return nil
		}
		status := info.Status
		if status == "" {
			status = "running"
		}
		t.AppendRow(table.Row{"Status", status})
		t.AppendRow(table.Row{"Service", strings.TrimSpace(info.Message + " " + info.Version)})
		if info.LastUpdated != "" {
			t.AppendRow(table.Row{"Data Updated", info.LastUpdated})
		}
		if len(info.Endpoints) > 0 {
			t.AppendRow(table.Row{"Endpoints", strings.Join(info.Endpoints, "\n")})
		}
		t.Render()
		return nil
	},
}
