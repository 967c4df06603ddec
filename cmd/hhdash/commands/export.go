package commands

import (
	"fmt"
	"path/filepath"

	"homehealth-dashboard/cmd/hhdash/globals"
	"homehealth-dashboard/internal/api"
	"homehealth-dashboard/lib/osutil"

	"github.com/spf13/cobra"
)

var exportOutput string

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", ".", "file or directory to save the workbook to")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:       "export <profitability|explorer>",
	Short:     "Download the excel workbook the api generates.",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{string(api.ExportProfitability), string(api.ExportExplorer)},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		blob, err := globals.Get(ctx).Client.Export(ctx, api.ExportKind(args[0]))
		if err != nil {
			return err
		}

		path := exportOutput
		if path == "" || osutil.IsDir(path) {
			path = filepath.Join(path, blob.Filename)
		}
		err = osutil.WriteFileAtomic(path, blob.Data, 0644)
		if err != nil {
			return fmt.Errorf("save %s: %w", path, err)
		}
		fmt.Printf("Saved %s (%d bytes).\n", path, len(blob.Data))
		return nil
	},
}
