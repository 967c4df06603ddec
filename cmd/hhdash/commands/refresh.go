package commands

import (
	"fmt"
	"strings"

	"homehealth-dashboard/cmd/hhdash/globals"

	"github.com/spf13/cobra"
)

var pdfDirectory string

func init() {
	processCmd.Flags().StringVarP(&pdfDirectory, "dir", "d", "", "directory on the api host to read pdfs from (default: pdf_directory from config, or data/pdfs)")
	rootCmd.AddCommand(refreshCmd)
	rootCmd.AddCommand(processCmd)
}

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Make the api reload the latest analytics files.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		res, err := globals.Get(ctx).Client.Refresh(ctx)
		if err != nil {
			return err
		}
		fmt.Println(res.Message)
		if res.LastUpdated != "" {
			fmt.Printf("Last updated: %s\n", res.LastUpdated)
		}
		if len(res.TablesLoaded) > 0 {
			fmt.Printf("Tables: %s\n", strings.Join(res.TablesLoaded, ", "))
		}
		return nil
	},
}

var processCmd = &cobra.Command{
	Use:   "process-pdfs",
	Short: "Extract claims and visits from pdfs and regenerate every analytics table.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		g := globals.Get(ctx)

		dir := pdfDirectory
		if dir == "" {
			dir = g.Config.PDFDirectory
		}
		fmt.Printf("Processing %s, this can take a while...\n", dir)

		res, err := g.Client.ProcessPDFs(ctx, dir)
		if err != nil {
			return err
		}
		fmt.Println(res.Message)
		fmt.Printf("Claims extracted: %d\n", res.ClaimsExtracted)
		fmt.Printf("Visits extracted: %d\n", res.VisitsExtracted)
		if res.LastUpdated != "" {
			fmt.Printf("Last updated: %s\n", res.LastUpdated)
		}
		return nil
	},
}
