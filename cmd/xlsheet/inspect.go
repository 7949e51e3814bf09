package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/xlsheet-go/pkg/xlsheet"
	"github.com/ukaji3/xlsheet-go/pkg/xlsheet/models"
	"github.com/ukaji3/xlsheet-go/pkg/xlsheet/output"
)

func newInspectCmd() *cobra.Command {
	var (
		outputPath string
		sheetName  string
		mode       string
		pretty     bool
		table      bool
	)

	cmd := &cobra.Command{
		Use:   "inspect [input.xlsx]",
		Short: "Print the sheet model of a workbook as JSON or tables",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loadMode, err := parseMode(mode)
			if err != nil {
				return err
			}

			wb, err := xlsheet.Open(args[0], xlsheet.Options{Mode: loadMode})
			if err != nil {
				return fmt.Errorf("load failed: %w", err)
			}
			data := wb.Snapshot()

			if sheetName != "" {
				sheet, ok := data.Sheet(sheetName)
				if !ok {
					return fmt.Errorf("sheet not found: %s", sheetName)
				}
				data.Sheets = []models.SheetData{*sheet}
			}

			out := os.Stdout
			if outputPath != "" {
				f, err := os.Create(outputPath)
				if err != nil {
					return fmt.Errorf("failed to write output: %w", err)
				}
				defer f.Close()
				out = f
			}

			if !table {
				if err := output.WriteJSON(out, data, pretty); err != nil {
					return fmt.Errorf("serialization failed: %w", err)
				}
				fmt.Fprintln(out)
				return nil
			}

			if err := output.RenderSummary(out, data); err != nil {
				return err
			}
			for i := range data.Sheets {
				sheet := &data.Sheets[i]
				fmt.Fprintf(out, "\n%s\n", sheet.Name)
				for _, render := range []func() error{
					func() error { return output.RenderRows(out, sheet) },
					func() error { return output.RenderColumns(out, sheet) },
					func() error { return output.RenderMerges(out, sheet) },
				} {
					if err := render(); err != nil {
						return err
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().StringVar(&sheetName, "sheet", "", "Only print this sheet")
	cmd.Flags().StringVar(&mode, "mode", "standard", "Load mode: light, standard, verbose")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().BoolVar(&table, "table", false, "Print tables instead of JSON")
	return cmd
}

func parseMode(mode string) (xlsheet.Mode, error) {
	switch mode {
	case "light":
		return xlsheet.ModeLight, nil
	case "standard":
		return xlsheet.ModeStandard, nil
	case "verbose":
		return xlsheet.ModeVerbose, nil
	}
	return "", fmt.Errorf("invalid mode: %s (must be light, standard, or verbose)", mode)
}
