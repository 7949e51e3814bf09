package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/ukaji3/xlsheet-go/pkg/xlsheet"
	"github.com/ukaji3/xlsheet-go/pkg/xlsheet/models"
)

// editFlags are shared by every command that changes a workbook.
type editFlags struct {
	sheet  string
	output string
}

func (f *editFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.sheet, "sheet", "", "Sheet to edit (default: first sheet)")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "Output xlsx path")
	_ = cmd.MarkFlagRequired("output")
}

// edit loads input with every optional component, applies fn to the
// selected sheet and saves all sheets to the output path.
func (f *editFlags) edit(input string, fn func(s *xlsheet.Sheet) error) error {
	wb, err := xlsheet.Open(input, xlsheet.Options{Mode: xlsheet.ModeVerbose})
	if err != nil {
		return fmt.Errorf("load failed: %w", err)
	}
	if len(wb.Sheets) == 0 {
		return fmt.Errorf("workbook has no sheets: %s", input)
	}

	s := wb.Sheets[0]
	if f.sheet != "" {
		var ok bool
		if s, ok = wb.Sheet(f.sheet); !ok {
			return fmt.Errorf("sheet not found: %s", f.sheet)
		}
	}

	if err := fn(s); err != nil {
		return err
	}

	if err := wb.SaveAs(f.output); err != nil {
		return fmt.Errorf("save failed: %w", err)
	}
	log.Info().Str("sheet", s.Name()).Str("output", f.output).Msg("Saved workbook")
	return nil
}

func newShiftCmd() *cobra.Command {
	var (
		flags                    editFlags
		start, end, n            int
		copyHeight, resetHeights bool
	)

	cmd := &cobra.Command{
		Use:   "shift [input.xlsx]",
		Short: "Move a band of rows up or down",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("end") {
				end = start
			}
			return flags.edit(args[0], func(s *xlsheet.Sheet) error {
				res, err := s.ShiftRowsWithHeight(start, end, n, copyHeight, resetHeights)
				if err != nil {
					return err
				}
				log.Info().
					Str("sheet", s.Name()).
					Int("start", start).
					Int("end", end).
					Int("n", n).
					Int("moved", len(res.Moved)).
					Int("dropped", len(res.Dropped)).
					Msg("Shifted rows")
				if len(res.Dropped) > 0 {
					log.Debug().Ints("rows", res.Dropped).Msg("Dropped overwritten rows")
				}
				return nil
			})
		},
	}

	flags.register(cmd)
	cmd.Flags().IntVar(&start, "start", 0, "First row of the band (0-based)")
	cmd.Flags().IntVar(&end, "end", 0, "Last row of the band (0-based, default: start)")
	cmd.Flags().IntVar(&n, "n", 0, "Rows to move, negative moves up")
	cmd.Flags().BoolVar(&copyHeight, "copy-height", false, "Keep explicit row heights")
	cmd.Flags().BoolVar(&resetHeights, "reset-height", false, "Reset every row to the default height")
	_ = cmd.MarkFlagRequired("n")
	return cmd
}

func newGroupCmd(group bool) *cobra.Command {
	var (
		flags      editFlags
		rows, cols string
	)

	use, short, verb := "group", "Raise the outline level of rows or columns", "Grouped"
	if !group {
		use, short, verb = "ungroup", "Lower the outline level of rows or columns", "Ungrouped"
	}

	cmd := &cobra.Command{
		Use:   use + " [input.xlsx]",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if (rows == "") == (cols == "") {
				return fmt.Errorf("exactly one of --rows or --cols is required")
			}
			axis, spec := "rows", rows
			if cols != "" {
				axis, spec = "columns", cols
			}
			from, to, err := parseBand(spec, axis == "columns")
			if err != nil {
				return err
			}

			return flags.edit(args[0], func(s *xlsheet.Sheet) error {
				var err error
				switch {
				case axis == "rows" && group:
					err = s.GroupRow(from, to)
				case axis == "rows":
					err = s.UngroupRow(from, to)
				case group:
					err = s.GroupColumn(from, to)
				default:
					err = s.UngroupColumn(from, to)
				}
				if err != nil {
					return err
				}
				f := s.Format()
				log.Info().
					Str("sheet", s.Name()).
					Str("axis", axis).
					Int("from", from).
					Int("to", to).
					Int("max_row_level", f.OutlineLevelRow).
					Int("max_col_level", f.OutlineLevelCol).
					Msg(verb)
				return nil
			})
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&rows, "rows", "", "Row band, 1-based and inclusive (e.g. 2:5)")
	cmd.Flags().StringVar(&cols, "cols", "", "Column band, 1-based or letters (e.g. 1:3 or B:D)")
	return cmd
}

func newMergeCmd() *cobra.Command {
	var (
		flags editFlags
		ref   string
	)

	cmd := &cobra.Command{
		Use:   "merge [input.xlsx]",
		Short: "Add a merged region",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			region, err := models.ParseCellRange(ref)
			if err != nil {
				return err
			}
			return flags.edit(args[0], func(s *xlsheet.Sheet) error {
				count := s.AddMergedRegion(region)
				log.Info().Str("sheet", s.Name()).Str("ref", region.Ref()).Int("count", count).Msg("Merged cells")
				return nil
			})
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&ref, "ref", "", "Range to merge (e.g. B2:C3)")
	_ = cmd.MarkFlagRequired("ref")
	return cmd
}

func newUnmergeCmd() *cobra.Command {
	var (
		flags editFlags
		ref   string
		index int
	)

	cmd := &cobra.Command{
		Use:   "unmerge [input.xlsx]",
		Short: "Remove a merged region by index or range",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			byIndex := cmd.Flags().Changed("index")
			if byIndex == (ref != "") {
				return fmt.Errorf("exactly one of --index or --ref is required")
			}

			return flags.edit(args[0], func(s *xlsheet.Sheet) error {
				i := index
				if !byIndex {
					region, err := models.ParseCellRange(ref)
					if err != nil {
						return err
					}
					if i = s.MergedRegionIndex(region); i < 0 {
						return fmt.Errorf("no merged region %s on sheet %q", region.Ref(), s.Name())
					}
				}
				if err := s.RemoveMergedRegion(i); err != nil {
					return err
				}
				log.Info().Str("sheet", s.Name()).Int("index", i).Int("count", s.NumMergedRegions()).Msg("Removed merged region")
				return nil
			})
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&ref, "ref", "", "Range of the region to remove (e.g. B2:C3)")
	cmd.Flags().IntVar(&index, "index", 0, "Index of the region to remove")
	return cmd
}

func newHeaderCmd() *cobra.Command {
	var (
		flags               editFlags
		kind                string
		left, center, right string
	)

	cmd := &cobra.Command{
		Use:   "header [input.xlsx]",
		Short: "Set the sections of a header or footer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return flags.edit(args[0], func(s *xlsheet.Sheet) error {
				h, err := s.HeaderFooter(xlsheet.HeaderFooterKind(kind))
				if err != nil {
					return err
				}
				if cmd.Flags().Changed("left") {
					h.SetLeft(left)
				}
				if cmd.Flags().Changed("center") {
					h.SetCenter(center)
				}
				if cmd.Flags().Changed("right") {
					h.SetRight(right)
				}
				log.Info().Str("sheet", s.Name()).Str("kind", kind).Str("value", h.Raw()).Msg("Updated header/footer")
				return nil
			})
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&kind, "kind", string(xlsheet.KindOddHeader),
		"odd-header, odd-footer, even-header, even-footer, first-header or first-footer")
	cmd.Flags().StringVar(&left, "left", "", "Left section text")
	cmd.Flags().StringVar(&center, "center", "", "Center section text")
	cmd.Flags().StringVar(&right, "right", "", "Right section text")
	return cmd
}

func newMarginCmd() *cobra.Command {
	var (
		flags editFlags
		kind  string
		value float64
	)

	cmd := &cobra.Command{
		Use:   "margin [input.xlsx]",
		Short: "Set a page margin in inches",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			margin, err := xlsheet.ParseMarginKind(kind)
			if err != nil {
				return err
			}
			return flags.edit(args[0], func(s *xlsheet.Sheet) error {
				if err := s.SetMargin(margin, value); err != nil {
					return err
				}
				log.Info().Str("sheet", s.Name()).Stringer("margin", margin).Float64("value", value).Msg("Set margin")
				return nil
			})
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&kind, "kind", "", "left, right, top, bottom, header or footer")
	cmd.Flags().Float64Var(&value, "value", 0, "Margin size in inches")
	_ = cmd.MarkFlagRequired("kind")
	_ = cmd.MarkFlagRequired("value")
	return cmd
}
