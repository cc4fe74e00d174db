package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-spellbook/internal/orchestrators/spells"
)

var (
	filterFlags []string
	noneFlags   []string
	toggleFlags []string
	sortField   string
	descending  bool
	columnsFlag string
	viewID      string
	selectIDs   []string
	showModel   bool
	optionField string
)

var spellsCmd = &cobra.Command{
	Use:   "spells",
	Short: "Browse the spell grid",
}

var listSpellsCmd = &cobra.Command{
	Use:   "list",
	Short: "List spells through the column filters",
	Long: `List spells passing every active column filter. Filter values are codes;
run "spells options --field FIELD" to see them. Examples:

  spells list --filter level=0,1 --filter school=4
  spells list --none ritual
  spells list --toggle concentration=1 --sort level --desc
  spells list --view view_123 --columns name,level,school`,
	Args: cobra.NoArgs,
	RunE: listSpells,
}

var spellOptionsCmd = &cobra.Command{
	Use:   "options",
	Short: "Show the checkboxes of one column filter",
	Args:  cobra.NoArgs,
	RunE:  spellOptions,
}

func init() {
	addFilterFlags(listSpellsCmd)
	listSpellsCmd.Flags().StringArrayVar(&toggleFlags, "toggle", nil, "Click checkboxes after the model is applied (FIELD=CODE[,CODE...])")
	listSpellsCmd.Flags().StringVar(&sortField, "sort", "", "Column to sort by")
	listSpellsCmd.Flags().BoolVar(&descending, "desc", false, "Sort descending")
	listSpellsCmd.Flags().StringVar(&columnsFlag, "columns", "", "Comma separated visible columns")
	listSpellsCmd.Flags().StringSliceVar(&selectIDs, "select", nil, "Spell IDs to mark as selected")
	listSpellsCmd.Flags().BoolVar(&showModel, "show-model", false, "Print the effective filter model as JSON")

	addFilterFlags(spellOptionsCmd)
	spellOptionsCmd.Flags().StringVar(&optionField, "field", "", "Column whose options to show")
	_ = spellOptionsCmd.MarkFlagRequired("field") // nolint:errcheck // flag exists

	spellsCmd.AddCommand(listSpellsCmd)
	spellsCmd.AddCommand(spellOptionsCmd)
}

func addFilterFlags(cmd *cobra.Command) {
	addModelFlags(cmd)
	cmd.Flags().StringVar(&viewID, "view", "", "Saved view to start from")
}

func addModelFlags(cmd *cobra.Command) {
	cmd.Flags().StringArrayVar(&filterFlags, "filter", nil, "Keep rows whose column matches a code (FIELD=CODE[,CODE...])")
	cmd.Flags().StringArrayVar(&noneFlags, "none", nil, "Uncheck every box of a column, hiding all rows")
}

func listSpells(cmd *cobra.Command, _ []string) error {
	model, err := parseFilterModel(filterFlags, noneFlags)
	if err != nil {
		return err
	}
	toggles, err := parseToggles(toggleFlags)
	if err != nil {
		return err
	}

	svc, cleanup, err := newSpellsService(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	out, err := svc.ListSpells(context.Background(), &spells.ListSpellsInput{
		ViewID:      viewID,
		FilterModel: model,
		Toggles:     toggles,
		SortField:   sortField,
		Descending:  descending,
		Columns:     visibleColumns(columnsFlag, viewID),
		Selected:    selectIDs,
	})
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	renderSpells(w, out, len(selectIDs) > 0)

	if showModel {
		return writeJSON(w, out.FilterModel)
	}
	return nil
}

func spellOptions(cmd *cobra.Command, _ []string) error {
	model, err := parseFilterModel(filterFlags, noneFlags)
	if err != nil {
		return err
	}

	svc, cleanup, err := newSpellsService(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	out, err := svc.GetFilterOptions(context.Background(), &spells.GetFilterOptionsInput{
		Field:       optionField,
		FilterModel: model,
		ViewID:      viewID,
	})
	if err != nil {
		return err
	}

	renderOptions(cmd.OutOrStdout(), out)
	return nil
}

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func newTable() *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

// renderSpells prints the grid; filtered columns are marked with "*"
func renderSpells(w io.Writer, out *spells.ListSpellsOutput, withSelection bool) {
	headers := make([]string, 0, len(out.Columns)+1)
	if withSelection {
		headers = append(headers, "")
	}
	for _, col := range out.Columns {
		name := col.HeaderName
		if col.Active {
			name += " *"
		}
		headers = append(headers, name)
	}

	t := newTable().Headers(headers...)
	for _, row := range out.Rows {
		cells := make([]string, 0, len(row.Cells)+1)
		if withSelection {
			mark := ""
			if row.Selected {
				mark = "x"
			}
			cells = append(cells, mark)
		}
		t.Row(append(cells, row.Cells...)...)
	}

	fmt.Fprintln(w, t.Render())
	fmt.Fprintf(w, "Showing %d of %d spells", len(out.Rows), out.TotalCount)
	if out.ActiveFilterCount > 0 {
		fmt.Fprintf(w, " (%d active filters)", out.ActiveFilterCount)
	}
	if out.SortField != "" {
		direction := "ascending"
		if out.Descending {
			direction = "descending"
		}
		fmt.Fprintf(w, ", sorted by %s %s", out.SortField, direction)
	}
	fmt.Fprintln(w)
}

func renderOptions(w io.Writer, out *spells.GetFilterOptionsOutput) {
	t := newTable().Headers("Code", "Label", "Checked")
	for _, opt := range out.Options {
		checked := ""
		if opt.Checked {
			checked = "x"
		}
		t.Row(fmt.Sprintf("%d", opt.Value), opt.Label, checked)
	}

	fmt.Fprintln(w, t.Render())
	if out.Active {
		fmt.Fprintf(w, "Filter on %s is active\n", out.Field)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// visibleColumns falls back to the configured column set unless a view
// supplies its own
func visibleColumns(raw, viewID string) []string {
	if columns := splitColumns(raw); len(columns) > 0 {
		return columns
	}
	if viewID != "" {
		return nil
	}
	return cfg.Grid.Columns
}
