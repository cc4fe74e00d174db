package main

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-spellbook/internal/orchestrators/spells"
	filterview "github.com/KirkDiggler/rpg-spellbook/internal/repositories/filter_view"
)

var viewName string

var viewsCmd = &cobra.Command{
	Use:   "views",
	Short: "Manage saved filter views",
}

var saveViewCmd = &cobra.Command{
	Use:   "save",
	Short: "Save a filter model, column set and sort as a named view",
	Long: `Save a view. Only active filters are stored. Example:

  views save --name "Low level rituals" --filter level=1,2 --filter ritual=1 --sort name`,
	Args: cobra.NoArgs,
	RunE: saveView,
}

var listViewsCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved views",
	Args:  cobra.NoArgs,
	RunE:  listViews,
}

var getViewCmd = &cobra.Command{
	Use:   "get [view-id]",
	Short: "Show a saved view",
	Args:  cobra.ExactArgs(1),
	RunE:  getView,
}

var deleteViewCmd = &cobra.Command{
	Use:   "delete [view-id]",
	Short: "Delete a saved view",
	Args:  cobra.ExactArgs(1),
	RunE:  deleteView,
}

func init() {
	saveViewCmd.Flags().StringVar(&viewName, "name", "", "View name")
	_ = saveViewCmd.MarkFlagRequired("name") // nolint:errcheck // flag exists
	addModelFlags(saveViewCmd)
	saveViewCmd.Flags().StringVar(&sortField, "sort", "", "Column to sort by")
	saveViewCmd.Flags().BoolVar(&descending, "desc", false, "Sort descending")
	saveViewCmd.Flags().StringVar(&columnsFlag, "columns", "", "Comma separated visible columns")

	viewsCmd.AddCommand(saveViewCmd)
	viewsCmd.AddCommand(listViewsCmd)
	viewsCmd.AddCommand(getViewCmd)
	viewsCmd.AddCommand(deleteViewCmd)
}

func saveView(cmd *cobra.Command, _ []string) error {
	model, err := parseFilterModel(filterFlags, noneFlags)
	if err != nil {
		return err
	}

	svc, cleanup, err := newSpellsService(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	out, err := svc.SaveView(context.Background(), &spells.SaveViewInput{
		Name:        viewName,
		FilterModel: model,
		Columns:     splitColumns(columnsFlag),
		SortField:   sortField,
		Descending:  descending,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Saved view %s\n", out.View.ID)
	printView(cmd.OutOrStdout(), out.View)
	return nil
}

func listViews(cmd *cobra.Command, _ []string) error {
	svc, cleanup, err := newSpellsService(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	out, err := svc.ListViews(context.Background(), &spells.ListViewsInput{})
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if len(out.Views) == 0 {
		fmt.Fprintln(w, "No saved views")
		return nil
	}

	t := newTable().Headers("ID", "Name", "Filters", "Created")
	for _, v := range out.Views {
		t.Row(v.ID, v.Name, fmt.Sprintf("%d", len(v.FilterModel)), v.CreatedAt.Format(time.DateTime))
	}
	fmt.Fprintln(w, t.Render())
	return nil
}

func getView(cmd *cobra.Command, args []string) error {
	svc, cleanup, err := newSpellsService(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	out, err := svc.GetView(context.Background(), &spells.GetViewInput{ID: args[0]})
	if err != nil {
		return err
	}

	printView(cmd.OutOrStdout(), out.View)
	return writeJSON(cmd.OutOrStdout(), out.View.FilterModel)
}

func deleteView(cmd *cobra.Command, args []string) error {
	svc, cleanup, err := newSpellsService(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	if _, err := svc.DeleteView(context.Background(), &spells.DeleteViewInput{ID: args[0]}); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted view %s\n", args[0])
	return nil
}

func printView(w io.Writer, v *filterview.View) {
	fmt.Fprintf(w, "Name:    %s\n", v.Name)

	fields := make([]string, 0, len(v.FilterModel))
	for field := range v.FilterModel {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	if len(fields) > 0 {
		fmt.Fprintf(w, "Filters: %s\n", strings.Join(fields, ", "))
	}
	if len(v.Columns) > 0 {
		fmt.Fprintf(w, "Columns: %s\n", strings.Join(v.Columns, ", "))
	}
	if v.SortField != "" {
		fmt.Fprintf(w, "Sort:    %s (descending: %t)\n", v.SortField, v.SortDescending)
	}
	if !v.CreatedAt.IsZero() {
		fmt.Fprintf(w, "Created: %s\n", v.CreatedAt.Format(time.DateTime))
	}
}
