package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tidy/internal/categories"
)

type categoryView struct {
	Name       string   `json:"name"`
	Extensions []string `json:"extensions"`
}

type sharedView struct {
	Extension string   `json:"extension"`
	Claimants []string `json:"claimants"`
}

type categoriesView struct {
	Categories []categoryView `json:"categories"`
	Fallback   string         `json:"fallback"`
	Ambiguous  []sharedView   `json:"ambiguous"`
}

func newCategoriesCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List the category folders and the extensions routed to each",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			view := buildCategoriesView(categories.Build(categories.Default()))
			if jsonOut {
				return writeJSON(cmd.OutOrStdout(), view)
			}
			fmt.Fprint(cmd.OutOrStdout(), renderCategories(view))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print the table as JSON")
	return cmd
}

func buildCategoriesView(table *categories.Table) categoriesView {
	view := categoriesView{
		Categories: []categoryView{},
		Fallback:   categories.Others,
		Ambiguous:  []sharedView{},
	}
	for _, c := range table.Categories() {
		view.Categories = append(view.Categories, categoryView{Name: c.Name, Extensions: c.Extensions})
	}
	for _, shared := range table.Ambiguous() {
		view.Ambiguous = append(view.Ambiguous, sharedView{Extension: shared.Extension, Claimants: shared.Claimants})
	}
	return view
}

func renderCategories(view categoriesView) string {
	rows := make([][]string, 0, len(view.Categories)+1)
	for _, c := range view.Categories {
		rows = append(rows, []string{c.Name, strings.Join(c.Extensions, " "), strconv.Itoa(len(c.Extensions))})
	}
	rows = append(rows, []string{view.Fallback, "anything else", "-"})

	var b strings.Builder
	b.WriteString(renderTable([]tableColumn{
		{header: "Category"},
		{header: "Extensions", maxWidth: 60},
		{header: "Count", align: alignRight},
	}, rows))
	b.WriteString("\n")

	if len(view.Ambiguous) > 0 {
		b.WriteString("\nShared extensions routed to " + view.Fallback + ":\n")
		for _, shared := range view.Ambiguous {
			fmt.Fprintf(&b, "  %s (%s)\n", shared.Extension, strings.Join(shared.Claimants, ", "))
		}
	}
	return b.String()
}
