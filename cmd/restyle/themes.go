package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/restyle/internal/theme"
)

type themeSummary struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	HighContrast bool   `json:"high_contrast"`
	Primary      string `json:"primary"`
	Current      bool   `json:"current"`
}

func newThemesCmd(flags *rootFlags) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "themes",
		Short: "List built-in and configured themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadAppContext(cmd, flags)
			if err != nil {
				return err
			}
			summaries := summarizeThemes(app.themes, app.theme())
			if jsonOutput {
				return renderThemesJSON(cmd, summaries)
			}
			return renderThemesTable(cmd, summaries)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func summarizeThemes(catalog *theme.Catalog, current *theme.Theme) []themeSummary {
	summaries := make([]themeSummary, 0, len(catalog.IDs()))
	for _, id := range catalog.IDs() {
		t := catalog.MustGet(id)
		primary := t.Palette.Primary.Base
		summaries = append(summaries, themeSummary{
			ID:           string(t.ID),
			Name:         t.Name,
			HighContrast: t.HighContrast,
			Primary:      primary.Light + "/" + primary.Dark,
			Current:      t == current,
		})
	}
	return summaries
}

func renderThemesJSON(cmd *cobra.Command, summaries []themeSummary) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(summaries)
}

func renderThemesTable(cmd *cobra.Command, summaries []themeSummary) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCONTRAST\tPRIMARY")
	for _, s := range summaries {
		marker := " "
		if s.Current {
			marker = "*"
		}
		contrast := "-"
		if s.HighContrast {
			contrast = "high"
		}
		fmt.Fprintf(w, "%s %s\t%s\t%s\t%s\n", marker, s.ID, s.Name, contrast, s.Primary)
	}
	return w.Flush()
}
