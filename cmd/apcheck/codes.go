package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/c360studio/apcheck/fault"
	"github.com/c360studio/apcheck/narrative"
)

func codesCmd() *cobra.Command {
	var lang string

	cmd := &cobra.Command{
		Use:   "codes",
		Short: "List every fault code the validator can emit",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := narrative.Load()
			if err != nil {
				return err
			}
			lookup := catalog.LookupLanguage(lang)

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "CODE\tNARRATIVE")
			for _, code := range fault.Codes() {
				narrativeText, _ := lookup(code)
				fmt.Fprintf(tw, "%s\t%s\n", code, narrativeText)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVarP(&lang, "language", "l", "en", "Narrative language tag")
	return cmd
}
