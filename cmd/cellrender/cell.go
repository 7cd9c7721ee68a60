package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ukaji3/cellrender-go/pkg/cellrender"
	"github.com/ukaji3/cellrender-go/pkg/cellrender/links"
	"github.com/ukaji3/cellrender-go/pkg/cellrender/models"
)

func newCellCommand() *cobra.Command {
	var (
		baseURL string
		strict  bool
	)
	cmd := &cobra.Command{
		Use:   "cell [value]",
		Short: "Render a single text cell value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := cellrender.NewDefaultRegistry(cellrender.Options{BaseURL: baseURL})
			if err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			v := models.Text(args[0])
			if !strict {
				fmt.Fprintln(cmd.OutOrStdout(), reg.Render(v))
				return nil
			}

			render, _ := reg.Lookup(links.Name)
			out, ok := render(v)
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "not applicable")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&baseURL, "base-url", "", "Move localhost links onto this base URL")
	cmd.Flags().BoolVar(&strict, "link-only", false, `Print "not applicable" instead of falling back to escaped text`)
	return cmd
}
