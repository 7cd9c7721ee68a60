package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/ukaji3/cellrender-go/pkg/cellrender"
)

type tableFlags struct {
	outputPath string
	configPath string
	sheets     []string
	baseURL    string
	printAreas bool
}

func newTableCommand() *cobra.Command {
	flags := &tableFlags{}
	cmd := &cobra.Command{
		Use:   "table [input.xlsx]",
		Short: "Render the sheets of a workbook as HTML tables",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTable(cmd, flags, args[0])
		},
	}

	cmd.Flags().StringVarP(&flags.outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().StringVar(&flags.configPath, "config", "", "YAML config file")
	cmd.Flags().StringArrayVar(&flags.sheets, "sheet", nil, "Sheet to render (repeatable, default: all)")
	cmd.Flags().StringVar(&flags.baseURL, "base-url", "", "Move localhost links onto this base URL")
	cmd.Flags().BoolVar(&flags.printAreas, "print-areas", false, "Render only the print areas of each sheet")
	return cmd
}

func runTable(cmd *cobra.Command, flags *tableFlags, inputPath string) error {
	opts, err := loadOptions(cmd, flags)
	if err != nil {
		return err
	}

	reg, err := cellrender.NewDefaultRegistry(opts)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	wb, err := cellrender.Extract(inputPath, opts)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	var buf bytes.Buffer
	if err := cellrender.WriteHTML(&buf, wb, reg); err != nil {
		return fmt.Errorf("rendering failed: %w", err)
	}

	if flags.outputPath == "" {
		_, err := cmd.OutOrStdout().Write(buf.Bytes())
		return err
	}
	if err := os.WriteFile(flags.outputPath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	klog.V(1).Infof("wrote %s (%d sheets)", flags.outputPath, len(wb.Sheets))
	return nil
}

// loadOptions reads the config file, if any, and applies explicitly set flags on top.
func loadOptions(cmd *cobra.Command, flags *tableFlags) (cellrender.Options, error) {
	opts := cellrender.DefaultOptions()
	if flags.configPath != "" {
		var err error
		if opts, err = cellrender.LoadOptions(flags.configPath); err != nil {
			return opts, err
		}
	}

	if cmd.Flags().Changed("sheet") {
		opts.Sheets = flags.sheets
	}
	if cmd.Flags().Changed("base-url") {
		opts.BaseURL = flags.baseURL
	}
	if cmd.Flags().Changed("print-areas") {
		opts.IncludePrintAreas = &flags.printAreas
	}
	return opts, nil
}
