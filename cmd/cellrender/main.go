// Package main provides the CLI entry point for cellrender-go.
package main

import (
	goflag "flag"
	"os"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cellrender",
		Short: "Render stored table cells as HTML",
		Long: `cellrender renders table cells as HTML. Text cells holding a
{"href": "...", "label": "..."} JSON descriptor become hyperlinks; every
other cell is rendered as escaped text.`,
		SilenceUsage: true,
	}

	klogFlags := goflag.NewFlagSet("klog", goflag.ExitOnError)
	klog.InitFlags(klogFlags)
	rootCmd.PersistentFlags().AddGoFlagSet(klogFlags)

	rootCmd.AddCommand(newTableCommand(), newCellCommand())
	return rootCmd
}
