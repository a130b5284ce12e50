package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"puzzle-solver/internal/slicer"
)

var listDir string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List sliced puzzle sets available on disk",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sets, err := slicer.ListSets(listDir)
		if err != nil {
			return err
		}
		if len(sets) == 0 {
			fmt.Printf("No sliced sets found in %s (run \"puzzle-solver slice\" first)\n", listDir)
			return nil
		}
		for _, s := range sets {
			fmt.Printf("%-24s %4d pieces  %s\n", s.Name, s.Pieces, s.Dir)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().StringVarP(&listDir, "dir", "d", "sliced_images", "directory to scan")
	rootCmd.AddCommand(listCmd)
}
