package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/retrosim/go-trackdat/track"
)

func newBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch PATH...",
		Short: "Parse every track file under the given paths",
		Long: `Parses each *.dat file found under the given files or directories and
prints a one-line summary per track. Failures are reported per file and do
not stop the remaining files from being processed.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := collectTrackFiles(args)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				return fmt.Errorf("no track files found under %s", strings.Join(args, ", "))
			}

			failures := 0
			for _, path := range files {
				asset, err := track.LoadTrackAsset(path, "")
				if err != nil {
					failures++
					fmt.Fprintf(os.Stderr, "%-24s ERROR: %v\n", filepath.Base(path), err)
					continue
				}
				fmt.Println(summaryLine(path, asset))
			}
			if failures > 0 {
				return fmt.Errorf("%d of %d files failed to parse", failures, len(files))
			}
			return nil
		},
	}
	return cmd
}

func collectTrackFiles(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", arg, err)
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}
		entries, err := os.ReadDir(arg)
		if err != nil {
			return nil, fmt.Errorf("read dir %s: %w", arg, err)
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			if strings.EqualFold(filepath.Ext(e.Name()), ".dat") {
				files = append(files, filepath.Join(arg, e.Name()))
			}
		}
	}
	sort.Strings(files)
	return files, nil
}
