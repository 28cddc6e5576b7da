package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/retrosim/go-trackdat/fixture"
	"github.com/retrosim/go-trackdat/format"
)

func newFixtureCmd() *cobra.Command {
	var (
		sections int
		offset   int
	)

	cmd := &cobra.Command{
		Use:   "fixture FILE",
		Short: "Write a synthetic track fixture file",
		Long: `Generates a minimal, internally-consistent track file (valid offset
table, zeroed header, section records, sentinel and checksum footer) for use
in tests instead of proprietary original assets.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if sections < 0 {
				return fmt.Errorf("section count must be non-negative, got %d", sections)
			}
			if offset < format.TrackDataBase || offset > format.TrackDataBase+32767 {
				return fmt.Errorf("track data offset 0x%X not reachable from the offset table", offset)
			}
			if err := fixture.WriteTrackBytes(args[0], sections, offset); err != nil {
				return err
			}
			fmt.Printf("wrote %s (%d sections, track data at 0x%04X)\n", args[0], sections, offset)
			return nil
		},
	}

	cmd.Flags().IntVar(&sections, "sections", fixture.DefaultSectionCount, "number of synthetic sections")
	cmd.Flags().IntVar(&offset, "offset", fixture.DefaultTrackDataOffset, "absolute track data offset")
	return cmd
}
