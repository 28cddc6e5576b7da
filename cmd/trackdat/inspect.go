package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/retrosim/go-trackdat/format"
	"github.com/retrosim/go-trackdat/track"
)

func newInspectCmd() *cobra.Command {
	var (
		name        string
		output      string
		showSecs    bool
		maxSections int
	)

	cmd := &cobra.Command{
		Use:   "inspect FILE",
		Short: "Parse a track file and show its decoded contents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			asset, err := track.LoadTrackAsset(args[0], name)
			if err != nil {
				return err
			}
			switch output {
			case "json":
				return outputJSON(asset)
			case "summary":
				fmt.Println(summaryLine(args[0], asset))
				return nil
			default:
				outputText(asset, showSecs, maxSections)
				return nil
			}
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "track name (defaults to filename stem)")
	cmd.Flags().StringVarP(&output, "format", "f", "text", "output format: text, json, or summary")
	cmd.Flags().BoolVar(&showSecs, "sections", false, "show per-section and racing-line tables")
	cmd.Flags().IntVar(&maxSections, "max-sections", 100, "maximum sections to display")
	return cmd
}

func summaryLine(path string, asset *track.TrackAsset) string {
	status := "ok"
	if len(asset.Warnings) > 0 {
		status = fmt.Sprintf("%d warning(s)", len(asset.Warnings))
	}
	trk := asset.IntoTrack()
	return fmt.Sprintf("%-24s %7d bytes %4d sections %8.0fm  checksum 0x%08X  %s",
		asset.Name, asset.RawSize, len(asset.Sections), trk.Length, asset.Checksum, status)
}

func outputText(asset *track.TrackAsset, showSecs bool, maxSections int) {
	trk := asset.IntoTrack()

	fmt.Printf("=== %s ===\n", asset.Name)
	fmt.Printf("\nFile:\n")
	fmt.Printf("  Size:         %d bytes\n", asset.RawSize)
	fmt.Printf("  Checksum:     0x%08X stored, 0x%08X computed\n", asset.Checksum, asset.ComputedChecksum)
	fmt.Printf("  Track data:   0x%04X (section records at 0x%04X)\n",
		asset.Offsets.TrackDataOffset(), asset.SectionDataOffset)

	fmt.Printf("\nHeader:\n")
	if asset.Header != nil {
		fmt.Printf("  Start Width:  %d\n", asset.Header.StartWidth)
		fmt.Printf("  First Angle:  %d\n", asset.Header.FirstSectionAngle)
		fmt.Printf("  Kerb Type:    %d\n", asset.Header.KerbType)
	} else {
		fmt.Printf("  (not decoded)\n")
	}

	fmt.Printf("\nTrack:\n")
	fmt.Printf("  Length:       %.0fm (%.2fkm)\n", trk.Length, trk.Length/1000)
	fmt.Printf("  Sections:     %d\n", len(asset.Sections))
	fmt.Printf("  Racing line:  %d segments, displacement %d\n",
		len(asset.RacingLine.Segments), asset.RacingLine.Displacement)

	for _, w := range asset.Warnings {
		fmt.Printf("\nWarning: %s\n", w)
	}

	if showSecs {
		fmt.Printf("\nSections:\n%s\n", sectionTable(asset.Sections, maxSections))
		if len(asset.RacingLine.Segments) > 0 {
			fmt.Printf("\nRacing line:\n%s\n", segmentTable(asset.RacingLine.Segments, maxSections))
		}
	}
}

func sectionTable(sections []track.Section, max int) string {
	shown := sections
	if len(shown) > max {
		shown = shown[:max]
	}
	rows := lo.Map(shown, func(s track.Section, i int) []string {
		kerbs := ""
		if s.HasLeftKerb {
			kerbs += "L"
		}
		if s.HasRightKerb {
			kerbs += "R"
		}
		return []string{
			fmt.Sprintf("%d", i),
			fmt.Sprintf("%.1f", s.Length),
			fmt.Sprintf("%d", s.Curvature),
			fmt.Sprintf("%d", s.Height),
			fmt.Sprintf("0x%04X", s.Flags),
			kerbs,
			fmt.Sprintf("%d", len(s.Commands)),
		}
	})
	return renderTable(
		[]string{"#", "Length (m)", "Curvature", "Height", "Flags", "Kerbs", "Cmds"},
		rows,
		[]columnAlignment{alignRight, alignRight, alignRight, alignRight, alignLeft, alignLeft, alignRight},
	)
}

func segmentTable(segments []track.Segment, max int) string {
	shown := segments
	if len(shown) > max {
		shown = shown[:max]
	}
	rows := lo.Map(shown, func(s track.Segment, i int) []string {
		radius := fmt.Sprintf("%d", s.Radius)
		if s.Tag == format.SegmentWideRadius {
			radius = fmt.Sprintf("%d/%d", s.HighRadius, s.LowRadius)
		}
		return []string{
			fmt.Sprintf("%d", i),
			segmentTagName(s.Tag),
			fmt.Sprintf("%d", s.Length),
			fmt.Sprintf("%d", s.Correction),
			radius,
		}
	})
	return renderTable(
		[]string{"#", "Type", "Length", "Correction", "Radius"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignRight, alignRight, alignRight},
	)
}

func segmentTagName(t format.SegmentTag) string {
	switch t {
	case format.SegmentNormal:
		return "NORMAL"
	case format.SegmentWideRadius:
		return "WIDE_RADIUS"
	default:
		return fmt.Sprintf("UNKNOWN(0x%02X)", uint8(t))
	}
}

func outputJSON(asset *track.TrackAsset) error {
	trk := asset.IntoTrack()

	sections := make([]map[string]interface{}, len(asset.Sections))
	for i, s := range asset.Sections {
		sections[i] = map[string]interface{}{
			"length_m":       s.Length,
			"curvature":      s.Curvature,
			"height":         s.Height,
			"flags":          s.Flags,
			"has_left_kerb":  s.HasLeftKerb,
			"has_right_kerb": s.HasRightKerb,
			"commands":       len(s.Commands),
		}
	}

	segments := make([]map[string]interface{}, len(asset.RacingLine.Segments))
	for i, s := range asset.RacingLine.Segments {
		seg := map[string]interface{}{
			"type":       segmentTagName(s.Tag),
			"length":     s.Length,
			"correction": s.Correction,
		}
		if s.Tag == format.SegmentWideRadius {
			seg["high_radius"] = s.HighRadius
			seg["low_radius"] = s.LowRadius
		} else {
			seg["radius"] = s.Radius
		}
		segments[i] = seg
	}

	output := map[string]interface{}{
		"name":     asset.Name,
		"raw_size": asset.RawSize,
		"length_m": trk.Length,
		"checksum": map[string]interface{}{
			"stored":   asset.Checksum,
			"computed": asset.ComputedChecksum,
			"valid":    asset.Checksum == asset.ComputedChecksum,
		},
		"track_data_offset": asset.Offsets.TrackDataOffset(),
		"sections":          sections,
		"racing_line": map[string]interface{}{
			"displacement": asset.RacingLine.Displacement,
			"segments":     segments,
		},
		"warnings": asset.Warnings,
	}
	if asset.Header != nil {
		output["header"] = map[string]interface{}{
			"start_width":         asset.Header.StartWidth,
			"first_section_angle": asset.Header.FirstSectionAngle,
			"kerb_type":           asset.Header.KerbType,
		}
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
