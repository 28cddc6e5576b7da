// section.go - Section stream scanning
package track

import (
	"fmt"

	"github.com/retrosim/go-trackdat/format"
)

// SectionCommand is a variable-length sub-record attached to a section. Its
// inner byte layout is not yet decoded; only the kind byte is retained.
type SectionCommand struct {
	Kind uint8
}

// Section is one physical segment of the circuit.
type Section struct {
	Length       float32 // meters
	Curvature    int16
	Height       int16
	Flags        uint16
	HasLeftKerb  bool
	HasRightKerb bool
	Reserved     [2]byte // raw trailing bytes of the record
	Commands     []SectionCommand
}

// ScanSections reads fixed 10-byte section records starting at start until
// the 2-byte sentinel. It returns the sections in file order and the cursor
// just past the sentinel, where the racing line begins. Running out of buffer
// before the sentinel is a parse error; a sentinel at start yields zero
// sections.
func ScanSections(data []byte, start int) ([]Section, int, error) {
	cur := start
	var out []Section
	for {
		word, err := format.Le16(data, cur)
		if err != nil {
			return nil, 0, fmt.Errorf("section scan overran buffer at %d without sentinel", cur)
		}
		if word == format.SectionSentinel {
			return out, cur + 2, nil
		}
		if cur+format.SectionRecordSize > len(data) {
			return nil, 0, fmt.Errorf("truncated section record at %d", cur)
		}
		curv, _ := format.Le16s(data, cur+2)
		height, _ := format.Le16s(data, cur+4)
		flags, _ := format.Le16(data, cur+6)
		s := Section{
			Length:       float32(word) * format.MetersPerLengthUnit,
			Curvature:    curv,
			Height:       height,
			Flags:        flags,
			HasLeftKerb:  flags&format.FlagLeftKerb != 0,
			HasRightKerb: flags&format.FlagRightKerb != 0,
		}
		s.Reserved[0] = data[cur+8]
		s.Reserved[1] = data[cur+9]
		// Reserved byte 0 counts attached commands, byte 1 carries their kind.
		// The command payloads themselves are not interpreted.
		if n := int(s.Reserved[0]); n > 0 {
			s.Commands = make([]SectionCommand, n)
			for i := range s.Commands {
				s.Commands[i] = SectionCommand{Kind: s.Reserved[1]}
			}
		}
		out = append(out, s)
		cur += format.SectionRecordSize
	}
}
