// Package preset builds TAL Drum preset documents from note
// assignments and renders them as XML.
package preset

import (
	"path/filepath"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/llehouerou/kitforge/internal/assign"
	"github.com/llehouerou/kitforge/internal/mapping"
)

// Grid defaults: 64 pads starting at C2.
const (
	DefaultBaseNote = 36
	DefaultPadCount = 64
)

// Layer is one sample slot on a pad. A zero velocity bound means the
// bound is implicit (1 for the start of the first layer, 127 for the
// end of the last); a single-layer pad leaves both implicit.
type Layer struct {
	Path          string // relative to the preset file's directory
	PathRelative  string // relative to the sample library root
	VelocityStart int
	VelocityEnd   int
}

// Pad is one grid slot, permanently bound to a single MIDI note.
type Pad struct {
	Index  int
	Note   int
	Color  colorful.Color // zero value when the pad is empty
	Layers []Layer
}

// Preset is the complete value tree written to one .taldrum file.
type Preset struct {
	Name string
	Path string // absolute output path, also embedded in the document
	Pads []Pad
}

// BuildOptions configures the pad grid and path encodings.
type BuildOptions struct {
	BaseNote   int
	PadCount   int
	SampleRoot string
	Colors     ColorSource
}

// Build constructs the preset for one kit. Pad i is bound to note
// BaseNote+i; assignment entries for notes outside the grid are
// silently dropped. Each populated pad holds at most
// mapping.MaxLayers layers with an even velocity partition and a
// vivid display color. Returns a *PathEscapeError when a sample lies
// outside the sample root.
func Build(name, path string, notes assign.Assignment, opts BuildOptions) (*Preset, error) {
	presetDir := filepath.Dir(path)

	pads := make([]Pad, opts.PadCount)
	for i := range pads {
		pads[i] = Pad{Index: i, Note: opts.BaseNote + i}
	}

	for i := range pads {
		files := notes[pads[i].Note]
		if len(files) == 0 {
			continue
		}
		if len(files) > mapping.MaxLayers {
			files = files[:mapping.MaxLayers]
		}

		ranges := VelocityRanges(len(files))
		layers := make([]Layer, 0, len(files))
		for j, file := range files {
			pathRelative, err := RelativeToRoot(file, opts.SampleRoot)
			if err != nil {
				return nil, err
			}
			pathFoldback, err := RelativeToDir(file, presetDir)
			if err != nil {
				return nil, err
			}

			layer := Layer{Path: pathFoldback, PathRelative: pathRelative}
			switch {
			case len(files) == 1:
				// full range, both bounds implicit
			case j == 0:
				layer.VelocityEnd = ranges[j].End
			case j == len(files)-1:
				layer.VelocityStart = ranges[j].Start
			default:
				layer.VelocityStart = ranges[j].Start
				layer.VelocityEnd = ranges[j].End
			}
			layers = append(layers, layer)
		}

		pads[i].Layers = layers
		pads[i].Color = opts.Colors.Next()
	}

	return &Preset{Name: name, Path: path, Pads: pads}, nil
}
