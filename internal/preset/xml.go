package preset

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/llehouerou/kitforge/internal/mapping"
)

// TAL Drum document constants.
const (
	FormatVersion    = "13"
	DefaultVolume    = "0.75"
	DefaultPanelMode = "0"
)

type xmlRoot struct {
	XMLName   xml.Name `xml:"taldrum"`
	Version   string   `xml:"version,attr"`
	Path      string   `xml:"path,attr"`
	Name      string   `xml:"name,attr"`
	Volume    string   `xml:"volume,attr"`
	PanelMode string   `xml:"panelmode,attr"`
	Pads      xmlPads  `xml:"pads"`
}

type xmlPads struct {
	Pads []xmlPad `xml:"pad"`
}

type xmlPad struct {
	Version        string      `xml:"version,attr"`
	ActiveMappings string      `xml:"activemappings,attr"`
	Colour         string      `xml:"colour,attr"`
	Name           string      `xml:"name,attr"`
	MidiKey        string      `xml:"midikey,attr"`
	Mappings       xmlMappings `xml:"mappings"`
}

type xmlMappings struct {
	Mappings []xmlMapping `xml:"mapping"`
}

type xmlMapping struct {
	Path          string `xml:"path,attr"`
	PathRelative  string `xml:"pathrelative,attr"`
	VelocityStart string `xml:"velocitystart,attr,omitempty"`
	VelocityEnd   string `xml:"velocityend,attr,omitempty"`
}

// Render serializes the preset as the TAL Drum XML dialect with a
// declaration header and two-space indentation. Every pad carries
// exactly mapping.MaxLayers mapping slots; unused slots have empty
// path attributes.
func Render(p *Preset) ([]byte, error) {
	root := xmlRoot{
		Version:   FormatVersion,
		Path:      toSlashes(p.Path),
		Name:      p.Name,
		Volume:    DefaultVolume,
		PanelMode: DefaultPanelMode,
	}

	for _, pad := range p.Pads {
		xp := xmlPad{
			Version:        FormatVersion,
			ActiveMappings: strconv.Itoa(len(pad.Layers)),
			Colour:         "0",
			Name:           fmt.Sprintf("Pad %d", pad.Index+1),
			MidiKey:        floatAttr(pad.Note),
		}
		if len(pad.Layers) > 0 {
			xp.Colour = strconv.FormatInt(int64(PackARGB(pad.Color)), 10)
		}

		for i := 0; i < mapping.MaxLayers; i++ {
			var m xmlMapping
			if i < len(pad.Layers) {
				layer := pad.Layers[i]
				m.Path = layer.Path
				m.PathRelative = layer.PathRelative
				if layer.VelocityStart > 0 {
					m.VelocityStart = floatAttr(layer.VelocityStart)
				}
				if layer.VelocityEnd > 0 {
					m.VelocityEnd = floatAttr(layer.VelocityEnd)
				}
			}
			xp.Mappings.Mappings = append(xp.Mappings.Mappings, m)
		}

		root.Pads.Pads = append(root.Pads.Pads, xp)
	}

	body, err := xml.MarshalIndent(root, "", "  ")
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(xml.Header)+len(body)+1)
	out = append(out, xml.Header...)
	out = append(out, body...)
	out = append(out, '\n')
	return out, nil
}

// floatAttr renders an integer the way the plugin stores numbers,
// as a one-decimal float ("36.0").
func floatAttr(n int) string {
	return strconv.FormatFloat(float64(n), 'f', 1, 64)
}

func toSlashes(path string) string {
	return strings.ReplaceAll(path, "\\", "/")
}
