package pipeline

import (
	"fmt"

	"github.com/matzehuels/flexstack/pkg/render"
	"github.com/matzehuels/flexstack/pkg/stackfile"
)

// RenderFromLayout generates all requested output formats from a
// resolved layout. The returned map is keyed by format name.
func RenderFromLayout(layout stackfile.Layout, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	var svgOpts []render.SVGOption
	if opts.Style != "" {
		svgOpts = append(svgOpts, render.WithStyle(opts.Style))
	}
	if opts.ShowSpacers {
		svgOpts = append(svgOpts, render.WithSpacers())
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		switch format {
		case FormatSVG:
			artifacts[FormatSVG] = render.SVG(layout, svgOpts...)

		case FormatPNG:
			svg := render.SVG(layout, svgOpts...)
			png, err := render.ToPNG(svg, opts.Scale)
			if err != nil {
				return nil, fmt.Errorf("render png: %w", err)
			}
			artifacts[FormatPNG] = png

		case FormatJSON:
			data, err := stackfile.MarshalLayout(layout)
			if err != nil {
				return nil, fmt.Errorf("render json: %w", err)
			}
			artifacts[FormatJSON] = data

		case FormatASCII:
			var asciiOpts []render.ASCIIOption
			if opts.ShowSpacers {
				asciiOpts = append(asciiOpts, render.WithASCIISpacers())
			}
			artifacts[FormatASCII] = []byte(render.ASCII(layout, asciiOpts...))

		case FormatDOT:
			artifacts[FormatDOT] = []byte(render.DOT(layout))

		default:
			return nil, ValidateFormat(format)
		}
	}

	return artifacts, nil
}
