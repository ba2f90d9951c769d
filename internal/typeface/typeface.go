// Package typeface loads glyph outlines for the extruded text meshes.
//
// Two formats are understood: the JSON typeface description used by web 3D
// text (glyph outlines as "m/l/q/b" command strings) and TrueType/OpenType
// files, read through golang.org/x/image.
package typeface

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/glowtext/internal/geometry"
)

// Font yields glyph outlines scaled to a text size.
type Font interface {
	// Name identifies the font in logs.
	Name() string
	// Contours returns the closed outlines of r, with curves flattened into
	// segments points each. Coordinates are scaled so one em equals size.
	Contours(r rune, size float32, segments int) ([]geometry.Contour, error)
}

// JSONFont is a parsed typeface description.
type JSONFont struct {
	FamilyName string               `json:"familyName"`
	Resolution float32              `json:"resolution"`
	Glyphs     map[string]jsonGlyph `json:"glyphs"`
}

type jsonGlyph struct {
	HA   float32 `json:"ha"`
	XMin float32 `json:"x_min"`
	XMax float32 `json:"x_max"`
	O    string  `json:"o"`
}

// ParseJSON decodes a typeface description.
func ParseJSON(data []byte) (*JSONFont, error) {
	var f JSONFont
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decoding typeface: %w", err)
	}
	if f.Resolution <= 0 {
		return nil, fmt.Errorf("typeface %q has invalid resolution %v", f.FamilyName, f.Resolution)
	}
	if len(f.Glyphs) == 0 {
		return nil, fmt.Errorf("typeface %q has no glyphs", f.FamilyName)
	}
	return &f, nil
}

// Name implements Font.
func (f *JSONFont) Name() string {
	return f.FamilyName
}

// Contours implements Font.
func (f *JSONFont) Contours(r rune, size float32, segments int) ([]geometry.Contour, error) {
	g, ok := f.Glyphs[string(r)]
	if !ok {
		return nil, fmt.Errorf("glyph %q not in typeface %q", r, f.FamilyName)
	}
	return parseOutline(g.O, size/f.Resolution, segments)
}

// parseOutline interprets an outline command string. Each "m" starts a new
// contour; "q" and "b" list the end point before their control points.
func parseOutline(o string, scale float32, segments int) ([]geometry.Contour, error) {
	fields := strings.Fields(o)
	pos := 0
	next := func() (mgl32.Vec2, error) {
		if pos+2 > len(fields) {
			return mgl32.Vec2{}, fmt.Errorf("outline truncated at token %d", pos)
		}
		x, err := strconv.ParseFloat(fields[pos], 32)
		if err != nil {
			return mgl32.Vec2{}, fmt.Errorf("outline token %d: %w", pos, err)
		}
		y, err := strconv.ParseFloat(fields[pos+1], 32)
		if err != nil {
			return mgl32.Vec2{}, fmt.Errorf("outline token %d: %w", pos+1, err)
		}
		pos += 2
		return mgl32.Vec2{float32(x) * scale, float32(y) * scale}, nil
	}

	var b pathBuilder
	for pos < len(fields) {
		op := fields[pos]
		pos++
		switch op {
		case "m":
			p, err := next()
			if err != nil {
				return nil, err
			}
			b.moveTo(p)
		case "l":
			p, err := next()
			if err != nil {
				return nil, err
			}
			b.lineTo(p)
		case "q":
			end, err := next()
			if err != nil {
				return nil, err
			}
			ctrl, err := next()
			if err != nil {
				return nil, err
			}
			b.quadTo(ctrl, end, segments)
		case "b":
			end, err := next()
			if err != nil {
				return nil, err
			}
			c1, err := next()
			if err != nil {
				return nil, err
			}
			c2, err := next()
			if err != nil {
				return nil, err
			}
			b.cubeTo(c1, c2, end, segments)
		case "z":
			b.close()
		default:
			return nil, fmt.Errorf("unknown outline command %q", op)
		}
	}
	return b.contours(), nil
}
