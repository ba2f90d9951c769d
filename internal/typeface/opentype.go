package typeface

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/Faultbox/glowtext/internal/geometry"
)

// OutlineFont reads glyph outlines from a TrueType or OpenType font.
type OutlineFont struct {
	name string
	font *opentype.Font
	buf  sfnt.Buffer
}

// ParseOpenType parses TTF/OTF bytes.
func ParseOpenType(name string, data []byte) (*OutlineFont, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing font %s: %w", name, err)
	}
	if full, err := f.Name(nil, sfnt.NameIDFull); err == nil && full != "" {
		name = full
	}
	return &OutlineFont{name: name, font: f}, nil
}

// GoRegular returns the Go Regular font bundled with x/image.
func GoRegular() (*OutlineFont, error) {
	return ParseOpenType("Go Regular", goregular.TTF)
}

// Name implements Font.
func (f *OutlineFont) Name() string {
	return f.name
}

// Contours implements Font. It is not safe for concurrent use.
func (f *OutlineFont) Contours(r rune, size float32, segments int) ([]geometry.Contour, error) {
	idx, err := f.font.GlyphIndex(&f.buf, r)
	if err != nil {
		return nil, fmt.Errorf("glyph index for %q: %w", r, err)
	}
	if idx == 0 {
		return nil, fmt.Errorf("glyph %q not in font %q", r, f.name)
	}

	// Load at one pixel per font unit, then scale to size per em.
	upem := int(f.font.UnitsPerEm())
	segs, err := f.font.LoadGlyph(&f.buf, idx, fixed.I(upem), nil)
	if err != nil {
		return nil, fmt.Errorf("loading glyph %q: %w", r, err)
	}
	scale := size / float32(upem)

	// sfnt uses a y-down coordinate system.
	pt := func(p fixed.Point26_6) mgl32.Vec2 {
		return mgl32.Vec2{float32(p.X) / 64 * scale, -float32(p.Y) / 64 * scale}
	}

	var b pathBuilder
	for _, s := range segs {
		switch s.Op {
		case sfnt.SegmentOpMoveTo:
			b.moveTo(pt(s.Args[0]))
		case sfnt.SegmentOpLineTo:
			b.lineTo(pt(s.Args[0]))
		case sfnt.SegmentOpQuadTo:
			b.quadTo(pt(s.Args[0]), pt(s.Args[1]), segments)
		case sfnt.SegmentOpCubeTo:
			b.cubeTo(pt(s.Args[0]), pt(s.Args[1]), pt(s.Args[2]), segments)
		}
	}
	return b.contours(), nil
}
