package svgin

import (
	"image/color"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osuushi/polykit/geom"
)

func TestReadSVG(t *testing.T) {
	doc := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100">
  <polygon points="0,0 10,0 10,10 0,10" fill="#ff8000"/>
  <polygon points="1 2, 3 4, 5 6" transform="translate(20, 30)"/>
</svg>`

	polygons, err := ReadSVG(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, polygons, 2)

	assert.Equal(t, []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}, polygons[0].Points())
	assert.Equal(t, color.RGBA{0xff, 0x80, 0x00, 0xff}, polygons[0].Color)

	assert.Equal(t, []geom.Point{{X: 1, Y: 2}, {X: 3, Y: 4}, {X: 5, Y: 6}}, polygons[1].Points())
	assert.Equal(t, geom.Vector{X: 20, Y: 30}, polygons[1].Translation)
}

func TestReadSVG_Errors(t *testing.T) {
	for name, tc := range map[string]struct {
		doc      string
		expected error
	}{
		"no polygons": {
			doc:      `<svg><rect width="1" height="1"/></svg>`,
			expected: ErrNoPolygons,
		},
		"odd coordinates": {
			doc:      `<svg><polygon points="0,0 1"/></svg>`,
			expected: ErrBadPoints,
		},
		"bad number": {
			doc:      `<svg><polygon points="0,0 1,x 2,2"/></svg>`,
			expected: ErrBadPoints,
		},
		"rotation": {
			doc:      `<svg><polygon points="0,0 1,1 2,0" transform="rotate(45)"/></svg>`,
			expected: ErrBadTransform,
		},
		"colour name": {
			doc:      `<svg><polygon points="0,0 1,1 2,0" fill="red"/></svg>`,
			expected: ErrBadColor,
		},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ReadSVG(strings.NewReader(tc.doc))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.expected), "unexpected error %v", err)
		})
	}
}

func TestReadText(t *testing.T) {
	input := `# a square
0 0
4 0
4 4
0 4

1.5 -2
3 3
-1 2.25
`
	polygons, err := ReadText(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, polygons, 2)
	assert.Equal(t, 4, polygons[0].Len())
	assert.Equal(t, []geom.Point{{X: 1.5, Y: -2}, {X: 3, Y: 3}, {X: -1, Y: 2.25}}, polygons[1].Points())

	_, err = ReadText(strings.NewReader("1 2 3\n"))
	assert.True(t, errors.Is(err, ErrBadPoints))

	_, err = ReadText(strings.NewReader("\n\n"))
	assert.True(t, errors.Is(err, ErrNoPolygons))
}
