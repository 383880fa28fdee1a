// Package geometry extracts roof measurements from EagleView report
// XML: the total face area and the summed length of every edge
// category. Extraction never fails the caller. A report that is
// missing or does not parse yields a zero-valued geometry, and
// malformed points, lines, and faces are skipped one by one.
package geometry

import (
	"encoding/xml"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/rooftroops/estimator/internal/model"
)

// point3 is one labeled report coordinate.
type point3 struct {
	X, Y, Z float64
}

// pendingLine is a LINE element waiting for endpoint resolution. Lines
// are resolved only after the whole document is read, so a segment may
// reference points declared later in the file.
type pendingLine struct {
	category model.EdgeCategory
	path     string
}

// Extract reads an EagleView XML report and returns its roof geometry.
// It never fails the caller.
func Extract(path string) model.RoofGeometry {
	f, err := os.Open(path)
	if err != nil {
		return model.NewRoofGeometry()
	}
	defer f.Close()

	geom, err := parse(f)
	if err != nil {
		return model.NewRoofGeometry()
	}
	return geom
}

// parse walks every element of the report. POINT and LINE elements
// match at any depth; FACE area comes from the first direct POLYGON
// child of each FACE only. Any well-formedness error voids the whole
// document.
func parse(r io.Reader) (model.RoofGeometry, error) {
	geom := model.NewRoofGeometry()
	points := make(map[string]point3)
	var lines []pendingLine
	var totalArea float64

	// Open-element stack; FACE frames remember whether their first
	// polygon has been consumed.
	type frame struct {
		name        string
		tookPolygon bool
	}
	var stack []frame

	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return model.RoofGeometry{}, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "POINT":
				if id := attrValue(t, "id"); id != "" {
					if pt, ok := parseCoords(attrValue(t, "data")); ok {
						points[id] = pt
					}
				}
			case "LINE":
				category := model.EdgeCategory(strings.ToLower(strings.TrimSpace(attrValue(t, "type"))))
				if _, tracked := geom.EdgeLengths[category]; tracked {
					lines = append(lines, pendingLine{category: category, path: attrValue(t, "path")})
				}
			case "POLYGON":
				if top := len(stack) - 1; top >= 0 && stack[top].name == "FACE" && !stack[top].tookPolygon {
					stack[top].tookPolygon = true
					area, perr := strconv.ParseFloat(attrValue(t, "unroundedsize"), 64)
					if perr != nil {
						area = 0.0
					}
					totalArea += area
				}
			}
			stack = append(stack, frame{name: t.Name.Local})

		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}

	for _, line := range lines {
		a, b, ok := resolveEndpoints(points, line.path)
		if !ok {
			continue
		}
		geom.EdgeLengths[line.category] += distance(a, b)
	}

	geom.TotalArea = model.Round2(totalArea)
	for category, length := range geom.EdgeLengths {
		geom.EdgeLengths[category] = model.Round2(length)
	}
	return geom, nil
}

// attrValue returns the named attribute of an element, "" when absent.
func attrValue(el xml.StartElement, name string) string {
	for _, a := range el.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

// parseCoords parses a point's "x,y,z" data string. Anything that is
// not exactly three numbers fails.
func parseCoords(data string) (point3, bool) {
	parts := strings.Split(data, ",")
	if len(parts) != 3 {
		return point3{}, false
	}
	var coords [3]float64
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return point3{}, false
		}
		coords[i] = v
	}
	return point3{X: coords[0], Y: coords[1], Z: coords[2]}, true
}

// resolveEndpoints splits a LINE path attribute into its two point ids
// and looks both up. Ids are matched verbatim; a path without exactly
// two ids, or with an id no point carries, skips the segment.
func resolveEndpoints(points map[string]point3, path string) (point3, point3, bool) {
	ids := strings.Split(path, ",")
	if len(ids) != 2 {
		return point3{}, point3{}, false
	}
	a, okA := points[ids[0]]
	b, okB := points[ids[1]]
	if !okA || !okB {
		return point3{}, point3{}, false
	}
	return a, b, true
}

// distance is the 3-D Euclidean distance between two report points.
func distance(a, b point3) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	dz := a.Z - b.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
