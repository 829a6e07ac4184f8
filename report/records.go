// Package report computes and writes CSV reports of rect-to-rect transforms.
package report

import (
	"gonum.org/v1/gonum/floats"

	"github.com/cricklet/speedscope/config"
	"github.com/cricklet/speedscope/geom"
)

// TransformRecord describes the BetweenRects transform of one mapping.
type TransformRecord struct {
	Mapping    string  `csv:"mapping"`
	ScaleX     float64 `csv:"scale_x"`
	ScaleY     float64 `csv:"scale_y"`
	TranslateX float64 `csv:"translate_x"`
	TranslateY float64 `csv:"translate_y"`

	// Flattened mat3 in upload order
	Mat0 float64 `csv:"mat3_0"`
	Mat1 float64 `csv:"mat3_1"`
	Mat2 float64 `csv:"mat3_2"`
	Mat3 float64 `csv:"mat3_3"`
	Mat4 float64 `csv:"mat3_4"`
	Mat5 float64 `csv:"mat3_5"`
	Mat6 float64 `csv:"mat3_6"`
	Mat7 float64 `csv:"mat3_7"`
	Mat8 float64 `csv:"mat3_8"`

	// Distance between the transformed corners of From and the corners of To.
	// BetweenRects leaves translation unscaled, so this is nonzero whenever
	// From is not at the origin and the scale is not 1.
	CornerDeviation float64 `csv:"corner_deviation"`
	MapsCorners     bool    `csv:"maps_corners"`
}

// ProbeRecord is one probe point pushed through one mapping.
type ProbeRecord struct {
	Mapping  string  `csv:"mapping"`
	X        float64 `csv:"x"`
	Y        float64 `csv:"y"`
	PosX     float64 `csv:"position_x"`
	PosY     float64 `csv:"position_y"`
	VecX     float64 `csv:"vector_x"`
	VecY     float64 `csv:"vector_y"`
	ClosestX float64 `csv:"closest_x"`
	ClosestY float64 `csv:"closest_y"`
}

func corners(r geom.Rect) []float64 {
	out := make([]float64, 0, 8)
	for _, c := range []geom.Vec2{r.TopLeft(), r.TopRight(), r.BottomRight(), r.BottomLeft()} {
		out = append(out, c.X, c.Y)
	}
	return out
}

func transformedCorners(t geom.AffineTransform, r geom.Rect) []float64 {
	out := make([]float64, 0, 8)
	for _, c := range []geom.Vec2{r.TopLeft(), r.TopRight(), r.BottomRight(), r.BottomLeft()} {
		p := t.TransformPosition(c)
		out = append(out, p.X, p.Y)
	}
	return out
}

// NewTransformRecord builds the record for m. tolerance bounds the corner
// deviation still reported as mapping From onto To.
func NewTransformRecord(m config.Mapping, tolerance float64) TransformRecord {
	t := geom.BetweenRects(m.From, m.To)
	s := t.Scale()
	tr := t.Translation()
	flat := t.Flatten()

	dev := floats.Distance(transformedCorners(t, m.From), corners(m.To), 2)

	return TransformRecord{
		Mapping:    m.Name,
		ScaleX:     s.X,
		ScaleY:     s.Y,
		TranslateX: tr.X,
		TranslateY: tr.Y,

		Mat0: flat[0], Mat1: flat[1], Mat2: flat[2],
		Mat3: flat[3], Mat4: flat[4], Mat5: flat[5],
		Mat6: flat[6], Mat7: flat[7], Mat8: flat[8],

		CornerDeviation: dev,
		MapsCorners:     dev <= tolerance,
	}
}

// NewProbeRecords pushes every probe through m's transform and projects it onto m.To.
func NewProbeRecords(m config.Mapping, probes []geom.Vec2) []ProbeRecord {
	t := geom.BetweenRects(m.From, m.To)
	records := make([]ProbeRecord, 0, len(probes))
	for _, p := range probes {
		pos := t.TransformPosition(p)
		vec := t.TransformVector(p)
		closest := m.To.ClosestPointTo(p)
		records = append(records, ProbeRecord{
			Mapping:  m.Name,
			X:        p.X,
			Y:        p.Y,
			PosX:     pos.X,
			PosY:     pos.Y,
			VecX:     vec.X,
			VecY:     vec.Y,
			ClosestX: closest.X,
			ClosestY: closest.Y,
		})
	}
	return records
}
