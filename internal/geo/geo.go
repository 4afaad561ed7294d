// Package geo converts engine trajectories into simplefeatures geometries
// for storage (WKB) and for the plotting collaborator (GeoJSON).
package geo

import (
	"errors"
	"fmt"

	geom "github.com/peterstace/simplefeatures/geom"

	"github.com/stepshot/stepshot/pkg/core"
)

// ErrTooFewPoints is returned when a path has fewer than 2 positions.
var ErrTooFewPoints = errors.New("path must have at least 2 points")

// PathLineString builds a geom.LineString through the sampled positions in
// step order.
func PathLineString(positions []core.Point) (geom.LineString, error) {
	if len(positions) < 2 {
		return geom.LineString{}, ErrTooFewPoints
	}

	flat := make([]float64, 0, len(positions)*2)
	for _, p := range positions {
		flat = append(flat, p.X, p.Y)
	}
	seq := geom.NewSequence(flat, geom.DimXY)
	ls, err := geom.NewLineString(seq)
	if err != nil {
		return geom.LineString{}, fmt.Errorf("building path linestring: %w", err)
	}
	return ls, nil
}

// PathWKB returns the flight path in WKB form for storage.
func PathWKB(positions []core.Point) ([]byte, error) {
	ls, err := PathLineString(positions)
	if err != nil {
		return nil, err
	}
	return ls.AsBinary(), nil
}

// LandingPoint builds a geom.Point at the landing position.
func LandingPoint(p core.Point) (geom.Point, error) {
	pt, err := geom.NewPoint(geom.Coordinates{
		XY:   geom.XY{X: p.X, Y: p.Y},
		Type: geom.DimXY,
	})
	if err != nil {
		return geom.Point{}, fmt.Errorf("building landing point: %w", err)
	}
	return pt, nil
}

// FeatureCollection packages one feature per run, each carrying its flight
// path and the given properties, as a GeoJSON feature collection.
func FeatureCollection(paths [][]core.Point, properties []map[string]interface{}) (geom.GeoJSONFeatureCollection, error) {
	if len(paths) != len(properties) {
		return nil, errors.New("paths and properties must have equal length")
	}

	fc := make(geom.GeoJSONFeatureCollection, 0, len(paths))
	for i, path := range paths {
		ls, err := PathLineString(path)
		if err != nil {
			return nil, err
		}
		fc = append(fc, geom.GeoJSONFeature{
			Geometry:   ls.AsGeometry(),
			Properties: properties[i],
		})
	}
	return fc, nil
}
