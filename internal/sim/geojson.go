package sim

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// FeatureCollection returns the playground and every walker path as
// GeoJSON features. Lakes are the polygon's inner rings; islands are
// separate features.
func (r *WalkResult) FeatureCollection() *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	if r.Boundary != nil {
		pg := geojson.NewFeature(r.Boundary.Polygon())
		pg.Properties["kind"] = "playground"
		fc.Append(pg)

		for i, island := range r.Boundary.Islands() {
			f := geojson.NewFeature(orb.Polygon{island})
			f.Properties["kind"] = "island"
			f.Properties["index"] = i
			fc.Append(f)
		}
	}

	for _, w := range r.Walkers {
		f := geojson.NewFeature(w.Path)
		f.Properties["kind"] = "walker"
		f.Properties["index"] = w.Index
		f.Properties["variant"] = w.Variant
		f.Properties["rejected"] = w.Rejected
		fc.Append(f)
	}
	return fc
}

// GeoJSON encodes FeatureCollection.
func (r *WalkResult) GeoJSON() ([]byte, error) {
	return r.FeatureCollection().MarshalJSON()
}
