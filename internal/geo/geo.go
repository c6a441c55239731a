package geo

import "math"

// earthRadiusKm is the Earth mean radius used for great-circle distances.
const earthRadiusKm = 6371.0

// Point is a geographic coordinate pair in decimal degrees.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Distance returns the great-circle distance between two points in kilometers
// using the haversine formula. Either point may be nil, for example when a
// delivery contact has no stored coordinates; the distance is then reported as
// zero so the caller charges base price only.
func Distance(a, b *Point) float64 {
	if a == nil || b == nil {
		return 0
	}
	latA := radians(a.Lat)
	latB := radians(b.Lat)
	dLat := radians(b.Lat - a.Lat)
	dLng := radians(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(latA)*math.Cos(latB)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
