// Package geofence computes the distance between a reported EVV location
// and a client's registered location and decides geofence compliance.
// It is pure: no state, no clock, no persistence.
package geofence

import (
	"math"

	apperrors "carebase-backend/internal/errors"
)

// earthRadiusMeters is the mean Earth radius used for great-circle distance.
const earthRadiusMeters = 6371000.0

// Status is the validator's verdict. LOCATION_UNAVAILABLE and NOT_REQUIRED
// are mapped by the caller, never produced here.
type Status string

const (
	StatusCompliant  Status = "COMPLIANT"
	StatusOutOfRange Status = "OUT_OF_RANGE"
)

// Location is a reported position with its GPS accuracy
type Location struct {
	Latitude       float64
	Longitude      float64
	AccuracyMeters float64
}

// ClientGeofence is a client's registered position and allowed radius
type ClientGeofence struct {
	Latitude     float64
	Longitude    float64
	RadiusMeters float64
}

// Result is the outcome of a geofence validation
type Result struct {
	Status           Status  `json:"status"`
	IsWithinGeofence bool    `json:"is_within_geofence"`
	DistanceMeters   float64 `json:"distance_meters"`
	RadiusMeters     float64 `json:"radius_meters"`
	Message          string  `json:"message"`
}

// Validate computes the great-circle distance between the reported and
// registered locations and reports whether the report falls inside the
// client's geofence radius. Malformed coordinates fail with ErrInvalidLocation.
func Validate(reported Location, client ClientGeofence) (*Result, error) {
	if !validCoordinates(reported.Latitude, reported.Longitude) || !validCoordinates(client.Latitude, client.Longitude) {
		return nil, apperrors.ErrInvalidLocation
	}
	if math.IsNaN(client.RadiusMeters) || math.IsInf(client.RadiusMeters, 0) || client.RadiusMeters < 0 {
		return nil, apperrors.ErrInvalidLocation
	}

	distance := Distance(reported.Latitude, reported.Longitude, client.Latitude, client.Longitude)
	within := distance <= client.RadiusMeters

	result := &Result{
		IsWithinGeofence: within,
		DistanceMeters:   distance,
		RadiusMeters:     client.RadiusMeters,
	}
	if within {
		result.Status = StatusCompliant
		result.Message = "location verified within client geofence"
	} else {
		result.Status = StatusOutOfRange
		result.Message = "reported location is outside the client geofence"
	}
	return result, nil
}

// Distance returns the haversine great-circle distance in meters between
// two coordinate pairs. Symmetric and zero for identical points.
func Distance(lat1, lng1, lat2, lng2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

func validCoordinates(lat, lng float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lng) || math.IsInf(lat, 0) || math.IsInf(lng, 0) {
		return false
	}
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
