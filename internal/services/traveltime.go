package services

import "route-optimizer-service/internal/domain"

// EstimateTravelTime converts a raw distance in meters into an estimated
// travel time in seconds using the profile's average speed.
func EstimateTravelTime(distanceMeters float64, profile domain.VehicleProfile) float64 {
	if profile.SpeedKmh <= 0 {
		return 0
	}
	return distanceMeters / 1000 / profile.SpeedKmh * 3600
}
