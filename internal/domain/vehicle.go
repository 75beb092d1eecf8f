package domain

import "fmt"

// Enumerated vehicle kind used to adjust costs and estimate travel times.
type VehicleKind string

const (
	VehicleCar     VehicleKind = "car"
	VehicleTruck   VehicleKind = "truck"
	VehicleBike    VehicleKind = "bike"
	VehicleWalking VehicleKind = "walking"
)

// Per-kind routing characteristics. Multiplier models access
// restrictions/shortcuts relative to a car, not physical distance.
type VehicleProfile struct {
	Kind        VehicleKind
	SpeedKmh    float64
	Multiplier  float64
	Description string
}

// Fixed per-kind table; profiles are looked up, never computed.
var vehicleProfiles = map[VehicleKind]VehicleProfile{
	VehicleCar:     {Kind: VehicleCar, SpeedKmh: 50, Multiplier: 1.0, Description: "Standard passenger car"},
	VehicleTruck:   {Kind: VehicleTruck, SpeedKmh: 40, Multiplier: 1.1, Description: "Delivery truck with access restrictions"},
	VehicleBike:    {Kind: VehicleBike, SpeedKmh: 15, Multiplier: 0.9, Description: "Bicycle using shortcuts"},
	VehicleWalking: {Kind: VehicleWalking, SpeedKmh: 5, Multiplier: 0.8, Description: "On foot using pedestrian paths"},
}

// ProfileFor returns the routing profile for the given vehicle kind.
// An empty kind defaults to car.
func ProfileFor(kind VehicleKind) (VehicleProfile, error) {
	if kind == "" {
		kind = VehicleCar
	}
	p, ok := vehicleProfiles[kind]
	if !ok {
		return VehicleProfile{}, fmt.Errorf("unknown vehicle kind %q", kind)
	}
	return p, nil
}

// VehicleKinds lists all known profiles in a stable order.
func VehicleKinds() []VehicleProfile {
	return []VehicleProfile{
		vehicleProfiles[VehicleCar],
		vehicleProfiles[VehicleTruck],
		vehicleProfiles[VehicleBike],
		vehicleProfiles[VehicleWalking],
	}
}
