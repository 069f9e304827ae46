package constants

// Redis key formats
const (
	// Location sharing
	KeySessionLocation = "sharing:location:%s" // Format: sharing:location:{session_id}
	KeySharerGeo       = "sharers:geo"         // Geo set of all active sharer positions
)

// Redis hash fields
const (
	FieldLatitude  = "lat"
	FieldLongitude = "lng"
	FieldAccuracy  = "acc"
	FieldTimestamp = "ts"
)
