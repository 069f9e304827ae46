package constants

// WebSocket event types
const (
	EventError = "error"
	EventPing  = "ping"
	EventPong  = "pong"

	// Messaging events
	EventChatMessage = "chat_message"

	// Booking events
	EventBookingAccepted  = "booking_accepted"
	EventBookingRejected  = "booking_rejected"
	EventBookingCancelled = "booking_cancelled"

	// Location events
	EventLocationUpdate = "location_update"
)

// WebSocket error codes
const (
	ErrorInvalidFormat = "invalid_format"
	ErrorUnauthorized  = "unauthorized"
	ErrorInternalError = "internal_error"
)
