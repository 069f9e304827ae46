package constants

// NATS subjects
const (
	// Booking lifecycle
	SubjectBookingCreated   = "booking.created"
	SubjectBookingAccepted  = "booking.accepted"
	SubjectBookingRejected  = "booking.rejected"
	SubjectBookingCancelled = "booking.cancelled"

	// Ride lifecycle
	SubjectRideCancelled = "ride.cancelled"

	// Messaging
	SubjectChatMessage = "chat.message"

	// Location sharing
	SubjectLocationUpdate = "location.update"
)

// NATS queue groups
const (
	QueueMessaging = "messaging"
	QueueNotifier  = "notifier"
	QueueRealtime  = "realtime"
)
