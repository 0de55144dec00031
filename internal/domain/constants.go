package domain

const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

const (
	ConversationStatusActive = "active"
	ConversationStatusClosed = "closed"
)

const (
	NotifTypeNewBooking = "NEW_BOOKING"
	NotifTypeNewMessage = "NEW_MESSAGE"
)
