package model

// NotificationType categorizes a timeline notification.
type NotificationType string

const (
	NotificationVisa    NotificationType = "visa"
	NotificationBill    NotificationType = "bill"
	NotificationMedical NotificationType = "medical"
	NotificationInfo    NotificationType = "info"
)

// Notification is one entry on the dashboard timeline.
type Notification struct {
	ID      string           `json:"id"`
	Type    NotificationType `json:"type"`
	Title   string           `json:"title"`
	Message string           `json:"message"`
	Date    string           `json:"date"`
	Read    bool             `json:"read"`
}

// SampleNotifications returns the static timeline sample data.
func SampleNotifications() []Notification {
	return []Notification{
		{
			ID:      "1",
			Type:    NotificationVisa,
			Title:   "D-2 Visa Expiry Warning",
			Message: "Your D-2 Visa expires in 30 days. Click to prepare renewal documents.",
			Date:    "Oct 25",
		},
		{
			ID:      "2",
			Type:    NotificationBill,
			Title:   "Electricity Bill Due",
			Message: "Your KEPCO bill for October is 45,000 KRW.",
			Date:    "Oct 24",
		},
		{
			ID:      "3",
			Type:    NotificationMedical,
			Title:   "Dental Appointment",
			Message: "Seoul International Clinic, 10 AM.",
			Date:    "Oct 26",
			Read:    true,
		},
	}
}
