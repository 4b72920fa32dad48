package mailer

// StatusNotificationJob is the JSON payload queued on RabbitMQ whenever a
// package changes status. The notify worker consumes it and emails the
// package owner. To may be empty when the owner lookup failed; the worker
// drops such jobs.
type StatusNotificationJob struct {
	To            string `json:"to"`
	PackageID     string `json:"package_id"`
	TrackingCode  string `json:"tracking_code"`
	Status        string `json:"status"`
	RecipientName string `json:"recipient_name,omitempty"`
}
