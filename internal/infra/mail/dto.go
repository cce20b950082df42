package mail

type LeadNotificationData struct {
	Name  string
	Email string
}
