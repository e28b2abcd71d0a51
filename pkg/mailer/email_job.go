package mailer

// EmailJob is the JSON payload placed on the RabbitMQ queue for the email
// worker to deliver.
type EmailJob struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}
