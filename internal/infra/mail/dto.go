package mail

type QuoteEmailData struct {
	ToolName      string
	DeepLink      string
	ExpiresInDays int
}

type ReminderEmailData struct {
	ToolName  string
	DeepLink  string
	ExpiresOn string
}

type SMTPSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}
