package mailer

import "embed"

const (
	FROM_NAME = "ScribeArc"
	MAX_RETRY = 3
)

type MailTemplateFile string

const (
	TemplateProjectReceived     MailTemplateFile = "project_received.tmpl"
	TemplateProjectValidated    MailTemplateFile = "project_validated.tmpl"
	TemplateProjectRejected     MailTemplateFile = "project_rejected.tmpl"
	TemplateProjectAssigned     MailTemplateFile = "project_assigned.tmpl"
	TemplateWriterNewAssignment MailTemplateFile = "writer_new_assignment.tmpl"
	TemplateProjectCompleted    MailTemplateFile = "project_completed.tmpl"
	TemplateDeadlineWarning     MailTemplateFile = "deadline_warning.tmpl"
)

//go:embed "templates"
var FS embed.FS

type Client interface {
	Send(templateFile MailTemplateFile, toName, toEmail string, data any) (int, error)
}

// Template data payloads. They travel through the notification queue as JSON,
// so fields must be exported.

type ProjectStatusData struct {
	ClientName    string `json:"clientName"`
	ReferenceCode string `json:"referenceCode"`
	Status        string `json:"status"`
	Notes         string `json:"notes"`
	TrackingURL   string `json:"trackingUrl"`
}

type WriterAssignmentData struct {
	WriterName    string `json:"writerName"`
	ReferenceCode string `json:"referenceCode"`
	Title         string `json:"title"`
	Deadline      string `json:"deadline"`
}

type DeadlineWarningData struct {
	ReferenceCode  string `json:"referenceCode"`
	Title          string `json:"title"`
	Deadline       string `json:"deadline"`
	HoursRemaining int    `json:"hoursRemaining"`
}
