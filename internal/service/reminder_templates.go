package service

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"

	"apartment-be-svc/internal/models"
	"apartment-be-svc/pkg/utils"
)

type reminderCopy struct {
	SubjectOverdue  string
	SubjectDueSoon  string
	SubjectStandard string
	Greeting        string
	Intro           string
	ColumnID        string
	ColumnDueDate   string
	ColumnStatus    string
	ColumnTotal     string
	GrandTotal      string
	Action          string
	Closing         string
	StatusOverdue   string
	StatusDueToday  string
	StatusDueIn     string
}

var reminderCopies = map[string]reminderCopy{
	"en": {
		SubjectOverdue:  "⚠️ Urgent: %d overdue bill(s) and %d upcoming bill(s)",
		SubjectDueSoon:  "🔔 Reminder: your bill is due soon",
		SubjectStandard: "Billing reminder",
		Greeting:        "Hello",
		Intro:           "This is a reminder about your unpaid apartment bills:",
		ColumnID:        "Bill",
		ColumnDueDate:   "Due date",
		ColumnStatus:    "Status",
		ColumnTotal:     "Amount",
		GrandTotal:      "Total due",
		Action:          "View and pay your bills",
		Closing:         "Please ignore this message if you have already paid.",
		StatusOverdue:   "Overdue by %d day(s)",
		StatusDueToday:  "Due today",
		StatusDueIn:     "Due in %d day(s)",
	},
	"id": {
		SubjectOverdue:  "⚠️ Penting: %d tagihan terlambat dan %d tagihan lainnya",
		SubjectDueSoon:  "🔔 Pengingat: tagihan Anda segera jatuh tempo",
		SubjectStandard: "Pengingat tagihan",
		Greeting:        "Halo",
		Intro:           "Berikut pengingat tagihan apartemen Anda yang belum dibayar:",
		ColumnID:        "Tagihan",
		ColumnDueDate:   "Jatuh tempo",
		ColumnStatus:    "Status",
		ColumnTotal:     "Jumlah",
		GrandTotal:      "Total tagihan",
		Action:          "Lihat dan bayar tagihan Anda",
		Closing:         "Abaikan pesan ini jika Anda sudah membayar.",
		StatusOverdue:   "Terlambat %d hari",
		StatusDueToday:  "Jatuh tempo hari ini",
		StatusDueIn:     "Jatuh tempo dalam %d hari",
	},
}

type reminderLine struct {
	ID      uint
	DueDate string
	Status  string
	Total   string
	Overdue bool
}

type reminderView struct {
	Copy       reminderCopy
	FullName   string
	Lines      []reminderLine
	GrandTotal string
	Link       string
}

var reminderHTML = htmltemplate.Must(htmltemplate.New("reminder.html").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #222;">
<p>{{.Copy.Greeting}} {{.FullName}},</p>
<p>{{.Copy.Intro}}</p>
<table cellpadding="6" cellspacing="0" border="1" style="border-collapse: collapse;">
<tr><th>{{.Copy.ColumnID}}</th><th>{{.Copy.ColumnDueDate}}</th><th>{{.Copy.ColumnStatus}}</th><th>{{.Copy.ColumnTotal}}</th></tr>
{{range .Lines}}<tr><td>#{{.ID}}</td><td>{{.DueDate}}</td><td{{if .Overdue}} style="color: #c0392b;"{{end}}>{{.Status}}</td><td>{{.Total}}</td></tr>
{{end}}</table>
<p><strong>{{.Copy.GrandTotal}}: {{.GrandTotal}}</strong></p>
<p><a href="{{.Link}}">{{.Copy.Action}}</a></p>
<p>{{.Copy.Closing}}</p>
</body>
</html>
`))

var reminderText = texttemplate.Must(texttemplate.New("reminder.txt").Parse(`{{.Copy.Greeting}} {{.FullName}},

{{.Copy.Intro}}
{{range .Lines}}
- #{{.ID}} | {{.DueDate}} | {{.Status}} | {{.Total}}{{end}}

{{.Copy.GrandTotal}}: {{.GrandTotal}}

{{.Copy.Action}}: {{.Link}}

{{.Copy.Closing}}
`))

// reminderRenderer turns one resident's bills into a subject and both bodies
type reminderRenderer struct {
	copy      reminderCopy
	formatter *utils.Formatter
	baseURL   string
}

func newReminderRenderer(locale string, formatter *utils.Formatter, baseURL string) *reminderRenderer {
	c, ok := reminderCopies[strings.ToLower(strings.TrimSpace(locale))]
	if !ok {
		c = reminderCopies["en"]
	}
	return &reminderRenderer{copy: c, formatter: formatter, baseURL: baseURL}
}

// subject picks overdue first, then due-soon for anything within three days
func (r *reminderRenderer) subject(bills []models.BillingSummary) string {
	overdue := 0
	minDays := bills[0].DaysUntilDue
	for _, b := range bills {
		if b.IsOverdue {
			overdue++
		}
		if b.DaysUntilDue < minDays {
			minDays = b.DaysUntilDue
		}
	}

	switch {
	case overdue > 0:
		return fmt.Sprintf(r.copy.SubjectOverdue, overdue, len(bills)-overdue)
	case minDays <= 3:
		return r.copy.SubjectDueSoon
	default:
		return r.copy.SubjectStandard
	}
}

func (r *reminderRenderer) status(b models.BillingSummary) string {
	switch {
	case b.IsOverdue:
		return fmt.Sprintf(r.copy.StatusOverdue, -b.DaysUntilDue)
	case b.DaysUntilDue == 0:
		return r.copy.StatusDueToday
	default:
		return fmt.Sprintf(r.copy.StatusDueIn, b.DaysUntilDue)
	}
}

func (r *reminderRenderer) view(fullName string, bills []models.BillingSummary) reminderView {
	batch := models.ReminderBatch{Billings: bills}
	lines := make([]reminderLine, 0, len(bills))
	for _, b := range bills {
		lines = append(lines, reminderLine{
			ID:      b.ID,
			DueDate: r.formatter.Date(b.DueDate),
			Status:  r.status(b),
			Total:   r.formatter.Currency(b.Total),
			Overdue: b.IsOverdue,
		})
	}
	return reminderView{
		Copy:       r.copy,
		FullName:   fullName,
		Lines:      lines,
		GrandTotal: r.formatter.Currency(batch.Total()),
		Link:       r.baseURL + "/billing",
	}
}

// render returns subject, HTML body and plain-text body; bills must not be empty
func (r *reminderRenderer) render(fullName string, bills []models.BillingSummary) (string, string, string, error) {
	view := r.view(fullName, bills)

	var html, text bytes.Buffer
	if err := reminderHTML.Execute(&html, view); err != nil {
		return "", "", "", fmt.Errorf("render html reminder: %w", err)
	}
	if err := reminderText.Execute(&text, view); err != nil {
		return "", "", "", fmt.Errorf("render text reminder: %w", err)
	}

	return r.subject(bills), html.String(), text.String(), nil
}
