package templates

import (
	"fmt"
	"html"
)

// ReminderSubject is the subject line of a dose reminder
func ReminderSubject(medicationName, scheduledTime string) string {
	return fmt.Sprintf("💊 Medication Reminder: %s at %s", medicationName, scheduledTime)
}

// RenderMedicationReminderEmail builds the HTML body of a dose reminder with
// the one-click mark-as-taken link
func RenderMedicationReminderEmail(userName, medicationName, scheduledTime, markTakenURL string) string {
	greeting := "Hello,"
	if userName != "" {
		greeting = fmt.Sprintf("Hello %s,", html.EscapeString(userName))
	}

	body := fmt.Sprintf(`<p>%s</p>
      <p>It's almost time to take your medication.</p>
      <div class="details">
        <p><strong>Medication:</strong> %s</p>
        <p><strong>Scheduled time:</strong> %s</p>
      </div>
      <p style="text-align: center;"><a class="button" href="%s">✓ Mark as Taken</a></p>
      <p style="font-size: 13px; color: #6b7280;">If the button does not work, open this link: %s</p>`,
		greeting,
		html.EscapeString(medicationName),
		html.EscapeString(scheduledTime),
		html.EscapeString(markTakenURL),
		html.EscapeString(markTakenURL),
	)
	return renderLayout("Medication Reminder", body)
}

// RenderMedicationReminderText is the plain text alternative of the reminder
func RenderMedicationReminderText(userName, medicationName, scheduledTime, markTakenURL string) string {
	greeting := "Hello,"
	if userName != "" {
		greeting = fmt.Sprintf("Hello %s,", userName)
	}
	return fmt.Sprintf(`%s

It's almost time to take your medication.

Medication: %s
Scheduled time: %s

Mark as taken: %s
`, greeting, medicationName, scheduledTime, markTakenURL)
}
