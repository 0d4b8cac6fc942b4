package templates

import (
	"fmt"
	"html"
)

// RenderMarkTakenPage is shown after a dose was recorded from the email link
func RenderMarkTakenPage(medicationName, scheduledTime, scheduledDate string) string {
	body := fmt.Sprintf(`<p style="text-align: center; font-size: 48px; margin: 0;">✅</p>
      <p style="text-align: center;">Your dose has been recorded.</p>
      <div class="details">
        <p><strong>Medication:</strong> %s</p>
        <p><strong>Scheduled:</strong> %s at %s</p>
      </div>
      <p style="text-align: center;">You can close this window.</p>`,
		html.EscapeString(medicationName),
		html.EscapeString(scheduledDate),
		html.EscapeString(scheduledTime),
	)
	return renderLayout("Medication Marked as Taken", body)
}

// RenderAlreadyTakenPage is shown when the dose was recorded earlier
func RenderAlreadyTakenPage(medicationName, scheduledTime, scheduledDate, takenAt string) string {
	body := fmt.Sprintf(`<p style="text-align: center; font-size: 48px; margin: 0;">ℹ️</p>
      <p style="text-align: center;">This dose was already recorded.</p>
      <div class="details">
        <p><strong>Medication:</strong> %s</p>
        <p><strong>Scheduled:</strong> %s at %s</p>
        <p><strong>Taken at:</strong> %s</p>
      </div>`,
		html.EscapeString(medicationName),
		html.EscapeString(scheduledDate),
		html.EscapeString(scheduledTime),
		html.EscapeString(takenAt),
	)
	return renderLayout("Already Marked as Taken", body)
}

// RenderMarkTakenErrorPage is shown when the link is incomplete or recording failed
func RenderMarkTakenErrorPage(message string) string {
	body := fmt.Sprintf(`<p style="text-align: center; font-size: 48px; margin: 0;">⚠️</p>
      <p style="text-align: center;">%s</p>`, html.EscapeString(message))
	return renderLayout("Could Not Record Dose", body)
}
