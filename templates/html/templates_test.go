package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReminderSubject(t *testing.T) {
	assert.Equal(t, "💊 Medication Reminder: Metformin at 09:00", ReminderSubject("Metformin", "09:00"))
}

func TestRenderMedicationReminderEmailEscapes(t *testing.T) {
	url := "https://health.example.com/api/v1/medications/mark-taken?medicationId=1&scheduledTime=09:00"
	out := RenderMedicationReminderEmail("Jane", "<b>Vitamin D</b>", "09:00", url)

	assert.Contains(t, out, "Hello Jane,")
	assert.Contains(t, out, "&lt;b&gt;Vitamin D&lt;/b&gt;")
	assert.NotContains(t, out, "<b>Vitamin D</b>")
	assert.Contains(t, out, "medicationId=1&amp;scheduledTime=09:00")
	assert.Contains(t, out, "<title>Medication Reminder</title>")
}

func TestRenderMedicationReminderText(t *testing.T) {
	out := RenderMedicationReminderText("", "Metformin", "09:00", "https://x/y")
	assert.Contains(t, out, "Hello,")
	assert.Contains(t, out, "Medication: Metformin")
	assert.Contains(t, out, "Mark as taken: https://x/y")
}

func TestRenderMarkTakenPages(t *testing.T) {
	assert.Contains(t, RenderMarkTakenPage("Metformin", "09:00", "2025-03-10"), "Medication Marked as Taken")
	already := RenderAlreadyTakenPage("Metformin", "09:00", "2025-03-10", "09:02")
	assert.Contains(t, already, "Already Marked as Taken")
	assert.Contains(t, already, "09:02")
	assert.Contains(t, RenderMarkTakenErrorPage("Missing <parameters>"), "Missing &lt;parameters&gt;")
}

func TestRenderGenericEmail(t *testing.T) {
	out := RenderGenericEmail("Welcome", "line one\nline <two>")
	assert.Contains(t, out, "line one<br>line &lt;two&gt;")
}
