package ai

import (
	"strings"

	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/models"
)

var emergencyKeywords = []string{
	"chest pain", "heart attack", "difficulty breathing", "can't breathe",
	"severe bleeding", "unconscious", "stroke", "seizure", "overdose",
	"severe allergic reaction", "anaphylaxis", "severe abdominal pain",
	"severe headache", "high fever", "dehydration", "severe burns",
}

// EmergencyResponse is returned without calling the model when a symptom
// matches an emergency keyword
const EmergencyResponse = `🚨 **EMERGENCY - SEEK IMMEDIATE MEDICAL ATTENTION** 🚨

**Possible Conditions:**
• Medical emergency requiring immediate professional evaluation

**Recommended Actions:**
• Call 911 or your local emergency number now
• Go to the nearest emergency room
• Do not drive yourself, call an ambulance

**When to Seek Medical Help:**
• RIGHT NOW. This is a medical emergency`

// FallbackResponse is returned when the model is unavailable or fails
const FallbackResponse = `**Possible Conditions:**
• Unable to analyze at this time
• Please consult a healthcare professional

**Recommended Actions:**
• Contact your doctor or an urgent care center
• Do not delay care if symptoms are severe

**Self-Care Steps:**
• Keep a record of your symptoms
• Monitor for any worsening

**When to Seek Medical Help:**
• If symptoms are severe or worsening
• For a proper medical evaluation`

// IsEmergency reports whether any symptom mentions an emergency keyword
func IsEmergency(symptoms []models.Symptom) bool {
	var b strings.Builder
	for _, s := range symptoms {
		b.WriteString(s.Name)
		b.WriteByte(' ')
		b.WriteString(s.Description)
		b.WriteByte(' ')
		b.WriteString(s.Severity)
		b.WriteByte(' ')
	}
	text := strings.ToLower(b.String())
	for _, k := range emergencyKeywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
