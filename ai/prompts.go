package ai

import (
	"fmt"
	"strings"

	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/models"
)

const chatFormatPrompt = `You are a friendly and professional medical AI assistant. Format your responses to be visually appealing and easy to read:

1. Use emojis sparingly to make content engaging (💊 for medication, 🌡️ for fever, ⚠️ for warnings, ✅ for recommendations, 🏥 for medical care)
2. Structure information with clear bold section headers
3. Use bullet points for lists
4. Keep paragraphs short and scannable
5. Highlight critical information with ⚠️ or 🚨
6. Keep a warm, empathetic tone while remaining professional

Now respond to the user's query following this format.`

const symptomAnalysisPrompt = `You are an AI medical assistant specializing in symptom analysis. Provide a CONCISE, structured analysis in the exact format below.

SAFETY RULES:
1. Always state that this is not a medical diagnosis
2. For emergency symptoms, recommend emergency care immediately
3. When in doubt, recommend professional consultation
4. Never recommend specific medications or dosages

RESPONSE STRUCTURE:

**Possible Conditions:**
• [2-3 most likely conditions, one line each]

**Recommended Actions:**
• [3-4 key actions, one line each]

**Self-Care Steps:**
• [2-3 self-care measures, one line each]

**When to Seek Medical Help:**
• [2-3 specific scenarios, one line each]`

// ChatMessages wraps the user text in the formatting instruction, after any
// prior turns of the conversation
func ChatMessages(history []models.ChatMessage, userText string) []Message {
	msgs := make([]Message, 0, len(history)+1)
	for _, h := range history {
		if h.Content == "" {
			continue
		}
		msgs = append(msgs, Message{Role: h.Role, Content: h.Content})
	}
	return append(msgs, Message{Role: "user", Content: chatFormatPrompt + "\n\nUser Query: " + userText})
}

// SymptomMessages builds the analysis request for the reported symptoms
func SymptomMessages(req models.SymptomAnalysisRequest) []Message {
	var symptoms []string
	for _, s := range req.Symptoms {
		detail := fmt.Sprintf("%s: Severity: %s", s.Name, s.Severity)
		if s.Duration != "" {
			detail += ", Duration: " + s.Duration
		}
		if s.Location != "" {
			detail += ", Location: " + s.Location
		}
		if s.Description != "" {
			detail += ", Description: " + s.Description
		}
		symptoms = append(symptoms, detail)
	}

	patient := "Not provided"
	if p := patientLines(req.PatientInfo); len(p) > 0 {
		patient = strings.Join(p, "\n")
	}

	var b strings.Builder
	b.WriteString("PATIENT INFORMATION:\n")
	b.WriteString(patient)
	b.WriteString("\n\nSYMPTOMS TO ANALYZE:\n")
	b.WriteString(strings.Join(symptoms, "\n"))
	if req.Prompt != "" {
		b.WriteString("\n\nADDITIONAL CONTEXT:\n")
		b.WriteString(req.Prompt)
	}

	return []Message{
		{Role: "system", Content: symptomAnalysisPrompt},
		{Role: "user", Content: b.String()},
	}
}

// SymptomSummary is the one message stored in chat history for an analysis
func SymptomSummary(req models.SymptomAnalysisRequest) string {
	parts := make([]string, 0, len(req.Symptoms))
	for _, s := range req.Symptoms {
		if s.Duration != "" {
			parts = append(parts, fmt.Sprintf("%s (%s, %s)", s.Name, s.Severity, s.Duration))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s (%s)", s.Name, s.Severity))
	}
	lines := append([]string{"Symptom Check: " + strings.Join(parts, ", ")}, patientLines(req.PatientInfo)...)
	return strings.Join(lines, "\n")
}

func patientLines(p models.PatientInfo) []string {
	var lines []string
	if p.Age != "" {
		lines = append(lines, "Age: "+p.Age)
	}
	if p.Gender != "" {
		lines = append(lines, "Gender: "+p.Gender)
	}
	if p.MedicalHistory != "" {
		lines = append(lines, "Medical History: "+p.MedicalHistory)
	}
	return lines
}
