package ai

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/models"
)

func TestChatMessagesWrapsUserText(t *testing.T) {
	history := []models.ChatMessage{
		{Role: models.RoleUser, Content: "I have a cold"},
		{Role: models.RoleAssistant, Content: "Rest and fluids."},
		{Role: models.RoleUser, Content: ""},
	}

	msgs := ChatMessages(history, "What about a sore throat?")
	assert.Len(t, msgs, 3)
	last := msgs[len(msgs)-1]
	assert.Equal(t, "user", last.Role)
	assert.True(t, strings.HasSuffix(last.Content, "User Query: What about a sore throat?"))
	assert.True(t, strings.HasPrefix(last.Content, chatFormatPrompt))
}

func TestSymptomMessages(t *testing.T) {
	req := models.SymptomAnalysisRequest{
		Symptoms: []models.Symptom{
			{Name: "Headache", Severity: "moderate", Duration: "2 days", Location: "forehead"},
			{Name: "Nausea", Severity: "mild"},
		},
		PatientInfo: models.PatientInfo{Age: "34"},
	}

	msgs := SymptomMessages(req)
	assert.Len(t, msgs, 2)
	assert.Equal(t, "system", msgs[0].Role)
	assert.Contains(t, msgs[1].Content, "Age: 34")
	assert.Contains(t, msgs[1].Content, "Headache: Severity: moderate, Duration: 2 days, Location: forehead")
	assert.Contains(t, msgs[1].Content, "Nausea: Severity: mild")
	assert.NotContains(t, msgs[1].Content, "Not provided")
}

func TestSymptomSummary(t *testing.T) {
	req := models.SymptomAnalysisRequest{
		Symptoms:    []models.Symptom{{Name: "Cough", Severity: "mild", Duration: "1 week"}, {Name: "Fatigue", Severity: "moderate"}},
		PatientInfo: models.PatientInfo{Gender: "female"},
	}
	assert.Equal(t, "Symptom Check: Cough (mild, 1 week), Fatigue (moderate)\nGender: female", SymptomSummary(req))
}

func TestIsEmergency(t *testing.T) {
	assert.True(t, IsEmergency([]models.Symptom{{Name: "Chest pain", Severity: "severe"}}))
	assert.True(t, IsEmergency([]models.Symptom{{Name: "Rash", Description: "signs of anaphylaxis"}}))
	assert.False(t, IsEmergency([]models.Symptom{{Name: "Runny nose", Severity: "mild"}}))
	assert.False(t, IsEmergency(nil))
}
