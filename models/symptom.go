package models

// Symptom is one reported symptom
type Symptom struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Severity    string `json:"severity"`
	Duration    string `json:"duration"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description,omitempty"`
}

// PatientInfo is optional context for a symptom analysis
type PatientInfo struct {
	Age            string `json:"age,omitempty"`
	Gender         string `json:"gender,omitempty"`
	MedicalHistory string `json:"medicalHistory,omitempty"`
}

// SymptomAnalysisRequest is the body accepted by the symptom analysis endpoint
type SymptomAnalysisRequest struct {
	Prompt      string      `json:"prompt"`
	Symptoms    []Symptom   `json:"symptoms"`
	PatientInfo PatientInfo `json:"patientInfo"`
}

// SymptomAnalysisResponse is returned by the symptom analysis endpoint
type SymptomAnalysisResponse struct {
	Analysis  string `json:"analysis"`
	Emergency bool   `json:"emergency"`
	SessionID string `json:"sessionId,omitempty"`
	Persisted bool   `json:"persisted"`
}
