// Package docs Health Tracker API.
//
// Medication reminders, dose logging, health metrics and AI chat for the
// health tracker app.
//
//     Schemes: https
//     BasePath: /
//     Version: 1.0.0
//
//     Consumes:
//     - application/json
//
//     Produces:
//     - application/json
//
//     Security:
//     - bearer
//
//    SecurityDefinitions:
//    bearer:
//      type: apiKey
//      name: Authorization
//      in: header
//
// swagger:meta
package docs

import (
	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/models"
)

// swagger:route GET /health health healthEndpointID
// Reports whether the service is alive.
// responses:
//   200: healthResponse

// true means the api is alive
// swagger:response healthResponse
type healthResponseWrapper struct {
	// in:body
	Body struct {
		Alive bool `json:"alive"`
	}
}

// swagger:route POST /api/v1/auth/token auth createToken
// Exchanges basic credentials for a session token.
// responses:
//   200: tokenResponse

// swagger:response tokenResponse
type tokenResponseWrapper struct {
	// in:body
	Body models.TokenResponse
}

// swagger:route GET /api/v1/medications medications listMedications
// Lists the caller's medications. ?active=true keeps only active ones.
// responses:
//   200: medicationsResponse

// swagger:response medicationsResponse
type medicationsResponseWrapper struct {
	// in:body
	Body struct {
		Medications []models.Medication `json:"medications"`
	}
}

// swagger:route POST /api/v1/medications/mark-taken medications markTaken
// Records a scheduled dose as taken. Repeating the call is harmless.
// responses:
//   200: doseLogResponse
//   201: doseLogResponse

// swagger:parameters markTaken
type markTakenParams struct {
	// in:body
	Body models.MarkTakenRequest
}

// swagger:response doseLogResponse
type doseLogResponseWrapper struct {
	// in:body
	Body struct {
		Log models.MedicationLog `json:"log"`
	}
}

// swagger:route POST /api/v1/health-metrics metrics createHealthMetric
// Records a health reading.
// responses:
//   201: healthMetricResponse

// swagger:parameters createHealthMetric
type createHealthMetricParams struct {
	// in:body
	Body models.HealthMetricRequest
}

// swagger:response healthMetricResponse
type healthMetricResponseWrapper struct {
	// in:body
	Body struct {
		Metric models.HealthMetric `json:"metric"`
	}
}

// swagger:route POST /api/v1/chat chat chat
// Answers a chat turn and appends it to the session.
// responses:
//   200: chatResponse

// swagger:parameters chat
type chatParams struct {
	// in:body
	Body models.ChatRequest
}

// swagger:response chatResponse
type chatResponseWrapper struct {
	// in:body
	Body models.ChatResponse
}

// swagger:route POST /api/v1/symptom-analysis chat symptomAnalysis
// Analyses reported symptoms. Emergencies get a fixed response.
// responses:
//   200: symptomAnalysisResponse

// swagger:parameters symptomAnalysis
type symptomAnalysisParams struct {
	// in:body
	Body models.SymptomAnalysisRequest
}

// swagger:response symptomAnalysisResponse
type symptomAnalysisResponseWrapper struct {
	// in:body
	Body models.SymptomAnalysisResponse
}
