package handlers

import (
	"net/http"

	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/api"
	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/models"
	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/notify"
)

// Live streams reminder events to connected clients
type Live struct {
	Hub *notify.Hub
}

// RemindersSocketHandler upgrades to a websocket that receives the user's reminders
func (h Live) RemindersSocketHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	if h.Hub == nil {
		api.WriteJSON(w, http.StatusServiceUnavailable, models.ErrorMessageResponse{Error: "Live reminders are unavailable"})
		return
	}
	h.Hub.Serve(w, r, userID)
}
