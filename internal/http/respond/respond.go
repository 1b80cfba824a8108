package respond

import (
	"encoding/json"
	"log"
	"net/http"
)

// Envelope is the standard API response wrapper used across handlers.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Count   *int   `json:"count,omitempty"`
	Error   string `json:"error,omitempty"`
}

// JSON writes a successful envelope around data.
func JSON(w http.ResponseWriter, status int, data any) {
	Write(w, status, Envelope{Success: true, Data: data})
}

// List writes {success, data: {key: items}, count}.
func List(w http.ResponseWriter, key string, items any, count int) {
	Write(w, http.StatusOK, Envelope{Success: true, Data: map[string]any{key: items}, Count: &count})
}

// Message writes a successful envelope carrying only a message.
func Message(w http.ResponseWriter, status int, message string) {
	Write(w, status, Envelope{Success: true, Message: message})
}

// Error writes {success:false, message} and adds the error detail only when
// expose is set (outside production).
func Error(w http.ResponseWriter, status int, message string, detail error, expose bool) {
	env := Envelope{Success: false, Message: message}
	if expose && detail != nil {
		env.Error = detail.Error()
	}
	Write(w, status, env)
}

// Write encodes any payload as JSON with the given status.
func Write(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("respond: encode payload failed: %v", err)
	}
}
