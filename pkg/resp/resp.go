package resp

import (
	"encoding/json"
	"log"
	"net/http"
)

// WriteJSONResponse пишет JSON ответ с указанным статусом
func WriteJSONResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Println("failed to encode response:", err)
	}
}

// WriteError пишет структурированную ошибку: сообщение + классификация
func WriteError(w http.ResponseWriter, status int, kind, message string) {
	WriteJSONResponse(w, status, map[string]string{
		"error":   kind,
		"message": message,
	})
}
