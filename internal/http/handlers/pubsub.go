package handlers

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/clubrank/internal/processor"
	"github.com/mauv0809/clubrank/internal/pubsub"
)

// pushEnvelope is the body Pub/Sub push subscriptions POST.
type pushEnvelope struct {
	Subscription string `json:"subscription"`
	Message      struct {
		Data       string            `json:"data"`
		Attributes map[string]string `json:"attributes"`
		MessageID  string            `json:"messageId"`
	} `json:"message"`
}

// decodeGameMessage unwraps the push envelope, writing a 400 and returning
// false when the body is not a valid game message.
func decodeGameMessage(w http.ResponseWriter, r *http.Request, pubsubClient pubsub.PubSubClient) (pubsub.EventType, pubsub.GameMessage, bool) {
	var msg pubsub.GameMessage

	bodyBytes, err := io.ReadAll(r.Body)
	if err != nil {
		log.Error("Failed to read request body", "error", err)
		http.Error(w, "Failed to read request body", http.StatusInternalServerError)
		return "", msg, false
	}
	log.Debug("Received pubsub push", "body", string(bodyBytes))

	var envelope pushEnvelope
	if err := json.Unmarshal(bodyBytes, &envelope); err != nil {
		log.Error("Failed to unmarshal wrapper JSON", "error", err)
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return "", msg, false
	}

	rawData, err := base64.StdEncoding.DecodeString(envelope.Message.Data)
	if err != nil {
		log.Error("Failed to decode base64 data", "error", err)
		http.Error(w, "Invalid base64 data", http.StatusBadRequest)
		return "", msg, false
	}
	if err := pubsubClient.ProcessMessage(rawData, &msg); err != nil {
		http.Error(w, "Invalid message payload", http.StatusBadRequest)
		return "", msg, false
	}
	if msg.ClubID == "" {
		http.Error(w, "Message has no club", http.StatusBadRequest)
		return "", msg, false
	}

	event := pubsub.EventType(envelope.Message.Attributes["event_type"])
	if event == "" {
		event = pubsub.EventGameCompleted
	}
	return event, msg, true
}

// GameEventHandler consumes game lifecycle messages pushed by Pub/Sub.
// A non-2xx answer makes Pub/Sub redeliver, so only processing failures get one.
func GameEventHandler(p *processor.Processor, pubsubClient pubsub.PubSubClient) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		event, msg, ok := decodeGameMessage(w, r, pubsubClient)
		if !ok {
			return
		}

		var err error
		switch event {
		case pubsub.EventGameCompleted:
			err = p.HandleGameCompleted(r.Context(), msg, IsDryRunFromContext(r))
		case pubsub.EventGameCanceled:
			err = p.HandleGameCanceled(r.Context(), msg)
		default:
			log.Warn("Ignoring unknown game event", "event", event, "gameID", msg.GameID)
		}
		if err != nil {
			log.Error("Failed to handle game event", "error", err, "event", event, "gameID", msg.GameID)
			http.Error(w, "Failed to handle game event", http.StatusInternalServerError)
			return
		}
		w.Write([]byte("OK"))
	}
}
