package pubsub

import "cloud.google.com/go/pubsub"

type client struct {
	client   *pubsub.Client
	teardown func()
}

// EventType represents the type of event/message sent via pubsub. It doubles
// as the topic name.
type EventType string

const (
	EventGameCompleted EventType = "game-completed"
	EventGameCanceled  EventType = "game-canceled"
)

// GameMessage is the payload of the game lifecycle topics.
type GameMessage struct {
	GameID string `msgpack:"game_id"`
	ClubID string `msgpack:"club_id"`
	Date   string `msgpack:"date"` // YYYY-MM-DD
}
