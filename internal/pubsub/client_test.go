package pubsub

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func TestDecode_GameMessage(t *testing.T) {
	data, err := msgpack.Marshal(GameMessage{GameID: "g1", ClubID: "club1", Date: "2024-03-02"})
	require.NoError(t, err)

	var msg GameMessage
	require.NoError(t, (&client{}).ProcessMessage(data, &msg))
	assert.Equal(t, "g1", msg.GameID)
	assert.Equal(t, "2024-03-02", msg.Date)

	assert.Error(t, Decode([]byte{0xc1}, &msg), "0xc1 is never valid msgpack")
}
