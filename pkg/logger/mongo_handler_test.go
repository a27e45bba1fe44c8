package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Connect performs no I/O in the v1 driver, so a handler can be built
// without a reachable server as long as nothing is enqueued.
func newIdleMongoHandler(t *testing.T) *MongoHandler {
	t.Helper()

	client, err := mongo.Connect(context.Background(),
		options.Client().ApplyURI("mongodb://127.0.0.1:27017"))
	require.NoError(t, err)

	return &MongoHandler{
		client: client,
		queue:  make(chan LogDocument, 1),
		done:   make(chan struct{}),
	}
}

func TestMongoHandlerCloseIdempotent(t *testing.T) {
	h := newIdleMongoHandler(t)

	h.Close()
	h.Close() // second call must not panic
}
