package jobs

import (
	"log"

	"github.com/hibiken/asynq"
)

// StartWorker runs the asynq worker processing background tasks. Blocks
// until the server stops; run in a goroutine next to the HTTP server.
func StartWorker(redisURI string) error {
	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: redisURI},
		asynq.Config{
			Concurrency: 5,
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeResponseReceived, HandleResponseReceivedTask)

	log.Println("🚀 Asynq worker started")
	return srv.Run(mux)
}
