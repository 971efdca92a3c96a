package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"desi-beats/config"
	"desi-beats/stats-svc/internal/service"
	"desi-beats/stats-svc/internal/storage"
)

const consumerGroup = "stats-svc-consumer"

func main() {
	cfg := config.Load()
	if cfg.KafkaBroker == "" || cfg.RedisHost == "" {
		log.Fatal("[stats-svc] KAFKA_BROKER and REDIS_HOST must be set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	reader := config.NewKafkaReader(cfg.OrdersTopic, consumerGroup)
	defer reader.Close()

	consumer := service.NewConsumer(reader, storage.NewRedisStatsStore(rdb))
	consumer.Start(ctx)
	log.Println("[stats-svc] exited properly")
}
