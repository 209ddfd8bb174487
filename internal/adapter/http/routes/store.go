package routes

import (
	"context"
	"fmt"
	"log"

	"counter_billing/internal/adapter/persistence/kvstore"
	"counter_billing/internal/config"
	"counter_billing/internal/infrastructure/database"
	"counter_billing/internal/usecase/interfaces"
)

type storeAPI = interfaces.IKeyValueStore

// openStore connects the configured backend. The returned func releases the
// connection and is safe to call on every path.
func openStore(ctx context.Context, cfg *config.Config) (storeAPI, func(), error) {
	noop := func() {}

	switch cfg.Store.Backend {
	case config.BackendMemory:
		log.Printf("[store] using in-memory store, data is lost on restart")
		return kvstore.NewMemoryKeyValueStore(), noop, nil

	case config.BackendDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS)
		if err != nil {
			return nil, noop, err
		}
		log.Printf("[store] using dynamodb table=%s", cfg.Store.KVTable)
		return kvstore.NewDynamoKeyValueStore(ddb, cfg.Store.KVTable), noop, nil

	case config.BackendRedis:
		rdb, err := database.ConnectRedis(ctx, cfg.RedisURL)
		if err != nil {
			return nil, noop, err
		}
		log.Printf("[store] using redis")
		return kvstore.NewRedisKeyValueStore(rdb), func() { _ = rdb.Close() }, nil

	case config.BackendMongoDB:
		client, err := database.ConnectMongo(ctx, cfg.MongoURI)
		if err != nil {
			return nil, noop, err
		}
		log.Printf("[store] using mongodb database=%s", cfg.MongoDatabase)
		store := kvstore.NewMongoKeyValueStore(client.Database(cfg.MongoDatabase), kvstore.DefaultMongoCollection)
		return store, func() { _ = client.Disconnect(context.Background()) }, nil

	case config.BackendPostgres:
		pool, err := database.ConnectPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, noop, err
		}
		store := kvstore.NewPostgresKeyValueStore(pool, cfg.Store.KVTable)
		if err := store.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, noop, err
		}
		log.Printf("[store] using postgres table=%s", cfg.Store.KVTable)
		return store, pool.Close, nil
	}
	return nil, noop, fmt.Errorf("unsupported store backend %q", cfg.Store.Backend)
}
