// Command growth applies the kv_entries schema to DATABASE_URL ahead of
// starting the api with STORE_BACKEND=postgres.
package main

import (
	"github.com/ghuser/growthtrack/pkg/config"
	"github.com/ghuser/growthtrack/pkg/kv"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	if err := kv.MigratePostgres(cfg.DatabaseURL); err != nil {
		panic(err)
	}
}
