// Command issue-session mints a session token for an existing user. It is
// meant for local testing against the API.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"marketplace-service/internal/config"
	mmysql "marketplace-service/internal/infra/mysql"
	mysqlrepo "marketplace-service/internal/repository/mysql"
	"marketplace-service/internal/session"

	"github.com/redis/go-redis/v9"
)

func main() {
	userID := flag.Uint64("user", 0, "id of the user to issue a session for")
	flag.Parse()

	if *userID == 0 {
		log.Fatal("-user is required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := mmysql.Open(cfg)
	if err != nil {
		log.Fatalf("db: connect: %v", err)
	}
	user, err := mysqlrepo.NewUserRepository(db).FindByID(ctx, *userID)
	if err != nil {
		log.Fatalf("load user: %v", err)
	}
	if user == nil {
		log.Fatalf("user %d not found", *userID)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer rdb.Close()

	token, err := session.NewStore(rdb, cfg.SessionTTL).Create(ctx, user.ID)
	if err != nil {
		log.Fatalf("create session: %v", err)
	}

	fmt.Printf("user=%d role=%s status=%s\n", user.ID, user.Role, user.Status)
	fmt.Printf("Authorization: Bearer %s\n", token)
}
