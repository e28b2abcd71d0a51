// Seed creates a verified admin account for local development, bypassing the
// OTP flow. The IP-based role grant in the register endpoint is awkward to
// exercise locally, this gives an admin without it.
package main

import (
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/rsubandi/account-service/config"
	"github.com/rsubandi/account-service/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	username := "admin"
	email := "admin@localhost"
	password := "password123"

	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id string
	err = db.QueryRow(`
		INSERT INTO users (username, email, password_hash, email_verified, role)
		VALUES ($1, $2, $3, TRUE, 'admin')
		ON CONFLICT (email) DO UPDATE SET email_verified = TRUE, role = 'admin'
		RETURNING id
	`, username, email, hash).Scan(&id)
	if err != nil {
		// The upsert only resolves email conflicts; a stale account holding
		// the admin username under another email needs manual cleanup.
		if isUsernameTaken(err) {
			log.Fatalf("username %q is already taken by a different account; remove it or change the seed", username)
		}
		log.Fatalf("failed to seed admin: %v", err)
	}
	fmt.Printf("seeded admin: id=%s email=%s password=%s\n", id, email, password)
}

func isUsernameTaken(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "users_username_key"
}
