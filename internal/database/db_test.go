package database

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Leplia/Diller-shop/internal/config"
)

func TestDSN(t *testing.T) {
	cfg := config.Config{
		DBUser: "shop",
		DBPass: "secret",
		DBHost: "db.internal",
		DBPort: "3306",
		DBName: "showroom",
	}

	got := dsn(cfg)

	assert.Equal(t,
		"shop:secret@tcp(db.internal:3306)/showroom?charset=utf8mb4&parseTime=true&loc=UTC&clientFoundRows=true",
		got)
}

func TestDSNWithoutPassword(t *testing.T) {
	cfg := config.Config{
		DBUser: "shop",
		DBHost: "localhost",
		DBPort: "3306",
		DBName: "showroom",
	}

	got := dsn(cfg)

	assert.Contains(t, got, "shop@tcp(localhost:3306)/showroom")
	// Matched-row reporting must stay on: the repositories treat zero
	// affected rows as "no such row", which is only true when no-op
	// updates of existing rows still count.
	assert.Contains(t, got, "clientFoundRows=true")
}
