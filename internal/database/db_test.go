package database

import (
	"testing"

	"github.com/EhtashamulIslam/FitnessZone/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestDSN(t *testing.T) {
	dsn := DSN(config.Database{
		Host: "db", Port: "5432", User: "fitzone", Password: "pw", DBName: "pricing", SSLMode: "disable",
	})
	assert.Equal(t, "host=db port=5432 user=fitzone password=pw dbname=pricing sslmode=disable", dsn)
}
