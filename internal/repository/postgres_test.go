package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStringifyRow(t *testing.T) {
	listed := time.Date(2024, 10, 22, 0, 0, 0, 0, time.UTC)

	got := StringifyRow([]interface{}{
		nil,
		[]byte("49.99"),
		"Blue Jeans",
		int64(12),
		float64(69.5),
		true,
		listed,
		int32(7),
	})

	assert.Equal(t, []string{
		"",
		"49.99",
		"Blue Jeans",
		"12",
		"69.5",
		"true",
		"2024-10-22T00:00:00Z",
		"7",
	}, got)
}

func TestPostgresRepository_Name(t *testing.T) {
	repo := NewPostgresRepositoryFromDB(nil, "products")
	assert.Equal(t, "postgres:products", repo.Name())
}
