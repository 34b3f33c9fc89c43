package repository

import (
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
)

func TestNewTourRepository(t *testing.T) {
	pool := &pgxpool.Pool{}
	repo := NewTourRepository(pool)
	assert.NotNil(t, repo)
}

func TestNewDestinationRepository(t *testing.T) {
	pool := &pgxpool.Pool{}
	repo := NewDestinationRepository(pool)
	assert.NotNil(t, repo)
}
