package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedTestDataIsIdempotent(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	seedTestData(ctx)
	seedTestData(ctx)

	all, err := books.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	book, err := books.Get(ctx, testBookID)
	require.NoError(t, err)
	assert.Equal(t, 3, book.AvailableCopies)

	member, err := members.Get(ctx, testMemberID)
	require.NoError(t, err)
	assert.Equal(t, "reader@library.example", member.Email)
}
