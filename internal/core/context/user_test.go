package context

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRoundTrip(t *testing.T) {
	user := &UserContext{UserID: "owner-1", Email: "owner@example.com", SessionID: "sess-1"}
	ctx := WithUser(context.Background(), user)

	got := GetUser(ctx)
	require.NotNil(t, got)
	assert.Equal(t, user, got)
	assert.Equal(t, "owner-1", GetOwnerID(ctx))
}

func TestGetOwnerID_EmptyWithoutUser(t *testing.T) {
	assert.Nil(t, GetUser(context.Background()))
	assert.Empty(t, GetOwnerID(context.Background()))
}
