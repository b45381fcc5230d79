package test_utils

import (
	"context"

	"github.com/tripforge/tripforge/pkg/user"
)

const TestUserId = "test_user"

// UserContext returns a context carrying the standard test user.
func UserContext() context.Context {
	return user.WithUser(context.Background(), TestUserId)
}
