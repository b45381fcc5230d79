package user

import (
	"context"
	"errors"

	log "github.com/sirupsen/logrus"
)

type contextKey string

const UserKey contextKey = "user"

// Anonymous is the uid used for planning sessions that never sent an
// X-User-Id header. Trip history requires a real uid.
const Anonymous = "anonymous"

var ErrNoUser = errors.New("user not found")

// CurrentId retrieves the current user's uid from the context. Returns ErrNoUser if not present.
func CurrentId(ctx context.Context) (string, error) {
	uid, ok := ctx.Value(UserKey).(string)
	if !ok || uid == "" {
		log.Trace("user not found in context")
		return "", ErrNoUser
	}
	return uid, nil
}

// CurrentIdOrAnonymous never fails; planning endpoints work without a login.
func CurrentIdOrAnonymous(ctx context.Context) string {
	uid, err := CurrentId(ctx)
	if err != nil {
		return Anonymous
	}
	return uid
}

func WithUser(ctx context.Context, uid string) context.Context {
	return context.WithValue(ctx, UserKey, uid)
}
