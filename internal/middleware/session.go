package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/nycdash/taxi-dashboard-go/internal/session"
)

const sessionContextKey = "session"

// SessionTokenHeader carries the signed session token both ways: the
// client echoes back the token the server issued.
const SessionTokenHeader = "X-Session-Token"

// Session attaches a session to every request. A request presenting a
// valid token keeps its session; anything else gets a fresh session
// and a newly issued token in the response header.
func Session(store *session.Store, tokens *session.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var sid string
		if token := c.GetHeader(SessionTokenHeader); token != "" {
			if id, err := tokens.Verify(token); err == nil {
				sid = id
			}
		}

		if sid == "" {
			sid = session.NewID()
			if token, err := tokens.Issue(sid); err == nil {
				c.Header(SessionTokenHeader, token)
			}
		}

		c.Set(sessionContextKey, store.GetOrCreate(sid))
		c.Next()
	}
}

// CurrentSession returns the session attached to the request, or nil
// when the session middleware did not run.
func CurrentSession(c *gin.Context) *session.Session {
	v, ok := c.Get(sessionContextKey)
	if !ok {
		return nil
	}
	sess, ok := v.(*session.Session)
	if !ok {
		return nil
	}
	return sess
}
