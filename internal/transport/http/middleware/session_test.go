package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func newTokenRouter(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(SessionToken("sid", secret, time.Hour))
	router.GET("/whoami", func(c *gin.Context) {
		c.String(http.StatusOK, SessionIDFromContext(c))
	})
	return router
}

func TestSessionTokenIssuesAndReusesID(t *testing.T) {
	router := newTokenRouter("secret")

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/whoami", nil))
	firstID := first.Body.String()
	if firstID == "" {
		t.Fatal("no session id assigned")
	}
	cookies := first.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("no cookie issued")
	}

	second := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	router.ServeHTTP(second, req)
	if second.Body.String() != firstID {
		t.Errorf("session id changed across requests: %q vs %q", firstID, second.Body.String())
	}
}

func TestSessionTokenRejectsTamperedCookie(t *testing.T) {
	router := newTokenRouter("secret")

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/whoami", nil))
	firstID := first.Body.String()
	cookies := first.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("no cookie issued")
	}

	// a cookie signed with a different secret gets a fresh id
	otherRouter := newTokenRouter("other-secret")
	second := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	otherRouter.ServeHTTP(second, req)
	if second.Body.String() == firstID {
		t.Error("tampered cookie should not keep its session id")
	}
}
