package handlers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/raiderlog/raiderlog/backend/handlers"
	"github.com/raiderlog/raiderlog/backend/middleware"
)

func adminToken(t *testing.T, userID string) string {
	t.Helper()
	claims := middleware.Claims{
		Role: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testAuth.Secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func updateQuest(t *testing.T, env *testEnv, id, bearer string) int {
	t.Helper()
	req := httptest.NewRequest(http.MethodPut, "/quests/"+id,
		bytes.NewBufferString(`{"name":"Renamed"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+bearer)

	resp, err := env.app.Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()
	return resp.StatusCode
}

func newQuestTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := newTestEnv(t)
	env.app.Put("/quests/:questID",
		middleware.AuthRequired(testAuth), middleware.AdminRequired(),
		handlers.UpdateQuest(env.webApp))
	return env
}

func TestUpdateQuest_UnknownIDIsNotFound(t *testing.T) {
	env := newQuestTestEnv(t)

	status := updateQuest(t, env, "9999", adminToken(t, "admin-1"))
	if status != http.StatusNotFound {
		t.Errorf("status = %d, want 404", status)
	}
}

func TestUpdateQuest_StoreFailureIsServerError(t *testing.T) {
	env := newQuestTestEnv(t)
	env.db.Close()

	status := updateQuest(t, env, "9999", adminToken(t, "admin-1"))
	if status != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", status)
	}
}
