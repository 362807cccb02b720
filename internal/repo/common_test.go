package repo

import (
	"errors"
	"testing"
)

func TestPageOffset(t *testing.T) {
	cases := []struct {
		page, size, want int
	}{
		{1, 10, 0},
		{2, 10, 10},
		{3, 7, 14},
		{0, 10, 0},
		{1, 0, 0},
	}
	for _, tc := range cases {
		if got := pageOffset(tc.page, tc.size); got != tc.want {
			t.Errorf("pageOffset(%d, %d) = %d, want %d", tc.page, tc.size, got, tc.want)
		}
	}
}

func TestOrderClause_Whitelist(t *testing.T) {
	allowed := map[string]string{"username": "users.username", "createDate": "users.create_date"}

	if got := orderClause("username", true, allowed, "users.username"); got != "users.username ASC" {
		t.Fatalf("got %q", got)
	}
	if got := orderClause("createDate", false, allowed, "users.username"); got != "users.create_date DESC" {
		t.Fatalf("got %q", got)
	}
	// not in the whitelist → fallback column, never raw input
	if got := orderClause("password_hash; DROP TABLE users", true, allowed, "users.username"); got != "users.username ASC" {
		t.Fatalf("got %q", got)
	}
	if got := orderClause("", false, allowed, "users.username"); got != "users.username DESC" {
		t.Fatalf("got %q", got)
	}
}

func TestIsDupKey(t *testing.T) {
	dups := []error{
		errors.New("Error 1062 (23000): Duplicate entry 'bob' for key 'users.username'"),
		errors.New(`ERROR: duplicate key value violates unique constraint "users_username_key" (SQLSTATE 23505)`),
		errors.New("UNIQUE constraint failed: users.username"),
	}
	for _, err := range dups {
		if !isDupKey(err) {
			t.Errorf("isDupKey(%v) = false, want true", err)
		}
	}
	if isDupKey(nil) {
		t.Errorf("isDupKey(nil) = true")
	}
	if isDupKey(errors.New("connection refused")) {
		t.Errorf("connection error classified as duplicate")
	}
}
