package auth

import "testing"

func TestSession_IsAdmin(t *testing.T) {
	if !(Session{Role: RoleAdmin}).IsAdmin() {
		t.Fatalf("expected admin")
	}
	if (Session{Role: RoleUser}).IsAdmin() {
		t.Fatalf("did not expect admin")
	}
	if (Session{}).IsAdmin() {
		t.Fatalf("empty session must not be admin")
	}
}

func TestNormalizeRegistrationRole(t *testing.T) {
	cases := map[string]string{
		"admin":  "ADMIN",
		" user ": "USER",
		"ADMIN":  "ADMIN",
		"":       "",
	}
	for in, want := range cases {
		if got := NormalizeRegistrationRole(in); got != want {
			t.Fatalf("NormalizeRegistrationRole(%q) = %q, want %q", in, got, want)
		}
	}
}
