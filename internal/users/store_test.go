package users

import "testing"

func TestKeys(t *testing.T) {
	if got := userKey("a@b.com"); got != "user:a@b.com" {
		t.Errorf("userKey = %q", got)
	}
	if got := namespaceKey("demo"); got != "db:metadata:demo" {
		t.Errorf("namespaceKey = %q", got)
	}
}

func TestUserFromHash(t *testing.T) {
	u := userFromHash(map[string]string{
		"email":      "a@b.com",
		"name":       "A B",
		"role":       "admin",
		"created_at": "1700000000",
		"status":     "active",
	})
	if u.Email != "a@b.com" || u.Name != "A B" || u.Role != "admin" {
		t.Errorf("unexpected user: %+v", u)
	}

	// Partial hashes fill what they have.
	p := userFromHash(map[string]string{"email": "x@y.com"})
	if p.Email != "x@y.com" || p.Name != "" {
		t.Errorf("unexpected partial user: %+v", p)
	}
}

func TestDemoUsers(t *testing.T) {
	if len(DemoUsers) != 3 {
		t.Fatalf("got %d demo users, want 3", len(DemoUsers))
	}
	seen := make(map[string]bool)
	for _, u := range DemoUsers {
		if u.Email == "" || u.Role == "" {
			t.Errorf("demo user missing fields: %+v", u)
		}
		if seen[u.Email] {
			t.Errorf("duplicate demo email %q", u.Email)
		}
		seen[u.Email] = true
	}
}
