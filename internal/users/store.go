// Package users implements the user-record exercise: user hashes tracked
// in a membership set, plus database-namespace markers.
package users

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const allUsersKey = "users:all"

// User is a single user record stored as a Redis hash.
type User struct {
	Email     string
	Name      string
	Role      string
	CreatedAt string
	Status    string
}

// DemoUsers are the records created by the scripted demo.
var DemoUsers = []User{
	{Email: "john.doe@example.com", Name: "John Doe", Role: "db_viewer"},
	{Email: "mike.smith@example.com", Name: "Mike Smith", Role: "db_member"},
	{Email: "cary.johnson@example.com", Name: "Cary Johnson", Role: "admin"},
}

// Store persists user records and namespace markers in Redis.
type Store struct {
	rdb *redis.Client
}

// NewStore creates a Store over the given client.
func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

// CreateNamespace writes a metadata marker hash for a database namespace.
// Redis has no database entity of its own, so prefixed keys stand in.
func (s *Store) CreateNamespace(ctx context.Context, namespace string) error {
	err := s.rdb.HSet(ctx, namespaceKey(namespace), map[string]interface{}{
		"name":       namespace,
		"created_at": time.Now().Unix(),
		"type":       "redis",
		"status":     "active",
	}).Err()
	if err != nil {
		return fmt.Errorf("create namespace %q: %w", namespace, err)
	}
	return nil
}

// DeleteNamespace removes a namespace marker and returns the number of
// keys deleted (0 when the namespace never existed).
func (s *Store) DeleteNamespace(ctx context.Context, namespace string) (int64, error) {
	deleted, err := s.rdb.Del(ctx, namespaceKey(namespace)).Result()
	if err != nil {
		return 0, fmt.Errorf("delete namespace %q: %w", namespace, err)
	}
	return deleted, nil
}

// Create stores a user hash and adds the email to the membership set.
func (s *Store) Create(ctx context.Context, u User) error {
	if u.Email == "" {
		return fmt.Errorf("create user: email required")
	}
	status := u.Status
	if status == "" {
		status = "active"
	}

	pipe := s.rdb.Pipeline()
	pipe.HSet(ctx, userKey(u.Email), map[string]interface{}{
		"email":      u.Email,
		"name":       u.Name,
		"role":       u.Role,
		"created_at": time.Now().Unix(),
		"status":     status,
	})
	pipe.SAdd(ctx, allUsersKey, u.Email)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("create user %q: %w", u.Email, err)
	}
	return nil
}

// List fetches every user tracked in the membership set. Users whose hash
// has disappeared are skipped.
func (s *Store) List(ctx context.Context) ([]User, error) {
	emails, err := s.rdb.SMembers(ctx, allUsersKey).Result()
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	var users []User
	for _, email := range emails {
		data, err := s.rdb.HGetAll(ctx, userKey(email)).Result()
		if err != nil {
			return nil, fmt.Errorf("fetch user %q: %w", email, err)
		}
		if len(data) == 0 {
			continue
		}
		users = append(users, userFromHash(data))
	}
	return users, nil
}

// Cleanup removes the demo users and, when the membership set ends up
// empty, the set itself.
func (s *Store) Cleanup(ctx context.Context) error {
	for _, u := range DemoUsers {
		pipe := s.rdb.Pipeline()
		pipe.Del(ctx, userKey(u.Email))
		pipe.SRem(ctx, allUsersKey, u.Email)
		if _, err := pipe.Exec(ctx); err != nil {
			return fmt.Errorf("cleanup user %q: %w", u.Email, err)
		}
	}

	remaining, err := s.rdb.SCard(ctx, allUsersKey).Result()
	if err != nil {
		return fmt.Errorf("cleanup: %w", err)
	}
	if remaining == 0 {
		if err := s.rdb.Del(ctx, allUsersKey).Err(); err != nil {
			return fmt.Errorf("cleanup: %w", err)
		}
	}
	return nil
}

func userKey(email string) string {
	return "user:" + email
}

func namespaceKey(namespace string) string {
	return "db:metadata:" + namespace
}

func userFromHash(data map[string]string) User {
	return User{
		Email:     data["email"],
		Name:      data["name"],
		Role:      data["role"],
		CreatedAt: data["created_at"],
		Status:    data["status"],
	}
}
