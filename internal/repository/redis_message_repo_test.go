package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/redis/go-redis/v9"

	"personal-site/internal/domain"
)

type mockRedisMessageClient struct {
	hash       map[string]map[string]string
	lists      map[string][]string
	lastScript string
	evalErr    error
	rangeErr   error
	pingErr    error
}

func newMockRedisMessageClient() *mockRedisMessageClient {
	return &mockRedisMessageClient{
		hash:  make(map[string]map[string]string),
		lists: make(map[string][]string),
	}
}

func (m *mockRedisMessageClient) Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd {
	m.lastScript = script
	cmd := redis.NewCmd(ctx)
	if m.evalErr != nil {
		cmd.SetErr(m.evalErr)
		return cmd
	}
	hashKey, orderKey := keys[0], keys[1]
	id, payload := args[0].(string), args[1].(string)
	if m.hash[hashKey] == nil {
		m.hash[hashKey] = make(map[string]string)
	}
	m.hash[hashKey][id] = payload
	m.lists[orderKey] = append(m.lists[orderKey], id)
	cmd.SetVal(int64(len(m.lists[orderKey])))
	return cmd
}

func (m *mockRedisMessageClient) HGet(ctx context.Context, key, field string) *redis.StringCmd {
	cmd := redis.NewStringCmd(ctx)
	v, ok := m.hash[key][field]
	if !ok {
		cmd.SetErr(redis.Nil)
		return cmd
	}
	cmd.SetVal(v)
	return cmd
}

func (m *mockRedisMessageClient) HMGet(ctx context.Context, key string, fields ...string) *redis.SliceCmd {
	cmd := redis.NewSliceCmd(ctx)
	out := make([]interface{}, len(fields))
	for i, f := range fields {
		if v, ok := m.hash[key][f]; ok {
			out[i] = v
		}
	}
	cmd.SetVal(out)
	return cmd
}

func (m *mockRedisMessageClient) LRange(ctx context.Context, key string, _, _ int64) *redis.StringSliceCmd {
	cmd := redis.NewStringSliceCmd(ctx)
	if m.rangeErr != nil {
		cmd.SetErr(m.rangeErr)
		return cmd
	}
	cmd.SetVal(append([]string(nil), m.lists[key]...))
	return cmd
}

func (m *mockRedisMessageClient) Ping(ctx context.Context) *redis.StatusCmd {
	cmd := redis.NewStatusCmd(ctx)
	if m.pingErr != nil {
		cmd.SetErr(m.pingErr)
		return cmd
	}
	cmd.SetVal("PONG")
	return cmd
}

func TestRedisMessageRepository_CreateListFind(t *testing.T) {
	client := newMockRedisMessageClient()
	repo := newRedisMessageRepository(client, "site:")
	ctx := context.Background()

	saved, err := repo.Create(ctx, domain.Message{Name: "Alice", Message: "hi"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !ValidID(saved.ID) || saved.CreatedAt.IsZero() {
		t.Fatalf("expected stamped message, got %+v", saved)
	}
	if _, ok := client.hash["site:messages"][saved.ID]; !ok {
		t.Fatalf("expected record under prefixed hash key")
	}
	if got := client.lists["site:messages:order"]; len(got) != 1 || got[0] != saved.ID {
		t.Fatalf("expected id in order list, got %v", got)
	}

	other, _ := repo.Create(ctx, domain.Message{Name: "Bob"})

	all, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(all) != 2 || all[0].ID != saved.ID || all[1].ID != other.ID {
		t.Fatalf("expected insertion order, got %+v", all)
	}
	if !all[0].CreatedAt.Equal(saved.CreatedAt) || all[0].Name != "Alice" || all[0].Message != "hi" {
		t.Fatalf("expected round-tripped record, got %+v", all[0])
	}

	found, err := repo.FindByID(ctx, saved.ID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(found) != 1 || found[0].ID != saved.ID {
		t.Fatalf("expected saved record, got %+v", found)
	}
}

func TestRedisMessageRepository_EmptyAndMissing(t *testing.T) {
	repo := newRedisMessageRepository(newMockRedisMessageClient(), "")
	ctx := context.Background()

	all, err := repo.List(ctx)
	if err != nil || all == nil || len(all) != 0 {
		t.Fatalf("expected empty list, got %+v err=%v", all, err)
	}

	found, err := repo.FindByID(ctx, NewID())
	if err != nil || found == nil || len(found) != 0 {
		t.Fatalf("expected empty result, got %+v err=%v", found, err)
	}

	if _, err := repo.FindByID(ctx, "xyz"); !errors.Is(err, ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
}

func TestRedisMessageRepository_SkipsDanglingIDs(t *testing.T) {
	client := newMockRedisMessageClient()
	repo := newRedisMessageRepository(client, "")
	ctx := context.Background()

	saved, _ := repo.Create(ctx, domain.Message{Name: "a"})
	client.lists["messages:order"] = append(client.lists["messages:order"], NewID())

	all, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(all) != 1 || all[0].ID != saved.ID {
		t.Fatalf("expected dangling id skipped, got %+v", all)
	}
}

func TestRedisMessageRepository_CorruptRecord(t *testing.T) {
	client := newMockRedisMessageClient()
	repo := newRedisMessageRepository(client, "")
	id := NewID()
	client.hash["messages"] = map[string]string{id: "{not json"}

	if _, err := repo.FindByID(context.Background(), id); !errors.Is(err, ErrCorruptMessageData) {
		t.Fatalf("expected ErrCorruptMessageData, got %v", err)
	}
}

func TestRedisMessageRepository_Errors(t *testing.T) {
	client := newMockRedisMessageClient()
	client.evalErr = errors.New("write failed")
	client.rangeErr = errors.New("read failed")
	client.pingErr = errors.New("down")
	repo := newRedisMessageRepository(client, "")
	ctx := context.Background()

	if _, err := repo.Create(ctx, domain.Message{}); err == nil {
		t.Fatalf("expected create error")
	}
	if len(client.lists["messages:order"]) != 0 || len(client.hash["messages"]) != 0 {
		t.Fatalf("expected nothing written after failed save")
	}
	if _, err := repo.List(ctx); err == nil {
		t.Fatalf("expected list error")
	}
	if err := repo.Ping(ctx); err == nil {
		t.Fatalf("expected ping error")
	}
}

func TestRedisMessageRepository_CreateWritesBothKeysInOneScript(t *testing.T) {
	client := newMockRedisMessageClient()
	repo := newRedisMessageRepository(client, "site:")

	saved, err := repo.Create(context.Background(), domain.Message{Name: "Alice"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if client.lastScript != redisCreateScript {
		t.Fatalf("expected create to run the atomic script")
	}
	if _, ok := client.hash["site:messages"][saved.ID]; !ok {
		t.Fatalf("expected record in hash")
	}
	if got := client.lists["site:messages:order"]; len(got) != 1 || got[0] != saved.ID {
		t.Fatalf("expected id in order list, got %v", got)
	}
}

func TestRedisMessageRepository_FailedCreateLeavesNoPartialRecord(t *testing.T) {
	client := newMockRedisMessageClient()
	client.evalErr = errors.New("WRONGTYPE message keys hold the wrong kind of value")
	repo := newRedisMessageRepository(client, "")
	ctx := context.Background()

	if _, err := repo.Create(ctx, domain.Message{Name: "Alice"}); err == nil {
		t.Fatalf("expected create error")
	}
	client.evalErr = nil

	all, err := repo.List(ctx)
	if err != nil || len(all) != 0 {
		t.Fatalf("expected empty list, got %+v err=%v", all, err)
	}
	if len(client.hash["messages"]) != 0 {
		t.Fatalf("expected no record findable by id, got %v", client.hash["messages"])
	}
}
