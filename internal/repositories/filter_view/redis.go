package filterview

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-spellbook/internal/errors"
	"github.com/KirkDiggler/rpg-spellbook/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-spellbook/internal/redis"
)

const (
	// Key pattern: filter_view:{id}
	viewKeyPrefix = "filter_view:"
	indexKey      = "filter_view:index"

	errViewNil   = "view cannot be nil"
	errIDEmpty   = "view ID cannot be empty"
	errNameEmpty = "view name cannot be empty"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock

	// TTL expires views; zero keeps them forever
	TTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.TTL < 0 {
		vb.Field("TTL", "must not be negative")
	}
	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	ttl    time.Duration
}

// NewRedisRepository creates a new Redis repository for saved views
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
		ttl:    cfg.TTL,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// Create stores a new view and records it in the index
func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.View == nil {
		return nil, errors.InvalidArgument(errViewNil)
	}
	if input.View.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}
	if input.View.Name == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}

	view := *input.View
	if view.CreatedAt.IsZero() {
		view.CreatedAt = r.clock.Now()
	}

	viewJSON, err := json.Marshal(&view)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal view")
	}

	key := r.buildKey(view.ID)
	created, err := r.client.SetNX(ctx, key, viewJSON, r.ttl).Result()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to store view in Redis")
	}
	if !created {
		return nil, errors.AlreadyExists("view already exists").WithMeta("view_id", view.ID)
	}

	if err := r.client.SAdd(ctx, indexKey, view.ID).Err(); err != nil {
		// leave no unindexed view behind
		_ = r.client.Del(ctx, key)
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to index view")
	}

	return &CreateOutput{View: &view}, nil
}

// Get loads a view by ID
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	viewJSON, err := r.client.Get(ctx, r.buildKey(input.ID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("view %s not found", input.ID)
		}
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to get view from Redis")
	}

	view, err := decodeView(viewJSON)
	if err != nil {
		return nil, err
	}

	return &GetOutput{View: view}, nil
}

// List returns every view in the index. Index entries whose view expired are
// pruned as they are found.
func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read view index")
	}
	if len(ids) == 0 {
		return &ListOutput{Views: []*View{}}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = r.buildKey(id)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to load views")
	}

	views := make([]*View, 0, len(values))
	var stale []any
	for i, value := range values {
		raw, ok := value.(string)
		if !ok {
			stale = append(stale, ids[i])
			continue
		}

		view, err := decodeView(raw)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}

	if len(stale) > 0 {
		_ = r.client.SRem(ctx, indexKey, stale...)
	}

	sort.Slice(views, func(i, j int) bool {
		if !views[i].CreatedAt.Equal(views[j].CreatedAt) {
			return views[i].CreatedAt.Before(views[j].CreatedAt)
		}
		return views[i].ID < views[j].ID
	})

	return &ListOutput{Views: views}, nil
}

// Delete removes a view and its index entry
func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	deleted, err := r.client.Del(ctx, r.buildKey(input.ID)).Result()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to delete view from Redis")
	}

	if err := r.client.SRem(ctx, indexKey, input.ID).Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to update view index")
	}

	if deleted == 0 {
		return nil, errors.NotFoundf("view %s not found", input.ID)
	}

	return &DeleteOutput{}, nil
}

func decodeView(raw string) (*View, error) {
	var view View
	if err := json.Unmarshal([]byte(raw), &view); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal view")
	}
	return &view, nil
}

// buildKey creates the Redis key for a view
func (r *redisRepository) buildKey(id string) string {
	return viewKeyPrefix + id
}
