package cart

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"bookify/internal/domain/booking"
	domcart "bookify/internal/domain/cart"
	"bookify/internal/pkg/config"
	"bookify/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const dateLayout = "2006-01-02"

// record is the JSON shape stored under a cart key.
type record struct {
	RoomID   int64  `json:"roomId"`
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
}

type searchRecord struct {
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
}

// RedisStore keeps carts as JSON lists; every write refreshes the idle TTL.
type RedisStore struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB})
}

func NewRedisStore(client redis.Cmdable, cfg config.RedisConfig) *RedisStore {
	return &RedisStore{
		client: client,
		ttl:    cfg.CartTTL,
	}
}

func (s *RedisStore) Load(ctx context.Context, userID uuid.UUID) (*domcart.Cart, error) {
	data, err := s.client.Get(ctx, cartKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return &domcart.Cart{}, nil
		}
		return nil, errs.Wrap(err, "failed to load cart")
	}

	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, errs.Wrap(err, "failed to decode cart")
	}

	c := &domcart.Cart{Items: make([]domcart.Item, 0, len(records))}
	for _, r := range records {
		stay, err := parseStay(r.CheckIn, r.CheckOut)
		if err != nil {
			continue
		}
		item, err := domcart.NewItem(r.RoomID, stay)
		if err != nil {
			continue
		}
		c.Add(item)
	}
	return c, nil
}

func (s *RedisStore) Save(ctx context.Context, userID uuid.UUID, c *domcart.Cart) error {
	records := make([]record, 0, len(c.Items))
	for _, item := range c.Items {
		records = append(records, record{
			RoomID:   item.RoomID,
			CheckIn:  item.Stay.CheckIn().Format(dateLayout),
			CheckOut: item.Stay.CheckOut().Format(dateLayout),
		})
	}

	payload, err := json.Marshal(records)
	if err != nil {
		return errs.Wrap(err, "failed to encode cart")
	}
	if err := s.client.Set(ctx, cartKey(userID), payload, s.ttl).Err(); err != nil {
		return errs.Wrap(err, "failed to save cart")
	}
	return nil
}

func (s *RedisStore) Clear(ctx context.Context, userID uuid.UUID) error {
	if err := s.client.Del(ctx, cartKey(userID)).Err(); err != nil {
		return errs.Wrap(err, "failed to clear cart")
	}
	return nil
}

func (s *RedisStore) LastSearch(ctx context.Context, userID uuid.UUID) (*domcart.LastSearch, error) {
	data, err := s.client.Get(ctx, lastSearchKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, errs.Wrap(err, "failed to load last search")
	}

	var r searchRecord
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, errs.Wrap(err, "failed to decode last search")
	}
	stay, err := parseStay(r.CheckIn, r.CheckOut)
	if err != nil {
		return nil, nil
	}
	return &domcart.LastSearch{CheckIn: stay.CheckIn(), CheckOut: stay.CheckOut()}, nil
}

func (s *RedisStore) RememberSearch(ctx context.Context, userID uuid.UUID, search domcart.LastSearch) error {
	payload, err := json.Marshal(searchRecord{
		CheckIn:  search.CheckIn.Format(dateLayout),
		CheckOut: search.CheckOut.Format(dateLayout),
	})
	if err != nil {
		return errs.Wrap(err, "failed to encode last search")
	}
	if err := s.client.Set(ctx, lastSearchKey(userID), payload, s.ttl).Err(); err != nil {
		return errs.Wrap(err, "failed to remember search")
	}
	return nil
}

func parseStay(checkIn, checkOut string) (booking.Stay, error) {
	in, err := time.ParseInLocation(dateLayout, checkIn, time.UTC)
	if err != nil {
		return booking.Stay{}, err
	}
	out, err := time.ParseInLocation(dateLayout, checkOut, time.UTC)
	if err != nil {
		return booking.Stay{}, err
	}
	return booking.NewStay(in, out)
}

func cartKey(userID uuid.UUID) string {
	return "booking_cart:" + userID.String()
}

func lastSearchKey(userID uuid.UUID) string {
	return "booking_last_search:" + userID.String()
}
