package seed

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"bookify/internal/domain/room"
	"bookify/internal/infra"
	sqlc "bookify/internal/infra/sqlc/generated"
	"bookify/internal/pkg/errs"
	"bookify/internal/usecase/shared"

	"gopkg.in/yaml.v3"
)

// Catalogue is the reference data file layout. Room types are matched by name
// and rooms by number, so re-running the seeder updates rows in place.
type Catalogue struct {
	RoomTypes []RoomTypeSpec `yaml:"room_types"`
	Rooms     []RoomSpec     `yaml:"rooms"`
}

type RoomTypeSpec struct {
	Name                   string `yaml:"name"`
	Description            string `yaml:"description"`
	Capacity               int32  `yaml:"capacity"`
	BasePricePerNightCents int64  `yaml:"base_price_per_night_cents"`
}

type RoomSpec struct {
	Number    string `yaml:"number"`
	RoomType  string `yaml:"room_type"`
	Floor     int32  `yaml:"floor"`
	Available *bool  `yaml:"available"`
}

func (r RoomSpec) IsAvailable() bool {
	return r.Available == nil || *r.Available
}

type SeedQueries interface {
	UpsertRoomType(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertRoomTypeParams) (int64, error)
	UpsertRoom(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertRoomParams) (int64, error)
}

type Result struct {
	RoomTypes int
	Rooms     int
}

type Seeder struct {
	uow     shared.UnitOfWork
	queries SeedQueries
}

func NewSeeder(uow shared.UnitOfWork, queries SeedQueries) *Seeder {
	return &Seeder{uow: uow, queries: queries}
}

func LoadFile(path string) (*Catalogue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrapf(err, "read seed file %s", path)
	}
	return Parse(data)
}

func Parse(data []byte) (*Catalogue, error) {
	var c Catalogue
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, errs.Wrap(err, "parse seed file")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate runs the domain constructors over every entry and checks that each
// room references a room type declared in the same file.
func (c *Catalogue) Validate() error {
	types := make(map[string]struct{}, len(c.RoomTypes))
	for i, t := range c.RoomTypes {
		if _, err := room.NewRoomType(t.Name, t.Description, t.Capacity, t.BasePricePerNightCents); err != nil {
			return errs.Wrapf(err, "room_types[%d]", i)
		}
		if _, dup := types[t.Name]; dup {
			return errs.Newf("room_types[%d]: duplicate name %q", i, t.Name)
		}
		types[t.Name] = struct{}{}
	}

	numbers := make(map[string]struct{}, len(c.Rooms))
	for i, r := range c.Rooms {
		if _, ok := types[r.RoomType]; !ok {
			return errs.Newf("rooms[%d]: unknown room type %q", i, r.RoomType)
		}
		// room type id is resolved at upsert time
		if _, err := room.NewRoom(r.Number, 1, r.Floor, r.IsAvailable()); err != nil {
			return errs.Wrapf(err, "rooms[%d]", i)
		}
		if _, dup := numbers[r.Number]; dup {
			return errs.Newf("rooms[%d]: duplicate number %q", i, r.Number)
		}
		numbers[r.Number] = struct{}{}
	}
	return nil
}

// Run upserts the whole catalogue in one transaction.
func (s *Seeder) Run(ctx context.Context, c *Catalogue) (Result, error) {
	var res Result
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res = Result{}
		typeIDs := make(map[string]int64, len(c.RoomTypes))

		for _, t := range c.RoomTypes {
			id, err := s.queries.UpsertRoomType(ctx, tx.DB(), sqlc.UpsertRoomTypeParams{
				Name:              t.Name,
				Description:       t.Description,
				Capacity:          t.Capacity,
				BasePricePerNight: t.BasePricePerNightCents,
			})
			if err != nil {
				return infra.WrapRepoErr(fmt.Sprintf("failed to upsert room type %q", t.Name), err)
			}
			typeIDs[t.Name] = id
			res.RoomTypes++
		}

		for _, r := range c.Rooms {
			_, err := s.queries.UpsertRoom(ctx, tx.DB(), sqlc.UpsertRoomParams{
				Number:      r.Number,
				RoomTypeID:  typeIDs[r.RoomType],
				Floor:       r.Floor,
				IsAvailable: r.IsAvailable(),
			})
			if err != nil {
				return infra.WrapRepoErr(fmt.Sprintf("failed to upsert room %q", r.Number), err)
			}
			res.Rooms++
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	slog.Info("seed applied", "room_types", res.RoomTypes, "rooms", res.Rooms)
	return res, nil
}
