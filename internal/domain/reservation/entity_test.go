//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"posimarket-core/internal/domain/reservation"
	"posimarket-core/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ReservationBuilder)
	errIs  error
}

func TestNewReservation(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, b.ProductID, actual.ProductID())
		assert.Equal(t, reservation.StatusActive, actual.Status())
		assert.Equal(t, b.Now, actual.CreatedAt())
		assert.Equal(t, b.Now.Add(15*time.Minute), actual.ExpiresAt())
	})

	t.Run("validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "zero quantity",
				mutate: func(b *builder.ReservationBuilder) { b.Quantity = 0 },
				errIs:  reservation.ErrInvalidQuantity,
			},
			{
				name:   "negative quantity",
				mutate: func(b *builder.ReservationBuilder) { b.Quantity = -3 },
				errIs:  reservation.ErrInvalidQuantity,
			},
			{
				name:   "minimum valid quantity",
				mutate: func(b *builder.ReservationBuilder) { b.Quantity = 1 },
			},
			{
				name:   "zero ttl",
				mutate: func(b *builder.ReservationBuilder) { b.TTL = 0 },
				errIs:  reservation.ErrInvalidTTL,
			},
			{
				name:   "negative ttl",
				mutate: func(b *builder.ReservationBuilder) { b.TTL = -time.Minute },
				errIs:  reservation.ErrInvalidTTL,
			},
			{
				name:   "empty holder",
				mutate: func(b *builder.ReservationBuilder) { b.HolderID = "" },
				errIs:  reservation.ErrEmptyHolder,
			},
		})
	})

	t.Run("UUID uniqueness", func(t *testing.T) {
		r1, err1 := builder.NewReservationBuilder().BuildDomain()
		r2, err2 := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err1)
		require.NoError(t, err2)

		assert.NotEqual(t, r1.ID(), r2.ID())
	})
}

func TestReservation_Consume(t *testing.T) {
	b := builder.NewReservationBuilder()

	t.Run("active within ttl", func(t *testing.T) {
		r, err := b.BuildDomain()
		require.NoError(t, err)

		require.NoError(t, r.Consume(b.Now.Add(5*time.Minute)))
		assert.Equal(t, reservation.StatusConsumed, r.Status())
	})

	t.Run("exactly at deadline is expired", func(t *testing.T) {
		r, err := b.BuildDomain()
		require.NoError(t, err)

		err = r.Consume(b.Now.Add(b.TTL))
		assert.ErrorIs(t, err, reservation.ErrExpired)
		assert.Equal(t, reservation.StatusActive, r.Status())
	})

	t.Run("past deadline before sweep runs", func(t *testing.T) {
		r, err := b.BuildDomain()
		require.NoError(t, err)

		err = r.Consume(b.Now.Add(b.TTL + time.Second))
		assert.ErrorIs(t, err, reservation.ErrExpired)
	})

	t.Run("already consumed", func(t *testing.T) {
		r, err := b.BuildDomain()
		require.NoError(t, err)
		require.NoError(t, r.Consume(b.Now))

		err = r.Consume(b.Now)
		assert.ErrorIs(t, err, reservation.ErrAlreadyTerminal)
	})

	t.Run("released", func(t *testing.T) {
		r, err := b.BuildDomain()
		require.NoError(t, err)
		require.NoError(t, r.Release())

		err = r.Consume(b.Now)
		assert.ErrorIs(t, err, reservation.ErrAlreadyTerminal)
	})
}

func TestReservation_Release(t *testing.T) {
	b := builder.NewReservationBuilder()

	t.Run("active", func(t *testing.T) {
		r, err := b.BuildDomain()
		require.NoError(t, err)

		require.NoError(t, r.Release())
		assert.Equal(t, reservation.StatusReleased, r.Status())
	})

	t.Run("release is not idempotent", func(t *testing.T) {
		r, err := b.BuildDomain()
		require.NoError(t, err)
		require.NoError(t, r.Release())

		assert.ErrorIs(t, r.Release(), reservation.ErrAlreadyTerminal)
	})
}

func TestReservation_Expire(t *testing.T) {
	b := builder.NewReservationBuilder()

	t.Run("active past deadline", func(t *testing.T) {
		r, err := b.BuildDomain()
		require.NoError(t, err)

		require.NoError(t, r.Expire(b.Now.Add(b.TTL)))
		assert.Equal(t, reservation.StatusExpired, r.Status())
	})

	t.Run("active before deadline", func(t *testing.T) {
		r, err := b.BuildDomain()
		require.NoError(t, err)

		assert.ErrorIs(t, r.Expire(b.Now.Add(time.Minute)), reservation.ErrAlreadyTerminal)
		assert.Equal(t, reservation.StatusActive, r.Status())
	})

	t.Run("consumed", func(t *testing.T) {
		r, err := b.BuildDomain()
		require.NoError(t, err)
		require.NoError(t, r.Consume(b.Now))

		assert.ErrorIs(t, r.Expire(b.Now.Add(b.TTL)), reservation.ErrAlreadyTerminal)
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewReservationBuilder().With(c.mutate).BuildDomain()
			if c.errIs != nil {
				assert.ErrorIs(t, err, c.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, actual)
		})
	}
}
