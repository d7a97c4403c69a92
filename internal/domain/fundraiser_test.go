package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestFundraiser(t *testing.T, goal int64) *Fundraiser {
	t.Helper()
	f, err := NewFundraiser("f1", "owner1", "Expand the bakery", "New oven", "Equipment purchase", goal, 30, time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("NewFundraiser: %v", err)
	}
	return f
}

func TestNewFundraiser(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		f, err := NewFundraiser("f1", "o1", "Title", "Desc", "Purpose", 10000, 30, now)
		assert.NoError(t, err)
		assert.Equal(t, FundraiserStatusActive, f.Status)
		assert.Equal(t, int64(0), f.CurrentAmount)
		assert.Equal(t, now.AddDate(0, 0, 30), f.EndDate)
	})

	t.Run("Goal Below Minimum", func(t *testing.T) {
		_, err := NewFundraiser("f1", "o1", "Title", "Desc", "Purpose", 999, 30, now)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("Duration Out Of Range", func(t *testing.T) {
		_, err := NewFundraiser("f1", "o1", "Title", "Desc", "Purpose", 10000, 6, now)
		assert.ErrorIs(t, err, ErrValidation)
		_, err = NewFundraiser("f1", "o1", "Title", "Desc", "Purpose", 10000, 91, now)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("Title Too Long", func(t *testing.T) {
		_, err := NewFundraiser("f1", "o1", strings.Repeat("x", 101), "Desc", "Purpose", 10000, 30, now)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("Missing Fields", func(t *testing.T) {
		_, err := NewFundraiser("f1", "o1", "", "Desc", "Purpose", 10000, 30, now)
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestFundraiser_ApplySupport(t *testing.T) {
	now := time.Date(2026, 8, 2, 12, 0, 0, 0, time.UTC)

	t.Run("Accumulates Then Completes On Goal", func(t *testing.T) {
		f := newTestFundraiser(t, 10000)

		reached, err := f.ApplySupport(&Contribution{ID: "c1", SupporterID: "s1", Amount: 6000, DonatedOn: now}, now)
		assert.NoError(t, err)
		assert.False(t, reached)
		assert.Equal(t, int64(6000), f.CurrentAmount)
		assert.Equal(t, FundraiserStatusActive, f.Status)

		reached, err = f.ApplySupport(&Contribution{ID: "c2", SupporterID: "s2", Amount: 4000, DonatedOn: now}, now)
		assert.NoError(t, err)
		assert.True(t, reached)
		assert.Equal(t, int64(10000), f.CurrentAmount)
		assert.Equal(t, FundraiserStatusCompleted, f.Status)
		assert.Len(t, f.Supporters, 2)
	})

	t.Run("Sum Invariant Holds", func(t *testing.T) {
		f := newTestFundraiser(t, 100000)
		for i, amt := range []int64{100, 250, 999, 1} {
			_, err := f.ApplySupport(&Contribution{ID: string(rune('a' + i)), SupporterID: "s1", Amount: amt, DonatedOn: now}, now)
			assert.NoError(t, err)
		}
		var sum int64
		for _, c := range f.Supporters {
			sum += c.Amount
		}
		assert.Equal(t, f.CurrentAmount, sum)
	})

	t.Run("Overshoot Completes", func(t *testing.T) {
		f := newTestFundraiser(t, 5000)
		reached, err := f.ApplySupport(&Contribution{ID: "c1", SupporterID: "s1", Amount: 6000, DonatedOn: now}, now)
		assert.NoError(t, err)
		assert.True(t, reached)
		assert.Equal(t, int64(6000), f.CurrentAmount)
	})

	t.Run("Non Positive Amount", func(t *testing.T) {
		f := newTestFundraiser(t, 5000)
		_, err := f.ApplySupport(&Contribution{ID: "c1", SupporterID: "s1", Amount: 0, DonatedOn: now}, now)
		assert.ErrorIs(t, err, ErrValidation)
		assert.Equal(t, int64(0), f.CurrentAmount)
		assert.Empty(t, f.Supporters)
	})

	t.Run("Not Active", func(t *testing.T) {
		f := newTestFundraiser(t, 5000)
		assert.NoError(t, f.Cancel(now))
		_, err := f.ApplySupport(&Contribution{ID: "c1", SupporterID: "s1", Amount: 100, DonatedOn: now}, now)
		assert.ErrorIs(t, err, ErrInvalidState)
	})

	t.Run("Past End Date Flips To Completed", func(t *testing.T) {
		f := newTestFundraiser(t, 5000)
		late := f.EndDate.Add(time.Second)
		_, err := f.ApplySupport(&Contribution{ID: "c1", SupporterID: "s1", Amount: 100, DonatedOn: late}, late)
		assert.ErrorIs(t, err, ErrExpired)
		assert.Equal(t, FundraiserStatusCompleted, f.Status)
		assert.Equal(t, int64(0), f.CurrentAmount)
		assert.Empty(t, f.Supporters)
	})

	t.Run("Exactly End Date Is Accepted", func(t *testing.T) {
		// Expiry is exclusive: only now > endDate expires.
		f := newTestFundraiser(t, 5000)
		reached, err := f.ApplySupport(&Contribution{ID: "c1", SupporterID: "s1", Amount: 100, DonatedOn: f.EndDate}, f.EndDate)
		assert.NoError(t, err)
		assert.False(t, reached)
		assert.Equal(t, int64(100), f.CurrentAmount)
	})
}

func TestFundraiser_Cancel(t *testing.T) {
	now := time.Date(2026, 8, 2, 12, 0, 0, 0, time.UTC)

	t.Run("Second Cancel Fails", func(t *testing.T) {
		f := newTestFundraiser(t, 5000)
		assert.NoError(t, f.Cancel(now))
		assert.Equal(t, FundraiserStatusCancelled, f.Status)
		assert.ErrorIs(t, f.Cancel(now), ErrInvalidState)
		// Terminal states never transition away.
		assert.Equal(t, FundraiserStatusCancelled, f.Status)
	})

	t.Run("Completed Cannot Be Cancelled", func(t *testing.T) {
		f := newTestFundraiser(t, 1000)
		_, err := f.ApplySupport(&Contribution{ID: "c1", SupporterID: "s1", Amount: 1000, DonatedOn: now}, now)
		assert.NoError(t, err)
		assert.ErrorIs(t, f.Cancel(now), ErrInvalidState)
		assert.Equal(t, FundraiserStatusCompleted, f.Status)
	})
}

func TestFundraiser_ApplyUpdate(t *testing.T) {
	now := time.Date(2026, 8, 2, 12, 0, 0, 0, time.UTC)
	title := "New title"
	purpose := "New purpose"

	t.Run("Updates Listed Fields Only", func(t *testing.T) {
		f := newTestFundraiser(t, 5000)
		goal, end := f.GoalAmount, f.EndDate
		assert.NoError(t, f.ApplyUpdate(&title, nil, &purpose, now))
		assert.Equal(t, title, f.Title)
		assert.Equal(t, purpose, f.Purpose)
		assert.Equal(t, "New oven", f.Description)
		assert.Equal(t, goal, f.GoalAmount)
		assert.Equal(t, end, f.EndDate)
	})

	t.Run("Rejected When Not Active", func(t *testing.T) {
		f := newTestFundraiser(t, 5000)
		assert.NoError(t, f.Cancel(now))
		assert.ErrorIs(t, f.ApplyUpdate(&title, nil, nil, now), ErrInvalidState)
	})
}

func TestFundraiser_ExpireIfPast(t *testing.T) {
	f := newTestFundraiser(t, 5000)

	assert.False(t, f.ExpireIfPast(f.EndDate)) // boundary is exclusive
	assert.Equal(t, FundraiserStatusActive, f.Status)

	assert.True(t, f.ExpireIfPast(f.EndDate.Add(time.Minute)))
	assert.Equal(t, FundraiserStatusCompleted, f.Status)

	assert.False(t, f.ExpireIfPast(f.EndDate.Add(time.Hour))) // already terminal
}
