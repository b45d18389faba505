package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/hearthstay/api/internal/domain"
	"github.com/hearthstay/api/internal/testutil"
)

func TestPropertyRepository(t *testing.T) {
	pool := testutil.NewTestPool(t)
	repo := NewPropertyRepository(pool)
	testutil.ApplyMigrations(t, context.Background(), pool)

	t.Run("List filters by host and price", func(t *testing.T) {
		ctx := context.Background()
		testutil.TruncateAll(t, ctx, pool)
		aliceID := testutil.InsertUser(t, ctx, pool, "Alice", "Johnson", "host")
		emmaID := testutil.InsertUser(t, ctx, pool, "Emma", "Davis", "host")
		cheapID := testutil.InsertProperty(t, ctx, pool, aliceID, "City Loft", 80)
		testutil.InsertProperty(t, ctx, pool, aliceID, "Harbour View", 150)
		testutil.InsertProperty(t, ctx, pool, emmaID, "Beach Studio", 90)

		all, err := repo.List(ctx, domain.PropertyFilter{})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(all) != 3 {
			t.Fatalf("expected 3 properties, got %d", len(all))
		}

		maxPrice := 100.0
		byHostAndPrice, err := repo.List(ctx, domain.PropertyFilter{HostID: &aliceID, MaxPrice: &maxPrice})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(byHostAndPrice) != 1 || byHostAndPrice[0].ID != cheapID {
			t.Fatalf("unexpected filter result: %+v", byHostAndPrice)
		}
		if byHostAndPrice[0].Host != "Alice Johnson" {
			t.Fatalf("unexpected host: %q", byHostAndPrice[0].Host)
		}
	})

	t.Run("List sorts by price in either direction", func(t *testing.T) {
		ctx := context.Background()
		testutil.TruncateAll(t, ctx, pool)
		hostID := testutil.InsertUser(t, ctx, pool, "Alice", "Johnson", "host")
		cheapID := testutil.InsertProperty(t, ctx, pool, hostID, "City Loft", 80)
		pricierID := testutil.InsertProperty(t, ctx, pool, hostID, "Harbour View", 150)

		asc, err := repo.List(ctx, domain.PropertyFilter{Sort: "price_per_night", Order: "asc"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if asc[0].ID != cheapID || asc[1].ID != pricierID {
			t.Fatalf("unexpected ascending order: %+v", asc)
		}

		desc, err := repo.List(ctx, domain.PropertyFilter{Sort: "price_per_night", Order: "desc"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if desc[0].ID != pricierID {
			t.Fatalf("unexpected descending order: %+v", desc)
		}
	})

	t.Run("List ranks by favourite count by default", func(t *testing.T) {
		ctx := context.Background()
		testutil.TruncateAll(t, ctx, pool)
		hostID := testutil.InsertUser(t, ctx, pool, "Alice", "Johnson", "host")
		guestID := testutil.InsertUser(t, ctx, pool, "Bob", "Wilson", "guest")
		plainID := testutil.InsertProperty(t, ctx, pool, hostID, "City Loft", 80)
		popularID := testutil.InsertProperty(t, ctx, pool, hostID, "Harbour View", 150)
		if _, err := pool.Exec(ctx, `INSERT INTO favourites (guest_id, property_id) VALUES ($1, $2)`, guestID, popularID); err != nil {
			t.Fatalf("insert favourite: %v", err)
		}

		listed, err := repo.List(ctx, domain.PropertyFilter{})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if listed[0].ID != popularID || listed[0].FavouriteCount != 1 {
			t.Fatalf("unexpected ranking: %+v", listed)
		}
		if listed[1].ID != plainID || listed[1].FavouriteCount != 0 {
			t.Fatalf("unexpected ranking: %+v", listed)
		}
	})

	t.Run("Get returns joins, ratings and the favourited flag", func(t *testing.T) {
		ctx := context.Background()
		testutil.TruncateAll(t, ctx, pool)
		hostID := testutil.InsertUser(t, ctx, pool, "Alice", "Johnson", "host")
		guestID := testutil.InsertUser(t, ctx, pool, "Bob", "Wilson", "guest")
		propertyID := testutil.InsertProperty(t, ctx, pool, hostID, "City Loft", 120)
		if _, err := pool.Exec(ctx, `INSERT INTO images (property_id, image_url, alt_tag) VALUES ($1, $2, $3)`,
			propertyID, "https://example.com/loft.jpg", "City Loft"); err != nil {
			t.Fatalf("insert image: %v", err)
		}
		if _, err := pool.Exec(ctx, `INSERT INTO favourites (guest_id, property_id) VALUES ($1, $2)`, guestID, propertyID); err != nil {
			t.Fatalf("insert favourite: %v", err)
		}
		if _, err := pool.Exec(ctx, `INSERT INTO reviews (property_id, guest_id, rating, comment) VALUES ($1, $2, 4, 'Nice stay')`,
			propertyID, guestID); err != nil {
			t.Fatalf("insert review: %v", err)
		}

		anon, err := repo.Get(ctx, propertyID, nil)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if anon.Host != "Alice Johnson" || anon.FavouriteCount != 1 || anon.AverageRating != 4 {
			t.Fatalf("unexpected detail: %+v", anon)
		}
		if len(anon.Images) != 1 || anon.Images[0] != "https://example.com/loft.jpg" {
			t.Fatalf("unexpected images: %+v", anon.Images)
		}
		if anon.Favourited != nil {
			t.Fatalf("expected no favourited flag for anonymous lookup")
		}

		forGuest, err := repo.Get(ctx, propertyID, &guestID)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if forGuest.Favourited == nil || !*forGuest.Favourited {
			t.Fatalf("expected favourited flag set, got %+v", forGuest.Favourited)
		}

		_, err = repo.Get(ctx, 100000, nil)
		if !errors.Is(err, domain.ErrPropertyNotFound) {
			t.Fatalf("expected ErrPropertyNotFound, got %v", err)
		}
	})
}
