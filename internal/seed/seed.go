// Package seed loads a small demo dataset for local development.
package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type user struct {
	firstName, surname, email, phone, role, avatar string
}

type property struct {
	host, name, location, propertyType, description string
	pricePerNight                                   float64
}

type booking struct {
	property, guest   string
	checkInFromToday  int
	checkOutFromToday int
}

type review struct {
	property, guest string
	rating          int
	comment         string
}

var propertyTypes = [][2]string{
	{"Apartment", "A self-contained unit within a larger building."},
	{"House", "A standalone home with private entrance."},
	{"Studio", "A single open-plan living space."},
}

var users = []user{
	{"Alice", "Johnson", "alice@example.com", "+44 7000 111111", "host", "https://example.com/images/alice.jpg"},
	{"Bob", "Wilson", "bob@example.com", "+44 7000 222222", "guest", "https://example.com/images/bob.jpg"},
	{"Emma", "Davis", "emma@example.com", "+44 7000 333333", "host", "https://example.com/images/emma.jpg"},
	{"Frank", "White", "frank@example.com", "+44 7000 444444", "guest", "https://example.com/images/frank.jpg"},
	{"Isabella", "Martinez", "bella@example.com", "+44 7000 555555", "host", "https://example.com/images/bella.jpg"},
}

var properties = []property{
	{"Alice Johnson", "Modern Apartment in City Center", "London, UK", "Apartment", "Description of Modern Apartment in City Center.", 120.0},
	{"Alice Johnson", "Cosy Family House", "Manchester, UK", "House", "Description of Cosy Family House.", 150.0},
	{"Emma Davis", "Chic Studio Near the Beach", "Brighton, UK", "Studio", "Description of Chic Studio Near the Beach.", 90.0},
	{"Emma Davis", "Elegant City Apartment", "Birmingham, UK", "Apartment", "Description of Elegant City Apartment.", 110.0},
	{"Isabella Martinez", "Seaside Studio Getaway", "Cornwall, UK", "Studio", "Description of Seaside Studio Getaway.", 95.0},
	{"Isabella Martinez", "Quaint Cottage in the Hills", "Lake District, UK", "House", "Description of Quaint Cottage in the Hills.", 140.0},
}

var images = map[string][]string{
	"Modern Apartment in City Center": {"https://example.com/images/modern_apartment_1.jpg", "https://example.com/images/modern_apartment_2.jpg"},
	"Cosy Family House":               {"https://example.com/images/cosy_house_1.jpg"},
	"Chic Studio Near the Beach":      {"https://example.com/images/chic_studio_1.jpg"},
	"Elegant City Apartment":          {"https://example.com/images/elegant_apartment_1.jpg"},
	"Seaside Studio Getaway":          {"https://example.com/images/seaside_studio_1.jpg"},
	"Quaint Cottage in the Hills":     {"https://example.com/images/quaint_cottage_1.jpg"},
}

var favourites = [][2]string{
	{"Bob Wilson", "Modern Apartment in City Center"},
	{"Bob Wilson", "Chic Studio Near the Beach"},
	{"Frank White", "Modern Apartment in City Center"},
	{"Frank White", "Quaint Cottage in the Hills"},
}

var reviews = []review{
	{"Modern Apartment in City Center", "Bob Wilson", 5, "Spotless and central, would stay again."},
	{"Chic Studio Near the Beach", "Frank White", 4, "Great location, a little noisy at night."},
	{"Quaint Cottage in the Hills", "Bob Wilson", 5, "Perfect weekend escape."},
}

var bookings = []booking{
	{"Modern Apartment in City Center", "Bob Wilson", 10, 14},
	{"Modern Apartment in City Center", "Frank White", 20, 25},
	{"Chic Studio Near the Beach", "Bob Wilson", 7, 9},
	{"Quaint Cottage in the Hills", "Frank White", 30, 37},
}

// Apply wipes the marketplace tables and loads the demo dataset. Booking
// dates are offsets from today so the past-check-in constraint keeps passing.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, `TRUNCATE bookings, images, reviews, favourites, properties, users, property_types RESTART IDENTITY CASCADE`); err != nil {
		return fmt.Errorf("truncate: %w", err)
	}

	for _, pt := range propertyTypes {
		if _, err := pool.Exec(ctx, `INSERT INTO property_types (property_type, description) VALUES ($1, $2)`, pt[0], pt[1]); err != nil {
			return fmt.Errorf("seed property type %s: %w", pt[0], err)
		}
	}

	userIDs := make(map[string]int64, len(users))
	for _, u := range users {
		var id int64
		err := pool.QueryRow(ctx, `
INSERT INTO users (first_name, surname, email, phone_number, role, avatar)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING user_id`,
			u.firstName, u.surname, u.email, u.phone, u.role, u.avatar,
		).Scan(&id)
		if err != nil {
			return fmt.Errorf("seed user %s: %w", u.email, err)
		}
		userIDs[u.firstName+" "+u.surname] = id
	}

	propertyIDs := make(map[string]int64, len(properties))
	for _, p := range properties {
		var id int64
		err := pool.QueryRow(ctx, `
INSERT INTO properties (host_id, name, location, property_type, price_per_night, description)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING property_id`,
			userIDs[p.host], p.name, p.location, p.propertyType, p.pricePerNight, p.description,
		).Scan(&id)
		if err != nil {
			return fmt.Errorf("seed property %s: %w", p.name, err)
		}
		propertyIDs[p.name] = id
	}

	for name, urls := range images {
		for _, url := range urls {
			if _, err := pool.Exec(ctx, `INSERT INTO images (property_id, image_url, alt_tag) VALUES ($1, $2, $3)`,
				propertyIDs[name], url, "Photo of "+name); err != nil {
				return fmt.Errorf("seed image for %s: %w", name, err)
			}
		}
	}

	for _, f := range favourites {
		if _, err := pool.Exec(ctx, `INSERT INTO favourites (guest_id, property_id) VALUES ($1, $2)`,
			userIDs[f[0]], propertyIDs[f[1]]); err != nil {
			return fmt.Errorf("seed favourite: %w", err)
		}
	}

	for _, rv := range reviews {
		if _, err := pool.Exec(ctx, `INSERT INTO reviews (property_id, guest_id, rating, comment) VALUES ($1, $2, $3, $4)`,
			propertyIDs[rv.property], userIDs[rv.guest], rv.rating, rv.comment); err != nil {
			return fmt.Errorf("seed review: %w", err)
		}
	}

	for _, b := range bookings {
		if _, err := pool.Exec(ctx, `
INSERT INTO bookings (property_id, guest_id, check_in_date, check_out_date)
VALUES ($1, $2, CURRENT_DATE + $3, CURRENT_DATE + $4)`,
			propertyIDs[b.property], userIDs[b.guest], b.checkInFromToday, b.checkOutFromToday); err != nil {
			return fmt.Errorf("seed booking: %w", err)
		}
	}
	return nil
}
