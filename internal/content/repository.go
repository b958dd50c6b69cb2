package content

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrEventNotFound = errors.New("event not found")
	ErrPlaceNotFound = errors.New("place not found")
	ErrPostNotFound  = errors.New("blog post not found")
)

type Repository struct {
	db *sql.DB
}

type RepoInterface interface {
	ListEvents(ctx context.Context) ([]*Event, error)
	GetEvent(ctx context.Context, id string) (*Event, error)
	ListPlaces(ctx context.Context) ([]*Place, error)
	GetPlace(ctx context.Context, id string) (*Place, error)
	ListPosts(ctx context.Context) ([]*BlogPost, error)
	GetPost(ctx context.Context, id string) (*BlogPost, error)
}

func NewRepository(conn *sql.DB) *Repository {
	return &Repository{db: conn}
}

const eventColumns = `id, title, date, location, type, organizer, description, image, full_description, time, price, highlights`

func (r *Repository) ListEvents(ctx context.Context) ([]*Event, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+eventColumns+` FROM events ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	var events []*Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return events, nil
}

func (r *Repository) GetEvent(ctx context.Context, id string) (*Event, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+eventColumns+` FROM events WHERE id = $1`, id)
	e, err := scanEvent(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEventNotFound
	}
	return e, err
}

func scanEvent(row rowScanner) (*Event, error) {
	e := &Event{}
	var highlights string
	err := row.Scan(&e.ID, &e.Title, &e.Date, &e.Location, &e.Type, &e.Organizer,
		&e.Description, &e.Image, &e.FullDescription, &e.Time, &e.Price, &highlights)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan event: %w", err)
	}
	if err := json.Unmarshal([]byte(highlights), &e.Highlights); err != nil {
		return nil, fmt.Errorf("failed to decode highlights for %s: %w", e.ID, err)
	}
	return e, nil
}

const placeColumns = `id, name, type, location, rating, features, image, coord_x, coord_y, description, address, opening_hours, contact`

func (r *Repository) ListPlaces(ctx context.Context) ([]*Place, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+placeColumns+` FROM places ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to query places: %w", err)
	}
	defer rows.Close()

	var places []*Place
	for rows.Next() {
		p, err := scanPlace(rows)
		if err != nil {
			return nil, err
		}
		places = append(places, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return places, nil
}

func (r *Repository) GetPlace(ctx context.Context, id string) (*Place, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+placeColumns+` FROM places WHERE id = $1`, id)
	p, err := scanPlace(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPlaceNotFound
	}
	return p, err
}

func scanPlace(row rowScanner) (*Place, error) {
	p := &Place{}
	var features string
	err := row.Scan(&p.ID, &p.Name, &p.Type, &p.Location, &p.Rating, &features,
		&p.Image, &p.Coordinates.X, &p.Coordinates.Y, &p.Description, &p.Address,
		&p.OpeningHours, &p.Contact)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan place: %w", err)
	}
	if err := json.Unmarshal([]byte(features), &p.Features); err != nil {
		return nil, fmt.Errorf("failed to decode features for %s: %w", p.ID, err)
	}
	return p, nil
}

const postColumns = `id, title, author, date, category, excerpt, content, image, tags, likes`

func (r *Repository) ListPosts(ctx context.Context) ([]*BlogPost, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+postColumns+` FROM blog_posts ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to query blog posts: %w", err)
	}
	defer rows.Close()

	var posts []*BlogPost
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return posts, nil
}

func (r *Repository) GetPost(ctx context.Context, id string) (*BlogPost, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+postColumns+` FROM blog_posts WHERE id = $1`, id)
	p, err := scanPost(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPostNotFound
	}
	return p, err
}

func scanPost(row rowScanner) (*BlogPost, error) {
	p := &BlogPost{}
	var tags string
	err := row.Scan(&p.ID, &p.Title, &p.Author, &p.Date, &p.Category, &p.Excerpt,
		&p.Content, &p.Image, &tags, &p.Likes)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan blog post: %w", err)
	}
	if err := json.Unmarshal([]byte(tags), &p.Tags); err != nil {
		return nil, fmt.Errorf("failed to decode tags for %s: %w", p.ID, err)
	}
	return p, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}
