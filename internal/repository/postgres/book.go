package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"library-circulation/internal/domain"
	"library-circulation/internal/repository"
)

const bookColumns = `id, title, author, isbn, publish_date, status, category, created_on, updated_on`

type bookRepository struct {
	db *sql.DB
}

func NewBookRepository(db *sql.DB) repository.BookRepository {
	return &bookRepository{db: db}
}

func (r *bookRepository) Create(ctx context.Context, b *domain.Book) error {
	query := `INSERT INTO books (id, title, author, isbn, publish_date, status, category, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	now := time.Now()
	b.CreatedOn = now
	b.UpdatedOn = now
	_, err := r.db.ExecContext(ctx, query, b.ID, b.Title, b.Author, b.ISBN, b.PublishDate, b.Status, b.Category, b.CreatedOn, b.UpdatedOn)
	return err
}

func (r *bookRepository) GetByID(ctx context.Context, id string) (*domain.Book, error) {
	b := &domain.Book{}
	query := `SELECT ` + bookColumns + ` FROM books WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&b.ID, &b.Title, &b.Author, &b.ISBN, &b.PublishDate, &b.Status, &b.Category, &b.CreatedOn, &b.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("book %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *bookRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM books WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

func (r *bookRepository) Update(ctx context.Context, b *domain.Book) error {
	query := `UPDATE books SET title=$1, author=$2, isbn=$3, publish_date=$4, status=$5, category=$6, updated_on=$7 WHERE id=$8`
	b.UpdatedOn = time.Now()
	res, err := r.db.ExecContext(ctx, query, b.Title, b.Author, b.ISBN, b.PublishDate, b.Status, b.Category, b.UpdatedOn, b.ID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("book %s: %w", b.ID, domain.ErrNotFound)
	}
	return nil
}

func (r *bookRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("book %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *bookRepository) List(ctx context.Context) ([]domain.Book, error) {
	return r.list(ctx, `SELECT `+bookColumns+` FROM books ORDER BY title`)
}

func (r *bookRepository) ListByStatus(ctx context.Context, status domain.BookStatus) ([]domain.Book, error) {
	return r.list(ctx, `SELECT `+bookColumns+` FROM books WHERE status = $1 ORDER BY title`, status)
}

func (r *bookRepository) ListByCategory(ctx context.Context, category domain.BookCategory) ([]domain.Book, error) {
	return r.list(ctx, `SELECT `+bookColumns+` FROM books WHERE category = $1 ORDER BY title`, category)
}

func (r *bookRepository) SearchByTitle(ctx context.Context, keyword string) ([]domain.Book, error) {
	return r.list(ctx, `SELECT `+bookColumns+` FROM books WHERE title ILIKE '%' || $1 || '%' ORDER BY title`, keyword)
}

func (r *bookRepository) SearchByAuthor(ctx context.Context, keyword string) ([]domain.Book, error) {
	return r.list(ctx, `SELECT `+bookColumns+` FROM books WHERE author ILIKE '%' || $1 || '%' ORDER BY title`, keyword)
}

func (r *bookRepository) ListPublishedAfter(ctx context.Context, date time.Time) ([]domain.Book, error) {
	return r.list(ctx, `SELECT `+bookColumns+` FROM books WHERE publish_date > $1 ORDER BY publish_date`, date)
}

func (r *bookRepository) ListPublishedBefore(ctx context.Context, date time.Time) ([]domain.Book, error) {
	return r.list(ctx, `SELECT `+bookColumns+` FROM books WHERE publish_date < $1 ORDER BY publish_date`, date)
}

func (r *bookRepository) ListPublishedBetween(ctx context.Context, start, end time.Time) ([]domain.Book, error) {
	return r.list(ctx, `SELECT `+bookColumns+` FROM books WHERE publish_date BETWEEN $1 AND $2 ORDER BY publish_date`, start, end)
}

func (r *bookRepository) list(ctx context.Context, query string, args ...interface{}) ([]domain.Book, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []domain.Book
	for rows.Next() {
		var b domain.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.ISBN, &b.PublishDate, &b.Status, &b.Category, &b.CreatedOn, &b.UpdatedOn); err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	return books, rows.Err()
}
