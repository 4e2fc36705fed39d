package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"library-circulation/internal/domain"
	"library-circulation/internal/repository"
)

var isbnPattern = regexp.MustCompile(`^\d{10}$|^\d{13}$`)

type bookService struct {
	bookRepo repository.BookRepository
	clock    domain.Clock
}

func NewBookService(bookRepo repository.BookRepository, clock domain.Clock) BookService {
	return &bookService{bookRepo: bookRepo, clock: clock}
}

func (s *bookService) AddBook(ctx context.Context, title, author, isbn string, publishDate time.Time, category domain.BookCategory) (*domain.Book, error) {
	if err := s.validateBookData(title, author, isbn, publishDate); err != nil {
		return nil, err
	}

	book := &domain.Book{
		ID:          uuid.NewString(),
		Title:       title,
		Author:      author,
		ISBN:        isbn,
		PublishDate: domain.Date(publishDate),
		Status:      domain.BookStatusAvailable,
		Category:    category,
	}
	if err := s.bookRepo.Create(ctx, book); err != nil {
		return nil, err
	}
	return book, nil
}

func (s *bookService) UpdateBook(ctx context.Context, bookID, title, author, isbn string, publishDate time.Time, category domain.BookCategory) (*domain.Book, error) {
	if err := s.validateBookData(title, author, isbn, publishDate); err != nil {
		return nil, err
	}

	book, err := s.bookRepo.GetByID(ctx, bookID)
	if err != nil {
		return nil, err
	}
	book.Title = title
	book.Author = author
	book.ISBN = isbn
	book.PublishDate = domain.Date(publishDate)
	book.Category = category
	if err := s.bookRepo.Update(ctx, book); err != nil {
		return nil, err
	}
	return book, nil
}

// UpdateBookStatus is the unconditional setStatus of the status tracker.
// The coordinator validates legality before calling.
func (s *bookService) UpdateBookStatus(ctx context.Context, bookID string, status domain.BookStatus) (*domain.Book, error) {
	book, err := s.bookRepo.GetByID(ctx, bookID)
	if err != nil {
		return nil, err
	}
	book.Status = status
	if err := s.bookRepo.Update(ctx, book); err != nil {
		return nil, err
	}
	return book, nil
}

func (s *bookService) GetBookStatus(ctx context.Context, bookID string) (domain.BookStatus, error) {
	book, err := s.bookRepo.GetByID(ctx, bookID)
	if err != nil {
		return "", err
	}
	return book.Status, nil
}

func (s *bookService) DeleteBook(ctx context.Context, bookID string) error {
	exists, err := s.bookRepo.ExistsByID(ctx, bookID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("book %s: %w", bookID, domain.ErrNotFound)
	}
	return s.bookRepo.Delete(ctx, bookID)
}

func (s *bookService) GetBook(ctx context.Context, bookID string) (*domain.Book, error) {
	return s.bookRepo.GetByID(ctx, bookID)
}

func (s *bookService) ListBooks(ctx context.Context) ([]domain.Book, error) {
	return s.bookRepo.List(ctx)
}

func (s *bookService) ListBooksByStatus(ctx context.Context, status domain.BookStatus) ([]domain.Book, error) {
	return s.bookRepo.ListByStatus(ctx, status)
}

func (s *bookService) ListBooksByCategory(ctx context.Context, category domain.BookCategory) ([]domain.Book, error) {
	return s.bookRepo.ListByCategory(ctx, category)
}

func (s *bookService) ListAvailableBooks(ctx context.Context) ([]domain.Book, error) {
	return s.bookRepo.ListByStatus(ctx, domain.BookStatusAvailable)
}

func (s *bookService) SearchBooksByTitle(ctx context.Context, keyword string) ([]domain.Book, error) {
	return s.bookRepo.SearchByTitle(ctx, keyword)
}

func (s *bookService) SearchBooksByAuthor(ctx context.Context, keyword string) ([]domain.Book, error) {
	return s.bookRepo.SearchByAuthor(ctx, keyword)
}

func (s *bookService) ListBooksPublishedAfter(ctx context.Context, date time.Time) ([]domain.Book, error) {
	return s.bookRepo.ListPublishedAfter(ctx, domain.Date(date))
}

func (s *bookService) ListBooksPublishedBefore(ctx context.Context, date time.Time) ([]domain.Book, error) {
	return s.bookRepo.ListPublishedBefore(ctx, domain.Date(date))
}

func (s *bookService) ListBooksPublishedBetween(ctx context.Context, start, end time.Time) ([]domain.Book, error) {
	return s.bookRepo.ListPublishedBetween(ctx, domain.Date(start), domain.Date(end))
}

func (s *bookService) validateBookData(title, author, isbn string, publishDate time.Time) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("book title cannot be empty: %w", domain.ErrInvalidArgument)
	}
	if strings.TrimSpace(author) == "" {
		return fmt.Errorf("book author cannot be empty: %w", domain.ErrInvalidArgument)
	}
	if strings.TrimSpace(isbn) == "" {
		return fmt.Errorf("book ISBN cannot be empty: %w", domain.ErrInvalidArgument)
	}
	if !isbnPattern.MatchString(isbn) {
		return fmt.Errorf("ISBN must be 10 or 13 digits: %w", domain.ErrInvalidArgument)
	}
	if publishDate.IsZero() {
		return fmt.Errorf("publication date is required: %w", domain.ErrInvalidArgument)
	}
	if domain.Date(publishDate).After(s.clock.Today()) {
		return fmt.Errorf("publication date cannot be in the future: %w", domain.ErrInvalidArgument)
	}
	return nil
}
