package domain

import "time"

type BookStatus string

const (
	BookStatusAvailable   BookStatus = "AVAILABLE"
	BookStatusCheckedOut  BookStatus = "CHECKED_OUT"
	BookStatusReserved    BookStatus = "RESERVED"
	BookStatusUnderRepair BookStatus = "UNDER_REPAIR"
	BookStatusLost        BookStatus = "LOST"
	BookStatusArchived    BookStatus = "ARCHIVED"
)

type BookCategory string

const (
	BookCategoryFiction        BookCategory = "FICTION"
	BookCategoryNonFiction     BookCategory = "NON_FICTION"
	BookCategoryScience        BookCategory = "SCIENCE"
	BookCategoryHistory        BookCategory = "HISTORY"
	BookCategoryBiography      BookCategory = "BIOGRAPHY"
	BookCategoryFantasy        BookCategory = "FANTASY"
	BookCategoryScienceFiction BookCategory = "SCIENCE_FICTION"
	BookCategoryMystery        BookCategory = "MYSTERY"
	BookCategoryThriller       BookCategory = "THRILLER"
	BookCategoryRomance        BookCategory = "ROMANCE"
	BookCategoryChildren       BookCategory = "CHILDREN"
	BookCategoryReference      BookCategory = "REFERENCE"
	BookCategoryTextbook       BookCategory = "TEXTBOOK"
	BookCategoryPoetry         BookCategory = "POETRY"
	BookCategoryDrama          BookCategory = "DRAMA"
	BookCategoryOther          BookCategory = "OTHER"
)

// Book carries bibliographic data plus the circulation status. The status
// is mutated only through the circulation coordinator; it reflects at most
// one outstanding claim (loan or reservation) at a time.
type Book struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Author      string       `json:"author"`
	ISBN        string       `json:"isbn"`
	PublishDate time.Time    `json:"publish_date"`
	Status      BookStatus   `json:"status"`
	Category    BookCategory `json:"category"`
	CreatedOn   time.Time    `json:"created_on"`
	UpdatedOn   time.Time    `json:"updated_on"`
}
