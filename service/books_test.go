package service

import (
	"errors"
	"testing"
	"time"

	"github.com/eokafor/athenaeum/data"
	"github.com/eokafor/athenaeum/data/dto"
	"github.com/eokafor/athenaeum/internal/cache"
)

func TestCreateBook(t *testing.T) {
	t.Run("every copy of a new book starts out available", func(t *testing.T) {
		repo := newFakeRepo()
		s := newTestService(repo, nil)
		book, err := s.CreateBook(dto.CreateBookRequestBody{
			Title:           "The Left Hand of Darkness",
			Author:          "Ursula K. Le Guin",
			Isbn:            "978-0441478125",
			PublicationDate: data.NewDate(1969, time.March, 1),
			TotalCopies:     4,
		})
		if err != nil {
			t.Fatal(err)
		}
		if book.AvailableCopies != 4 {
			t.Errorf("expected 4 available copies; got %d", book.AvailableCopies)
		}
	})

	t.Run("missing required fields fail validation", func(t *testing.T) {
		repo := newFakeRepo()
		s := newTestService(repo, nil)
		_, err := s.CreateBook(dto.CreateBookRequestBody{Author: "Anonymous"})
		if !errors.Is(err, ErrFailedValidation) {
			t.Errorf("expected ErrFailedValidation; got %v", err)
		}
	})

	t.Run("negative total copies fail validation", func(t *testing.T) {
		repo := newFakeRepo()
		s := newTestService(repo, nil)
		_, err := s.CreateBook(dto.CreateBookRequestBody{
			Title:       "Nothing",
			Author:      "Nobody",
			Isbn:        "0",
			TotalCopies: -1,
		})
		if !errors.Is(err, ErrFailedValidation) {
			t.Errorf("expected ErrFailedValidation; got %v", err)
		}
	})
}

func TestUpdateBook(t *testing.T) {
	t.Run("changing total copies keeps copies on loan fixed", func(t *testing.T) {
		repo := newFakeRepo()
		s := newTestService(repo, nil)
		book := seedBook(t, s, 3)
		reader := seedReader(t, s)
		if _, err := s.CreateBorrowRecord(borrowBody(book.ID, reader.ID)); err != nil {
			t.Fatal(err)
		}
		total := 5
		updated, err := s.UpdateBook(book.ID, dto.UpdateBookRequestBody{TotalCopies: &total})
		if err != nil {
			t.Fatal(err)
		}
		if updated.TotalCopies != 5 {
			t.Errorf("expected 5 total copies; got %d", updated.TotalCopies)
		}
		if updated.AvailableCopies != 4 {
			t.Errorf("expected 4 available copies; got %d", updated.AvailableCopies)
		}
	})

	t.Run("shrinking total copies below copies on loan fails validation", func(t *testing.T) {
		repo := newFakeRepo()
		s := newTestService(repo, nil)
		book := seedBook(t, s, 3)
		reader := seedReader(t, s)
		if _, err := s.CreateBorrowRecord(borrowBody(book.ID, reader.ID)); err != nil {
			t.Fatal(err)
		}
		if _, err := s.CreateBorrowRecord(borrowBody(book.ID, reader.ID)); err != nil {
			t.Fatal(err)
		}
		total := 1
		_, err := s.UpdateBook(book.ID, dto.UpdateBookRequestBody{TotalCopies: &total})
		if !errors.Is(err, ErrFailedValidation) {
			t.Errorf("expected ErrFailedValidation; got %v", err)
		}
	})

	t.Run("updating an unknown book fails", func(t *testing.T) {
		repo := newFakeRepo()
		s := newTestService(repo, nil)
		title := "Renamed"
		_, err := s.UpdateBook(99, dto.UpdateBookRequestBody{Title: &title})
		if !errors.Is(err, ErrRecordNotFound) {
			t.Errorf("expected ErrRecordNotFound; got %v", err)
		}
	})
}

func TestDeleteBook(t *testing.T) {
	t.Run("deleting a book invalidates its cache entries", func(t *testing.T) {
		repo := newFakeRepo()
		c := cache.New(time.Minute)
		defer c.Stop()
		s := newTestService(repo, c)
		book := seedBook(t, s, 1)
		detailKey := c.DetailKey(cache.EntityBooks, book.ID)
		c.Set(detailKey, []byte("cached book"))
		if err := s.DeleteBook(book.ID); err != nil {
			t.Fatal(err)
		}
		if _, ok := c.Get(detailKey); ok {
			t.Error("expected the detail entry to be invalidated after a delete")
		}
	})

	t.Run("deleting an unknown book fails", func(t *testing.T) {
		repo := newFakeRepo()
		s := newTestService(repo, nil)
		err := s.DeleteBook(99)
		if !errors.Is(err, ErrRecordNotFound) {
			t.Errorf("expected ErrRecordNotFound; got %v", err)
		}
	})
}

func TestListBooks(t *testing.T) {
	t.Run("invalid filters fail validation", func(t *testing.T) {
		repo := newFakeRepo()
		s := newTestService(repo, nil)
		filters := data.Filters{Page: 0, PageSize: 20, Sort: "id", SortSafeList: []string{"id"}}
		_, _, err := s.ListBooks("", "", "", filters)
		if !errors.Is(err, ErrFailedValidation) {
			t.Errorf("expected ErrFailedValidation; got %v", err)
		}
	})

	t.Run("valid filters return books with metadata", func(t *testing.T) {
		repo := newFakeRepo()
		s := newTestService(repo, nil)
		seedBook(t, s, 1)
		filters := data.Filters{Page: 1, PageSize: 20, Sort: "id", SortSafeList: []string{"id"}}
		books, metadata, err := s.ListBooks("", "", "", filters)
		if err != nil {
			t.Fatal(err)
		}
		if len(books) != 1 {
			t.Errorf("expected 1 book; got %d", len(books))
		}
		if metadata.TotalRecords != 1 {
			t.Errorf("expected 1 total record; got %d", metadata.TotalRecords)
		}
	})
}
