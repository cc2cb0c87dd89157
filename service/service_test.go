package service

import (
	"io"
	"sync"
	"time"

	"github.com/eokafor/athenaeum/config"
	"github.com/eokafor/athenaeum/data"
	"github.com/eokafor/athenaeum/internal/cache"
	"github.com/eokafor/athenaeum/internal/jsonlog"
	"github.com/eokafor/athenaeum/internal/mailer"
	"github.com/eokafor/athenaeum/repository"
)

// fakeRepo is an in-memory Repository used by the service tests. It applies
// the same borrow and return semantics as the SQL implementation, with a
// mutex standing in for row locks so concurrent calls stay consistent.
type fakeRepo struct {
	mu      sync.Mutex
	books   map[int64]*data.Book
	readers map[int64]*data.Reader
	records map[int64]*data.BorrowRecord
	nextID  int64

	// createErrs is a queue of errors returned by CreateBorrowRecord
	// before the real logic runs, used to simulate transient failures.
	createErrs []error
	// returnErrs does the same for ReturnBorrowRecord.
	returnErrs []error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		books:   make(map[int64]*data.Book),
		readers: make(map[int64]*data.Reader),
		records: make(map[int64]*data.BorrowRecord),
	}
}

func (f *fakeRepo) id() int64 {
	f.nextID++
	return f.nextID
}

func (f *fakeRepo) CreateBook(book *data.Book) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	book.ID = f.id()
	book.CreatedAt = time.Now()
	book.Version = 1
	cp := *book
	f.books[book.ID] = &cp
	return nil
}

func (f *fakeRepo) GetBook(bookID int64) (*data.Book, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	book, ok := f.books[bookID]
	if !ok {
		return nil, repository.ErrRecordNotFound
	}
	cp := *book
	return &cp, nil
}

func (f *fakeRepo) GetAllBooks(search, category, publisher string, filters data.Filters) ([]*data.Book, data.Metadata, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var books []*data.Book
	for _, book := range f.books {
		cp := *book
		books = append(books, &cp)
	}
	return books, data.CalculateMetadata(len(books), filters.Page, filters.PageSize), nil
}

func (f *fakeRepo) UpdateBook(book *data.Book) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	current, ok := f.books[book.ID]
	if !ok {
		return repository.ErrRecordNotFound
	}
	if current.Version != book.Version {
		return repository.ErrEditConflict
	}
	book.Version++
	cp := *book
	f.books[book.ID] = &cp
	return nil
}

func (f *fakeRepo) DeleteBook(bookID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.books[bookID]; !ok {
		return repository.ErrRecordNotFound
	}
	delete(f.books, bookID)
	return nil
}

func (f *fakeRepo) CreateReader(reader *data.Reader) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.readers {
		if existing.ReaderID == reader.ReaderID {
			return repository.ErrDuplicateRecord
		}
		if reader.Email != "" && existing.Email == reader.Email {
			return repository.ErrDuplicateRecord
		}
	}
	reader.ID = f.id()
	reader.CreatedAt = time.Now()
	reader.Version = 1
	cp := *reader
	f.readers[reader.ID] = &cp
	return nil
}

func (f *fakeRepo) GetReader(readerID int64) (*data.Reader, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	reader, ok := f.readers[readerID]
	if !ok {
		return nil, repository.ErrRecordNotFound
	}
	cp := *reader
	return &cp, nil
}

func (f *fakeRepo) GetAllReaders(search string, filters data.Filters) ([]*data.Reader, data.Metadata, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var readers []*data.Reader
	for _, reader := range f.readers {
		cp := *reader
		readers = append(readers, &cp)
	}
	return readers, data.CalculateMetadata(len(readers), filters.Page, filters.PageSize), nil
}

func (f *fakeRepo) UpdateReader(reader *data.Reader) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	current, ok := f.readers[reader.ID]
	if !ok {
		return repository.ErrRecordNotFound
	}
	if current.Version != reader.Version {
		return repository.ErrEditConflict
	}
	reader.Version++
	cp := *reader
	f.readers[reader.ID] = &cp
	return nil
}

func (f *fakeRepo) DeleteReader(readerID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.readers[readerID]; !ok {
		return repository.ErrRecordNotFound
	}
	delete(f.readers, readerID)
	return nil
}

func (f *fakeRepo) CreateBorrowRecord(record *data.BorrowRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.createErrs) > 0 {
		err := f.createErrs[0]
		f.createErrs = f.createErrs[1:]
		if err != nil {
			return err
		}
	}
	book, ok := f.books[record.BookID]
	if !ok {
		return repository.ErrRecordNotFound
	}
	if _, ok := f.readers[record.ReaderID]; !ok {
		return repository.ErrRecordNotFound
	}
	if book.AvailableCopies <= 0 {
		return repository.ErrNoCopiesAvailable
	}
	book.AvailableCopies--
	book.Version++
	record.ID = f.id()
	record.CreatedAt = time.Now()
	record.Version = 1
	cp := *record
	f.records[record.ID] = &cp
	return nil
}

func (f *fakeRepo) GetBorrowRecord(recordID int64) (*data.BorrowRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	record, ok := f.records[recordID]
	if !ok {
		return nil, repository.ErrRecordNotFound
	}
	cp := *record
	if book, ok := f.books[record.BookID]; ok {
		cp.BookTitle = book.Title
	}
	if reader, ok := f.readers[record.ReaderID]; ok {
		cp.ReaderName = reader.Name
	}
	return &cp, nil
}

func (f *fakeRepo) GetAllBorrowRecords(bookID, readerID int64, returned *bool, filters data.Filters) ([]*data.BorrowRecord, data.Metadata, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var records []*data.BorrowRecord
	for _, record := range f.records {
		if bookID != 0 && record.BookID != bookID {
			continue
		}
		if readerID != 0 && record.ReaderID != readerID {
			continue
		}
		if returned != nil && record.Returned() != *returned {
			continue
		}
		cp := *record
		records = append(records, &cp)
	}
	return records, data.CalculateMetadata(len(records), filters.Page, filters.PageSize), nil
}

func (f *fakeRepo) UpdateBorrowRecord(record *data.BorrowRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	current, ok := f.records[record.ID]
	if !ok {
		return repository.ErrRecordNotFound
	}
	if current.Version != record.Version {
		return repository.ErrEditConflict
	}
	record.Version++
	cp := *record
	f.records[record.ID] = &cp
	return nil
}

func (f *fakeRepo) ReturnBorrowRecord(recordID int64, returnDate data.Date) (*data.BorrowRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.returnErrs) > 0 {
		err := f.returnErrs[0]
		f.returnErrs = f.returnErrs[1:]
		if err != nil {
			return nil, err
		}
	}
	record, ok := f.records[recordID]
	if !ok {
		return nil, repository.ErrRecordNotFound
	}
	if record.Returned() {
		return nil, repository.ErrAlreadyReturned
	}
	book, ok := f.books[record.BookID]
	if !ok {
		return nil, repository.ErrRecordNotFound
	}
	if book.AvailableCopies+1 > book.TotalCopies {
		return nil, repository.ErrCopiesExceedTotal
	}
	book.AvailableCopies++
	book.Version++
	record.ReturnDate = &returnDate
	record.Version++
	cp := *record
	return &cp, nil
}

func (f *fakeRepo) DeleteBorrowRecord(recordID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	record, ok := f.records[recordID]
	if !ok {
		return repository.ErrRecordNotFound
	}
	if !record.Returned() {
		book, ok := f.books[record.BookID]
		if ok {
			if book.AvailableCopies+1 > book.TotalCopies {
				return repository.ErrCopiesExceedTotal
			}
			book.AvailableCopies++
			book.Version++
		}
	}
	delete(f.records, recordID)
	return nil
}

// newTestService wires a service around a fakeRepo with a quiet logger and
// no SMTP host, so borrow receipts are skipped.
func newTestService(repo *fakeRepo, c *cache.Cache) *service {
	var cfg config.Config
	var wg sync.WaitGroup
	logger := jsonlog.New(io.Discard, jsonlog.LevelOff)
	return New(cfg, &wg, logger, repo, c, mailer.New("", 0, "", "", ""))
}
