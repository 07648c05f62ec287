package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/passvault/internal/common"
	"github.com/dmitrijs2005/passvault/internal/cryptox"
	"github.com/dmitrijs2005/passvault/internal/logging"
	"github.com/dmitrijs2005/passvault/internal/server/models"
	"github.com/dmitrijs2005/passvault/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// DecryptFailedSentinel replaces the secret of a record that could not be
// decrypted. One bad record never aborts the rest of a listing.
const DecryptFailedSentinel = "[decryption failed]"

// RecordService implements credential-record CRUD on top of the cipher.
// The secret value crosses the cipher exactly once per write (encrypt) and
// once per read (decrypt); the repository layer only ever sees envelopes.
type RecordService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	cipher      *cryptox.Cipher
	logger      logging.Logger
}

// NewRecordService constructs a RecordService.
func NewRecordService(db *sql.DB, m repomanager.RepositoryManager, cipher *cryptox.Cipher, l logging.Logger) *RecordService {
	return &RecordService{
		db:          db,
		repomanager: m,
		cipher:      cipher,
		logger:      l.With("module", "record_service"),
	}
}

// Create encrypts the secret and stores a new record owned by userID.
func (s *RecordService) Create(ctx context.Context, userID string, record *models.Record) (*models.Record, error) {
	envelope, err := s.cipher.Encrypt(record.Secret)
	if err != nil {
		return nil, fmt.Errorf("error encrypting secret: %w", err)
	}

	record.ID = uuid.NewString()
	record.UserID = userID
	record.EncryptedSecret = envelope

	repo := s.repomanager.Records(s.db)
	created, err := repo.Create(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("error creating record: %w", err)
	}
	return created, nil
}

// List returns all of the user's records with secrets decrypted. A record
// that fails to decrypt gets the sentinel value and a warning in the log;
// the remaining records are unaffected.
func (s *RecordService) List(ctx context.Context, userID string) ([]*models.Record, error) {
	repo := s.repomanager.Records(s.db)

	items, err := repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing records: %w", err)
	}

	for _, item := range items {
		s.decryptInto(ctx, item)
	}
	return items, nil
}

// Get returns a single owned record with its secret decrypted (or the
// sentinel on decryption failure).
func (s *RecordService) Get(ctx context.Context, userID, id string) (*models.Record, error) {
	repo := s.repomanager.Records(s.db)

	item, err := repo.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error loading record: %w", err)
	}

	s.decryptInto(ctx, item)
	return item, nil
}

// UpdateSecret re-encrypts and replaces the secret of an owned record.
func (s *RecordService) UpdateSecret(ctx context.Context, userID, id, newSecret string) error {
	envelope, err := s.cipher.Encrypt(newSecret)
	if err != nil {
		return fmt.Errorf("error encrypting secret: %w", err)
	}

	if err := s.repomanager.Records(s.db).UpdateSecret(ctx, userID, id, envelope); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return err
		}
		return fmt.Errorf("error updating record: %w", err)
	}
	return nil
}

// Delete removes an owned record.
func (s *RecordService) Delete(ctx context.Context, userID, id string) error {
	if err := s.repomanager.Records(s.db).Delete(ctx, userID, id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return err
		}
		return fmt.Errorf("error deleting record: %w", err)
	}
	return nil
}

// decryptInto fills item.Secret from the envelope, degrading to the
// sentinel on failure.
func (s *RecordService) decryptInto(ctx context.Context, item *models.Record) {
	plaintext, err := s.cipher.Decrypt(item.EncryptedSecret)
	if err != nil {
		s.logger.Warn(ctx, "record secret could not be decrypted", "record_id", item.ID)
		item.Secret = DecryptFailedSentinel
	} else {
		item.Secret = plaintext
	}
	item.EncryptedSecret = ""
}
