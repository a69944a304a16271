package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/Zachkp/cyber-portfolio/internal/contact"
)

var ErrNotFound = errors.New("not found")

// StoredMessage is a contact message kept in the outbox.
type StoredMessage struct {
	ID string `json:"id"`
	contact.Message
	CreatedAt time.Time `json:"created_at"`
}

// SaveMessage stores msg under a new id. It satisfies contact.Saver.
func (s *Store) SaveMessage(ctx context.Context, msg contact.Message) (string, error) {
	id := uuid.New().String()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO messages (id, name, email, body, created_at) VALUES (?, ?, ?, ?, ?)`,
		id, msg.Name, msg.Email, msg.Message, time.Now().Unix(),
	)
	if err != nil {
		return "", errors.Wrap(err, "insert message")
	}
	return id, nil
}

// Messages returns up to limit stored messages, newest first.
func (s *Store) Messages(ctx context.Context, limit int) ([]StoredMessage, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, email, body, created_at
		FROM messages
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, errors.Wrap(err, "query messages")
	}
	defer rows.Close()

	var msgs []StoredMessage
	for rows.Next() {
		var m StoredMessage
		var ts int64
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Message.Message, &ts); err != nil {
			return nil, errors.Wrap(err, "scan message")
		}
		m.CreatedAt = time.Unix(ts, 0)
		msgs = append(msgs, m)
	}
	return msgs, errors.Wrap(rows.Err(), "iterate messages")
}

// DeleteMessage removes one message. ErrNotFound means there was nothing to
// delete.
func (s *Store) DeleteMessage(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM messages WHERE id = ?`, id)
	if err != nil {
		return errors.Wrap(err, "delete message")
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
