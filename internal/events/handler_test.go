package events

import (
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type recordedNotification struct {
	To       string
	Subject  string
	Template string
}

type recordingNotifier struct {
	sent []recordedNotification
}

func (n *recordingNotifier) NotifyFromTemplate(to string, subject string, templateName string, _ any) error {
	n.sent = append(n.sent, recordedNotification{To: to, Subject: subject, Template: templateName})
	return nil
}

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func(db *sql.DB) func() { return func() { _ = db.Close() } }(db))

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

func consume(params *EventParams, msgs ...*message.Message) {
	ch := make(chan *message.Message, len(msgs))
	for _, msg := range msgs {
		ch <- msg
	}
	close(ch)
	HandleEvents(params, ch)
}

func TestAlertRaisedPersistsAndNotifies(t *testing.T) {
	db, mock := newMockDB(t)
	notify := &recordingNotifier{}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "notification_records"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	msg, err := NewAlertMessage(AlertRaised{
		Title: "High flagged ad volume",
		Body:  "42 flagged ads in the latest refresh",
		Kind:  "moderation",
	})
	require.NoError(t, err)

	consume(&EventParams{DB: db, Notifier: notify, AlertRecipient: "oncall@example.com"}, msg)

	require.Len(t, notify.sent, 1)
	assert.Equal(t, "oncall@example.com", notify.sent[0].To)
	assert.Equal(t, "High flagged ad volume", notify.sent[0].Subject)
	assert.Equal(t, "alert", notify.sent[0].Template)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAlertRaisedWithoutRecipientSkipsEmail(t *testing.T) {
	db, mock := newMockDB(t)
	notify := &recordingNotifier{}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "notification_records"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	msg, err := NewAlertMessage(AlertRaised{Title: "t", Body: "b", Kind: "k"})
	require.NoError(t, err)

	consume(&EventParams{DB: db, Notifier: notify}, msg)

	assert.Empty(t, notify.sent)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRefreshCompletedIsAcked(t *testing.T) {
	msg, err := NewRefreshMessage(RefreshCompleted{Resource: "users", Records: 12, DurationMs: 30})
	require.NoError(t, err)

	consume(&EventParams{}, msg)

	select {
	case <-msg.Acked():
	default:
		t.Fatal("expected message to be acked")
	}
}

func TestUnknownEventKindIsIgnored(t *testing.T) {
	msg := message.NewMessage("1", []byte(`{"kind":"mystery","payload":{}}`))

	consume(&EventParams{}, msg)

	select {
	case <-msg.Acked():
	default:
		t.Fatal("expected message to be acked")
	}
}

func TestMalformedEventIsAcked(t *testing.T) {
	msg := message.NewMessage("1", []byte(`not-json`))

	consume(&EventParams{}, msg)

	select {
	case <-msg.Acked():
	default:
		t.Fatal("expected message to be acked")
	}
}
