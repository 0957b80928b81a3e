// File: internal/services/chat/history_test.go
package chat

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/medibot-health/go-medibot/internal/domain"
	"github.com/medibot-health/go-medibot/internal/repository/message"
	"github.com/medibot-health/go-medibot/internal/repository/session"
)

func newTestRecorder(t *testing.T) (*HistoryRecorder, session.SessionRepository, message.MessageRepository) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.ChatSession{}, &domain.Message{}))

	sessions := session.NewSessionRepository(db)
	messages := message.NewMessageRepository(db)
	return NewHistoryRecorder(DefaultConfig(), sessions, messages, testLogger{}), sessions, messages
}

func TestRecordCreatesSessionAndMessages(t *testing.T) {
	recorder, sessions, messages := newTestRecorder(t)
	ctx := context.Background()

	sessionID := recorder.Record(ctx, 1, "", "I have a headache", "Rest and hydrate.", "en")
	require.NotEmpty(t, sessionID)

	sess, err := sessions.FindBySessionID(ctx, 1, sessionID)
	require.NoError(t, err)
	assert.Equal(t, "I have a headache", sess.Title)
	assert.True(t, sess.IsActive)

	stored, err := messages.FindBySessionID(ctx, sess.ID)
	require.NoError(t, err)
	require.Len(t, stored, 2)
	assert.Equal(t, domain.MessageRoleUser, stored[0].Role)
	assert.Equal(t, "I have a headache", stored[0].Content)
	assert.Equal(t, domain.MessageRoleBot, stored[1].Role)
	assert.Equal(t, "Rest and hydrate.", stored[1].Content)
}

func TestRecordReusesSessionAcrossTurns(t *testing.T) {
	recorder, sessions, messages := newTestRecorder(t)
	ctx := context.Background()

	first := recorder.Record(ctx, 1, "", "first question", "first answer", "en")
	second := recorder.Record(ctx, 1, first, "second question", "second answer", "en")
	assert.Equal(t, first, second)

	sess, err := sessions.FindBySessionID(ctx, 1, first)
	require.NoError(t, err)

	stored, err := messages.FindBySessionID(ctx, sess.ID)
	require.NoError(t, err)
	require.Len(t, stored, 4, "two turns produce exactly four messages")

	wantRoles := []string{domain.MessageRoleUser, domain.MessageRoleBot, domain.MessageRoleUser, domain.MessageRoleBot}
	wantContent := []string{"first question", "first answer", "second question", "second answer"}
	for i := range stored {
		assert.Equal(t, wantRoles[i], stored[i].Role)
		assert.Equal(t, wantContent[i], stored[i].Content)
	}
}

func TestRecordAnonymousSkipsPersistence(t *testing.T) {
	recorder, _, messages := newTestRecorder(t)
	ctx := context.Background()

	sessionID := recorder.Record(ctx, 0, "", "hello", "hi", "en")
	assert.Empty(t, sessionID)

	count, err := messages.CountBySessionID(ctx, 1)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestRecordClientSuppliedSessionIDIsKept(t *testing.T) {
	recorder, sessions, _ := newTestRecorder(t)
	ctx := context.Background()

	got := recorder.Record(ctx, 7, "client-chosen-id", "question", "answer", "ta")
	assert.Equal(t, "client-chosen-id", got)

	sess, err := sessions.FindBySessionID(ctx, 7, "client-chosen-id")
	require.NoError(t, err)
	assert.Equal(t, "ta", sess.Language)
}

func TestRecordTruncatesLongTitle(t *testing.T) {
	recorder, sessions, _ := newTestRecorder(t)
	ctx := context.Background()

	long := "this is a very long opening message that should not become the whole session title"
	sessionID := recorder.Record(ctx, 1, "", long, "ok", "en")

	sess, err := sessions.FindBySessionID(ctx, 1, sessionID)
	require.NoError(t, err)
	assert.Equal(t, TruncateText(long, DefaultConfig().TitleLength), sess.Title)
	assert.LessOrEqual(t, len([]rune(sess.Title)), DefaultConfig().TitleLength)
}
