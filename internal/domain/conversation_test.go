// File: internal/domain/conversation_test.go
package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConversation_TitleTruncation(t *testing.T) {
	short := NewConversation("user-1", "Hi!")
	assert.Equal(t, "Hi!", short.Title)

	long := NewConversation("user-1", strings.Repeat("a", 31))
	assert.Equal(t, strings.Repeat("a", 30)+"...", long.Title)

	exact := NewConversation("user-1", strings.Repeat("b", 30))
	assert.Equal(t, strings.Repeat("b", 30), exact.Title)
}

func TestTruncateTitle_MultiByte(t *testing.T) {
	// Truncation counts characters, not bytes.
	title := TruncateTitle(strings.Repeat("ü", 35), 30)
	assert.Equal(t, strings.Repeat("ü", 30)+"...", title)
}

func TestNewConversation_Timestamps(t *testing.T) {
	conv := NewConversation("user-1", "seed")
	assert.Equal(t, conv.CreatedAt, conv.UpdatedAt)
	assert.NotEmpty(t, conv.ID)
	assert.Empty(t, conv.Messages)
	assert.Nil(t, conv.ParentConversationID)
	assert.Nil(t, conv.BranchPointMessageID)
}

func TestAppend_OrderAndUpdatedAt(t *testing.T) {
	conv := NewConversation("user-1", "seed")
	created := conv.CreatedAt

	userTurn := NewMessageTurn(RoleUser, "question")
	assistantTurn := NewMessageTurn(RoleAssistant, "answer")
	conv.Append(userTurn, assistantTurn)

	require.Len(t, conv.Messages, 2)
	assert.Equal(t, RoleUser, conv.Messages[0].Role)
	assert.Equal(t, RoleAssistant, conv.Messages[1].Role)
	assert.False(t, conv.UpdatedAt.Before(created))
}

func TestIndexOfMessage(t *testing.T) {
	conv := NewConversation("user-1", "seed")
	m1 := NewMessageTurn(RoleUser, "one")
	m2 := NewMessageTurn(RoleAssistant, "two")
	conv.Append(m1, m2)

	assert.Equal(t, 0, conv.IndexOfMessage(m1.ID))
	assert.Equal(t, 1, conv.IndexOfMessage(m2.ID))
	assert.Equal(t, -1, conv.IndexOfMessage("no-such-id"))
}

func TestBranchAt_PrefixCopy(t *testing.T) {
	conv := NewConversation("user-1", "parent topic")
	m1 := NewMessageTurn(RoleUser, "one")
	m2 := NewMessageTurn(RoleAssistant, "two")
	m3 := NewMessageTurn(RoleUser, "three")
	conv.Append(m1, m2, m3)

	branch := conv.BranchAt(1)

	require.Len(t, branch.Messages, 2)
	assert.Equal(t, m1.ID, branch.Messages[0].ID)
	assert.Equal(t, m2.ID, branch.Messages[1].ID)
	assert.Equal(t, conv.UserID, branch.UserID)
	assert.NotEqual(t, conv.ID, branch.ID)
	require.NotNil(t, branch.ParentConversationID)
	assert.Equal(t, conv.ID, *branch.ParentConversationID)
	require.NotNil(t, branch.BranchPointMessageID)
	assert.Equal(t, m2.ID, *branch.BranchPointMessageID)
	assert.Equal(t, branch.CreatedAt, branch.UpdatedAt)
}

func TestBranchAt_TitleFormat(t *testing.T) {
	conv := NewConversation("user-1", "What is the capital of Sweden?")
	m1 := NewMessageTurn(RoleUser, "one")
	conv.Append(m1)

	branch := conv.BranchAt(0)
	assert.Equal(t, "Branch from 'What is the capital ...' @ msg 1", branch.Title)
}

func TestBranchAt_CopyIsolation(t *testing.T) {
	conv := NewConversation("user-1", "parent")
	m1 := NewMessageTurn(RoleUser, "one")
	m2 := NewMessageTurn(RoleAssistant, "two")
	m3 := NewMessageTurn(RoleUser, "three")
	conv.Append(m1, m2, m3)

	branch := conv.BranchAt(1)
	branch.Append(NewMessageTurn(RoleUser, "branch only"))

	// Appending to the branch must never leak into the parent's sequence.
	require.Len(t, conv.Messages, 3)
	assert.Equal(t, m3.ID, conv.Messages[2].ID)
	require.Len(t, branch.Messages, 3)
	assert.Equal(t, "branch only", branch.Messages[2].Content)
}
