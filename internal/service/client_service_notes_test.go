// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Voronin

package service

import (
	"context"
	"testing"

	"github.com/avoronin/go-note-keeper/internal/adapter"
	"github.com/avoronin/go-note-keeper/internal/logger"
	"github.com/avoronin/go-note-keeper/internal/mock"
	"github.com/avoronin/go-note-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestClientNoteSvc(t *testing.T, ctrl *gomock.Controller) (*clientNoteService, *mock.MockServerAdapter) {
	t.Helper()

	mockAdapter := mock.NewMockServerAdapter(ctrl)
	svc := NewClientNoteService(mockAdapter, logger.Nop()).(*clientNoteService)
	return svc, mockAdapter
}

// ── List / Search ───────────────────────────────────────────────────────────

func TestClientNoteService_List_Delegates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestClientNoteSvc(t, ctrl)
	ctx := context.Background()

	want := []models.Note{
		{NoteID: 2, Title: "pinned", IsPinned: true},
		{NoteID: 1, Title: "plain"},
	}
	mockAdapter.EXPECT().ListNotes(ctx).Return(want, nil)

	got, err := svc.List(ctx)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestClientNoteService_Search_EmptyQueryRejectedLocally(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestClientNoteSvc(t, ctrl)

	_, err := svc.Search(context.Background(), "   ")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidationEmptyQuery)
}

func TestClientNoteService_Search_Delegates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestClientNoteSvc(t, ctrl)
	ctx := context.Background()

	want := []models.Note{{NoteID: 7, Title: "groceries"}}
	mockAdapter.EXPECT().SearchNotes(ctx, "groceries").Return(want, nil)

	got, err := svc.Search(ctx, "groceries")

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// ── Create ──────────────────────────────────────────────────────────────────

func TestClientNoteService_Create_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestClientNoteSvc(t, ctrl)
	ctx := context.Background()

	note := models.Note{Title: "groceries", Content: "milk, eggs"}
	created := note
	created.NoteID = 7
	mockAdapter.EXPECT().CreateNote(ctx, note).Return(created, nil)

	got, err := svc.Create(ctx, note)

	require.NoError(t, err)
	assert.Equal(t, int64(7), got.NoteID)
}

func TestClientNoteService_Create_EmptyTitle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestClientNoteSvc(t, ctrl)

	_, err := svc.Create(context.Background(), models.Note{Title: "  ", Content: "body"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidationEmptyTitle)
}

func TestClientNoteService_Create_EmptyContent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestClientNoteSvc(t, ctrl)

	_, err := svc.Create(context.Background(), models.Note{Title: "groceries"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidationEmptyContent)
}

// ── Update ──────────────────────────────────────────────────────────────────

func TestClientNoteService_Update_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestClientNoteSvc(t, ctrl)
	ctx := context.Background()

	title := "renamed"
	update := models.NoteUpdate{Title: &title}
	mockAdapter.EXPECT().UpdateNote(ctx, int64(7), update).Return(models.Note{NoteID: 7, Title: "renamed"}, nil)

	got, err := svc.Update(ctx, 7, update)

	require.NoError(t, err)
	assert.Equal(t, "renamed", got.Title)
}

func TestClientNoteService_Update_EmptyUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestClientNoteSvc(t, ctrl)

	_, err := svc.Update(context.Background(), 7, models.NoteUpdate{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidationEmptyUpdate)
}

func TestClientNoteService_Update_BadNoteID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestClientNoteSvc(t, ctrl)

	title := "renamed"
	_, err := svc.Update(context.Background(), 0, models.NoteUpdate{Title: &title})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidNoteID)
}

func TestClientNoteService_Update_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestClientNoteSvc(t, ctrl)
	ctx := context.Background()

	title := "renamed"
	update := models.NoteUpdate{Title: &title}
	mockAdapter.EXPECT().UpdateNote(ctx, int64(7), update).Return(models.Note{}, adapter.ErrNotFound)

	_, err := svc.Update(ctx, 7, update)

	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrNotFound)
}

// ── Delete / TogglePin ──────────────────────────────────────────────────────

func TestClientNoteService_Delete_Delegates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestClientNoteSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().DeleteNote(ctx, int64(7)).Return(nil)

	require.NoError(t, svc.Delete(ctx, 7))
}

func TestClientNoteService_TogglePin_Delegates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestClientNoteSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().TogglePin(ctx, int64(7)).Return(models.Note{NoteID: 7, IsPinned: true}, nil)

	got, err := svc.TogglePin(ctx, 7)

	require.NoError(t, err)
	assert.True(t, got.IsPinned)
}
