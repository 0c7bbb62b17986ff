// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Voronin

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/avoronin/go-note-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildListNotesQuery_SQLContainsParts(t *testing.T) {
	userID := int64(42)

	query, args, err := buildListNotesQuery(userID)
	require.NoError(t, err)

	// args checks
	require.Len(t, args, 1)
	require.Equal(t, userID, args[0])

	// query checks (contains parts)
	q := strings.ToLower(query)

	require.Contains(t, q, "select")
	require.Contains(t, q, "from notes")
	require.Contains(t, q, "where")
	require.Contains(t, q, "user_id")
	require.Contains(t, q, "order by is_pinned desc, created_at desc, note_id desc")

	// placeholder format should be $1 (Postgres)
	require.Contains(t, query, "$1")
}

func Test_buildListNotesQuery_SelectsAllExpectedColumns(t *testing.T) {
	query, _, err := buildListNotesQuery(1)
	require.NoError(t, err)

	q := strings.ToLower(query)

	for _, c := range noteColumns {
		require.Contains(t, q, c)
	}
}

func Test_buildSearchNotesQuery(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		wantPattern string
	}{
		{
			name:        "plain query is wrapped in wildcards",
			query:       "groceries",
			wantPattern: "%groceries%",
		},
		{
			name:        "query is lowercased",
			query:       "GrOcErIeS",
			wantPattern: "%groceries%",
		},
		{
			name:        "percent sign is escaped",
			query:       "100%",
			wantPattern: `%100\%%`,
		},
		{
			name:        "underscore is escaped",
			query:       "foo_bar",
			wantPattern: `%foo\_bar%`,
		},
		{
			name:        "backslash is escaped",
			query:       `a\b`,
			wantPattern: `%a\\b%`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildSearchNotesQuery(42, tt.query)
			require.NoError(t, err)

			// user_id plus one pattern per searched column
			require.Len(t, args, 3)
			assert.Equal(t, int64(42), args[0])
			assert.Equal(t, tt.wantPattern, args[1])
			assert.Equal(t, tt.wantPattern, args[2])

			q := strings.ToLower(query)
			assert.Contains(t, q, "lower(title) like")
			assert.Contains(t, q, "lower(content) like")
			assert.Contains(t, q, `escape '\'`)
		})
	}
}

func Test_buildUpdateNoteQuery(t *testing.T) {
	now := time.Now().UTC()
	title := "renamed"
	content := "new content"
	tags := []string{"a", "b"}

	tests := []struct {
		name     string
		update   models.NoteUpdate
		wantArgs []any
		wantSets []string
	}{
		{
			name:     "title only",
			update:   models.NoteUpdate{Title: &title},
			wantArgs: []any{now, title, int64(7), int64(42)},
			wantSets: []string{"updated_at", "title"},
		},
		{
			name:     "content only",
			update:   models.NoteUpdate{Content: &content},
			wantArgs: []any{now, content, int64(7), int64(42)},
			wantSets: []string{"updated_at", "content"},
		},
		{
			name:     "tags only",
			update:   models.NoteUpdate{Tags: &tags},
			wantArgs: []any{now, `["a","b"]`, int64(7), int64(42)},
			wantSets: []string{"updated_at", "tags"},
		},
		{
			name:     "all fields",
			update:   models.NoteUpdate{Title: &title, Content: &content, Tags: &tags},
			wantArgs: []any{now, title, content, `["a","b"]`, int64(7), int64(42)},
			wantSets: []string{"updated_at", "title", "content", "tags"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildUpdateNoteQuery(42, 7, tt.update, now)
			require.NoError(t, err)

			assert.Equal(t, tt.wantArgs, args)

			q := strings.ToLower(query)
			require.Contains(t, q, "update notes")
			for _, set := range tt.wantSets {
				require.Contains(t, q, set+" = $")
			}
			require.Contains(t, q, "note_id = $")
			require.Contains(t, q, "user_id = $")
			require.Contains(t, q, "returning")
		})
	}
}

func Test_escapeLike(t *testing.T) {
	assert.Equal(t, `plain`, escapeLike(`plain`))
	assert.Equal(t, `\%`, escapeLike(`%`))
	assert.Equal(t, `\_`, escapeLike(`_`))
	assert.Equal(t, `\\`, escapeLike(`\`))
	assert.Equal(t, `a\%b\_c\\d`, escapeLike(`a%b_c\d`))
}
