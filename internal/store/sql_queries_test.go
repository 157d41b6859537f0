// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Avdeyev

package store

import (
	"strings"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/require"

	"github.com/avdeyev/go-blog-api/models"
)

var pgBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func Test_buildInsertUserQuery_SQLContainsParts(t *testing.T) {
	user := models.User{
		Username:     "billy",
		Email:        "billy@mail.com",
		PasswordHash: "hash",
	}

	query, args, err := buildInsertUserQuery(pgBuilder, user).ToSql()
	require.NoError(t, err)

	require.Len(t, args, 4)
	require.Equal(t, user.Username, args[0])
	require.Equal(t, user.Email, args[1])
	require.Equal(t, user.PasswordHash, args[2])

	q := strings.ToLower(query)

	require.Contains(t, q, "insert into users")
	require.Contains(t, q, "username")
	require.Contains(t, q, "email")
	require.Contains(t, q, "password_hash")
	require.Contains(t, q, "created_at")

	// placeholder format should be $1 (Postgres)
	require.Contains(t, query, "$1")
}

func Test_buildSelectUserByEmailQuery_SQLContainsParts(t *testing.T) {
	query, args, err := buildSelectUserByEmailQuery(pgBuilder, "billy@mail.com").ToSql()
	require.NoError(t, err)

	require.Len(t, args, 1)
	require.Equal(t, "billy@mail.com", args[0])

	q := strings.ToLower(query)

	require.Contains(t, q, "select")
	require.Contains(t, q, "from users")
	require.Contains(t, q, "where")
	require.Contains(t, q, "email")
}

func Test_buildSelectUserByEmailQuery_SQLitePlaceholders(t *testing.T) {
	sqliteBuilder := sq.StatementBuilder.PlaceholderFormat(sq.Question)

	query, _, err := buildSelectUserByEmailQuery(sqliteBuilder, "billy@mail.com").ToSql()
	require.NoError(t, err)

	require.Contains(t, query, "?")
	require.NotContains(t, query, "$1")
}

func Test_buildSelectPostByIDQuery_JoinsAuthor(t *testing.T) {
	query, args, err := buildSelectPostByIDQuery(pgBuilder, 10).ToSql()
	require.NoError(t, err)

	require.Len(t, args, 1)
	require.Equal(t, int64(10), args[0])

	q := strings.ToLower(query)

	require.Contains(t, q, "from posts p")
	require.Contains(t, q, "join users u on u.user_id = p.user_id")
	require.Contains(t, q, "p.post_id")
	require.Contains(t, q, "u.username")
	require.Contains(t, q, "u.email")

	// the author's credentials must never be selected
	require.NotContains(t, q, "password_hash")
}

func Test_buildSelectPostsWithAuthorsQuery_OrdersByID(t *testing.T) {
	query, args, err := buildSelectPostsWithAuthorsQuery(pgBuilder).ToSql()
	require.NoError(t, err)

	require.Empty(t, args)

	q := strings.ToLower(query)

	require.Contains(t, q, "order by p.post_id")
	require.NotContains(t, q, "password_hash")
}

func Test_buildSelectCommentsByPostIDsQuery_BatchesIDs(t *testing.T) {
	query, args, err := buildSelectCommentsByPostIDsQuery(pgBuilder, []int64{10, 11, 12}).ToSql()
	require.NoError(t, err)

	require.Len(t, args, 3)

	q := strings.ToLower(query)

	require.Contains(t, q, "from comments c")
	require.Contains(t, q, "join users u on u.user_id = c.user_id")
	require.Contains(t, q, "c.post_id in")
	require.Contains(t, q, "order by c.post_id, c.comment_id")
}

func Test_buildDeleteQueries_SQLContainsParts(t *testing.T) {
	query, args, err := buildDeletePostQuery(pgBuilder, 10).ToSql()
	require.NoError(t, err)
	require.Len(t, args, 1)
	require.Contains(t, strings.ToLower(query), "delete from posts")

	query, args, err = buildDeleteCommentQuery(pgBuilder, 100).ToSql()
	require.NoError(t, err)
	require.Len(t, args, 1)
	require.Contains(t, strings.ToLower(query), "delete from comments")
}
