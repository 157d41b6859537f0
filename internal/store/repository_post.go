package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/avdeyev/go-blog-api/internal/logger"
	"github.com/avdeyev/go-blog-api/models"
)

// postRepository is the SQL-backed implementation of [PostRepository].
//
// Reads that the API exposes with related entities (author summary,
// comments) are resolved here: single posts via a JOIN with users, comment
// lists via one batched query over the selected post IDs.
type postRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPostRepository constructs a [PostRepository] backed by the provided
// database connection and logger.
func NewPostRepository(db *DB, logger *logger.Logger) PostRepository {
	logger.Debug().Msg("creating post repository")
	return &postRepository{
		db:     db,
		logger: logger,
	}
}

// CreatePost persists a new post and returns it with server-assigned fields
// (PostID, CreatedAt) populated.
//
// Error handling:
//   - foreign-key violation on user_id → [ErrUserNotFound]
//   - any other driver-level error → wrapped as "unexpected DB error"
func (r *postRepository) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	post.CreatedAt = time.Now().UTC()

	id, err := r.db.insertGetID(ctx, buildInsertPostQuery(r.db.builder, post), "post_id")
	if err != nil {
		log.Err(err).Str("func", "*postRepository.CreatePost").Msg("error inserting post")

		if r.db.classifier.IsForeignKeyViolation(err) {
			return models.Post{}, ErrUserNotFound
		}
		return models.Post{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	post.PostID = id
	return post, nil
}

// FindPostByID retrieves a single post together with its author summary.
// Comments are not loaded; use [postRepository.FindPostWithRelations] for
// the full read.
//
// Error handling:
//   - empty result set → [ErrPostNotFound]
func (r *postRepository) FindPostByID(ctx context.Context, postID int64) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectPostByIDQuery(r.db.builder, postID).ToSql()
	if err != nil {
		return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	found, err := scanPostWithAuthor(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Post{}, ErrPostNotFound
		}

		log.Err(err).Str("func", "*postRepository.FindPostByID").Msg("error scanning post row")
		return models.Post{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// FindPostWithRelations retrieves a post with its author summary and the
// full list of its comments, each comment carrying its own author summary.
func (r *postRepository) FindPostWithRelations(ctx context.Context, postID int64) (models.Post, error) {
	found, err := r.FindPostByID(ctx, postID)
	if err != nil {
		return models.Post{}, err
	}

	commentsByPost, err := r.findCommentsForPosts(ctx, []int64{found.PostID})
	if err != nil {
		return models.Post{}, err
	}

	found.Comments = commentsByPost[found.PostID]
	if found.Comments == nil {
		found.Comments = []models.Comment{}
	}

	return found, nil
}

// ListPostsWithAuthors retrieves every post with its author summary,
// ordered by creation (ascending post ID). Comments are not loaded.
func (r *postRepository) ListPostsWithAuthors(ctx context.Context) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectPostsWithAuthorsQuery(r.db.builder).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.ListPostsWithAuthors").Msg("error querying posts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	posts := []models.Post{}
	for rows.Next() {
		post, err := scanPostWithAuthor(rows)
		if err != nil {
			log.Err(err).Str("func", "*postRepository.ListPostsWithAuthors").Msg("error scanning post rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return posts, nil
}

// ListPostsWithComments retrieves every post with its author summary and
// comments. The comments of all posts are fetched in a single batched query
// and grouped in memory, so the whole read costs two round trips regardless
// of post count.
func (r *postRepository) ListPostsWithComments(ctx context.Context) ([]models.Post, error) {
	posts, err := r.ListPostsWithAuthors(ctx)
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return posts, nil
	}

	postIDs := make([]int64, 0, len(posts))
	for _, post := range posts {
		postIDs = append(postIDs, post.PostID)
	}

	commentsByPost, err := r.findCommentsForPosts(ctx, postIDs)
	if err != nil {
		return nil, err
	}

	for i := range posts {
		posts[i].Comments = commentsByPost[posts[i].PostID]
		if posts[i].Comments == nil {
			posts[i].Comments = []models.Comment{}
		}
	}

	return posts, nil
}

// DeletePost removes the post with the given ID. Comments referencing the
// post are removed by the schema's ON DELETE CASCADE.
//
// Error handling:
//   - no rows affected → [ErrPostNotFound]
func (r *postRepository) DeletePost(ctx context.Context, postID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeletePostQuery(r.db.builder, postID).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.DeletePost").Msg("error deleting post")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrPostNotFound
	}

	return nil
}

// findCommentsForPosts fetches the comments of the given posts in one query
// and groups them by post ID.
func (r *postRepository) findCommentsForPosts(ctx context.Context, postIDs []int64) (map[int64][]models.Comment, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCommentsByPostIDsQuery(r.db.builder, postIDs).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.findCommentsForPosts").Msg("error querying comments")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	commentsByPost := map[int64][]models.Comment{}
	for rows.Next() {
		var comment models.Comment
		var author models.UserSummary

		if err := rows.Scan(
			&comment.CommentID, &comment.PostID, &comment.UserID, &comment.Content, &comment.CreatedAt,
			&author.Username, &author.Email,
		); err != nil {
			log.Err(err).Str("func", "*postRepository.findCommentsForPosts").Msg("error scanning comment rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		comment.User = &author
		commentsByPost[comment.PostID] = append(commentsByPost[comment.PostID], comment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return commentsByPost, nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanPostWithAuthor(row rowScanner) (models.Post, error) {
	var post models.Post
	var author models.UserSummary

	if err := row.Scan(
		&post.PostID, &post.UserID, &post.Title, &post.Content, &post.CreatedAt,
		&author.Username, &author.Email,
	); err != nil {
		return models.Post{}, err
	}

	post.User = &author
	return post, nil
}
