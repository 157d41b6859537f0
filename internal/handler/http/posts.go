package http

import (
	"encoding/json"
	"net/http"

	"github.com/avdeyev/go-blog-api/internal/logger"
	"github.com/avdeyev/go-blog-api/internal/utils"
	"github.com/avdeyev/go-blog-api/models"
)

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	author, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user in context")
		writeError(w, ErrNoSessionToken)
		return
	}

	var request models.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	created, err := h.services.PostService.CreatePost(ctx, *author, request)
	if err != nil {
		log.Err(err).Msg("post creation failed")
		writeError(w, err)
		return
	}

	log.Debug().Int64("postId", created.PostID).Int64("userId", author.UserID).Msg("post created")

	utils.WriteJSON(w, created, http.StatusCreated)
}

// getPost returns a single post with its author summary and comments.
func (h *Handler) getPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	postID, err := pathID(r, "postId")
	if err != nil {
		log.Err(err).Msg("invalid post id")
		writeError(w, err)
		return
	}

	found, err := h.services.PostService.GetPost(ctx, postID)
	if err != nil {
		log.Err(err).Int64("postId", postID).Msg("post lookup failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, found, http.StatusOK)
}

// listPosts returns all posts with their author summaries, oldest first.
func (h *Handler) listPosts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	posts, err := h.services.PostService.ListPosts(ctx)
	if err != nil {
		log.Err(err).Msg("post listing failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, posts, http.StatusOK)
}

// listPostsWithComments returns all posts with author summaries and
// comments, oldest first.
func (h *Handler) listPostsWithComments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	posts, err := h.services.PostService.ListPostsWithComments(ctx)
	if err != nil {
		log.Err(err).Msg("post listing with comments failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, posts, http.StatusOK)
}

func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	actor, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user in context")
		writeError(w, ErrNoSessionToken)
		return
	}

	postID, err := pathID(r, "postId")
	if err != nil {
		log.Err(err).Msg("invalid post id")
		writeError(w, err)
		return
	}

	if err := h.services.PostService.DeletePost(ctx, *actor, postID); err != nil {
		log.Err(err).Int64("postId", postID).Msg("post deletion failed")
		writeError(w, err)
		return
	}

	log.Debug().Int64("postId", postID).Int64("userId", actor.UserID).Msg("post deleted")

	utils.WriteJSON(w, models.MessageResponse{Message: "post deleted"}, http.StatusOK)
}
