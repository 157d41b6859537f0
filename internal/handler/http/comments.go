package http

import (
	"encoding/json"
	"net/http"

	"github.com/avdeyev/go-blog-api/internal/logger"
	"github.com/avdeyev/go-blog-api/internal/utils"
	"github.com/avdeyev/go-blog-api/models"
)

func (h *Handler) createComment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	author, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user in context")
		writeError(w, ErrNoSessionToken)
		return
	}

	var request models.CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	created, err := h.services.CommentService.CreateComment(ctx, *author, request)
	if err != nil {
		log.Err(err).Int64("postId", request.PostID).Msg("comment creation failed")
		writeError(w, err)
		return
	}

	log.Debug().Int64("commentId", created.CommentID).Int64("postId", created.PostID).Msg("comment created")

	utils.WriteJSON(w, created, http.StatusOK)
}

func (h *Handler) deleteComment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	actor, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user in context")
		writeError(w, ErrNoSessionToken)
		return
	}

	commentID, err := pathID(r, "commentId")
	if err != nil {
		log.Err(err).Msg("invalid comment id")
		writeError(w, err)
		return
	}

	if err := h.services.CommentService.DeleteComment(ctx, *actor, commentID); err != nil {
		log.Err(err).Int64("commentId", commentID).Msg("comment deletion failed")
		writeError(w, err)
		return
	}

	log.Debug().Int64("commentId", commentID).Int64("userId", actor.UserID).Msg("comment deleted")

	utils.WriteJSON(w, models.MessageResponse{Message: "comment deleted"}, http.StatusOK)
}
