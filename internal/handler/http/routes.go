package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.Get("/logout", h.logout)

		r.Get("/posts", h.listPosts)
		r.Get("/posts-with-comments", h.listPostsWithComments)
		r.Get("/post/{postId}", h.getPost)
	})

	// routes requiring an authenticated session
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/user/{userId}", h.getUser)

		r.Post("/post", h.createPost)
		r.Delete("/post/{postId}", h.deletePost)

		r.Post("/comment", h.createComment)
		r.Delete("/comment/{commentId}", h.deleteComment)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
