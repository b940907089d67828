package posts

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/postforge/server/api/rest/pagination"
	"github.com/postforge/server/internal/auth"
	"github.com/postforge/server/internal/errors"
	"github.com/postforge/server/internal/platforms"
	"github.com/postforge/server/internal/publisher"
	"github.com/postforge/server/internal/ratelimit"
	"github.com/postforge/server/internal/tiers"
	"github.com/postforge/server/postforge/connections"
	"github.com/postforge/server/postforge/posts"
	"github.com/postforge/server/postforge/users"
)

// Handlers carries the collaborators every post operation needs
type Handlers struct {
	PostRepo  *posts.Repository
	UserRepo  *users.Repository
	ConnRepo  *connections.Repository
	Publisher *publisher.Service
	Limiter   *ratelimit.PostLimiter
	Vault     *posts.ContentVault
}

// CreatePostHandler godoc
// @Summary Create a post
// @Description Record a post and optionally publish it now or schedule it. Only length-and-hash metadata is stored.
// @Tags posts
// @Accept json
// @Produce json
// @Param request body CreateRequest true "Post"
// @Success 201 {object} PostResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 429 {object} errors.ErrorResponse
// @Router /api/v1/posts [post]
// @Security BearerAuth
func (h *Handlers) CreatePostHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			errors.Unauthorized(c, "")
			return
		}

		var req CreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		user, err := h.UserRepo.FindByID(c.Request.Context(), userID)
		if err != nil {
			errors.NotFound(c, "user")
			return
		}

		tier := tiers.DefinitionFor(user.Tier)

		for _, key := range req.Platforms {
			if !platforms.Supported(key) {
				errors.BadRequest(c, "unknown platform: "+key, nil)
				return
			}

			if !tier.Platforms.Allows(key) {
				errors.Forbidden(c, "platform not available on your tier: "+key)
				return
			}
		}

		if req.ScheduledFor != nil {
			if !tiers.HasFeature(user.Tier, tiers.FeatureSchedulePosts) {
				errors.Forbidden(c, "scheduling requires a pro or ultimate subscription")
				return
			}

			if !req.ScheduledFor.After(time.Now()) {
				errors.BadRequest(c, "scheduled_for must be in the future", nil)
				return
			}
		}

		// drafts don't consume the posting budget
		if req.PublishNow || req.ScheduledFor != nil {
			allowed, _, err := h.Limiter.Allow(c.Request.Context(), userID, user.Tier)
			if err != nil {
				errors.InternalError(c, "rate limit check failed", err)
				return
			}

			if !allowed {
				errors.TooManyRequests(c, "posting limit reached for your tier, try again later")
				return
			}
		}

		post, err := h.PostRepo.Create(c.Request.Context(), userID, posts.CreatePostRequest{
			Content:      req.Content,
			Platforms:    req.Platforms,
			ContentMode:  req.ContentMode,
			AIGenerated:  req.AIGenerated,
			ScheduledFor: req.ScheduledFor,
		})

		if err != nil {
			errors.InternalError(c, "failed to create post", err)
			return
		}

		if req.ScheduledFor != nil {
			h.Vault.Hold(post.ID, req.Content, *req.ScheduledFor)
			c.JSON(http.StatusCreated, PostResponse{Post: post})
			return
		}

		if !req.PublishNow {
			c.JSON(http.StatusCreated, PostResponse{Post: post})
			return
		}

		post, failures := h.publish(c, post, req.Content)
		if post == nil {
			return
		}

		c.JSON(http.StatusCreated, PostResponse{Post: post, Failures: failures})
	}
}

// PublishPostHandler godoc
// @Summary Publish a post
// @Description Publish a draft or failed post. The resubmitted content must match the recorded hash.
// @Tags posts
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param request body PublishRequest true "Content"
// @Success 200 {object} PostResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 429 {object} errors.ErrorResponse
// @Router /api/v1/posts/{id}/publish [post]
// @Security BearerAuth
func (h *Handlers) PublishPostHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			errors.Unauthorized(c, "")
			return
		}

		postID, ok := errors.ValidatePathUUID(c, "id")
		if !ok {
			return
		}

		var req PublishRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		post, err := h.PostRepo.Get(c.Request.Context(), postID, userID)
		if err != nil {
			errors.NotFound(c, "post")
			return
		}

		if post.Status == posts.StatusPublished {
			errors.InvalidOperation(c, "post is already published")
			return
		}

		// the stored hash is the only record of what this post said;
		// resubmitted text has to match it
		_, hash := posts.ContentMetadata(req.Content)
		if hash != post.ContentHash {
			errors.BadRequest(c, "content does not match the recorded post", nil)
			return
		}

		user, err := h.UserRepo.FindByID(c.Request.Context(), userID)
		if err != nil {
			errors.NotFound(c, "user")
			return
		}

		allowed, _, err := h.Limiter.Allow(c.Request.Context(), userID, user.Tier)
		if err != nil {
			errors.InternalError(c, "rate limit check failed", err)
			return
		}

		if !allowed {
			errors.TooManyRequests(c, "posting limit reached for your tier, try again later")
			return
		}

		post, failures := h.publish(c, post, req.Content)
		if post == nil {
			return
		}

		c.JSON(http.StatusOK, PostResponse{Post: post, Failures: failures})
	}
}

// ListPostsHandler godoc
// @Summary List posts
// @Tags posts
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {object} ListResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /api/v1/posts [get]
// @Security BearerAuth
func (h *Handlers) ListPostsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			errors.Unauthorized(c, "")
			return
		}

		limit, _ := strconv.Atoi(c.Query("limit"))   //nolint:errcheck
		offset, _ := strconv.Atoi(c.Query("offset")) //nolint:errcheck
		params := pagination.DefaultParams(limit, offset, 20, 100)

		list, total, err := h.PostRepo.List(c.Request.Context(), userID, params.Limit, params.Offset)
		if err != nil {
			errors.InternalError(c, "failed to list posts", err)
			return
		}

		if list == nil {
			list = []posts.Post{}
		}

		c.JSON(http.StatusOK, ListResponse{
			Posts:      list,
			Pagination: pagination.NewMeta(params, total),
		})
	}
}

// GetPostHandler godoc
// @Summary Get a post
// @Tags posts
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} PostResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/v1/posts/{id} [get]
// @Security BearerAuth
func (h *Handlers) GetPostHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			errors.Unauthorized(c, "")
			return
		}

		postID, ok := errors.ValidatePathUUID(c, "id")
		if !ok {
			return
		}

		post, err := h.PostRepo.Get(c.Request.Context(), postID, userID)
		if err != nil {
			errors.NotFound(c, "post")
			return
		}

		c.JSON(http.StatusOK, PostResponse{Post: post})
	}
}

// DeletePostHandler godoc
// @Summary Delete a post
// @Tags posts
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/v1/posts/{id} [delete]
// @Security BearerAuth
func (h *Handlers) DeletePostHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			errors.Unauthorized(c, "")
			return
		}

		postID, ok := errors.ValidatePathUUID(c, "id")
		if !ok {
			return
		}

		if err := h.PostRepo.Delete(c.Request.Context(), postID, userID); err != nil {
			errors.NotFound(c, "post")
			return
		}

		h.Vault.Discard(postID)

		c.JSON(http.StatusOK, MessageResponse{Message: "post deleted"})
	}
}

// publishes to the post's platforms and records the outcome. Returns nil
// when the HTTP response has already been written.
func (h *Handlers) publish(c *gin.Context, post *posts.Post, content string) (*posts.Post, map[string]string) {
	postIDs, failures := h.Publisher.PublishAll(
		c.Request.Context(),
		h.ConnRepo,
		post.UserID,
		post.Platforms,
		content,
	)

	if len(postIDs) > 0 {
		updated, err := h.PostRepo.MarkPublished(c.Request.Context(), post.ID, postIDs)
		if err != nil {
			errors.InternalError(c, "failed to record publication", err)
			return nil, nil
		}

		return updated, failures
	}

	message := "all platforms failed"

	for _, failure := range failures {
		message = failure
		break
	}

	updated, err := h.PostRepo.MarkFailed(c.Request.Context(), post.ID, message)
	if err != nil {
		errors.InternalError(c, "failed to record failure", err)
		return nil, nil
	}

	return updated, failures
}
