package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"blog-backend/internal/shared/pathparam"
	"blog-backend/internal/shared/response"
	"blog-backend/pkg/logger"
)

// AuthorLookup fetches the author id projection of a resource.
// found = false when the resource does not exist; err only on store failure.
type AuthorLookup interface {
	FindAuthorID(ctx context.Context, id int) (authorID int, found bool, err error)
}

// PostOwner allows the request through iff the authenticated identity owns the
// post named by the validated {id} segment. A missing post is a deny, not a
// 404: the guard does access control, not existence reporting.
func PostOwner(posts AuthorLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			response.Unauthorized(c, "Authorization required.")
			c.Abort()
			return
		}

		postID := pathparam.Int(c, "id")
		authorID, found, err := posts.FindAuthorID(c.Request.Context(), postID)
		if err != nil {
			logger.Error("post ownership lookup failed", err)
			response.InternalServerError(c, "Server error, try later.")
			c.Abort()
			return
		}

		if !found || authorID != user.ID {
			response.Unauthorized(c, "Unauthorized, owner only can modify post.")
			c.Abort()
			return
		}

		c.Next()
	}
}

// CommentOwner allows the comment's author, and also the author of the parent
// post: post authors may moderate comments on their own posts.
func CommentOwner(posts, comments AuthorLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			response.Unauthorized(c, "Authorization required.")
			c.Abort()
			return
		}

		commentAuthor, commentFound, err := comments.FindAuthorID(c.Request.Context(), pathparam.Int(c, "commentId"))
		if err != nil {
			logger.Error("comment ownership lookup failed", err)
			response.InternalServerError(c, "Server error, try later.")
			c.Abort()
			return
		}

		postAuthor, postFound, err := posts.FindAuthorID(c.Request.Context(), pathparam.Int(c, "id"))
		if err != nil {
			logger.Error("post ownership lookup failed", err)
			response.InternalServerError(c, "Server error, try later.")
			c.Abort()
			return
		}

		isCommentOwner := commentFound && commentAuthor == user.ID
		isPostOwner := postFound && postAuthor == user.ID

		if !isCommentOwner && !isPostOwner {
			response.Unauthorized(c, "Unauthorized, owner only can modify comment.")
			c.Abort()
			return
		}

		c.Next()
	}
}

// ProfileOwner restricts profile mutations to the profile's own user.
func ProfileOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			response.Unauthorized(c, "Authorization required.")
			c.Abort()
			return
		}

		if user.ID != pathparam.Int(c, "id") {
			response.Unauthorized(c, "Unauthorized, you can only modify your profile.")
			c.Abort()
			return
		}

		c.Next()
	}
}
