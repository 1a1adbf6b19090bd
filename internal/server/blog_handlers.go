package server

import (
	"bytes"

	"github.com/gofiber/fiber/v2"

	"portfolio/internal/blog"
)

func renderBlog(c *fiber.Ctx, name string, data any) error {
	var buf bytes.Buffer
	if err := blog.Render(&buf, name, data); err != nil {
		return err
	}
	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}

// BlogIndex handles GET /blog and shows the three most recent posts.
func (s *Server) BlogIndex(c *fiber.Ctx) error {
	return renderBlog(c, "index.html", fiber.Map{
		"Posts": blog.Latest(3),
	})
}

// BlogAllPosts handles GET /blog/posts.
func (s *Server) BlogAllPosts(c *fiber.Ctx) error {
	return renderBlog(c, "all_posts.html", fiber.Map{
		"Posts": blog.Posts(),
	})
}

// BlogPostDetail handles GET /blog/posts/:slug.
func (s *Server) BlogPostDetail(c *fiber.Ctx) error {
	post, ok := blog.BySlug(c.Params("slug"))
	if !ok {
		return c.Status(fiber.StatusNotFound).SendString("Post not found")
	}
	return renderBlog(c, "post_detail.html", fiber.Map{
		"Post": post,
	})
}
