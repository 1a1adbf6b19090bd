// Package blog serves the static blog fragment: a fixed in-memory post set
// rendered server-side. It shares nothing with the portfolio content store.
package blog

import (
	"sort"
	"time"
)

// Post is a static blog entry.
type Post struct {
	Slug    string
	Image   string
	Author  string
	Date    time.Time
	Title   string
	Excerpt string
	Content string
}

var allPosts = []Post{
	{
		Slug:    "code-in-python",
		Image:   "python1.jpeg",
		Author:  "Zafar Aftab",
		Date:    time.Date(2024, 11, 19, 0, 0, 0, 0, time.UTC),
		Title:   "Coding in Python",
		Excerpt: "Python is a remarkable programming language that stands out for its elegance, versatility, and power.",
		Content: "Python is a versatile, easy-to-learn programming language that emphasizes readability and simplicity. " +
			"It is widely used for web development, data analysis, machine learning, and automation. " +
			"Its clean syntax, dynamic typing, and extensive library ecosystem make it a go-to language " +
			"for beginners and experienced developers alike.",
	},
	{
		Slug:    "backend-development-using-django",
		Image:   "django1.jpeg",
		Author:  "Zafar Aftab",
		Date:    time.Date(2024, 11, 19, 0, 0, 0, 0, time.UTC),
		Title:   "Backend Development using Django",
		Excerpt: "Django is a high-level Python web framework that enables you to build robust, scalable, and maintainable backend systems for web applications.",
		Content: "Django is a high-level Python web framework that allows developers to quickly build robust, scalable, " +
			"and secure web applications. It follows the Model-View-Template architectural pattern and provides " +
			"a clean and pragmatic design for creating web applications.",
	},
	{
		Slug:    "cloud-computing-using-aws",
		Image:   "aws.jpg",
		Author:  "Zafar Aftab",
		Date:    time.Date(2024, 11, 19, 0, 0, 0, 0, time.UTC),
		Title:   "Cloud Computing Using AWS",
		Excerpt: "Amazon Web Services (AWS) is one of the leading platforms for cloud computing, offering a wide range of services to build, deploy, and scale applications efficiently.",
		Content: "Cloud computing is the delivery of computing services such as servers, storage, databases, networking, " +
			"and analytics over the internet. Instead of owning their own data centers, businesses can rent access " +
			"to anything from applications to storage from a provider like Amazon Web Services.",
	},
}

// Posts returns every post in declaration order.
func Posts() []Post {
	out := make([]Post, len(allPosts))
	copy(out, allPosts)
	return out
}

// Latest returns up to n posts, most recent first.
func Latest(n int) []Post {
	sorted := Posts()
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}

// BySlug returns the post with the given slug, if any.
func BySlug(slug string) (Post, bool) {
	for _, post := range allPosts {
		if post.Slug == slug {
			return post, true
		}
	}
	return Post{}, false
}
