package client

import "time"

// FallbackArticles returns the demo dataset shown when the API is
// unreachable, so the card layout stays demonstrable during outages.
func FallbackArticles() []Article {
	return []Article{
		{
			ID:           1,
			Title:        "Getting Started with React and TypeScript",
			Content:      "React with TypeScript provides excellent developer experience with type safety and better IDE support. In this comprehensive guide, we'll explore how to set up a new React project with TypeScript, configure essential tools, and implement best practices for scalable applications. Learn about component patterns, hook usage, and effective state management techniques.",
			Author:       "Alex Johnson",
			PublishTime:  time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
			CommentCount: 8,
			CreatedAt:    time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			ID:           2,
			Title:        "Modern Web Development Trends in 2024",
			Content:      "The web development landscape continues to evolve rapidly with new frameworks, tools, and methodologies emerging regularly. This article explores the most significant trends shaping the industry, including AI-assisted development, edge computing, progressive web apps, and the rise of micro-frontends. Stay ahead of the curve with these insights.",
			Author:       "Sarah Chen",
			PublishTime:  time.Date(2024, 1, 14, 14, 20, 0, 0, time.UTC),
			CommentCount: 15,
			CreatedAt:    time.Date(2024, 1, 14, 14, 20, 0, 0, time.UTC),
		},
		{
			ID:           3,
			Title:        "Building Scalable APIs with tRPC",
			Content:      "tRPC offers a fantastic developer experience for building type-safe APIs without the overhead of traditional REST or GraphQL approaches. Discover how to implement end-to-end type safety, handle complex data validation, and create maintainable API layers that grow with your application needs.",
			Author:       "Michael Rodriguez",
			PublishTime:  time.Date(2024, 1, 13, 9, 15, 0, 0, time.UTC),
			CommentCount: 3,
			CreatedAt:    time.Date(2024, 1, 13, 9, 15, 0, 0, time.UTC),
		},
	}
}
