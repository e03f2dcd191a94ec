package quizapi

import (
	"net/url"
	"strings"
)

// ArticlePrefix is the shape every accepted article URL starts with.
const ArticlePrefix = "https://en.wikipedia.org/wiki/"

// IsArticleURL reports whether raw looks like an English Wikipedia article link.
func IsArticleURL(raw string) bool {
	return strings.HasPrefix(raw, ArticlePrefix)
}

// TopicURL builds the article link for a related topic.
func TopicURL(topic string) string {
	return ArticlePrefix + url.PathEscape(topic)
}
