package ports

import (
	"image"

	"github.com/baditaflorin/go_speech_wordcloud/internal/core/domain"
)

// WordCloudRenderer lays out a token list as a word cloud image.
type WordCloudRenderer interface {
	RenderWordCloud(tokens []string) (image.Image, error)
}

// ChartRenderer draws a frequency bar chart from ranked word counts.
type ChartRenderer interface {
	RenderChart(entries []domain.WordCount) (image.Image, error)
}
