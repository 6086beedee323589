package ports

// Normalizer defines the interface for transcript normalization.
type Normalizer interface {
	Normalize(text string) string
}
