package imagegen

import (
	"context"
	"errors"
)

// Generation errors.
var (
	// ErrNoImage indicates the provider returned no image payload.
	ErrNoImage = errors.New("imagegen: no image data in response")
)

// Image size and quality options, mirroring what DALL-E 3 accepts.
const (
	SizeSquare    = "1024x1024"
	SizePortrait  = "1024x1792"
	SizeLandscape = "1792x1024"

	QualityStandard = "standard"
	QualityHD       = "hd"
)

// Request describes one illustration to generate.
type Request struct {
	Prompt  string
	Size    string
	Quality string
}

// Result is the generated image.
type Result struct {
	Data          []byte
	RevisedPrompt string
}

// Client generates one image per call.
type Client interface {
	Generate(ctx context.Context, req Request) (*Result, error)
}
