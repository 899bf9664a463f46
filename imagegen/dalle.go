package imagegen

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// DALLE implements Client with DALL-E 3.
type DALLE struct {
	Opts []option.RequestOption
}

// NewDALLE builds a DALL-E client for the given API key.
func NewDALLE(apiKey, baseURL string) (*DALLE, error) {
	if apiKey == "" {
		return nil, errors.New("openai api key missing")
	}
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &DALLE{Opts: opts}, nil
}

func (d *DALLE) Generate(ctx context.Context, req Request) (*Result, error) {
	client := openai.NewClient(d.Opts...)

	size := openai.ImageGenerateParamsSize1024x1024
	switch req.Size {
	case SizePortrait:
		size = openai.ImageGenerateParamsSize1024x1792
	case SizeLandscape:
		size = openai.ImageGenerateParamsSize1792x1024
	}
	quality := openai.ImageGenerateParamsQualityStandard
	if req.Quality == QualityHD {
		quality = openai.ImageGenerateParamsQualityHD
	}

	resp, err := client.Images.Generate(ctx, openai.ImageGenerateParams{
		Model:          openai.ImageModelDallE3,
		Prompt:         req.Prompt,
		N:              openai.Int(1),
		Size:           size,
		Quality:        quality,
		ResponseFormat: openai.ImageGenerateParamsResponseFormatB64JSON,
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Data) == 0 || resp.Data[0].B64JSON == "" {
		return nil, ErrNoImage
	}

	data, err := base64.StdEncoding.DecodeString(resp.Data[0].B64JSON)
	if err != nil {
		return nil, fmt.Errorf("decode image payload: %w", err)
	}

	revised := resp.Data[0].RevisedPrompt
	if revised == "" {
		revised = req.Prompt
	}
	return &Result{Data: data, RevisedPrompt: revised}, nil
}
