// Package shortlink hands out the random identifiers behind /s/{short_link} redirects.
package shortlink

import (
	"context"
	"errors"
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"go.uber.org/zap"

	"droscher.com/RecipeBox/configs"
)

const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

var ErrExhausted = errors.New("no free short link found")

// Checker reports whether a short link is already assigned to a recipe.
type Checker interface {
	ShortLinkExists(ctx context.Context, shortLink string) (bool, error)
}

// Generator returns a random link of the given length.
type Generator func(length int) (string, error)

type Allocator struct {
	checker        Checker
	generate       Generator
	length         int
	maxAttempts    int
	fallbackLength int
	logger         *zap.Logger
}

type Option func(*Allocator)

func WithGenerator(generate Generator) Option {
	return func(a *Allocator) {
		a.generate = generate
	}
}

func NanoID(length int) (string, error) {
	return gonanoid.Generate(Alphabet, length)
}

func NewAllocator(checker Checker, conf configs.ShortLink, logger *zap.Logger, opts ...Option) *Allocator {
	allocator := &Allocator{
		checker:        checker,
		generate:       NanoID,
		length:         conf.Length,
		maxAttempts:    conf.MaxAttempts,
		fallbackLength: conf.FallbackLength,
		logger:         logger,
	}

	for _, opt := range opts {
		opt(allocator)
	}

	return allocator
}

// Allocate returns a link that no recipe held at the time of the check. After maxAttempts
// collisions at the configured length it switches to the fallback length for another
// maxAttempts tries.
func (a *Allocator) Allocate(ctx context.Context) (string, error) {
	for _, length := range []int{a.length, a.fallbackLength} {
		link, err := a.tryLength(ctx, length)
		if err == nil {
			return link, nil
		}

		if !errors.Is(err, ErrExhausted) {
			return "", err
		}

		a.logger.Warn("short link space crowded", zap.Int("length", length), zap.Int("attempts", a.maxAttempts))
	}

	return "", ErrExhausted
}

func (a *Allocator) tryLength(ctx context.Context, length int) (string, error) {
	for i := 0; i < a.maxAttempts; i++ {
		link, err := a.generate(length)
		if err != nil {
			return "", fmt.Errorf("generate short link: %w", err)
		}

		taken, err := a.checker.ShortLinkExists(ctx, link)
		if err != nil {
			return "", err
		}

		if !taken {
			return link, nil
		}
	}

	return "", ErrExhausted
}
