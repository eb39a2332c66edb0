package shortlink_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"droscher.com/RecipeBox/configs"
	"droscher.com/RecipeBox/pkg/shortlink"
)

type checkerFunc func(shortLink string) (bool, error)

func (f checkerFunc) ShortLinkExists(_ context.Context, shortLink string) (bool, error) {
	return f(shortLink)
}

var defaultConf = configs.ShortLink{Length: 5, MaxAttempts: 10, FallbackLength: 8}

func TestAllocate_Uniqueness(t *testing.T) {
	issued := make(map[string]bool)
	checker := checkerFunc(func(link string) (bool, error) { return issued[link], nil })
	allocator := shortlink.NewAllocator(checker, defaultConf, zap.NewNop())

	count := 1000
	for i := 0; i < count; i++ {
		link, err := allocator.Allocate(context.Background())
		require.NoError(t, err)
		assert.False(t, issued[link], "short link should be unique: %s", link)
		issued[link] = true
	}

	assert.Len(t, issued, count)
}

func TestAllocate_Format(t *testing.T) {
	allocator := shortlink.NewAllocator(checkerFunc(func(string) (bool, error) { return false, nil }), defaultConf, zap.NewNop())

	link, err := allocator.Allocate(context.Background())
	require.NoError(t, err)
	assert.Len(t, link, 5)

	for _, char := range link {
		assert.True(t, strings.ContainsRune(shortlink.Alphabet, char), "character %c should be alphanumeric", char)
	}
}

func TestAllocate_RetriesOnCollision(t *testing.T) {
	links := []string{"aaaaa", "bbbbb", "ccccc"}
	generated := 0
	generate := func(int) (string, error) {
		link := links[generated]
		generated++

		return link, nil
	}
	checker := checkerFunc(func(link string) (bool, error) { return link != "ccccc", nil })

	allocator := shortlink.NewAllocator(checker, defaultConf, zap.NewNop(), shortlink.WithGenerator(generate))

	link, err := allocator.Allocate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ccccc", link)
	assert.Equal(t, 3, generated)
}

func TestAllocate_FallsBackToLongerLinks(t *testing.T) {
	observedZapCore, observedLogs := observer.New(zap.WarnLevel)
	checker := checkerFunc(func(link string) (bool, error) { return len(link) == 5, nil })

	allocator := shortlink.NewAllocator(checker, defaultConf, zap.New(observedZapCore))

	link, err := allocator.Allocate(context.Background())
	require.NoError(t, err)
	assert.Len(t, link, 8)
	assert.Equal(t, 1, observedLogs.FilterMessage("short link space crowded").Len())
}

func TestAllocate_ReturnsErrExhausted(t *testing.T) {
	checks := 0
	checker := checkerFunc(func(string) (bool, error) {
		checks++

		return true, nil
	})

	allocator := shortlink.NewAllocator(checker, defaultConf, zap.NewNop())

	link, err := allocator.Allocate(context.Background())
	require.ErrorIs(t, err, shortlink.ErrExhausted)
	assert.Empty(t, link)
	assert.Equal(t, 20, checks)
}

func TestAllocate_StopsOnCheckerError(t *testing.T) {
	errStore := errors.New("connection refused")
	checker := checkerFunc(func(string) (bool, error) { return false, errStore })

	allocator := shortlink.NewAllocator(checker, defaultConf, zap.NewNop())

	_, err := allocator.Allocate(context.Background())
	require.ErrorIs(t, err, errStore)
}
