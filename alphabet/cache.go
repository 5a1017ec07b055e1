package alphabet

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/tilesmith/tilesmith/cache"
	"github.com/tilesmith/tilesmith/config"
)

var CacheKeyPrefix = "letterdist:"

// CacheLoadFunc is the function that loads an object into the global cache.
func CacheLoadFunc(cfg *config.Config, key string) (any, error) {
	dist := strings.TrimPrefix(key, CacheKeyPrefix)
	return NamedLetterDistribution(cfg, dist)
}

// NamedLetterDistribution returns a built-in distribution by name, or loads
// <letter-distribution-path>/<name>.yaml.
func NamedLetterDistribution(cfg *config.Config, name string) (*LetterDistribution, error) {
	name = strings.ToLower(name)
	switch name {
	case "english":
		return EnglishLetterDistribution(), nil
	case "french":
		return FrenchLetterDistribution(), nil
	}
	filename := filepath.Join(cfg.GetString(config.ConfigLetterDistributionPath), name+".yaml")
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ReadLetterDistribution(file)
}

// Get loads a named letter distribution from the cache or from a file
func Get(cfg *config.Config, name string) (*LetterDistribution, error) {
	key := CacheKeyPrefix + strings.ToLower(name)
	obj, err := cache.Load(cfg, key, CacheLoadFunc)
	if err != nil {
		return nil, err
	}
	ret, ok := obj.(*LetterDistribution)
	if !ok {
		return nil, errors.New("could not read letter distribution from cache")
	}
	return ret, nil
}
