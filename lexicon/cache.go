package lexicon

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/tilesmith/tilesmith/cache"
	"github.com/tilesmith/tilesmith/config"
)

var CacheKeyPrefix = "lexicon:"

// CacheLoadFunc loads <lexicon-path>/<name>.txt into the global cache.
func CacheLoadFunc(cfg *config.Config, key string) (any, error) {
	name := strings.TrimPrefix(key, CacheKeyPrefix)
	enc, err := ParseEncoding(cfg.GetString(config.ConfigLexiconEncoding))
	if err != nil {
		return nil, err
	}
	path := filepath.Join(cfg.GetString(config.ConfigLexiconPath), name+".txt")
	return LoadFile(name, path, enc)
}

// Get returns a named dictionary, loading it on first use.
func Get(cfg *config.Config, name string) (*Dictionary, error) {
	obj, err := cache.Load(cfg, CacheKeyPrefix+name, CacheLoadFunc)
	if err != nil {
		return nil, err
	}
	d, ok := obj.(*Dictionary)
	if !ok {
		return nil, errors.New("could not read lexicon from cache")
	}
	return d, nil
}

// Set puts an already built dictionary in the cache under its name.
func Set(d *Dictionary) {
	cache.Populate(CacheKeyPrefix+d.Name(), d)
}
