package cache

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/tilesmith/tilesmith/config"
)

// The cache is a package used for generic large objects that we want to
// load only once per process: lexica (a trie over a few hundred thousand
// words is slow to build) and letter distributions.

type cache struct {
	sync.Mutex
	objects map[string]any
}

// LoadFunc builds the object for a key when it is not cached yet.
type LoadFunc func(cfg *config.Config, key string) (any, error)

// GlobalObjectCache is our global object cache, of course.
var GlobalObjectCache *cache

func (c *cache) load(cfg *config.Config, key string, loadFunc LoadFunc) error {
	log.Debug().Str("key", key).Msg("loading into cache")

	obj, err := loadFunc(cfg, key)
	if err != nil {
		return err
	}
	c.objects[key] = obj

	return nil
}

func (c *cache) get(cfg *config.Config, key string, loadFunc LoadFunc) (any, error) {
	c.Lock()
	defer c.Unlock()
	if obj, ok := c.objects[key]; ok {
		log.Debug().Str("key", key).Msg("getting obj from cache")
		return obj, nil
	}
	if err := c.load(cfg, key, loadFunc); err != nil {
		return nil, err
	}
	return c.objects[key], nil
}

func CreateGlobalObjectCache() {
	GlobalObjectCache = &cache{objects: make(map[string]any)}
}

// Load returns the cached object for name, loading it on first use.
func Load(cfg *config.Config, name string, loadFunc LoadFunc) (any, error) {
	if GlobalObjectCache == nil {
		CreateGlobalObjectCache()
	}
	return GlobalObjectCache.get(cfg, name, loadFunc)
}

// Populate stores an already-built object under name, replacing any
// previous one.
func Populate(name string, obj any) {
	if GlobalObjectCache == nil {
		CreateGlobalObjectCache()
	}
	GlobalObjectCache.Lock()
	defer GlobalObjectCache.Unlock()
	GlobalObjectCache.objects[name] = obj
}
