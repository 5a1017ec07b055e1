package cache

import (
	"errors"
	"testing"

	"github.com/matryer/is"

	"github.com/tilesmith/tilesmith/config"
)

func TestLoadOnce(t *testing.T) {
	is := is.New(t)
	CreateGlobalObjectCache()
	cfg := config.DefaultConfig()

	calls := 0
	loader := func(cfg *config.Config, key string) (any, error) {
		calls++
		return "value for " + key, nil
	}
	for i := 0; i < 3; i++ {
		obj, err := Load(cfg, "thing", loader)
		is.NoErr(err)
		is.Equal(obj, "value for thing")
	}
	is.Equal(calls, 1)
}

func TestLoadErrorIsNotCached(t *testing.T) {
	is := is.New(t)
	CreateGlobalObjectCache()
	cfg := config.DefaultConfig()

	failing := func(cfg *config.Config, key string) (any, error) {
		return nil, errors.New("nope")
	}
	_, err := Load(cfg, "broken", failing)
	is.True(err != nil)

	Populate("broken", 42)
	obj, err := Load(cfg, "broken", failing)
	is.NoErr(err)
	is.Equal(obj, 42)
}
