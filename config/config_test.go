package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matryer/is"
)

func TestDefaults(t *testing.T) {
	is := is.New(t)
	c := DefaultConfig()
	is.Equal(c.GetString(ConfigDefaultLexicon), "CSW21")
	is.Equal(c.GetInt(ConfigThreads), 1)
	is.Equal(c.GetBool(ConfigDebug), false)
}

func TestLoadFlagsAndArgs(t *testing.T) {
	is := is.New(t)
	c := DefaultConfig()
	is.NoErr(c.Load([]string{"--threads", "4", "--debug", "--unknown-flag=x", "gen", "10"}))
	is.Equal(c.GetInt(ConfigThreads), 4)
	is.True(c.GetBool(ConfigDebug))
	is.Equal(c.Args(), []string{"gen", "10"})
}

func TestLoadEnvAndFile(t *testing.T) {
	is := is.New(t)
	t.Setenv("TILESMITH_DEFAULT_LEXICON", "NWL23")

	fn := filepath.Join(t.TempDir(), "tilesmith.yaml")
	is.NoErr(os.WriteFile(fn, []byte("lexicon-encoding: latin-1\nthreads: 3\n"), 0o644))

	c := DefaultConfig()
	is.NoErr(c.Load([]string{"--config", fn}))
	is.Equal(c.GetString(ConfigDefaultLexicon), "NWL23")
	is.Equal(c.GetString(ConfigLexiconEncoding), "latin-1")
	is.Equal(c.GetInt(ConfigThreads), 3)
}

func TestAdjustRelativePaths(t *testing.T) {
	is := is.New(t)
	c := DefaultConfig()
	c.Set(ConfigLexiconPath, "/abs/lexica")
	c.AdjustRelativePaths("/opt/tilesmith")
	is.Equal(c.GetString(ConfigDataPath), filepath.Join("/opt/tilesmith", "data"))
	is.Equal(c.GetString(ConfigLetterDistributionPath), filepath.Join("/opt/tilesmith", "data/letterdistributions"))
	is.Equal(c.GetString(ConfigLexiconPath), "/abs/lexica")
}
